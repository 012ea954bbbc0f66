package cmd

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings for the application. It satisfies key.Map so
// it can be passed directly to bubbles/help.Model for automatic rendering.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Regenerate key.Binding
	RecalcVPD  key.Binding
	Export     key.Binding
	Copy       key.Binding
	Params     key.Binding
	Chart      key.Binding
	Cancel     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings shown in the mini help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Regenerate, k.RecalcVPD, k.Export, k.Copy, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view (columns).
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Regenerate, k.RecalcVPD, k.Params},
		{k.Export, k.Copy, k.Chart},
		{k.Up, k.Down},
		{k.Help, k.Quit},
	}
}

// keys is the set of key bindings used across the app.
var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous day"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next day"),
	),
	Regenerate: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "generate data"),
	),
	RecalcVPD: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "recalculate VPD"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export CSV"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy data"),
	),
	Params: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "parameters"),
	),
	Chart: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "chart metric"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
