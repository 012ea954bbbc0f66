package export

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sumwatshade/weathersynth/cmd/weather"
)

// Kind identifies which export finished.
type Kind int

const (
	KindCSV Kind = iota
	KindClipboard
)

func (k Kind) String() string {
	switch k {
	case KindCSV:
		return "csv"
	case KindClipboard:
		return "clipboard"
	default:
		return "unknown"
	}
}

// CopiedMessage is shown after a successful clipboard copy.
const CopiedMessage = "Data copied to clipboard! You can paste it into Excel or Google Sheets."

// DoneMsg reports the outcome of an export command.
type DoneMsg struct {
	Kind  Kind
	Path  string
	Bytes int
	Err   error
}

// SaveCSVCmd writes the comma-separated series to path off the update loop.
func SaveCSVCmd(svc Service, path string, s weather.Series) tea.Cmd {
	return func() tea.Msg {
		n, err := svc.SaveFile(path, s, weather.Comma)
		return DoneMsg{Kind: KindCSV, Path: path, Bytes: n, Err: err}
	}
}

// CopyTSVCmd copies the tab-separated series to the clipboard.
func CopyTSVCmd(svc Service, s weather.Series) tea.Cmd {
	return func() tea.Msg {
		err := svc.CopyToClipboard(s)
		n := 0
		if err == nil {
			n = len(weather.Serialize(s, weather.Tab))
		}
		return DoneMsg{Kind: KindClipboard, Bytes: n, Err: err}
	}
}
