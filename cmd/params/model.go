package params

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/sumwatshade/weathersynth/cmd/weather"
)

// InputLayout is the date format accepted by the start field.
const InputLayout = "2006-01-02"

// MaxDays bounds the window length the form accepts.
const MaxDays = 366

// Model wraps a huh form for editing generation parameters.
type Model struct {
	form      *huh.Form
	startStr  string
	daysStr   string
	seedStr   string
	completed bool
}

// NewModel pre-fills the form from the current parameters.
func NewModel(current weather.Params) *Model {
	m := &Model{
		startStr: current.Start.Format(InputLayout),
		daysStr:  strconv.Itoa(current.Days),
	}
	if current.Seed != 0 {
		m.seedStr = strconv.FormatUint(current.Seed, 10)
	}
	m.buildForm()
	return m
}

func (m *Model) buildForm() {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Start date").Description("YYYY-MM-DD").Value(&m.startStr).Validate(func(s string) error {
				_, err := ParseStart(s)
				return err
			}),
			huh.NewInput().Title("Days").Value(&m.daysStr).Validate(func(s string) error {
				_, err := ParseDays(s)
				return err
			}),
			huh.NewInput().Title("Seed").Description("blank for random draws").Value(&m.seedStr).Validate(func(s string) error {
				_, err := ParseSeed(s)
				return err
			}),
		),
	).WithShowHelp(false)
}

// Init focuses the first field.
func (m *Model) Init() tea.Cmd {
	if m == nil || m.form == nil {
		return nil
	}
	return m.form.Init()
}

// Update forwards msg to the form and records completion.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m == nil {
		return nil
	}
	if m.form == nil {
		m.buildForm()
	}
	updated, cmd := m.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		m.completed = true
	}
	return cmd
}

// Completed reports whether the user submitted the form.
func (m *Model) Completed() bool {
	return m != nil && m.completed
}

// Aborted reports whether the form was cancelled from within huh.
func (m *Model) Aborted() bool {
	return m != nil && m.form != nil && m.form.State == huh.StateAborted
}

// Params parses the current field values.
func (m *Model) Params() (weather.Params, error) {
	start, err := ParseStart(m.startStr)
	if err != nil {
		return weather.Params{}, err
	}
	days, err := ParseDays(m.daysStr)
	if err != nil {
		return weather.Params{}, err
	}
	seed, err := ParseSeed(m.seedStr)
	if err != nil {
		return weather.Params{}, err
	}
	return weather.Params{Start: start, Days: days, Seed: seed}, nil
}

// ParseStart parses a YYYY-MM-DD date in UTC.
func ParseStart(s string) (time.Time, error) {
	t, err := time.Parse(InputLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("start date must be YYYY-MM-DD: %w", err)
	}
	return t, nil
}

// ParseDays parses a window length in [1, MaxDays].
func ParseDays(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New("days must be a whole number")
	}
	if n < 1 || n > MaxDays {
		return 0, fmt.Errorf("days must be between 1 and %d", MaxDays)
	}
	return n, nil
}

// ParseSeed parses an optional unsigned seed; blank means random (0).
func ParseSeed(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.New("seed must be a non-negative integer")
	}
	return n, nil
}
