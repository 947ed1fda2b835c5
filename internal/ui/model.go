package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"bytefit/bytesize"
	"bytefit/internal/model"
)

type Model struct {
	ctx    context.Context
	input  textinput.Model
	system bytesize.System

	// Parsed state of the current input
	value   uint64
	invalid bool

	width, height int
	styles        Styles
}

func NewModel(ctx context.Context, initial string, opts model.Options) Model {
	ti := textinput.New()
	ti.Placeholder = "byte count"
	ti.Prompt = "> "
	ti.CharLimit = 20 // max uint64 is 20 digits
	ti.Focus()
	if initial != "" {
		ti.SetValue(initial)
	}

	m := Model{
		ctx:    ctx,
		input:  ti,
		system: opts.System,
		styles: defaultStyles(),
	}
	m.parse()
	return m
}

// parse refreshes value/invalid from the input field. Empty input counts
// as zero so the table never disappears while typing.
func (m *Model) parse() {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		m.value, m.invalid = 0, false
		return
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		m.invalid = true
		return
	}
	m.value, m.invalid = v, false
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if m.system == bytesize.Binary {
				m.system = bytesize.Decimal
			} else {
				m.system = bytesize.Binary
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.parse()
	return m, cmd
}
