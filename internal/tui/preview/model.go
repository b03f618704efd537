package preview

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/classy/pkg/classes"
)

// Model is an interactive flag editor for a single style.
type Model struct {
	style    string
	composer *classes.Composer
	variants []string
	active   map[string]bool
	baseOff  bool
	cursor   int

	keys keyMap
	help help.Model

	width    int
	quitting bool
}

// NewModel creates a preview for the named style.
func NewModel(style string, composer *classes.Composer) Model {
	return Model{
		style:    style,
		composer: composer,
		variants: composer.Variants(),
		active:   make(map[string]bool),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.variants)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if len(m.variants) > 0 {
			name := m.variants[m.cursor]
			m.active = cloneActive(m.active)
			m.active[name] = !m.active[name]
		}

	case key.Matches(msg, m.keys.Base):
		m.baseOff = !m.baseOff

	case key.Matches(msg, m.keys.Clear):
		m.active = make(map[string]bool)
		m.baseOff = false

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// Flags returns the flags currently selected. Only active variants are
// included, so an untouched preview shows the default classes.
func (m Model) Flags() classes.Flags {
	flags := make(classes.Flags, len(m.active)+1)
	for name, on := range m.active {
		if on {
			flags[name] = true
		}
	}
	if m.baseOff {
		flags[classes.KeyBase] = false
	}
	return flags
}

// Classes returns the composed class string for the current flags.
func (m Model) Classes() string {
	return m.composer.Compose(m.Flags())
}

// Quitting reports whether the user asked to leave the preview.
func (m Model) Quitting() bool {
	return m.quitting
}

func cloneActive(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}
