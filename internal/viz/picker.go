package viz

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	itemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

type pickStep int

const (
	pickEffect pickStep = iota
	pickPreset
	pickDone
)

// Choice is what the picker returns. Zero when the user backed out.
type Choice struct {
	Effect string
	Preset string
}

// Picker is a two-step menu: first an effect, then a wiring preset.
type Picker struct {
	step    pickStep
	cursor  int
	effects []string
	presets []string
	notes   map[string]string
	choice  Choice
}

// NewPicker lists effects and presets in the given order. notes holds an
// optional one-line description per name.
func NewPicker(effects, presets []string, notes map[string]string) Picker {
	return Picker{effects: effects, presets: presets, notes: notes}
}

// Choice reports the selection once the picker has finished.
func (p Picker) Choice() (Choice, bool) {
	return p.choice, p.step == pickDone && p.choice.Effect != ""
}

func (p Picker) items() []string {
	if p.step == pickPreset {
		return p.presets
	}
	return p.effects
}

func (p Picker) Init() tea.Cmd { return nil }

func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	items := p.items()
	switch key.String() {
	case "q", "ctrl+c", "esc":
		p.choice = Choice{}
		p.step = pickDone
		return p, tea.Quit
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(items)-1 {
			p.cursor++
		}
	case "backspace", "left", "h":
		if p.step == pickPreset {
			p.step = pickEffect
			p.cursor = indexOf(p.effects, p.choice.Effect)
		}
	case "enter", "right", "l":
		if len(items) == 0 {
			return p, nil
		}
		if p.step == pickEffect {
			p.choice.Effect = items[p.cursor]
			p.step = pickPreset
			p.cursor = 0
			return p, nil
		}
		p.choice.Preset = items[p.cursor]
		p.step = pickDone
		return p, tea.Quit
	}
	return p, nil
}

func (p Picker) View() string {
	if p.step == pickDone {
		return ""
	}
	title := "EFFECT"
	if p.step == pickPreset {
		title = "WIRING  " + noteStyle.Render(p.choice.Effect)
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(title) + "\n")
	for i, name := range p.items() {
		line := itemStyle.Render("  " + name)
		if i == p.cursor {
			line = cursorStyle.Render("> " + name)
		}
		if note := p.notes[name]; note != "" {
			line += "  " + noteStyle.Render(note)
		}
		s.WriteString(line + "\n")
	}
	s.WriteString(helpStyle.Render("↑↓:Move  Enter:Select  ←:Back  Q:Quit"))
	return s.String()
}

func indexOf(items []string, v string) int {
	for i, it := range items {
		if it == v {
			return i
		}
	}
	return 0
}
