package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	matrixStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(44)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	offStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Bold(true)
	indexStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Align(lipgloss.Right)
	axisStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right)

	sparkHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
	sparkMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	sparkLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
)

var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline draws the last width values scaled against limit. Values at or
// above limit are drawn full height in red.
func Sparkline(values []float64, limit float64, width int) string {
	if len(values) > width {
		values = values[len(values)-width:]
	}
	if limit <= 0 {
		limit = 1
	}

	var sb strings.Builder
	for _, v := range values {
		norm := min(max(v/limit, 0), 1)
		c := string(sparkChars[int(norm*float64(len(sparkChars)-1))])
		switch {
		case norm >= 1:
			sb.WriteString(sparkHigh.Render(c))
		case norm > 0.5:
			sb.WriteString(sparkMid.Render(c))
		default:
			sb.WriteString(sparkLow.Render(c))
		}
	}
	if pad := width - len(values); pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	return sb.String()
}
