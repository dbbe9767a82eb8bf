package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/everyside/vixel/internal/frame"
)

const (
	litCell = "██"
	offCell = "··"
)

// RenderMatrix draws f row by row in logical order.
func RenderMatrix(f *frame.Frame) string {
	return renderCells(f, nil)
}

// RenderPhysical draws f as it sits on the wire: pixel i of the physical
// stream lands at the i-th row-major cell. indices maps each logical pixel
// to its physical position.
func RenderPhysical(f *frame.Frame, indices []int) (string, error) {
	if len(indices) != f.Count() {
		return "", fmt.Errorf("viz: %d indices for %d pixels", len(indices), f.Count())
	}
	return renderCells(f, indices), nil
}

func renderCells(f *frame.Frame, indices []int) string {
	g := f.Geometry
	cells := make([]string, g.Count())
	for logical := 0; logical < g.Count(); logical++ {
		px, err := f.AtIndex(logical)
		if err != nil {
			continue
		}
		cell := offStyle.Render(offCell)
		if px.IsSet() {
			cell = lipgloss.NewStyle().Foreground(lipgloss.Color(px.Hex())).Render(litCell)
		}
		pos := logical
		if indices != nil {
			pos = indices[logical]
		}
		cells[pos] = cell
	}

	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		sb.WriteString(strings.Join(cells[y*g.Width:(y+1)*g.Width], ""))
		if y < g.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// RenderWiring prints, for every logical pixel, its physical index.
func RenderWiring(g frame.Geometry, indices []int) (string, error) {
	if len(indices) != g.Count() {
		return "", fmt.Errorf("viz: %d indices for %d pixels", len(indices), g.Count())
	}
	w := len(strconv.Itoa(g.Count()-1)) + 1
	col := indexStyle.Width(w)
	axis := axisStyle.Width(w)

	var sb strings.Builder
	sb.WriteString(axis.Render(""))
	for x := 0; x < g.Width; x++ {
		sb.WriteString(axis.Render(strconv.Itoa(x)))
	}
	sb.WriteByte('\n')
	for y := 0; y < g.Height; y++ {
		sb.WriteString(axis.Render(strconv.Itoa(y)))
		for x := 0; x < g.Width; x++ {
			sb.WriteString(col.Render(strconv.Itoa(indices[y*g.Width+x])))
		}
		if y < g.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}
