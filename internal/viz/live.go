package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/everyside/vixel/internal/animation"
	"github.com/everyside/vixel/internal/frame"
	"github.com/everyside/vixel/internal/metrics"
)

const historyCapacity = 120

// FrameMsg carries one rendered frame from the loop into the program.
type FrameMsg struct {
	Frame *frame.Frame
	Stats animation.Stats
}

// DoneMsg reports that the loop has returned.
type DoneMsg struct {
	Err error
}

// Sender is satisfied by *tea.Program.
type Sender interface {
	Send(msg tea.Msg)
}

// Feed returns an observer that forwards a copy of every frame to s. Send
// blocks until the program takes the message, so a stalled view slows the
// loop down instead of queueing frames.
func Feed(s Sender) animation.Observer {
	return animation.ObserverFunc(func(f *frame.Frame, st animation.Stats) {
		s.Send(FrameMsg{Frame: f.Clone(), Stats: st})
	})
}

// Model is the live preview. It renders whatever the loop last sent.
type Model struct {
	title       string
	frameLength time.Duration
	indices     []int
	stop        func()

	frame      *frame.Frame
	stats      animation.Stats
	set        *metrics.Set
	fps        *metrics.FrameRate
	overruns   *metrics.Overruns
	intervals  *metrics.Interval
	processing []float64

	physical bool
	frozen   bool
	showHelp bool
	done     bool
	err      error
}

// NewModel builds a preview titled title for a loop running at frameRate.
// indices maps logical to physical pixels for the physical view and may be
// nil. stop is called when the user quits.
func NewModel(title string, frameRate float64, indices []int, stop func()) Model {
	fps := metrics.NewFrameRate()
	overruns := metrics.NewOverruns(frameRate)
	intervals := metrics.NewInterval(historyCapacity)
	return Model{
		title:       title,
		frameLength: overruns.Budget(),
		indices:     indices,
		stop:        stop,
		set:         metrics.NewSet(fps, overruns, intervals),
		fps:         fps,
		overruns:    overruns,
		intervals:   intervals,
		processing:  make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.stop != nil {
				m.stop()
			}
			return m, tea.Quit
		case " ":
			m.frozen = !m.frozen
		case "p":
			if m.indices != nil {
				m.physical = !m.physical
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case FrameMsg:
		m.set.OnFrame(msg.Frame, msg.Stats)
		m.stats = msg.Stats
		m.processing = append(m.processing, float64(msg.Stats.Processing)/float64(time.Millisecond))
		if len(m.processing) > historyCapacity {
			m.processing = m.processing[1:]
		}
		if !m.frozen {
			m.frame = msg.Frame
		}
	case DoneMsg:
		m.done = true
		m.err = msg.Err
	}
	return m, nil
}

func (m Model) status() string {
	switch {
	case m.err != nil:
		return errStyle.Render("ERROR: " + m.err.Error())
	case m.done:
		return "STOPPED"
	case m.frozen:
		return "FROZEN"
	}
	return "RUNNING"
}

func (m Model) View() string {
	matrix := "waiting for first frame"
	if m.frame != nil {
		matrix = RenderMatrix(m.frame)
		if m.physical {
			if s, err := RenderPhysical(m.frame, m.indices); err == nil {
				matrix = s
			}
		}
	}
	matrixView := matrixStyle.Render(matrix)

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.title)) + "\n")
	s.WriteString(m.status() + "\n\n")

	order := "logical"
	if m.physical {
		order = "physical"
	}
	budget := float64(m.frameLength) / float64(time.Millisecond)
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d", m.stats.Num)) + "\n")
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.stats.Time.Seconds())) + "\n")
	s.WriteString(labelStyle.Render("FPS") + valueStyle.Render(fmt.Sprintf("%.1f", m.fps.Value())) + "\n")
	s.WriteString(labelStyle.Render("Overruns") + valueStyle.Render(fmt.Sprintf("%.0f", m.overruns.Value())) + "\n")
	s.WriteString(labelStyle.Render("Order") + valueStyle.Render(order) + "\n")
	s.WriteString(labelStyle.Render("Work") + Sparkline(m.processing, budget, 28) + "\n")

	if hist := m.intervals.History(); len(hist) > 1 {
		chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("Interval (ms)"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("─────────────────────\nSP:Freeze P:Order\n?:Help    Q:Quit"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, matrixView, statsStyle.Render(s.String()))

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space  - Freeze/unfreeze preview    ║
║  P      - Logical/physical order     ║
║  Q      - Quit                       ║
║  ?      - Toggle this help           ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
