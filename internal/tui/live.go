package tui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/frgflow/internal/models"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

const (
	historyLen = 240
	sparkWidth = 48
	barWidth   = 36
)

type stepMsg struct {
	step int
	t    float64
	dt   float64
	norm float64
	gam0 complex128
}

type doneMsg struct{ err error }

type model struct {
	title      string
	start, end float64
	cancel     context.CancelFunc

	t       float64
	dt      float64
	norm    float64
	gam0    complex128
	steps   int
	history []float64
	began   time.Time
	done    bool
	err     error
}

func newModel(title string, start, end float64) model {
	return model{title: title, start: start, end: end, t: start, began: time.Now()}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
	case stepMsg:
		m.t = msg.t
		m.dt = msg.dt
		m.norm = msg.norm
		m.gam0 = msg.gam0
		m.steps = msg.step
		m.history = append(m.history, msg.norm)
		if len(m.history) > historyLen {
			m.history = m.history[len(m.history)-historyLen:]
		}
	case doneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m model) progress() float64 {
	span := m.end - m.start
	if span <= 0 {
		return 1
	}
	return math.Max(0, math.Min(1, (m.t-m.start)/span))
}

func (m model) View() string {
	var b strings.Builder

	status := green.Render("running")
	switch {
	case m.err != nil:
		status = red.Render("failed")
	case m.done:
		status = green.Render("done")
	}
	b.WriteString(fmt.Sprintf("\n   %s  %s\n", cyan.Render(m.title), status))

	filled := int(m.progress() * barWidth)
	bar := cyan.Render(strings.Repeat("━", filled)) + dimmer.Render(strings.Repeat("─", barWidth-filled))
	b.WriteString(fmt.Sprintf("   %s %s  %s\n\n", bar,
		dim.Render(fmt.Sprintf("%.4g/%.4g", m.t, m.end)),
		dim.Render(time.Since(m.began).Truncate(time.Millisecond).String())))

	b.WriteString("   " + dim.Render("steps ") + white.Render(fmt.Sprint(m.steps)))
	b.WriteString("  " + dim.Render("dt ") + white.Render(fmt.Sprintf("%.3g", m.dt)))
	b.WriteString("  " + dim.Render("norm ") + white.Render(fmt.Sprintf("%.6g", m.norm)))
	b.WriteString("  " + dim.Render("Gam0 ") + white.Render(fmt.Sprintf("%.6g%+.6gi", real(m.gam0), imag(m.gam0))) + "\n")

	if len(m.history) > 1 {
		b.WriteString("   " + dim.Render("norm ") + cyan.Render(sparkline(m.history, sparkWidth)) + "\n")
	}
	if m.err != nil {
		b.WriteString("\n   " + red.Render(m.err.Error()) + "\n")
	}
	if !m.done {
		b.WriteString("\n" + dim.Render("   q stop") + "\n")
	}
	return b.String()
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	rang := maxVal - minVal
	if rang == 0 || math.IsNaN(rang) || math.IsInf(rang, 0) {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		idx := min(max(int((data[i*step]-minVal)/rang*7), 0), 7)
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

// Monitor shows a running flow in the terminal. It is an observer of the
// simulator and forwards at most one step per frame to the view. Steps and
// step sizes are counted on every observation.
type Monitor struct {
	prog     *tea.Program
	model    *model
	end      float64
	interval time.Duration
	last     time.Time

	steps int
	prevT float64
	dt    float64
}

func NewMonitor(title string, start, end float64, frameRate int) *Monitor {
	if frameRate <= 0 {
		frameRate = 30
	}
	m := newModel(title, start, end)
	return &Monitor{
		model:    &m,
		end:      end,
		interval: time.Second / time.Duration(frameRate),
		prevT:    start,
	}
}

// observe counts an accepted step and reports whether it should be shown.
// The initial state at the start of the interval is not a step.
func (m *Monitor) observe(t float64) bool {
	if t > m.prevT {
		m.steps++
		m.dt = t - m.prevT
		m.prevT = t
	}
	if time.Since(m.last) < m.interval && t < m.end {
		return false
	}
	m.last = time.Now()
	return true
}

func (m *Monitor) OnStep(x *models.State, t float64) {
	if !m.observe(t) || m.prog == nil {
		return
	}
	m.prog.Send(stepMsg{step: m.steps, t: t, dt: m.dt, norm: x.NormInf(), gam0: models.Gam0(x)})
}

// Run executes fn while the monitor is shown and returns fn's error. Quitting
// the view cancels the context passed to fn.
func (m *Monitor) Run(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m.model.cancel = cancel
	m.prog = tea.NewProgram(*m.model)

	errc := make(chan error, 1)
	go func() {
		err := fn(ctx)
		errc <- err
		m.prog.Send(doneMsg{err: err})
	}()

	if _, err := m.prog.Run(); err != nil {
		cancel()
		<-errc
		return err
	}
	cancel()
	return <-errc
}
