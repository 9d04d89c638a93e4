package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/advect/internal/fv"
	"github.com/san-kum/advect/internal/schemes"
)

const massHistoryCapacity = 600

type TickMsg time.Time

// Model animates the advecting profile in the terminal, with pause/reset,
// scheme toggling, and live speed/Courant adjustment.
type Model struct {
	grid      *fv.Grid
	steppers  []*fv.PeriodicStepper
	schemeIdx int

	initial fv.State
	state   fv.State
	t       float64
	speed   float64
	courant float64
	fps     int

	running  bool
	err      error
	massHist []float64
}

func NewModel(g *fv.Grid, x0 fv.State, speed, courant float64, schemeName string, fps int) (Model, error) {
	var steppers []*fv.PeriodicStepper
	for _, s := range []fv.Scheme{schemes.NewUpwind(), schemes.NewLaxWendroff()} {
		stepper, err := fv.NewPeriodicStepper(g.N(), g.Dx(), s)
		if err != nil {
			return Model{}, err
		}
		steppers = append(steppers, stepper)
	}

	idx := 0
	if schemeName == "laxwendroff" {
		idx = 1
	}
	if fps < 1 {
		fps = 30
	}

	return Model{
		grid:      g,
		steppers:  steppers,
		schemeIdx: idx,
		initial:   x0.Clone(),
		state:     x0.Clone(),
		speed:     speed,
		courant:   courant,
		fps:       fps,
		running:   true,
		massHist:  make([]float64, 0, massHistoryCapacity),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) dt() float64 {
	return fv.StableDt(m.speed, m.grid.Dx(), m.courant)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.state = m.initial.Clone()
			m.t = 0
			m.err = nil
			m.massHist = m.massHist[:0]
			m.running = true
		case "tab":
			m.schemeIdx = (m.schemeIdx + 1) % len(m.steppers)
		case "up", "k":
			m.speed *= 1.05
		case "down", "j":
			m.speed *= 0.95
		case "left", "h":
			m.courant = math.Max(0.05, m.courant-0.05)
		case "right", "l":
			m.courant += 0.05
		}
	case TickMsg:
		if m.running && m.err == nil {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	dt := m.dt()
	if math.IsInf(dt, 0) || math.IsNaN(dt) {
		return // zero speed: nothing advects
	}
	next, err := m.steppers[m.schemeIdx].Step(m.state, dt, m.speed)
	if err != nil {
		m.err = err
		m.running = false
		return
	}
	if !next.IsValid() {
		m.err = fv.ErrNonFiniteState
		m.running = false
		return
	}
	m.state = next
	m.t += dt

	m.massHist = append(m.massHist, m.state.Mass(m.grid.Dx()))
	if len(m.massHist) > massHistoryCapacity {
		m.massHist = m.massHist[1:]
	}
}

func (m Model) View() string {
	scheme := m.steppers[m.schemeIdx].Scheme()

	chart := asciigraph.Plot(m.state,
		asciigraph.Height(16),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("u(x, t=%.3f)", m.t)),
	)
	chartView := graphStyle.Render(chart)

	var s strings.Builder
	s.WriteString(headerStyle.Render("ADVECT: "+strings.ToUpper(scheme.Name())) + "\n")

	status := "RUNNING"
	if m.err != nil {
		status = warnStyle.Render("BLEW UP: " + m.err.Error())
	} else if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.massHist) > 1 {
		massChart := asciigraph.Plot(m.massHist, asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("total mass"))
		s.WriteString(massChart + "\n\n")
	}

	min, max := m.state.MinMax()
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.3f", m.t)) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%.3f", m.speed)) + "\n")
	s.WriteString(labelStyle.Render("Courant") + valueStyle.Render(fmt.Sprintf("%.2f", m.courant)) + "\n")
	s.WriteString(labelStyle.Render("Dt") + valueStyle.Render(fmt.Sprintf("%.3g", m.dt())) + "\n")
	s.WriteString(labelStyle.Render("Cells") + valueStyle.Render(fmt.Sprintf("%d", m.grid.N())) + "\n")
	s.WriteString(labelStyle.Render("Mass") + valueStyle.Render(fmt.Sprintf("%.6f", m.state.Mass(m.grid.Dx()))) + "\n")
	s.WriteString(labelStyle.Render("Range") + valueStyle.Render(fmt.Sprintf("[%.3f, %.3f]", min, max)) + "\n")
	s.WriteString(labelStyle.Render("TV") + valueStyle.Render(fmt.Sprintf("%.4f", m.state.TotalVariation())) + "\n")

	if dt := m.dt(); !math.IsInf(dt, 0) && !fv.CheckCFL(m.speed, dt, m.grid.Dx()) {
		s.WriteString("\n" + warnStyle.Render("CFL > 1: unstable") + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nTab:Scheme ↑↓:Speed ←→:Courant"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, chartView, statsView)
}

// RunLive starts the interactive view and blocks until the user quits.
func RunLive(g *fv.Grid, x0 fv.State, speed, courant float64, schemeName string, fps int) error {
	m, err := NewModel(g, x0, speed, courant, schemeName, fps)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}
