package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/dpend/internal/dynamo"
	"github.com/san-kum/dpend/internal/physics"
)

const (
	width           = 60
	height          = 24
	historyCapacity = 600
	frameRate       = 60
)

// Pendulum is a double pendulum the live view can step and draw.
type Pendulum interface {
	dynamo.System
	dynamo.Hamiltonian
	physics.Linkage
}

type TickMsg time.Time

// Model is a read-only live view: it advances one step per frame and the
// only key binding quits.
type Model struct {
	dyn           Pendulum
	integrator    dynamo.Integrator
	state         dynamo.State
	t, dt         float64
	steps         int
	name          string
	canvas        *Canvas
	view          Viewport
	trail         *physics.Trail
	initialEnergy float64
	energyHistory []float64
	styles        Styles
}

func NewModel(dyn Pendulum, integ dynamo.Integrator, x0 dynamo.State, dt float64, name string, theme Theme) Model {
	canvas := NewCanvas(width, height)
	l1, l2 := dyn.Lengths()
	return Model{
		dyn:           dyn,
		integrator:    integ,
		state:         x0,
		dt:            dt,
		name:          name,
		canvas:        canvas,
		view:          NewViewport(canvas, l1+l2),
		trail:         physics.NewTrail(physics.DefaultTrailLength),
		initialEnergy: dyn.Energy(x0),
		energyHistory: make([]float64, 0, historyCapacity),
		styles:        NewStyles(theme),
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case TickMsg:
		m.step()
		return m, tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.state = m.integrator.Step(m.dyn, m.state, m.dt)
	m.t += m.dt
	m.steps++

	l1, l2 := m.dyn.Lengths()
	_, bob2 := physics.Bobs(m.state, l1, l2)
	m.trail.Push(bob2)

	m.energyHistory = append(m.energyHistory, m.dyn.Energy(m.state))
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

// State returns the current state and simulated time.
func (m Model) State() (dynamo.State, float64) { return m.state, m.t }

func (m Model) View() string {
	m.draw()
	canvasView := m.styles.Canvas.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(m.styles.Header.Render(strings.ToUpper(m.name)) + "\n")

	energy := m.dyn.Energy(m.state)
	drift := 0.0
	if m.initialEnergy != 0 {
		drift = math.Abs(energy-m.initialEnergy) / math.Abs(m.initialEnergy)
	}

	s.WriteString(m.styles.Row("Time", fmt.Sprintf("%.2fs", m.t)))
	s.WriteString(m.styles.Row("Steps", fmt.Sprintf("%d", m.steps)))
	s.WriteString(m.styles.Row("Energy", fmt.Sprintf("% .8f", energy)))
	s.WriteString(m.styles.Row("Drift", fmt.Sprintf("%.2e", drift)))
	s.WriteString(m.styles.Row("a1", fmt.Sprintf("% f", m.state.A1)))
	s.WriteString(m.styles.Row("a2", fmt.Sprintf("% f", m.state.A2)))

	if len(m.energyHistory) > 1 {
		chart := Plot(m.energyHistory, 30, 4, "Energy")
		s.WriteString(m.styles.Graph.Render(chart) + "\n")
	}

	s.WriteString(m.styles.Help.Render(Separator(21) + "\nQ:Quit"))
	statsView := m.styles.Stats.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// draw renders rods, bobs and the bob-2 trail onto the canvas.
func (m *Model) draw() {
	m.canvas.Clear()

	for _, p := range m.trail.Points() {
		x, y := m.view.Project(p)
		m.canvas.Set(x, y)
	}

	l1, l2 := m.dyn.Lengths()
	b1, b2 := physics.Bobs(m.state, l1, l2)
	px, py := m.view.Project(physics.Point{})
	x1, y1 := m.view.Project(b1)
	x2, y2 := m.view.Project(b2)

	m.canvas.DrawLine(px, py, x1, y1)
	m.canvas.DrawLine(x1, y1, x2, y2)
	m.canvas.DrawDisc(px, py, 0)
	m.canvas.DrawDisc(x1, y1, 1)
	m.canvas.DrawDisc(x2, y2, 1)
}

// Run starts the live view and blocks until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
