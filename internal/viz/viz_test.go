package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/dpend/internal/dynamo"
	"github.com/san-kum/dpend/internal/integrators"
	"github.com/san-kum/dpend/internal/physics"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(100, 0)

	if c.Grid[0][0] != 0x2801 {
		t.Errorf("cell 0 = %U, want U+2801", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("cell 1 = %U, want U+2880", c.Grid[0][1])
	}

	c.Clear()
	if c.String() != "\u2800\u2800\n" {
		t.Errorf("clear left %q", c.String())
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0)
	for i, r := range c.Grid[0] {
		if r != 0x2809 {
			t.Errorf("cell %d = %U, want top row set", i, r)
		}
	}
}

func TestViewport(t *testing.T) {
	c := NewCanvas(10, 5)
	v := NewViewport(c, 1)

	if x, y := v.Project(physics.Point{}); x != 10 || y != 10 {
		t.Errorf("origin projected to (%d, %d)", x, y)
	}
	x, y := v.Project(physics.Point{X: 0, Y: -1})
	if x != 10 || y <= 10 || y > 20 {
		t.Errorf("point below pivot projected to (%d, %d)", x, y)
	}
}

func TestDecimate(t *testing.T) {
	data := make([]float64, 1000)
	for i := range data {
		data[i] = float64(i)
	}

	out := Decimate(data, 80)
	if len(out) > 81 {
		t.Errorf("expected at most 81 points, got %d", len(out))
	}
	if out[0] != 0 || out[len(out)-1] != 999 {
		t.Errorf("endpoints lost: %v ... %v", out[0], out[len(out)-1])
	}

	short := []float64{1, 2, 3}
	if got := Decimate(short, 80); len(got) != 3 {
		t.Errorf("short series changed: %v", got)
	}
}

func TestPlot(t *testing.T) {
	if Plot(nil, 40, 5, "x") != "" {
		t.Error("expected empty plot for no data")
	}
	out := Plot([]float64{1, 2, 3, 2, 1}, 40, 5, "energy")
	if !strings.Contains(out, "energy") {
		t.Errorf("caption missing:\n%s", out)
	}
	many := PlotMany([][]float64{{1, 2, 3}, {3, 2, 1}}, 40, 5, "rk4 vs euler")
	if !strings.Contains(many, "rk4 vs euler") {
		t.Errorf("caption missing:\n%s", many)
	}
}

func TestGetTheme(t *testing.T) {
	if th, ok := GetTheme("ocean"); !ok || th.Name != "ocean" {
		t.Error("expected ocean theme")
	}
	if th, ok := GetTheme("nope"); ok || th.Name != "cyberpunk" {
		t.Error("unknown theme should fall back to cyberpunk")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names out of sync")
	}
}

func newTestModel() Model {
	return NewModel(physics.NewCanonical(), integrators.NewRK4(), dynamo.State{A1: 1, A2: 0.5}, 1.0/60.0, "canonical", ThemeCyberpunk)
}

func TestModelTickSteps(t *testing.T) {
	m := newTestModel()

	next, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next frame")
	}
	nm := next.(Model)
	s, tm := nm.State()
	if nm.steps != 1 || tm != 1.0/60.0 {
		t.Errorf("expected one step, got steps=%d t=%v", nm.steps, tm)
	}
	if s == (dynamo.State{A1: 1, A2: 0.5}) {
		t.Error("state did not advance")
	}
	if nm.trail.Len() != 1 {
		t.Errorf("trail length %d, want 1", nm.trail.Len())
	}
}

func TestModelKeys(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	if cmd != nil {
		t.Error("space is not bound")
	}
	if next.(Model).steps != 0 {
		t.Error("keys must not step the simulation")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel()
	var next tea.Model = m
	for i := 0; i < 3; i++ {
		next, _ = next.Update(TickMsg(time.Now()))
	}

	view := next.View()
	for _, want := range []string{"CANONICAL", "Energy", "Q:Quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
