package analysis

import (
	"math"
	"strings"

	"github.com/san-kum/dpend/internal/dynamo"
	"github.com/san-kum/dpend/internal/physics"
)

// Projection picks the two phase-space coordinates to plot.
type Projection func(dynamo.State) (x, y float64)

// Projections maps the names accepted by the phase command.
var Projections = map[string]Projection{
	"a1p1": func(s dynamo.State) (float64, float64) { return s.A1, s.P1 },
	"a2p2": func(s dynamo.State) (float64, float64) { return s.A2, s.P2 },
	"a1a2": func(s dynamo.State) (float64, float64) { return s.A1, s.A2 },
	"p1p2": func(s dynamo.State) (float64, float64) { return s.P1, s.P2 },
}

// PhasePortrait holds data for a 2D phase space plot
type PhasePortrait struct {
	Points []physics.Point
}

// GeneratePhasePortrait runs a simulation and records the projected trajectory
func GeneratePhasePortrait(
	dyn dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.State,
	proj Projection,
	dt float64,
	steps int,
) *PhasePortrait {
	portrait := &PhasePortrait{
		Points: make([]physics.Point, 0, max(steps, 0)),
	}

	x := x0
	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, dt)
		px, py := proj(x)
		portrait.Points = append(portrait.Points, physics.Point{X: px, Y: py})
	}

	return portrait
}

// PoincareSection records (a2, p2) each time a1 passes upward through a
// multiple of 2π.
type PoincareSection struct {
	Points []physics.Point
}

// GeneratePoincareSection steps the system and linearly interpolates the
// state at every upward crossing of a1 through 2πk. Recorded a2 is wrapped
// into [-π, π).
func GeneratePoincareSection(
	dyn dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.State,
	dt float64,
	steps int,
) *PoincareSection {
	section := &PoincareSection{}

	prev := x0
	for i := 0; i < steps; i++ {
		curr := integ.Step(dyn, prev, dt)

		k := math.Floor(curr.A1 / (2 * math.Pi))
		if math.Floor(prev.A1/(2*math.Pi)) < k {
			threshold := k * 2 * math.Pi
			frac := (threshold - prev.A1) / (curr.A1 - prev.A1)
			if math.IsNaN(frac) || math.IsInf(frac, 0) {
				frac = 0.5
			}
			at := prev.Add(curr.Sub(prev).Scale(frac))
			section.Points = append(section.Points, physics.Point{X: wrapAngle(at.A2), Y: at.P2})
		}

		prev = curr
	}

	return section
}

func wrapAngle(a float64) float64 {
	return a - 2*math.Pi*math.Floor((a+math.Pi)/(2*math.Pi))
}

// PhasePortraitToASCII converts phase portrait to ASCII art
func PhasePortraitToASCII(portrait *PhasePortrait, width, height int) string {
	if portrait == nil || len(portrait.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	lo, hi := physics.Bounds(portrait.Points, 0.1)
	rangeX, rangeY := hi.X-lo.X, hi.Y-lo.Y

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for _, p := range portrait.Points {
		col := int((p.X - lo.X) / rangeX * float64(width-1))
		row := height - 1 - int((p.Y-lo.Y)/rangeY*float64(height-1))

		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	// Axes, where they cross the visible area
	if lo.X <= 0 && hi.X >= 0 {
		col := int(-lo.X / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			if col >= 0 && col < width && canvas[row][col] == ' ' {
				canvas[row][col] = '│'
			}
		}
	}
	if lo.Y <= 0 && hi.Y >= 0 {
		row := height - 1 - int(-lo.Y/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if row >= 0 && row < height && canvas[row][col] == ' ' {
				canvas[row][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// PoincareSectionToASCII converts section data to ASCII plot
func PoincareSectionToASCII(section *PoincareSection, width, height int) string {
	if section == nil || len(section.Points) == 0 {
		return "No crossings detected"
	}

	return PhasePortraitToASCII(&PhasePortrait{Points: section.Points}, width, height)
}
