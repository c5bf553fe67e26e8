package physics

import (
	"math"

	"github.com/san-kum/dpend/internal/dynamo"
)

// DefaultTrailLength is the number of bob positions kept for drawing.
const DefaultTrailLength = 400

// Linkage is implemented by models that know their arm lengths.
type Linkage interface {
	Lengths() (l1, l2 float64)
}

type Point struct {
	X, Y float64
}

// Bobs returns the positions of both bobs with the pivot at the origin,
// y pointing up and a = 0 hanging straight down.
func Bobs(s dynamo.State, l1, l2 float64) (Point, Point) {
	p1 := Point{X: l1 * math.Sin(s.A1), Y: -l1 * math.Cos(s.A1)}
	p2 := Point{X: p1.X + l2*math.Sin(s.A2), Y: p1.Y - l2*math.Cos(s.A2)}
	return p1, p2
}

// Trail is a fixed-capacity ring buffer of positions.
type Trail struct {
	points []Point
	next   int
	size   int
}

func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{points: make([]Point, capacity)}
}

func (t *Trail) Push(p Point) {
	t.points[t.next] = p
	t.next = (t.next + 1) % len(t.points)
	if t.size < len(t.points) {
		t.size++
	}
}

func (t *Trail) Len() int { return t.size }
func (t *Trail) Cap() int { return len(t.points) }

// Points returns the stored positions, oldest first.
func (t *Trail) Points() []Point {
	out := make([]Point, 0, t.size)
	start := (t.next - t.size + len(t.points)) % len(t.points)
	for i := 0; i < t.size; i++ {
		out = append(out, t.points[(start+i)%len(t.points)])
	}
	return out
}

func (t *Trail) Reset() {
	t.next = 0
	t.size = 0
}

// Bounds returns the bounding box of points grown by pad times its extent
// on every side. A zero extent counts as 1. points must not be empty.
func Bounds(points []Point, pad float64) (lo, hi Point) {
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo.X, hi.X = min(lo.X, p.X), max(hi.X, p.X)
		lo.Y, hi.Y = min(lo.Y, p.Y), max(hi.Y, p.Y)
	}

	dx, dy := hi.X-lo.X, hi.Y-lo.Y
	if dx == 0 {
		dx = 1
	}
	if dy == 0 {
		dy = 1
	}
	lo.X -= dx * pad
	hi.X += dx * pad
	lo.Y -= dy * pad
	hi.Y += dy * pad
	return lo, hi
}
