package metrics

import (
	"math"

	"github.com/san-kum/dpend/internal/dynamo"
)

// Flips counts how often either arm swings over the top, i.e. its angle
// crosses an odd multiple of π.
type Flips struct {
	name     string
	w1, w2   float64
	flips    int
	observed bool
}

func NewFlips() *Flips {
	return &Flips{name: "flips"}
}

func (f *Flips) Name() string { return f.name }

func (f *Flips) Observe(x dynamo.State, t float64) {
	w1, w2 := winding(x.A1), winding(x.A2)
	if f.observed {
		f.flips += int(math.Abs(w1-f.w1) + math.Abs(w2-f.w2))
	}
	f.w1, f.w2 = w1, w2
	f.observed = true
}

func (f *Flips) Value() float64 {
	return float64(f.flips)
}

func (f *Flips) Reset() {
	f.flips = 0
	f.observed = false
}

// winding is the index of the 2π-wide band, centred on a hanging arm,
// that the angle falls in.
func winding(a float64) float64 {
	return math.Floor((a + math.Pi) / (2 * math.Pi))
}
