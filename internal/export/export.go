// Package export writes simulation samples to text, CSV, JSON and SVG.
package export

import (
	"fmt"
	"io"

	"github.com/san-kum/dpend/internal/dynamo"
)

// Writer is a dynamo.Sink that must be closed to flush buffered output.
type Writer interface {
	dynamo.Sink
	Close() error
}

// Meta describes the run a Writer is recording.
type Meta struct {
	Model      string
	Integrator string
	Seed       uint64
	Dt         float64
	Steps      int
	Initial    dynamo.State
	// InitialEnergy is the energy of Initial.
	InitialEnergy float64
}

// Formats lists the names accepted by New.
var Formats = []string{"text", "csv", "json"}

// New returns the writer for format. JSON needs a bounded run.
func New(format string, w io.Writer, meta Meta) (Writer, error) {
	switch format {
	case "", "text":
		return NewText(w), nil
	case "csv":
		return NewCSV(w), nil
	case "json":
		if meta.Steps <= 0 {
			return nil, fmt.Errorf("%w: json needs --steps", dynamo.ErrUnboundedOutput)
		}
		return NewJSON(w, meta), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (available: %v)", format, Formats)
	}
}
