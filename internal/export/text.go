package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/san-kum/dpend/internal/dynamo"
)

// Text writes one line per sample: energy (sign-padded, left-justified,
// width 16, 8 decimals) followed by a1 and a2.
type Text struct {
	w *bufio.Writer
}

func NewText(w io.Writer) *Text {
	return &Text{w: bufio.NewWriter(w)}
}

func (t *Text) Write(s dynamo.Sample) error {
	_, err := fmt.Fprintf(t.w, "%- 16.8f %f %f\n", s.Energy, s.State.A1, s.State.A2)
	return err
}

func (t *Text) Close() error {
	return t.w.Flush()
}
