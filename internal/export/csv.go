package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/dpend/internal/dynamo"
)

var csvHeader = []string{"step", "time", "a1", "a2", "p1", "p2", "energy"}

type CSV struct {
	w          *csv.Writer
	headerDone bool
}

func NewCSV(w io.Writer) *CSV {
	return &CSV{w: csv.NewWriter(w)}
}

func (c *CSV) Write(s dynamo.Sample) error {
	if !c.headerDone {
		if err := c.w.Write(csvHeader); err != nil {
			return err
		}
		c.headerDone = true
	}

	row := []string{strconv.Itoa(s.Step), formatFloat(s.Time)}
	for _, v := range s.State.Vector() {
		row = append(row, formatFloat(v))
	}
	row = append(row, formatFloat(s.Energy))

	return c.w.Write(row)
}

func (c *CSV) Close() error {
	c.w.Flush()
	return c.w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
