package export

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/san-kum/dpend/internal/dynamo"
)

type ExportData struct {
	ID         string             `json:"id"`
	Model      string             `json:"model"`
	Integrator string             `json:"integrator"`
	Seed       uint64             `json:"seed"`
	Dt         float64            `json:"dt"`
	Steps      int                `json:"steps"`
	Initial    SampleData         `json:"initial"`
	Samples    []SampleData       `json:"samples"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
}

type SampleData struct {
	Step   int     `json:"step"`
	Time   float64 `json:"time"`
	A1     float64 `json:"a1"`
	A2     float64 `json:"a2"`
	P1     float64 `json:"p1"`
	P2     float64 `json:"p2"`
	Energy float64 `json:"energy"`
}

// JSON buffers every sample and writes one indented document on Close.
type JSON struct {
	w    io.Writer
	data ExportData
}

func NewJSON(w io.Writer, meta Meta) *JSON {
	return &JSON{
		w: w,
		data: ExportData{
			ID:         uuid.NewString(),
			Model:      meta.Model,
			Integrator: meta.Integrator,
			Seed:       meta.Seed,
			Dt:         meta.Dt,
			Steps:      meta.Steps,
			Initial:    sampleData(dynamo.Sample{State: meta.Initial, Energy: meta.InitialEnergy}),
			Samples:    make([]SampleData, 0, max(meta.Steps, 0)),
		},
	}
}

func (j *JSON) Write(s dynamo.Sample) error {
	j.data.Samples = append(j.data.Samples, sampleData(s))
	return nil
}

// SetMetrics attaches run metrics to the document.
func (j *JSON) SetMetrics(m map[string]float64) {
	j.data.Metrics = m
}

func (j *JSON) Close() error {
	encoder := json.NewEncoder(j.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(j.data)
}

func sampleData(s dynamo.Sample) SampleData {
	return SampleData{
		Step:   s.Step,
		Time:   s.Time,
		A1:     s.State.A1,
		A2:     s.State.A2,
		P1:     s.State.P1,
		P2:     s.State.P2,
		Energy: s.Energy,
	}
}
