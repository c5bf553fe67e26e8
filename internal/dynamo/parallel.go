package dynamo

import (
	"context"
	"runtime"
	"sync"
)

// Ensemble runs independent initial conditions concurrently. Each run gets
// its own Simulator and a fresh set of metrics from the factory.
type Ensemble struct {
	dyn        System
	integrator Integrator
	metrics    func() []Metric
	workers    int
}

func NewEnsemble(dyn System, integrator Integrator, metrics func() []Metric) *Ensemble {
	return &Ensemble{
		dyn:        dyn,
		integrator: integrator,
		metrics:    metrics,
		workers:    runtime.NumCPU(),
	}
}

// SetWorkers caps the number of concurrent runs.
func (e *Ensemble) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	e.workers = n
}

// Run returns one result per initial state, in input order. The first
// error, if any, is returned after all workers stop.
func (e *Ensemble) Run(ctx context.Context, x0s []State, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(x0s))
	errs := make([]error, len(x0s))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < min(e.workers, len(x0s)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				s := New(e.dyn, e.integrator)
				if e.metrics != nil {
					for _, m := range e.metrics() {
						s.AddMetric(m)
					}
				}
				results[idx], errs[idx] = s.Run(ctx, x0s[idx], cfg)
			}
		}()
	}

	for i := range x0s {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
