package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/dpend/internal/analysis"
	"github.com/san-kum/dpend/internal/config"
	"github.com/san-kum/dpend/internal/dynamo"
	"github.com/san-kum/dpend/internal/experiment"
	"github.com/san-kum/dpend/internal/export"
	"github.com/san-kum/dpend/internal/physics"
	"github.com/san-kum/dpend/internal/viz"
)

// Step counts bounded commands use when neither a preset, the config file
// nor --steps sets one.
const (
	defaultPlotSteps     = 600
	defaultAnalysisSteps = 4096
	defaultLyapunovSteps = 1200
	defaultPoincareSteps = 60000
)

func plotRun(cmd *cobra.Command, args []string) error {
	e, err := newExperiment(cmd, defaultPlotSteps)
	if err != nil {
		return err
	}
	result, err := e.Run(cmd.Context())
	if err != nil {
		return err
	}

	a1 := make([]float64, len(result.States))
	a2 := make([]float64, len(result.States))
	for i, s := range result.States {
		a1[i], a2[i] = s.A1, s.A2
	}

	fmt.Printf("model: %s\n", e.Config().Model)
	fmt.Printf("samples: %d\n\n", len(result.States))
	for _, series := range []struct {
		data    []float64
		caption string
	}{
		{result.Energies, "energy"},
		{a1, "a1 (upper arm angle)"},
		{a2, "a2 (lower arm angle)"},
	} {
		fmt.Println(viz.Plot(series.data, 80, 10, series.caption))
		fmt.Println()
	}

	fmt.Println("metrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Steps == 0 {
		cfg.Steps = defaultPlotSteps
	}

	registry := experiment.NewRegistry()
	names := args
	if len(names) == 0 {
		names = registry.ListIntegrators()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tDRIFT\tFINAL A1\tFINAL A2\tTIME")

	energies := make([][]float64, 0, len(names))
	for _, name := range names {
		run := cfg.Clone()
		run.Integrator = name

		e, err := experiment.New(run, registry)
		if err != nil {
			return err
		}

		start := time.Now()
		result, err := e.Run(cmd.Context())
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		final := result.Final()
		fmt.Fprintf(w, "%s\t%.3e\t%.6f\t%.6f\t%v\n", name, result.EnergyDrift, final.A1, final.A2, elapsed)
		energies = append(energies, result.Energies)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(viz.PlotMany(energies, 80, 10, fmt.Sprintf("energy: %v", names)))
	return nil
}

func lyapunov(cmd *cobra.Command, args []string) error {
	e, err := newExperiment(cmd, defaultLyapunovSteps)
	if err != nil {
		return err
	}
	cfg := e.Config()

	lambda := analysis.LyapunovExponent(e.Model(), e.Integrator(), e.Initial(), cfg.Dt, cfg.Steps, d0)

	fmt.Printf("lyapunov exponent: %.4f 1/s\n", lambda)
	fmt.Printf("steps: %d, dt: %g, d0: %g\n", cfg.Steps, cfg.Dt, d0)
	if lambda > 0.1 {
		fmt.Println("chaotic")
	} else {
		fmt.Println("regular")
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	e, err := newExperiment(cmd, defaultAnalysisSteps)
	if err != nil {
		return err
	}
	result, err := e.Run(cmd.Context())
	if err != nil {
		return err
	}
	cfg := e.Config()

	a1 := make([]float64, len(result.States))
	a2 := make([]float64, len(result.States))
	for i, s := range result.States {
		a1[i], a2[i] = s.A1, s.A2
	}

	ps := analysis.PowerSpectrum(a1)
	fmt.Println(viz.Plot(ps[:max(len(ps)/4, 1)], 80, 15, "power spectrum (a1)"))
	fmt.Println()

	for _, series := range []struct {
		name string
		data []float64
	}{{"a1", a1}, {"a2", a2}} {
		freq := analysis.DominantFrequency(series.data, cfg.Dt)
		fmt.Printf("%s dominant frequency: %.3f hz", series.name, freq)
		if freq > 0 {
			fmt.Printf(", period: %.3f s", 1.0/freq)
		}
		fmt.Println()
	}
	return nil
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	if runs <= 0 {
		return fmt.Errorf("%w: --runs must be positive", dynamo.ErrInvalidConfig)
	}
	e, err := newExperiment(cmd, defaultPlotSteps)
	if err != nil {
		return err
	}

	start := time.Now()
	x0s, results, err := e.Ensemble(cmd.Context(), runs, workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tA1\tA2\tDRIFT\tFLIPS")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%.6f\t%.6f\t%.3e\t%.0f\n",
			e.Config().Seed+uint64(i), x0s[i].A1, x0s[i].A2, r.EnergyDrift, r.Metrics["flips"])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d runs of %d steps in %v\n", len(results), e.Config().Steps, elapsed)
	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	proj, ok := analysis.Projections[projection]
	if !ok {
		return fmt.Errorf("unknown projection: %s", projection)
	}
	e, err := newExperiment(cmd, defaultPlotSteps)
	if err != nil {
		return err
	}
	cfg := e.Config()

	portrait := analysis.GeneratePhasePortrait(e.Model(), e.Integrator(), e.Initial(), proj, cfg.Dt, cfg.Steps)
	fmt.Printf("phase space plot: %s, %s\n\n", cfg.Model, projection)
	fmt.Print(analysis.PhasePortraitToASCII(portrait, 70, 20))
	return nil
}

func poincarePlot(cmd *cobra.Command, args []string) error {
	e, err := newExperiment(cmd, defaultPoincareSteps)
	if err != nil {
		return err
	}
	cfg := e.Config()

	section := analysis.GeneratePoincareSection(e.Model(), e.Integrator(), e.Initial(), cfg.Dt, cfg.Steps)
	fmt.Printf("poincaré section: %s, %d crossings\n\n", cfg.Model, len(section.Points))
	fmt.Println(analysis.PoincareSectionToASCII(section, 70, 20))
	return nil
}

func trajectorySVG(cmd *cobra.Command, args []string) error {
	th, ok := viz.GetTheme(theme)
	if !ok {
		return fmt.Errorf("unknown theme: %s (available: %v)", theme, viz.ThemeNames())
	}
	e, err := newExperiment(cmd, defaultPlotSteps)
	if err != nil {
		return err
	}
	result, err := e.Run(cmd.Context())
	if err != nil {
		return err
	}

	l1, l2 := e.Model().Lengths()
	points := make([]physics.Point, len(result.States))
	for i, s := range result.States {
		_, points[i] = physics.Bobs(s, l1, l2)
	}

	_, err = fmt.Print(export.TrajectoryToSVG(points, svgWidth, svgHeight, string(th.Accent)))
	return err
}

func runLive(cmd *cobra.Command, args []string) error {
	th, ok := viz.GetTheme(theme)
	if !ok {
		return fmt.Errorf("unknown theme: %s (available: %v)", theme, viz.ThemeNames())
	}
	e, err := newExperiment(cmd, 0)
	if err != nil {
		return err
	}
	cfg := e.Config()

	m := viz.NewModel(e.Model(), e.Integrator(), e.Initial(), cfg.Dt, cfg.Model, th)
	return viz.Run(m)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMODEL\tSTEPS\tINITIAL")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		initial := "random [π/2, 3π/2)"
		switch {
		case p.InitState != nil:
			initial = fmt.Sprintf("a1=%.3f a2=%.3f p1=%.3f p2=%.3f", p.InitState.A1, p.InitState.A2, p.InitState.P1, p.InitState.P2)
		case p.Draw != nil:
			initial = fmt.Sprintf("random [%.3f, %.3f)", p.Draw.Low, p.Draw.Low+p.Draw.Width)
		}
		stepsCol := "forever"
		if p.Steps > 0 {
			stepsCol = fmt.Sprintf("%d", p.Steps)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, p.Model, stepsCol, initial)
	}
	return w.Flush()
}

func saveConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", args[0])
	return nil
}
