package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/dpend/internal/config"
	"github.com/san-kum/dpend/internal/experiment"
	"github.com/san-kum/dpend/internal/export"
)

var (
	configFile string
	preset     string
	model      string
	integrator string
	dt         float64
	seed       uint64
	validate   bool
	initState  []float64
	steps      int
	format     string
	// ensemble
	runs    int
	workers int
	// lyapunov
	d0 float64
	// phase portrait axes
	projection string
	// svg and live view
	svgWidth  int
	svgHeight int
	theme     string
)

// main streams the default loop when no subcommand is given. SIGINT and
// SIGTERM cancel the command's context; an interrupted stream exits 0.
func main() {
	log.SetFlags(0)
	log.SetPrefix("dpend: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newRootCmd registers commands and flags. Flag variables are reset to
// their defaults on every call.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "dpend",
		Short:        "double pendulum simulator",
		Long:         "dpend integrates a double pendulum with RK4 and prints energy, a1 and a2 once per step.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runStream,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&model, "model", config.DefaultModel, "model (point, canonical, compound)")
	pf.StringVar(&integrator, "integrator", config.DefaultIntegrator, "integrator (rk4, euler)")
	pf.Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	pf.Uint64Var(&seed, "seed", 0, "random seed (0 = current unix time)")
	pf.BoolVar(&validate, "validate", false, "stop at the first non-finite state")
	pf.Float64SliceVar(&initState, "state", nil, "initial state a1,a2,p1,p2 (skips the random draw)")
	pf.IntVar(&steps, "steps", 0, "number of steps (0 = forever for the stream, a default for bounded commands)")

	rootCmd.Flags().StringVar(&format, "format", config.DefaultFormat, fmt.Sprintf("output format %v", export.Formats))

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot energy and angles of a bounded run",
		Args:  cobra.NoArgs,
		RunE:  plotRun,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [integrator1] [integrator2] ...",
		Short: "compare integrators on the same initial condition",
		RunE:  compareIntegrators,
	}

	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov",
		Short: "estimate the largest Lyapunov exponent",
		Args:  cobra.NoArgs,
		RunE:  lyapunov,
	}
	lyapunovCmd.Flags().Float64Var(&d0, "d0", 1e-8, "initial separation")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "frequency analysis",
		Args:  cobra.NoArgs,
		RunE:  analyzeRun,
	}

	ensembleCmd := &cobra.Command{
		Use:   "ensemble",
		Short: "run consecutive seeds in parallel",
		Args:  cobra.NoArgs,
		RunE:  runEnsemble,
	}
	ensembleCmd.Flags().IntVar(&runs, "runs", 8, "number of seeds")
	ensembleCmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0 = NumCPU)")

	phaseCmd := &cobra.Command{
		Use:   "phase",
		Short: "phase space plot",
		Args:  cobra.NoArgs,
		RunE:  phasePlot,
	}
	phaseCmd.Flags().StringVar(&projection, "proj", "a1p1", "projection (a1p1, a2p2, a1a2, p1p2)")

	poincareCmd := &cobra.Command{
		Use:   "poincare",
		Short: "Poincaré section (a2, p2) at a1 = 0 mod 2π",
		Args:  cobra.NoArgs,
		RunE:  poincarePlot,
	}

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "write the trajectory of the second bob as SVG",
		Args:  cobra.NoArgs,
		RunE:  trajectorySVG,
	}
	svgCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	svgCmd.Flags().IntVar(&svgHeight, "height", 800, "image height")
	svgCmd.Flags().StringVar(&theme, "theme", "cyberpunk", "color theme")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "run simulation with live visualization",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	watchCmd.Flags().StringVar(&theme, "theme", "cyberpunk", "color theme")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	saveCmd := &cobra.Command{
		Use:   "save-config [path]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  saveConfig,
	}

	rootCmd.AddCommand(plotCmd, compareCmd, lyapunovCmd, analyzeCmd, ensembleCmd, phaseCmd, poincareCmd, svgCmd, watchCmd, presetsCmd, saveCmd)
	return rootCmd
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("model") {
		cfg.Model = model
	}
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("validate") {
		cfg.ValidateState = validate
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("state") {
		if len(initState) != 4 {
			return nil, fmt.Errorf("--state needs 4 values a1,a2,p1,p2, got %d", len(initState))
		}
		cfg.InitState = &config.InitStateConfig{A1: initState[0], A2: initState[1], P1: initState[2], P2: initState[3]}
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().Unix())
	}

	return cfg, cfg.Validate()
}

// newExperiment resolves the configuration and builds the run. Bounded
// commands pass the step count they fall back to when none is configured.
func newExperiment(cmd *cobra.Command, fallbackSteps int) (*experiment.Experiment, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	if fallbackSteps > 0 && cfg.Steps == 0 {
		cfg.Steps = fallbackSteps
	}

	e, err := experiment.New(cfg, experiment.NewRegistry())
	if err != nil {
		return nil, err
	}
	x0 := e.Initial()
	log.Printf("model %s, integrator %s, dt %g, seed %d, a1 %f, a2 %f", cfg.Model, cfg.Integrator, cfg.Dt, cfg.Seed, x0.A1, x0.A2)
	return e, nil
}

func runStream(cmd *cobra.Command, args []string) error {
	e, err := newExperiment(cmd, 0)
	if err != nil {
		return err
	}
	cfg := e.Config()

	w, err := export.New(cfg.Format, cmd.OutOrStdout(), e.Meta())
	if err != nil {
		return err
	}

	err = e.Stream(cmd.Context(), w)
	if j, ok := w.(*export.JSON); ok {
		j.SetMetrics(e.Simulator().Metrics())
	}
	if closeErr := w.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if errors.Is(err, context.Canceled) {
		log.Printf("interrupted")
		return nil
	}
	return err
}
