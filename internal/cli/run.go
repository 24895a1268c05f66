package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/thruflo/gameloop/internal/config"
	"github.com/thruflo/gameloop/internal/game"
	"github.com/thruflo/gameloop/internal/gameloop"
	"github.com/thruflo/gameloop/internal/logging"
	"github.com/thruflo/gameloop/internal/loop"
)

var (
	runConfigPath   string
	runTicks        int
	runRate         int
	runFrameDelay   time.Duration
	runSimulated    bool
	runFailUpdateAt int
	runFailRenderAt int
	runOutput       string
	runVerbose      bool
)

// isTerminal reports whether w is an interactive terminal. It can be
// overridden in tests.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the placeholder game through the loop",
	Long: `Runs the placeholder game through the fixed-timestep driver, stepping
once per frame delay until the tick limit is reached or the process is
interrupted, then prints a summary.

With --simulated the driver reads a manual clock that advances by the frame
delay on every frame, so runs are deterministic and do not sleep.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "path to gameloop.yaml")
	runCmd.Flags().IntVarP(&runTicks, "ticks", "n", config.DefaultMaxTicks, "number of steps to run (0 runs until interrupted)")
	runCmd.Flags().IntVar(&runRate, "rate", config.DefaultUpdatesPerSecond, "simulation updates per second")
	runCmd.Flags().DurationVar(&runFrameDelay, "frame-delay", config.DefaultFrameDelay, "pause between steps")
	runCmd.Flags().BoolVar(&runSimulated, "simulated", false, "advance a manual clock instead of sleeping")
	runCmd.Flags().IntVar(&runFailUpdateAt, "fail-update-at", 0, "make the n-th update fail (0 disables)")
	runCmd.Flags().IntVar(&runFailRenderAt, "fail-render-at", 0, "make the n-th render fail (0 disables)")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "text", "summary format: text or yaml")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "log every step failure and run event")
	rootCmd.AddCommand(runCmd)
}

// runSummary is what `gameloop run` reports when the loop stops.
type runSummary struct {
	Reason           string  `yaml:"reason"`
	Ticks            int     `yaml:"ticks"`
	Updates          int     `yaml:"updates"`
	Renders          int     `yaml:"renders"`
	Remainder        float32 `yaml:"remainder"`
	UpdatesPerSecond int     `yaml:"updates_per_second"`
	Simulated        bool    `yaml:"simulated"`
	Error            string  `yaml:"error,omitempty"`
}

func runRun(cmd *cobra.Command, args []string) error {
	if runOutput != "text" && runOutput != "yaml" {
		return fmt.Errorf("unknown output format %q (want text or yaml)", runOutput)
	}

	cfg, err := config.LoadConfig(runConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyRunFlags(cmd, cfg)
	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	level := cfg.LogLevel()
	if runVerbose {
		level = logging.LevelDebug
	}
	logging.SetLevel(level)
	logging.SetOutput(log.New(cmd.ErrOrStderr(), "", log.LstdFlags))
	logging.Debug("config loaded",
		"path", runConfigPath,
		"updates_per_second", cfg.Loop.UpdatesPerSecond,
		"max_ticks", cfg.Run.MaxTicks,
		"simulated", cfg.Run.Simulated)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var progress io.Writer
	if errOut := cmd.ErrOrStderr(); isTerminal(errOut) {
		progress = errOut
	}

	st := &game.State{FailUpdateAt: runFailUpdateAt, FailRenderAt: runFailRenderAt}
	result := playGame(ctx, cfg, st, progress)

	summary := runSummary{
		Reason:           result.Reason.String(),
		Ticks:            result.Ticks,
		Updates:          st.Updates,
		Renders:          st.Renders,
		Remainder:        st.LastRemainder,
		UpdatesPerSecond: cfg.Loop.UpdatesPerSecond,
		Simulated:        cfg.Run.Simulated,
	}
	if result.Err != nil {
		summary.Error = result.Err.Error()
	}

	if err := writeSummary(cmd.OutOrStdout(), summary, runOutput); err != nil {
		return err
	}

	if result.Err != nil {
		return fmt.Errorf("loop stopped after %d ticks: %w", result.Ticks, result.Err)
	}
	return nil
}

// applyRunFlags overrides config values with flags the user set explicitly.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("ticks") {
		cfg.Run.MaxTicks = runTicks
	}
	if flags.Changed("rate") {
		cfg.Loop.UpdatesPerSecond = runRate
	}
	if flags.Changed("frame-delay") {
		cfg.Run.FrameDelay = runFrameDelay
	}
	if flags.Changed("simulated") {
		cfg.Run.Simulated = runSimulated
	}
}

// playGame drives st with the settings in cfg until the runner stops.
// When progress is non-nil a single status line is redrawn on it per tick.
func playGame(ctx context.Context, cfg *config.Config, st *game.State, progress io.Writer) loop.Result {
	driverOpts := gameloop.Options{UpdatesPerSecond: cfg.Loop.UpdatesPerSecond}
	runOpts := loop.Options{
		MaxTicks:        cfg.Run.MaxTicks,
		FrameDelay:      cfg.Run.FrameDelay,
		SpiralThreshold: cfg.Run.SpiralThreshold,
	}

	if cfg.Run.Simulated {
		clock := gameloop.NewManualClock(time.Unix(0, 0))
		driverOpts.Clock = clock
		runOpts.Sleep = func(_ context.Context, d time.Duration) { clock.Advance(d) }
	}

	if progress != nil {
		runOpts.OnTick = func(tick int, stats gameloop.StepStats) {
			fmt.Fprintf(progress, "\rtick %d  updates %d  remainder %.2f", tick, st.Updates, stats.Remainder)
		}
	}

	driver := gameloop.NewWithOptions(st, driverOpts)
	result := loop.Run(ctx, driver, runOpts)

	if progress != nil {
		fmt.Fprintln(progress)
	}
	return result
}

func writeSummary(w io.Writer, s runSummary, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		return enc.Close()
	}

	printField(w, "Reason", s.Reason)
	printField(w, "Ticks", fmt.Sprintf("%d", s.Ticks))
	printField(w, "Updates", fmt.Sprintf("%d", s.Updates))
	printField(w, "Renders", fmt.Sprintf("%d", s.Renders))
	printField(w, "Remainder", fmt.Sprintf("%.3f", s.Remainder))
	printField(w, "Rate", fmt.Sprintf("%d/s", s.UpdatesPerSecond))
	if s.Simulated {
		printField(w, "Clock", "simulated")
	}
	if s.Error != "" {
		printField(w, "Error", s.Error)
	}
	return nil
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%-10s %s\n", label+":", value)
}
