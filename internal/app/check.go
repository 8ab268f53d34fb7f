package app

import (
	"context"
	"errors"
	"io"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/limbcalc/internal/cli"
	apperrors "github.com/agbru/limbcalc/internal/errors"
	"github.com/agbru/limbcalc/internal/limb"
	"github.com/agbru/limbcalc/internal/logging"
	"github.com/agbru/limbcalc/internal/metrics"
	"github.com/agbru/limbcalc/internal/selfcheck"
	"github.com/agbru/limbcalc/internal/server"
	"github.com/agbru/limbcalc/internal/sysmon"
	"github.com/agbru/limbcalc/internal/tui"
)

// runCheck orchestrates the self-check command: it runs every property
// against the math/big oracle and reports the outcome.
func (a *Application) runCheck(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	logger := logging.NewLogger(a.ErrWriter, "selfcheck")
	seed := a.checkSeed()
	features := limb.DetectFeatures()
	logger.Debug("limb kernels",
		logging.String("features", features.String()), logging.Int("limb_bits", limb.Width))

	if a.Config.MetricsAddr != "" {
		stop, err := a.serveMetrics(ctx, logger)
		if err != nil {
			return a.fail(err)
		}
		defer stop()
	}

	textOutput := !a.Config.Quiet && !a.Config.JSON
	if textOutput {
		cli.PrintCheckConfig(a.Config, seed, features, out)
	}
	var reporter selfcheck.Reporter = selfcheck.NullReporter{}
	if textOutput && !a.Config.TUI && a.IsTerminal(out) {
		reporter = cli.NewProgressReporter(out)
	}

	cfg := selfcheck.Config{
		Samples: a.Config.Samples,
		Workers: a.Config.Workers,
		MaxBits: a.Config.MaxBits,
		Seed:    seed,
	}
	runLogger := logging.Logger(logger)
	if a.Config.TUI {
		// Log lines would tear the dashboard.
		runLogger = logging.NewLogger(io.Discard, "selfcheck")
	}
	run := func(ctx context.Context, rep selfcheck.Reporter) (selfcheck.Report, error) {
		return selfcheck.NewRunner(cfg,
			selfcheck.WithReporter(rep),
			selfcheck.WithRecorder(a.Metrics),
			selfcheck.WithLogger(runLogger),
		).Run(ctx)
	}

	mc := metrics.NewMemoryCollector()
	sysmon.Sample() // primes the CPU delta reported after the run
	before := mc.Snapshot()
	var (
		report selfcheck.Report
		runErr error
	)
	if a.Config.TUI {
		report, runErr = tui.Run(ctx, checkNames(), seed, Version, run)
	} else {
		report, runErr = run(ctx, reporter)
	}
	after := mc.Snapshot()
	numGC, pause := after.Since(before)

	summary := cli.RunSummary{
		Report:    report,
		Features:  features.String(),
		System:    sysmon.Sample(),
		HeapAlloc: after.HeapAlloc,
		GCCycles:  numGC,
		GCPause:   pause,
	}
	if err := cli.DisplayReportWithConfig(out, summary, a.outputConfig()); err != nil {
		return a.fail(err)
	}

	switch {
	case runErr == nil:
		return apperrors.ExitSuccess
	case errors.Is(runErr, context.DeadlineExceeded):
		return a.fail(apperrors.TimeoutError{Operation: "self-check", Limit: a.Config.Timeout})
	case apperrors.IsContextError(runErr):
		return a.fail(runErr)
	default:
		// The report already names the failed checks.
		logger.Error("self-check failed", runErr, logging.Uint64("seed", seed))
		return apperrors.ExitCode(runErr)
	}
}

func checkNames() []string {
	checks := selfcheck.DefaultChecks()
	names := make([]string, len(checks))
	for i, c := range checks {
		names[i] = c.Name
	}
	return names
}

// checkSeed resolves the configured seed; 0 selects one from the clock.
func (a *Application) checkSeed() uint64 {
	if a.Config.Seed == 0 {
		return uint64(time.Now().UnixNano())
	}
	return uint64(a.Config.Seed)
}

// serveMetrics starts the metrics endpoint. The returned function shuts it
// down and waits for it to finish.
func (a *Application) serveMetrics(ctx context.Context, logger logging.Logger) (func(), error) {
	ln, err := net.Listen("tcp", a.Config.MetricsAddr)
	if err != nil {
		return nil, apperrors.NewConfigError("cannot serve metrics on %s: %v", a.Config.MetricsAddr, err)
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	srv := server.New(a.Metrics, logger)
	go func() {
		defer close(done)
		if err := srv.Serve(ctx, ln); err != nil {
			logger.Error("metrics endpoint stopped", err)
		}
	}()
	return func() {
		cancel()
		<-done
	}, nil
}
