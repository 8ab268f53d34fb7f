package selfcheck

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/limbcalc/internal/errors"
	"github.com/agbru/limbcalc/internal/logging"
)

//go:generate mockgen -source=runner.go -destination=mocks/mock_reporter.go -package=mocks

// TracerName is the instrumentation scope of the spans emitted by Run.
const TracerName = "github.com/agbru/limbcalc/internal/selfcheck"

// Config controls a self-check run.
type Config struct {
	// Samples is the number of random instances per check.
	Samples int
	// Workers bounds the goroutines evaluating samples of one check.
	Workers int
	// MaxBits bounds the significant bits of random operands.
	MaxBits uint64
	// Seed makes a run reproducible. Runs with equal seeds draw equal
	// operands regardless of Workers.
	Seed uint64
}

// CheckResult is the outcome of one check.
type CheckResult struct {
	Name     string        `json:"name"`
	Samples  int           `json:"samples"`
	Failures int           `json:"failures"`
	Duration time.Duration `json:"duration_ns"`
	// FirstFailure describes the counterexample with the lowest sample
	// index, or is empty when the check passed.
	FirstFailure string `json:"first_failure,omitempty"`
}

// Passed reports whether every sample held.
func (r CheckResult) Passed() bool { return r.Failures == 0 }

// Report aggregates the results of a run in check order.
type Report struct {
	Seed     uint64        `json:"seed"`
	Results  []CheckResult `json:"results"`
	Duration time.Duration `json:"duration_ns"`
}

// Failed returns the results of the checks that did not pass.
func (r Report) Failed() []CheckResult {
	var out []CheckResult
	for _, res := range r.Results {
		if !res.Passed() {
			out = append(out, res)
		}
	}
	return out
}

// Err returns a CheckFailure for the first failed check, or nil.
func (r Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	f := failed[0]
	detail := fmt.Sprintf("%d of %d samples failed; first: %s", f.Failures, f.Samples, f.FirstFailure)
	if len(failed) > 1 {
		detail += fmt.Sprintf(" (%d more checks failed)", len(failed)-1)
	}
	return apperrors.CheckFailure{Check: f.Name, Detail: detail}
}

// Reporter displays the progress of a run.
type Reporter interface {
	// Start is called once before the first check runs.
	Start(checks int)
	// CheckDone is called after each check, in check order.
	CheckDone(result CheckResult)
	// Finish is called once with the final report, also after cancellation.
	Finish(report Report)
}

// NullReporter discards progress. Useful for quiet mode or testing.
type NullReporter struct{}

func (NullReporter) Start(int)             {}
func (NullReporter) CheckDone(CheckResult) {}
func (NullReporter) Finish(Report)         {}

// Recorder receives per-check measurements.
type Recorder interface {
	CheckStarted()
	ObserveCheck(check string, samples, failures int, d time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) CheckStarted()                                {}
func (nopRecorder) ObserveCheck(string, int, int, time.Duration) {}

// Runner evaluates checks with a bounded worker pool.
type Runner struct {
	cfg      Config
	checks   []Check
	reporter Reporter
	recorder Recorder
	logger   logging.Logger
	tracer   trace.Tracer
}

// Option customizes a Runner.
type Option func(*Runner)

// WithChecks replaces the default check list.
func WithChecks(checks []Check) Option { return func(r *Runner) { r.checks = checks } }

// WithReporter sets the progress reporter.
func WithReporter(rep Reporter) Option { return func(r *Runner) { r.reporter = rep } }

// WithRecorder sets the metrics recorder.
func WithRecorder(rec Recorder) Option { return func(r *Runner) { r.recorder = rec } }

// WithLogger sets the logger used for per-check debug lines.
func WithLogger(l logging.Logger) Option { return func(r *Runner) { r.logger = l } }

// NewRunner returns a Runner over DefaultChecks. Non-positive Samples and
// Workers fall back to 1 and the CPU count.
func NewRunner(cfg Config, opts ...Option) *Runner {
	if cfg.Samples <= 0 {
		cfg.Samples = 1
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	r := &Runner{
		cfg:      cfg,
		checks:   DefaultChecks(),
		reporter: NullReporter{},
		recorder: nopRecorder{},
		logger:   logging.NewZerologAdapter(zerolog.Nop()),
		tracer:   otel.Tracer(TracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates every check in order. It returns the report and, when a
// check failed, a CheckFailure. A canceled or expired ctx stops the run
// early; the partial report is returned with ctx's error wrapped.
func (r *Runner) Run(ctx context.Context) (report Report, err error) {
	start := time.Now()
	report = Report{Seed: r.cfg.Seed, Results: make([]CheckResult, 0, len(r.checks))}
	r.reporter.Start(len(r.checks))
	// The deferred update reaches the caller through the named result.
	defer func() {
		report.Duration = time.Since(start)
		r.reporter.Finish(report)
	}()

	for _, c := range r.checks {
		if cerr := ctx.Err(); cerr != nil {
			return report, apperrors.WrapError(cerr, "self-check stopped before %q", c.Name)
		}
		res, cerr := r.runCheck(ctx, c)
		if cerr != nil {
			return report, apperrors.WrapError(cerr, "self-check stopped during %q", c.Name)
		}
		report.Results = append(report.Results, res)
		r.reporter.CheckDone(res)
	}
	return report, report.Err()
}

// shard is the slice of samples one worker owns.
type shard struct {
	failures int
	first    int
	detail   string
}

func (r *Runner) runCheck(ctx context.Context, c Check) (CheckResult, error) {
	ctx, span := r.tracer.Start(ctx, "selfcheck."+c.Name, trace.WithAttributes(
		attribute.String("check", c.Name),
		attribute.Int("samples", r.cfg.Samples),
		attribute.Int64("max_bits", int64(r.cfg.MaxBits)),
	))
	defer span.End()

	r.recorder.CheckStarted()
	start := time.Now()

	workers := min(r.cfg.Workers, r.cfg.Samples)
	shards := make([]shard, workers)
	seed := r.cfg.Seed ^ nameHash(c.Name)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for w := range workers {
		g.Go(func() error {
			return r.runShard(gctx, c, seed, w, workers, &shards[w])
		})
	}
	err := g.Wait()

	res := CheckResult{Name: c.Name, Samples: r.cfg.Samples, Duration: time.Since(start)}
	first := r.cfg.Samples
	for _, s := range shards {
		res.Failures += s.failures
		if s.failures > 0 && s.first < first {
			first, res.FirstFailure = s.first, s.detail
		}
	}
	r.recorder.ObserveCheck(c.Name, res.Samples, res.Failures, res.Duration)
	span.SetAttributes(attribute.Int("failures", res.Failures))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "interrupted")
		return res, err
	}
	if !res.Passed() {
		span.SetStatus(codes.Error, res.FirstFailure)
		r.logger.Error("check failed", errors.New(res.FirstFailure),
			logging.String("check", c.Name), logging.Int("failures", res.Failures))
	} else {
		r.logger.Debug("check passed", logging.String("check", c.Name),
			logging.Int("samples", res.Samples), logging.String("duration", res.Duration.String()))
	}
	return res, nil
}

// runShard evaluates samples w, w+n, w+2n, ... of c. Sample i always draws
// from the stream (seed, i), so the operands do not depend on the worker
// count.
func (r *Runner) runShard(ctx context.Context, c Check, seed uint64, w, n int, s *shard) error {
	for i := w; i < r.cfg.Samples; i += n {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := runSample(c, NewGen(seed, uint64(i), r.cfg.MaxBits)); err != nil {
			if s.failures == 0 {
				s.first, s.detail = i, fmt.Sprintf("sample %d: %v", i, err)
			}
			s.failures++
		}
	}
	return nil
}

// runSample turns a panic inside the code under test into a failed sample,
// runtime errors included.
func runSample(c Check, g *Gen) (err error) {
	defer func() {
		rec := recover()
		if re, ok := rec.(runtime.Error); ok {
			err = apperrors.CalculationError{Op: c.Name, Cause: re}
			return
		}
		if rec != nil {
			err = apperrors.RecoverPanic(c.Name, rec)
		}
	}()
	return c.Sample(g)
}

// nameHash spreads check names over the seed space so checks sharing a run
// seed draw unrelated operands.
func nameHash(name string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return h.Sum64()
}
