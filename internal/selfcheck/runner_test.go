package selfcheck_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	apperrors "github.com/agbru/limbcalc/internal/errors"
	"github.com/agbru/limbcalc/internal/selfcheck"
	"github.com/agbru/limbcalc/internal/selfcheck/mocks"
)

func passing(name string) selfcheck.Check {
	return selfcheck.Check{Name: name, Doc: "always holds", Sample: func(*selfcheck.Gen) error { return nil }}
}

func TestRunner_ReportsEveryCheck(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	rep := mocks.NewMockReporter(ctrl)
	rec := mocks.NewMockRecorder(ctrl)

	gomock.InOrder(
		rep.EXPECT().Start(2),
		rep.EXPECT().CheckDone(gomock.Any()).Times(2),
		rep.EXPECT().Finish(gomock.Any()),
	)
	rec.EXPECT().CheckStarted().Times(2)
	rec.EXPECT().ObserveCheck("a", 10, 0, gomock.Any())
	rec.EXPECT().ObserveCheck("b", 10, 0, gomock.Any())

	r := selfcheck.NewRunner(selfcheck.Config{Samples: 10, Workers: 3, MaxBits: 64, Seed: 1},
		selfcheck.WithChecks([]selfcheck.Check{passing("a"), passing("b")}),
		selfcheck.WithReporter(rep), selfcheck.WithRecorder(rec))
	report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Results) != 2 || report.Results[0].Name != "a" || report.Results[1].Name != "b" {
		t.Fatalf("results = %+v", report.Results)
	}
	if len(report.Failed()) != 0 || report.Err() != nil {
		t.Errorf("passing run reports failures: %+v", report.Failed())
	}
}

func TestRunner_FailingCheck(t *testing.T) {
	t.Parallel()
	failing := selfcheck.Check{Name: "odd", Doc: "never holds", Sample: func(*selfcheck.Gen) error {
		return errors.New("boom")
	}}
	r := selfcheck.NewRunner(selfcheck.Config{Samples: 25, Workers: 4, MaxBits: 64},
		selfcheck.WithChecks([]selfcheck.Check{passing("ok"), failing}))
	report, err := r.Run(context.Background())

	var cf apperrors.CheckFailure
	if !errors.As(err, &cf) || cf.Check != "odd" {
		t.Fatalf("err = %v, want CheckFailure for odd", err)
	}
	if apperrors.ExitCode(err) != apperrors.ExitErrorCheckFailed {
		t.Errorf("exit code = %d", apperrors.ExitCode(err))
	}
	res := report.Results[1]
	if res.Failures != 25 || res.Passed() {
		t.Errorf("failures = %d, want 25", res.Failures)
	}
	if !strings.HasPrefix(res.FirstFailure, "sample 0: boom") {
		t.Errorf("first failure = %q", res.FirstFailure)
	}
}

func TestRunner_PanicsCountAsFailures(t *testing.T) {
	t.Parallel()
	checks := []selfcheck.Check{
		{Name: "panics", Doc: "panics", Sample: func(*selfcheck.Gen) error { panic("kaboom") }},
		{Name: "index", Doc: "indexes out of range", Sample: func(g *selfcheck.Gen) error {
			var xs []int
			_ = xs[g.Uint64N(3)+1]
			return nil
		}},
	}
	r := selfcheck.NewRunner(selfcheck.Config{Samples: 4, Workers: 2}, selfcheck.WithChecks(checks))
	report, err := r.Run(context.Background())
	if err == nil {
		t.Fatal("expected a failure")
	}
	for _, res := range report.Results {
		if res.Failures != 4 {
			t.Errorf("%s: failures = %d, want 4", res.Name, res.Failures)
		}
	}
	if !strings.Contains(report.Results[0].FirstFailure, "kaboom") {
		t.Errorf("first failure = %q", report.Results[0].FirstFailure)
	}
}

func TestRunner_Canceled(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	rep := mocks.NewMockReporter(ctrl)
	rep.EXPECT().Start(1)
	rep.EXPECT().Finish(gomock.Any()).Do(func(r selfcheck.Report) {
		if len(r.Results) != 0 {
			t.Errorf("canceled run has results %+v", r.Results)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := selfcheck.NewRunner(selfcheck.Config{Samples: 5},
		selfcheck.WithChecks([]selfcheck.Check{passing("a")}), selfcheck.WithReporter(rep))
	_, err := r.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if apperrors.ExitCode(err) != apperrors.ExitErrorCanceled {
		t.Errorf("exit code = %d", apperrors.ExitCode(err))
	}
}

func TestRunner_SeedIndependentOfWorkers(t *testing.T) {
	t.Parallel()
	draw := selfcheck.Check{Name: "draw", Doc: "reports its operand", Sample: func(g *selfcheck.Gen) error {
		return fmt.Errorf("x=%v", g.Integer())
	}}
	first := func(workers int) string {
		r := selfcheck.NewRunner(selfcheck.Config{Samples: 16, Workers: workers, MaxBits: 256, Seed: 99},
			selfcheck.WithChecks([]selfcheck.Check{draw}))
		report, _ := r.Run(context.Background())
		return report.Results[0].FirstFailure
	}
	if a, b := first(1), first(5); a != b {
		t.Errorf("workers changed the draw: %q vs %q", a, b)
	}
}

func TestRunner_DefaultChecks(t *testing.T) {
	t.Parallel()
	r := selfcheck.NewRunner(selfcheck.Config{Samples: 40, Workers: 4, MaxBits: 320, Seed: 7})
	report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Results) != len(selfcheck.DefaultChecks()) {
		t.Errorf("ran %d checks, want %d", len(report.Results), len(selfcheck.DefaultChecks()))
	}
	if report.Seed != 7 || report.Duration <= 0 {
		t.Errorf("report = %+v", report)
	}
}

func TestRunner_ReturnsMeasuredDuration(t *testing.T) {
	t.Parallel()
	slow := selfcheck.Check{Name: "slow", Doc: "sleeps", Sample: func(*selfcheck.Gen) error {
		time.Sleep(time.Millisecond)
		return nil
	}}
	ctrl := gomock.NewController(t)
	rep := mocks.NewMockReporter(ctrl)
	var finished selfcheck.Report
	rep.EXPECT().Start(1)
	rep.EXPECT().CheckDone(gomock.Any())
	rep.EXPECT().Finish(gomock.Any()).Do(func(r selfcheck.Report) { finished = r })

	r := selfcheck.NewRunner(selfcheck.Config{Samples: 2, Workers: 1, MaxBits: 64},
		selfcheck.WithChecks([]selfcheck.Check{slow}), selfcheck.WithReporter(rep))
	report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Duration < 2*time.Millisecond {
		t.Errorf("returned Duration = %v, want at least 2ms", report.Duration)
	}
	if report.Duration != finished.Duration {
		t.Errorf("returned Duration %v differs from reported %v", report.Duration, finished.Duration)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	partial, _ := selfcheck.NewRunner(selfcheck.Config{Samples: 1},
		selfcheck.WithChecks([]selfcheck.Check{slow})).Run(ctx)
	if partial.Duration <= 0 {
		t.Errorf("canceled run Duration = %v, want > 0", partial.Duration)
	}
}
