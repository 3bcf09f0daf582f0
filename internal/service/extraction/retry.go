package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sethvargo/go-retry"

	"github.com/walled99/Learn-Deutsch/internal/domain"
	"github.com/walled99/Learn-Deutsch/pkg/bounded"
)

// RetryPolicy holds the tuning values of the orchestrator.
// Parameters come from config.ExtractionConfig.
type RetryPolicy struct {
	MaxAttempts    int
	AttemptTimeout time.Duration
	BackoffBase    time.Duration
}

// DefaultRetryPolicy is 3 attempts, 30s each, waiting 2s then 4s between them.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    3,
		AttemptTimeout: 30 * time.Second,
		BackoffBase:    2 * time.Second,
	}
}

// Validate rejects policies the orchestrator cannot run.
func (p RetryPolicy) Validate() error {
	if p.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1 (got %d)", p.MaxAttempts)
	}
	if p.AttemptTimeout <= 0 {
		return fmt.Errorf("attempt_timeout must be > 0 (got %s)", p.AttemptTimeout)
	}
	if p.BackoffBase <= 0 {
		return fmt.Errorf("backoff_base must be > 0 (got %s)", p.BackoffBase)
	}
	return nil
}

// schedule yields the wait before attempt n+1: base * 2^(n-1), no jitter,
// and stops after MaxAttempts-1 waits.
func (p RetryPolicy) schedule() retry.Backoff {
	return retry.WithMaxRetries(uint64(p.MaxAttempts-1), retry.NewExponential(p.BackoffBase))
}

type attemptState int

const (
	stateIdle attemptState = iota
	stateAttempting
	stateSuccess
	stateRetryableFailure
	stateTerminalFailure
)

func (s attemptState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateAttempting:
		return "attempting"
	case stateSuccess:
		return "success"
	case stateRetryableFailure:
		return "retryable_failure"
	case stateTerminalFailure:
		return "terminal_failure"
	}
	return "unknown"
}

// runReport is what one orchestrated call produced.
type runReport struct {
	Text     string
	Err      *domain.ExtractionError
	Attempts int
	Backoffs []time.Duration
}

// orchestrator runs a transport call with per-attempt deadlines and
// backoff between retryable failures. It holds no per-call state.
type orchestrator struct {
	policy  RetryPolicy
	clock   clockwork.Clock
	metrics *Metrics
	log     *slog.Logger
}

// run performs up to policy.MaxAttempts sequential attempts of call.
// On exhaustion the last retryable failure is returned. Caller
// cancellation ends the run after the current attempt or wait.
func (o *orchestrator) run(ctx context.Context, call func(ctx context.Context) (string, error)) runReport {
	var (
		report   runReport
		schedule = o.policy.schedule()
		state    = stateIdle
	)

	for {
		o.log.DebugContext(ctx, "attempt starting",
			slog.Int("attempt", report.Attempts+1),
			slog.String("from", state.String()),
		)
		state = stateAttempting
		report.Attempts++

		start := o.clock.Now()
		text, err := bounded.Run(ctx, o.policy.AttemptTimeout, call)
		elapsed := o.clock.Since(start)

		if err == nil {
			state = stateSuccess
			o.metrics.observeAttempt("", elapsed)
			o.log.DebugContext(ctx, "attempt finished",
				slog.Int("attempt", report.Attempts),
				slog.String("state", state.String()),
				slog.Duration("duration", elapsed),
			)
			report.Text = text
			report.Err = nil
			return report
		}

		failure := Classify(err)
		o.metrics.observeAttempt(failure.Kind, elapsed)

		state = stateTerminalFailure
		if failure.Retryable() && ctx.Err() == nil {
			state = stateRetryableFailure
		}

		o.log.WarnContext(ctx, "attempt failed",
			slog.Int("attempt", report.Attempts),
			slog.String("state", state.String()),
			slog.String("kind", failure.Kind.String()),
			slog.Duration("duration", elapsed),
			slog.String("error", err.Error()),
		)

		report.Err = failure
		if state == stateTerminalFailure {
			return report
		}

		delay, stop := schedule.Next()
		if stop {
			return report
		}
		if err := o.sleep(ctx, delay); err != nil {
			report.Err = Classify(err)
			return report
		}
		report.Backoffs = append(report.Backoffs, delay)
	}
}

// sleep waits for d on the orchestrator's clock or until ctx is done.
func (o *orchestrator) sleep(ctx context.Context, d time.Duration) error {
	timer := o.clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.Chan():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
