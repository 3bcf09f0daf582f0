package extraction

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/walled99/Learn-Deutsch/internal/provider"
)

// ---------------------------------------------------------------------------
// Manual mocks (moq-style with func fields)
// ---------------------------------------------------------------------------

type mockImageEncoder struct {
	EncodeFunc func(ctx context.Context, ref string) (provider.Image, error)
}

func (m *mockImageEncoder) Encode(ctx context.Context, ref string) (provider.Image, error) {
	if m.EncodeFunc == nil {
		return provider.Image{Data: "aW1n", MIMEType: "image/jpeg"}, nil
	}
	return m.EncodeFunc(ctx, ref)
}

type mockVisionModel struct {
	ConfiguredFunc      func() bool
	GenerateContentFunc func(ctx context.Context, prompt string, img provider.Image) (string, error)
}

func (m *mockVisionModel) Configured() bool {
	if m.ConfiguredFunc == nil {
		return true
	}
	return m.ConfiguredFunc()
}

func (m *mockVisionModel) GenerateContent(ctx context.Context, prompt string, img provider.Image) (string, error) {
	return m.GenerateContentFunc(ctx, prompt, img)
}

type mockConnectivity struct {
	OnlineFunc func(ctx context.Context) bool
}

func (m *mockConnectivity) Online(ctx context.Context) bool {
	return m.OnlineFunc(ctx)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// fakeClock is the part of clockwork's fake clock the tests drive.
type fakeClock interface {
	clockwork.Clock
	Advance(d time.Duration)
	BlockUntilContext(ctx context.Context, n int) error
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// scripted returns a GenerateContent func that replays results in order
// and records the number of calls.
func scripted(calls *int32Counter, results ...result) func(context.Context, string, provider.Image) (string, error) {
	return func(_ context.Context, _ string, _ provider.Image) (string, error) {
		n := calls.inc()
		if n > len(results) {
			return "", &provider.StatusError{Provider: "gemini", StatusCode: 599}
		}
		r := results[n-1]
		return r.text, r.err
	}
}

type int32Counter struct{ n atomic.Int32 }

func (c *int32Counter) inc() int  { return int(c.n.Add(1)) }
func (c *int32Counter) load() int { return int(c.n.Load()) }

type result struct {
	text string
	err  error
}

func ok(text string) result { return result{text: text} }

func status(code int) result {
	return result{err: &provider.StatusError{Provider: "gemini", StatusCode: code}}
}

// driveBackoffs waits for each backoff timer in turn and fires it.
func driveBackoffs(t *testing.T, fc fakeClock, delays ...time.Duration) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, d := range delays {
		require.NoError(t, fc.BlockUntilContext(ctx, 1), "waiting for backoff %s", d)
		fc.Advance(d)
	}
}

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case v := <-ch:
		return v
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for result")
	}
	var zero T
	return zero
}
