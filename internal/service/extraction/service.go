package extraction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/walled99/Learn-Deutsch/internal/domain"
	"github.com/walled99/Learn-Deutsch/internal/provider"
	"github.com/walled99/Learn-Deutsch/pkg/bounded"
	"github.com/walled99/Learn-Deutsch/pkg/ctxutil"
)

type imageEncoder interface {
	Encode(ctx context.Context, ref string) (provider.Image, error)
}

type visionModel interface {
	Configured() bool
	GenerateContent(ctx context.Context, prompt string, img provider.Image) (string, error)
}

// Option customizes a Service.
type Option func(*Service)

// WithClock sets the clock used for backoff waits.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Service) { s.clock = clock }
}

// WithConnectivity sets the connectivity capability checked before encoding.
func WithConnectivity(c ConnectivityChecker) Option {
	return func(s *Service) { s.connectivity = c }
}

// WithMetrics sets the Prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// Service turns a photo of German text into vocabulary candidates.
// It holds only immutable dependencies and is safe for concurrent use.
type Service struct {
	log          *slog.Logger
	images       imageEncoder
	model        visionModel
	policy       RetryPolicy
	clock        clockwork.Clock
	connectivity ConnectivityChecker
	metrics      *Metrics
}

// NewService creates an extraction Service. The policy must be valid
// (see RetryPolicy.Validate); config.Validate guarantees this for loaded configs.
func NewService(
	logger *slog.Logger,
	images imageEncoder,
	model visionModel,
	policy RetryPolicy,
	opts ...Option,
) *Service {
	s := &Service{
		log:          logger.With("service", "extraction"),
		images:       images,
		model:        model,
		policy:       policy,
		clock:        clockwork.NewRealClock(),
		connectivity: AlwaysOnline{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Extract runs one extraction for the image at imageRef. It never returns
// an error or panics: every failure is reported through the outcome.
func (s *Service) Extract(ctx context.Context, imageRef string) (outcome domain.ExtractionOutcome) {
	id := uuid.New()
	ctx = ctxutil.WithExtractionID(ctx, id)
	log := s.log.With(
		slog.String("extraction_id", id.String()),
		slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
	)
	start := s.clock.Now()

	defer func() {
		if p := recover(); p != nil {
			log.ErrorContext(ctx, "extraction panicked", slog.Any("panic", p))
			outcome = domain.FailedOutcome(domain.NewExtractionError(domain.ErrorKindClient, domain.MsgTryAgain, &bounded.PanicError{Value: p}), 0)
			s.metrics.observeOutcome(outcome, 0)
		}
	}()

	outcome, rejected := s.extract(ctx, log, imageRef)

	s.metrics.observeOutcome(outcome, rejected)
	if outcome.Succeeded {
		log.InfoContext(ctx, "extraction succeeded",
			slog.Int("candidates", len(outcome.Candidates)),
			slog.Int("rejected", rejected),
			slog.Int("attempts", outcome.Attempts),
			slog.Duration("duration", s.clock.Since(start)),
		)
	} else {
		log.WarnContext(ctx, "extraction failed",
			slog.String("kind", outcome.FailureKind.String()),
			slog.Int("attempts", outcome.Attempts),
			slog.Duration("duration", s.clock.Since(start)),
		)
	}
	return outcome
}

func (s *Service) extract(ctx context.Context, log *slog.Logger, imageRef string) (domain.ExtractionOutcome, int) {
	if !s.model.Configured() {
		log.ErrorContext(ctx, "gemini api key is missing")
		return domain.FailedOutcome(domain.NewExtractionError(domain.ErrorKindConfiguration, domain.MsgNotConfigured, nil), 0), 0
	}

	if !s.connectivity.Online(ctx) {
		return domain.FailedOutcome(domain.NewExtractionError(domain.ErrorKindOffline, domain.MsgOffline, nil), 0), 0
	}

	img, err := s.images.Encode(ctx, imageRef)
	if err != nil {
		log.WarnContext(ctx, "image encode failed", slog.String("error", err.Error()))
		return domain.FailedOutcome(domain.NewExtractionError(domain.ErrorKindInput, domain.MsgImageUnreadable, err), 0), 0
	}

	prompt := BuildPrompt()
	orch := &orchestrator{policy: s.policy, clock: s.clock, metrics: s.metrics, log: log}
	report := orch.run(ctx, func(ctx context.Context) (string, error) {
		return s.model.GenerateContent(ctx, prompt, img)
	})
	if report.Err != nil {
		return domain.FailedOutcome(report.Err, report.Attempts), 0
	}
	if len(report.Backoffs) > 0 {
		log.DebugContext(ctx, "succeeded after retries", slog.Any("backoffs", report.Backoffs))
	}

	parsed, err := ParseCandidates(report.Text)
	if err != nil {
		return domain.FailedOutcome(Classify(err), report.Attempts), 0
	}
	for _, r := range parsed.Rejected {
		log.DebugContext(ctx, "candidate dropped",
			slog.Int("index", r.Index),
			slog.String("reason", r.Err.Error()),
		)
	}

	return domain.SucceededOutcome(parsed.Candidates, report.Attempts), len(parsed.Rejected)
}
