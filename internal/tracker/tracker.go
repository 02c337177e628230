package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"
	"tracker/internal/config"
	"tracker/pkg/carrier"
	"tracker/pkg/domain"
	"tracker/pkg/logger"
	"tracker/pkg/metrics"
	"tracker/pkg/serrors"
	"tracker/pkg/trackingnumber"

	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

const instrumentationName = "tracker/internal/tracker"

// retryable kinds are retried against the same provider.
var retryable = []serrors.Kind{ //nolint: gochecknoglobals
	serrors.ErrUnavailable,
	serrors.ErrTimeout,
	serrors.ErrRateLimited,
}

// fallthroughKinds move the lookup on to the next provider of the chain.
var fallthroughKinds = []serrors.Kind{ //nolint: gochecknoglobals
	serrors.ErrUnavailable,
	serrors.ErrTimeout,
	serrors.ErrRateLimited,
	serrors.ErrUnauthorized,
}

// Options configure retries, timeouts and fallback ordering.
type Options struct {
	// AttemptTimeout bounds every single call to a provider, retries included
	// individually. Each provider of a chain gets its own budget.
	AttemptTimeout time.Duration
	// MaxRetries is how many times a transient failure is retried per provider.
	MaxRetries uint64
	// RetryBaseDelay and RetryMaxDelay shape the exponential backoff.
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
	// Chains overrides DefaultChains per carrier tag.
	Chains map[string][]string
	// UnderReporting overrides DefaultUnderReporting when not nil.
	UnderReporting []string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		AttemptTimeout: cfg.Tracking.AttemptTimeout,
		MaxRetries:     cfg.Tracking.MaxRetries,
		RetryBaseDelay: cfg.Tracking.RetryBaseDelay,
		RetryMaxDelay:  cfg.Tracking.RetryMaxDelay,
		Chains:         cfg.Tracking.Chains,
		UnderReporting: cfg.Tracking.UnderReporting,
	}
}

func (o Options) withDefaults() Options {
	if o.AttemptTimeout <= 0 {
		o.AttemptTimeout = 15 * time.Second
	}
	if o.RetryBaseDelay <= 0 {
		o.RetryBaseDelay = 200 * time.Millisecond
	}
	if o.RetryMaxDelay < o.RetryBaseDelay {
		o.RetryMaxDelay = o.RetryBaseDelay
	}
	if o.UnderReporting == nil {
		o.UnderReporting = DefaultUnderReporting()
	}

	return o
}

// Deps are the collaborators of the orchestrator.
type Deps struct {
	// Normalizers are the registered provider clients. Providers named in a
	// chain but not registered are skipped.
	Normalizers []carrier.Normalizer
	// Classifier validates numbers against carrier formats. Defaults to trackingnumber.New.
	Classifier *trackingnumber.Classifier
	// MeterProvider and TracerProvider default to no-op implementations.
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

// tracker is the concrete implementation of the Tracker interface.
type tracker struct {
	options    Options
	classifier *trackingnumber.Classifier
	chains     map[domain.Carrier][]carrier.Normalizer
	under      map[string]struct{}

	tracer    trace.Tracer
	attempts  metric.Int64Counter
	fallbacks metric.Int64Counter
	duration  metric.Float64Histogram
}

// New builds a Tracker. A chain naming a provider that is neither built in nor
// registered is a configuration error.
func New(ctx context.Context, deps Deps, options Options) (Tracker, error) {
	options = options.withDefaults()

	registered := make(map[string]carrier.Normalizer, len(deps.Normalizers))
	for _, n := range deps.Normalizers {
		if _, ok := registered[n.Provider()]; ok {
			return nil, fmt.Errorf("provider %q registered twice", n.Provider())
		}
		registered[n.Provider()] = n
	}

	chains := DefaultChains()
	for tag, providers := range options.Chains {
		c, err := domain.ParseCarrier(tag)
		if err != nil {
			return nil, fmt.Errorf("invalid fallback chain: %w", err)
		}
		chains[c] = providers
	}

	known := knownProviders()
	t := &tracker{
		options:    options,
		classifier: deps.Classifier,
		chains:     make(map[domain.Carrier][]carrier.Normalizer, len(chains)),
		under:      make(map[string]struct{}, len(options.UnderReporting)),
	}
	if t.classifier == nil {
		t.classifier = trackingnumber.New()
	}
	for _, p := range options.UnderReporting {
		t.under[p] = struct{}{}
	}

	for c, providers := range chains {
		for _, p := range providers {
			n, ok := registered[p]
			if !ok {
				if _, builtin := known[p]; !builtin {
					return nil, fmt.Errorf("unknown provider %q in %s fallback chain", p, c)
				}
				logger.Debug(ctx, "provider is not registered, skipping",
					zap.String("carrier", c.String()), zap.String("provider", p))

				continue
			}
			t.chains[c] = append(t.chains[c], n)
		}
	}

	if err := t.instrument(deps); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *tracker) instrument(deps Deps) error {
	mp := deps.MeterProvider
	if mp == nil {
		mp = metricnoop.NewMeterProvider()
	}
	tp := deps.TracerProvider
	if tp == nil {
		tp = tracenoop.NewTracerProvider()
	}
	t.tracer = tp.Tracer(instrumentationName)

	meter := mp.Meter(instrumentationName)
	var err error
	if t.attempts, err = meter.Int64Counter("tracker.attempts",
		metric.WithDescription("Calls made to carrier providers, by outcome")); err != nil {
		return fmt.Errorf("could not create attempts counter: %w", err)
	}
	if t.fallbacks, err = meter.Int64Counter("tracker.fallbacks",
		metric.WithDescription("Lookups moved on to an alternate provider")); err != nil {
		return fmt.Errorf("could not create fallbacks counter: %w", err)
	}
	if t.duration, err = meter.Float64Histogram("tracker.attempt.duration",
		metric.WithDescription("Duration of calls to carrier providers"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...)); err != nil {
		return fmt.Errorf("could not create duration histogram: %w", err)
	}

	return nil
}

// Identify returns every carrier whose formats accept the number, in detection order.
func (t *tracker) Identify(trackingNumber string) []domain.Carrier {
	return t.classifier.Match(trackingNumber)
}

// Track resolves the provider chain for the request and walks it until a
// provider returns a sufficient result. The caller receives the first
// sufficient result, otherwise the last insufficient one, otherwise the last
// error.
func (t *tracker) Track(ctx context.Context, req Request) (*domain.TrackResult, error) {
	number := domain.NormalizeTrackingNumber(req.TrackingNumber)
	if number == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "tracking number is required")
	}

	ctx, span := t.tracer.Start(ctx, "tracker.Track", trace.WithAttributes(
		attribute.String("tracking_number", number),
		attribute.String("declared_carrier", req.Carrier),
	))
	defer span.End()
	ctx = logger.WithFields(ctx, zap.String("trackingNumber", number))

	res, err := t.track(ctx, number, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}
	span.SetAttributes(attribute.String("provider", res.Provider), attribute.Int("events", len(res.Events)))

	return res, nil
}

func (t *tracker) track(ctx context.Context, number string, req Request) (*domain.TrackResult, error) {
	selected, err := t.selectCarrier(number, req.Carrier)
	if err != nil {
		return nil, err
	}

	chain := t.chains[selected]
	if len(chain) == 0 {
		return nil, serrors.With(serrors.ErrUnavailable, "no provider is configured for carrier %s", selected)
	}

	opts := carrier.Options{MinDate: req.MinDate}

	var (
		best    *domain.TrackResult
		lastErr error
	)
	for i, n := range chain {
		actx := logger.WithFields(ctx, zap.String("provider", n.Provider()), zap.String("carrier", n.Carrier().String()))

		if i > 0 {
			if !t.classifier.Identify(n.Carrier(), number) {
				logger.Debug(actx, "tracking number does not validate for fallback provider, skipping")

				continue
			}
			t.fallbacks.Add(ctx, 1, metric.WithAttributes(
				attribute.String("carrier", selected.String()),
				attribute.String("provider", n.Provider()),
			))
			logger.Info(actx, "falling back to alternate provider")
		}

		res, err := t.attempt(actx, n, number, opts)
		if err != nil {
			lastErr = err
			if !serrors.IsAny(err, fallthroughKinds...) {
				break
			}
			logger.Warn(actx, "provider failed", zap.Error(err))

			continue
		}

		if t.sufficient(n, res) {
			return res, nil
		}
		logger.Debug(actx, "provider returned insufficient data", zap.Int("events", len(res.Events)))
		best = res
	}

	if best != nil {
		return best, nil
	}

	return nil, lastErr
}

// selectCarrier picks the chain for a declared carrier, or the first carrier
// whose formats accept the number. Unrecognized numbers never reach a provider.
func (t *tracker) selectCarrier(number, declared string) (domain.Carrier, error) {
	if declared != "" {
		c, err := domain.ParseCarrier(declared)
		if err != nil {
			return "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid carrier")
		}

		return c, nil
	}

	matches := t.classifier.Match(number)
	if len(matches) == 0 {
		return "", serrors.With(serrors.ErrBadRequest, "tracking number %s matches no known carrier", number)
	}

	return matches[0], nil
}

func (t *tracker) sufficient(n carrier.Normalizer, res *domain.TrackResult) bool {
	if _, ok := t.under[n.Provider()]; !ok {
		return true
	}

	return len(res.Events) > 1
}

// attempt calls one provider, retrying transient failures with bounded
// exponential backoff.
func (t *tracker) attempt(
	ctx context.Context,
	n carrier.Normalizer,
	number string,
	opts carrier.Options) (*domain.TrackResult, error) {
	ctx, span := t.tracer.Start(ctx, "tracker.attempt", trace.WithAttributes(
		attribute.String("provider", n.Provider()),
		attribute.String("carrier", n.Carrier().String()),
	))
	defer span.End()

	backoff := retry.NewExponential(t.options.RetryBaseDelay)
	backoff = retry.WithCappedDuration(t.options.RetryMaxDelay, backoff)
	backoff = retry.WithMaxRetries(t.options.MaxRetries, backoff)

	var res *domain.TrackResult
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		r, err := t.call(ctx, n, number, opts)
		if err != nil {
			if serrors.IsAny(err, retryable...) {
				logger.Debug(ctx, "transient provider failure", zap.Error(err))

				return retry.RetryableError(err)
			}

			return err
		}
		res = r

		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			err = serrors.Wrap(serrors.ErrTimeout, err, "tracking via %s cancelled", n.Provider())
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	return res, nil
}

// call makes a single provider call under its own timeout.
func (t *tracker) call(
	ctx context.Context,
	n carrier.Normalizer,
	number string,
	opts carrier.Options) (*domain.TrackResult, error) {
	cctx, cancel := context.WithTimeout(ctx, t.options.AttemptTimeout)
	defer cancel()

	start := time.Now()
	res, err := n.Track(cctx, number, opts)
	if err == nil && res == nil {
		err = serrors.With(serrors.ErrUnavailable, "provider %s returned no result", n.Provider())
	}
	if err != nil && serrors.KindOf(err) == nil && cctx.Err() != nil {
		err = serrors.Wrap(serrors.ErrTimeout, err, "tracking via %s timed out", n.Provider())
	}

	outcome := "ok"
	if err != nil {
		outcome = outcomeOf(err)
	}
	attrs := metric.WithAttributes(
		attribute.String("provider", n.Provider()),
		attribute.String("outcome", outcome),
	)
	t.attempts.Add(ctx, 1, attrs)
	t.duration.Record(ctx, time.Since(start).Seconds(), attrs)

	if err != nil {
		return nil, err
	}

	return res, nil
}

func outcomeOf(err error) string {
	if k := serrors.KindOf(err); k != nil {
		return k.Error()
	}

	return "error"
}
