package calculator

import (
	"context"
	"errors"
	"fmt"
	"passrate/pkg/domain"
	"passrate/pkg/logger"
	"passrate/pkg/metrics"
	"passrate/pkg/probability"
	"passrate/pkg/serrors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "passrate/internal/calculator"

// Outcome values recorded on the calculations counter.
const (
	OutcomeOK                 = "ok"
	OutcomeInvalidTrialCount  = "invalid_trial_count"
	OutcomeInvalidSuccessRate = "invalid_success_rate"
)

// Options configure telemetry for the calculator. Nil providers fall back to
// the global OpenTelemetry providers.
type Options struct {
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

// calculator is the concrete implementation of the Calculator interface.
// It wraps the pure probability engine with logging, tracing and metrics.
type calculator struct {
	tracer       trace.Tracer
	calculations metric.Int64Counter
	duration     metric.Float64Histogram
}

// Calculate implements Calculator.
func (c calculator) Calculate(ctx context.Context,
	rawTrialCount, rawSuccessRate string) (*domain.Calculation, error) {
	ctx, span := c.tracer.Start(ctx, "Calculator.Calculate", trace.WithAttributes(
		attribute.String("passrate.trial_count.raw", rawTrialCount),
		attribute.String("passrate.success_rate.raw", rawSuccessRate),
	))
	defer span.End()

	start := time.Now()
	in, err := probability.Parse(rawTrialCount, rawSuccessRate)
	if err != nil {
		outcome := outcomeOf(err)
		c.record(ctx, outcome, start)
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		logger.Debug(ctx, "rejected calculation input",
			zap.String("trial_count", rawTrialCount),
			zap.String("success_rate", rawSuccessRate),
			zap.String("outcome", outcome),
			zap.Error(err))

		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "")
	}

	res := &domain.Calculation{
		Trials:      in.Trials,
		SuccessRate: in.SuccessRate,
		Threshold:   probability.Threshold(in.Trials),
		Probability: probability.Calculate(in.Trials, in.SuccessRate),
	}
	c.record(ctx, OutcomeOK, start)
	span.SetAttributes(
		attribute.Int("passrate.trials", res.Trials),
		attribute.Float64("passrate.success_rate", res.SuccessRate),
		attribute.Float64("passrate.probability", res.Probability),
	)
	logger.Debug(ctx, "calculated probability",
		zap.Int("trials", res.Trials),
		zap.Float64("success_rate", res.SuccessRate),
		zap.Int("threshold", res.Threshold),
		zap.Float64("probability", res.Probability))

	return res, nil
}

func (c calculator) record(ctx context.Context, outcome string, start time.Time) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	c.calculations.Add(ctx, 1, attrs)
	c.duration.Record(ctx, time.Since(start).Seconds(), attrs)
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, probability.ErrInvalidTrialCount):
		return OutcomeInvalidTrialCount
	case errors.Is(err, probability.ErrInvalidSuccessRate):
		return OutcomeInvalidSuccessRate
	default:
		return "error"
	}
}

// New creates a Calculator whose telemetry is reported through the given
// providers.
func New(opts Options) (Calculator, error) {
	mp := opts.MeterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	tp := opts.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	meter := mp.Meter(instrumentationName)
	calculations, err := meter.Int64Counter("passrate.calculations",
		metric.WithDescription("Number of calculation requests, by outcome."),
		metric.WithUnit("{calculation}"))
	if err != nil {
		return nil, fmt.Errorf("could not create calculations counter: %w", err)
	}
	duration, err := meter.Float64Histogram("passrate.calculation.duration",
		metric.WithDescription("Time spent validating and calculating, by outcome."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create calculation duration histogram: %w", err)
	}

	return &calculator{
		tracer:       tp.Tracer(instrumentationName),
		calculations: calculations,
		duration:     duration,
	}, nil
}
