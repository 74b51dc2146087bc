package calculator_test

import (
	"context"
	"passrate/internal/calculator"
	"passrate/pkg/domain"
	"passrate/pkg/logger"
	"passrate/pkg/probability"
	"passrate/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type telemetry struct {
	reader *sdkmetric.ManualReader
	spans  *tracetest.SpanRecorder
}

func newTestCalculator(t *testing.T) (calculator.Calculator, telemetry) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	spans := tracetest.NewSpanRecorder()
	c, err := calculator.New(calculator.Options{
		MeterProvider:  sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
		TracerProvider: sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans)),
	})
	require.NoError(t, err)

	return c, telemetry{reader: reader, spans: spans}
}

// counts returns the calculations counter value per outcome.
func (tm telemetry) counts(t *testing.T) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, tm.reader.Collect(context.Background(), &rm))

	out := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "passrate.calculations" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				v, _ := dp.Attributes.Value("outcome")
				out[v.AsString()] += dp.Value
			}
		}
	}

	return out
}

func TestCalculate_Success(t *testing.T) {
	c, tm := newTestCalculator(t)

	res, err := c.Calculate(context.Background(), "5", "70")
	require.NoError(t, err)
	require.Equal(t, &domain.Calculation{
		Trials:      5,
		SuccessRate: 70,
		Threshold:   3,
		Probability: 0.8369,
	}, res)

	require.Equal(t, map[string]int64{calculator.OutcomeOK: 1}, tm.counts(t))

	ended := tm.spans.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, "Calculator.Calculate", ended[0].Name())
	require.NotEqual(t, codes.Error, ended[0].Status().Code)
}

func TestCalculate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		trials      string
		successRate string
		kind        serrors.Kind
		outcome     string
	}{
		{
			name:        "trial count out of range",
			trials:      "10",
			successRate: "50",
			kind:        probability.ErrInvalidTrialCount,
			outcome:     calculator.OutcomeInvalidTrialCount,
		},
		{
			name:        "success rate at lower bound",
			trials:      "5",
			successRate: "0",
			kind:        probability.ErrInvalidSuccessRate,
			outcome:     calculator.OutcomeInvalidSuccessRate,
		},
		{
			name:        "empty trial count",
			trials:      "",
			successRate: "70",
			kind:        probability.ErrInvalidTrialCount,
			outcome:     calculator.OutcomeInvalidTrialCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, tm := newTestCalculator(t)

			res, err := c.Calculate(context.Background(), tt.trials, tt.successRate)
			require.Nil(t, res)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
			require.ErrorIs(t, err, tt.kind)
			require.Equal(t, tt.kind, serrors.KindOf(err))

			require.Equal(t, map[string]int64{tt.outcome: 1}, tm.counts(t))

			ended := tm.spans.Ended()
			require.Len(t, ended, 1)
			require.Equal(t, codes.Error, ended[0].Status().Code)
		})
	}
}

func TestNew_GlobalProviders(t *testing.T) {
	c, err := calculator.New(calculator.Options{})
	require.NoError(t, err)

	res, err := c.Calculate(context.Background(), "2", "50")
	require.NoError(t, err)
	require.Equal(t, 0.25, res.Probability)
}
