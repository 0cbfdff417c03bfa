package entitymatch

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/veridoc/entitymatch/policy"
)

// matcherMetrics holds the OpenTelemetry metric instruments for the
// matcher. They are created once during New and reused for every
// evaluation.
type matcherMetrics struct {
	// confidenceHistogram records combined confidences (0.0 to 1.0)
	confidenceHistogram metric.Float64Histogram

	// durationHistogram records per-pair evaluation duration in milliseconds
	durationHistogram metric.Float64Histogram

	// evalCounter increments for each pair evaluated, tagged with the
	// resulting action and match type
	evalCounter metric.Int64Counter
}

// newMatcherMetrics creates and initializes all metric instruments.
func newMatcherMetrics(meter metric.Meter) (*matcherMetrics, error) {
	m := &matcherMetrics{}
	var err error

	m.confidenceHistogram, err = meter.Float64Histogram(
		"entitymatch.confidence",
		metric.WithDescription("Combined match confidence from 0.0 to 1.0"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create confidence histogram: %w", err)
	}

	m.durationHistogram, err = meter.Float64Histogram(
		"entitymatch.duration",
		metric.WithDescription("Pair evaluation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	m.evalCounter, err = meter.Int64Counter(
		"entitymatch.evaluations",
		metric.WithDescription("Number of record pairs evaluated"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create evaluation counter: %w", err)
	}

	return m, nil
}

// record captures observability data for one evaluation. A nil
// receiver (metrics not configured) records nothing.
func (m *matcherMetrics) record(ctx context.Context, result policy.MatchResult, elapsed time.Duration) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("match.action", result.SuggestedAction.String()),
		attribute.String("match.type", result.MatchType.String()),
	)
	m.evalCounter.Add(ctx, 1, attrs)
	m.confidenceHistogram.Record(ctx, result.Confidence, attrs)
	m.durationHistogram.Record(ctx, float64(elapsed.Microseconds())/1000.0)
}
