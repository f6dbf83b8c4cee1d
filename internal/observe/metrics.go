// Package observe provides observability primitives for the G2P engine:
// OpenTelemetry metrics, tracing helpers, and the Prometheus exporter bridge.
//
// Metrics are recorded through the OpenTelemetry Metrics API. A package-level
// default [Metrics] instance ([Default]) is provided for convenience; tests
// should use [NewMetrics] with a custom [metric.MeterProvider] to avoid
// cross-test pollution.
package observe

import (
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all engine metrics.
const meterName = "github.com/veloxvoice/g2p"

// Metrics holds all OpenTelemetry metric instruments for the engine.
// All fields are safe for concurrent use; the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// ConvertDuration tracks end-to-end Convert latency.
	ConvertDuration metric.Float64Histogram

	// TokensResolved counts tokens that resolved to phonemes. Use with
	// attribute: attribute.Int("rating", ...)
	TokensResolved metric.Int64Counter

	// TokensUnknown counts tokens rendered with the unknown placeholder.
	TokensUnknown metric.Int64Counter

	// Conversions counts Convert calls. Use with attributes:
	//   attribute.String("language", ...), attribute.String("status", ...)
	Conversions metric.Int64Counter
}

// latencyBuckets defines histogram bucket boundaries (in seconds) sized for
// pure text transformation latencies.
var latencyBuckets = []float64{
	0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5,
}

// NewMetrics creates all metric instruments on the given provider.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.ConvertDuration, err = m.Float64Histogram("g2p.convert.duration",
		metric.WithDescription("End-to-end latency of a Convert call."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.TokensResolved, err = m.Int64Counter("g2p.tokens.resolved",
		metric.WithDescription("Tokens that resolved to a phoneme sequence."),
	); err != nil {
		return nil, err
	}
	if met.TokensUnknown, err = m.Int64Counter("g2p.tokens.unknown",
		metric.WithDescription("Tokens rendered with the unknown placeholder."),
	); err != nil {
		return nil, err
	}
	if met.Conversions, err = m.Int64Counter("g2p.conversions",
		metric.WithDescription("Convert calls by language and status."),
	); err != nil {
		return nil, err
	}
	return met, nil
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// Default returns the process-wide [Metrics] instance backed by the global
// meter provider. Instrument creation errors are deliberately swallowed; the
// OTel API returns usable no-op instruments alongside them.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics, _ = NewMetrics(otel.GetMeterProvider())
	})
	return defaultMetrics
}
