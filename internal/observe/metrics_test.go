package observe_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/veloxvoice/g2p/internal/observe"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	return rm
}

func metricNames(rm metricdata.ResourceMetrics) map[string]bool {
	names := make(map[string]bool)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
		}
	}
	return names
}

func TestNewMetricsRecords(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := observe.NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics returned error: %v", err)
	}

	ctx := context.Background()
	m.ConvertDuration.Record(ctx, 0.0012)
	m.TokensResolved.Add(ctx, 3, metric.WithAttributes(attribute.Int("rating", 4)))
	m.TokensUnknown.Add(ctx, 1)
	m.Conversions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("language", "en-us"),
		attribute.String("status", "ok"),
	))

	names := metricNames(collect(t, reader))
	for _, want := range []string{
		"g2p.convert.duration",
		"g2p.tokens.resolved",
		"g2p.tokens.unknown",
		"g2p.conversions",
	} {
		if !names[want] {
			t.Errorf("metric %q not collected; got %v", want, names)
		}
	}
}

func TestDefaultIsSingleton(t *testing.T) {
	t.Parallel()

	if observe.Default() != observe.Default() {
		t.Error("Default() returned different instances")
	}
}
