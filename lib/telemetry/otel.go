package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OtelAPI implements API on top of the global otel meter provider, it only
// records counts, messages are left to the other members of a MultiAPI.
type OtelAPI struct {
	broken   metric.Int64Counter
	warnings metric.Int64Counter
	counts   metric.Int64Gauge
}

func NewOtelAPI(meterName string) (OtelAPI, error) {
	meter := otel.Meter(meterName)

	broken, err := meter.Int64Counter("broken_component")
	if err != nil {
		return OtelAPI{}, fmt.Errorf("create broken counter: %w", err)
	}
	warnings, err := meter.Int64Counter("warning")
	if err != nil {
		return OtelAPI{}, fmt.Errorf("create warning counter: %w", err)
	}
	counts, err := meter.Int64Gauge("count")
	if err != nil {
		return OtelAPI{}, fmt.Errorf("create count gauge: %w", err)
	}

	return OtelAPI{
		broken:   broken,
		warnings: warnings,
		counts:   counts,
	}, nil
}

func (o OtelAPI) ReportBroken(id string, params ...any) {
	o.broken.Add(context.Background(), 1, metric.WithAttributes(attribute.String("id", id)))
}

func (o OtelAPI) ReportWarning(id string, params ...any) {
	o.warnings.Add(context.Background(), 1, metric.WithAttributes(attribute.String("id", id)))
}

func (o OtelAPI) ReportDebug(msg string, params ...any) {}

func (o OtelAPI) ReportCount(id string, count int64) {
	o.counts.Record(context.Background(), count, metric.WithAttributes(attribute.String("id", id)))
}
