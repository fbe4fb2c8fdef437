package diag

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// OTLPExporter exports diagnostic events as spans.
type OTLPExporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

var _ Emitter = (*OTLPExporter)(nil)

// NewOTLPExporter creates an OTLP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if endpoint not configured (disabled).
func NewOTLPExporter(ctx context.Context) (*OTLPExporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "hooksdemo"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return NewOTLPExporterWithProvider(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// NewOTLPExporterWithProvider wraps an existing tracer provider.
func NewOTLPExporterWithProvider(provider *sdktrace.TracerProvider) *OTLPExporter {
	return &OTLPExporter{
		provider: provider,
		tracer:   provider.Tracer("hooksdemo/diag"),
	}
}

// Emit records ev as a zero-length span named after its kind.
func (e *OTLPExporter) Emit(ev Event) {
	if e == nil {
		return
	}
	ev = stamp(ev)

	_, span := e.tracer.Start(
		context.Background(),
		string(ev.Kind),
		oteltrace.WithTimestamp(ev.Timestamp),
	)

	attrs := make([]attribute.KeyValue, 0, len(ev.Attributes)+2)
	attrs = append(attrs,
		attribute.String("hooksdemo.widget", ev.Widget),
		attribute.String("hooksdemo.message", ev.Message),
	)
	for k, v := range ev.Attributes {
		attrs = append(attrs, attribute.String("hooksdemo."+k, v))
	}
	span.SetAttributes(attrs...)
	span.End(oteltrace.WithTimestamp(ev.Timestamp))
}

// Shutdown flushes and closes the exporter.
func (e *OTLPExporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
