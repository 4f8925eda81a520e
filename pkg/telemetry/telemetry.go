// Package telemetry provides a no-op OpenTelemetry tracer provider used as
// the engine default so tracing costs nothing until a real provider is
// injected.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Provider struct {
	trace.TracerProvider
}

var (
	provider    = &Provider{}
	noopTracer  = &tracer{}
	noopSpan    = &span{}
	spanContext = trace.SpanContext{}
)

// NewProvider returns the shared no-op provider.
func NewProvider() *Provider {
	return provider
}

func (provider *Provider) Tracer(name string, options ...trace.TracerOption) trace.Tracer {
	return noopTracer
}

type tracer struct {
	trace.Tracer
}

func (tracer *tracer) Start(ctx context.Context, name string, options ...trace.SpanStartOption) (context.Context, trace.Span) {
	return ctx, noopSpan
}

type span struct {
	trace.Span
}

func (span *span) End(options ...trace.SpanEndOption)                  {}
func (span *span) AddEvent(name string, options ...trace.EventOption)  {}
func (span *span) AddLink(link trace.Link)                             {}
func (span *span) IsRecording() bool                                   { return false }
func (span *span) RecordError(err error, options ...trace.EventOption) {}
func (span *span) SetAttributes(kv ...attribute.KeyValue)              {}
func (span *span) SetName(name string)                                 {}
func (span *span) SetStatus(code codes.Code, description string)       {}
func (span *span) SpanContext() trace.SpanContext                      { return spanContext }
func (span *span) TracerProvider() trace.TracerProvider                { return provider }
