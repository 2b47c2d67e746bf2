package soda

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for soda renderers.
const defaultTracerName = "soda"

func (r *Renderer) startSpan(name string, id InstanceID) trace.Span {
	_, span := r.tracer.Start(context.Background(), name,
		trace.WithAttributes(attribute.Int64("soda.instance_id", int64(id))),
	)
	return span
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

func defaultTracer() trace.Tracer {
	return otel.Tracer(defaultTracerName)
}
