package redis

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/buession/redis"

func (c *Client) startSpan(ctx context.Context, op string, mode Mode) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "redis"),
			attribute.String("db.operation", op),
			attribute.String("redis.mode", mode.String()),
			attribute.String("redis.topology", c.topo.kind().String()),
		),
	)
}

func endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, Nil) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
