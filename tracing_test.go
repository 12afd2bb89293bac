package redis_test

import (
	"github.com/alicebob/miniredis/v2"
	. "github.com/bsm/ginkgo/v2"
	. "github.com/bsm/gomega"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/buession/redis"
)

var _ = Describe("tracing", func() {
	var mr *miniredis.Miniredis
	var client *redis.Client
	var recorder *tracetest.SpanRecorder

	BeforeEach(func() {
		mr = startServer()
		recorder = tracetest.NewSpanRecorder()
		opt := connOptions()
		opt.TracerProvider = sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
		client = redis.NewClient(&redis.Options{Addr: mr.Addr(), ConnOptions: opt})
	})

	AfterEach(func() {
		_ = client.Close()
		mr.Close()
	})

	It("records a client span per command", func() {
		_, err := client.Set(ctx, "key", "value")
		Expect(err).NotTo(HaveOccurred())

		spans := recorder.Ended()
		Expect(spans).To(HaveLen(1))
		span := spans[0]
		Expect(span.Name()).To(Equal("SET"))
		Expect(span.SpanKind()).To(Equal(trace.SpanKindClient))
		Expect(span.Attributes()).To(ContainElement(attribute.String("db.system", "redis")))
		Expect(span.Attributes()).To(ContainElement(attribute.String("redis.mode", "normal")))
		Expect(span.Attributes()).To(ContainElement(attribute.String("redis.topology", "standalone")))
		Expect(span.Status().Code).To(Equal(codes.Unset))
	})

	It("does not mark absent values as errors", func() {
		_, err := client.Get(ctx, "missing")
		Expect(err).To(Equal(redis.Nil))
		Expect(recorder.Ended()[0].Status().Code).To(Equal(codes.Unset))
	})

	It("marks failed commands", func() {
		_, err := client.LPush(ctx, "list", "a")
		Expect(err).NotTo(HaveOccurred())
		_, err = client.Get(ctx, "list")
		Expect(err).To(HaveOccurred())

		spans := recorder.Ended()
		Expect(spans).To(HaveLen(2))
		Expect(spans[1].Status().Code).To(Equal(codes.Error))
	})

	It("records queued commands and the flush", func() {
		Expect(client.OpenPipeline()).To(Succeed())
		_, _ = client.Incr(ctx, "counter")
		_, err := client.ClosePipeline(ctx)
		Expect(err).NotTo(HaveOccurred())

		spans := recorder.Ended()
		Expect(spans).To(HaveLen(2))
		Expect(spans[0].Name()).To(Equal("INCR"))
		Expect(spans[0].Attributes()).To(ContainElement(attribute.String("redis.mode", "pipeline")))
		Expect(spans[1].Name()).To(Equal("pipeline"))
	})
})
