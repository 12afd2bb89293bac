package redis_test

import (
	"errors"

	"github.com/alicebob/miniredis/v2"
	. "github.com/bsm/ginkgo/v2"
	. "github.com/bsm/gomega"

	"github.com/buession/redis"
	"github.com/buession/redis/core"
)

var _ = Describe("pipeline", func() {
	var mr *miniredis.Miniredis
	var client *redis.Client

	BeforeEach(func() {
		mr = startServer()
		client = newStandalone(mr)
	})

	AfterEach(func() {
		_ = client.Close()
		mr.Close()
	})

	It("returns zero values while buffering", func() {
		Expect(client.OpenPipeline()).To(Succeed())
		Expect(client.IsPipeline()).To(BeTrue())

		status, err := client.Set(ctx, "key", "value")
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(core.StatusFailure))

		val, err := client.Get(ctx, "key")
		Expect(err).NotTo(HaveOccurred())
		Expect(val).To(BeEmpty())
		Expect(mr.Exists("key")).To(BeFalse())

		_, err = client.ClosePipeline(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(mr.Exists("key")).To(BeTrue())
	})

	It("returns the same results as normal mode, in order", func() {
		run := func(c *redis.Client) {
			_, _ = c.Set(ctx, "key", "value")
			_, _ = c.Get(ctx, "key")
			_, _ = c.Get(ctx, "missing")
			_, _ = c.Incr(ctx, "counter")
			_, _ = c.HSet(ctx, "hash", "field", "1")
		}

		Expect(client.OpenPipeline()).To(Succeed())
		run(client)
		values, err := client.ClosePipeline(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(values).To(Equal([]interface{}{
			core.StatusSuccess,
			"value",
			nil,
			int64(1),
			int64(1),
		}))
		Expect(client.Mode()).To(Equal(redis.ModeNormal))

		mr.FlushAll()
		status, err := client.Set(ctx, "key", "value")
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(values[0]))
		val, err := client.Get(ctx, "key")
		Expect(err).NotTo(HaveOccurred())
		Expect(val).To(Equal(values[1]))
		_, err = client.Get(ctx, "missing")
		Expect(err).To(Equal(redis.Nil))
		n, err := client.Incr(ctx, "counter")
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(values[3]))
	})

	It("keeps going after a failed command", func() {
		Expect(client.OpenPipeline()).To(Succeed())
		_, _ = client.Set(ctx, "key", "value")
		_, _ = client.LPush(ctx, "key", "x")
		_, _ = client.Get(ctx, "key")

		values, err := client.ClosePipeline(ctx)
		var cmdErr *redis.CommandError
		Expect(errors.As(err, &cmdErr)).To(BeTrue())
		Expect(cmdErr.Command.Name()).To(Equal("LPUSH"))

		Expect(values).To(HaveLen(3))
		Expect(values[0]).To(Equal(core.StatusSuccess))
		Expect(values[1]).To(Equal(err))
		Expect(values[2]).To(Equal("value"))
	})

	It("returns an empty result for an empty pipeline", func() {
		Expect(client.OpenPipeline()).To(Succeed())
		values, err := client.ClosePipeline(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(values).To(BeEmpty())
	})

	It("discards buffered commands", func() {
		Expect(client.OpenPipeline()).To(Succeed())
		_, _ = client.Set(ctx, "key", "value")
		Expect(client.DiscardPipeline()).To(Succeed())
		Expect(client.Mode()).To(Equal(redis.ModeNormal))
		Expect(mr.Exists("key")).To(BeFalse())
	})

	It("rejects invalid mode transitions", func() {
		_, err := client.ClosePipeline(ctx)
		Expect(redis.IsIllegalState(err)).To(BeTrue())
		Expect(client.DiscardPipeline()).To(HaveOccurred())

		Expect(client.OpenPipeline()).To(Succeed())
		Expect(redis.IsIllegalState(client.OpenPipeline())).To(BeTrue())
		Expect(redis.IsIllegalState(client.Multi())).To(BeTrue())
		_, err = client.Exec(ctx)
		Expect(redis.IsIllegalState(err)).To(BeTrue())
		_, err = client.Watch(ctx, "key")
		Expect(redis.IsIllegalState(err)).To(BeTrue())
		Expect(client.IsPipeline()).To(BeTrue())

		Expect(client.DiscardPipeline()).To(Succeed())
	})

	It("cannot be opened while keys are watched", func() {
		_, err := client.Watch(ctx, "key")
		Expect(err).NotTo(HaveOccurred())
		Expect(redis.IsIllegalState(client.OpenPipeline())).To(BeTrue())

		_, err = client.Unwatch(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(client.OpenPipeline()).To(Succeed())
		Expect(client.DiscardPipeline()).To(Succeed())
	})

	Describe("Pipelined", func() {
		It("collects the replies of fn", func() {
			values, err := client.Pipelined(ctx, func(p *redis.Client) error {
				_, _ = p.Set(ctx, "key", "value")
				_, _ = p.Incr(ctx, "counter")
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(values).To(Equal([]interface{}{core.StatusSuccess, int64(1)}))
		})

		It("discards the pipeline when fn fails", func() {
			boom := errors.New("boom")
			_, err := client.Pipelined(ctx, func(p *redis.Client) error {
				_, _ = p.Set(ctx, "key", "value")
				return boom
			})
			Expect(err).To(Equal(boom))
			Expect(client.Mode()).To(Equal(redis.ModeNormal))
			Expect(mr.Exists("key")).To(BeFalse())
		})
	})
})
