package redis_test

import (
	"errors"

	"github.com/alicebob/miniredis/v2"
	. "github.com/bsm/ginkgo/v2"
	. "github.com/bsm/gomega"
	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis"
	"github.com/buession/redis/core"
)

var _ = Describe("transaction", func() {
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

	It("executes queued commands atomically", func() {
		Expect(client.Multi()).To(Succeed())
		Expect(client.IsTransaction()).To(BeTrue())

		status, err := client.Set(ctx, "key", "value")
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(core.StatusFailure))
		_, _ = client.Incr(ctx, "counter")
		_, _ = client.Get(ctx, "key")
		_, _ = client.Get(ctx, "missing")
		Expect(mr.Exists("key")).To(BeFalse())

		res, err := client.Exec(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Aborted).To(BeFalse())
		Expect(res.Values).To(Equal([]interface{}{core.StatusSuccess, int64(1), "value", nil}))
		Expect(client.Mode()).To(Equal(redis.ModeNormal))
	})

	It("reports an empty transaction", func() {
		Expect(client.Multi()).To(Succeed())
		res, err := client.Exec(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Aborted).To(BeFalse())
		Expect(res.Values).To(BeEmpty())
	})

	It("stores per-command failures", func() {
		Expect(client.Multi()).To(Succeed())
		_, _ = client.Set(ctx, "key", "value")
		_, _ = client.LPush(ctx, "key", "x")

		res, err := client.Exec(ctx)
		var cmdErr *redis.CommandError
		Expect(errors.As(err, &cmdErr)).To(BeTrue())
		Expect(cmdErr.Command.Name()).To(Equal("LPUSH"))
		Expect(res.Values).To(HaveLen(2))
		Expect(res.Values[0]).To(Equal(core.StatusSuccess))
		Expect(res.Values[1]).To(Equal(err))
	})

	It("discards queued commands", func() {
		Expect(client.Multi()).To(Succeed())
		_, _ = client.Set(ctx, "key", "value")
		Expect(client.Discard(ctx)).To(Succeed())
		Expect(client.Mode()).To(Equal(redis.ModeNormal))
		Expect(mr.Exists("key")).To(BeFalse())
	})

	It("rejects invalid mode transitions", func() {
		_, err := client.Exec(ctx)
		Expect(redis.IsIllegalState(err)).To(BeTrue())
		Expect(redis.IsIllegalState(client.Discard(ctx))).To(BeTrue())

		Expect(client.Multi()).To(Succeed())
		Expect(redis.IsIllegalState(client.Multi())).To(BeTrue())
		Expect(redis.IsIllegalState(client.OpenPipeline())).To(BeTrue())
		_, err = client.ClosePipeline(ctx)
		Expect(redis.IsIllegalState(err)).To(BeTrue())
		_, err = client.Watch(ctx, "key")
		Expect(redis.IsIllegalState(err)).To(BeTrue())
		Expect(client.IsTransaction()).To(BeTrue())

		Expect(client.Discard(ctx)).To(Succeed())
	})

	It("requires keys to watch", func() {
		_, err := client.Watch(ctx)
		Expect(isArgumentError(err)).To(BeTrue())
	})

	Describe("WATCH", func() {
		var other *goredis.Client

		BeforeEach(func() {
			other = goredis.NewClient(&goredis.Options{Addr: mr.Addr(), Protocol: 2})
		})

		AfterEach(func() {
			_ = other.Close()
		})

		It("aborts when a watched key changes", func() {
			status, err := client.Watch(ctx, "key")
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(core.StatusSuccess))

			Expect(other.Set(ctx, "key", "theirs", 0).Err()).NotTo(HaveOccurred())

			Expect(client.Multi()).To(Succeed())
			_, _ = client.Set(ctx, "key", "mine")
			res, err := client.Exec(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Aborted).To(BeTrue())
			Expect(res.Values).To(BeEmpty())
			Expect(mr.Get("key")).To(Equal("theirs"))
		})

		It("commits when watched keys are untouched", func() {
			_, err := client.Watch(ctx, "key")
			Expect(err).NotTo(HaveOccurred())
			Expect(other.Set(ctx, "unrelated", "x", 0).Err()).NotTo(HaveOccurred())

			Expect(client.Multi()).To(Succeed())
			_, _ = client.Set(ctx, "key", "mine")
			res, err := client.Exec(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Aborted).To(BeFalse())
			Expect(mr.Get("key")).To(Equal("mine"))
		})

		It("forgets keys on Unwatch", func() {
			_, err := client.Watch(ctx, "key")
			Expect(err).NotTo(HaveOccurred())
			_, err = client.Unwatch(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(other.Set(ctx, "key", "theirs", 0).Err()).NotTo(HaveOccurred())

			Expect(client.Multi()).To(Succeed())
			_, _ = client.Set(ctx, "key", "mine")
			res, err := client.Exec(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Aborted).To(BeFalse())
		})
	})

	Describe("Transaction", func() {
		It("runs fn inside MULTI", func() {
			res, err := client.Transaction(ctx, func(tx *redis.Client) error {
				_, _ = tx.Incr(ctx, "counter")
				_, _ = tx.Incr(ctx, "counter")
				return nil
			}, "counter")
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Values).To(Equal([]interface{}{int64(1), int64(2)}))
		})

		It("discards when fn fails", func() {
			boom := errors.New("boom")
			_, err := client.Transaction(ctx, func(tx *redis.Client) error {
				_, _ = tx.Set(ctx, "key", "value")
				return boom
			})
			Expect(err).To(Equal(boom))
			Expect(client.Mode()).To(Equal(redis.ModeNormal))
			Expect(mr.Exists("key")).To(BeFalse())
		})
	})
})
