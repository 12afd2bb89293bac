package redis_test

import (
	"fmt"

	"github.com/alicebob/miniredis/v2"
	. "github.com/bsm/ginkgo/v2"
	. "github.com/bsm/gomega"

	"github.com/buession/redis"
	"github.com/buession/redis/core"
)

var _ = Describe("cluster topology", func() {
	var client *redis.Client

	BeforeEach(func() {
		// Nothing listens there: every case below must fail before dialing.
		client = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:       []string{"127.0.0.1:1"},
			ConnOptions: connOptions(),
		})
	})

	AfterEach(func() {
		_ = client.Close()
	})

	It("rejects multi-key commands across slots", func() {
		Expect(client.Topology()).To(Equal(redis.Cluster))

		// "a" hashes to slot 15495, "b" to slot 3300.
		_, err := client.MGet(ctx, "a", "b")
		Expect(redis.IsIllegalState(err)).To(BeTrue())

		_, err = client.Del(ctx, "{user}a", "b")
		Expect(redis.IsIllegalState(err)).To(BeTrue())
	})

	It("rejects WATCH", func() {
		_, err := client.Watch(ctx, "a")
		Expect(redis.IsIllegalState(err)).To(BeTrue())
	})

	It("pins a transaction to the slot of its first key", func() {
		Expect(client.Multi()).To(Succeed())

		_, err := client.Set(ctx, "{user}name", "x")
		Expect(err).NotTo(HaveOccurred())
		_, err = client.Incr(ctx, "{user}visits")
		Expect(err).NotTo(HaveOccurred())

		_, err = client.Set(ctx, "a", "x")
		Expect(redis.IsIllegalState(err)).To(BeTrue())

		_, err = client.Ping(ctx)
		Expect(redis.IsIllegalState(err)).To(BeTrue())

		Expect(client.IsTransaction()).To(BeTrue())
		Expect(client.Discard(ctx)).To(Succeed())
	})

	It("allows keyless commands in a pipeline", func() {
		Expect(client.OpenPipeline()).To(Succeed())
		_, err := client.Ping(ctx)
		Expect(err).NotTo(HaveOccurred())
		_, err = client.Set(ctx, "a", "x")
		Expect(err).NotTo(HaveOccurred())
		_, err = client.Set(ctx, "b", "x")
		Expect(err).NotTo(HaveOccurred())
		Expect(client.DiscardPipeline()).To(Succeed())
	})
})

var _ = Describe("sharded topology", func() {
	var mr1, mr2 *miniredis.Miniredis
	var client *redis.Client

	BeforeEach(func() {
		mr1, mr2 = startServer(), startServer()
		client = redis.NewShardedClient(&redis.RingOptions{
			Addrs:       map[string]string{"shard1": mr1.Addr(), "shard2": mr2.Addr()},
			ConnOptions: connOptions(),
		})
	})

	AfterEach(func() {
		_ = client.Close()
		mr1.Close()
		mr2.Close()
	})

	It("distributes keys across shards", func() {
		Expect(client.Topology()).To(Equal(redis.Sharded))
		for i := 0; i < 32; i++ {
			key := fmt.Sprintf("key%d", i)
			status, err := client.Set(ctx, key, i)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(core.StatusSuccess))
		}
		Expect(len(mr1.Keys()) + len(mr2.Keys())).To(Equal(32))
		Expect(mr1.Keys()).NotTo(BeEmpty())
		Expect(mr2.Keys()).NotTo(BeEmpty())

		val, err := client.Get(ctx, "key7")
		Expect(err).NotTo(HaveOccurred())
		Expect(val).To(Equal("7"))
	})

	It("rejects multi-key commands across shards", func() {
		keys := make([]string, 64)
		for i := range keys {
			keys[i] = fmt.Sprintf("key%d", i)
		}
		_, err := client.MGet(ctx, keys...)
		Expect(redis.IsIllegalState(err)).To(BeTrue())

		_, err = client.MGet(ctx, "{tag}a", "{tag}b")
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects transactions and WATCH", func() {
		Expect(redis.IsIllegalState(client.Multi())).To(BeTrue())
		Expect(client.Mode()).To(Equal(redis.ModeNormal))

		_, err := client.Watch(ctx, "key")
		Expect(redis.IsIllegalState(err)).To(BeTrue())
	})

	It("supports pipelines", func() {
		values, err := client.Pipelined(ctx, func(p *redis.Client) error {
			_, _ = p.Set(ctx, "key1", "a")
			_, _ = p.Set(ctx, "key2", "b")
			_, _ = p.Get(ctx, "key1")
			return nil
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(values).To(Equal([]interface{}{core.StatusSuccess, core.StatusSuccess, "a"}))
	})
})
