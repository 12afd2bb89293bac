package redis_test

import (
	"fmt"
	"strconv"

	"github.com/alicebob/miniredis/v2"
	. "github.com/bsm/ginkgo/v2"
	. "github.com/bsm/gomega"

	"github.com/buession/redis"
	"github.com/buession/redis/args"
	"github.com/buession/redis/core"
)

var _ = Describe("ScanIterator", func() {
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

	It("iterates over all keys", func() {
		for i := 0; i < 25; i++ {
			Expect(mr.Set(fmt.Sprintf("key%d", i), "x")).To(Succeed())
		}

		seen := map[string]bool{}
		it := client.ScanIterator(args.ScanArgument{Count: 10})
		for it.Next(ctx) {
			seen[it.Val()] = true
		}
		Expect(it.Err()).NotTo(HaveOccurred())
		Expect(seen).To(HaveLen(25))
	})

	It("filters with MATCH", func() {
		Expect(mr.Set("user:1", "x")).To(Succeed())
		Expect(mr.Set("user:2", "x")).To(Succeed())
		Expect(mr.Set("order:1", "x")).To(Succeed())

		var keys []string
		it := client.ScanIterator(args.ScanArgument{Match: "user:*"})
		for it.Next(ctx) {
			keys = append(keys, it.Val())
		}
		Expect(it.Err()).NotTo(HaveOccurred())
		Expect(keys).To(ConsistOf("user:1", "user:2"))
	})

	It("iterates over hash fields", func() {
		mr.HSet("hash", "a", "1")
		mr.HSet("hash", "b", "2")

		var fields []core.KeyValue
		it := client.HScanIterator("hash", args.ScanArgument{})
		for it.Next(ctx) {
			fields = append(fields, it.Val())
		}
		Expect(it.Err()).NotTo(HaveOccurred())
		Expect(fields).To(ConsistOf(core.KeyValue{Key: "a", Value: "1"}, core.KeyValue{Key: "b", Value: "2"}))
	})

	It("iterates over set members and sorted set tuples", func() {
		_, err := mr.SetAdd("set", "x", "y", "z")
		Expect(err).NotTo(HaveOccurred())
		for i := 1; i <= 3; i++ {
			_, err := mr.ZAdd("zset", float64(i), strconv.Itoa(i))
			Expect(err).NotTo(HaveOccurred())
		}

		var members []string
		sit := client.SScanIterator("set", args.ScanArgument{})
		for sit.Next(ctx) {
			members = append(members, sit.Val())
		}
		Expect(sit.Err()).NotTo(HaveOccurred())
		Expect(members).To(ConsistOf("x", "y", "z"))

		var tuples []core.Tuple
		zit := client.ZScanIterator("zset", args.ScanArgument{})
		for zit.Next(ctx) {
			tuples = append(tuples, zit.Val())
		}
		Expect(zit.Err()).NotTo(HaveOccurred())
		Expect(tuples).To(ConsistOf(
			core.Tuple{Member: "1", Score: 1},
			core.Tuple{Member: "2", Score: 2},
			core.Tuple{Member: "3", Score: 3},
		))
	})

	It("stops on an empty database", func() {
		it := client.ScanIterator(args.ScanArgument{})
		Expect(it.Next(ctx)).To(BeFalse())
		Expect(it.Err()).NotTo(HaveOccurred())
	})

	It("needs normal mode", func() {
		Expect(client.OpenPipeline()).To(Succeed())
		it := client.ScanIterator(args.ScanArgument{})
		Expect(it.Next(ctx)).To(BeFalse())
		Expect(redis.IsIllegalState(it.Err())).To(BeTrue())
		Expect(client.DiscardPipeline()).To(Succeed())
	})
})
