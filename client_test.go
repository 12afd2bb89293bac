package redis_test

import (
	"errors"
	"time"

	"github.com/alicebob/miniredis/v2"
	. "github.com/bsm/ginkgo/v2"
	. "github.com/bsm/gomega"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/buession/redis"
	"github.com/buession/redis/args"
	"github.com/buession/redis/core"
)

var _ = Describe("Client", func() {
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

	It("runs commands immediately in normal mode", func() {
		Expect(client.Mode()).To(Equal(redis.ModeNormal))
		Expect(client.Topology()).To(Equal(redis.Standalone))

		status, err := client.Set(ctx, "key", "hello")
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(core.StatusSuccess))

		val, err := client.Get(ctx, "key")
		Expect(err).NotTo(HaveOccurred())
		Expect(val).To(Equal("hello"))

		n, err := client.Incr(ctx, "counter")
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(int64(1)))
	})

	It("returns Nil for missing keys", func() {
		_, err := client.Get(ctx, "missing")
		Expect(err).To(Equal(redis.Nil))
	})

	It("wraps server errors in CommandError", func() {
		_, err := client.LPush(ctx, "list", "a")
		Expect(err).NotTo(HaveOccurred())

		_, err = client.Get(ctx, "list")
		Expect(err).To(HaveOccurred())
		var cmdErr *redis.CommandError
		Expect(errors.As(err, &cmdErr)).To(BeTrue())
		Expect(cmdErr.Command.Name()).To(Equal("GET"))
		Expect(redis.IsServerError(err)).To(BeTrue())
		Expect(redis.IsTransportError(err)).To(BeFalse())
	})

	It("rejects unknown enum arguments before sending", func() {
		_, err := client.LInsert(ctx, "list", core.ListPosition(99), "a", "b")
		Expect(isArgumentError(err)).To(BeTrue())

		_, err = client.BitOp(ctx, core.BitOperation(99), "dest", "a", "b")
		Expect(isArgumentError(err)).To(BeTrue())
	})

	It("never substitutes a default for an unknown enum value", func() {
		_, err := client.GeoAdd(ctx, "sicily", args.GeoAddArgument{},
			core.GeoMember{Member: "Palermo", Longitude: 13.361389, Latitude: 38.115556},
			core.GeoMember{Member: "Catania", Longitude: 15.087269, Latitude: 37.502669},
		)
		Expect(err).NotTo(HaveOccurred())

		_, err = client.GeoDist(ctx, "sicily", "Palermo", "Catania", core.GeoUnit(42))
		Expect(isArgumentError(err)).To(BeTrue())
		_, err = client.GeoDist(ctx, "sicily", "Palermo", "Catania", core.GeoUnitUnknown)
		Expect(isArgumentError(err)).To(BeTrue())
		_, err = client.GeoRadiusByMember(ctx, "sicily", "Palermo", 200, core.GeoUnitKilometer,
			args.GeoRadiusArgument{Order: core.Order(9)})
		Expect(isArgumentError(err)).To(BeTrue())
		_, err = client.GeoSearch(ctx, "sicily", args.GeoSearchArgument{Member: "Palermo", Radius: 200})
		Expect(isArgumentError(err)).To(BeTrue())
		_, err = client.GeoAdd(ctx, "sicily", args.GeoAddArgument{Condition: args.Condition(5)},
			core.GeoMember{Member: "Rome", Longitude: 12.5, Latitude: 41.9})
		Expect(isArgumentError(err)).To(BeTrue())

		_, err = client.SetWithArgument(ctx, "key", "value",
			args.SetArgument{Expiration: args.Expiration{Kind: 42, Value: 10}})
		Expect(isArgumentError(err)).To(BeTrue())
		_, err = client.SetWithArgument(ctx, "key", "value", args.SetArgument{Condition: args.Condition(5)})
		Expect(isArgumentError(err)).To(BeTrue())
		Expect(client.Exists(ctx, "key")).To(Equal(int64(0)))

		_, err = client.Set(ctx, "key", "value")
		Expect(err).NotTo(HaveOccurred())
		_, err = client.GetEx(ctx, "key", args.GetExArgument{Expiration: args.Expiration{Kind: 42, Value: 10}})
		Expect(isArgumentError(err)).To(BeTrue())
		_, err = client.Expire(ctx, "key", time.Minute, core.ExpireOption(42))
		Expect(isArgumentError(err)).To(BeTrue())
		Expect(client.TTL(ctx, "key")).To(Equal(int64(-1)))

		_, err = client.Sort(ctx, "list", args.SortArgument{Order: core.Order(9)})
		Expect(isArgumentError(err)).To(BeTrue())
		_, err = client.Scan(ctx, core.InitialCursor, args.ScanArgument{Type: core.Type(99)})
		Expect(isArgumentError(err)).To(BeTrue())
		_, err = client.ZAdd(ctx, "zset", args.ZAddArgument{Condition: args.Condition(5)}, core.Tuple{Member: "a", Score: 1})
		Expect(isArgumentError(err)).To(BeTrue())
		_, err = client.ZAdd(ctx, "zset", args.ZAddArgument{Comparison: args.Comparison(5)}, core.Tuple{Member: "a", Score: 1})
		Expect(isArgumentError(err)).To(BeTrue())
		_, err = client.ZUnion(ctx, []string{"a", "b"}, args.ZStoreArgument{Aggregate: core.Aggregate(9)})
		Expect(isArgumentError(err)).To(BeTrue())
		_, err = client.BitCountRange(ctx, "key", 0, -1, core.BitCountUnit(9))
		Expect(isArgumentError(err)).To(BeTrue())
		_, err = client.FlushDB(ctx, core.FlushMode(9))
		Expect(isArgumentError(err)).To(BeTrue())
		Expect(client.Exists(ctx, "key")).To(Equal(int64(1)))
	})

	It("fails after Close", func() {
		Expect(client.Close()).To(Succeed())
		_, err := client.Get(ctx, "key")
		Expect(err).To(Equal(redis.ErrClosed))
		Expect(client.Close()).To(Equal(redis.ErrClosed))
	})

	It("rejects sentinel commands on a standalone server", func() {
		_, err := client.SentinelGetMasterAddrByName(ctx, "mymaster")
		Expect(redis.IsIllegalState(err)).To(BeTrue())
	})

	Describe("Handle", func() {
		It("keeps its own execution mode", func() {
			h := client.Handle()
			Expect(h.OpenPipeline()).To(Succeed())
			Expect(h.IsPipeline()).To(BeTrue())
			Expect(client.IsPipeline()).To(BeFalse())

			_, err := client.Set(ctx, "key", "now")
			Expect(err).NotTo(HaveOccurred())
			Expect(mr.Get("key")).To(Equal("now"))
			Expect(h.DiscardPipeline()).To(Succeed())
		})

		It("does not close the shared pool", func() {
			h := client.Handle()
			Expect(h.Close()).To(Succeed())

			pong, err := client.Ping(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(pong).To(Equal("PONG"))
		})
	})

	It("logs through the configured logger", func() {
		logger, hook := logtest.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)
		opt := connOptions()
		opt.Logger = logger

		logged := redis.NewClient(&redis.Options{Addr: mr.Addr(), ConnOptions: opt})
		defer logged.Close()
		Expect(hook.LastEntry().Message).To(Equal("redis client created"))

		_, err := logged.Set(ctx, "key", "value")
		Expect(err).NotTo(HaveOccurred())
		entry := hook.LastEntry()
		Expect(entry.Message).To(Equal("dispatch"))
		Expect(entry.Data).To(HaveKeyWithValue("command", "SET"))
		Expect(entry.Data).To(HaveKeyWithValue("mode", "normal"))
		Expect(entry.Data).To(HaveKeyWithValue("topology", "standalone"))
	})
})
