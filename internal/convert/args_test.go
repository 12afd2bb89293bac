package convert_test

import (
	"errors"
	"math"
	"time"

	. "github.com/bsm/ginkgo/v2"
	. "github.com/bsm/gomega"
	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/args"
	"github.com/buession/redis/core"
	"github.com/buession/redis/internal/convert"
)

var _ = Describe("SortArgument", func() {
	arg := args.SortArgument{
		By:    "weight_*",
		Order: core.OrderDesc,
		Limit: core.NewLimit(0, 10),
		Alpha: true,
	}

	It("should round-trip through tokens", func() {
		tokens := convert.SortTokens(arg)
		Expect(tokens).To(Equal([]interface{}{"BY", "weight_*", "LIMIT", int64(0), int64(10), "DESC", "ALPHA"}))

		back, err := convert.ParseSortTokens(tokens)
		Expect(err).NotTo(HaveOccurred())
		Expect(back).To(Equal(arg))
	})

	It("should round-trip through go-redis options", func() {
		sort := convert.SortToNative(arg)
		Expect(sort).To(Equal(&goredis.Sort{By: "weight_*", Offset: 0, Count: 10, Order: "DESC", Alpha: true}))
		Expect(convert.SortFromNative(sort)).To(Equal(arg))
	})

	It("should keep an empty LIMIT in the token stream", func() {
		a := args.SortArgument{Limit: core.NewLimit(0, 0)}
		tokens := convert.SortTokens(a)
		Expect(tokens).To(Equal([]interface{}{"LIMIT", int64(0), int64(0)}))

		back, err := convert.ParseSortTokens(tokens)
		Expect(err).NotTo(HaveOccurred())
		Expect(back).To(Equal(a))
	})

	It("should keep GET patterns in order", func() {
		a := args.SortArgument{Get: []string{"#", "data_*"}, Order: core.OrderAsc}
		back, err := convert.ParseSortTokens(convert.SortTokens(a))
		Expect(err).NotTo(HaveOccurred())
		Expect(back).To(Equal(a))
	})

	It("should compare keywords by value", func() {
		back, err := convert.ParseSortTokens([]interface{}{
			[]byte("limit"), []byte("5"), []byte("20"), []byte("desc"),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(back).To(Equal(args.SortArgument{Limit: core.NewLimit(5, 20), Order: core.OrderDesc}))
	})

	It("should reject malformed streams", func() {
		_, err := convert.ParseSortTokens([]interface{}{"LIMIT", 0})
		Expect(errors.Is(err, convert.ErrMissingValue)).To(BeTrue())

		_, err = convert.ParseSortTokens([]interface{}{"LIMIT", "x", 1})
		Expect(errors.Is(err, convert.ErrUnexpectedToken)).To(BeTrue())

		_, err = convert.ParseSortTokens([]interface{}{"STORE", "dst"})
		Expect(errors.Is(err, convert.ErrUnexpectedToken)).To(BeTrue())
	})
})

var _ = Describe("SetArgument", func() {
	It("should round-trip", func() {
		for _, a := range []args.SetArgument{
			{},
			{Expiration: args.EX(10), Condition: args.NX},
			{Expiration: args.PXAT(1700000000000), Condition: args.XX, Get: true},
			{Expiration: args.KeepTTL(), Get: true},
		} {
			back, err := convert.ParseSetTokens(convert.SetTokens(a))
			Expect(err).NotTo(HaveOccurred())
			Expect(back).To(Equal(a))
		}
	})

	It("should encode in protocol order", func() {
		tokens := convert.SetTokens(args.SetArgument{Expiration: args.PX(100), Condition: args.NX, Get: true})
		Expect(tokens).To(Equal([]interface{}{"PX", int64(100), "NX", "GET"}))
	})

	It("should reject PERSIST", func() {
		_, err := convert.ParseSetTokens([]interface{}{"PERSIST"})
		Expect(errors.Is(err, convert.ErrUnexpectedToken)).To(BeTrue())
	})
})

var _ = Describe("GetExArgument", func() {
	It("should round-trip", func() {
		for _, a := range []args.GetExArgument{
			{},
			{Expiration: args.EXAT(1700000000)},
			{Expiration: args.Persist()},
		} {
			back, err := convert.ParseGetExTokens(convert.GetExTokens(a))
			Expect(err).NotTo(HaveOccurred())
			Expect(back).To(Equal(a))
		}
	})
})

var _ = Describe("RestoreArgument", func() {
	It("should round-trip", func() {
		a := args.RestoreArgument{Replace: true, AbsTTL: true, IdleTime: 30, Freq: 5}
		tokens := convert.RestoreTokens(a)
		Expect(tokens).To(Equal([]interface{}{"REPLACE", "ABSTTL", "IDLETIME", int64(30), "FREQ", int64(5)}))

		back, err := convert.ParseRestoreTokens(tokens)
		Expect(err).NotTo(HaveOccurred())
		Expect(back).To(Equal(a))
	})

	It("should require IDLETIME and FREQ values", func() {
		_, err := convert.ParseRestoreTokens([]interface{}{"IDLETIME"})
		Expect(errors.Is(err, convert.ErrMissingValue)).To(BeTrue())
		_, err = convert.ParseRestoreTokens([]interface{}{"FREQ", "REPLACE"})
		Expect(errors.Is(err, convert.ErrUnexpectedToken)).To(BeTrue())
	})
})

var _ = Describe("MigrateArgument", func() {
	It("should round-trip both auth forms", func() {
		for _, a := range []args.MigrateArgument{
			{Copy: true},
			{Replace: true, Password: "secret"},
			{Copy: true, Replace: true, Username: "admin", Password: "secret"},
		} {
			back, err := convert.ParseMigrateTokens(convert.MigrateTokens(a))
			Expect(err).NotTo(HaveOccurred())
			Expect(back).To(Equal(a))
		}
	})
})

var _ = Describe("ScanArgument", func() {
	It("should round-trip", func() {
		a := args.ScanArgument{Match: "user:*", Count: 100, Type: core.TypeHash}
		Expect(convert.ScanTokens(a)).To(Equal([]interface{}{"MATCH", "user:*", "COUNT", int64(100), "TYPE", "hash"}))

		back, err := convert.ParseScanTokens(convert.ScanTokens(a))
		Expect(err).NotTo(HaveOccurred())
		Expect(back).To(Equal(a))
	})
})

var _ = Describe("Geo arguments", func() {
	It("should round-trip GEOADD options", func() {
		a := args.GeoAddArgument{Condition: args.XX, CH: true}
		back, err := convert.ParseGeoAddTokens(convert.GeoAddTokens(a))
		Expect(err).NotTo(HaveOccurred())
		Expect(back).To(Equal(a))
	})

	It("should round-trip GEORADIUS options", func() {
		a := args.GeoRadiusArgument{WithCoord: true, WithDist: true, Count: 3, Any: true, Order: core.OrderAsc}
		tokens := convert.GeoRadiusTokens(a)
		Expect(tokens).To(Equal([]interface{}{"WITHCOORD", "WITHDIST", "COUNT", int64(3), "ANY", "ASC"}))

		back, err := convert.ParseGeoRadiusTokens(tokens)
		Expect(err).NotTo(HaveOccurred())
		Expect(back).To(Equal(a))
	})

	It("should not read ANY without COUNT", func() {
		_, err := convert.ParseGeoRadiusTokens([]interface{}{"ANY"})
		Expect(errors.Is(err, convert.ErrUnexpectedToken)).To(BeTrue())
	})

	It("should round-trip GEOSEARCH queries", func() {
		for _, a := range []args.GeoSearchArgument{
			{Member: "Palermo", Radius: 200, Unit: core.GeoUnitKilometer, Order: core.OrderAsc, Count: 2, WithDist: true},
			{Longitude: 15, Latitude: 37, BoxWidth: 400, BoxHeight: 200, Unit: core.GeoUnitMile, WithCoord: true, WithHash: true},
			{Member: "Catania", Radius: 10},
		} {
			Expect(convert.GeoSearchFromNative(convert.GeoSearchToNative(a))).To(Equal(a))
		}
	})

	It("should decode nested GEORADIUS replies", func() {
		a := args.GeoRadiusArgument{WithDist: true, WithHash: true, WithCoord: true}
		reply := []interface{}{
			[]interface{}{"Palermo", "190.4424", int64(3479099956230698), []interface{}{"13.36138933897018433", "38.11555639549629859"}},
			[]interface{}{"Catania", 56.4413, int64(3479447370796909), []interface{}{15.08726745843887329, 37.50266842333162032}},
		}
		got, err := convert.ParseGeoRadiusReply(reply, a)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(HaveLen(2))
		Expect(got[0].Member).To(Equal("Palermo"))
		Expect(got[0].Distance).To(BeNumerically("~", 190.4424, 1e-9))
		Expect(got[0].Hash).To(Equal(int64(3479099956230698)))
		Expect(got[0].Geo.Longitude).To(BeNumerically("~", 13.361389, 1e-6))
		Expect(got[1].Geo.Latitude).To(BeNumerically("~", 37.502668, 1e-6))
	})

	It("should decode flat GEORADIUS replies", func() {
		got, err := convert.ParseGeoRadiusReply([]interface{}{"a", "b"}, args.GeoRadiusArgument{Count: 2})
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal([]core.GeoRadius{{Member: "a"}, {Member: "b"}}))
	})

	It("should report malformed GEORADIUS replies", func() {
		_, err := convert.ParseGeoRadiusReply("OK", args.GeoRadiusArgument{})
		Expect(errors.Is(err, convert.ErrUnexpectedToken)).To(BeTrue())

		_, err = convert.ParseGeoRadiusReply([]interface{}{[]interface{}{"a"}}, args.GeoRadiusArgument{WithDist: true})
		Expect(errors.Is(err, convert.ErrMissingValue)).To(BeTrue())

		_, err = convert.ParseGeoRadiusReply([]interface{}{[]interface{}{"a", "1", "extra"}}, args.GeoRadiusArgument{WithDist: true})
		Expect(errors.Is(err, convert.ErrUnexpectedToken)).To(BeTrue())
	})

	It("should convert members and positions", func() {
		m := core.GeoMember{Member: "Palermo", Longitude: 13.361389, Latitude: 38.115556}
		Expect(convert.GeoMemberFromNative(convert.GeoMemberToNative(m))).To(Equal(m))

		g := &core.Geo{Longitude: 1.5, Latitude: -2.25}
		Expect(convert.GeoFromNative(convert.GeoToNative(g))).To(Equal(g))
		Expect(convert.GeoFromNative(nil)).To(BeNil())
	})
})

var _ = Describe("Sorted set arguments", func() {
	It("should round-trip tuples bit-exactly", func() {
		for _, t := range []core.Tuple{
			{Member: "m1", Score: 3.14},
			{Member: "", Score: math.SmallestNonzeroFloat64},
			{Member: "\x00\xff", Score: math.Inf(-1)},
		} {
			back := convert.TupleFromNative(convert.TupleToNative(t))
			Expect(back.Member).To(Equal(t.Member))
			Expect(math.Float64bits(back.Score)).To(Equal(math.Float64bits(t.Score)))
		}
	})

	It("should round-trip ZADD options", func() {
		a := args.ZAddArgument{Condition: args.XX, Comparison: args.GT, CH: true}
		members := []core.Tuple{{Member: "a", Score: 1}, {Member: "b", Score: 2}}

		z := convert.ZAddToNative(a, members)
		Expect(z.XX).To(BeTrue())
		Expect(z.GT).To(BeTrue())
		Expect(z.Members).To(Equal([]goredis.Z{{Score: 1, Member: "a"}, {Score: 2, Member: "b"}}))

		backArg, backMembers := convert.ZAddFromNative(z)
		Expect(backArg).To(Equal(a))
		Expect(backMembers).To(Equal(members))
	})

	It("should round-trip ZSTORE options", func() {
		a := args.ZStoreArgument{Weights: []float64{1, 2}, Aggregate: core.AggregateMax}
		keys, back := convert.ZStoreFromNative(convert.ZStoreToNative([]string{"z1", "z2"}, a))
		Expect(keys).To(Equal([]string{"z1", "z2"}))
		Expect(back).To(Equal(a))
	})

	It("should decode ZSCAN pages", func() {
		tuples, err := convert.ScanTuples([]string{"a", "1", "b", "inf"})
		Expect(err).NotTo(HaveOccurred())
		Expect(tuples[0]).To(Equal(core.Tuple{Member: "a", Score: 1}))
		Expect(math.IsInf(tuples[1].Score, 1)).To(BeTrue())

		_, err = convert.ScanTuples([]string{"a", "x"})
		Expect(errors.Is(err, convert.ErrUnexpectedToken)).To(BeTrue())
		_, err = convert.ScanTuples([]string{"a"})
		Expect(errors.Is(err, convert.ErrOddPairs)).To(BeTrue())
	})
})

var _ = Describe("Other arguments", func() {
	It("should round-trip LPOS options", func() {
		a := args.LPosArgument{Rank: -1, MaxLen: 100}
		Expect(convert.LPosFromNative(convert.LPosToNative(a))).To(Equal(a))
	})

	It("should round-trip BITFIELD operations", func() {
		a := args.BitFieldArgument{}.
			Overflow(core.BitFieldOverflowSat).
			Set("i8", "0", 100).
			IncrBy("u2", "#1", 1).
			Get("u4", "0")

		tokens, err := convert.BitFieldTokens(a)
		Expect(err).NotTo(HaveOccurred())
		Expect(tokens).To(Equal([]interface{}{
			"OVERFLOW", "SAT",
			"SET", "i8", "0", int64(100),
			"INCRBY", "u2", "#1", int64(1),
			"GET", "u4", "0",
		}))

		back, err := convert.ParseBitFieldTokens(tokens)
		Expect(err).NotTo(HaveOccurred())
		Expect(back).To(Equal(a))
	})

	It("should reject unknown BITFIELD overflow policies", func() {
		_, err := convert.BitFieldTokens(args.BitFieldArgument{}.Overflow(core.BitFieldOverflowUnknown))
		Expect(err).To(HaveOccurred())

		_, err = convert.ParseBitFieldTokens([]interface{}{"OVERFLOW", "CLAMP"})
		Expect(errors.Is(err, convert.ErrUnexpectedToken)).To(BeTrue())
	})

	It("should round-trip CLIENT KILL filters", func() {
		skip := false
		a := args.ClientKillArgument{ID: 7, Type: core.ClientTypePubSub, Addr: "127.0.0.1:6379", SkipMe: &skip}
		filters := convert.ClientKillFilters(a)
		Expect(filters).To(Equal([]string{"ID", "7", "TYPE", "pubsub", "ADDR", "127.0.0.1:6379", "SKIPME", "no"}))

		back, err := convert.ParseClientKillFilters(filters)
		Expect(err).NotTo(HaveOccurred())
		Expect(back).To(Equal(a))
	})

	It("should round-trip XADD options", func() {
		a := args.XAddArgument{MaxLen: 1000, Approximate: true, Limit: 10, NoMkStream: true}
		x := convert.XAddToNative("events", a, map[string]interface{}{"k": "v"})
		Expect(x.Stream).To(Equal("events"))
		Expect(convert.XAddFromNative(x)).To(Equal(a))
	})

	It("should order XREAD streams and avoid blocking by default", func() {
		x := convert.XReadToNative(map[string]string{"s2": "0", "s1": "$"}, args.XReadArgument{Count: 5})
		Expect(x.Streams).To(Equal([]string{"s1", "s2", "$", "0"}))
		Expect(x.Block).To(Equal(time.Duration(-1)))

		g := convert.XReadGroupToNative("g", "c", map[string]string{"s": ">"}, args.XReadArgument{Block: time.Second, NoAck: true})
		Expect(g.Block).To(Equal(time.Second))
		Expect(g.NoAck).To(BeTrue())
	})

	It("should convert TTL replies", func() {
		Expect(convert.TTLSeconds(-2)).To(Equal(int64(-2)))
		Expect(convert.TTLSeconds(-1)).To(Equal(int64(-1)))
		Expect(convert.TTLSeconds(90 * time.Second)).To(Equal(int64(90)))
		Expect(convert.TTLMilliseconds(1500 * time.Millisecond)).To(Equal(int64(1500)))
	})
})
