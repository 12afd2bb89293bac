package redis_test

import (
	"time"

	"github.com/alicebob/miniredis/v2"
	. "github.com/bsm/ginkgo/v2"
	. "github.com/bsm/gomega"

	"github.com/buession/redis"
	"github.com/buession/redis/args"
	"github.com/buession/redis/core"
)

var _ = Describe("commands", func() {
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

	Describe("server", func() {
		It("counts and flushes the database", func() {
			_, err := client.MSet(ctx, map[string]interface{}{"a": "1", "b": "2"})
			Expect(err).NotTo(HaveOccurred())

			n, err := client.DBSize(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(2)))

			status, err := client.FlushDB(ctx, core.FlushModeDefault)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(core.StatusSuccess))
			Expect(client.DBSize(ctx)).To(Equal(int64(0)))
		})

		It("sends WAIT with a millisecond timeout", func() {
			// miniredis has no replication, so the command reaches the
			// server and is refused there.
			_, err := client.Wait(ctx, 0, time.Second)
			Expect(redis.IsServerError(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("`wait`, with args beginning with: `0`, `1000`"))
		})

		It("reads the server clock", func() {
			now, err := client.Time(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(now).To(BeTemporally("~", time.Now(), time.Minute))
		})
	})

	Describe("geo", func() {
		BeforeEach(func() {
			n, err := client.GeoAdd(ctx, "sicily", args.GeoAddArgument{},
				core.GeoMember{Member: "Palermo", Longitude: 13.361389, Latitude: 38.115556},
				core.GeoMember{Member: "Catania", Longitude: 15.087269, Latitude: 37.502669},
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(2)))
		})

		It("measures distances", func() {
			d, err := client.GeoDist(ctx, "sicily", "Palermo", "Catania", core.GeoUnitKilometer)
			Expect(err).NotTo(HaveOccurred())
			Expect(d).To(BeNumerically("~", 166.27, 0.1))
		})

		It("returns positions with nil for missing members", func() {
			pos, err := client.GeoPos(ctx, "sicily", "Palermo", "Rome")
			Expect(err).NotTo(HaveOccurred())
			Expect(pos).To(HaveLen(2))
			Expect(pos[0].Longitude).To(BeNumerically("~", 13.361389, 0.001))
			Expect(pos[1]).To(BeNil())
		})
	})

	Describe("hashes", func() {
		It("measures field values", func() {
			_, err := client.HSet(ctx, "hash", "name", "redis")
			Expect(err).NotTo(HaveOccurred())

			Expect(client.HStrLen(ctx, "hash", "name")).To(Equal(int64(5)))
			Expect(client.HStrLen(ctx, "hash", "missing")).To(Equal(int64(0)))
		})
	})

	Describe("keys", func() {
		It("sends an empty LIMIT to SORT", func() {
			// miniredis has no SORT; the refusal echoes the arguments sent.
			_, err := client.Sort(ctx, "list", args.SortArgument{Limit: core.NewLimit(0, 0)})
			Expect(redis.IsServerError(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("`sort`, with args beginning with: `list`, `LIMIT`, `0`, `0`"))
		})

		It("expires and types keys", func() {
			_, err := client.Set(ctx, "key", "value")
			Expect(err).NotTo(HaveOccurred())

			status, err := client.Expire(ctx, "key", time.Minute, core.ExpireOptionNone)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(core.StatusSuccess))
			ttl, err := client.TTL(ctx, "key")
			Expect(err).NotTo(HaveOccurred())
			Expect(ttl).To(Equal(int64(60)))

			t, err := client.Type(ctx, "key")
			Expect(err).NotTo(HaveOccurred())
			Expect(t).To(Equal(core.TypeString))

			n, err := client.Exists(ctx, "key", "missing")
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(1)))

			n, err = client.Del(ctx, "key")
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(1)))
		})

		It("pages through SCAN", func() {
			Expect(mr.Set("a", "1")).To(Succeed())
			Expect(mr.Set("b", "2")).To(Succeed())

			page, err := client.Scan(ctx, core.InitialCursor, args.ScanArgument{})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.IsCompleted()).To(BeTrue())
			Expect(page.Results).To(ConsistOf("a", "b"))

			_, err = client.Scan(ctx, "not-a-cursor", args.ScanArgument{})
			Expect(isArgumentError(err)).To(BeTrue())
		})
	})

	Describe("strings", func() {
		It("sets conditionally", func() {
			arg := args.SetArgument{Condition: args.NX, Expiration: args.EX(10)}
			status, err := client.SetWithArgument(ctx, "key", "first", arg)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(core.StatusSuccess))

			status, err = client.SetWithArgument(ctx, "key", "second", arg)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(core.StatusFailure))
			Expect(mr.Get("key")).To(Equal("first"))
		})

		It("reports a failed condition inside a pipeline", func() {
			arg := args.SetArgument{Condition: args.NX}
			values, err := client.Pipelined(ctx, func(p *redis.Client) error {
				_, _ = p.SetWithArgument(ctx, "key", "first", arg)
				_, _ = p.SetWithArgument(ctx, "key", "second", arg)
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(values).To(Equal([]interface{}{core.StatusSuccess, core.StatusFailure}))
		})

		It("sets and gets several keys", func() {
			status, err := client.MSet(ctx, map[string]interface{}{"a": "1", "b": "2"})
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(core.StatusSuccess))

			values, err := client.MGet(ctx, "a", "missing", "b")
			Expect(err).NotTo(HaveOccurred())
			Expect(values).To(Equal([]interface{}{"1", nil, "2"}))
		})
	})

	Describe("collections", func() {
		It("handles hashes, sets and sorted sets", func() {
			_, err := client.HSet(ctx, "hash", "f", "v")
			Expect(err).NotTo(HaveOccurred())
			all, err := client.HGetAll(ctx, "hash")
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(Equal(map[string]string{"f": "v"}))

			n, err := client.SAdd(ctx, "set", "a", "b", "a")
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(2)))
			members, err := client.SMembers(ctx, "set")
			Expect(err).NotTo(HaveOccurred())
			Expect(members).To(ConsistOf("a", "b"))

			n, err = client.ZAdd(ctx, "zset", args.ZAddArgument{},
				core.Tuple{Member: "one", Score: 1}, core.Tuple{Member: "two", Score: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(2)))
			tuples, err := client.ZRangeWithScores(ctx, "zset", 0, -1)
			Expect(err).NotTo(HaveOccurred())
			Expect(tuples).To(Equal([]core.Tuple{{Member: "one", Score: 1}, {Member: "two", Score: 2}}))
		})

		It("rejects NX combined with GT", func() {
			_, err := client.ZAdd(ctx, "zset", args.ZAddArgument{Condition: args.NX, Comparison: args.GT},
				core.Tuple{Member: "one", Score: 1})
			Expect(isArgumentError(err)).To(BeTrue())
		})

		It("counts distinct elements", func() {
			status, err := client.PFAdd(ctx, "hll", "a", "b", "c", "a")
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(core.StatusSuccess))
			n, err := client.PFCount(ctx, "hll")
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(3)))
		})
	})

	Describe("scripting", func() {
		It("evaluates scripts", func() {
			_, err := client.Set(ctx, "key", "value")
			Expect(err).NotTo(HaveOccurred())

			v, err := client.Eval(ctx, "return redis.call('GET', KEYS[1])", []string{"key"})
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal("value"))

			v, err = client.Eval(ctx, "return redis.call('GET', KEYS[1])", []string{"missing"})
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(BeNil())
		})

		It("loads scripts and runs them by digest", func() {
			sha, err := client.ScriptLoad(ctx, "return ARGV[1]")
			Expect(err).NotTo(HaveOccurred())

			exists, err := client.ScriptExists(ctx, sha, "0000")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(Equal([]bool{true, false}))

			v, err := client.EvalSha(ctx, sha, nil, "hello")
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal("hello"))
		})
	})

	Describe("pub/sub", func() {
		It("delivers published messages", func() {
			sub, err := client.Subscribe(ctx, "news")
			Expect(err).NotTo(HaveOccurred())
			defer sub.Close()

			channels, err := client.PubSubChannels(ctx, "*")
			Expect(err).NotTo(HaveOccurred())
			Expect(channels).To(ConsistOf("news"))

			n, err := client.Publish(ctx, "news", "hello")
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(1)))

			msg, err := sub.Receive(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(msg).To(Equal(core.Message{Channel: "news", Payload: "hello"}))
		})

		It("delivers pattern messages on a channel", func() {
			sub, err := client.PSubscribe(ctx, "news.*")
			Expect(err).NotTo(HaveOccurred())
			defer sub.Close()

			_, err = client.Publish(ctx, "news.tech", "go")
			Expect(err).NotTo(HaveOccurred())

			var msg core.Message
			Eventually(sub.Channel()).Should(Receive(&msg))
			Expect(msg.Pattern).To(Equal("news.*"))
			Expect(msg.Channel).To(Equal("news.tech"))
			Expect(msg.Payload).To(Equal("go"))
		})

		It("stops feeding an unread channel on Close", func() {
			sub, err := client.Subscribe(ctx, "news")
			Expect(err).NotTo(HaveOccurred())
			ch := sub.Channel()

			for i := 0; i < 150; i++ {
				_, err := client.Publish(ctx, "news", "m")
				Expect(err).NotTo(HaveOccurred())
			}
			Eventually(func() int { return len(ch) }).Should(Equal(100))

			Expect(sub.Close()).To(Succeed())
			time.Sleep(100 * time.Millisecond)

			received := 0
			Eventually(func() bool {
				for {
					select {
					case _, ok := <-ch:
						if !ok {
							return true
						}
						received++
					default:
						return false
					}
				}
			}).Should(BeTrue())
			Expect(received).To(Equal(100))
		})

		It("cannot subscribe inside a pipeline", func() {
			Expect(client.OpenPipeline()).To(Succeed())
			_, err := client.Subscribe(ctx, "news")
			Expect(redis.IsIllegalState(err)).To(BeTrue())
			Expect(client.DiscardPipeline()).To(Succeed())
		})
	})

	Describe("streams", func() {
		It("appends and reads entries", func() {
			id, err := client.XAdd(ctx, "stream", args.XAddArgument{}, map[string]interface{}{"f": "1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(id).NotTo(BeEmpty())
			_, err = client.XAdd(ctx, "stream", args.XAddArgument{}, map[string]interface{}{"f": "2"})
			Expect(err).NotTo(HaveOccurred())

			n, err := client.XLen(ctx, "stream")
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(2)))

			entries, err := client.XRange(ctx, "stream", "-", "+", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].ID).To(Equal(id))
			Expect(entries[0].Values).To(HaveKeyWithValue("f", "1"))

			streams, err := client.XRead(ctx, map[string]string{"stream": "0"}, args.XReadArgument{Count: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(streams).To(HaveLen(1))
			Expect(streams[0].Name).To(Equal("stream"))
			Expect(streams[0].Entries).To(HaveLen(1))
		})

		It("consumes through groups", func() {
			status, err := client.XGroupCreate(ctx, "stream", "group", "$", true)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(core.StatusSuccess))

			id, err := client.XAdd(ctx, "stream", args.XAddArgument{}, map[string]interface{}{"f": "v"})
			Expect(err).NotTo(HaveOccurred())

			streams, err := client.XReadGroup(ctx, "group", "consumer", map[string]string{"stream": ">"}, args.XReadArgument{})
			Expect(err).NotTo(HaveOccurred())
			Expect(streams).To(HaveLen(1))
			Expect(streams[0].Entries[0].ID).To(Equal(id))

			n, err := client.XAck(ctx, "stream", "group", id)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(1)))
		})

		It("requires field values", func() {
			_, err := client.XAdd(ctx, "stream", args.XAddArgument{}, nil)
			Expect(isArgumentError(err)).To(BeTrue())
		})
	})
})

var _ = Describe("Script", func() {
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

	It("falls back to EVAL for uncached scripts", func() {
		script := redis.NewScript("return redis.call('INCR', KEYS[1])")

		exists, err := script.Exists(ctx, client)
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeFalse())

		v, err := script.Run(ctx, client, []string{"counter"})
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(int64(1)))

		_, err = script.Load(ctx, client)
		Expect(err).NotTo(HaveOccurred())
		exists, err = script.Exists(ctx, client)
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeTrue())

		v, err = script.Run(ctx, client, []string{"counter"})
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(int64(2)))
	})

	It("uses the digest computed by the server", func() {
		script := redis.NewScript("return 1")
		hash, err := script.Load(ctx, client)
		Expect(err).NotTo(HaveOccurred())
		Expect(hash).To(Equal(script.Hash()))
	})

	It("queues EVAL inside a pipeline", func() {
		script := redis.NewScript("return ARGV[1]")
		values, err := client.Pipelined(ctx, func(p *redis.Client) error {
			_, err := script.Run(ctx, p, nil, "x")
			return err
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(values).To(Equal([]interface{}{"x"}))
	})
})
