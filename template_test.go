package redis_test

import (
	"github.com/alicebob/miniredis/v2"
	. "github.com/bsm/ginkgo/v2"
	. "github.com/bsm/gomega"

	"github.com/buession/redis"
	"github.com/buession/redis/core"
	"github.com/buession/redis/serializer"
)

type user struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

var _ = Describe("Template", func() {
	var mr *miniredis.Miniredis
	var client *redis.Client
	var tpl *redis.Template

	BeforeEach(func() {
		mr = startServer()
		client = newStandalone(mr)
		tpl = redis.NewTemplate(client, nil)
	})

	AfterEach(func() {
		_ = client.Close()
		mr.Close()
	})

	It("stores values as JSON by default", func() {
		status, err := tpl.SetObject(ctx, "user", user{Name: "ann", Age: 30})
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(core.StatusSuccess))
		Expect(mr.Get("user")).To(MatchJSON(`{"name":"ann","age":30}`))

		var u user
		Expect(tpl.GetObject(ctx, "user", &u)).To(Succeed())
		Expect(u).To(Equal(user{Name: "ann", Age: 30}))
	})

	It("returns Nil for missing keys", func() {
		var u user
		Expect(tpl.GetObject(ctx, "missing", &u)).To(Equal(redis.Nil))
	})

	It("stores hash fields", func() {
		n, err := tpl.HSetObject(ctx, "users", "1", user{Name: "bob"})
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(int64(1)))

		var u user
		Expect(tpl.HGetObject(ctx, "users", "1", &u)).To(Succeed())
		Expect(u.Name).To(Equal("bob"))
	})

	It("stores list elements", func() {
		n, err := tpl.LPushObject(ctx, "queue", user{Name: "a"}, user{Name: "b"})
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(int64(2)))

		var all []user
		Expect(tpl.LRangeObjects(ctx, "queue", 0, -1, &all)).To(Succeed())
		Expect(all).To(Equal([]user{{Name: "b"}, {Name: "a"}}))

		var last user
		Expect(tpl.RPopObject(ctx, "queue", &last)).To(Succeed())
		Expect(last.Name).To(Equal("a"))
	})

	It("requires a slice pointer for ranges", func() {
		var u user
		err := tpl.LRangeObjects(ctx, "queue", 0, -1, &u)
		Expect(isArgumentError(err)).To(BeTrue())
	})

	It("stacks codecs on the serializer", func() {
		tpl = redis.NewTemplate(client, serializer.Compressed(serializer.JSON{}, serializer.Gzip{}))
		_, err := tpl.SetObject(ctx, "user", user{Name: "zed"})
		Expect(err).NotTo(HaveOccurred())

		var u user
		Expect(tpl.GetObject(ctx, "user", &u)).To(Succeed())
		Expect(u.Name).To(Equal("zed"))
	})

	It("writes through pipelines but reads only in normal mode", func() {
		Expect(client.OpenPipeline()).To(Succeed())
		_, err := tpl.SetObject(ctx, "user", user{Name: "ann"})
		Expect(err).NotTo(HaveOccurred())

		var u user
		Expect(redis.IsIllegalState(tpl.GetObject(ctx, "user", &u))).To(BeTrue())

		values, err := client.ClosePipeline(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(values).To(Equal([]interface{}{core.StatusSuccess}))
		Expect(tpl.GetObject(ctx, "user", &u)).To(Succeed())
	})
})
