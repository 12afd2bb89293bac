package redis_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/bsm/ginkgo/v2"
	. "github.com/bsm/gomega"
	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis"
)

var _ = Describe("Config", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "redis-config")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
		Expect(os.Unsetenv("REDIS_DB")).To(Succeed())
		Expect(os.Unsetenv("REDIS_TOPOLOGY")).To(Succeed())
	})

	writeConfig := func(body string) string {
		path := filepath.Join(dir, "redis.yaml")
		Expect(os.WriteFile(path, []byte(body), 0o600)).To(Succeed())
		return path
	}

	It("reads YAML", func() {
		path := writeConfig(`
topology: sharded
shards:
  one: 127.0.0.1:7001
  two: 127.0.0.1:7002
db: 2
protocol: 2
dial_timeout: 2s
pool_size: 20
`)
		cfg, err := redis.LoadConfig(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Topology).To(Equal("sharded"))
		Expect(cfg.Shards).To(HaveKeyWithValue("one", "127.0.0.1:7001"))
		Expect(cfg.Shards).To(HaveLen(2))
		Expect(cfg.DB).To(Equal(2))
		Expect(cfg.Protocol).To(Equal(2))
		Expect(cfg.DialTimeout).To(Equal(2 * time.Second))
		Expect(cfg.PoolSize).To(Equal(20))
	})

	It("lets the environment override YAML", func() {
		path := writeConfig("topology: standalone\ndb: 2\naddrs: [\"127.0.0.1:6379\"]\n")
		Expect(os.Setenv("REDIS_DB", "5")).To(Succeed())

		cfg, err := redis.LoadConfig(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.DB).To(Equal(5))
		Expect(cfg.Topology).To(Equal("standalone"))
		Expect(cfg.Addrs).To(Equal([]string{"127.0.0.1:6379"}))
	})

	It("reads the environment alone", func() {
		Expect(os.Setenv("REDIS_TOPOLOGY", "cluster")).To(Succeed())
		cfg, err := redis.LoadConfig("")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Topology).To(Equal("cluster"))
	})

	It("fails on a missing file", func() {
		_, err := redis.LoadConfig(filepath.Join(dir, "missing.yaml"))
		Expect(err).To(HaveOccurred())
	})

	It("builds a client for the configured topology", func() {
		mr := startServer()
		defer mr.Close()

		cfg := &redis.Config{Addrs: []string{mr.Addr()}, Protocol: 2}
		client, err := cfg.NewClient(redis.ConnOptions{})
		Expect(err).NotTo(HaveOccurred())
		defer client.Close()
		Expect(client.Topology()).To(Equal(redis.Standalone))

		pong, err := client.Ping(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(pong).To(Equal("PONG"))
	})

	It("keeps pool and client settings next to a URL", func() {
		mr := startServer()
		defer mr.Close()

		cfg := &redis.Config{
			URL:        "redis://" + mr.Addr() + "/3?dial_timeout=3s",
			ClientName: "orders",
			Protocol:   2,
			MaxRetries: 2,
			PoolSize:   7,
		}
		client, err := cfg.NewClient(redis.ConnOptions{})
		Expect(err).NotTo(HaveOccurred())
		defer client.Close()

		opt := client.Native().(*goredis.Client).Options()
		Expect(opt.DB).To(Equal(3))
		Expect(opt.DialTimeout).To(Equal(3 * time.Second))
		Expect(opt.ClientName).To(Equal("orders"))
		Expect(opt.Protocol).To(Equal(2))
		Expect(opt.MaxRetries).To(Equal(2))
		Expect(opt.PoolSize).To(Equal(7))
	})

	It("validates topology settings", func() {
		_, err := (&redis.Config{Topology: "cluster"}).NewClient(redis.ConnOptions{})
		Expect(err).To(HaveOccurred())
		_, err = (&redis.Config{Topology: "sentinel"}).NewClient(redis.ConnOptions{})
		Expect(err).To(HaveOccurred())
		_, err = (&redis.Config{Topology: "mesh"}).NewClient(redis.ConnOptions{})
		Expect(err).To(HaveOccurred())
	})
})
