package redis

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	rendezvous "github.com/dgryski/go-rendezvous"
	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/command"
	"github.com/buession/redis/internal/hashtag"
)

// ringTopology shards keys across independent servers. The consistent hash
// handed to the ring is kept so multi-key commands can be checked against
// the shard the ring will route them to.
type ringTopology struct {
	client *goredis.Ring

	mu   sync.RWMutex
	hash goredis.ConsistentHash
}

var _ topology = (*ringTopology)(nil)

func (t *ringTopology) kind() Topology                    { return Sharded }
func (t *ringTopology) native() goredis.UniversalClient   { return t.client }
func (t *ringTopology) pinsSlot() bool                    { return false }
func (t *ringTopology) sentinel() *goredis.SentinelClient { return nil }
func (t *ringTopology) close() error                      { return t.client.Close() }

type rendezvousWrapper struct {
	*rendezvous.Rendezvous
}

func (w rendezvousWrapper) Get(key string) string {
	return w.Lookup(key)
}

func (t *ringTopology) newConsistentHash(shards []string) goredis.ConsistentHash {
	h := rendezvousWrapper{rendezvous.New(shards, xxhash.Sum64String)}
	t.mu.Lock()
	t.hash = h
	t.mu.Unlock()
	return h
}

func (t *ringTopology) shard(key string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.hash == nil {
		return ""
	}
	return t.hash.Get(hashtag.Key(key))
}

func (t *ringTopology) watchConn() (*goredis.Conn, error) {
	return nil, unsupported(Sharded, command.Watch.FullName(), "sharded clients do not support WATCH")
}

func (t *ringTopology) txPipeline(*goredis.Conn) (goredis.Pipeliner, *goredis.Conn, error) {
	return nil, nil, unsupported(Sharded, command.Multi.FullName(), "sharded clients do not support transactions")
}

func (t *ringTopology) checkKeys(cmd command.Command, keys []string) error {
	if len(keys) < 2 {
		return nil
	}
	first := t.shard(keys[0])
	for _, key := range keys[1:] {
		if s := t.shard(key); s != first {
			return unsupported(Sharded, cmd.FullName(),
				fmt.Sprintf("key %q is on shard %q, key %q on shard %q", keys[0], first, key, s))
		}
	}
	return nil
}

// NewShardedClient returns a client that distributes keys across the
// shards of RingOptions with rendezvous hashing. The ring watches shard
// health and rebalances when a shard goes down.
func NewShardedClient(opt *RingOptions) *Client {
	t := &ringTopology{}
	t.client = goredis.NewRing(opt.native(t.newConsistentHash))
	return newClient(t, &opt.ConnOptions)
}
