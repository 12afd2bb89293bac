package redis

import (
	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/command"
)

// nodeTopology serves a single master, addressed directly or discovered
// through sentinels.
type nodeTopology struct {
	topo      Topology
	client    *goredis.Client
	sentinels *goredis.SentinelClient
}

var _ topology = (*nodeTopology)(nil)

func (t *nodeTopology) kind() Topology                  { return t.topo }
func (t *nodeTopology) native() goredis.UniversalClient { return t.client }
func (t *nodeTopology) pinsSlot() bool                  { return false }

func (t *nodeTopology) sentinel() *goredis.SentinelClient {
	return t.sentinels
}

func (t *nodeTopology) watchConn() (*goredis.Conn, error) {
	return t.client.Conn(), nil
}

func (t *nodeTopology) txPipeline(conn *goredis.Conn) (goredis.Pipeliner, *goredis.Conn, error) {
	if conn == nil {
		conn = t.client.Conn()
	}
	return conn.TxPipeline(), conn, nil
}

func (t *nodeTopology) checkKeys(command.Command, []string) error {
	return nil
}

func (t *nodeTopology) close() error {
	err := t.client.Close()
	if t.sentinels != nil {
		if e := t.sentinels.Close(); err == nil {
			err = e
		}
	}
	return err
}

// NewClient returns a client to the Redis Server specified by Options.
func NewClient(opt *Options) *Client {
	return newClient(&nodeTopology{
		topo:   Standalone,
		client: goredis.NewClient(opt.native()),
	}, &opt.ConnOptions)
}

// NewFailoverClient returns a client that uses Redis Sentinel for
// automatic failover. Sentinel admin commands go to the first sentinel.
func NewFailoverClient(opt *FailoverOptions) *Client {
	return newClient(&nodeTopology{
		topo:      Sentinel,
		client:    goredis.NewFailoverClient(opt.native()),
		sentinels: goredis.NewSentinelClient(opt.sentinelOptions()),
	}, &opt.ConnOptions)
}
