package redis

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/command"
	"github.com/buession/redis/internal/hashtag"
)

// clusterTopology routes commands by hash slot across a Redis Cluster.
type clusterTopology struct {
	client *goredis.ClusterClient
}

var _ topology = (*clusterTopology)(nil)

func (t *clusterTopology) kind() Topology                    { return Cluster }
func (t *clusterTopology) native() goredis.UniversalClient   { return t.client }
func (t *clusterTopology) pinsSlot() bool                    { return true }
func (t *clusterTopology) sentinel() *goredis.SentinelClient { return nil }
func (t *clusterTopology) close() error                      { return t.client.Close() }

func (t *clusterTopology) watchConn() (*goredis.Conn, error) {
	return nil, unsupported(Cluster, command.Watch.FullName(), "WATCH needs a connection pinned to one node")
}

func (t *clusterTopology) txPipeline(conn *goredis.Conn) (goredis.Pipeliner, *goredis.Conn, error) {
	return t.client.TxPipeline(), nil, nil
}

func (t *clusterTopology) checkKeys(cmd command.Command, keys []string) error {
	if _, ok := hashtag.SameSlot(keys...); !ok {
		return unsupported(Cluster, cmd.FullName(),
			fmt.Sprintf("keys %q do not hash to the same slot", keys))
	}
	return nil
}

// NewClusterClient returns a Redis Cluster client as described in
// http://redis.io/topics/cluster-spec.
func NewClusterClient(opt *ClusterOptions) *Client {
	return newClient(&clusterTopology{
		client: goredis.NewClusterClient(opt.native()),
	}, &opt.ConnOptions)
}
