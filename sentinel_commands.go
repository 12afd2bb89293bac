package redis

import (
	"context"
	"fmt"
	"net"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/command"
	"github.com/buession/redis/core"
)

// SentinelCommands talk to the sentinel of a failover client. They fail
// with an IllegalStateError on other topologies.
type SentinelCommands interface {
	SentinelGetMasterAddrByName(ctx context.Context, masterName string) (string, error)
	SentinelMaster(ctx context.Context, masterName string) (map[string]string, error)
	SentinelFailover(ctx context.Context, masterName string) (core.Status, error)
	SentinelCkQuorum(ctx context.Context, masterName string) (string, error)
	SentinelReset(ctx context.Context, pattern string) (int64, error)
}

var _ SentinelCommands = (*Client)(nil)

// SentinelGetMasterAddrByName returns the host:port of the current master.
func (c *Client) SentinelGetMasterAddrByName(ctx context.Context, masterName string) (string, error) {
	params := command.NewBuilder().Add("masterName", masterName).Build()
	return executeSentinel(ctx, c, command.SentinelGetMasterAddrByName, params, func(ctx context.Context, sc *goredis.SentinelClient) *goredis.StringSliceCmd {
		return sc.GetMasterAddrByName(ctx, masterName)
	}, func(cmd *goredis.StringSliceCmd) (string, error) {
		addr := cmd.Val()
		if len(addr) != 2 {
			return "", fmt.Errorf("unexpected master address %q", addr)
		}
		return net.JoinHostPort(addr[0], addr[1]), nil
	})
}

func (c *Client) SentinelMaster(ctx context.Context, masterName string) (map[string]string, error) {
	params := command.NewBuilder().Add("masterName", masterName).Build()
	return executeSentinel(ctx, c, command.SentinelMaster, params, func(ctx context.Context, sc *goredis.SentinelClient) *goredis.MapStringStringCmd {
		return sc.Master(ctx, masterName)
	}, stringMapValue)
}

func (c *Client) SentinelFailover(ctx context.Context, masterName string) (core.Status, error) {
	params := command.NewBuilder().Add("masterName", masterName).Build()
	return executeSentinel(ctx, c, command.SentinelFailover, params, func(ctx context.Context, sc *goredis.SentinelClient) *goredis.StatusCmd {
		return sc.Failover(ctx, masterName)
	}, okStatus)
}

func (c *Client) SentinelCkQuorum(ctx context.Context, masterName string) (string, error) {
	params := command.NewBuilder().Add("masterName", masterName).Build()
	return executeSentinel(ctx, c, command.SentinelCkQuorum, params, func(ctx context.Context, sc *goredis.SentinelClient) *goredis.StringCmd {
		return sc.CkQuorum(ctx, masterName)
	}, stringValue)
}

// SentinelReset resets the masters matching pattern and returns how many
// were reset.
func (c *Client) SentinelReset(ctx context.Context, pattern string) (int64, error) {
	params := command.NewBuilder().Add("pattern", pattern).Build()
	return executeSentinel(ctx, c, command.SentinelReset, params, func(ctx context.Context, sc *goredis.SentinelClient) *goredis.IntCmd {
		return sc.Reset(ctx, pattern)
	}, int64Value)
}
