package redis

import (
	"context"
	"strconv"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/command"
	"github.com/buession/redis/core"
	"github.com/buession/redis/internal/convert"
)

type ClusterCommands interface {
	ClusterAddSlots(ctx context.Context, slots ...int) (core.Status, error)
	ClusterBumpEpoch(ctx context.Context) (core.BumpEpoch, error)
	ClusterCountFailureReports(ctx context.Context, nodeID string) (int64, error)
	ClusterCountKeysInSlot(ctx context.Context, slot int) (int64, error)
	ClusterDelSlots(ctx context.Context, slots ...int) (core.Status, error)
	ClusterFailover(ctx context.Context, opt core.ClusterFailoverOption) (core.Status, error)
	ClusterForget(ctx context.Context, nodeID string) (core.Status, error)
	ClusterGetKeysInSlot(ctx context.Context, slot int, count int) ([]string, error)
	ClusterInfo(ctx context.Context) (core.ClusterInfo, error)
	ClusterKeySlot(ctx context.Context, key string) (int64, error)
	ClusterMeet(ctx context.Context, host string, port int) (core.Status, error)
	ClusterMyID(ctx context.Context) (string, error)
	ClusterNodes(ctx context.Context) ([]core.ClusterNode, error)
	ClusterReplicas(ctx context.Context, nodeID string) ([]core.ClusterNode, error)
	ClusterReplicate(ctx context.Context, nodeID string) (core.Status, error)
	ClusterReset(ctx context.Context, opt core.ClusterResetOption) (core.Status, error)
	ClusterSaveConfig(ctx context.Context) (core.Status, error)
	ClusterSlots(ctx context.Context) ([]core.ClusterSlot, error)
}

var _ ClusterCommands = (*Client)(nil)

func (c *Client) ClusterAddSlots(ctx context.Context, slots ...int) (core.Status, error) {
	params := command.NewBuilder().Add("slots", slots).Build()
	return execute(ctx, c, command.ClusterAddSlots, params, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return rc.ClusterAddSlots(ctx, slots...)
	}, okStatus)
}

func (c *Client) ClusterBumpEpoch(ctx context.Context) (core.BumpEpoch, error) {
	return execute(ctx, c, command.ClusterBumpEpoch, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		return rc.Do(ctx, "cluster", "bumpepoch")
	}, func(cmd *goredis.Cmd) (core.BumpEpoch, error) {
		s, err := cmd.Text()
		if err != nil {
			return core.BumpEpoch{}, err
		}
		return convert.ParseBumpEpoch(s)
	})
}

func (c *Client) ClusterCountFailureReports(ctx context.Context, nodeID string) (int64, error) {
	params := command.NewBuilder().Add("nodeID", nodeID).Build()
	return execute(ctx, c, command.ClusterCountFailureReports, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.ClusterCountFailureReports(ctx, nodeID)
	}, int64Value)
}

func (c *Client) ClusterCountKeysInSlot(ctx context.Context, slot int) (int64, error) {
	params := command.NewBuilder().Add("slot", slot).Build()
	return execute(ctx, c, command.ClusterCountKeysInSlot, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.ClusterCountKeysInSlot(ctx, slot)
	}, int64Value)
}

func (c *Client) ClusterDelSlots(ctx context.Context, slots ...int) (core.Status, error) {
	params := command.NewBuilder().Add("slots", slots).Build()
	return execute(ctx, c, command.ClusterDelSlots, params, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return rc.ClusterDelSlots(ctx, slots...)
	}, okStatus)
}

// ClusterFailover starts a manual failover of the master of the replica
// receiving the command.
func (c *Client) ClusterFailover(ctx context.Context, opt core.ClusterFailoverOption) (core.Status, error) {
	if err := checkArgument("option", opt, convert.ValidFailover(opt)); err != nil {
		return core.StatusFailure, err
	}
	b := command.NewBuilder()
	kw, withOpt := convert.FailoverKeyword(opt)
	if withOpt {
		b.Add("option", kw)
	}
	return execute(ctx, c, command.ClusterFailover, b.Build(), func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		if withOpt {
			return rc.Do(ctx, "cluster", "failover", kw)
		}
		return rc.Do(ctx, "cluster", "failover")
	}, doOK)
}

func (c *Client) ClusterForget(ctx context.Context, nodeID string) (core.Status, error) {
	params := command.NewBuilder().Add("nodeID", nodeID).Build()
	return execute(ctx, c, command.ClusterForget, params, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return rc.ClusterForget(ctx, nodeID)
	}, okStatus)
}

func (c *Client) ClusterGetKeysInSlot(ctx context.Context, slot int, count int) ([]string, error) {
	params := command.NewBuilder().Add("slot", slot).Add("count", count).Build()
	return execute(ctx, c, command.ClusterGetKeysInSlot, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.ClusterGetKeysInSlot(ctx, slot, count)
	}, stringsValue)
}

func (c *Client) ClusterInfo(ctx context.Context) (core.ClusterInfo, error) {
	return execute(ctx, c, command.ClusterInfo, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.ClusterInfo(ctx)
	}, func(cmd *goredis.StringCmd) (core.ClusterInfo, error) {
		return convert.ParseClusterInfo(cmd.Val())
	})
}

// ClusterKeySlot asks the server for the hash slot of key. The key is not
// accessed, so it does not take part in routing.
func (c *Client) ClusterKeySlot(ctx context.Context, key string) (int64, error) {
	params := command.NewBuilder().Add("key", key).Build()
	return execute(ctx, c, command.ClusterKeySlot, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.ClusterKeySlot(ctx, key)
	}, int64Value)
}

func (c *Client) ClusterMeet(ctx context.Context, host string, port int) (core.Status, error) {
	params := command.NewBuilder().Add("host", host).Add("port", port).Build()
	return execute(ctx, c, command.ClusterMeet, params, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return rc.ClusterMeet(ctx, host, strconv.Itoa(port))
	}, okStatus)
}

func (c *Client) ClusterMyID(ctx context.Context) (string, error) {
	return execute(ctx, c, command.ClusterMyID, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		return rc.Do(ctx, "cluster", "myid")
	}, doText)
}

func (c *Client) ClusterNodes(ctx context.Context) ([]core.ClusterNode, error) {
	return execute(ctx, c, command.ClusterNodes, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.ClusterNodes(ctx)
	}, func(cmd *goredis.StringCmd) ([]core.ClusterNode, error) {
		return convert.ParseClusterNodes(cmd.Val())
	})
}

// ClusterReplicas lists the replicas of the master nodeID in the CLUSTER
// NODES format.
func (c *Client) ClusterReplicas(ctx context.Context, nodeID string) ([]core.ClusterNode, error) {
	params := command.NewBuilder().Add("nodeID", nodeID).Build()
	return execute(ctx, c, command.ClusterReplicas, params, func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		return rc.Do(ctx, "cluster", "replicas", nodeID)
	}, func(cmd *goredis.Cmd) ([]core.ClusterNode, error) {
		lines, err := cmd.StringSlice()
		if err != nil {
			return nil, err
		}
		return convert.ParseClusterNodes(strings.Join(lines, "\n"))
	})
}

func (c *Client) ClusterReplicate(ctx context.Context, nodeID string) (core.Status, error) {
	params := command.NewBuilder().Add("nodeID", nodeID).Build()
	return execute(ctx, c, command.ClusterReplicate, params, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return rc.ClusterReplicate(ctx, nodeID)
	}, okStatus)
}

func (c *Client) ClusterReset(ctx context.Context, opt core.ClusterResetOption) (core.Status, error) {
	if err := checkArgument("option", opt, convert.ValidReset(opt)); err != nil {
		return core.StatusFailure, err
	}
	b := command.NewBuilder()
	kw, withOpt := convert.ResetKeyword(opt)
	if withOpt {
		b.Add("option", kw)
	}
	return execute(ctx, c, command.ClusterReset, b.Build(), func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		if withOpt {
			return rc.Do(ctx, "cluster", "reset", kw)
		}
		return rc.Do(ctx, "cluster", "reset")
	}, doOK)
}

func (c *Client) ClusterSaveConfig(ctx context.Context) (core.Status, error) {
	return execute(ctx, c, command.ClusterSaveConfig, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return rc.ClusterSaveConfig(ctx)
	}, okStatus)
}

func (c *Client) ClusterSlots(ctx context.Context) ([]core.ClusterSlot, error) {
	return execute(ctx, c, command.ClusterSlots, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.ClusterSlotsCmd {
		return rc.ClusterSlots(ctx)
	}, func(cmd *goredis.ClusterSlotsCmd) ([]core.ClusterSlot, error) {
		return convert.Slice(cmd.Val(), convert.ClusterSlotFromNative), nil
	})
}
