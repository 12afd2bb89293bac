package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/command"
	"github.com/buession/redis/core"
	"github.com/buession/redis/internal/convert"
)

type ServerCommands interface {
	BgRewriteAOF(ctx context.Context) (core.Status, error)
	BgSave(ctx context.Context) (core.Status, error)
	ConfigGet(ctx context.Context, parameter string) (map[string]string, error)
	ConfigSet(ctx context.Context, parameter, value string) (core.Status, error)
	ConfigResetStat(ctx context.Context) (core.Status, error)
	ConfigRewrite(ctx context.Context) (core.Status, error)
	DBSize(ctx context.Context) (int64, error)
	FlushAll(ctx context.Context, mode core.FlushMode) (core.Status, error)
	FlushDB(ctx context.Context, mode core.FlushMode) (core.Status, error)
	Info(ctx context.Context, sections ...string) (core.Info, error)
	LastSave(ctx context.Context) (time.Time, error)
	MemoryUsage(ctx context.Context, key string, samples int) (int64, error)
	Save(ctx context.Context) (core.Status, error)
	SlowLogGet(ctx context.Context, count int64) ([]core.SlowLog, error)
	SlowLogLen(ctx context.Context) (int64, error)
	SlowLogReset(ctx context.Context) (core.Status, error)
	SwapDB(ctx context.Context, db1, db2 int) (core.Status, error)
	Time(ctx context.Context) (time.Time, error)
	ReplicaOf(ctx context.Context, host string, port int) (core.Status, error)
}

var _ ServerCommands = (*Client)(nil)

// accepted maps the informational status replies of background commands
// to StatusSuccess.
func accepted(*goredis.StatusCmd) (core.Status, error) {
	return core.StatusSuccess, nil
}

func (c *Client) BgRewriteAOF(ctx context.Context) (core.Status, error) {
	return execute(ctx, c, command.BgRewriteAOF, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return rc.BgRewriteAOF(ctx)
	}, accepted)
}

func (c *Client) BgSave(ctx context.Context) (core.Status, error) {
	return execute(ctx, c, command.BgSave, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return rc.BgSave(ctx)
	}, accepted)
}

// ConfigGet returns the configuration parameters matching parameter,
// which may be a glob pattern.
func (c *Client) ConfigGet(ctx context.Context, parameter string) (map[string]string, error) {
	params := command.NewBuilder().Add("parameter", parameter).Build()
	return execute(ctx, c, command.ConfigGet, params, func(ctx context.Context, rc nativeClient) *goredis.MapStringStringCmd {
		return rc.ConfigGet(ctx, parameter)
	}, stringMapValue)
}

func (c *Client) ConfigSet(ctx context.Context, parameter, value string) (core.Status, error) {
	params := command.NewBuilder().Add("parameter", parameter).Add("value", value).Build()
	return execute(ctx, c, command.ConfigSet, params, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return rc.ConfigSet(ctx, parameter, value)
	}, okStatus)
}

func (c *Client) ConfigResetStat(ctx context.Context) (core.Status, error) {
	return execute(ctx, c, command.ConfigResetStat, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return rc.ConfigResetStat(ctx)
	}, okStatus)
}

func (c *Client) ConfigRewrite(ctx context.Context) (core.Status, error) {
	return execute(ctx, c, command.ConfigRewrite, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return rc.ConfigRewrite(ctx)
	}, okStatus)
}

func (c *Client) DBSize(ctx context.Context) (int64, error) {
	return execute(ctx, c, command.DBSize, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.DBSize(ctx)
	}, int64Value)
}

func flushCommand(ctx context.Context, rc nativeClient, name []interface{}, mode core.FlushMode) *goredis.StatusCmd {
	cmdArgs := append([]interface{}{}, name...)
	if kw, ok := convert.FlushModeKeyword(mode); ok {
		cmdArgs = append(cmdArgs, kw)
	}
	cmd := goredis.NewStatusCmd(ctx, cmdArgs...)
	_ = rc.Process(ctx, cmd)
	return cmd
}

func flushParams(mode core.FlushMode) command.Arguments {
	b := command.NewBuilder()
	if kw, ok := convert.FlushModeKeyword(mode); ok {
		b.Add("mode", kw)
	}
	return b.Build()
}

func (c *Client) FlushAll(ctx context.Context, mode core.FlushMode) (core.Status, error) {
	if err := checkArgument("mode", mode, convert.ValidFlushMode(mode)); err != nil {
		return core.StatusFailure, err
	}
	return execute(ctx, c, command.FlushAll, flushParams(mode), func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return flushCommand(ctx, rc, []interface{}{"flushall"}, mode)
	}, okStatus)
}

func (c *Client) FlushDB(ctx context.Context, mode core.FlushMode) (core.Status, error) {
	if err := checkArgument("mode", mode, convert.ValidFlushMode(mode)); err != nil {
		return core.StatusFailure, err
	}
	return execute(ctx, c, command.FlushDB, flushParams(mode), func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return flushCommand(ctx, rc, []interface{}{"flushdb"}, mode)
	}, okStatus)
}

// Info returns the parsed INFO reply for sections, or the default sections.
func (c *Client) Info(ctx context.Context, sections ...string) (core.Info, error) {
	params := command.NewBuilder().Add("sections", sections).Build()
	return execute(ctx, c, command.Info, params, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.Info(ctx, sections...)
	}, func(cmd *goredis.StringCmd) (core.Info, error) {
		return convert.ParseInfo(cmd.Val()), nil
	})
}

func (c *Client) LastSave(ctx context.Context) (time.Time, error) {
	return execute(ctx, c, command.LastSave, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.LastSave(ctx)
	}, func(cmd *goredis.IntCmd) (time.Time, error) {
		return time.Unix(cmd.Val(), 0), nil
	})
}

// MemoryUsage returns the bytes used by key and its value. A positive
// samples bounds the nested values sampled.
func (c *Client) MemoryUsage(ctx context.Context, key string, samples int) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("samples", samples).Build()
	return execute(ctx, c, command.MemoryUsage, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		if samples > 0 {
			return rc.MemoryUsage(ctx, key, samples)
		}
		return rc.MemoryUsage(ctx, key)
	}, int64Value)
}

func (c *Client) Save(ctx context.Context) (core.Status, error) {
	return execute(ctx, c, command.Save, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return rc.Save(ctx)
	}, okStatus)
}

func (c *Client) SlowLogGet(ctx context.Context, count int64) ([]core.SlowLog, error) {
	params := command.NewBuilder().Add("count", count).Build()
	return execute(ctx, c, command.SlowLogGet, params, func(ctx context.Context, rc nativeClient) *goredis.SlowLogCmd {
		return rc.SlowLogGet(ctx, count)
	}, func(cmd *goredis.SlowLogCmd) ([]core.SlowLog, error) {
		return convert.Slice(cmd.Val(), convert.SlowLogFromNative), nil
	})
}

func (c *Client) SlowLogLen(ctx context.Context) (int64, error) {
	return execute(ctx, c, command.SlowLogLen, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		return rc.Do(ctx, "slowlog", "len")
	}, doInt64)
}

func (c *Client) SlowLogReset(ctx context.Context) (core.Status, error) {
	return execute(ctx, c, command.SlowLogReset, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		return rc.Do(ctx, "slowlog", "reset")
	}, doOK)
}

func (c *Client) SwapDB(ctx context.Context, db1, db2 int) (core.Status, error) {
	params := command.NewBuilder().Add("db1", db1).Add("db2", db2).Build()
	return execute(ctx, c, command.SwapDB, params, func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		return rc.Do(ctx, "swapdb", db1, db2)
	}, doOK)
}

func (c *Client) Time(ctx context.Context) (time.Time, error) {
	return execute(ctx, c, command.Time, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.TimeCmd {
		return rc.Time(ctx)
	}, func(cmd *goredis.TimeCmd) (time.Time, error) {
		return cmd.Val(), nil
	})
}

// ReplicaOf makes the server a replica of host:port. An empty host turns
// it back into a master (REPLICAOF NO ONE).
func (c *Client) ReplicaOf(ctx context.Context, host string, port int) (core.Status, error) {
	params := command.NewBuilder().Add("host", host).Add("port", port).Build()
	return execute(ctx, c, command.ReplicaOf, params, func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		if host == "" {
			return rc.Do(ctx, "replicaof", "no", "one")
		}
		return rc.Do(ctx, "replicaof", host, port)
	}, doOK)
}
