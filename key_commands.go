package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/args"
	"github.com/buession/redis/command"
	"github.com/buession/redis/core"
	"github.com/buession/redis/internal/convert"
)

type KeyCommands interface {
	Del(ctx context.Context, keys ...string) (int64, error)
	Unlink(ctx context.Context, keys ...string) (int64, error)
	Dump(ctx context.Context, key string) (string, error)
	Exists(ctx context.Context, keys ...string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration, opt core.ExpireOption) (core.Status, error)
	ExpireAt(ctx context.Context, key string, tm time.Time) (core.Status, error)
	ExpireTime(ctx context.Context, key string) (int64, error)
	PExpire(ctx context.Context, key string, ttl time.Duration) (core.Status, error)
	PExpireAt(ctx context.Context, key string, tm time.Time) (core.Status, error)
	PExpireTime(ctx context.Context, key string) (int64, error)
	Persist(ctx context.Context, key string) (core.Status, error)
	TTL(ctx context.Context, key string) (int64, error)
	PTTL(ctx context.Context, key string) (int64, error)
	Keys(ctx context.Context, pattern string) ([]string, error)
	Move(ctx context.Context, key string, db int) (core.Status, error)
	Copy(ctx context.Context, key, destKey string, db int, replace bool) (core.Status, error)
	ObjectEncoding(ctx context.Context, key string) (core.ObjectEncoding, error)
	ObjectFreq(ctx context.Context, key string) (int64, error)
	ObjectIdleTime(ctx context.Context, key string) (int64, error)
	ObjectRefCount(ctx context.Context, key string) (int64, error)
	RandomKey(ctx context.Context) (string, error)
	Rename(ctx context.Context, key, newKey string) (core.Status, error)
	RenameNX(ctx context.Context, key, newKey string) (core.Status, error)
	Restore(ctx context.Context, key string, ttl time.Duration, serialized string, arg args.RestoreArgument) (core.Status, error)
	Migrate(ctx context.Context, host string, port int, db int, timeout time.Duration, arg args.MigrateArgument, keys ...string) (core.Status, error)
	Sort(ctx context.Context, key string, arg args.SortArgument) ([]string, error)
	SortRO(ctx context.Context, key string, arg args.SortArgument) ([]string, error)
	SortStore(ctx context.Context, key, destKey string, arg args.SortArgument) (int64, error)
	Touch(ctx context.Context, keys ...string) (int64, error)
	Type(ctx context.Context, key string) (core.Type, error)
	Scan(ctx context.Context, cursor string, arg args.ScanArgument) (core.ScanResult[[]string], error)
	Wait(ctx context.Context, replicas int, timeout time.Duration) (int64, error)
}

var _ KeyCommands = (*Client)(nil)

func (c *Client) Del(ctx context.Context, keys ...string) (int64, error) {
	params := command.NewBuilder().Keys("keys", keys...).Build()
	return execute(ctx, c, command.Del, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.Del(ctx, keys...)
	}, int64Value)
}

func (c *Client) Unlink(ctx context.Context, keys ...string) (int64, error) {
	params := command.NewBuilder().Keys("keys", keys...).Build()
	return execute(ctx, c, command.Unlink, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.Unlink(ctx, keys...)
	}, int64Value)
}

// Dump returns the serialized value of key, suitable for Restore.
func (c *Client) Dump(ctx context.Context, key string) (string, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.Dump, params, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.Dump(ctx, key)
	}, stringValue)
}

// Exists returns how many of keys exist.
func (c *Client) Exists(ctx context.Context, keys ...string) (int64, error) {
	params := command.NewBuilder().Keys("keys", keys...).Build()
	return execute(ctx, c, command.Exists, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.Exists(ctx, keys...)
	}, int64Value)
}

// Expire sets a timeout on key. opt restricts when the timeout is applied.
func (c *Client) Expire(ctx context.Context, key string, ttl time.Duration, opt core.ExpireOption) (core.Status, error) {
	if err := checkArgument("option", opt, convert.ValidExpireOption(opt)); err != nil {
		return core.StatusFailure, err
	}
	b := command.NewBuilder().Key("key", key).Add("ttl", ttl)
	if kw, ok := convert.ExpireOptionKeyword(opt); ok {
		b.Add("option", kw)
	}
	return execute(ctx, c, command.Expire, b.Build(), func(ctx context.Context, rc nativeClient) *goredis.BoolCmd {
		switch opt {
		case core.ExpireOptionNX:
			return rc.ExpireNX(ctx, key, ttl)
		case core.ExpireOptionXX:
			return rc.ExpireXX(ctx, key, ttl)
		case core.ExpireOptionGT:
			return rc.ExpireGT(ctx, key, ttl)
		case core.ExpireOptionLT:
			return rc.ExpireLT(ctx, key, ttl)
		}
		return rc.Expire(ctx, key, ttl)
	}, boolStatus)
}

func (c *Client) ExpireAt(ctx context.Context, key string, tm time.Time) (core.Status, error) {
	params := command.NewBuilder().Key("key", key).Add("time", tm).Build()
	return execute(ctx, c, command.ExpireAt, params, func(ctx context.Context, rc nativeClient) *goredis.BoolCmd {
		return rc.ExpireAt(ctx, key, tm)
	}, boolStatus)
}

// ExpireTime returns the absolute Unix time in seconds at which key
// expires, -1 if it has no expiry and -2 if it does not exist.
func (c *Client) ExpireTime(ctx context.Context, key string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.ExpireTime, params, func(ctx context.Context, rc nativeClient) *goredis.DurationCmd {
		return rc.ExpireTime(ctx, key)
	}, ttlSeconds)
}

func (c *Client) PExpire(ctx context.Context, key string, ttl time.Duration) (core.Status, error) {
	params := command.NewBuilder().Key("key", key).Add("ttl", ttl).Build()
	return execute(ctx, c, command.PExpire, params, func(ctx context.Context, rc nativeClient) *goredis.BoolCmd {
		return rc.PExpire(ctx, key, ttl)
	}, boolStatus)
}

func (c *Client) PExpireAt(ctx context.Context, key string, tm time.Time) (core.Status, error) {
	params := command.NewBuilder().Key("key", key).Add("time", tm).Build()
	return execute(ctx, c, command.PExpireAt, params, func(ctx context.Context, rc nativeClient) *goredis.BoolCmd {
		return rc.PExpireAt(ctx, key, tm)
	}, boolStatus)
}

// PExpireTime is ExpireTime in milliseconds.
func (c *Client) PExpireTime(ctx context.Context, key string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.PExpireTime, params, func(ctx context.Context, rc nativeClient) *goredis.DurationCmd {
		return rc.PExpireTime(ctx, key)
	}, ttlMilliseconds)
}

func (c *Client) Persist(ctx context.Context, key string) (core.Status, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.Persist, params, func(ctx context.Context, rc nativeClient) *goredis.BoolCmd {
		return rc.Persist(ctx, key)
	}, boolStatus)
}

// TTL returns the remaining time to live of key in seconds, -1 if it has
// no expiry and -2 if it does not exist.
func (c *Client) TTL(ctx context.Context, key string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.TTL, params, func(ctx context.Context, rc nativeClient) *goredis.DurationCmd {
		return rc.TTL(ctx, key)
	}, ttlSeconds)
}

// PTTL is TTL in milliseconds.
func (c *Client) PTTL(ctx context.Context, key string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.PTTL, params, func(ctx context.Context, rc nativeClient) *goredis.DurationCmd {
		return rc.PTTL(ctx, key)
	}, ttlMilliseconds)
}

func (c *Client) Keys(ctx context.Context, pattern string) ([]string, error) {
	params := command.NewBuilder().Add("pattern", pattern).Build()
	return execute(ctx, c, command.Keys, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.Keys(ctx, pattern)
	}, stringsValue)
}

func (c *Client) Move(ctx context.Context, key string, db int) (core.Status, error) {
	params := command.NewBuilder().Key("key", key).Add("db", db).Build()
	return execute(ctx, c, command.Move, params, func(ctx context.Context, rc nativeClient) *goredis.BoolCmd {
		return rc.Move(ctx, key, db)
	}, boolStatus)
}

func (c *Client) Copy(ctx context.Context, key, destKey string, db int, replace bool) (core.Status, error) {
	params := command.NewBuilder().Key("key", key).Key("destKey", destKey).
		Add("db", db).Add("replace", replace).Build()
	return execute(ctx, c, command.Copy, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.Copy(ctx, key, destKey, db, replace)
	}, countStatus)
}

func (c *Client) ObjectEncoding(ctx context.Context, key string) (core.ObjectEncoding, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.ObjectEncoding, params, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.ObjectEncoding(ctx, key)
	}, func(cmd *goredis.StringCmd) (core.ObjectEncoding, error) {
		return convert.ParseObjectEncoding(cmd.Val()), nil
	})
}

func (c *Client) ObjectFreq(ctx context.Context, key string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.ObjectFreq, params, func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		return rc.Do(ctx, "object", "freq", key)
	}, doInt64)
}

// ObjectIdleTime returns the seconds since key was last accessed.
func (c *Client) ObjectIdleTime(ctx context.Context, key string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.ObjectIdleTime, params, func(ctx context.Context, rc nativeClient) *goredis.DurationCmd {
		return rc.ObjectIdleTime(ctx, key)
	}, func(cmd *goredis.DurationCmd) (int64, error) {
		return seconds(cmd.Val()), nil
	})
}

func (c *Client) ObjectRefCount(ctx context.Context, key string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.ObjectRefCount, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.ObjectRefCount(ctx, key)
	}, int64Value)
}

func (c *Client) RandomKey(ctx context.Context) (string, error) {
	return execute(ctx, c, command.RandomKey, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.RandomKey(ctx)
	}, stringValue)
}

func (c *Client) Rename(ctx context.Context, key, newKey string) (core.Status, error) {
	params := command.NewBuilder().Key("key", key).Key("newKey", newKey).Build()
	return execute(ctx, c, command.Rename, params, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return rc.Rename(ctx, key, newKey)
	}, okStatus)
}

func (c *Client) RenameNX(ctx context.Context, key, newKey string) (core.Status, error) {
	params := command.NewBuilder().Key("key", key).Key("newKey", newKey).Build()
	return execute(ctx, c, command.RenameNX, params, func(ctx context.Context, rc nativeClient) *goredis.BoolCmd {
		return rc.RenameNX(ctx, key, newKey)
	}, boolStatus)
}

// Restore creates key from a value produced by Dump. A zero ttl creates
// the key without expiry.
func (c *Client) Restore(ctx context.Context, key string, ttl time.Duration, serialized string, arg args.RestoreArgument) (core.Status, error) {
	params := command.NewBuilder().Key("key", key).Add("ttl", ttl).Flatten(arg).Build()
	return execute(ctx, c, command.Restore, params, func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		cmdArgs := []interface{}{"restore", key, milliseconds(ttl), serialized}
		return rc.Do(ctx, append(cmdArgs, convert.RestoreTokens(arg)...)...)
	}, doOK)
}

// Migrate atomically transfers keys to another instance. The reply NOKEY,
// sent when none of the keys exist, is reported as StatusFailure.
func (c *Client) Migrate(ctx context.Context, host string, port int, db int, timeout time.Duration, arg args.MigrateArgument, keys ...string) (core.Status, error) {
	params := command.NewBuilder().Add("host", host).Add("port", port).Add("db", db).
		Add("timeout", timeout).Flatten(arg).Keys("keys", keys...).Build()
	return execute(ctx, c, command.Migrate, params, func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		cmdArgs := []interface{}{"migrate", host, port}
		if len(keys) == 1 {
			cmdArgs = append(cmdArgs, keys[0], db, milliseconds(timeout))
			cmdArgs = append(cmdArgs, convert.MigrateTokens(arg)...)
		} else {
			cmdArgs = append(cmdArgs, "", db, milliseconds(timeout))
			cmdArgs = append(cmdArgs, convert.MigrateTokens(arg)...)
			cmdArgs = append(cmdArgs, "keys")
			for _, k := range keys {
				cmdArgs = append(cmdArgs, k)
			}
		}
		return rc.Do(ctx, cmdArgs...)
	}, doOK)
}

// sortArgs spells out SORT when arg has a Limit: go-redis drops LIMIT 0 0,
// which the server answers with an empty list.
func sortArgs(name, key string, arg args.SortArgument) []interface{} {
	return append([]interface{}{name, key}, convert.SortTokens(arg)...)
}

func (c *Client) Sort(ctx context.Context, key string, arg args.SortArgument) ([]string, error) {
	if err := checkArgument("order", arg.Order, convert.ValidOrder(arg.Order)); err != nil {
		return nil, err
	}
	params := command.NewBuilder().Key("key", key).Flatten(arg).Build()
	return execute(ctx, c, command.Sort, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		if arg.Limit != nil {
			cmd := goredis.NewStringSliceCmd(ctx, sortArgs("sort", key, arg)...)
			_ = rc.Process(ctx, cmd)
			return cmd
		}
		return rc.Sort(ctx, key, convert.SortToNative(arg))
	}, stringsValue)
}

func (c *Client) SortRO(ctx context.Context, key string, arg args.SortArgument) ([]string, error) {
	if err := checkArgument("order", arg.Order, convert.ValidOrder(arg.Order)); err != nil {
		return nil, err
	}
	params := command.NewBuilder().Key("key", key).Flatten(arg).Build()
	return execute(ctx, c, command.SortRO, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		if arg.Limit != nil {
			cmd := goredis.NewStringSliceCmd(ctx, sortArgs("sort_ro", key, arg)...)
			_ = rc.Process(ctx, cmd)
			return cmd
		}
		return rc.SortRO(ctx, key, convert.SortToNative(arg))
	}, stringsValue)
}

// SortStore stores the sorted elements at destKey and returns their count.
func (c *Client) SortStore(ctx context.Context, key, destKey string, arg args.SortArgument) (int64, error) {
	if err := checkArgument("order", arg.Order, convert.ValidOrder(arg.Order)); err != nil {
		return 0, err
	}
	params := command.NewBuilder().Key("key", key).Key("destKey", destKey).Flatten(arg).Build()
	return execute(ctx, c, command.Sort, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		if arg.Limit != nil {
			cmd := goredis.NewIntCmd(ctx, append(sortArgs("sort", key, arg), "store", destKey)...)
			_ = rc.Process(ctx, cmd)
			return cmd
		}
		return rc.SortStore(ctx, key, destKey, convert.SortToNative(arg))
	}, int64Value)
}

func (c *Client) Touch(ctx context.Context, keys ...string) (int64, error) {
	params := command.NewBuilder().Keys("keys", keys...).Build()
	return execute(ctx, c, command.Touch, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.Touch(ctx, keys...)
	}, int64Value)
}

func (c *Client) Type(ctx context.Context, key string) (core.Type, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.Type, params, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return rc.Type(ctx, key)
	}, func(cmd *goredis.StatusCmd) (core.Type, error) {
		return convert.ParseType(cmd.Val()), nil
	})
}

// Scan returns one page of keys starting at cursor. Iteration is complete
// when the returned cursor is core.InitialCursor.
func (c *Client) Scan(ctx context.Context, cursor string, arg args.ScanArgument) (core.ScanResult[[]string], error) {
	cur, err := convert.ParseCursor(cursor)
	if err != nil {
		return core.ScanResult[[]string]{}, &ArgumentError{Name: "cursor", Value: cursor}
	}
	if err := checkArgument("type", arg.Type, convert.ValidType(arg.Type)); err != nil {
		return core.ScanResult[[]string]{}, err
	}
	params := command.NewBuilder().Add("cursor", cursor).Flatten(arg).Build()
	return execute(ctx, c, command.Scan, params, func(ctx context.Context, rc nativeClient) *goredis.ScanCmd {
		if t, ok := convert.TypeKeyword(arg.Type); ok {
			return rc.ScanType(ctx, cur, arg.Match, arg.Count, t)
		}
		return rc.Scan(ctx, cur, arg.Match, arg.Count)
	}, keyScanPage)
}

// Wait blocks until the preceding writes are acknowledged by replicas or
// timeout elapses, and returns the number of acknowledging replicas.
func (c *Client) Wait(ctx context.Context, replicas int, timeout time.Duration) (int64, error) {
	params := command.NewBuilder().Add("replicas", replicas).Add("timeout", timeout).Build()
	return execute(ctx, c, command.Wait, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		cmd := goredis.NewIntCmd(ctx, "wait", replicas, timeout.Milliseconds())
		_ = rc.Process(ctx, cmd)
		return cmd
	}, int64Value)
}
