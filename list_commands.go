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

type ListCommands interface {
	BLPop(ctx context.Context, timeout time.Duration, keys ...string) (core.KeyedValues, error)
	BRPop(ctx context.Context, timeout time.Duration, keys ...string) (core.KeyedValues, error)
	BRPopLPush(ctx context.Context, key, destKey string, timeout time.Duration) (string, error)
	BLMove(ctx context.Context, key, destKey string, from, to core.Direction, timeout time.Duration) (string, error)
	LIndex(ctx context.Context, key string, index int64) (string, error)
	LInsert(ctx context.Context, key string, position core.ListPosition, pivot, value interface{}) (int64, error)
	LLen(ctx context.Context, key string) (int64, error)
	LMove(ctx context.Context, key, destKey string, from, to core.Direction) (string, error)
	LPop(ctx context.Context, key string) (string, error)
	LPopN(ctx context.Context, key string, count int) ([]string, error)
	LPos(ctx context.Context, key, element string, arg args.LPosArgument) (int64, error)
	LPosN(ctx context.Context, key, element string, count int64, arg args.LPosArgument) ([]int64, error)
	LPush(ctx context.Context, key string, values ...interface{}) (int64, error)
	LPushX(ctx context.Context, key string, values ...interface{}) (int64, error)
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	LRem(ctx context.Context, key string, count int64, value interface{}) (int64, error)
	LSet(ctx context.Context, key string, index int64, value interface{}) (core.Status, error)
	LTrim(ctx context.Context, key string, start, stop int64) (core.Status, error)
	RPop(ctx context.Context, key string) (string, error)
	RPopN(ctx context.Context, key string, count int) ([]string, error)
	RPopLPush(ctx context.Context, key, destKey string) (string, error)
	RPush(ctx context.Context, key string, values ...interface{}) (int64, error)
	RPushX(ctx context.Context, key string, values ...interface{}) (int64, error)
}

var _ ListCommands = (*Client)(nil)

func keyedValues(cmd *goredis.StringSliceCmd) (core.KeyedValues, error) {
	return convert.KeyedValuesFromNative(cmd.Val())
}

// BLPop pops the head of the first non-empty list among keys, blocking up
// to timeout. It returns Nil when the timeout expires.
func (c *Client) BLPop(ctx context.Context, timeout time.Duration, keys ...string) (core.KeyedValues, error) {
	params := command.NewBuilder().Keys("keys", keys...).Add("timeout", timeout).Build()
	return execute(ctx, c, command.BLPop, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.BLPop(ctx, timeout, keys...)
	}, keyedValues)
}

func (c *Client) BRPop(ctx context.Context, timeout time.Duration, keys ...string) (core.KeyedValues, error) {
	params := command.NewBuilder().Keys("keys", keys...).Add("timeout", timeout).Build()
	return execute(ctx, c, command.BRPop, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.BRPop(ctx, timeout, keys...)
	}, keyedValues)
}

func (c *Client) BRPopLPush(ctx context.Context, key, destKey string, timeout time.Duration) (string, error) {
	params := command.NewBuilder().Key("key", key).Key("destKey", destKey).Add("timeout", timeout).Build()
	return execute(ctx, c, command.BRPopLPush, params, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.BRPopLPush(ctx, key, destKey, timeout)
	}, stringValue)
}

func directions(from, to core.Direction) (string, string, error) {
	f, ok := convert.DirectionKeyword(from)
	if !ok {
		return "", "", &ArgumentError{Name: "from", Value: from}
	}
	t, ok := convert.DirectionKeyword(to)
	if !ok {
		return "", "", &ArgumentError{Name: "to", Value: to}
	}
	return f, t, nil
}

func (c *Client) BLMove(ctx context.Context, key, destKey string, from, to core.Direction, timeout time.Duration) (string, error) {
	f, t, err := directions(from, to)
	if err != nil {
		return "", err
	}
	params := command.NewBuilder().Key("key", key).Key("destKey", destKey).
		Add("from", f).Add("to", t).Add("timeout", timeout).Build()
	return execute(ctx, c, command.BLMove, params, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.BLMove(ctx, key, destKey, f, t, timeout)
	}, stringValue)
}

func (c *Client) LIndex(ctx context.Context, key string, index int64) (string, error) {
	params := command.NewBuilder().Key("key", key).Add("index", index).Build()
	return execute(ctx, c, command.LIndex, params, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.LIndex(ctx, key, index)
	}, stringValue)
}

// LInsert inserts value before or after pivot and returns the new length,
// or -1 when pivot was not found.
func (c *Client) LInsert(ctx context.Context, key string, position core.ListPosition, pivot, value interface{}) (int64, error) {
	kw, ok := convert.ListPositionKeyword(position)
	if !ok {
		return 0, &ArgumentError{Name: "position", Value: position}
	}
	params := command.NewBuilder().Key("key", key).Add("position", kw).Add("pivot", pivot).Add("value", value).Build()
	return execute(ctx, c, command.LInsert, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.LInsert(ctx, key, kw, pivot, value)
	}, int64Value)
}

func (c *Client) LLen(ctx context.Context, key string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.LLen, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.LLen(ctx, key)
	}, int64Value)
}

func (c *Client) LMove(ctx context.Context, key, destKey string, from, to core.Direction) (string, error) {
	f, t, err := directions(from, to)
	if err != nil {
		return "", err
	}
	params := command.NewBuilder().Key("key", key).Key("destKey", destKey).Add("from", f).Add("to", t).Build()
	return execute(ctx, c, command.LMove, params, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.LMove(ctx, key, destKey, f, t)
	}, stringValue)
}

func (c *Client) LPop(ctx context.Context, key string) (string, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.LPop, params, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.LPop(ctx, key)
	}, stringValue)
}

func (c *Client) LPopN(ctx context.Context, key string, count int) ([]string, error) {
	params := command.NewBuilder().Key("key", key).Add("count", count).Build()
	return execute(ctx, c, command.LPop, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.LPopCount(ctx, key, count)
	}, stringsValue)
}

// LPos returns the index of the first element matching element, or Nil.
func (c *Client) LPos(ctx context.Context, key, element string, arg args.LPosArgument) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("element", element).Flatten(arg).Build()
	return execute(ctx, c, command.LPos, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.LPos(ctx, key, element, convert.LPosToNative(arg))
	}, int64Value)
}

// LPosN returns the indexes of up to count matching elements; zero count
// returns all matches.
func (c *Client) LPosN(ctx context.Context, key, element string, count int64, arg args.LPosArgument) ([]int64, error) {
	params := command.NewBuilder().Key("key", key).Add("element", element).Add("count", count).Flatten(arg).Build()
	return execute(ctx, c, command.LPos, params, func(ctx context.Context, rc nativeClient) *goredis.IntSliceCmd {
		return rc.LPosCount(ctx, key, element, count, convert.LPosToNative(arg))
	}, int64sValue)
}

func (c *Client) LPush(ctx context.Context, key string, values ...interface{}) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("values", values).Build()
	return execute(ctx, c, command.LPush, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.LPush(ctx, key, values...)
	}, int64Value)
}

func (c *Client) LPushX(ctx context.Context, key string, values ...interface{}) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("values", values).Build()
	return execute(ctx, c, command.LPushX, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.LPushX(ctx, key, values...)
	}, int64Value)
}

func (c *Client) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	params := command.NewBuilder().Key("key", key).Add("start", start).Add("stop", stop).Build()
	return execute(ctx, c, command.LRange, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.LRange(ctx, key, start, stop)
	}, stringsValue)
}

func (c *Client) LRem(ctx context.Context, key string, count int64, value interface{}) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("count", count).Add("value", value).Build()
	return execute(ctx, c, command.LRem, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.LRem(ctx, key, count, value)
	}, int64Value)
}

func (c *Client) LSet(ctx context.Context, key string, index int64, value interface{}) (core.Status, error) {
	params := command.NewBuilder().Key("key", key).Add("index", index).Add("value", value).Build()
	return execute(ctx, c, command.LSet, params, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return rc.LSet(ctx, key, index, value)
	}, okStatus)
}

func (c *Client) LTrim(ctx context.Context, key string, start, stop int64) (core.Status, error) {
	params := command.NewBuilder().Key("key", key).Add("start", start).Add("stop", stop).Build()
	return execute(ctx, c, command.LTrim, params, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return rc.LTrim(ctx, key, start, stop)
	}, okStatus)
}

func (c *Client) RPop(ctx context.Context, key string) (string, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.RPop, params, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.RPop(ctx, key)
	}, stringValue)
}

func (c *Client) RPopN(ctx context.Context, key string, count int) ([]string, error) {
	params := command.NewBuilder().Key("key", key).Add("count", count).Build()
	return execute(ctx, c, command.RPop, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.RPopCount(ctx, key, count)
	}, stringsValue)
}

func (c *Client) RPopLPush(ctx context.Context, key, destKey string) (string, error) {
	params := command.NewBuilder().Key("key", key).Key("destKey", destKey).Build()
	return execute(ctx, c, command.RPopLPush, params, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.RPopLPush(ctx, key, destKey)
	}, stringValue)
}

func (c *Client) RPush(ctx context.Context, key string, values ...interface{}) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("values", values).Build()
	return execute(ctx, c, command.RPush, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.RPush(ctx, key, values...)
	}, int64Value)
}

func (c *Client) RPushX(ctx context.Context, key string, values ...interface{}) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("values", values).Build()
	return execute(ctx, c, command.RPushX, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.RPushX(ctx, key, values...)
	}, int64Value)
}
