package redis

import (
	"context"
	"sort"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/args"
	"github.com/buession/redis/command"
	"github.com/buession/redis/core"
	"github.com/buession/redis/internal/convert"
)

type StringCommands interface {
	Append(ctx context.Context, key, value string) (int64, error)
	Decr(ctx context.Context, key string) (int64, error)
	DecrBy(ctx context.Context, key string, decrement int64) (int64, error)
	Get(ctx context.Context, key string) (string, error)
	GetDel(ctx context.Context, key string) (string, error)
	GetEx(ctx context.Context, key string, arg args.GetExArgument) (string, error)
	GetRange(ctx context.Context, key string, start, end int64) (string, error)
	GetSet(ctx context.Context, key string, value interface{}) (string, error)
	Incr(ctx context.Context, key string) (int64, error)
	IncrBy(ctx context.Context, key string, increment int64) (int64, error)
	IncrByFloat(ctx context.Context, key string, increment float64) (float64, error)
	MGet(ctx context.Context, keys ...string) ([]interface{}, error)
	MSet(ctx context.Context, values map[string]interface{}) (core.Status, error)
	MSetNX(ctx context.Context, values map[string]interface{}) (core.Status, error)
	Set(ctx context.Context, key string, value interface{}) (core.Status, error)
	SetWithArgument(ctx context.Context, key string, value interface{}, arg args.SetArgument) (core.Status, error)
	SetGet(ctx context.Context, key string, value interface{}, arg args.SetArgument) (string, error)
	SetEx(ctx context.Context, key string, value interface{}, ttl time.Duration) (core.Status, error)
	PSetEx(ctx context.Context, key string, value interface{}, ttl time.Duration) (core.Status, error)
	SetNX(ctx context.Context, key string, value interface{}) (core.Status, error)
	SetRange(ctx context.Context, key string, offset int64, value string) (int64, error)
	StrLen(ctx context.Context, key string) (int64, error)
}

var _ StringCommands = (*Client)(nil)

func (c *Client) Append(ctx context.Context, key, value string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("value", value).Build()
	return execute(ctx, c, command.Append, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.Append(ctx, key, value)
	}, int64Value)
}

func (c *Client) Decr(ctx context.Context, key string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.Decr, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.Decr(ctx, key)
	}, int64Value)
}

func (c *Client) DecrBy(ctx context.Context, key string, decrement int64) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("decrement", decrement).Build()
	return execute(ctx, c, command.DecrBy, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.DecrBy(ctx, key, decrement)
	}, int64Value)
}

// Get returns the value of key, or Nil when key does not exist.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.Get, params, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.Get(ctx, key)
	}, stringValue)
}

func (c *Client) GetDel(ctx context.Context, key string) (string, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.GetDel, params, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.GetDel(ctx, key)
	}, stringValue)
}

// GetEx returns the value of key and updates its expiry.
func (c *Client) GetEx(ctx context.Context, key string, arg args.GetExArgument) (string, error) {
	if err := checkExpiration(arg.Expiration); err != nil {
		return "", err
	}
	params := command.NewBuilder().Key("key", key).Flatten(arg).Build()
	return execute(ctx, c, command.GetEx, params, func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		return rc.Do(ctx, append([]interface{}{"getex", key}, convert.GetExTokens(arg)...)...)
	}, doText)
}

func (c *Client) GetRange(ctx context.Context, key string, start, end int64) (string, error) {
	params := command.NewBuilder().Key("key", key).Add("start", start).Add("end", end).Build()
	return execute(ctx, c, command.GetRange, params, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.GetRange(ctx, key, start, end)
	}, stringValue)
}

func (c *Client) GetSet(ctx context.Context, key string, value interface{}) (string, error) {
	params := command.NewBuilder().Key("key", key).Add("value", value).Build()
	return execute(ctx, c, command.GetSet, params, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.GetSet(ctx, key, value)
	}, stringValue)
}

func (c *Client) Incr(ctx context.Context, key string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.Incr, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.Incr(ctx, key)
	}, int64Value)
}

func (c *Client) IncrBy(ctx context.Context, key string, increment int64) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("increment", increment).Build()
	return execute(ctx, c, command.IncrBy, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.IncrBy(ctx, key, increment)
	}, int64Value)
}

func (c *Client) IncrByFloat(ctx context.Context, key string, increment float64) (float64, error) {
	params := command.NewBuilder().Key("key", key).Add("increment", increment).Build()
	return execute(ctx, c, command.IncrByFloat, params, func(ctx context.Context, rc nativeClient) *goredis.FloatCmd {
		return rc.IncrByFloat(ctx, key, increment)
	}, floatValue)
}

// MGet returns the values of keys; absent keys are nil elements.
func (c *Client) MGet(ctx context.Context, keys ...string) ([]interface{}, error) {
	params := command.NewBuilder().Keys("keys", keys...).Build()
	return execute(ctx, c, command.MGet, params, func(ctx context.Context, rc nativeClient) *goredis.SliceCmd {
		return rc.MGet(ctx, keys...)
	}, sliceValue)
}

// pairs flattens values into key/value arguments ordered by key.
func pairs(values map[string]interface{}) ([]string, []interface{}) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	flat := make([]interface{}, 0, len(values)*2)
	for _, k := range keys {
		flat = append(flat, k, values[k])
	}
	return keys, flat
}

func (c *Client) MSet(ctx context.Context, values map[string]interface{}) (core.Status, error) {
	keys, flat := pairs(values)
	params := command.NewBuilder().Keys("keys", keys...).Build()
	return execute(ctx, c, command.MSet, params, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return rc.MSet(ctx, flat...)
	}, okStatus)
}

// MSetNX sets all values only if none of the keys exist.
func (c *Client) MSetNX(ctx context.Context, values map[string]interface{}) (core.Status, error) {
	keys, flat := pairs(values)
	params := command.NewBuilder().Keys("keys", keys...).Build()
	return execute(ctx, c, command.MSetNX, params, func(ctx context.Context, rc nativeClient) *goredis.BoolCmd {
		return rc.MSetNX(ctx, flat...)
	}, boolStatus)
}

func (c *Client) Set(ctx context.Context, key string, value interface{}) (core.Status, error) {
	params := command.NewBuilder().Key("key", key).Add("value", value).Build()
	return execute(ctx, c, command.Set, params, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return rc.Set(ctx, key, value, 0)
	}, okStatus)
}

func checkExpiration(e args.Expiration) error {
	return checkArgument("expiration", e.Kind, convert.ValidExpiration(e))
}

func checkSet(arg args.SetArgument) error {
	if err := checkExpiration(arg.Expiration); err != nil {
		return err
	}
	return checkArgument("condition", arg.Condition, convert.ValidCondition(arg.Condition))
}

// SetWithArgument is SET with expiry and NX/XX options. A condition that
// prevented the write yields StatusFailure. Use SetGet for the GET option.
func (c *Client) SetWithArgument(ctx context.Context, key string, value interface{}, arg args.SetArgument) (core.Status, error) {
	if arg.Get {
		return core.StatusFailure, &ArgumentError{Name: "get", Value: true}
	}
	if err := checkSet(arg); err != nil {
		return core.StatusFailure, err
	}
	params := command.NewBuilder().Key("key", key).Add("value", value).Flatten(arg).Build()
	return executeNilable(ctx, c, command.Set, params, func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		return rc.Do(ctx, append([]interface{}{"set", key, value}, convert.SetTokens(arg)...)...)
	}, doNilableOK)
}

// SetGet is SET ... GET: it stores value and returns the old value, or Nil
// if key did not exist.
func (c *Client) SetGet(ctx context.Context, key string, value interface{}, arg args.SetArgument) (string, error) {
	arg.Get = true
	if err := checkSet(arg); err != nil {
		return "", err
	}
	params := command.NewBuilder().Key("key", key).Add("value", value).Flatten(arg).Build()
	return execute(ctx, c, command.Set, params, func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		return rc.Do(ctx, append([]interface{}{"set", key, value}, convert.SetTokens(arg)...)...)
	}, doText)
}

func (c *Client) SetEx(ctx context.Context, key string, value interface{}, ttl time.Duration) (core.Status, error) {
	params := command.NewBuilder().Key("key", key).Add("value", value).Add("ttl", ttl).Build()
	return execute(ctx, c, command.SetEx, params, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return rc.SetEx(ctx, key, value, ttl)
	}, okStatus)
}

func (c *Client) PSetEx(ctx context.Context, key string, value interface{}, ttl time.Duration) (core.Status, error) {
	params := command.NewBuilder().Key("key", key).Add("value", value).Add("ttl", ttl).Build()
	return execute(ctx, c, command.PSetEx, params, func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		return rc.Do(ctx, "psetex", key, milliseconds(ttl), value)
	}, doOK)
}

func (c *Client) SetNX(ctx context.Context, key string, value interface{}) (core.Status, error) {
	params := command.NewBuilder().Key("key", key).Add("value", value).Build()
	return execute(ctx, c, command.SetNX, params, func(ctx context.Context, rc nativeClient) *goredis.BoolCmd {
		return rc.SetNX(ctx, key, value, 0)
	}, boolStatus)
}

func (c *Client) SetRange(ctx context.Context, key string, offset int64, value string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("offset", offset).Add("value", value).Build()
	return execute(ctx, c, command.SetRange, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.SetRange(ctx, key, offset, value)
	}, int64Value)
}

func (c *Client) StrLen(ctx context.Context, key string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.StrLen, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.StrLen(ctx, key)
	}, int64Value)
}
