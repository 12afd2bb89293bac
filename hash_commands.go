package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/args"
	"github.com/buession/redis/command"
	"github.com/buession/redis/core"
	"github.com/buession/redis/internal/convert"
)

type HashCommands interface {
	HDel(ctx context.Context, key string, fields ...string) (int64, error)
	HExists(ctx context.Context, key, field string) (bool, error)
	HGet(ctx context.Context, key, field string) (string, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HIncrBy(ctx context.Context, key, field string, increment int64) (int64, error)
	HIncrByFloat(ctx context.Context, key, field string, increment float64) (float64, error)
	HKeys(ctx context.Context, key string) ([]string, error)
	HLen(ctx context.Context, key string) (int64, error)
	HMGet(ctx context.Context, key string, fields ...string) ([]interface{}, error)
	HMSet(ctx context.Context, key string, values map[string]interface{}) (core.Status, error)
	HSet(ctx context.Context, key, field string, value interface{}) (int64, error)
	HSetNX(ctx context.Context, key, field string, value interface{}) (core.Status, error)
	HStrLen(ctx context.Context, key, field string) (int64, error)
	HVals(ctx context.Context, key string) ([]string, error)
	HRandField(ctx context.Context, key string, count int) ([]string, error)
	HRandFieldWithValues(ctx context.Context, key string, count int) ([]core.KeyValue, error)
	HScan(ctx context.Context, key, cursor string, arg args.ScanArgument) (core.ScanResult[map[string]string], error)
}

var _ HashCommands = (*Client)(nil)

func (c *Client) HDel(ctx context.Context, key string, fields ...string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("fields", fields).Build()
	return execute(ctx, c, command.HDel, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.HDel(ctx, key, fields...)
	}, int64Value)
}

func (c *Client) HExists(ctx context.Context, key, field string) (bool, error) {
	params := command.NewBuilder().Key("key", key).Add("field", field).Build()
	return execute(ctx, c, command.HExists, params, func(ctx context.Context, rc nativeClient) *goredis.BoolCmd {
		return rc.HExists(ctx, key, field)
	}, boolValue)
}

func (c *Client) HGet(ctx context.Context, key, field string) (string, error) {
	params := command.NewBuilder().Key("key", key).Add("field", field).Build()
	return execute(ctx, c, command.HGet, params, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.HGet(ctx, key, field)
	}, stringValue)
}

func (c *Client) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.HGetAll, params, func(ctx context.Context, rc nativeClient) *goredis.MapStringStringCmd {
		return rc.HGetAll(ctx, key)
	}, stringMapValue)
}

func (c *Client) HIncrBy(ctx context.Context, key, field string, increment int64) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("field", field).Add("increment", increment).Build()
	return execute(ctx, c, command.HIncrBy, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.HIncrBy(ctx, key, field, increment)
	}, int64Value)
}

func (c *Client) HIncrByFloat(ctx context.Context, key, field string, increment float64) (float64, error) {
	params := command.NewBuilder().Key("key", key).Add("field", field).Add("increment", increment).Build()
	return execute(ctx, c, command.HIncrByFloat, params, func(ctx context.Context, rc nativeClient) *goredis.FloatCmd {
		return rc.HIncrByFloat(ctx, key, field, increment)
	}, floatValue)
}

func (c *Client) HKeys(ctx context.Context, key string) ([]string, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.HKeys, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.HKeys(ctx, key)
	}, stringsValue)
}

func (c *Client) HLen(ctx context.Context, key string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.HLen, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.HLen(ctx, key)
	}, int64Value)
}

// HMGet returns the values of fields; absent fields are nil elements.
func (c *Client) HMGet(ctx context.Context, key string, fields ...string) ([]interface{}, error) {
	params := command.NewBuilder().Key("key", key).Add("fields", fields).Build()
	return execute(ctx, c, command.HMGet, params, func(ctx context.Context, rc nativeClient) *goredis.SliceCmd {
		return rc.HMGet(ctx, key, fields...)
	}, sliceValue)
}

func (c *Client) HMSet(ctx context.Context, key string, values map[string]interface{}) (core.Status, error) {
	params := command.NewBuilder().Key("key", key).Add("values", values).Build()
	return execute(ctx, c, command.HMSet, params, func(ctx context.Context, rc nativeClient) *goredis.BoolCmd {
		return rc.HMSet(ctx, key, values)
	}, boolStatus)
}

// HSet sets one field and returns 1 if the field is new, 0 if it was
// updated.
func (c *Client) HSet(ctx context.Context, key, field string, value interface{}) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("field", field).Add("value", value).Build()
	return execute(ctx, c, command.HSet, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.HSet(ctx, key, field, value)
	}, int64Value)
}

func (c *Client) HSetNX(ctx context.Context, key, field string, value interface{}) (core.Status, error) {
	params := command.NewBuilder().Key("key", key).Add("field", field).Add("value", value).Build()
	return execute(ctx, c, command.HSetNX, params, func(ctx context.Context, rc nativeClient) *goredis.BoolCmd {
		return rc.HSetNX(ctx, key, field, value)
	}, boolStatus)
}

func (c *Client) HStrLen(ctx context.Context, key, field string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("field", field).Build()
	return execute(ctx, c, command.HStrLen, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		cmd := goredis.NewIntCmd(ctx, "hstrlen", key, field)
		_ = rc.Process(ctx, cmd)
		return cmd
	}, int64Value)
}

func (c *Client) HVals(ctx context.Context, key string) ([]string, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.HVals, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.HVals(ctx, key)
	}, stringsValue)
}

// HRandField returns up to count random fields; a negative count allows
// repetitions.
func (c *Client) HRandField(ctx context.Context, key string, count int) ([]string, error) {
	params := command.NewBuilder().Key("key", key).Add("count", count).Build()
	return execute(ctx, c, command.HRandField, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.HRandField(ctx, key, count)
	}, stringsValue)
}

func (c *Client) HRandFieldWithValues(ctx context.Context, key string, count int) ([]core.KeyValue, error) {
	params := command.NewBuilder().Key("key", key).Add("count", count).Add("withValues", true).Build()
	return execute(ctx, c, command.HRandField, params, func(ctx context.Context, rc nativeClient) *goredis.KeyValueSliceCmd {
		return rc.HRandFieldWithValues(ctx, key, count)
	}, func(cmd *goredis.KeyValueSliceCmd) ([]core.KeyValue, error) {
		return convert.Slice(cmd.Val(), convert.KeyValueFromNative), nil
	})
}

func (c *Client) HScan(ctx context.Context, key, cursor string, arg args.ScanArgument) (core.ScanResult[map[string]string], error) {
	cur, err := convert.ParseCursor(cursor)
	if err != nil {
		return core.ScanResult[map[string]string]{}, &ArgumentError{Name: "cursor", Value: cursor}
	}
	params := command.NewBuilder().Key("key", key).Add("cursor", cursor).Flatten(arg).Build()
	return execute(ctx, c, command.HScan, params, func(ctx context.Context, rc nativeClient) *goredis.ScanCmd {
		return rc.HScan(ctx, key, cur, arg.Match, arg.Count)
	}, hashScanPage)
}
