package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/command"
	"github.com/buession/redis/core"
)

type HyperLogLogCommands interface {
	PFAdd(ctx context.Context, key string, elements ...interface{}) (core.Status, error)
	PFCount(ctx context.Context, keys ...string) (int64, error)
	PFMerge(ctx context.Context, destKey string, keys ...string) (core.Status, error)
}

var _ HyperLogLogCommands = (*Client)(nil)

// PFAdd reports StatusSuccess when the approximated cardinality changed.
func (c *Client) PFAdd(ctx context.Context, key string, elements ...interface{}) (core.Status, error) {
	params := command.NewBuilder().Key("key", key).Add("elements", elements).Build()
	return execute(ctx, c, command.PFAdd, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.PFAdd(ctx, key, elements...)
	}, countStatus)
}

func (c *Client) PFCount(ctx context.Context, keys ...string) (int64, error) {
	params := command.NewBuilder().Keys("keys", keys...).Build()
	return execute(ctx, c, command.PFCount, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.PFCount(ctx, keys...)
	}, int64Value)
}

func (c *Client) PFMerge(ctx context.Context, destKey string, keys ...string) (core.Status, error) {
	params := command.NewBuilder().Key("destKey", destKey).Keys("keys", keys...).Build()
	return execute(ctx, c, command.PFMerge, params, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return rc.PFMerge(ctx, destKey, keys...)
	}, okStatus)
}
