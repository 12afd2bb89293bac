package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/args"
	"github.com/buession/redis/command"
	"github.com/buession/redis/core"
	"github.com/buession/redis/internal/convert"
)

type SetCommands interface {
	SAdd(ctx context.Context, key string, members ...interface{}) (int64, error)
	SCard(ctx context.Context, key string) (int64, error)
	SDiff(ctx context.Context, keys ...string) ([]string, error)
	SDiffStore(ctx context.Context, destKey string, keys ...string) (int64, error)
	SInter(ctx context.Context, keys ...string) ([]string, error)
	SInterCard(ctx context.Context, limit int64, keys ...string) (int64, error)
	SInterStore(ctx context.Context, destKey string, keys ...string) (int64, error)
	SIsMember(ctx context.Context, key string, member interface{}) (bool, error)
	SMIsMember(ctx context.Context, key string, members ...interface{}) ([]bool, error)
	SMembers(ctx context.Context, key string) ([]string, error)
	SMove(ctx context.Context, key, destKey string, member interface{}) (core.Status, error)
	SPop(ctx context.Context, key string) (string, error)
	SPopN(ctx context.Context, key string, count int64) ([]string, error)
	SRandMember(ctx context.Context, key string) (string, error)
	SRandMemberN(ctx context.Context, key string, count int64) ([]string, error)
	SRem(ctx context.Context, key string, members ...interface{}) (int64, error)
	SScan(ctx context.Context, key, cursor string, arg args.ScanArgument) (core.ScanResult[[]string], error)
	SUnion(ctx context.Context, keys ...string) ([]string, error)
	SUnionStore(ctx context.Context, destKey string, keys ...string) (int64, error)
}

var _ SetCommands = (*Client)(nil)

func (c *Client) SAdd(ctx context.Context, key string, members ...interface{}) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("members", members).Build()
	return execute(ctx, c, command.SAdd, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.SAdd(ctx, key, members...)
	}, int64Value)
}

func (c *Client) SCard(ctx context.Context, key string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.SCard, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.SCard(ctx, key)
	}, int64Value)
}

func (c *Client) SDiff(ctx context.Context, keys ...string) ([]string, error) {
	params := command.NewBuilder().Keys("keys", keys...).Build()
	return execute(ctx, c, command.SDiff, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.SDiff(ctx, keys...)
	}, stringsValue)
}

func (c *Client) SDiffStore(ctx context.Context, destKey string, keys ...string) (int64, error) {
	params := command.NewBuilder().Key("destKey", destKey).Keys("keys", keys...).Build()
	return execute(ctx, c, command.SDiffStore, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.SDiffStore(ctx, destKey, keys...)
	}, int64Value)
}

func (c *Client) SInter(ctx context.Context, keys ...string) ([]string, error) {
	params := command.NewBuilder().Keys("keys", keys...).Build()
	return execute(ctx, c, command.SInter, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.SInter(ctx, keys...)
	}, stringsValue)
}

// SInterCard returns the cardinality of the intersection, stopping at
// limit when it is positive.
func (c *Client) SInterCard(ctx context.Context, limit int64, keys ...string) (int64, error) {
	params := command.NewBuilder().Keys("keys", keys...).Add("limit", limit).Build()
	return execute(ctx, c, command.SInterCard, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.SInterCard(ctx, limit, keys...)
	}, int64Value)
}

func (c *Client) SInterStore(ctx context.Context, destKey string, keys ...string) (int64, error) {
	params := command.NewBuilder().Key("destKey", destKey).Keys("keys", keys...).Build()
	return execute(ctx, c, command.SInterStore, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.SInterStore(ctx, destKey, keys...)
	}, int64Value)
}

func (c *Client) SIsMember(ctx context.Context, key string, member interface{}) (bool, error) {
	params := command.NewBuilder().Key("key", key).Add("member", member).Build()
	return execute(ctx, c, command.SIsMember, params, func(ctx context.Context, rc nativeClient) *goredis.BoolCmd {
		return rc.SIsMember(ctx, key, member)
	}, boolValue)
}

func (c *Client) SMIsMember(ctx context.Context, key string, members ...interface{}) ([]bool, error) {
	params := command.NewBuilder().Key("key", key).Add("members", members).Build()
	return execute(ctx, c, command.SMIsMember, params, func(ctx context.Context, rc nativeClient) *goredis.BoolSliceCmd {
		return rc.SMIsMember(ctx, key, members...)
	}, boolsValue)
}

func (c *Client) SMembers(ctx context.Context, key string) ([]string, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.SMembers, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.SMembers(ctx, key)
	}, stringsValue)
}

func (c *Client) SMove(ctx context.Context, key, destKey string, member interface{}) (core.Status, error) {
	params := command.NewBuilder().Key("key", key).Key("destKey", destKey).Add("member", member).Build()
	return execute(ctx, c, command.SMove, params, func(ctx context.Context, rc nativeClient) *goredis.BoolCmd {
		return rc.SMove(ctx, key, destKey, member)
	}, boolStatus)
}

func (c *Client) SPop(ctx context.Context, key string) (string, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.SPop, params, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.SPop(ctx, key)
	}, stringValue)
}

func (c *Client) SPopN(ctx context.Context, key string, count int64) ([]string, error) {
	params := command.NewBuilder().Key("key", key).Add("count", count).Build()
	return execute(ctx, c, command.SPop, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.SPopN(ctx, key, count)
	}, stringsValue)
}

func (c *Client) SRandMember(ctx context.Context, key string) (string, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.SRandMember, params, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.SRandMember(ctx, key)
	}, stringValue)
}

func (c *Client) SRandMemberN(ctx context.Context, key string, count int64) ([]string, error) {
	params := command.NewBuilder().Key("key", key).Add("count", count).Build()
	return execute(ctx, c, command.SRandMember, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.SRandMemberN(ctx, key, count)
	}, stringsValue)
}

func (c *Client) SRem(ctx context.Context, key string, members ...interface{}) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("members", members).Build()
	return execute(ctx, c, command.SRem, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.SRem(ctx, key, members...)
	}, int64Value)
}

func (c *Client) SScan(ctx context.Context, key, cursor string, arg args.ScanArgument) (core.ScanResult[[]string], error) {
	cur, err := convert.ParseCursor(cursor)
	if err != nil {
		return core.ScanResult[[]string]{}, &ArgumentError{Name: "cursor", Value: cursor}
	}
	params := command.NewBuilder().Key("key", key).Add("cursor", cursor).Flatten(arg).Build()
	return execute(ctx, c, command.SScan, params, func(ctx context.Context, rc nativeClient) *goredis.ScanCmd {
		return rc.SScan(ctx, key, cur, arg.Match, arg.Count)
	}, keyScanPage)
}

func (c *Client) SUnion(ctx context.Context, keys ...string) ([]string, error) {
	params := command.NewBuilder().Keys("keys", keys...).Build()
	return execute(ctx, c, command.SUnion, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.SUnion(ctx, keys...)
	}, stringsValue)
}

func (c *Client) SUnionStore(ctx context.Context, destKey string, keys ...string) (int64, error) {
	params := command.NewBuilder().Key("destKey", destKey).Keys("keys", keys...).Build()
	return execute(ctx, c, command.SUnionStore, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.SUnionStore(ctx, destKey, keys...)
	}, int64Value)
}
