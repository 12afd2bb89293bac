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

type SortedSetCommands interface {
	ZAdd(ctx context.Context, key string, arg args.ZAddArgument, members ...core.Tuple) (int64, error)
	ZCard(ctx context.Context, key string) (int64, error)
	ZCount(ctx context.Context, key, min, max string) (int64, error)
	ZDiff(ctx context.Context, keys ...string) ([]string, error)
	ZDiffWithScores(ctx context.Context, keys ...string) ([]core.Tuple, error)
	ZDiffStore(ctx context.Context, destKey string, keys ...string) (int64, error)
	ZIncrBy(ctx context.Context, key string, increment float64, member string) (float64, error)
	ZInter(ctx context.Context, keys []string, arg args.ZStoreArgument) ([]string, error)
	ZInterWithScores(ctx context.Context, keys []string, arg args.ZStoreArgument) ([]core.Tuple, error)
	ZInterStore(ctx context.Context, destKey string, keys []string, arg args.ZStoreArgument) (int64, error)
	ZLexCount(ctx context.Context, key, min, max string) (int64, error)
	ZMScore(ctx context.Context, key string, members ...string) ([]float64, error)
	ZPopMax(ctx context.Context, key string, count int64) ([]core.Tuple, error)
	ZPopMin(ctx context.Context, key string, count int64) ([]core.Tuple, error)
	BZPopMax(ctx context.Context, timeout time.Duration, keys ...string) (core.KeyedTuple, error)
	BZPopMin(ctx context.Context, timeout time.Duration, keys ...string) (core.KeyedTuple, error)
	ZRandMember(ctx context.Context, key string, count int) ([]string, error)
	ZRandMemberWithScores(ctx context.Context, key string, count int) ([]core.Tuple, error)
	ZRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	ZRangeWithScores(ctx context.Context, key string, start, stop int64) ([]core.Tuple, error)
	ZRangeByScore(ctx context.Context, key, min, max string, limit *core.Limit) ([]string, error)
	ZRangeByScoreWithScores(ctx context.Context, key, min, max string, limit *core.Limit) ([]core.Tuple, error)
	ZRangeByLex(ctx context.Context, key, min, max string, limit *core.Limit) ([]string, error)
	ZRank(ctx context.Context, key, member string) (int64, error)
	ZRem(ctx context.Context, key string, members ...interface{}) (int64, error)
	ZRemRangeByRank(ctx context.Context, key string, start, stop int64) (int64, error)
	ZRemRangeByScore(ctx context.Context, key, min, max string) (int64, error)
	ZRemRangeByLex(ctx context.Context, key, min, max string) (int64, error)
	ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) ([]core.Tuple, error)
	ZRevRangeByScore(ctx context.Context, key, max, min string, limit *core.Limit) ([]string, error)
	ZRevRangeByScoreWithScores(ctx context.Context, key, max, min string, limit *core.Limit) ([]core.Tuple, error)
	ZRevRangeByLex(ctx context.Context, key, max, min string, limit *core.Limit) ([]string, error)
	ZRevRank(ctx context.Context, key, member string) (int64, error)
	ZScore(ctx context.Context, key, member string) (float64, error)
	ZScan(ctx context.Context, key, cursor string, arg args.ScanArgument) (core.ScanResult[[]core.Tuple], error)
	ZUnion(ctx context.Context, keys []string, arg args.ZStoreArgument) ([]string, error)
	ZUnionWithScores(ctx context.Context, keys []string, arg args.ZStoreArgument) ([]core.Tuple, error)
	ZUnionStore(ctx context.Context, destKey string, keys []string, arg args.ZStoreArgument) (int64, error)
}

var _ SortedSetCommands = (*Client)(nil)

// ZAdd adds members with their scores. With CH the reply counts changed
// members, otherwise added members.
func (c *Client) ZAdd(ctx context.Context, key string, arg args.ZAddArgument, members ...core.Tuple) (int64, error) {
	if err := checkArgument("condition", arg.Condition, convert.ValidCondition(arg.Condition)); err != nil {
		return 0, err
	}
	if err := checkArgument("comparison", arg.Comparison, convert.ValidComparison(arg.Comparison)); err != nil {
		return 0, err
	}
	if arg.Condition == args.NX && arg.Comparison != args.ComparisonNone {
		return 0, &ArgumentError{Name: "comparison", Value: arg.Comparison}
	}
	params := command.NewBuilder().Key("key", key).Flatten(arg).Add("members", members).Build()
	return execute(ctx, c, command.ZAdd, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.ZAddArgs(ctx, key, convert.ZAddToNative(arg, members))
	}, int64Value)
}

func (c *Client) ZCard(ctx context.Context, key string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.ZCard, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.ZCard(ctx, key)
	}, int64Value)
}

// ZCount counts members with a score between min and max. Bounds use the
// protocol syntax: "-inf", "+inf" and "(" for exclusive bounds.
func (c *Client) ZCount(ctx context.Context, key, min, max string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("min", min).Add("max", max).Build()
	return execute(ctx, c, command.ZCount, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.ZCount(ctx, key, min, max)
	}, int64Value)
}

func (c *Client) ZDiff(ctx context.Context, keys ...string) ([]string, error) {
	params := command.NewBuilder().Keys("keys", keys...).Build()
	return execute(ctx, c, command.ZDiff, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.ZDiff(ctx, keys...)
	}, stringsValue)
}

func (c *Client) ZDiffWithScores(ctx context.Context, keys ...string) ([]core.Tuple, error) {
	params := command.NewBuilder().Keys("keys", keys...).Add("withScores", true).Build()
	return execute(ctx, c, command.ZDiff, params, func(ctx context.Context, rc nativeClient) *goredis.ZSliceCmd {
		return rc.ZDiffWithScores(ctx, keys...)
	}, tuplesValue)
}

func (c *Client) ZDiffStore(ctx context.Context, destKey string, keys ...string) (int64, error) {
	params := command.NewBuilder().Key("destKey", destKey).Keys("keys", keys...).Build()
	return execute(ctx, c, command.ZDiffStore, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.ZDiffStore(ctx, destKey, keys...)
	}, int64Value)
}

func (c *Client) ZIncrBy(ctx context.Context, key string, increment float64, member string) (float64, error) {
	params := command.NewBuilder().Key("key", key).Add("increment", increment).Add("member", member).Build()
	return execute(ctx, c, command.ZIncrBy, params, func(ctx context.Context, rc nativeClient) *goredis.FloatCmd {
		return rc.ZIncrBy(ctx, key, increment, member)
	}, floatValue)
}

func checkAggregate(arg args.ZStoreArgument) error {
	return checkArgument("aggregate", arg.Aggregate, convert.ValidAggregate(arg.Aggregate))
}

func (c *Client) ZInter(ctx context.Context, keys []string, arg args.ZStoreArgument) ([]string, error) {
	if err := checkAggregate(arg); err != nil {
		return nil, err
	}
	params := command.NewBuilder().Keys("keys", keys...).Flatten(arg).Build()
	return execute(ctx, c, command.ZInter, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.ZInter(ctx, convert.ZStoreToNative(keys, arg))
	}, stringsValue)
}

func (c *Client) ZInterWithScores(ctx context.Context, keys []string, arg args.ZStoreArgument) ([]core.Tuple, error) {
	if err := checkAggregate(arg); err != nil {
		return nil, err
	}
	params := command.NewBuilder().Keys("keys", keys...).Flatten(arg).Add("withScores", true).Build()
	return execute(ctx, c, command.ZInter, params, func(ctx context.Context, rc nativeClient) *goredis.ZSliceCmd {
		return rc.ZInterWithScores(ctx, convert.ZStoreToNative(keys, arg))
	}, tuplesValue)
}

func (c *Client) ZInterStore(ctx context.Context, destKey string, keys []string, arg args.ZStoreArgument) (int64, error) {
	if err := checkAggregate(arg); err != nil {
		return 0, err
	}
	params := command.NewBuilder().Key("destKey", destKey).Keys("keys", keys...).Flatten(arg).Build()
	return execute(ctx, c, command.ZInterStore, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.ZInterStore(ctx, destKey, convert.ZStoreToNative(keys, arg))
	}, int64Value)
}

func (c *Client) ZLexCount(ctx context.Context, key, min, max string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("min", min).Add("max", max).Build()
	return execute(ctx, c, command.ZLexCount, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.ZLexCount(ctx, key, min, max)
	}, int64Value)
}

func (c *Client) ZMScore(ctx context.Context, key string, members ...string) ([]float64, error) {
	params := command.NewBuilder().Key("key", key).Add("members", members).Build()
	return execute(ctx, c, command.ZMScore, params, func(ctx context.Context, rc nativeClient) *goredis.FloatSliceCmd {
		return rc.ZMScore(ctx, key, members...)
	}, func(cmd *goredis.FloatSliceCmd) ([]float64, error) {
		return cmd.Val(), nil
	})
}

func (c *Client) ZPopMax(ctx context.Context, key string, count int64) ([]core.Tuple, error) {
	params := command.NewBuilder().Key("key", key).Add("count", count).Build()
	return execute(ctx, c, command.ZPopMax, params, func(ctx context.Context, rc nativeClient) *goredis.ZSliceCmd {
		return rc.ZPopMax(ctx, key, count)
	}, tuplesValue)
}

func (c *Client) ZPopMin(ctx context.Context, key string, count int64) ([]core.Tuple, error) {
	params := command.NewBuilder().Key("key", key).Add("count", count).Build()
	return execute(ctx, c, command.ZPopMin, params, func(ctx context.Context, rc nativeClient) *goredis.ZSliceCmd {
		return rc.ZPopMin(ctx, key, count)
	}, tuplesValue)
}

// BZPopMax blocks until a member can be popped from one of keys, or
// returns Nil after timeout.
func (c *Client) BZPopMax(ctx context.Context, timeout time.Duration, keys ...string) (core.KeyedTuple, error) {
	params := command.NewBuilder().Keys("keys", keys...).Add("timeout", timeout).Build()
	return execute(ctx, c, command.BZPopMax, params, func(ctx context.Context, rc nativeClient) *goredis.ZWithKeyCmd {
		return rc.BZPopMax(ctx, timeout, keys...)
	}, keyedTupleValue)
}

func (c *Client) BZPopMin(ctx context.Context, timeout time.Duration, keys ...string) (core.KeyedTuple, error) {
	params := command.NewBuilder().Keys("keys", keys...).Add("timeout", timeout).Build()
	return execute(ctx, c, command.BZPopMin, params, func(ctx context.Context, rc nativeClient) *goredis.ZWithKeyCmd {
		return rc.BZPopMin(ctx, timeout, keys...)
	}, keyedTupleValue)
}

func (c *Client) ZRandMember(ctx context.Context, key string, count int) ([]string, error) {
	params := command.NewBuilder().Key("key", key).Add("count", count).Build()
	return execute(ctx, c, command.ZRandMember, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.ZRandMember(ctx, key, count)
	}, stringsValue)
}

func (c *Client) ZRandMemberWithScores(ctx context.Context, key string, count int) ([]core.Tuple, error) {
	params := command.NewBuilder().Key("key", key).Add("count", count).Add("withScores", true).Build()
	return execute(ctx, c, command.ZRandMember, params, func(ctx context.Context, rc nativeClient) *goredis.ZSliceCmd {
		return rc.ZRandMemberWithScores(ctx, key, count)
	}, tuplesValue)
}

func (c *Client) ZRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	params := command.NewBuilder().Key("key", key).Add("start", start).Add("stop", stop).Build()
	return execute(ctx, c, command.ZRange, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.ZRange(ctx, key, start, stop)
	}, stringsValue)
}

func (c *Client) ZRangeWithScores(ctx context.Context, key string, start, stop int64) ([]core.Tuple, error) {
	params := command.NewBuilder().Key("key", key).Add("start", start).Add("stop", stop).Add("withScores", true).Build()
	return execute(ctx, c, command.ZRange, params, func(ctx context.Context, rc nativeClient) *goredis.ZSliceCmd {
		return rc.ZRangeWithScores(ctx, key, start, stop)
	}, tuplesValue)
}

func rangeParams(key, min, max string, limit *core.Limit) command.Arguments {
	b := command.NewBuilder().Key("key", key).Add("min", min).Add("max", max)
	if limit != nil {
		b.Add("limit", *limit)
	}
	return b.Build()
}

func (c *Client) ZRangeByScore(ctx context.Context, key, min, max string, limit *core.Limit) ([]string, error) {
	return execute(ctx, c, command.ZRangeByScore, rangeParams(key, min, max, limit), func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.ZRangeByScore(ctx, key, convert.RangeByToNative(min, max, limit))
	}, stringsValue)
}

func (c *Client) ZRangeByScoreWithScores(ctx context.Context, key, min, max string, limit *core.Limit) ([]core.Tuple, error) {
	return execute(ctx, c, command.ZRangeByScore, rangeParams(key, min, max, limit), func(ctx context.Context, rc nativeClient) *goredis.ZSliceCmd {
		return rc.ZRangeByScoreWithScores(ctx, key, convert.RangeByToNative(min, max, limit))
	}, tuplesValue)
}

// ZRangeByLex returns members between the lexicographic bounds min and
// max, written as "[a", "(a", "-" or "+".
func (c *Client) ZRangeByLex(ctx context.Context, key, min, max string, limit *core.Limit) ([]string, error) {
	return execute(ctx, c, command.ZRangeByLex, rangeParams(key, min, max, limit), func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.ZRangeByLex(ctx, key, convert.RangeByToNative(min, max, limit))
	}, stringsValue)
}

// ZRank returns the rank of member, or Nil if it is not in the set.
func (c *Client) ZRank(ctx context.Context, key, member string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("member", member).Build()
	return execute(ctx, c, command.ZRank, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.ZRank(ctx, key, member)
	}, int64Value)
}

func (c *Client) ZRem(ctx context.Context, key string, members ...interface{}) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("members", members).Build()
	return execute(ctx, c, command.ZRem, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.ZRem(ctx, key, members...)
	}, int64Value)
}

func (c *Client) ZRemRangeByRank(ctx context.Context, key string, start, stop int64) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("start", start).Add("stop", stop).Build()
	return execute(ctx, c, command.ZRemRangeByRank, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.ZRemRangeByRank(ctx, key, start, stop)
	}, int64Value)
}

func (c *Client) ZRemRangeByScore(ctx context.Context, key, min, max string) (int64, error) {
	return execute(ctx, c, command.ZRemRangeByScore, rangeParams(key, min, max, nil), func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.ZRemRangeByScore(ctx, key, min, max)
	}, int64Value)
}

func (c *Client) ZRemRangeByLex(ctx context.Context, key, min, max string) (int64, error) {
	return execute(ctx, c, command.ZRemRangeByLex, rangeParams(key, min, max, nil), func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.ZRemRangeByLex(ctx, key, min, max)
	}, int64Value)
}

func (c *Client) ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	params := command.NewBuilder().Key("key", key).Add("start", start).Add("stop", stop).Build()
	return execute(ctx, c, command.ZRevRange, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.ZRevRange(ctx, key, start, stop)
	}, stringsValue)
}

func (c *Client) ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) ([]core.Tuple, error) {
	params := command.NewBuilder().Key("key", key).Add("start", start).Add("stop", stop).Add("withScores", true).Build()
	return execute(ctx, c, command.ZRevRange, params, func(ctx context.Context, rc nativeClient) *goredis.ZSliceCmd {
		return rc.ZRevRangeWithScores(ctx, key, start, stop)
	}, tuplesValue)
}

func (c *Client) ZRevRangeByScore(ctx context.Context, key, max, min string, limit *core.Limit) ([]string, error) {
	return execute(ctx, c, command.ZRevRangeByScore, rangeParams(key, min, max, limit), func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.ZRevRangeByScore(ctx, key, convert.RangeByToNative(min, max, limit))
	}, stringsValue)
}

func (c *Client) ZRevRangeByScoreWithScores(ctx context.Context, key, max, min string, limit *core.Limit) ([]core.Tuple, error) {
	return execute(ctx, c, command.ZRevRangeByScore, rangeParams(key, min, max, limit), func(ctx context.Context, rc nativeClient) *goredis.ZSliceCmd {
		return rc.ZRevRangeByScoreWithScores(ctx, key, convert.RangeByToNative(min, max, limit))
	}, tuplesValue)
}

func (c *Client) ZRevRangeByLex(ctx context.Context, key, max, min string, limit *core.Limit) ([]string, error) {
	return execute(ctx, c, command.ZRevRangeByLex, rangeParams(key, min, max, limit), func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.ZRevRangeByLex(ctx, key, convert.RangeByToNative(min, max, limit))
	}, stringsValue)
}

func (c *Client) ZRevRank(ctx context.Context, key, member string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("member", member).Build()
	return execute(ctx, c, command.ZRevRank, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.ZRevRank(ctx, key, member)
	}, int64Value)
}

func (c *Client) ZScore(ctx context.Context, key, member string) (float64, error) {
	params := command.NewBuilder().Key("key", key).Add("member", member).Build()
	return execute(ctx, c, command.ZScore, params, func(ctx context.Context, rc nativeClient) *goredis.FloatCmd {
		return rc.ZScore(ctx, key, member)
	}, floatValue)
}

func (c *Client) ZScan(ctx context.Context, key, cursor string, arg args.ScanArgument) (core.ScanResult[[]core.Tuple], error) {
	cur, err := convert.ParseCursor(cursor)
	if err != nil {
		return core.ScanResult[[]core.Tuple]{}, &ArgumentError{Name: "cursor", Value: cursor}
	}
	params := command.NewBuilder().Key("key", key).Add("cursor", cursor).Flatten(arg).Build()
	return execute(ctx, c, command.ZScan, params, func(ctx context.Context, rc nativeClient) *goredis.ScanCmd {
		return rc.ZScan(ctx, key, cur, arg.Match, arg.Count)
	}, tupleScanPage)
}

func (c *Client) ZUnion(ctx context.Context, keys []string, arg args.ZStoreArgument) ([]string, error) {
	if err := checkAggregate(arg); err != nil {
		return nil, err
	}
	params := command.NewBuilder().Keys("keys", keys...).Flatten(arg).Build()
	return execute(ctx, c, command.ZUnion, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.ZUnion(ctx, *convert.ZStoreToNative(keys, arg))
	}, stringsValue)
}

func (c *Client) ZUnionWithScores(ctx context.Context, keys []string, arg args.ZStoreArgument) ([]core.Tuple, error) {
	if err := checkAggregate(arg); err != nil {
		return nil, err
	}
	params := command.NewBuilder().Keys("keys", keys...).Flatten(arg).Add("withScores", true).Build()
	return execute(ctx, c, command.ZUnion, params, func(ctx context.Context, rc nativeClient) *goredis.ZSliceCmd {
		return rc.ZUnionWithScores(ctx, *convert.ZStoreToNative(keys, arg))
	}, tuplesValue)
}

func (c *Client) ZUnionStore(ctx context.Context, destKey string, keys []string, arg args.ZStoreArgument) (int64, error) {
	if err := checkAggregate(arg); err != nil {
		return 0, err
	}
	params := command.NewBuilder().Key("destKey", destKey).Keys("keys", keys...).Flatten(arg).Build()
	return execute(ctx, c, command.ZUnionStore, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.ZUnionStore(ctx, destKey, convert.ZStoreToNative(keys, arg))
	}, int64Value)
}
