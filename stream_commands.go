package redis

import (
	"context"
	"sort"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/args"
	"github.com/buession/redis/command"
	"github.com/buession/redis/core"
	"github.com/buession/redis/internal/convert"
)

type StreamCommands interface {
	XAdd(ctx context.Context, key string, a args.XAddArgument, values map[string]interface{}) (string, error)
	XLen(ctx context.Context, key string) (int64, error)
	XDel(ctx context.Context, key string, ids ...string) (int64, error)
	XRange(ctx context.Context, key, start, end string, count int64) ([]core.StreamEntry, error)
	XRevRange(ctx context.Context, key, end, start string, count int64) ([]core.StreamEntry, error)
	XTrim(ctx context.Context, key string, maxLen int64, approximate bool) (int64, error)
	XRead(ctx context.Context, streams map[string]string, a args.XReadArgument) ([]core.Stream, error)
	XReadGroup(ctx context.Context, group, consumer string, streams map[string]string, a args.XReadArgument) ([]core.Stream, error)
	XGroupCreate(ctx context.Context, key, group, start string, mkStream bool) (core.Status, error)
	XGroupDestroy(ctx context.Context, key, group string) (core.Status, error)
	XAck(ctx context.Context, key, group string, ids ...string) (int64, error)
}

var _ StreamCommands = (*Client)(nil)

func entriesValue(cmd *goredis.XMessageSliceCmd) ([]core.StreamEntry, error) {
	return convert.Slice(cmd.Val(), convert.StreamEntryFromNative), nil
}

// streamsValue maps the nil reply of a blocking read that timed out to an
// empty result.
func streamsValue(cmd *goredis.XStreamSliceCmd) ([]core.Stream, error) {
	if cmd.Err() == goredis.Nil {
		return []core.Stream{}, nil
	}
	return convert.Slice(cmd.Val(), convert.StreamFromNative), nil
}

func streamKeys(streams map[string]string) []string {
	keys := make([]string, 0, len(streams))
	for k := range streams {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// XAdd appends an entry and returns its ID. With NoMkStream set and no
// stream at key the ID is empty.
func (c *Client) XAdd(ctx context.Context, key string, a args.XAddArgument, values map[string]interface{}) (string, error) {
	if len(values) == 0 {
		return "", &ArgumentError{Name: "values", Value: values}
	}
	params := command.NewBuilder().Key("key", key).Flatten(a).Add("values", values).Build()
	return executeNilable(ctx, c, command.XAdd, params, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.XAdd(ctx, convert.XAddToNative(key, a, values))
	}, stringValue)
}

func (c *Client) XLen(ctx context.Context, key string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.XLen, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.XLen(ctx, key)
	}, int64Value)
}

func (c *Client) XDel(ctx context.Context, key string, ids ...string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("ids", ids).Build()
	return execute(ctx, c, command.XDel, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.XDel(ctx, key, ids...)
	}, int64Value)
}

// XRange returns entries with IDs between start and end. A count of zero
// or less returns all of them.
func (c *Client) XRange(ctx context.Context, key, start, end string, count int64) ([]core.StreamEntry, error) {
	params := command.NewBuilder().Key("key", key).Add("start", start).Add("end", end).Add("count", count).Build()
	return execute(ctx, c, command.XRange, params, func(ctx context.Context, rc nativeClient) *goredis.XMessageSliceCmd {
		if count > 0 {
			return rc.XRangeN(ctx, key, start, end, count)
		}
		return rc.XRange(ctx, key, start, end)
	}, entriesValue)
}

func (c *Client) XRevRange(ctx context.Context, key, end, start string, count int64) ([]core.StreamEntry, error) {
	params := command.NewBuilder().Key("key", key).Add("end", end).Add("start", start).Add("count", count).Build()
	return execute(ctx, c, command.XRevRange, params, func(ctx context.Context, rc nativeClient) *goredis.XMessageSliceCmd {
		if count > 0 {
			return rc.XRevRangeN(ctx, key, end, start, count)
		}
		return rc.XRevRange(ctx, key, end, start)
	}, entriesValue)
}

func (c *Client) XTrim(ctx context.Context, key string, maxLen int64, approximate bool) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("maxlen", maxLen).Add("approximate", approximate).Build()
	return execute(ctx, c, command.XTrim, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		if approximate {
			return rc.XTrimMaxLenApprox(ctx, key, maxLen, 0)
		}
		return rc.XTrimMaxLen(ctx, key, maxLen)
	}, int64Value)
}

// XRead reads entries after the given ID of each stream. A read that
// blocks until the timeout returns an empty slice.
func (c *Client) XRead(ctx context.Context, streams map[string]string, a args.XReadArgument) ([]core.Stream, error) {
	if len(streams) == 0 {
		return nil, &ArgumentError{Name: "streams", Value: streams}
	}
	params := command.NewBuilder().Keys("streams", streamKeys(streams)...).Flatten(a).Build()
	return executeNilable(ctx, c, command.XRead, params, func(ctx context.Context, rc nativeClient) *goredis.XStreamSliceCmd {
		return rc.XRead(ctx, convert.XReadToNative(streams, a))
	}, streamsValue)
}

func (c *Client) XReadGroup(
	ctx context.Context, group, consumer string, streams map[string]string, a args.XReadArgument,
) ([]core.Stream, error) {
	if len(streams) == 0 {
		return nil, &ArgumentError{Name: "streams", Value: streams}
	}
	params := command.NewBuilder().
		Add("group", group).
		Add("consumer", consumer).
		Keys("streams", streamKeys(streams)...).
		Flatten(a).
		Build()
	return executeNilable(ctx, c, command.XReadGroup, params, func(ctx context.Context, rc nativeClient) *goredis.XStreamSliceCmd {
		return rc.XReadGroup(ctx, convert.XReadGroupToNative(group, consumer, streams, a))
	}, streamsValue)
}

// XGroupCreate creates a consumer group starting at start, which may be
// "$" for new entries only. mkStream creates an empty stream if needed.
func (c *Client) XGroupCreate(ctx context.Context, key, group, start string, mkStream bool) (core.Status, error) {
	params := command.NewBuilder().Key("key", key).Add("group", group).Add("start", start).Add("mkstream", mkStream).Build()
	return execute(ctx, c, command.XGroupCreate, params, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		if mkStream {
			return rc.XGroupCreateMkStream(ctx, key, group, start)
		}
		return rc.XGroupCreate(ctx, key, group, start)
	}, okStatus)
}

func (c *Client) XGroupDestroy(ctx context.Context, key, group string) (core.Status, error) {
	params := command.NewBuilder().Key("key", key).Add("group", group).Build()
	return execute(ctx, c, command.XGroupDestroy, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.XGroupDestroy(ctx, key, group)
	}, countStatus)
}

func (c *Client) XAck(ctx context.Context, key, group string, ids ...string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("group", group).Add("ids", ids).Build()
	return execute(ctx, c, command.XAck, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.XAck(ctx, key, group, ids...)
	}, int64Value)
}
