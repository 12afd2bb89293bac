package convert

import (
	"sort"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/args"
)

// XAddToNative builds go-redis XAddArgs.
func XAddToNative(stream string, a args.XAddArgument, values map[string]interface{}) *goredis.XAddArgs {
	return &goredis.XAddArgs{
		Stream:     stream,
		NoMkStream: a.NoMkStream,
		MaxLen:     a.MaxLen,
		MinID:      a.MinID,
		Approx:     a.Approximate,
		Limit:      a.Limit,
		ID:         a.ID,
		Values:     values,
	}
}

// XAddFromNative recovers the options of go-redis XAddArgs.
func XAddFromNative(x *goredis.XAddArgs) args.XAddArgument {
	return args.XAddArgument{
		ID:          x.ID,
		NoMkStream:  x.NoMkStream,
		MaxLen:      x.MaxLen,
		MinID:       x.MinID,
		Approximate: x.Approx,
		Limit:       x.Limit,
	}
}

// streamList flattens stream->id into "STREAMS s1 s2 id1 id2" order,
// sorted by stream name.
func streamList(streams map[string]string) []string {
	names := make([]string, 0, len(streams))
	for name := range streams {
		names = append(names, name)
	}
	sort.Strings(names)
	list := make([]string, len(names), 2*len(names))
	copy(list, names)
	for _, name := range names {
		list = append(list, streams[name])
	}
	return list
}

// go-redis sends BLOCK for any non-negative duration, so a zero Block
// becomes -1.
func blockDuration(a args.XReadArgument) time.Duration {
	if a.Block > 0 {
		return a.Block
	}
	return -1
}

// XReadToNative builds go-redis XReadArgs from stream->id pairs.
func XReadToNative(streams map[string]string, a args.XReadArgument) *goredis.XReadArgs {
	return &goredis.XReadArgs{
		Streams: streamList(streams),
		Count:   a.Count,
		Block:   blockDuration(a),
	}
}

// XReadGroupToNative builds go-redis XReadGroupArgs.
func XReadGroupToNative(group, consumer string, streams map[string]string, a args.XReadArgument) *goredis.XReadGroupArgs {
	return &goredis.XReadGroupArgs{
		Group:    group,
		Consumer: consumer,
		Streams:  streamList(streams),
		Count:    a.Count,
		Block:    blockDuration(a),
		NoAck:    a.NoAck,
	}
}
