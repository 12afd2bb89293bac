package convert

import (
	"fmt"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/core"
)

// StatusFromOK maps an "OK" simple string reply to a Status.
func StatusFromOK(s string) core.Status {
	return core.Status(s == "OK")
}

// StatusFromBool maps a boolean reply to a Status.
func StatusFromBool(b bool) core.Status {
	return core.Status(b)
}

// StatusFromCount maps an integer reply to a Status: success when positive.
func StatusFromCount(n int64) core.Status {
	return core.Status(n > 0)
}

// TupleToNative converts a Tuple into a go-redis Z.
func TupleToNative(t core.Tuple) goredis.Z {
	return goredis.Z{Score: t.Score, Member: t.Member}
}

// TupleFromNative converts a go-redis Z into a Tuple.
func TupleFromNative(z goredis.Z) core.Tuple {
	return core.Tuple{Member: memberText(z.Member), Score: z.Score}
}

// KeyedTupleFromNative converts a BZPOPMIN/BZPOPMAX reply.
func KeyedTupleFromNative(z *goredis.ZWithKey) core.KeyedTuple {
	return core.KeyedTuple{Key: z.Key, Tuple: TupleFromNative(z.Z)}
}

// ScanTuples converts a flat ZSCAN page [member, score, ...] into tuples.
func ScanTuples(flat []string) ([]core.Tuple, error) {
	return Pairs(flat, func(member, score string) (core.Tuple, error) {
		f, err := ParseScore(score)
		if err != nil {
			return core.Tuple{}, fmt.Errorf("%w: score %q of %q", ErrUnexpectedToken, score, member)
		}
		return core.Tuple{Member: member, Score: f}, nil
	})
}

// KeyValueFromNative converts a go-redis KeyValue.
func KeyValueFromNative(kv goredis.KeyValue) core.KeyValue {
	return core.KeyValue{Key: kv.Key, Value: kv.Value}
}

// KeyedValuesFromNative converts a BLPOP/BRPOP reply [key, value].
func KeyedValuesFromNative(reply []string) (core.KeyedValues, error) {
	if len(reply) < 2 {
		return core.KeyedValues{}, fmt.Errorf("%w: blocking pop reply has %d elements", ErrUnexpectedToken, len(reply))
	}
	return core.KeyedValues{Key: reply[0], Values: reply[1:]}, nil
}

// SlowLogFromNative converts a go-redis SlowLog entry.
func SlowLogFromNative(l goredis.SlowLog) core.SlowLog {
	return core.SlowLog{
		ID:         l.ID,
		Time:       l.Time,
		Duration:   l.Duration,
		Args:       l.Args,
		ClientAddr: l.ClientAddr,
		ClientName: l.ClientName,
	}
}

// ClusterSlotFromNative converts one CLUSTER SLOTS entry.
func ClusterSlotFromNative(s goredis.ClusterSlot) core.ClusterSlot {
	return core.ClusterSlot{
		SlotRange: core.SlotRange{Start: s.Start, End: s.End},
		Nodes: Slice(s.Nodes, func(n goredis.ClusterNode) core.ClusterSlotNode {
			return core.ClusterSlotNode{ID: n.ID, Addr: n.Addr}
		}),
	}
}

// StreamEntryFromNative converts a go-redis XMessage.
func StreamEntryFromNative(m goredis.XMessage) core.StreamEntry {
	return core.StreamEntry{ID: m.ID, Values: m.Values}
}

// StreamFromNative converts a go-redis XStream.
func StreamFromNative(s goredis.XStream) core.Stream {
	return core.Stream{Name: s.Stream, Entries: Slice(s.Messages, StreamEntryFromNative)}
}

// MessageFromNative converts a received pub/sub message.
func MessageFromNative(m *goredis.Message) core.Message {
	return core.Message{Channel: m.Channel, Pattern: m.Pattern, Payload: m.Payload}
}

func memberText(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return fmt.Sprint(v)
}

func replyText(v interface{}) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	}
	return "", fmt.Errorf("%w: expected a string reply, got %T", ErrUnexpectedToken, v)
}
