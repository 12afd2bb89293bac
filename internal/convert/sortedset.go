package convert

import (
	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/args"
	"github.com/buession/redis/core"
)

// ZAddToNative converts ZADD options and members into go-redis ZAddArgs.
func ZAddToNative(a args.ZAddArgument, members []core.Tuple) goredis.ZAddArgs {
	return goredis.ZAddArgs{
		NX:      a.Condition == args.NX,
		XX:      a.Condition == args.XX,
		GT:      a.Comparison == args.GT,
		LT:      a.Comparison == args.LT,
		Ch:      a.CH,
		Members: Slice(members, TupleToNative),
	}
}

// ZAddFromNative is the inverse of ZAddToNative.
func ZAddFromNative(z goredis.ZAddArgs) (args.ZAddArgument, []core.Tuple) {
	var a args.ZAddArgument
	switch {
	case z.NX:
		a.Condition = args.NX
	case z.XX:
		a.Condition = args.XX
	}
	switch {
	case z.GT:
		a.Comparison = args.GT
	case z.LT:
		a.Comparison = args.LT
	}
	a.CH = z.Ch
	return a, Slice(z.Members, TupleFromNative)
}

// ZStoreToNative converts source keys and ZSTORE options into a go-redis ZStore.
func ZStoreToNative(keys []string, a args.ZStoreArgument) *goredis.ZStore {
	store := &goredis.ZStore{Keys: keys, Weights: a.Weights}
	if agg, ok := AggregateKeyword(a.Aggregate); ok {
		store.Aggregate = agg
	}
	return store
}

// ZStoreFromNative is the inverse of ZStoreToNative.
func ZStoreFromNative(store *goredis.ZStore) ([]string, args.ZStoreArgument) {
	return store.Keys, args.ZStoreArgument{
		Weights:   store.Weights,
		Aggregate: ParseAggregate(store.Aggregate),
	}
}

// RangeByToNative builds the go-redis range of ZRANGEBYSCORE/ZRANGEBYLEX.
func RangeByToNative(min, max string, limit *core.Limit) *goredis.ZRangeBy {
	by := &goredis.ZRangeBy{Min: min, Max: max}
	if limit != nil {
		by.Offset = limit.Offset
		by.Count = limit.Count
	}
	return by
}
