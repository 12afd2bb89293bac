package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/args"
	"github.com/buession/redis/command"
	"github.com/buession/redis/core"
	"github.com/buession/redis/internal/convert"
)

type BitmapCommands interface {
	SetBit(ctx context.Context, key string, offset int64, value bool) (bool, error)
	GetBit(ctx context.Context, key string, offset int64) (bool, error)
	BitCount(ctx context.Context, key string) (int64, error)
	BitCountRange(ctx context.Context, key string, start, end int64, unit core.BitCountUnit) (int64, error)
	BitOp(ctx context.Context, op core.BitOperation, destKey string, keys ...string) (int64, error)
	BitPos(ctx context.Context, key string, bit bool) (int64, error)
	BitPosRange(ctx context.Context, key string, bit bool, start, end int64, unit core.BitCountUnit) (int64, error)
	BitField(ctx context.Context, key string, arg args.BitFieldArgument) ([]int64, error)
}

var _ BitmapCommands = (*Client)(nil)

func bitValue(b bool) int {
	if b {
		return 1
	}
	return 0
}

// SetBit sets the bit at offset and returns its previous value.
func (c *Client) SetBit(ctx context.Context, key string, offset int64, value bool) (bool, error) {
	params := command.NewBuilder().Key("key", key).Add("offset", offset).Add("value", value).Build()
	return execute(ctx, c, command.SetBit, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.SetBit(ctx, key, offset, bitValue(value))
	}, func(cmd *goredis.IntCmd) (bool, error) {
		return cmd.Val() == 1, nil
	})
}

func (c *Client) GetBit(ctx context.Context, key string, offset int64) (bool, error) {
	params := command.NewBuilder().Key("key", key).Add("offset", offset).Build()
	return execute(ctx, c, command.GetBit, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.GetBit(ctx, key, offset)
	}, func(cmd *goredis.IntCmd) (bool, error) {
		return cmd.Val() == 1, nil
	})
}

func (c *Client) BitCount(ctx context.Context, key string) (int64, error) {
	params := command.NewBuilder().Key("key", key).Build()
	return execute(ctx, c, command.BitCount, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.BitCount(ctx, key, nil)
	}, int64Value)
}

// BitCountRange counts set bits between start and end, measured in bytes
// or bits depending on unit.
func (c *Client) BitCountRange(ctx context.Context, key string, start, end int64, unit core.BitCountUnit) (int64, error) {
	b := command.NewBuilder().Key("key", key).Add("start", start).Add("end", end)
	if err := checkArgument("unit", unit, convert.ValidBitCountUnit(unit)); err != nil {
		return 0, err
	}
	kw, withUnit := convert.BitCountUnitKeyword(unit)
	if withUnit {
		b.Add("unit", kw)
	}
	return execute(ctx, c, command.BitCount, b.Build(), func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		if withUnit {
			return rc.Do(ctx, "bitcount", key, start, end, kw)
		}
		return rc.Do(ctx, "bitcount", key, start, end)
	}, doInt64)
}

// BitOp stores the result of a bitwise operation over keys at destKey.
// BitOperationNot takes exactly one source key.
func (c *Client) BitOp(ctx context.Context, op core.BitOperation, destKey string, keys ...string) (int64, error) {
	kw, ok := convert.BitOperationKeyword(op)
	if !ok {
		return 0, &ArgumentError{Name: "operation", Value: op}
	}
	if op == core.BitOperationNot && len(keys) != 1 {
		return 0, &ArgumentError{Name: "keys", Value: keys}
	}
	params := command.NewBuilder().Add("operation", kw).Key("destKey", destKey).Keys("keys", keys...).Build()
	return execute(ctx, c, command.BitOp, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		switch op {
		case core.BitOperationAnd:
			return rc.BitOpAnd(ctx, destKey, keys...)
		case core.BitOperationOr:
			return rc.BitOpOr(ctx, destKey, keys...)
		case core.BitOperationXor:
			return rc.BitOpXor(ctx, destKey, keys...)
		}
		return rc.BitOpNot(ctx, destKey, keys[0])
	}, int64Value)
}

// BitPos returns the position of the first bit set to bit.
func (c *Client) BitPos(ctx context.Context, key string, bit bool) (int64, error) {
	params := command.NewBuilder().Key("key", key).Add("bit", bit).Build()
	return execute(ctx, c, command.BitPos, params, func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		return rc.Do(ctx, "bitpos", key, bitValue(bit))
	}, doInt64)
}

func (c *Client) BitPosRange(ctx context.Context, key string, bit bool, start, end int64, unit core.BitCountUnit) (int64, error) {
	b := command.NewBuilder().Key("key", key).Add("bit", bit).Add("start", start).Add("end", end)
	if err := checkArgument("unit", unit, convert.ValidBitCountUnit(unit)); err != nil {
		return 0, err
	}
	kw, withUnit := convert.BitCountUnitKeyword(unit)
	if withUnit {
		b.Add("unit", kw)
	}
	return execute(ctx, c, command.BitPos, b.Build(), func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		if withUnit {
			return rc.Do(ctx, "bitpos", key, bitValue(bit), start, end, kw)
		}
		return rc.Do(ctx, "bitpos", key, bitValue(bit), start, end)
	}, doInt64)
}

// BitField runs the BITFIELD subcommands of arg in order and returns one
// integer per GET, SET and INCRBY.
func (c *Client) BitField(ctx context.Context, key string, arg args.BitFieldArgument) ([]int64, error) {
	tokens, err := convert.BitFieldTokens(arg)
	if err != nil {
		return nil, &ArgumentError{Name: "bitfield", Value: err}
	}
	params := command.NewBuilder().Key("key", key).Flatten(arg).Build()
	return execute(ctx, c, command.BitField, params, func(ctx context.Context, rc nativeClient) *goredis.IntSliceCmd {
		return rc.BitField(ctx, key, tokens...)
	}, int64sValue)
}
