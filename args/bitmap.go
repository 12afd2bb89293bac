package args

import (
	"strconv"

	"github.com/buession/redis/core"
)

// BitFieldKind is the subcommand of one BITFIELD operation.
type BitFieldKind uint8

const (
	BitFieldUnknown BitFieldKind = iota
	BitFieldGet
	BitFieldSet
	BitFieldIncrBy
	BitFieldOverflow
)

// BitFieldOperation is one BITFIELD subcommand. Type is an encoding such as
// "u8" or "i16"; Offset is a bit offset, "#n" multiplies by the type width.
type BitFieldOperation struct {
	Kind     BitFieldKind
	Type     string
	Offset   string
	Value    int64
	Overflow core.BitFieldOverflow
}

// BitFieldArgument is the ordered list of BITFIELD subcommands.
type BitFieldArgument struct {
	Operations []BitFieldOperation
}

// Get appends a GET subcommand.
func (a BitFieldArgument) Get(typ, offset string) BitFieldArgument {
	return a.with(BitFieldOperation{Kind: BitFieldGet, Type: typ, Offset: offset})
}

// Set appends a SET subcommand.
func (a BitFieldArgument) Set(typ, offset string, value int64) BitFieldArgument {
	return a.with(BitFieldOperation{Kind: BitFieldSet, Type: typ, Offset: offset, Value: value})
}

// IncrBy appends an INCRBY subcommand.
func (a BitFieldArgument) IncrBy(typ, offset string, increment int64) BitFieldArgument {
	return a.with(BitFieldOperation{Kind: BitFieldIncrBy, Type: typ, Offset: offset, Value: increment})
}

// Overflow appends an OVERFLOW subcommand.
func (a BitFieldArgument) Overflow(o core.BitFieldOverflow) BitFieldArgument {
	return a.with(BitFieldOperation{Kind: BitFieldOverflow, Overflow: o})
}

func (a BitFieldArgument) with(op BitFieldOperation) BitFieldArgument {
	ops := make([]BitFieldOperation, len(a.Operations), len(a.Operations)+1)
	copy(ops, a.Operations)
	return BitFieldArgument{Operations: append(ops, op)}
}

func (a BitFieldArgument) Flatten(add func(string, interface{})) {
	for _, op := range a.Operations {
		switch op.Kind {
		case BitFieldGet:
			add("get", op.Type+" "+op.Offset)
		case BitFieldSet:
			add("set", op.Type+" "+op.Offset+" "+strconv.FormatInt(op.Value, 10))
		case BitFieldIncrBy:
			add("incrby", op.Type+" "+op.Offset+" "+strconv.FormatInt(op.Value, 10))
		case BitFieldOverflow:
			add("overflow", op.Overflow)
		}
	}
}
