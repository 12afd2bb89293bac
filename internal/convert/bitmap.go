package convert

import (
	"fmt"

	"github.com/buession/redis/args"
)

// BitFieldTokens encodes BITFIELD subcommands. An operation with an unknown
// kind or overflow policy is an error.
func BitFieldTokens(a args.BitFieldArgument) ([]interface{}, error) {
	tokens := make([]interface{}, 0, len(a.Operations)*4)
	for i, op := range a.Operations {
		switch op.Kind {
		case args.BitFieldGet:
			tokens = append(tokens, "GET", op.Type, op.Offset)
		case args.BitFieldSet:
			tokens = append(tokens, "SET", op.Type, op.Offset, op.Value)
		case args.BitFieldIncrBy:
			tokens = append(tokens, "INCRBY", op.Type, op.Offset, op.Value)
		case args.BitFieldOverflow:
			w, ok := OverflowKeyword(op.Overflow)
			if !ok {
				return nil, fmt.Errorf("convert: operation %d: unknown overflow policy %d", i, op.Overflow)
			}
			tokens = append(tokens, "OVERFLOW", w)
		default:
			return nil, fmt.Errorf("convert: operation %d: unknown kind %d", i, op.Kind)
		}
	}
	return tokens, nil
}

// ParseBitFieldTokens decodes BITFIELD subcommands.
func ParseBitFieldTokens(tokens []interface{}) (args.BitFieldArgument, error) {
	var a args.BitFieldArgument
	s := newTokenScanner(tokens)
	for s.more() {
		w, _ := s.keyword()
		switch w {
		case "GET", "SET", "INCRBY":
			typ, err := s.text(w)
			if err != nil {
				return args.BitFieldArgument{}, err
			}
			offset, err := s.text(w)
			if err != nil {
				return args.BitFieldArgument{}, err
			}
			if w == "GET" {
				a = a.Get(typ, offset)
				continue
			}
			v, err := s.integer(w)
			if err != nil {
				return args.BitFieldArgument{}, err
			}
			if w == "SET" {
				a = a.Set(typ, offset, v)
			} else {
				a = a.IncrBy(typ, offset, v)
			}
		case "OVERFLOW":
			policy, err := s.text(w)
			if err != nil {
				return args.BitFieldArgument{}, err
			}
			o := ParseOverflow(policy)
			if o == 0 {
				return args.BitFieldArgument{}, fmt.Errorf("%w: overflow policy %q", ErrUnexpectedToken, policy)
			}
			a = a.Overflow(o)
		default:
			s.pos--
			return args.BitFieldArgument{}, s.unexpected()
		}
	}
	return a, nil
}
