package convert

import (
	"github.com/buession/redis/args"
)

var expirationWords = newKeywords(map[args.ExpirationKind]string{
	args.ExpirationEX:      "EX",
	args.ExpirationPX:      "PX",
	args.ExpirationEXAT:    "EXAT",
	args.ExpirationPXAT:    "PXAT",
	args.ExpirationKeepTTL: "KEEPTTL",
	args.ExpirationPersist: "PERSIST",
})

var conditionWords = newKeywords(map[args.Condition]string{
	args.NX: "NX",
	args.XX: "XX",
})

var comparisonWords = newKeywords(map[args.Comparison]string{
	args.GT: "GT",
	args.LT: "LT",
})

// ValidExpiration reports whether the kind of e is ExpirationNone or
// encodable.
func ValidExpiration(e args.Expiration) bool { return expirationWords.optional(e.Kind) }

// ValidCondition reports whether c is ConditionNone, NX or XX.
func ValidCondition(c args.Condition) bool { return conditionWords.optional(c) }

// ValidComparison reports whether c is ComparisonNone, GT or LT.
func ValidComparison(c args.Comparison) bool { return comparisonWords.optional(c) }

func appendExpiration(tokens []interface{}, e args.Expiration) []interface{} {
	w, ok := expirationWords.keyword(e.Kind)
	if !ok {
		return tokens
	}
	switch e.Kind {
	case args.ExpirationKeepTTL, args.ExpirationPersist:
		return append(tokens, w)
	}
	return append(tokens, w, e.Value)
}

func scanExpiration(s *tokenScanner) (args.Expiration, error) {
	w, err := s.keyword()
	if err != nil {
		return args.Expiration{}, err
	}
	kind := expirationWords.parse(w)
	switch kind {
	case args.ExpirationNone:
		s.pos--
		return args.Expiration{}, s.unexpected()
	case args.ExpirationKeepTTL, args.ExpirationPersist:
		return args.Expiration{Kind: kind}, nil
	}
	n, err := s.integer(w)
	if err != nil {
		return args.Expiration{}, err
	}
	return args.Expiration{Kind: kind, Value: n}, nil
}

// SetTokens encodes the options of SET.
func SetTokens(a args.SetArgument) []interface{} {
	tokens := appendExpiration(make([]interface{}, 0, 4), a.Expiration)
	if w, ok := conditionWords.keyword(a.Condition); ok {
		tokens = append(tokens, w)
	}
	if a.Get {
		tokens = append(tokens, "GET")
	}
	return tokens
}

// ParseSetTokens decodes the options of SET.
func ParseSetTokens(tokens []interface{}) (args.SetArgument, error) {
	var a args.SetArgument
	s := newTokenScanner(tokens)
	for s.more() {
		switch s.peek() {
		case "EX", "PX", "EXAT", "PXAT", "KEEPTTL":
			e, err := scanExpiration(s)
			if err != nil {
				return args.SetArgument{}, err
			}
			a.Expiration = e
		case "NX":
			s.pos++
			a.Condition = args.NX
		case "XX":
			s.pos++
			a.Condition = args.XX
		case "GET":
			s.pos++
			a.Get = true
		default:
			return args.SetArgument{}, s.unexpected()
		}
	}
	return a, nil
}

// GetExTokens encodes the options of GETEX.
func GetExTokens(a args.GetExArgument) []interface{} {
	return appendExpiration(nil, a.Expiration)
}

// ParseGetExTokens decodes the options of GETEX.
func ParseGetExTokens(tokens []interface{}) (args.GetExArgument, error) {
	var a args.GetExArgument
	s := newTokenScanner(tokens)
	for s.more() {
		switch s.peek() {
		case "EX", "PX", "EXAT", "PXAT", "PERSIST":
			e, err := scanExpiration(s)
			if err != nil {
				return args.GetExArgument{}, err
			}
			a.Expiration = e
		default:
			return args.GetExArgument{}, s.unexpected()
		}
	}
	return a, nil
}
