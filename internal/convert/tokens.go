package convert

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrUnexpectedToken is wrapped by decode errors caused by a token that
	// does not belong at its position.
	ErrUnexpectedToken = errors.New("convert: unexpected token")
	// ErrMissingValue is wrapped when a keyword lacks its following value.
	ErrMissingValue = errors.New("convert: missing value")
)

// tokenScanner walks a flat keyword/value stream with one token of
// lookahead. Keywords are compared by value, case-insensitively.
type tokenScanner struct {
	tokens []interface{}
	pos    int
}

func newTokenScanner(tokens []interface{}) *tokenScanner {
	return &tokenScanner{tokens: tokens}
}

func (s *tokenScanner) more() bool {
	return s.pos < len(s.tokens)
}

// peek returns the upper-cased text of the next token without consuming it.
func (s *tokenScanner) peek() string {
	if !s.more() {
		return ""
	}
	return strings.ToUpper(tokenText(s.tokens[s.pos]))
}

// accept consumes the next token if it equals keyword.
func (s *tokenScanner) accept(keyword string) bool {
	if s.more() && strings.EqualFold(tokenText(s.tokens[s.pos]), keyword) {
		s.pos++
		return true
	}
	return false
}

// keyword consumes the next token as an upper-cased keyword.
func (s *tokenScanner) keyword() (string, error) {
	if !s.more() {
		return "", ErrMissingValue
	}
	w := strings.ToUpper(tokenText(s.tokens[s.pos]))
	s.pos++
	return w, nil
}

func (s *tokenScanner) text(after string) (string, error) {
	if !s.more() {
		return "", fmt.Errorf("%w after %s", ErrMissingValue, after)
	}
	v := tokenText(s.tokens[s.pos])
	s.pos++
	return v, nil
}

func (s *tokenScanner) integer(after string) (int64, error) {
	if !s.more() {
		return 0, fmt.Errorf("%w after %s", ErrMissingValue, after)
	}
	tok := s.tokens[s.pos]
	s.pos++
	switch v := tok.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	}
	n, err := strconv.ParseInt(tokenText(tok), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s expects an integer, got %q", ErrUnexpectedToken, after, tokenText(tok))
	}
	return n, nil
}

func (s *tokenScanner) number(after string) (float64, error) {
	if !s.more() {
		return 0, fmt.Errorf("%w after %s", ErrMissingValue, after)
	}
	tok := s.tokens[s.pos]
	s.pos++
	if v, ok := tok.(float64); ok {
		return v, nil
	}
	f, err := ParseScore(tokenText(tok))
	if err != nil {
		return 0, fmt.Errorf("%w: %s expects a number, got %q", ErrUnexpectedToken, after, tokenText(tok))
	}
	return f, nil
}

func (s *tokenScanner) unexpected() error {
	return fmt.Errorf("%w %q at position %d", ErrUnexpectedToken, tokenText(s.tokens[s.pos]), s.pos)
}

func tokenText(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return FormatScore(v)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}

// FormatScore formats a score the way Redis accepts it, including infinities.
func FormatScore(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "+inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseScore parses a score reply, including "inf", "+inf" and "-inf".
func ParseScore(s string) (float64, error) {
	switch strings.ToLower(s) {
	case "inf", "+inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	}
	return strconv.ParseFloat(s, 64)
}

// FormatCursor formats a native scan cursor.
func FormatCursor(cursor uint64) string {
	return strconv.FormatUint(cursor, 10)
}

// ParseCursor parses a scan cursor token; "" is the initial cursor.
func ParseCursor(cursor string) (uint64, error) {
	if cursor == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(cursor, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("convert: invalid cursor %q: %w", cursor, err)
	}
	return n, nil
}
