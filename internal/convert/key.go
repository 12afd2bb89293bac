package convert

import (
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/args"
	"github.com/buession/redis/core"
)

// SortToNative converts a SortArgument into the go-redis SORT options.
// go-redis omits LIMIT when Offset and Count are both zero, so a Limit of
// 0/0 does not survive the conversion; encode such arguments with
// SortTokens instead.
func SortToNative(a args.SortArgument) *goredis.Sort {
	sort := &goredis.Sort{
		By:    a.By,
		Get:   a.Get,
		Alpha: a.Alpha,
	}
	if a.Limit != nil {
		sort.Offset = a.Limit.Offset
		sort.Count = a.Limit.Count
	}
	if o, ok := OrderKeyword(a.Order); ok {
		sort.Order = o
	}
	return sort
}

// SortFromNative converts go-redis SORT options back into a SortArgument.
func SortFromNative(sort *goredis.Sort) args.SortArgument {
	if sort == nil {
		return args.SortArgument{}
	}
	a := args.SortArgument{
		By:    sort.By,
		Get:   sort.Get,
		Order: ParseOrder(sort.Order),
		Alpha: sort.Alpha,
	}
	if sort.Offset != 0 || sort.Count != 0 {
		a.Limit = core.NewLimit(sort.Offset, sort.Count)
	}
	return a
}

// SortTokens encodes the options of SORT.
func SortTokens(a args.SortArgument) []interface{} {
	var tokens []interface{}
	if a.By != "" {
		tokens = append(tokens, "BY", a.By)
	}
	if a.Limit != nil {
		tokens = append(tokens, "LIMIT", a.Limit.Offset, a.Limit.Count)
	}
	for _, get := range a.Get {
		tokens = append(tokens, "GET", get)
	}
	if o, ok := OrderKeyword(a.Order); ok {
		tokens = append(tokens, o)
	}
	if a.Alpha {
		tokens = append(tokens, "ALPHA")
	}
	return tokens
}

// ParseSortTokens decodes the options of SORT. LIMIT consumes the next two
// tokens, BY and GET the next one.
func ParseSortTokens(tokens []interface{}) (args.SortArgument, error) {
	var a args.SortArgument
	s := newTokenScanner(tokens)
	for s.more() {
		w, _ := s.keyword()
		switch w {
		case "BY":
			by, err := s.text(w)
			if err != nil {
				return args.SortArgument{}, err
			}
			a.By = by
		case "LIMIT":
			offset, err := s.integer(w)
			if err != nil {
				return args.SortArgument{}, err
			}
			count, err := s.integer(w)
			if err != nil {
				return args.SortArgument{}, err
			}
			a.Limit = core.NewLimit(offset, count)
		case "GET":
			get, err := s.text(w)
			if err != nil {
				return args.SortArgument{}, err
			}
			a.Get = append(a.Get, get)
		case "ASC", "DESC":
			a.Order = ParseOrder(w)
		case "ALPHA":
			a.Alpha = true
		default:
			s.pos--
			return args.SortArgument{}, s.unexpected()
		}
	}
	return a, nil
}

// RestoreTokens encodes the options of RESTORE.
func RestoreTokens(a args.RestoreArgument) []interface{} {
	var tokens []interface{}
	if a.Replace {
		tokens = append(tokens, "REPLACE")
	}
	if a.AbsTTL {
		tokens = append(tokens, "ABSTTL")
	}
	if a.IdleTime > 0 {
		tokens = append(tokens, "IDLETIME", a.IdleTime)
	}
	if a.Freq > 0 {
		tokens = append(tokens, "FREQ", a.Freq)
	}
	return tokens
}

// ParseRestoreTokens decodes the options of RESTORE.
func ParseRestoreTokens(tokens []interface{}) (args.RestoreArgument, error) {
	var a args.RestoreArgument
	s := newTokenScanner(tokens)
	for s.more() {
		w, _ := s.keyword()
		switch w {
		case "REPLACE":
			a.Replace = true
		case "ABSTTL":
			a.AbsTTL = true
		case "IDLETIME":
			n, err := s.integer(w)
			if err != nil {
				return args.RestoreArgument{}, err
			}
			a.IdleTime = n
		case "FREQ":
			n, err := s.integer(w)
			if err != nil {
				return args.RestoreArgument{}, err
			}
			a.Freq = n
		default:
			s.pos--
			return args.RestoreArgument{}, s.unexpected()
		}
	}
	return a, nil
}

// MigrateTokens encodes the options of MIGRATE that precede KEYS.
func MigrateTokens(a args.MigrateArgument) []interface{} {
	var tokens []interface{}
	if a.Copy {
		tokens = append(tokens, "COPY")
	}
	if a.Replace {
		tokens = append(tokens, "REPLACE")
	}
	switch {
	case a.Username != "":
		tokens = append(tokens, "AUTH2", a.Username, a.Password)
	case a.Password != "":
		tokens = append(tokens, "AUTH", a.Password)
	}
	return tokens
}

// ParseMigrateTokens decodes the options of MIGRATE.
func ParseMigrateTokens(tokens []interface{}) (args.MigrateArgument, error) {
	var a args.MigrateArgument
	s := newTokenScanner(tokens)
	for s.more() {
		w, _ := s.keyword()
		switch w {
		case "COPY":
			a.Copy = true
		case "REPLACE":
			a.Replace = true
		case "AUTH":
			password, err := s.text(w)
			if err != nil {
				return args.MigrateArgument{}, err
			}
			a.Password = password
		case "AUTH2":
			username, err := s.text(w)
			if err != nil {
				return args.MigrateArgument{}, err
			}
			password, err := s.text(w)
			if err != nil {
				return args.MigrateArgument{}, err
			}
			a.Username, a.Password = username, password
		default:
			s.pos--
			return args.MigrateArgument{}, s.unexpected()
		}
	}
	return a, nil
}

// ScanTokens encodes the options of the SCAN family.
func ScanTokens(a args.ScanArgument) []interface{} {
	var tokens []interface{}
	if a.Match != "" {
		tokens = append(tokens, "MATCH", a.Match)
	}
	if a.Count > 0 {
		tokens = append(tokens, "COUNT", a.Count)
	}
	if t, ok := TypeKeyword(a.Type); ok {
		tokens = append(tokens, "TYPE", t)
	}
	return tokens
}

// ParseScanTokens decodes the options of the SCAN family.
func ParseScanTokens(tokens []interface{}) (args.ScanArgument, error) {
	var a args.ScanArgument
	s := newTokenScanner(tokens)
	for s.more() {
		w, _ := s.keyword()
		switch w {
		case "MATCH":
			match, err := s.text(w)
			if err != nil {
				return args.ScanArgument{}, err
			}
			a.Match = match
		case "COUNT":
			n, err := s.integer(w)
			if err != nil {
				return args.ScanArgument{}, err
			}
			a.Count = n
		case "TYPE":
			t, err := s.text(w)
			if err != nil {
				return args.ScanArgument{}, err
			}
			a.Type = ParseType(t)
		default:
			s.pos--
			return args.ScanArgument{}, s.unexpected()
		}
	}
	return a, nil
}

// TTLSeconds converts a TTL/EXPIRETIME reply into seconds, keeping the -1
// (no expiry) and -2 (no key) markers.
func TTLSeconds(d time.Duration) int64 {
	if d == -1 || d == -2 {
		return int64(d)
	}
	return int64(d / time.Second)
}

// TTLMilliseconds is TTLSeconds for PTTL/PEXPIRETIME replies.
func TTLMilliseconds(d time.Duration) int64 {
	if d == -1 || d == -2 {
		return int64(d)
	}
	return int64(d / time.Millisecond)
}
