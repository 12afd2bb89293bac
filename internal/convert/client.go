package convert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/buession/redis/args"
)

// ClientKillFilters encodes the filters of CLIENT KILL as strings, the form
// go-redis ClientKillByFilter takes.
func ClientKillFilters(a args.ClientKillArgument) []string {
	var filters []string
	if a.ID > 0 {
		filters = append(filters, "ID", strconv.FormatInt(a.ID, 10))
	}
	if t, ok := ClientTypeKeyword(a.Type); ok {
		filters = append(filters, "TYPE", t)
	}
	if a.User != "" {
		filters = append(filters, "USER", a.User)
	}
	if a.Addr != "" {
		filters = append(filters, "ADDR", a.Addr)
	}
	if a.LAddr != "" {
		filters = append(filters, "LADDR", a.LAddr)
	}
	if a.SkipMe != nil {
		if *a.SkipMe {
			filters = append(filters, "SKIPME", "yes")
		} else {
			filters = append(filters, "SKIPME", "no")
		}
	}
	return filters
}

// ParseClientKillFilters decodes CLIENT KILL filters.
func ParseClientKillFilters(filters []string) (args.ClientKillArgument, error) {
	var a args.ClientKillArgument
	tokens := make([]interface{}, len(filters))
	for i, f := range filters {
		tokens[i] = f
	}
	s := newTokenScanner(tokens)
	for s.more() {
		w, _ := s.keyword()
		v, err := s.text(w)
		if err != nil {
			return args.ClientKillArgument{}, err
		}
		switch w {
		case "ID":
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return args.ClientKillArgument{}, fmt.Errorf("%w: client id %q", ErrUnexpectedToken, v)
			}
			a.ID = id
		case "TYPE":
			a.Type = ParseClientType(v)
		case "USER":
			a.User = v
		case "ADDR":
			a.Addr = v
		case "LADDR":
			a.LAddr = v
		case "SKIPME":
			skip := strings.EqualFold(v, "yes")
			a.SkipMe = &skip
		default:
			s.pos -= 2
			return args.ClientKillArgument{}, s.unexpected()
		}
	}
	return a, nil
}
