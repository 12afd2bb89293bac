package convert

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/args"
	"github.com/buession/redis/core"
)

// GeoMemberToNative converts a GeoMember into a go-redis GeoLocation.
func GeoMemberToNative(m core.GeoMember) *goredis.GeoLocation {
	return &goredis.GeoLocation{
		Name:      m.Member,
		Longitude: m.Longitude,
		Latitude:  m.Latitude,
	}
}

// GeoMemberFromNative converts a go-redis GeoLocation into a GeoMember.
func GeoMemberFromNative(loc *goredis.GeoLocation) core.GeoMember {
	return core.GeoMember{
		Member:    loc.Name,
		Longitude: loc.Longitude,
		Latitude:  loc.Latitude,
	}
}

// GeoFromNative converts a GEOPOS element; a missing member yields nil.
func GeoFromNative(pos *goredis.GeoPos) *core.Geo {
	if pos == nil {
		return nil
	}
	return &core.Geo{Longitude: pos.Longitude, Latitude: pos.Latitude}
}

// GeoToNative is the inverse of GeoFromNative.
func GeoToNative(geo *core.Geo) *goredis.GeoPos {
	if geo == nil {
		return nil
	}
	return &goredis.GeoPos{Longitude: geo.Longitude, Latitude: geo.Latitude}
}

// GeoRadiusFromNative converts a GEOSEARCH element. Coordinates are only
// kept when withCoord is set since go-redis leaves them zero otherwise.
func GeoRadiusFromNative(loc goredis.GeoLocation, withCoord bool) core.GeoRadius {
	r := core.GeoRadius{
		Member:   loc.Name,
		Distance: loc.Dist,
		Hash:     loc.GeoHash,
	}
	if withCoord {
		r.Geo = &core.Geo{Longitude: loc.Longitude, Latitude: loc.Latitude}
	}
	return r
}

// GeoAddTokens encodes the options of GEOADD.
func GeoAddTokens(a args.GeoAddArgument) []interface{} {
	var tokens []interface{}
	if w, ok := conditionWords.keyword(a.Condition); ok {
		tokens = append(tokens, w)
	}
	if a.CH {
		tokens = append(tokens, "CH")
	}
	return tokens
}

// ParseGeoAddTokens decodes the options of GEOADD.
func ParseGeoAddTokens(tokens []interface{}) (args.GeoAddArgument, error) {
	var a args.GeoAddArgument
	s := newTokenScanner(tokens)
	for s.more() {
		w, _ := s.keyword()
		switch w {
		case "NX":
			a.Condition = args.NX
		case "XX":
			a.Condition = args.XX
		case "CH":
			a.CH = true
		default:
			s.pos--
			return args.GeoAddArgument{}, s.unexpected()
		}
	}
	return a, nil
}

// GeoRadiusTokens encodes the options of GEORADIUS and GEORADIUSBYMEMBER.
func GeoRadiusTokens(a args.GeoRadiusArgument) []interface{} {
	var tokens []interface{}
	if a.WithCoord {
		tokens = append(tokens, "WITHCOORD")
	}
	if a.WithDist {
		tokens = append(tokens, "WITHDIST")
	}
	if a.WithHash {
		tokens = append(tokens, "WITHHASH")
	}
	if a.Count > 0 {
		tokens = append(tokens, "COUNT", a.Count)
		if a.Any {
			tokens = append(tokens, "ANY")
		}
	}
	if o, ok := OrderKeyword(a.Order); ok {
		tokens = append(tokens, o)
	}
	return tokens
}

// ParseGeoRadiusTokens decodes the options of GEORADIUS. COUNT consumes the
// following value; ANY is only accepted right after it.
func ParseGeoRadiusTokens(tokens []interface{}) (args.GeoRadiusArgument, error) {
	var a args.GeoRadiusArgument
	s := newTokenScanner(tokens)
	for s.more() {
		w, _ := s.keyword()
		switch w {
		case "WITHCOORD":
			a.WithCoord = true
		case "WITHDIST":
			a.WithDist = true
		case "WITHHASH":
			a.WithHash = true
		case "COUNT":
			n, err := s.integer(w)
			if err != nil {
				return args.GeoRadiusArgument{}, err
			}
			a.Count = n
			a.Any = s.accept("ANY")
		case "ASC", "DESC":
			a.Order = ParseOrder(w)
		default:
			s.pos--
			return args.GeoRadiusArgument{}, s.unexpected()
		}
	}
	return a, nil
}

// ParseGeoRadiusReply decodes a GEORADIUS reply. Without WITH* options the
// reply is a flat member list; otherwise every element is
// [member, dist?, hash?, [lon, lat]?] in that order.
func ParseGeoRadiusReply(reply interface{}, a args.GeoRadiusArgument) ([]core.GeoRadius, error) {
	items, ok := reply.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: GEORADIUS reply is %T, not an array", ErrUnexpectedToken, reply)
	}
	nested := a.WithCoord || a.WithDist || a.WithHash
	return SliceE(items, func(item interface{}) (core.GeoRadius, error) {
		if !nested {
			member, err := replyText(item)
			return core.GeoRadius{Member: member}, err
		}
		return parseGeoRadiusItem(item, a)
	})
}

func parseGeoRadiusItem(item interface{}, a args.GeoRadiusArgument) (core.GeoRadius, error) {
	var r core.GeoRadius
	fields, ok := item.([]interface{})
	if !ok || len(fields) == 0 {
		return r, fmt.Errorf("%w: GEORADIUS element is %T", ErrUnexpectedToken, item)
	}
	s := newTokenScanner(fields)
	member, err := replyText(fields[0])
	if err != nil {
		return r, err
	}
	s.pos++
	r.Member = member
	if a.WithDist {
		if r.Distance, err = s.number("WITHDIST"); err != nil {
			return r, err
		}
	}
	if a.WithHash {
		if r.Hash, err = s.integer("WITHHASH"); err != nil {
			return r, err
		}
	}
	if a.WithCoord {
		if !s.more() {
			return r, fmt.Errorf("%w after WITHCOORD", ErrMissingValue)
		}
		pair, ok := fields[s.pos].([]interface{})
		if !ok || len(pair) != 2 {
			return r, fmt.Errorf("%w: WITHCOORD expects a pair, got %v", ErrUnexpectedToken, fields[s.pos])
		}
		s.pos++
		coords := newTokenScanner(pair)
		var geo core.Geo
		if geo.Longitude, err = coords.number("longitude"); err != nil {
			return r, err
		}
		if geo.Latitude, err = coords.number("latitude"); err != nil {
			return r, err
		}
		r.Geo = &geo
	}
	if s.more() {
		return r, s.unexpected()
	}
	return r, nil
}

// GeoSearchToNative converts a GeoSearchArgument into a go-redis query.
func GeoSearchToNative(a args.GeoSearchArgument) *goredis.GeoSearchLocationQuery {
	q := goredis.GeoSearchQuery{
		Member:    a.Member,
		Longitude: a.Longitude,
		Latitude:  a.Latitude,
		Count:     int(a.Count),
		CountAny:  a.Any,
	}
	unit, _ := GeoUnitKeyword(a.Unit)
	if a.Radius > 0 {
		q.Radius = a.Radius
		q.RadiusUnit = unit
	} else {
		q.BoxWidth = a.BoxWidth
		q.BoxHeight = a.BoxHeight
		q.BoxUnit = unit
	}
	if o, ok := OrderKeyword(a.Order); ok {
		q.Sort = o
	}
	return &goredis.GeoSearchLocationQuery{
		GeoSearchQuery: q,
		WithCoord:      a.WithCoord,
		WithDist:       a.WithDist,
		WithHash:       a.WithHash,
	}
}

// GeoSearchFromNative converts a go-redis query back into a GeoSearchArgument.
func GeoSearchFromNative(q *goredis.GeoSearchLocationQuery) args.GeoSearchArgument {
	a := args.GeoSearchArgument{
		Member:    q.Member,
		Longitude: q.Longitude,
		Latitude:  q.Latitude,
		Order:     ParseOrder(q.Sort),
		Count:     int64(q.Count),
		Any:       q.CountAny,
		WithCoord: q.WithCoord,
		WithDist:  q.WithDist,
		WithHash:  q.WithHash,
	}
	if q.Radius > 0 {
		a.Radius = q.Radius
		a.Unit = ParseGeoUnit(q.RadiusUnit)
	} else {
		a.BoxWidth = q.BoxWidth
		a.BoxHeight = q.BoxHeight
		a.Unit = ParseGeoUnit(q.BoxUnit)
	}
	return a
}

// GeoSearchStoreToNative converts a GeoSearchArgument into the options of
// GEOSEARCHSTORE. WITH* flags do not apply to the store form.
func GeoSearchStoreToNative(a args.GeoSearchArgument, storeDist bool) *goredis.GeoSearchStoreQuery {
	return &goredis.GeoSearchStoreQuery{
		GeoSearchQuery: GeoSearchToNative(a).GeoSearchQuery,
		StoreDist:      storeDist,
	}
}
