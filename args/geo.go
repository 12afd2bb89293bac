package args

import "github.com/buession/redis/core"

// GeoAddArgument holds the options of GEOADD.
type GeoAddArgument struct {
	Condition Condition
	CH        bool
}

func (a GeoAddArgument) Flatten(add func(string, interface{})) {
	if a.Condition != ConditionNone {
		add("condition", a.Condition.String())
	}
	if a.CH {
		add("ch", true)
	}
}

// GeoRadiusArgument holds the options of GEORADIUS and GEORADIUSBYMEMBER.
type GeoRadiusArgument struct {
	WithCoord bool
	WithDist  bool
	WithHash  bool
	// Count limits the reply; zero means no limit.
	Count int64
	// Any returns as soon as Count matches are found. Requires Count.
	Any   bool
	Order core.Order
}

func (a GeoRadiusArgument) Flatten(add func(string, interface{})) {
	if a.WithCoord {
		add("withcoord", true)
	}
	if a.WithDist {
		add("withdist", true)
	}
	if a.WithHash {
		add("withhash", true)
	}
	if a.Count > 0 {
		add("count", a.Count)
		if a.Any {
			add("any", true)
		}
	}
	if a.Order != core.OrderUnspecified {
		add("order", a.Order.String())
	}
}

// GeoSearchArgument holds the origin, shape and options of GEOSEARCH.
//
// The origin is Member when set, else Longitude/Latitude. The shape is a
// circle when Radius > 0, else a BoxWidth x BoxHeight box. Unit applies to
// the shape and must be set.
type GeoSearchArgument struct {
	Member    string
	Longitude float64
	Latitude  float64

	Radius    float64
	BoxWidth  float64
	BoxHeight float64
	Unit      core.GeoUnit

	Order     core.Order
	Count     int64
	Any       bool
	WithCoord bool
	WithDist  bool
	WithHash  bool
}

func (a GeoSearchArgument) Flatten(add func(string, interface{})) {
	if a.Member != "" {
		add("member", a.Member)
	} else {
		add("longitude", a.Longitude)
		add("latitude", a.Latitude)
	}
	if a.Radius > 0 {
		add("radius", a.Radius)
	} else {
		add("width", a.BoxWidth)
		add("height", a.BoxHeight)
	}
	if a.Unit != core.GeoUnitUnknown {
		add("unit", a.Unit.String())
	}
	GeoRadiusArgument{
		WithCoord: a.WithCoord,
		WithDist:  a.WithDist,
		WithHash:  a.WithHash,
		Count:     a.Count,
		Any:       a.Any,
		Order:     a.Order,
	}.Flatten(add)
}
