package core

// Geo is a longitude/latitude pair.
type Geo struct {
	Longitude float64
	Latitude  float64
}

// GeoMember is a named point stored in a geo set.
type GeoMember struct {
	Member    string
	Longitude float64
	Latitude  float64
}

// Geo returns the coordinates of m.
func (m GeoMember) Geo() Geo {
	return Geo{Longitude: m.Longitude, Latitude: m.Latitude}
}

// GeoRadius is one element of a GEORADIUS or GEOSEARCH reply. Distance,
// Geo and Hash are only set when requested with WITHDIST, WITHCOORD and
// WITHHASH.
type GeoRadius struct {
	Member   string
	Distance float64
	Geo      *Geo
	Hash     int64
}

// GeoUnit is the distance unit of geo commands.
type GeoUnit uint8

const (
	GeoUnitUnknown GeoUnit = iota
	GeoUnitMeter
	GeoUnitKilometer
	GeoUnitMile
	GeoUnitFoot
)

func (u GeoUnit) String() string {
	switch u {
	case GeoUnitMeter:
		return "m"
	case GeoUnitKilometer:
		return "km"
	case GeoUnitMile:
		return "mi"
	case GeoUnitFoot:
		return "ft"
	}
	return "unknown"
}
