// Package core defines the domain value types returned by and passed to the
// client: statuses, geo points, sorted set tuples, scan pages, server and
// cluster descriptions, and the enums that model protocol keywords.
//
// Every enum reserves its zero value for "unknown or unset". Parsing a
// protocol keyword that is not recognised yields that zero value rather than
// a default variant.
package core
