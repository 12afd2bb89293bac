package convert

import (
	"strings"

	"github.com/buession/redis/core"
)

// keywords maps enum values to protocol keywords. Parsing an unrecognised
// keyword yields the zero value of E, which every core enum reserves for
// "unknown".
type keywords[E comparable] struct {
	words  map[E]string
	values map[string]E
}

func newKeywords[E comparable](words map[E]string) keywords[E] {
	values := make(map[string]E, len(words))
	for e, w := range words {
		values[strings.ToUpper(w)] = e
	}
	return keywords[E]{words: words, values: values}
}

func (k keywords[E]) keyword(e E) (string, bool) {
	w, ok := k.words[e]
	return w, ok
}

// optional reports whether e is the zero value, which encodes as no
// keyword, or has a keyword.
func (k keywords[E]) optional(e E) bool {
	var zero E
	if e == zero {
		return true
	}
	_, ok := k.words[e]
	return ok
}

func (k keywords[E]) parse(s string) E {
	return k.values[strings.ToUpper(s)]
}

var (
	typeWords = newKeywords(map[core.Type]string{
		core.TypeNone:   "none",
		core.TypeString: "string",
		core.TypeList:   "list",
		core.TypeSet:    "set",
		core.TypeZSet:   "zset",
		core.TypeHash:   "hash",
		core.TypeStream: "stream",
	})
	encodingWords = newKeywords(map[core.ObjectEncoding]string{
		core.ObjectEncodingRaw:        "raw",
		core.ObjectEncodingInt:        "int",
		core.ObjectEncodingEmbStr:     "embstr",
		core.ObjectEncodingHashTable:  "hashtable",
		core.ObjectEncodingZipList:    "ziplist",
		core.ObjectEncodingListPack:   "listpack",
		core.ObjectEncodingLinkedList: "linkedlist",
		core.ObjectEncodingQuickList:  "quicklist",
		core.ObjectEncodingIntSet:     "intset",
		core.ObjectEncodingSkipList:   "skiplist",
		core.ObjectEncodingStream:     "stream",
	})
	bitOpWords = newKeywords(map[core.BitOperation]string{
		core.BitOperationAnd: "AND",
		core.BitOperationOr:  "OR",
		core.BitOperationXor: "XOR",
		core.BitOperationNot: "NOT",
	})
	bitCountUnitWords = newKeywords(map[core.BitCountUnit]string{
		core.BitCountUnitByte: "BYTE",
		core.BitCountUnitBit:  "BIT",
	})
	overflowWords = newKeywords(map[core.BitFieldOverflow]string{
		core.BitFieldOverflowWrap: "WRAP",
		core.BitFieldOverflowSat:  "SAT",
		core.BitFieldOverflowFail: "FAIL",
	})
	aggregateWords = newKeywords(map[core.Aggregate]string{
		core.AggregateSum: "SUM",
		core.AggregateMin: "MIN",
		core.AggregateMax: "MAX",
	})
	directionWords = newKeywords(map[core.Direction]string{
		core.DirectionLeft:  "LEFT",
		core.DirectionRight: "RIGHT",
	})
	listPositionWords = newKeywords(map[core.ListPosition]string{
		core.ListPositionBefore: "BEFORE",
		core.ListPositionAfter:  "AFTER",
	})
	geoUnitWords = newKeywords(map[core.GeoUnit]string{
		core.GeoUnitMeter:     "m",
		core.GeoUnitKilometer: "km",
		core.GeoUnitMile:      "mi",
		core.GeoUnitFoot:      "ft",
	})
	orderWords = newKeywords(map[core.Order]string{
		core.OrderAsc:  "ASC",
		core.OrderDesc: "DESC",
	})
	expireOptionWords = newKeywords(map[core.ExpireOption]string{
		core.ExpireOptionNX: "NX",
		core.ExpireOptionXX: "XX",
		core.ExpireOptionGT: "GT",
		core.ExpireOptionLT: "LT",
	})
	flushModeWords = newKeywords(map[core.FlushMode]string{
		core.FlushModeSync:  "SYNC",
		core.FlushModeAsync: "ASYNC",
	})
	clientTypeWords = newKeywords(map[core.ClientType]string{
		core.ClientTypeNormal:  "normal",
		core.ClientTypeMaster:  "master",
		core.ClientTypeReplica: "replica",
		core.ClientTypePubSub:  "pubsub",
	})
	failoverWords = newKeywords(map[core.ClusterFailoverOption]string{
		core.ClusterFailoverForce:    "FORCE",
		core.ClusterFailoverTakeover: "TAKEOVER",
	})
	resetWords = newKeywords(map[core.ClusterResetOption]string{
		core.ClusterResetSoft: "SOFT",
		core.ClusterResetHard: "HARD",
	})
	clusterStateWords = newKeywords(map[core.ClusterState]string{
		core.ClusterStateOK:   "ok",
		core.ClusterStateFail: "fail",
	})
	bumpEpochWords = newKeywords(map[core.BumpEpochStatus]string{
		core.BumpEpochBumped: "BUMPED",
		core.BumpEpochStill:  "STILL",
	})
)

// TypeKeyword returns the TYPE keyword of t.
func TypeKeyword(t core.Type) (string, bool) { return typeWords.keyword(t) }

// ParseType parses a TYPE reply; unknown replies yield core.TypeUnknown.
func ParseType(s string) core.Type { return typeWords.parse(s) }

// ValidType reports whether t is TypeUnknown, which filters nothing, or
// encodable.
func ValidType(t core.Type) bool { return typeWords.optional(t) }

// ParseObjectEncoding parses an OBJECT ENCODING reply.
func ParseObjectEncoding(s string) core.ObjectEncoding { return encodingWords.parse(s) }

// ObjectEncodingKeyword returns the keyword of e.
func ObjectEncodingKeyword(e core.ObjectEncoding) (string, bool) { return encodingWords.keyword(e) }

func BitOperationKeyword(op core.BitOperation) (string, bool) { return bitOpWords.keyword(op) }
func ParseBitOperation(s string) core.BitOperation            { return bitOpWords.parse(s) }

func BitCountUnitKeyword(u core.BitCountUnit) (string, bool) { return bitCountUnitWords.keyword(u) }
func ParseBitCountUnit(s string) core.BitCountUnit           { return bitCountUnitWords.parse(s) }
func ValidBitCountUnit(u core.BitCountUnit) bool             { return bitCountUnitWords.optional(u) }

func OverflowKeyword(o core.BitFieldOverflow) (string, bool) { return overflowWords.keyword(o) }
func ParseOverflow(s string) core.BitFieldOverflow           { return overflowWords.parse(s) }

func AggregateKeyword(a core.Aggregate) (string, bool) { return aggregateWords.keyword(a) }
func ParseAggregate(s string) core.Aggregate           { return aggregateWords.parse(s) }
func ValidAggregate(a core.Aggregate) bool             { return aggregateWords.optional(a) }

func DirectionKeyword(d core.Direction) (string, bool) { return directionWords.keyword(d) }
func ParseDirection(s string) core.Direction           { return directionWords.parse(s) }

func ListPositionKeyword(p core.ListPosition) (string, bool) { return listPositionWords.keyword(p) }
func ParseListPosition(s string) core.ListPosition           { return listPositionWords.parse(s) }

func GeoUnitKeyword(u core.GeoUnit) (string, bool) { return geoUnitWords.keyword(u) }
func ParseGeoUnit(s string) core.GeoUnit           { return geoUnitWords.parse(s) }

func OrderKeyword(o core.Order) (string, bool) { return orderWords.keyword(o) }
func ParseOrder(s string) core.Order           { return orderWords.parse(s) }

// ValidOrder reports whether o is unspecified or encodable.
func ValidOrder(o core.Order) bool { return orderWords.optional(o) }

func ExpireOptionKeyword(o core.ExpireOption) (string, bool) { return expireOptionWords.keyword(o) }
func ParseExpireOption(s string) core.ExpireOption           { return expireOptionWords.parse(s) }

// ValidExpireOption reports whether o is ExpireOptionNone or encodable.
func ValidExpireOption(o core.ExpireOption) bool { return expireOptionWords.optional(o) }

func FlushModeKeyword(m core.FlushMode) (string, bool) { return flushModeWords.keyword(m) }
func ParseFlushMode(s string) core.FlushMode           { return flushModeWords.parse(s) }
func ValidFlushMode(m core.FlushMode) bool             { return flushModeWords.optional(m) }

func ClientTypeKeyword(t core.ClientType) (string, bool) { return clientTypeWords.keyword(t) }
func ParseClientType(s string) core.ClientType           { return clientTypeWords.parse(s) }
func ValidClientType(t core.ClientType) bool             { return clientTypeWords.optional(t) }

func FailoverKeyword(o core.ClusterFailoverOption) (string, bool) { return failoverWords.keyword(o) }
func ParseFailover(s string) core.ClusterFailoverOption           { return failoverWords.parse(s) }
func ValidFailover(o core.ClusterFailoverOption) bool             { return failoverWords.optional(o) }

func ResetKeyword(o core.ClusterResetOption) (string, bool) { return resetWords.keyword(o) }
func ParseReset(s string) core.ClusterResetOption           { return resetWords.parse(s) }
func ValidReset(o core.ClusterResetOption) bool             { return resetWords.optional(o) }

func ParseClusterState(s string) core.ClusterState { return clusterStateWords.parse(s) }

func ParseBumpEpochStatus(s string) core.BumpEpochStatus { return bumpEpochWords.parse(s) }
