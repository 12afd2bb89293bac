package core

// Type is the data type stored at a key.
type Type uint8

const (
	TypeUnknown Type = iota
	TypeNone
	TypeString
	TypeList
	TypeSet
	TypeZSet
	TypeHash
	TypeStream
)

var typeNames = [...]string{"unknown", "none", "string", "list", "set", "zset", "hash", "stream"}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return typeNames[TypeUnknown]
}

// ObjectEncoding is the internal representation reported by OBJECT ENCODING.
type ObjectEncoding uint8

const (
	ObjectEncodingUnknown ObjectEncoding = iota
	ObjectEncodingRaw
	ObjectEncodingInt
	ObjectEncodingEmbStr
	ObjectEncodingHashTable
	ObjectEncodingZipList
	ObjectEncodingListPack
	ObjectEncodingLinkedList
	ObjectEncodingQuickList
	ObjectEncodingIntSet
	ObjectEncodingSkipList
	ObjectEncodingStream
)

var objectEncodingNames = [...]string{
	"unknown", "raw", "int", "embstr", "hashtable", "ziplist", "listpack",
	"linkedlist", "quicklist", "intset", "skiplist", "stream",
}

func (e ObjectEncoding) String() string {
	if int(e) < len(objectEncodingNames) {
		return objectEncodingNames[e]
	}
	return objectEncodingNames[ObjectEncodingUnknown]
}

// BitOperation is the operator of BITOP.
type BitOperation uint8

const (
	BitOperationUnknown BitOperation = iota
	BitOperationAnd
	BitOperationOr
	BitOperationXor
	BitOperationNot
)

// BitCountUnit selects whether BITCOUNT/BITPOS ranges count bytes or bits.
type BitCountUnit uint8

const (
	BitCountUnitDefault BitCountUnit = iota
	BitCountUnitByte
	BitCountUnitBit
)

// BitFieldOverflow is the overflow policy of BITFIELD.
type BitFieldOverflow uint8

const (
	BitFieldOverflowUnknown BitFieldOverflow = iota
	BitFieldOverflowWrap
	BitFieldOverflowSat
	BitFieldOverflowFail
)

// Aggregate is the score aggregation of ZUNION/ZINTER.
type Aggregate uint8

const (
	AggregateDefault Aggregate = iota
	AggregateSum
	AggregateMin
	AggregateMax
)

// Direction is the end of a list used by LMOVE and BLMOVE.
type Direction uint8

const (
	DirectionUnknown Direction = iota
	DirectionLeft
	DirectionRight
)

// ListPosition places a LINSERT element relative to its pivot.
type ListPosition uint8

const (
	ListPositionUnknown ListPosition = iota
	ListPositionBefore
	ListPositionAfter
)

// Order is a sort direction.
type Order uint8

const (
	OrderUnspecified Order = iota
	OrderAsc
	OrderDesc
)

func (o Order) String() string {
	switch o {
	case OrderAsc:
		return "ASC"
	case OrderDesc:
		return "DESC"
	}
	return ""
}

// ExpireOption is the condition flag of EXPIRE and PEXPIRE.
type ExpireOption uint8

const (
	ExpireOptionNone ExpireOption = iota
	ExpireOptionNX
	ExpireOptionXX
	ExpireOptionGT
	ExpireOptionLT
)

// FlushMode selects synchronous or asynchronous FLUSHALL/FLUSHDB.
type FlushMode uint8

const (
	FlushModeDefault FlushMode = iota
	FlushModeSync
	FlushModeAsync
)

// ClientType is the connection class filter of CLIENT KILL and CLIENT LIST.
type ClientType uint8

const (
	ClientTypeUnknown ClientType = iota
	ClientTypeNormal
	ClientTypeMaster
	ClientTypeReplica
	ClientTypePubSub
)

// ClusterFailoverOption is the mode of CLUSTER FAILOVER.
type ClusterFailoverOption uint8

const (
	ClusterFailoverDefault ClusterFailoverOption = iota
	ClusterFailoverForce
	ClusterFailoverTakeover
)

// ClusterResetOption is the mode of CLUSTER RESET.
type ClusterResetOption uint8

const (
	ClusterResetDefault ClusterResetOption = iota
	ClusterResetSoft
	ClusterResetHard
)
