package core

import "strconv"

// Tuple is a sorted set member with its score.
type Tuple struct {
	Member string
	Score  float64
}

func (t Tuple) String() string {
	return t.Member + "=" + strconv.FormatFloat(t.Score, 'g', -1, 64)
}

// KeyedTuple is a Tuple popped from one of several keys, e.g. by BZPOPMIN.
type KeyedTuple struct {
	Key string
	Tuple
}

// KeyValue is a field/value pair, e.g. from HRANDFIELD WITHVALUES.
type KeyValue struct {
	Key   string
	Value string
}

// KeyedValues is a list popped from one of several keys, e.g. by BLPOP.
type KeyedValues struct {
	Key    string
	Values []string
}
