package core

// Limit is an OFFSET/COUNT pair.
type Limit struct {
	Offset int64
	Count  int64
}

// NewLimit returns a Limit.
func NewLimit(offset, count int64) *Limit {
	return &Limit{Offset: offset, Count: count}
}
