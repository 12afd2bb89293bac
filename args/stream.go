package args

import "time"

// XAddArgument holds the options of XADD. An empty ID lets the server
// generate one.
type XAddArgument struct {
	ID         string
	NoMkStream bool
	MaxLen     int64
	MinID      string
	// Approximate trims with ~ instead of =.
	Approximate bool
	Limit       int64
}

func (a XAddArgument) Flatten(add func(string, interface{})) {
	if a.NoMkStream {
		add("nomkstream", true)
	}
	if a.MaxLen > 0 {
		add("maxlen", a.MaxLen)
	}
	if a.MinID != "" {
		add("minid", a.MinID)
	}
	if a.Approximate {
		add("approximate", true)
	}
	if a.Limit > 0 {
		add("limit", a.Limit)
	}
	if a.ID != "" {
		add("id", a.ID)
	}
}

// XReadArgument holds the options of XREAD and XREADGROUP. A zero Block
// does not block.
type XReadArgument struct {
	Count int64
	Block time.Duration
	// NoAck only applies to XREADGROUP.
	NoAck bool
}

func (a XReadArgument) Flatten(add func(string, interface{})) {
	if a.Count > 0 {
		add("count", a.Count)
	}
	if a.Block > 0 {
		add("block", a.Block)
	}
	if a.NoAck {
		add("noack", true)
	}
}
