package core

// StreamEntry is one entry of a stream.
type StreamEntry struct {
	ID     string
	Values map[string]interface{}
}

// Stream is a named list of entries, as returned by XREAD.
type Stream struct {
	Name    string
	Entries []StreamEntry
}

// Message is a message received on a subscription.
type Message struct {
	Channel string
	Pattern string
	Payload string
}
