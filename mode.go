package redis

// Mode is the execution mode of a client handle.
type Mode uint8

const (
	// ModeNormal executes each command immediately.
	ModeNormal Mode = iota
	// ModePipeline buffers commands until ClosePipeline.
	ModePipeline
	// ModeTransaction buffers commands between Multi and Exec.
	ModeTransaction
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModePipeline:
		return "pipeline"
	case ModeTransaction:
		return "transaction"
	}
	return "unknown"
}

// Topology is the server deployment a client is bound to.
type Topology uint8

const (
	TopologyUnknown Topology = iota
	Standalone
	Sentinel
	Cluster
	Sharded
)

func (t Topology) String() string {
	switch t {
	case Standalone:
		return "standalone"
	case Sentinel:
		return "sentinel"
	case Cluster:
		return "cluster"
	case Sharded:
		return "sharded"
	}
	return "unknown"
}
