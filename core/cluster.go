package core

// SlotRange is an inclusive range of hash slots.
type SlotRange struct {
	Start int
	End   int
}

// ClusterSlotNode is a node serving a slot range.
type ClusterSlotNode struct {
	ID   string
	Addr string
}

// ClusterSlot is one entry of CLUSTER SLOTS. The first node is the master.
type ClusterSlot struct {
	SlotRange
	Nodes []ClusterSlotNode
}

// ClusterNode is one line of CLUSTER NODES.
type ClusterNode struct {
	ID           string
	Addr         string
	BusPort      int
	Hostname     string
	Flags        []string
	MasterID     string
	PingSent     int64
	PongReceived int64
	ConfigEpoch  int64
	Connected    bool
	Slots        []SlotRange
}

// HasFlag reports whether the node carries flag, e.g. "myself" or "master".
func (n ClusterNode) HasFlag(flag string) bool {
	for _, f := range n.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// ClusterState is the cluster_state field of CLUSTER INFO.
type ClusterState uint8

const (
	ClusterStateUnknown ClusterState = iota
	ClusterStateOK
	ClusterStateFail
)

// ClusterInfo is the parsed reply of CLUSTER INFO. Fields not modelled here
// are kept in Extra.
type ClusterInfo struct {
	State                 ClusterState
	SlotsAssigned         int64
	SlotsOK               int64
	SlotsPFail            int64
	SlotsFail             int64
	KnownNodes            int64
	Size                  int64
	CurrentEpoch          int64
	MyEpoch               int64
	StatsMessagesSent     int64
	StatsMessagesReceived int64
	Extra                 map[string]string
}

// BumpEpochStatus tells whether CLUSTER BUMPEPOCH changed the epoch.
type BumpEpochStatus uint8

const (
	BumpEpochUnknown BumpEpochStatus = iota
	BumpEpochBumped
	BumpEpochStill
)

// BumpEpoch is the reply of CLUSTER BUMPEPOCH.
type BumpEpoch struct {
	Status BumpEpochStatus
	Epoch  int64
}
