// Package command holds the closed set of Redis command identifiers and the
// argument builder used to snapshot the logical parameters of one call.
package command

// Group is the command family a Command belongs to.
type Group uint8

const (
	GroupUnknown Group = iota
	GroupKey
	GroupString
	GroupBitmap
	GroupHash
	GroupList
	GroupSet
	GroupSortedSet
	GroupGeo
	GroupHyperLogLog
	GroupConnection
	GroupServer
	GroupCluster
	GroupScripting
	GroupPubSub
	GroupStream
	GroupSentinel
	GroupTransaction
)

var groupNames = [...]string{
	GroupUnknown:     "unknown",
	GroupKey:         "key",
	GroupString:      "string",
	GroupBitmap:      "bitmap",
	GroupHash:        "hash",
	GroupList:        "list",
	GroupSet:         "set",
	GroupSortedSet:   "sorted_set",
	GroupGeo:         "geo",
	GroupHyperLogLog: "hyperloglog",
	GroupConnection:  "connection",
	GroupServer:      "server",
	GroupCluster:     "cluster",
	GroupScripting:   "scripting",
	GroupPubSub:      "pubsub",
	GroupStream:      "stream",
	GroupSentinel:    "sentinel",
	GroupTransaction: "transaction",
}

func (g Group) String() string {
	if int(g) < len(groupNames) {
		return groupNames[g]
	}
	return groupNames[GroupUnknown]
}

// Command identifies one protocol command, optionally with a subcommand
// (CLIENT KILL, CLUSTER NODES). The set is closed: values are only created
// inside this package.
type Command struct {
	name       string
	subcommand string
	group      Group
	readOnly   bool
}

// Name returns the protocol command name, e.g. "CLIENT".
func (c Command) Name() string { return c.name }

// SubCommand returns the subcommand name or "".
func (c Command) SubCommand() string { return c.subcommand }

func (c Command) Group() Group { return c.group }

// ReadOnly reports whether the command never modifies the keyspace.
func (c Command) ReadOnly() bool { return c.readOnly }

// FullName returns the command name joined with its subcommand, e.g. "CLIENT KILL".
func (c Command) FullName() string {
	if c.subcommand == "" {
		return c.name
	}
	return c.name + " " + c.subcommand
}

func (c Command) String() string {
	return c.FullName()
}

// IsZero reports whether c is the zero Command.
func (c Command) IsZero() bool {
	return c.name == ""
}

func cmd(name string, group Group) Command {
	return Command{name: name, group: group}
}

func ro(name string, group Group) Command {
	return Command{name: name, group: group, readOnly: true}
}

func sub(name, subcommand string, group Group, readOnly bool) Command {
	return Command{name: name, subcommand: subcommand, group: group, readOnly: readOnly}
}
