package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/command"
)

// nativeClient is the part of the go-redis API shared by pooled clients and
// pipelines, so one command thunk serves every execution mode.
type nativeClient interface {
	goredis.Cmdable
	Do(ctx context.Context, args ...interface{}) *goredis.Cmd
	Process(ctx context.Context, cmd goredis.Cmder) error
}

var (
	_ nativeClient = (goredis.UniversalClient)(nil)
	_ nativeClient = (goredis.Pipeliner)(nil)
)

// topology binds a client handle to one server deployment for its whole
// lifetime.
type topology interface {
	kind() Topology
	native() goredis.UniversalClient
	// watchConn checks out a dedicated connection for WATCH.
	watchConn() (*goredis.Conn, error)
	// txPipeline opens a MULTI/EXEC pipeline. conn is the connection
	// holding WATCHed keys, or nil.
	txPipeline(conn *goredis.Conn) (goredis.Pipeliner, *goredis.Conn, error)
	// checkKeys rejects multi-key commands the topology cannot route to
	// a single node.
	checkKeys(cmd command.Command, keys []string) error
	// pinsSlot reports whether a transaction is restricted to one hash slot.
	pinsSlot() bool
	sentinel() *goredis.SentinelClient
	close() error
}

func unsupported(t Topology, op, reason string) error {
	return &IllegalStateError{Op: op, Mode: ModeNormal, Topology: t, Reason: reason}
}
