package redis

import (
	"context"

	"github.com/buession/redis/core"
)

// TransactionCommands switch a client between execution modes.
type TransactionCommands interface {
	Watch(ctx context.Context, keys ...string) (core.Status, error)
	Unwatch(ctx context.Context) (core.Status, error)
	Multi() error
	Exec(ctx context.Context) (*TxResult, error)
	Discard(ctx context.Context) error
}

type PipelineCommands interface {
	OpenPipeline() error
	ClosePipeline(ctx context.Context) ([]interface{}, error)
	DiscardPipeline() error
}

// Commands is the full command set of a Client.
type Commands interface {
	KeyCommands
	StringCommands
	BitmapCommands
	HashCommands
	ListCommands
	SetCommands
	SortedSetCommands
	GeoCommands
	HyperLogLogCommands
	ConnectionCommands
	ServerCommands
	ClusterCommands
	ScriptingCommands
	PubSubCommands
	StreamCommands
	SentinelCommands
	TransactionCommands
	PipelineCommands

	Mode() Mode
	IsPipeline() bool
	IsTransaction() bool
	Close() error
}

var _ Commands = (*Client)(nil)
