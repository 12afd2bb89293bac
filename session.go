package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/command"
	"github.com/buession/redis/internal/hashtag"
)

type queued struct {
	cmd     command.Command
	resolve func() (interface{}, error)
}

// session buffers the commands of one pipeline or transaction.
type session struct {
	mode  Mode
	pipe  goredis.Pipeliner
	queue []queued

	// conn is the dedicated connection of a standalone or sentinel
	// transaction; watched is set when it holds WATCHed keys.
	conn    *goredis.Conn
	watched bool

	// Cluster transactions are pinned to the slot of the first queued key.
	pin  bool
	slot int
}

func (s *session) admit(c *Client, cmd command.Command, keys []string) error {
	if !s.pin {
		return nil
	}
	if len(keys) == 0 {
		return c.illegal(cmd.FullName(), "keyless commands cannot join a cluster transaction")
	}
	slot := hashtag.Slot(keys[0])
	if s.slot < 0 {
		s.slot = slot
		return nil
	}
	if slot != s.slot {
		return c.illegal(cmd.FullName(),
			fmt.Sprintf("key %q hashes to slot %d, transaction is pinned to slot %d", keys[0], slot, s.slot))
	}
	return nil
}

func (s *session) discard() {
	s.pipe.Discard()
	s.queue = nil
}

// results decodes the buffered replies in enqueue order. Absent replies
// become nil; a failed command stores its error and the first such error
// is returned as well.
func (s *session) results() ([]interface{}, error) {
	values := make([]interface{}, len(s.queue))
	var first error
	for i, q := range s.queue {
		v, err := q.resolve()
		switch {
		case err == nil:
			values[i] = v
		case errors.Is(err, Nil):
			values[i] = nil
		default:
			values[i] = err
			if first == nil {
				first = err
			}
		}
	}
	return values, first
}

func (c *Client) release(ctx context.Context, conn *goredis.Conn, unwatch bool) {
	if conn == nil {
		return
	}
	if unwatch {
		if err := conn.Process(ctx, goredis.NewStatusCmd(ctx, "unwatch")); err != nil {
			c.log.WithError(err).Warn("Unwatch failed")
		}
	}
	if err := conn.Close(); err != nil {
		c.log.WithError(err).Warn("releasing connection failed")
	}
}
