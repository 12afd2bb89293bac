package redis

import (
	"context"
)

// OpenPipeline switches the client into ModePipeline. Subsequent commands
// are buffered and return zero values until ClosePipeline.
func (c *Client) OpenPipeline() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.closed:
		return ErrClosed
	case c.mode != ModeNormal:
		return c.illegal("pipeline", "a pipeline can only be opened in normal mode")
	case c.watch != nil:
		return c.illegal("pipeline", "keys are watched, call Multi or Unwatch first")
	}
	c.sess = &session{mode: ModePipeline, pipe: c.topo.native().Pipeline(), slot: -1}
	c.mode = ModePipeline
	c.log.Debug("pipeline opened")
	return nil
}

// ClosePipeline sends the buffered commands and returns their decoded
// replies in the order they were issued. An element is nil for an absent
// reply and the command's error for a failed command; the first such
// error is also returned. The client is back in ModeNormal afterwards.
func (c *Client) ClosePipeline(ctx context.Context) ([]interface{}, error) {
	c.mu.Lock()
	if c.mode != ModePipeline {
		err := c.illegal("sync", "no pipeline is open")
		c.mu.Unlock()
		return nil, err
	}
	sess := c.sess
	c.sess, c.mode = nil, ModeNormal
	c.mu.Unlock()

	if len(sess.queue) == 0 {
		return []interface{}{}, nil
	}
	ctx, span := c.startSpan(ctx, "pipeline", ModePipeline)
	_, err := sess.pipe.Exec(ctx)
	values, first := sess.results()
	if first == nil && err != nil && err != Nil {
		first = &CommandError{Command: sess.queue[0].cmd, Err: err}
	}
	endSpan(span, first)
	c.log.WithField("commands", len(values)).Debug("pipeline closed")
	return values, first
}

// DiscardPipeline drops the buffered commands without sending them.
func (c *Client) DiscardPipeline() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != ModePipeline {
		return c.illegal("discard pipeline", "no pipeline is open")
	}
	c.sess.discard()
	c.sess, c.mode = nil, ModeNormal
	return nil
}

// Pipelined runs fn in pipeline mode and returns the replies of the
// commands it issued. The pipeline is closed on every exit path of fn.
func (c *Client) Pipelined(ctx context.Context, fn func(*Client) error) ([]interface{}, error) {
	if err := c.OpenPipeline(); err != nil {
		return nil, err
	}
	done := false
	defer func() {
		if !done {
			_ = c.DiscardPipeline()
		}
	}()
	if err := fn(c); err != nil {
		return nil, err
	}
	done = true
	return c.ClosePipeline(ctx)
}
