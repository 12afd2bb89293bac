package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/command"
	"github.com/buession/redis/core"
)

// TxResult is the outcome of EXEC. Aborted is set when a WATCHed key was
// modified and the server discarded the transaction; Values is empty then.
type TxResult struct {
	Aborted bool
	Values  []interface{}
}

// Watch marks keys to be watched for conditional execution of the next
// transaction. It is only legal in ModeNormal and is unsupported on
// cluster and sharded topologies.
func (c *Client) Watch(ctx context.Context, keys ...string) (core.Status, error) {
	params := command.NewBuilder().Keys("keys", keys...).Build()
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.closed:
		return core.StatusFailure, ErrClosed
	case c.mode != ModeNormal:
		return core.StatusFailure, c.illegal(command.Watch.FullName(), "WATCH must be issued before MULTI")
	case len(keys) == 0:
		return core.StatusFailure, &ArgumentError{Name: "keys", Value: keys}
	}

	conn := c.watch
	if conn == nil {
		var err error
		if conn, err = c.topo.watchConn(); err != nil {
			return core.StatusFailure, err
		}
	}
	cmdArgs := make([]interface{}, 0, len(keys)+1)
	cmdArgs = append(cmdArgs, "watch")
	for _, k := range keys {
		cmdArgs = append(cmdArgs, k)
	}
	reply := goredis.NewStatusCmd(ctx, cmdArgs...)
	if err := c.processConn(ctx, conn, command.Watch, params, reply); err != nil {
		if c.watch == nil {
			c.release(ctx, conn, false)
		}
		return core.StatusFailure, err
	}
	c.watch = conn
	return core.StatusSuccess, nil
}

// Unwatch forgets all watched keys and releases the watching connection.
func (c *Client) Unwatch(ctx context.Context) (core.Status, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != ModeNormal {
		return core.StatusFailure, c.illegal(command.Unwatch.FullName(), "UNWATCH outside a transaction only")
	}
	conn := c.watch
	if conn == nil {
		return core.StatusSuccess, nil
	}
	c.watch = nil
	defer c.release(ctx, conn, false)
	reply := goredis.NewStatusCmd(ctx, "unwatch")
	if err := c.processConn(ctx, conn, command.Unwatch, command.Arguments{}, reply); err != nil {
		return core.StatusFailure, err
	}
	return core.StatusSuccess, nil
}

// Multi switches the client into ModeTransaction. Nothing is sent until
// Exec; commands issued meanwhile return zero values.
func (c *Client) Multi() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.closed:
		return ErrClosed
	case c.mode != ModeNormal:
		return c.illegal(command.Multi.FullName(), "MULTI can only be issued in normal mode")
	}
	pipe, conn, err := c.topo.txPipeline(c.watch)
	if err != nil {
		return err
	}
	c.sess = &session{
		mode:    ModeTransaction,
		pipe:    pipe,
		conn:    conn,
		watched: c.watch != nil,
		pin:     c.topo.pinsSlot(),
		slot:    -1,
	}
	c.watch = nil
	c.mode = ModeTransaction
	c.log.Debug("transaction opened")
	return nil
}

// Exec sends the queued commands wrapped in MULTI/EXEC and returns their
// decoded replies in order. A transaction aborted by WATCH is reported
// through TxResult.Aborted, not as an error.
func (c *Client) Exec(ctx context.Context) (*TxResult, error) {
	c.mu.Lock()
	if c.mode != ModeTransaction {
		err := c.illegal(command.Exec.FullName(), "no transaction is open")
		c.mu.Unlock()
		return nil, err
	}
	sess := c.sess
	c.sess, c.mode = nil, ModeNormal
	c.mu.Unlock()

	if len(sess.queue) == 0 {
		c.release(ctx, sess.conn, sess.watched)
		return &TxResult{Values: []interface{}{}}, nil
	}
	defer c.release(ctx, sess.conn, false)

	ctx, span := c.startSpan(ctx, command.Exec.FullName(), ModeTransaction)
	_, err := sess.pipe.Exec(ctx)
	if errors.Is(err, goredis.TxFailedErr) {
		endSpan(span, nil)
		c.log.Debug("transaction aborted")
		return &TxResult{Aborted: true, Values: []interface{}{}}, nil
	}
	values, first := sess.results()
	if first == nil && err != nil && err != Nil {
		first = &CommandError{Command: command.Exec, Err: err}
	}
	endSpan(span, first)
	return &TxResult{Values: values}, first
}

// Discard drops the queued commands and returns to ModeNormal.
func (c *Client) Discard(ctx context.Context) error {
	c.mu.Lock()
	if c.mode != ModeTransaction {
		err := c.illegal(command.Discard.FullName(), "no transaction is open")
		c.mu.Unlock()
		return err
	}
	sess := c.sess
	c.sess, c.mode = nil, ModeNormal
	c.mu.Unlock()

	sess.discard()
	c.release(ctx, sess.conn, sess.watched)
	c.log.Debug("transaction discarded")
	return nil
}

// Transaction watches keys, runs fn inside MULTI and executes it. The
// transaction is discarded when fn fails or panics.
func (c *Client) Transaction(ctx context.Context, fn func(*Client) error, keys ...string) (*TxResult, error) {
	if len(keys) > 0 {
		if _, err := c.Watch(ctx, keys...); err != nil {
			return nil, err
		}
	}
	if err := c.Multi(); err != nil {
		if len(keys) > 0 {
			_, _ = c.Unwatch(ctx)
		}
		return nil, err
	}
	done := false
	defer func() {
		if !done {
			_ = c.Discard(ctx)
		}
	}()
	if err := fn(c); err != nil {
		return nil, err
	}
	done = true
	return c.Exec(ctx)
}

func (c *Client) processConn(
	ctx context.Context, conn *goredis.Conn, cmd command.Command, params command.Arguments, reply goredis.Cmder,
) error {
	ctx, span := c.startSpan(ctx, cmd.FullName(), ModeNormal)
	err := conn.Process(ctx, reply)
	if err != nil {
		err = &CommandError{Command: cmd, Args: params, Err: err}
	}
	endSpan(span, err)
	return err
}
