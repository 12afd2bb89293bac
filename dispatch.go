package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/buession/redis/command"
)

// execute runs one command in the client's current mode. call issues the
// command on a go-redis client or pipeline; decode converts its reply.
func execute[C goredis.Cmder, T any](
	ctx context.Context, c *Client, cmd command.Command, params command.Arguments,
	call func(context.Context, nativeClient) C, decode func(C) (T, error),
) (T, error) {
	return dispatch(ctx, c, cmd, params, call, decode, false)
}

// executeNilable is execute for commands whose nil reply is a regular
// outcome handled by decode, such as SET with NX or XX.
func executeNilable[C goredis.Cmder, T any](
	ctx context.Context, c *Client, cmd command.Command, params command.Arguments,
	call func(context.Context, nativeClient) C, decode func(C) (T, error),
) (T, error) {
	return dispatch(ctx, c, cmd, params, call, decode, true)
}

func dispatch[C goredis.Cmder, T any](
	ctx context.Context, c *Client, cmd command.Command, params command.Arguments,
	call func(context.Context, nativeClient) C, decode func(C) (T, error), nilable bool,
) (T, error) {
	var zero T
	if err := c.topo.checkKeys(cmd, params.Keys()); err != nil {
		return zero, err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return zero, ErrClosed
	}
	mode := c.mode
	c.logDispatch(cmd, mode)

	if mode == ModeNormal {
		c.mu.Unlock()
		ctx, span := c.startSpan(ctx, cmd.FullName(), mode)
		v, err := finish(cmd, params, call(ctx, c.topo.native()), decode, nilable)
		endSpan(span, err)
		return v, err
	}
	defer c.mu.Unlock()

	ctx, span := c.startSpan(ctx, cmd.FullName(), mode)
	sess := c.sess
	if err := sess.admit(c, cmd, params.Keys()); err != nil {
		endSpan(span, err)
		return zero, err
	}
	reply := call(ctx, sess.pipe)
	sess.queue = append(sess.queue, queued{
		cmd: cmd,
		resolve: func() (interface{}, error) {
			v, err := finish(cmd, params, reply, decode, nilable)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	})
	endSpan(span, nil)
	return zero, nil
}

// finish tags native failures with the command and decodes the reply.
func finish[C goredis.Cmder, T any](
	cmd command.Command, params command.Arguments, reply C, decode func(C) (T, error), nilable bool,
) (T, error) {
	var zero T
	if err := reply.Err(); err != nil {
		if err != goredis.Nil {
			return zero, &CommandError{Command: cmd, Args: params, Err: err}
		}
		if !nilable {
			return zero, Nil
		}
	}
	v, err := decode(reply)
	if err != nil {
		if err == goredis.Nil {
			return zero, Nil
		}
		return zero, &DecodeError{Command: cmd, Err: err}
	}
	return v, nil
}

// executeSentinel runs a sentinel admin command. Those commands bypass
// pipelines and transactions.
func executeSentinel[C goredis.Cmder, T any](
	ctx context.Context, c *Client, cmd command.Command, params command.Arguments,
	call func(context.Context, *goredis.SentinelClient) C, decode func(C) (T, error),
) (T, error) {
	var zero T
	sentinel := c.topo.sentinel()
	c.mu.Lock()
	var err error
	switch {
	case c.closed:
		err = ErrClosed
	case sentinel == nil:
		err = c.illegal(cmd.FullName(), "sentinel commands need a sentinel topology")
	case c.mode != ModeNormal:
		err = c.illegal(cmd.FullName(), "sentinel commands cannot be pipelined")
	}
	c.mu.Unlock()
	if err != nil {
		return zero, err
	}

	ctx, span := c.startSpan(ctx, cmd.FullName(), ModeNormal)
	v, err := finish(cmd, params, call(ctx, sentinel), decode, false)
	endSpan(span, err)
	return v, err
}

func (c *Client) logDispatch(cmd command.Command, mode Mode) {
	c.log.WithFields(logrus.Fields{
		"command": cmd.FullName(),
		"mode":    mode.String(),
	}).Debug("dispatch")
}
