package redis

import (
	"context"
	"sync"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/command"
	"github.com/buession/redis/core"
	"github.com/buession/redis/internal/convert"
)

type PubSubCommands interface {
	Publish(ctx context.Context, channel string, message interface{}) (int64, error)
	PubSubChannels(ctx context.Context, pattern string) ([]string, error)
	PubSubNumSub(ctx context.Context, channels ...string) (map[string]int64, error)
	PubSubNumPat(ctx context.Context) (int64, error)
	Subscribe(ctx context.Context, channels ...string) (*Subscription, error)
	PSubscribe(ctx context.Context, patterns ...string) (*Subscription, error)
}

var _ PubSubCommands = (*Client)(nil)

// Publish posts message to channel and returns the number of clients that
// received it.
func (c *Client) Publish(ctx context.Context, channel string, message interface{}) (int64, error) {
	params := command.NewBuilder().Add("channel", channel).Add("message", message).Build()
	return execute(ctx, c, command.Publish, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.Publish(ctx, channel, message)
	}, int64Value)
}

func (c *Client) PubSubChannels(ctx context.Context, pattern string) ([]string, error) {
	params := command.NewBuilder().Add("pattern", pattern).Build()
	return execute(ctx, c, command.PubSubChannels, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.PubSubChannels(ctx, pattern)
	}, stringsValue)
}

func (c *Client) PubSubNumSub(ctx context.Context, channels ...string) (map[string]int64, error) {
	params := command.NewBuilder().Add("channels", channels).Build()
	return execute(ctx, c, command.PubSubNumSub, params, func(ctx context.Context, rc nativeClient) *goredis.MapStringIntCmd {
		return rc.PubSubNumSub(ctx, channels...)
	}, func(cmd *goredis.MapStringIntCmd) (map[string]int64, error) {
		return cmd.Val(), nil
	})
}

func (c *Client) PubSubNumPat(ctx context.Context) (int64, error) {
	return execute(ctx, c, command.PubSubNumPat, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.PubSubNumPat(ctx)
	}, int64Value)
}

// Subscribe listens for messages published to channels. The subscription
// holds its own connection until it is closed.
func (c *Client) Subscribe(ctx context.Context, channels ...string) (*Subscription, error) {
	return c.subscribe(ctx, command.Subscribe, channels, func(ctx context.Context) *goredis.PubSub {
		return c.topo.native().Subscribe(ctx, channels...)
	})
}

// PSubscribe listens for messages published to channels matching patterns.
func (c *Client) PSubscribe(ctx context.Context, patterns ...string) (*Subscription, error) {
	return c.subscribe(ctx, command.PSubscribe, patterns, func(ctx context.Context) *goredis.PubSub {
		return c.topo.native().PSubscribe(ctx, patterns...)
	})
}

func (c *Client) subscribe(
	ctx context.Context, cmd command.Command, names []string, open func(context.Context) *goredis.PubSub,
) (*Subscription, error) {
	if len(names) == 0 {
		return nil, &ArgumentError{Name: "channels", Value: names}
	}
	if err := c.requireNormal(cmd.FullName(), "subscriptions cannot be pipelined"); err != nil {
		return nil, err
	}
	c.logDispatch(cmd, ModeNormal)

	ctx, span := c.startSpan(ctx, cmd.FullName(), ModeNormal)
	ps := open(ctx)
	// Wait for the server to confirm the subscription.
	_, err := ps.Receive(ctx)
	if err != nil {
		_ = ps.Close()
		err = &CommandError{Command: cmd, Args: command.NewBuilder().Add("channels", names).Build(), Err: err}
	}
	endSpan(span, err)
	if err != nil {
		return nil, err
	}
	return &Subscription{ps: ps, done: make(chan struct{})}, nil
}

// Subscription is an open SUBSCRIBE or PSUBSCRIBE connection.
type Subscription struct {
	ps *goredis.PubSub

	once      sync.Once
	ch        <-chan core.Message
	done      chan struct{}
	closeOnce sync.Once
}

// Receive blocks until the next message arrives. Subscription confirmations
// and pongs are skipped.
func (s *Subscription) Receive(ctx context.Context) (core.Message, error) {
	msg, err := s.ps.ReceiveMessage(ctx)
	if err != nil {
		return core.Message{}, err
	}
	return convert.MessageFromNative(msg), nil
}

// Channel returns a channel delivering messages until the subscription is
// closed. Receive must not be used once Channel has been called.
func (s *Subscription) Channel() <-chan core.Message {
	s.once.Do(func() {
		ch := make(chan core.Message, 100)
		go func() {
			defer close(ch)
			for msg := range s.ps.Channel() {
				select {
				case <-s.done:
					return
				default:
				}
				select {
				case ch <- convert.MessageFromNative(msg):
				case <-s.done:
					return
				}
			}
		}()
		s.ch = ch
	})
	return s.ch
}

func (s *Subscription) Subscribe(ctx context.Context, channels ...string) error {
	return s.ps.Subscribe(ctx, channels...)
}

func (s *Subscription) PSubscribe(ctx context.Context, patterns ...string) error {
	return s.ps.PSubscribe(ctx, patterns...)
}

// Unsubscribe stops listening to channels, or to every channel when none
// are given.
func (s *Subscription) Unsubscribe(ctx context.Context, channels ...string) error {
	return s.ps.Unsubscribe(ctx, channels...)
}

func (s *Subscription) PUnsubscribe(ctx context.Context, patterns ...string) error {
	return s.ps.PUnsubscribe(ctx, patterns...)
}

// Close unsubscribes from everything and releases the connection. A
// goroutine feeding Channel stops even if nobody reads it.
func (s *Subscription) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return s.ps.Close()
}
