package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/args"
	"github.com/buession/redis/command"
	"github.com/buession/redis/core"
	"github.com/buession/redis/internal/convert"
)

// ConnectionCommands. SELECT and CLIENT SETNAME are not exposed: a pooled
// connection would keep the state, so the database and client name are
// set through the options instead.
type ConnectionCommands interface {
	Ping(ctx context.Context) (string, error)
	Echo(ctx context.Context, message string) (string, error)
	ClientID(ctx context.Context) (int64, error)
	ClientGetName(ctx context.Context) (string, error)
	ClientList(ctx context.Context) ([]core.ClientInfo, error)
	ClientKill(ctx context.Context, arg args.ClientKillArgument) (int64, error)
	ClientPause(ctx context.Context, timeout time.Duration) (core.Status, error)
	ClientUnpause(ctx context.Context) (core.Status, error)
	ClientUnblock(ctx context.Context, id int64) (core.Status, error)
}

var _ ConnectionCommands = (*Client)(nil)

func (c *Client) Ping(ctx context.Context) (string, error) {
	return execute(ctx, c, command.Ping, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return rc.Ping(ctx)
	}, statusValue)
}

func (c *Client) Echo(ctx context.Context, message string) (string, error) {
	params := command.NewBuilder().Add("message", message).Build()
	return execute(ctx, c, command.Echo, params, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.Echo(ctx, message)
	}, stringValue)
}

func (c *Client) ClientID(ctx context.Context) (int64, error) {
	return execute(ctx, c, command.ClientID, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.ClientID(ctx)
	}, int64Value)
}

func (c *Client) ClientGetName(ctx context.Context) (string, error) {
	return execute(ctx, c, command.ClientGetName, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.ClientGetName(ctx)
	}, stringValue)
}

func (c *Client) ClientList(ctx context.Context) ([]core.ClientInfo, error) {
	return execute(ctx, c, command.ClientList, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.ClientList(ctx)
	}, func(cmd *goredis.StringCmd) ([]core.ClientInfo, error) {
		return convert.ParseClientList(cmd.Val())
	})
}

// ClientKill closes the connections matching every filter of arg and
// returns how many were closed.
func (c *Client) ClientKill(ctx context.Context, arg args.ClientKillArgument) (int64, error) {
	if err := checkArgument("type", arg.Type, convert.ValidClientType(arg.Type)); err != nil {
		return 0, err
	}
	filters := convert.ClientKillFilters(arg)
	if len(filters) == 0 {
		return 0, &ArgumentError{Name: "filters", Value: arg}
	}
	params := command.NewBuilder().Flatten(arg).Build()
	return execute(ctx, c, command.ClientKill, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.ClientKillByFilter(ctx, filters...)
	}, int64Value)
}

func (c *Client) ClientPause(ctx context.Context, timeout time.Duration) (core.Status, error) {
	params := command.NewBuilder().Add("timeout", timeout).Build()
	return execute(ctx, c, command.ClientPause, params, func(ctx context.Context, rc nativeClient) *goredis.BoolCmd {
		return rc.ClientPause(ctx, timeout)
	}, boolStatus)
}

func (c *Client) ClientUnpause(ctx context.Context) (core.Status, error) {
	return execute(ctx, c, command.ClientUnpause, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.BoolCmd {
		return rc.ClientUnpause(ctx)
	}, boolStatus)
}

// ClientUnblock unblocks a client blocked in a blocking command.
func (c *Client) ClientUnblock(ctx context.Context, id int64) (core.Status, error) {
	params := command.NewBuilder().Add("id", id).Build()
	return execute(ctx, c, command.ClientUnblock, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.ClientUnblock(ctx, id)
	}, countStatus)
}
