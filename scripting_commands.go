package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/command"
	"github.com/buession/redis/core"
	"github.com/buession/redis/internal/convert"
)

type ScriptingCommands interface {
	Eval(ctx context.Context, script string, keys []string, params ...interface{}) (interface{}, error)
	EvalSha(ctx context.Context, sha1 string, keys []string, params ...interface{}) (interface{}, error)
	EvalRO(ctx context.Context, script string, keys []string, params ...interface{}) (interface{}, error)
	EvalShaRO(ctx context.Context, sha1 string, keys []string, params ...interface{}) (interface{}, error)
	ScriptExists(ctx context.Context, hashes ...string) ([]bool, error)
	ScriptFlush(ctx context.Context, mode core.FlushMode) (core.Status, error)
	ScriptKill(ctx context.Context) (core.Status, error)
	ScriptLoad(ctx context.Context, script string) (string, error)
}

var _ ScriptingCommands = (*Client)(nil)

// scriptReply returns the raw script result. A script returning nil yields
// a nil value and no error.
func scriptReply(cmd *goredis.Cmd) (interface{}, error) {
	if cmd.Err() == goredis.Nil {
		return nil, nil
	}
	return cmd.Result()
}

func scriptParams(name, script string, keys []string, params []interface{}) command.Arguments {
	return command.NewBuilder().
		Add(name, script).
		Keys("keys", keys...).
		Add("args", params).
		Build()
}

func (c *Client) Eval(ctx context.Context, script string, keys []string, params ...interface{}) (interface{}, error) {
	return executeNilable(ctx, c, command.Eval, scriptParams("script", script, keys, params), func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		return rc.Eval(ctx, script, keys, params...)
	}, scriptReply)
}

func (c *Client) EvalSha(ctx context.Context, sha1 string, keys []string, params ...interface{}) (interface{}, error) {
	return executeNilable(ctx, c, command.EvalSha, scriptParams("sha1", sha1, keys, params), func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		return rc.EvalSha(ctx, sha1, keys, params...)
	}, scriptReply)
}

// EvalRO runs a read-only script. Requires Redis 7.
func (c *Client) EvalRO(ctx context.Context, script string, keys []string, params ...interface{}) (interface{}, error) {
	return executeNilable(ctx, c, command.EvalRO, scriptParams("script", script, keys, params), func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		return rc.EvalRO(ctx, script, keys, params...)
	}, scriptReply)
}

func (c *Client) EvalShaRO(ctx context.Context, sha1 string, keys []string, params ...interface{}) (interface{}, error) {
	return executeNilable(ctx, c, command.EvalShaRO, scriptParams("sha1", sha1, keys, params), func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		return rc.EvalShaRO(ctx, sha1, keys, params...)
	}, scriptReply)
}

func (c *Client) ScriptExists(ctx context.Context, hashes ...string) ([]bool, error) {
	params := command.NewBuilder().Add("hashes", hashes).Build()
	return execute(ctx, c, command.ScriptExists, params, func(ctx context.Context, rc nativeClient) *goredis.BoolSliceCmd {
		return rc.ScriptExists(ctx, hashes...)
	}, boolsValue)
}

func (c *Client) ScriptFlush(ctx context.Context, mode core.FlushMode) (core.Status, error) {
	if err := checkArgument("mode", mode, convert.ValidFlushMode(mode)); err != nil {
		return core.StatusFailure, err
	}
	return execute(ctx, c, command.ScriptFlush, flushParams(mode), func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return flushCommand(ctx, rc, []interface{}{"script", "flush"}, mode)
	}, okStatus)
}

func (c *Client) ScriptKill(ctx context.Context) (core.Status, error) {
	return execute(ctx, c, command.ScriptKill, command.Arguments{}, func(ctx context.Context, rc nativeClient) *goredis.StatusCmd {
		return rc.ScriptKill(ctx)
	}, okStatus)
}

// ScriptLoad caches script on the server and returns its SHA1 digest.
func (c *Client) ScriptLoad(ctx context.Context, script string) (string, error) {
	params := command.NewBuilder().Add("script", script).Build()
	return execute(ctx, c, command.ScriptLoad, params, func(ctx context.Context, rc nativeClient) *goredis.StringCmd {
		return rc.ScriptLoad(ctx, script)
	}, stringValue)
}
