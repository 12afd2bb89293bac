package redis

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"sync"

	goredis "github.com/redis/go-redis/v9"
)

// Script is a Lua script run by its SHA1 digest, falling back to sending
// the source when the server does not have it cached.
type Script struct {
	src  string
	mu   sync.RWMutex
	hash string
}

func NewScript(src string) *Script {
	h := sha1.New()
	_, _ = io.WriteString(h, src)
	return &Script{
		src:  src,
		hash: hex.EncodeToString(h.Sum(nil)),
	}
}

func (s *Script) Hash() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hash
}

// Load caches the script on the server and keeps the digest it returns.
func (s *Script) Load(ctx context.Context, c ScriptingCommands) (string, error) {
	hash, err := c.ScriptLoad(ctx, s.src)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.hash = hash
	s.mu.Unlock()
	return hash, nil
}

func (s *Script) Exists(ctx context.Context, c ScriptingCommands) (bool, error) {
	exists, err := c.ScriptExists(ctx, s.Hash())
	if err != nil || len(exists) == 0 {
		return false, err
	}
	return exists[0], nil
}

func (s *Script) Eval(ctx context.Context, c ScriptingCommands, keys []string, params ...interface{}) (interface{}, error) {
	return c.Eval(ctx, s.src, keys, params...)
}

func (s *Script) EvalSha(ctx context.Context, c ScriptingCommands, keys []string, params ...interface{}) (interface{}, error) {
	return c.EvalSha(ctx, s.Hash(), keys, params...)
}

// Run optimistically uses EVALSHA to run the script. If the script does not
// exist it is retried using EVAL. Outside ModeNormal the reply is not known
// until the pipeline or transaction completes, so EVAL is queued directly.
func (s *Script) Run(ctx context.Context, c *Client, keys []string, params ...interface{}) (interface{}, error) {
	if c.Mode() != ModeNormal {
		return s.Eval(ctx, c, keys, params...)
	}
	v, err := s.EvalSha(ctx, c, keys, params...)
	if isNoScript(err) {
		return s.Eval(ctx, c, keys, params...)
	}
	return v, err
}

// RunRO is Run for read-only scripts, using EVALSHA_RO and EVAL_RO.
func (s *Script) RunRO(ctx context.Context, c *Client, keys []string, params ...interface{}) (interface{}, error) {
	if c.Mode() != ModeNormal {
		return c.EvalRO(ctx, s.src, keys, params...)
	}
	v, err := c.EvalShaRO(ctx, s.Hash(), keys, params...)
	if isNoScript(err) {
		return c.EvalRO(ctx, s.src, keys, params...)
	}
	return v, err
}

func isNoScript(err error) bool {
	var redisErr goredis.Error
	if !errors.As(err, &redisErr) {
		return false
	}
	return strings.HasPrefix(redisErr.Error(), "NOSCRIPT")
}
