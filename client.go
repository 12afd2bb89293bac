package redis

import (
	"context"
	"sync"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

// Client is a façade over one Redis topology. Every command method runs
// in the handle's current execution mode: immediately in ModeNormal, or
// buffered in ModePipeline and ModeTransaction where the method returns the
// zero value and the real result is collected by ClosePipeline or Exec.
//
// A Client is safe for concurrent use in ModeNormal. Pipelines and
// transactions belong to the handle that opened them; use Handle to give
// each goroutine its own mode state over the shared pool.
type Client struct {
	topo   topology
	log    logrus.FieldLogger
	tracer trace.Tracer
	owner  bool

	mu     sync.Mutex
	mode   Mode
	sess   *session
	watch  *goredis.Conn
	closed bool
}

func newClient(t topology, opt *ConnOptions) *Client {
	c := &Client{
		topo:   t,
		log:    opt.logger().WithField("topology", t.kind().String()),
		tracer: opt.tracer(),
		owner:  true,
	}
	c.log.Info("redis client created")
	return c
}

// Handle returns a new client sharing the connection pool with c but with
// its own execution mode. Closing a handle does not close the pool.
func (c *Client) Handle() *Client {
	return &Client{
		topo:   c.topo,
		log:    c.log,
		tracer: c.tracer,
	}
}

// Topology returns the deployment the client is bound to.
func (c *Client) Topology() Topology {
	return c.topo.kind()
}

// Native returns the underlying go-redis client.
func (c *Client) Native() goredis.UniversalClient {
	return c.topo.native()
}

// Mode returns the current execution mode.
func (c *Client) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// IsPipeline reports whether commands are being buffered into a pipeline.
func (c *Client) IsPipeline() bool {
	return c.Mode() == ModePipeline
}

// IsTransaction reports whether commands are being queued into MULTI.
func (c *Client) IsTransaction() bool {
	return c.Mode() == ModeTransaction
}

func (c *Client) illegal(op, reason string) error {
	return &IllegalStateError{Op: op, Mode: c.mode, Topology: c.topo.kind(), Reason: reason}
}

// requireNormal fails unless the client is open and in ModeNormal.
func (c *Client) requireNormal(op, reason string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if c.mode != ModeNormal {
		return c.illegal(op, reason)
	}
	return nil
}

// Close discards any open pipeline or transaction and releases held
// connections. Closing the client returned by a constructor also closes
// the pool shared by all of its handles.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.closed = true
	sess, watch := c.sess, c.watch
	c.sess, c.watch, c.mode = nil, nil, ModeNormal
	c.mu.Unlock()

	ctx := context.Background()
	if sess != nil {
		sess.discard()
		c.release(ctx, sess.conn, sess.watched)
	}
	if watch != nil {
		c.release(ctx, watch, true)
	}
	if c.owner {
		return c.topo.close()
	}
	return nil
}
