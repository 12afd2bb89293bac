package redis

import (
	"context"
	"sort"
	"sync"

	"github.com/buession/redis/args"
	"github.com/buession/redis/command"
	"github.com/buession/redis/core"
)

// ScanIterator is used to incrementally iterate over a collection of
// elements with SCAN, HSCAN, SSCAN or ZSCAN. It follows the cursor until
// the server returns it to core.InitialCursor. The server may return an
// element more than once.
//
// It's safe for concurrent use by multiple goroutines.
type ScanIterator[T any] struct {
	mu     sync.Mutex // protects everything below
	c      *Client
	cmd    command.Command
	fetch  func(ctx context.Context, cursor string) (string, []T, error)
	cursor string
	page   []T
	pos    int
	done   bool
	err    error
}

func newScanIterator[T any](
	c *Client, cmd command.Command, fetch func(context.Context, string) (string, []T, error),
) *ScanIterator[T] {
	return &ScanIterator[T]{c: c, cmd: cmd, fetch: fetch, cursor: core.InitialCursor}
}

// Err returns the last iterator error, if any.
func (it *ScanIterator[T]) Err() error {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.err
}

// Next advances to the next element and reports whether there is one.
// Scanning needs the client in ModeNormal.
func (it *ScanIterator[T]) Next(ctx context.Context) bool {
	it.mu.Lock()
	defer it.mu.Unlock()

	if it.err != nil {
		return false
	}
	if it.pos < len(it.page) {
		it.pos++
		return true
	}

	for !it.done {
		if err := it.c.requireNormal(it.cmd.FullName(), "scan iterators need immediate replies"); err != nil {
			it.err = err
			return false
		}
		cursor, page, err := it.fetch(ctx, it.cursor)
		if err != nil {
			it.err = err
			return false
		}
		it.cursor, it.page, it.pos = cursor, page, 0
		it.done = cursor == core.InitialCursor

		// Redis can occasionally return an empty page.
		if len(page) > 0 {
			it.pos = 1
			return true
		}
	}
	return false
}

// Val returns the element at the current position.
func (it *ScanIterator[T]) Val() T {
	var v T
	it.mu.Lock()
	if it.err == nil && it.pos > 0 && it.pos <= len(it.page) {
		v = it.page[it.pos-1]
	}
	it.mu.Unlock()
	return v
}

// ScanIterator iterates over the keys of the current database.
func (c *Client) ScanIterator(arg args.ScanArgument) *ScanIterator[string] {
	return newScanIterator(c, command.Scan, func(ctx context.Context, cursor string) (string, []string, error) {
		r, err := c.Scan(ctx, cursor, arg)
		return r.Cursor, r.Results, err
	})
}

// HScanIterator iterates over the fields of the hash at key. The fields
// of one page are returned in lexical order.
func (c *Client) HScanIterator(key string, arg args.ScanArgument) *ScanIterator[core.KeyValue] {
	return newScanIterator(c, command.HScan, func(ctx context.Context, cursor string) (string, []core.KeyValue, error) {
		r, err := c.HScan(ctx, key, cursor, arg)
		if err != nil {
			return "", nil, err
		}
		page := make([]core.KeyValue, 0, len(r.Results))
		for k, v := range r.Results {
			page = append(page, core.KeyValue{Key: k, Value: v})
		}
		sort.Slice(page, func(i, j int) bool { return page[i].Key < page[j].Key })
		return r.Cursor, page, nil
	})
}

func (c *Client) SScanIterator(key string, arg args.ScanArgument) *ScanIterator[string] {
	return newScanIterator(c, command.SScan, func(ctx context.Context, cursor string) (string, []string, error) {
		r, err := c.SScan(ctx, key, cursor, arg)
		return r.Cursor, r.Results, err
	})
}

func (c *Client) ZScanIterator(key string, arg args.ScanArgument) *ScanIterator[core.Tuple] {
	return newScanIterator(c, command.ZScan, func(ctx context.Context, cursor string) (string, []core.Tuple, error) {
		r, err := c.ZScan(ctx, key, cursor, arg)
		return r.Cursor, r.Results, err
	})
}
