package redis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/command"
)

// Nil reply returned by Redis when a key or member does not exist.
var Nil = goredis.Nil

// ErrClosed is returned by commands issued on a closed client handle.
var ErrClosed = errors.New("redis: client is closed")

// CommandError is a failure of the underlying driver to execute a command:
// a transport failure or an error reply from the server.
type CommandError struct {
	Command command.Command
	Args    command.Arguments
	Err     error
}

func (e *CommandError) Error() string {
	if e.Args.Len() == 0 {
		return fmt.Sprintf("redis: %s: %v", e.Command.FullName(), e.Err)
	}
	return fmt.Sprintf("redis: %s [%s]: %v", e.Command.FullName(), e.Args, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a reply could not be converted into the
// expected result type.
type DecodeError struct {
	Command command.Command
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("redis: decoding %s reply: %v", e.Command.FullName(), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IllegalStateError is returned, before any network call, for an invalid
// execution mode transition or a command the topology cannot run.
type IllegalStateError struct {
	Op       string
	Mode     Mode
	Topology Topology
	Reason   string
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("redis: %s not allowed (%s topology, %s mode): %s", e.Op, e.Topology, e.Mode, e.Reason)
}

// ArgumentError reports an argument that has no protocol encoding, such as
// the unknown variant of an enum.
type ArgumentError struct {
	Name  string
	Value interface{}
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("redis: invalid argument %s: %v", e.Name, e.Value)
}

// checkArgument returns an ArgumentError for value unless valid.
func checkArgument(name string, value interface{}, valid bool) error {
	if valid {
		return nil
	}
	return &ArgumentError{Name: name, Value: value}
}

// IsTransportError reports whether err was caused by the connection rather
// than by the server reply.
func IsTransportError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, goredis.ErrClosed) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// IsServerError reports whether err is an error reply sent by Redis, such
// as WRONGTYPE or CROSSSLOT.
func IsServerError(err error) bool {
	if err == nil || errors.Is(err, goredis.Nil) || errors.Is(err, goredis.TxFailedErr) {
		return false
	}
	var redisErr goredis.Error
	return errors.As(err, &redisErr)
}

// IsIllegalState reports whether err is an IllegalStateError.
func IsIllegalState(err error) bool {
	var ise *IllegalStateError
	return errors.As(err, &ise)
}
