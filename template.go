package redis

import (
	"context"
	"fmt"
	"reflect"

	"github.com/buession/redis/core"
	"github.com/buession/redis/serializer"
)

// Template stores Go values through a Serializer on top of a Client.
// Writes follow the client's execution mode; reads decode the reply and
// therefore need ModeNormal.
type Template struct {
	*Client
	s serializer.Serializer
}

// NewTemplate returns a Template over c. A nil s selects serializer.JSON.
func NewTemplate(c *Client, s serializer.Serializer) *Template {
	if s == nil {
		s = serializer.JSON{}
	}
	return &Template{Client: c, s: s}
}

func (t *Template) encode(v interface{}) ([]byte, error) {
	data, err := t.s.Serialize(v)
	if err != nil {
		return nil, fmt.Errorf("redis: serialize %T: %w", v, err)
	}
	return data, nil
}

func (t *Template) decode(data string, v interface{}) error {
	if err := t.s.Deserialize([]byte(data), v); err != nil {
		return fmt.Errorf("redis: deserialize into %T: %w", v, err)
	}
	return nil
}

func (t *Template) encodeAll(values []interface{}) ([]interface{}, error) {
	encoded := make([]interface{}, len(values))
	for i, v := range values {
		data, err := t.encode(v)
		if err != nil {
			return nil, err
		}
		encoded[i] = data
	}
	return encoded, nil
}

func (t *Template) SetObject(ctx context.Context, key string, v interface{}) (core.Status, error) {
	data, err := t.encode(v)
	if err != nil {
		return core.StatusFailure, err
	}
	return t.Set(ctx, key, data)
}

// GetObject decodes the value at key into v. It returns Nil when the key
// does not exist.
func (t *Template) GetObject(ctx context.Context, key string, v interface{}) error {
	if err := t.requireNormal("GetObject", "decoding needs an immediate reply"); err != nil {
		return err
	}
	s, err := t.Get(ctx, key)
	if err != nil {
		return err
	}
	return t.decode(s, v)
}

func (t *Template) HSetObject(ctx context.Context, key, field string, v interface{}) (int64, error) {
	data, err := t.encode(v)
	if err != nil {
		return 0, err
	}
	return t.HSet(ctx, key, field, data)
}

func (t *Template) HGetObject(ctx context.Context, key, field string, v interface{}) error {
	if err := t.requireNormal("HGetObject", "decoding needs an immediate reply"); err != nil {
		return err
	}
	s, err := t.HGet(ctx, key, field)
	if err != nil {
		return err
	}
	return t.decode(s, v)
}

func (t *Template) LPushObject(ctx context.Context, key string, values ...interface{}) (int64, error) {
	encoded, err := t.encodeAll(values)
	if err != nil {
		return 0, err
	}
	return t.LPush(ctx, key, encoded...)
}

// LRangeObjects decodes the elements between start and stop into the
// slice pointed to by out.
func (t *Template) LRangeObjects(ctx context.Context, key string, start, stop int64, out interface{}) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Slice {
		return &ArgumentError{Name: "out", Value: out}
	}
	if err := t.requireNormal("LRangeObjects", "decoding needs an immediate reply"); err != nil {
		return err
	}
	items, err := t.LRange(ctx, key, start, stop)
	if err != nil {
		return err
	}
	slice := rv.Elem()
	elem := slice.Type().Elem()
	result := reflect.MakeSlice(slice.Type(), 0, len(items))
	for _, item := range items {
		p := reflect.New(elem)
		if err := t.decode(item, p.Interface()); err != nil {
			return err
		}
		result = reflect.Append(result, p.Elem())
	}
	slice.Set(result)
	return nil
}

func (t *Template) RPopObject(ctx context.Context, key string, v interface{}) error {
	if err := t.requireNormal("RPopObject", "decoding needs an immediate reply"); err != nil {
		return err
	}
	s, err := t.RPop(ctx, key)
	if err != nil {
		return err
	}
	return t.decode(s, v)
}
