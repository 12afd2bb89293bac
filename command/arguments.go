package command

import (
	"fmt"
	"reflect"
	"strings"
)

// Argument is one logical parameter of a command invocation. Name is empty
// for positional arguments.
type Argument struct {
	Name  string
	Value interface{}
}

func (a Argument) String() string {
	if a.Name == "" {
		return fmt.Sprint(a.Value)
	}
	return a.Name + "=" + fmt.Sprint(a.Value)
}

// Flattener is implemented by structured arguments that expand into
// several named entries when added to a Builder.
type Flattener interface {
	Flatten(add func(name string, value interface{}))
}

// Arguments is the immutable, ordered snapshot of the parameters of one
// command invocation. It never holds nil values.
type Arguments struct {
	items []Argument
	keys  []string
}

// Len returns the number of arguments.
func (a Arguments) Len() int {
	return len(a.items)
}

// At returns the i-th argument.
func (a Arguments) At(i int) Argument {
	return a.items[i]
}

// Items returns a copy of the arguments.
func (a Arguments) Items() []Argument {
	if len(a.items) == 0 {
		return nil
	}
	items := make([]Argument, len(a.items))
	copy(items, a.items)
	return items
}

// Lookup returns the value of the first argument named name.
func (a Arguments) Lookup(name string) (interface{}, bool) {
	for _, item := range a.items {
		if item.Name == name {
			return item.Value, true
		}
	}
	return nil, false
}

// Keys returns a copy of the keys recorded with Builder.Key and Builder.Keys,
// in the order they were added.
func (a Arguments) Keys() []string {
	if len(a.keys) == 0 {
		return nil
	}
	keys := make([]string, len(a.keys))
	copy(keys, a.keys)
	return keys
}

func (a Arguments) String() string {
	var b strings.Builder
	for i, item := range a.items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(item.String())
	}
	return b.String()
}

// Builder accumulates arguments in declaration order. A Builder is meant to
// be created per call and is not safe for concurrent use.
type Builder struct {
	items []Argument
	keys  []string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a named argument. Nil values are dropped; Flattener values
// are expanded in place.
func (b *Builder) Add(name string, value interface{}) *Builder {
	if isNil(value) {
		return b
	}
	if f, ok := value.(Flattener); ok {
		return b.Flatten(f)
	}
	b.items = append(b.items, Argument{Name: name, Value: value})
	return b
}

// Positional appends unnamed arguments.
func (b *Builder) Positional(values ...interface{}) *Builder {
	for _, v := range values {
		b.Add("", v)
	}
	return b
}

// Key appends a key argument and records the key.
func (b *Builder) Key(name, key string) *Builder {
	b.items = append(b.items, Argument{Name: name, Value: key})
	b.keys = append(b.keys, key)
	return b
}

// Keys appends a key list argument and records every key.
func (b *Builder) Keys(name string, keys ...string) *Builder {
	if len(keys) == 0 {
		return b
	}
	b.items = append(b.items, Argument{Name: name, Value: keys})
	b.keys = append(b.keys, keys...)
	return b
}

// Flatten expands a structured argument into its named entries.
func (b *Builder) Flatten(f Flattener) *Builder {
	if isNil(f) {
		return b
	}
	f.Flatten(func(name string, value interface{}) {
		b.Add(name, value)
	})
	return b
}

// Build returns the immutable snapshot. The Builder may keep being used.
func (b *Builder) Build() Arguments {
	a := Arguments{}
	if len(b.items) > 0 {
		a.items = make([]Argument, len(b.items))
		copy(a.items, b.items)
	}
	if len(b.keys) > 0 {
		a.keys = make([]string, len(b.keys))
		copy(a.keys, b.keys)
	}
	return a
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
