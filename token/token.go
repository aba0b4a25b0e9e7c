/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package token

import (
	"sync"

	"github.com/goccy/go-json"

	"github.com/suparena/grimoire/errors"
)

// Record is the JSON-compatible data wrapped by a Token.
type Record map[string]any

// Accessor returns the value of a single record key.
type Accessor func() (any, error)

// Constructor builds a concrete variant over a record.
type Constructor func(data Record) Entity

// Entity is implemented by *Token and by every variant that embeds it.
type Entity interface {
	// Data returns the wrapped record.
	Data() Record
	// GetData returns the value stored under key.
	GetData(key string) (any, error)
	// Resolve returns the member called name, installing an accessor if needed.
	Resolve(name string) (Accessor, bool)
	// Call resolves name and invokes it.
	Call(name string) (any, error)
	// Clone returns a new instance of the same variant over the same record.
	Clone() Entity
}

// Names of the members every Token declares. They are never synthesized.
const (
	memberData    = "data"
	memberClone   = "clone"
	memberGetData = "getData"
)

// Token is the base data-backed entity.
type Token struct {
	data Record
	ctor Constructor

	mu        sync.Mutex
	accessors map[string]Accessor
	onDerive  func(name, key string)
}

// Option configures a Token at construction.
type Option func(*Token)

// WithDeriveHook sets a function called each time an accessor name is
// converted into a key. The hook runs while the Token is locked and must not
// call back into it.
func WithDeriveHook(hook func(name, key string)) Option {
	return func(t *Token) {
		t.onDerive = hook
	}
}

// New wraps data in a plain Token.
func New(data Record, opts ...Option) *Token {
	return NewVariant(data, newPlain, opts...)
}

func newPlain(data Record) Entity {
	return New(data)
}

// NewVariant wraps data in a Token whose clones are built with ctor. Variants
// embedding *Token call this from their own constructor.
func NewVariant(data Record, ctor Constructor, opts ...Option) *Token {
	t := &Token{
		data: data,
		ctor: ctor,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Data returns the wrapped record. It is the same map the Token was built with.
func (t *Token) Data() Record {
	return t.data
}

// GetData returns the value stored under key, or a MissingKeyError when the
// record has no such key.
func (t *Token) GetData(key string) (any, error) {
	value, ok := t.data[key]
	if !ok {
		return nil, errors.NewMissingKeyError(key)
	}
	return value, nil
}

// Resolve returns the member called name.
//
// Installed accessors and the declared members "data" and "clone" are
// returned as they are. Any other name starting with "get" gets a new
// accessor reading ConvertProperty(name), which is kept on this instance for
// later calls. "getData" takes a key and never resolves to an accessor.
// Everything else reports false.
func (t *Token) Resolve(name string) (Accessor, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if acc, ok := t.accessors[name]; ok {
		return acc, true
	}

	switch name {
	case memberData:
		return func() (any, error) { return t.Data(), nil }, true
	case memberClone:
		return func() (any, error) { return t.Clone(), nil }, true
	case memberGetData:
		return nil, false
	}

	if !IsAccessorName(name) {
		return nil, false
	}

	key := ConvertProperty(name)
	if t.onDerive != nil {
		t.onDerive(name, key)
	}

	acc := func() (any, error) {
		return t.GetData(key)
	}
	if t.accessors == nil {
		t.accessors = make(map[string]Accessor)
	}
	t.accessors[name] = acc
	return acc, true
}

// Installed reports whether an accessor for name has been installed on this
// instance.
func (t *Token) Installed(name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.accessors[name]
	return ok
}

// Call resolves name and invokes it with no arguments.
func (t *Token) Call(name string) (any, error) {
	if name == memberGetData {
		return nil, errors.NewValidationError(memberGetData, "a key is required")
	}

	acc, ok := t.Resolve(name)
	if !ok {
		return nil, errors.NewNotCallableError(name)
	}
	return acc()
}

// Clone creates a new instance of the receiver's variant over the same record.
// Accessors installed on the receiver are not carried over.
func (t *Token) Clone() Entity {
	if t.ctor == nil {
		return newPlain(t.data)
	}
	return t.ctor(t.data)
}

// MarshalJSON encodes the wrapped record.
func (t *Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.data)
}

// CloneAs clones e and returns the copy as its concrete variant. It panics if
// the variant's constructor builds a different type.
func CloneAs[T Entity](e T) T {
	return e.Clone().(T)
}
