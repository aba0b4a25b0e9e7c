/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"
)

// Kind registry: Go variant types and the kind names they are stored under.

var (
	kindRegistry = make(map[reflect.Type]string)
	mu           sync.RWMutex
)

// RegisterKind associates the Go type T with a token kind.
func RegisterKind[T any](kind string) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.Lock()
	defer mu.Unlock()
	kindRegistry[t] = kind
}

// KindOf retrieves the kind registered for type T, if any.
func KindOf[T any]() (string, bool) {
	var zero T
	return kindOfType(reflect.TypeOf(zero))
}

// KindOfValue retrieves the kind registered for the dynamic type of v.
func KindOfValue(v any) (string, bool) {
	return kindOfType(reflect.TypeOf(v))
}

func kindOfType(t reflect.Type) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()
	k, ok := kindRegistry[t]
	return k, ok
}
