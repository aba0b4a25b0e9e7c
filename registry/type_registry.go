/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/grimoire/errors"
	"github.com/suparena/grimoire/token"
)

var (
	// variantRegistry maps a token kind (like "character" or "reminder") to its constructor.
	variantRegistry = make(map[string]token.Constructor)
	variantMu       sync.RWMutex
)

// RegisterVariant registers the constructor for a token kind.
// If a constructor is already registered for the kind, it panics to prevent accidental overrides.
func RegisterVariant(kind string, ctor token.Constructor) {
	variantMu.Lock()
	defer variantMu.Unlock()

	if _, exists := variantRegistry[kind]; exists {
		panic(fmt.Sprintf("type registry: variant %q already registered", kind))
	}
	variantRegistry[kind] = ctor
}

// GetConstructor returns the registered constructor for the given kind.
func GetConstructor(kind string) (token.Constructor, error) {
	variantMu.RLock()
	defer variantMu.RUnlock()

	ctor, ok := variantRegistry[kind]
	if !ok {
		return nil, errors.NewNotFoundError("variant", kind)
	}
	return ctor, nil
}

// NewEntity wraps data in the variant registered for kind.
func NewEntity(kind string, data token.Record) (token.Entity, error) {
	ctor, err := GetConstructor(kind)
	if err != nil {
		return nil, err
	}
	return ctor(data), nil
}

// Kinds returns the registered kinds in sorted order.
func Kinds() []string {
	variantMu.RLock()
	defer variantMu.RUnlock()

	kinds := make([]string, 0, len(variantRegistry))
	for k := range variantRegistry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
