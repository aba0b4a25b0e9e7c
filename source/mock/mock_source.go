/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the Source interface for testing
package mock

import (
	"context"
	"sync"

	"github.com/suparena/grimoire/errors"
)

// Source is a mock implementation of source.Source for testing
type Source struct {
	mu         sync.RWMutex
	files      map[string][]byte
	fetchError error
	fetches    map[string]int
}

// New creates a new mock Source
func New() *Source {
	return &Source{
		files:   make(map[string][]byte),
		fetches: make(map[string]int),
	}
}

// WithFile adds a named file
func (m *Source) WithFile(name string, data []byte) *Source {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[name] = data
	return m
}

// WithFetchError makes Fetch operations return an error
func (m *Source) WithFetchError(err error) *Source {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchError = err
	return m
}

// Fetch returns the named file
func (m *Source) Fetch(ctx context.Context, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fetches[name]++

	if m.fetchError != nil {
		return nil, m.fetchError
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, ok := m.files[name]
	if !ok {
		return nil, errors.NewNotFoundError("data file", name)
	}
	return data, nil
}

// Fetches returns how many times name was fetched (for testing)
func (m *Source) Fetches(name string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fetches[name]
}
