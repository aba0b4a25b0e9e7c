/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package grimoire

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/suparena/grimoire/errors"
	"github.com/suparena/grimoire/registry"
	"github.com/suparena/grimoire/token"
)

// Placed is a token on the pad.
type Placed struct {
	ID     string       `json:"id"`
	Kind   string       `json:"kind"`
	Entity token.Entity `json:"token"`
}

// Pad holds the tokens laid out on a grimoire, in the order they were added.
type Pad struct {
	mu      sync.RWMutex
	order   []string
	placed  map[string]Placed
	surface Surface
}

// NewPad creates an empty pad. surface may be nil.
func NewPad(surface Surface) *Pad {
	return &Pad{
		placed:  make(map[string]Placed),
		surface: surface,
	}
}

// Add places entity on the pad and returns its id. The entity's type must be
// a registered variant.
func (p *Pad) Add(entity token.Entity) (string, error) {
	kind, ok := registry.KindOfValue(entity)
	if !ok {
		return "", errors.NewValidationError("kind", fmt.Sprintf("%T is not a registered token variant", entity))
	}

	id := uuid.NewString()

	p.mu.Lock()
	defer p.mu.Unlock()

	p.placed[id] = Placed{ID: id, Kind: kind, Entity: entity}
	p.order = append(p.order, id)
	return id, nil
}

// AddRecord builds the variant registered for kind over record and places it.
func (p *Pad) AddRecord(kind string, record token.Record) (string, error) {
	entity, err := registry.NewEntity(kind, record)
	if err != nil {
		return "", err
	}
	return p.Add(entity)
}

// Get retrieves a placed token by id
func (p *Pad) Get(id string) (Placed, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	placed, exists := p.placed[id]
	if !exists {
		return Placed{}, errors.NewNotFoundError("token", id)
	}
	return placed, nil
}

// Remove takes a token off the pad
func (p *Pad) Remove(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.placed[id]; !exists {
		return errors.NewNotFoundError("token", id)
	}

	delete(p.placed, id)
	for i, existing := range p.order {
		if existing == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns the placed tokens in the order they were added
func (p *Pad) List() []Placed {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]Placed, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.placed[id])
	}
	return out
}

// Len returns the number of placed tokens
func (p *Pad) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.order)
}

// Reset clears the pad and resets the surface, if any.
func (p *Pad) Reset() {
	p.mu.Lock()
	p.placed = make(map[string]Placed)
	p.order = nil
	p.mu.Unlock()

	if p.surface != nil {
		p.surface.Reset()
	}
}

// Resize tells the surface its visible size may have changed.
func (p *Pad) Resize() {
	if p.surface != nil {
		p.surface.UpdatePadDimensions()
	}
}
