/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package catalog loads the character data file and answers the lookups the
// grimoire needs: by edition, by id list and by single id.
package catalog

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/suparena/grimoire/errors"
	"github.com/suparena/grimoire/source"
	"github.com/suparena/grimoire/token"
	"github.com/suparena/grimoire/tokens"
)

// DefaultFile is the usual name of the character data file.
const DefaultFile = "characters.json"

// Catalog holds every character from the data file in file order.
type Catalog struct {
	characters []*tokens.Character
	byID       map[string]*tokens.Character
}

// Load fetches name from src and decodes it as a list of character records.
func Load(ctx context.Context, src source.Source, name string) (*Catalog, error) {
	data, err := src.Fetch(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("fetch characters: %w", err)
	}
	return Parse(data)
}

// Parse decodes a JSON list of character records. Every record needs a
// string id, and ids must be unique.
func Parse(data []byte) (*Catalog, error) {
	var records []token.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.NewValidationError("", fmt.Sprintf("decode characters: %v", err))
	}
	return New(records)
}

// New builds a catalog over already decoded records.
func New(records []token.Record) (*Catalog, error) {
	c := &Catalog{
		characters: make([]*tokens.Character, 0, len(records)),
		byID:       make(map[string]*tokens.Character, len(records)),
	}

	for i, record := range records {
		if record == nil {
			return nil, errors.NewValidationError("", fmt.Sprintf("character %d is not an object", i))
		}
		char := tokens.NewCharacter(record)
		id, err := char.ID()
		if err != nil {
			return nil, fmt.Errorf("character %d: %w", i, err)
		}
		if _, exists := c.byID[id]; exists {
			return nil, errors.NewAlreadyExistsError("Character", id)
		}
		c.byID[id] = char
		c.characters = append(c.characters, char)
	}
	return c, nil
}

// All returns every character in file order.
func (c *Catalog) All() []*tokens.Character {
	out := make([]*tokens.Character, len(c.characters))
	copy(out, c.characters)
	return out
}

// Len returns the number of characters.
func (c *Catalog) Len() int {
	return len(c.characters)
}

// Edition returns the characters whose edition equals edition.
// Characters without an edition never match.
func (c *Catalog) Edition(edition string) []*tokens.Character {
	var out []*tokens.Character
	for _, char := range c.characters {
		if e, err := char.Edition(); err == nil && e == edition {
			out = append(out, char)
		}
	}
	return out
}

// Editions returns the distinct editions in the order they first appear.
func (c *Catalog) Editions() []string {
	seen := make(map[string]bool)
	var out []string
	for _, char := range c.characters {
		e, err := char.Edition()
		if err != nil || seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}

// IDs returns the characters whose id is in ids, in catalog order.
// Unknown ids are ignored.
func (c *Catalog) IDs(ids []string) []*tokens.Character {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var out []*tokens.Character
	for _, char := range c.characters {
		if id, _ := char.ID(); wanted[id] {
			out = append(out, char)
		}
	}
	return out
}

// Get returns the character with the given id.
func (c *Catalog) Get(id string) (*tokens.Character, error) {
	char, ok := c.byID[id]
	if !ok {
		return nil, errors.NewNotFoundError("Character", id)
	}
	return char, nil
}

// Reminders returns the reminder tokens of every given character, in order.
func Reminders(chars []*tokens.Character) ([]*tokens.Reminder, error) {
	var out []*tokens.Reminder
	for _, char := range chars {
		reminders, err := char.ReminderTokens()
		if err != nil {
			id, _ := char.ID()
			return nil, fmt.Errorf("reminders for %s: %w", id, err)
		}
		out = append(out, reminders...)
	}
	return out, nil
}
