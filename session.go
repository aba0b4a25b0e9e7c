/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package grimoire

import (
	"sync"

	"github.com/suparena/grimoire/catalog"
	"github.com/suparena/grimoire/errors"
	"github.com/suparena/grimoire/game"
	"github.com/suparena/grimoire/token"
	"github.com/suparena/grimoire/tokens"
)

// Session is one host's grimoire: the chosen edition, the characters ticked
// in play, the player count and the tokens on the pad. Every change is
// announced on the bus.
type Session struct {
	catalog *catalog.Catalog
	table   *game.Table
	pad     *Pad
	bus     Bus

	mu       sync.RWMutex
	selected []*tokens.Character
	active   map[string]bool
	players  int
}

// NewSession creates a session. bus may be nil.
func NewSession(cat *catalog.Catalog, table *game.Table, pad *Pad, bus Bus) *Session {
	return &Session{
		catalog: cat,
		table:   table,
		pad:     pad,
		bus:     bus,
		active:  make(map[string]bool),
	}
}

func (s *Session) trigger(event string, detail any) {
	if s.bus != nil {
		s.bus.Trigger(event, detail)
	}
}

// Pad returns the session's pad.
func (s *Session) Pad() *Pad {
	return s.pad
}

// SelectEdition makes the characters of edition the selectable set and
// clears any ticked characters. An edition with no characters selects an
// empty set.
func (s *Session) SelectEdition(edition string) ([]*tokens.Character, error) {
	chars := s.catalog.Edition(edition)

	s.mu.Lock()
	s.selected = chars
	s.active = make(map[string]bool)
	s.mu.Unlock()

	s.trigger(EventCharactersSelected, chars)
	return chars, nil
}

// Selected returns the selectable characters.
func (s *Session) Selected() []*tokens.Character {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*tokens.Character, len(s.selected))
	copy(out, s.selected)
	return out
}

// Toggle ticks or unticks a character of the selected edition as in play.
func (s *Session) Toggle(id string, active bool) error {
	s.mu.Lock()
	if s.selectedChar(id) == nil {
		s.mu.Unlock()
		return errors.NewNotFoundError("selected character", id)
	}
	if active {
		s.active[id] = true
	} else {
		delete(s.active, id)
	}
	s.mu.Unlock()

	s.trigger(EventCharacterToggle, Toggle{ID: id, Active: active})
	return nil
}

// SelectedCount returns how many ticked characters belong to team.
func (s *Session) SelectedCount(team string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, char := range s.selected {
		id, err := char.ID()
		if err != nil || !s.active[id] {
			continue
		}
		if t, err := char.Team(); err == nil && t == team {
			count++
		}
	}
	return count
}

// selectedChar finds id among the selectable characters. s.mu must be held.
func (s *Session) selectedChar(id string) *tokens.Character {
	for _, char := range s.selected {
		if cid, err := char.ID(); err == nil && cid == id {
			return char
		}
	}
	return nil
}

// SetPlayers records the player count and returns the team totals for it.
func (s *Session) SetPlayers(players int) (game.Totals, error) {
	totals, err := s.table.Row(players)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.players = players
	s.mu.Unlock()

	s.trigger(EventTotalsUpdated, totals)
	return totals, nil
}

// Players returns the last player count set, or 0.
func (s *Session) Players() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.players
}

// Reminders returns the reminder tokens of the selectable characters.
func (s *Session) Reminders() ([]*tokens.Reminder, error) {
	return catalog.Reminders(s.Selected())
}

// AddCharacter places a copy of the catalog character on the pad.
func (s *Session) AddCharacter(id string) (string, error) {
	char, err := s.catalog.Get(id)
	if err != nil {
		return "", err
	}

	placed := token.CloneAs(char)
	padID, err := s.pad.Add(placed)
	if err != nil {
		return "", err
	}

	s.trigger(EventCharacterAdded, placed)
	return padID, nil
}

// AddReminder places a reminder on the pad.
func (s *Session) AddReminder(reminder *tokens.Reminder) (string, error) {
	padID, err := s.pad.Add(reminder)
	if err != nil {
		return "", err
	}

	s.trigger(EventReminderAdded, reminder)
	return padID, nil
}

// Clear removes every token from the pad.
func (s *Session) Clear() {
	s.pad.Reset()
	s.trigger(EventPadCleared, nil)
}
