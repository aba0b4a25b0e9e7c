/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package game loads the player-count table that gives how many characters
// of each team are in play.
package game

import (
	"context"
	"fmt"
	"sort"

	"github.com/goccy/go-json"

	"github.com/suparena/grimoire/errors"
	"github.com/suparena/grimoire/source"
)

const (
	// DefaultFile is the usual name of the game data file.
	DefaultFile = "game.json"

	// MinPlayers is the player count of the first row of the table.
	MinPlayers = 5
)

// Totals maps a team to the number of its characters in play.
type Totals map[string]int

// Table holds one row of totals per player count, starting at MinPlayers.
type Table struct {
	rows []Totals
}

// Load fetches name from src and decodes it.
func Load(ctx context.Context, src source.Source, name string) (*Table, error) {
	data, err := src.Fetch(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("fetch game data: %w", err)
	}
	return Parse(data)
}

// Parse decodes a JSON list of team totals.
func Parse(data []byte) (*Table, error) {
	var rows []Totals
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, errors.NewValidationError("", fmt.Sprintf("decode game data: %v", err))
	}
	return &Table{rows: rows}, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the totals for the given number of players. Counts beyond the
// last row use the last row.
func (t *Table) Row(players int) (Totals, error) {
	if players < MinPlayers {
		return nil, errors.NewValidationError("players", fmt.Sprintf("must be at least %d, got %d", MinPlayers, players))
	}
	if len(t.rows) == 0 {
		return nil, errors.NewNotFoundError("game row", fmt.Sprint(players))
	}

	row := t.rows[min(players-MinPlayers, len(t.rows)-1)]
	out := make(Totals, len(row))
	for team, count := range row {
		out[team] = count
	}
	return out, nil
}

// Teams returns every team named in the table, sorted.
func (t *Table) Teams() []string {
	seen := make(map[string]bool)
	for _, row := range t.rows {
		for team := range row {
			seen[team] = true
		}
	}

	teams := make([]string, 0, len(seen))
	for team := range seen {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	return teams
}
