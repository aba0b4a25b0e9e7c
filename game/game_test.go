/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package game_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/grimoire/errors"
	"github.com/suparena/grimoire/game"
	"github.com/suparena/grimoire/source/mock"
)

const gameJSON = `[
	{"townsfolk": 3, "outsider": 0, "minion": 1, "demon": 1},
	{"townsfolk": 3, "outsider": 1, "minion": 1, "demon": 1},
	{"townsfolk": 5, "outsider": 0, "minion": 1, "demon": 1}
]`

func loadTable(t *testing.T) *game.Table {
	t.Helper()
	src := mock.New().WithFile(game.DefaultFile, []byte(gameJSON))
	table, err := game.Load(context.Background(), src, game.DefaultFile)
	require.NoError(t, err)
	return table
}

func TestRow(t *testing.T) {
	table := loadTable(t)
	require.Equal(t, 3, table.Len())

	tests := []struct {
		players   int
		townsfolk int
		outsider  int
	}{
		{5, 3, 0},
		{6, 3, 1},
		{7, 5, 0},
		{15, 5, 0},
	}

	for _, tt := range tests {
		row, err := table.Row(tt.players)
		require.NoError(t, err, "players=%d", tt.players)
		assert.Equal(t, tt.townsfolk, row["townsfolk"], "players=%d", tt.players)
		assert.Equal(t, tt.outsider, row["outsider"], "players=%d", tt.players)
	}
}

func TestRowIsACopy(t *testing.T) {
	table := loadTable(t)

	row, err := table.Row(5)
	require.NoError(t, err)
	row["townsfolk"] = 99

	again, err := table.Row(5)
	require.NoError(t, err)
	assert.Equal(t, 3, again["townsfolk"])
}

func TestRowErrors(t *testing.T) {
	table := loadTable(t)

	_, err := table.Row(4)
	assert.True(t, errors.IsValidationError(err))

	empty, err := game.Parse([]byte(`[]`))
	require.NoError(t, err)
	_, err = empty.Row(5)
	assert.True(t, errors.IsNotFound(err))

	_, err = game.Parse([]byte(`{"townsfolk": 3}`))
	assert.True(t, errors.IsValidationError(err))
}

func TestTeams(t *testing.T) {
	assert.Equal(t, []string{"demon", "minion", "outsider", "townsfolk"}, loadTable(t).Teams())
}
