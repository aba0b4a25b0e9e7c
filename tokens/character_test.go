/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tokens_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/grimoire/errors"
	"github.com/suparena/grimoire/registry"
	"github.com/suparena/grimoire/token"
	"github.com/suparena/grimoire/tokens"
)

func washerwoman() token.Record {
	return token.Record{
		"id":         "washerwoman",
		"name":       "Washerwoman",
		"edition":    "tb",
		"team":       "townsfolk",
		"ability":    "You start knowing that 1 of 2 players is a particular Townsfolk.",
		"image":      "/assets/img/washerwoman.png",
		"firstNight": true,
		"otherNight": false,
		"reminders":  []any{"Townsfolk", "Wrong"},
	}
}

func TestCharacterAccessors(t *testing.T) {
	c := tokens.NewCharacter(washerwoman())

	id, err := c.ID()
	require.NoError(t, err)
	assert.Equal(t, "washerwoman", id)

	team, err := c.Team()
	require.NoError(t, err)
	assert.Equal(t, "townsfolk", team)

	first, err := c.FirstNight()
	require.NoError(t, err)
	assert.True(t, first)

	other, err := c.OtherNight()
	require.NoError(t, err)
	assert.False(t, other)

	setup, err := c.Setup()
	require.NoError(t, err)
	assert.False(t, setup, "absent setup reads as false")

	reminders, err := c.Reminders()
	require.NoError(t, err)
	assert.Equal(t, []string{"Townsfolk", "Wrong"}, reminders)

	global, err := c.RemindersGlobal()
	require.NoError(t, err)
	assert.Empty(t, global)

	assert.True(t, c.Installed("getTeam"), "typed wrappers go through the accessor cache")
}

func TestCharacterMissingAndMistyped(t *testing.T) {
	c := tokens.NewCharacter(token.Record{"id": 7, "firstNight": "yes", "reminders": []any{"ok", 3}})

	_, err := c.Ability()
	assert.True(t, errors.IsMissingKey(err))

	_, err = c.ID()
	assert.True(t, errors.IsValidationError(err))

	_, err = c.FirstNight()
	assert.True(t, errors.IsValidationError(err))

	_, err = c.Reminders()
	assert.True(t, errors.IsValidationError(err))
}

func TestCharacterCloneKeepsVariant(t *testing.T) {
	c := tokens.NewCharacter(washerwoman())

	dup := token.CloneAs(c)
	require.NotSame(t, c, dup)

	name, err := dup.Name()
	require.NoError(t, err)
	assert.Equal(t, "Washerwoman", name)

	var viaBase token.Entity = c
	_, ok := viaBase.Clone().(*tokens.Character)
	assert.True(t, ok, "cloning through the interface keeps the variant")
}

func TestReminderTokens(t *testing.T) {
	record := washerwoman()
	record["remindersGlobal"] = []any{"Global"}
	c := tokens.NewCharacter(record)

	reminders, err := c.ReminderTokens()
	require.NoError(t, err)
	require.Len(t, reminders, 3)

	var texts []string
	for _, r := range reminders {
		id, err := r.ID()
		require.NoError(t, err)
		assert.Equal(t, "washerwoman", id)

		image, err := r.Image()
		require.NoError(t, err)
		assert.Equal(t, "/assets/img/washerwoman.png", image)

		text, err := r.Text()
		require.NoError(t, err)
		texts = append(texts, text)
	}
	assert.Equal(t, []string{"Townsfolk", "Wrong", "Global"}, texts)
}

func TestReminderTokensWithoutImage(t *testing.T) {
	c := tokens.NewCharacter(token.Record{"id": "imp", "reminders": []any{"Dead"}})

	reminders, err := c.ReminderTokens()
	require.NoError(t, err)
	require.Len(t, reminders, 1)

	_, err = reminders[0].Image()
	assert.True(t, errors.IsMissingKey(err))
}

func TestVariantsAreRegistered(t *testing.T) {
	entity, err := registry.NewEntity(tokens.KindCharacter, washerwoman())
	require.NoError(t, err)
	assert.IsType(t, &tokens.Character{}, entity)

	entity, err = registry.NewEntity(tokens.KindReminder, token.Record{"id": "imp", "text": "Dead"})
	require.NoError(t, err)
	assert.IsType(t, &tokens.Reminder{}, entity)

	kind, ok := registry.KindOfValue(tokens.NewReminder(token.Record{}))
	require.True(t, ok)
	assert.Equal(t, tokens.KindReminder, kind)
}
