/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb_test

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/grimoire/errors"
	"github.com/suparena/grimoire/source/ddb"
	"github.com/suparena/grimoire/token"
	"github.com/suparena/grimoire/tokens"
)

func characterItem() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"EntityType": &types.AttributeValueMemberS{Value: tokens.KindCharacter},
		"id":         &types.AttributeValueMemberS{Value: "washerwoman"},
		"firstNight": &types.AttributeValueMemberBOOL{Value: true},
		"reminders": &types.AttributeValueMemberL{Value: []types.AttributeValue{
			&types.AttributeValueMemberS{Value: "Townsfolk"},
		}},
		"order": &types.AttributeValueMemberN{Value: "12"},
	}
}

func TestDecodeRecord(t *testing.T) {
	record, err := ddb.DecodeRecord(characterItem())
	require.NoError(t, err)

	assert.Equal(t, "washerwoman", record["id"])
	assert.Equal(t, true, record["firstNight"])
	assert.Equal(t, []any{"Townsfolk"}, record["reminders"])
	assert.Equal(t, float64(12), record["order"])
	assert.NotContains(t, record, ddb.EntityTypeAttribute)
}

func TestDecodeEntity(t *testing.T) {
	t.Run("RegisteredKind", func(t *testing.T) {
		entity, err := ddb.DecodeEntity(characterItem())
		require.NoError(t, err)

		c, ok := entity.(*tokens.Character)
		require.True(t, ok, "expected *tokens.Character, got %T", entity)

		first, err := c.FirstNight()
		require.NoError(t, err)
		assert.True(t, first)
	})

	t.Run("UnknownKind", func(t *testing.T) {
		item := characterItem()
		item["EntityType"] = &types.AttributeValueMemberS{Value: "fabled"}

		entity, err := ddb.DecodeEntity(item)
		require.NoError(t, err)
		assert.IsType(t, &token.Token{}, entity)
	})

	t.Run("MissingKind", func(t *testing.T) {
		item := characterItem()
		delete(item, "EntityType")

		_, err := ddb.DecodeEntity(item)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestEncodeEntity(t *testing.T) {
	c := tokens.NewCharacter(token.Record{"id": "imp", "firstNight": false})

	item, err := ddb.EncodeEntity(tokens.KindCharacter, c)
	require.NoError(t, err)
	assert.Equal(t, &types.AttributeValueMemberS{Value: tokens.KindCharacter}, item[ddb.EntityTypeAttribute])

	decoded, err := ddb.DecodeEntity(item)
	require.NoError(t, err)
	id, err := decoded.Call("getId")
	require.NoError(t, err)
	assert.Equal(t, "imp", id)

	_, err = ddb.EncodeEntity("", c)
	assert.True(t, errors.IsValidationError(err))
}

func TestDecodeEntities(t *testing.T) {
	reminder := map[string]types.AttributeValue{
		"EntityType": &types.AttributeValueMemberS{Value: tokens.KindReminder},
		"id":         &types.AttributeValueMemberS{Value: "washerwoman"},
		"text":       &types.AttributeValueMemberS{Value: "Townsfolk"},
	}

	entities, err := ddb.DecodeEntities([]map[string]types.AttributeValue{characterItem(), reminder})
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.IsType(t, &tokens.Character{}, entities[0])
	assert.IsType(t, &tokens.Reminder{}, entities[1])

	_, err = ddb.DecodeEntities([]map[string]types.AttributeValue{{}})
	assert.Error(t, err)
}
