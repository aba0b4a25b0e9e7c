/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/grimoire/errors"
	"github.com/suparena/grimoire/registry"
	"github.com/suparena/grimoire/token"
)

// EntityTypeAttribute holds the token kind of an item.
const EntityTypeAttribute = "EntityType"

// DecodeRecord converts a DynamoDB item into a record. The EntityType
// attribute is not part of the record.
func DecodeRecord(item map[string]types.AttributeValue) (token.Record, error) {
	var record map[string]any
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	if record == nil {
		record = make(map[string]any)
	}
	delete(record, EntityTypeAttribute)
	return token.Record(record), nil
}

// EncodeEntity converts a token into a DynamoDB item tagged with its kind.
func EncodeEntity(kind string, e token.Entity) (map[string]types.AttributeValue, error) {
	if kind == "" {
		return nil, errors.NewValidationError(EntityTypeAttribute, "kind is required")
	}

	item, err := attributevalue.MarshalMap(map[string]any(e.Data()))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s record: %w", kind, err)
	}
	item[EntityTypeAttribute] = &types.AttributeValueMemberS{Value: kind}
	return item, nil
}

// DecodeEntity uses the EntityType attribute to pick the registered variant
// for the item. Items of an unregistered kind are wrapped in a plain Token.
func DecodeEntity(item map[string]types.AttributeValue) (token.Entity, error) {
	attr, ok := item[EntityTypeAttribute]
	if !ok {
		return nil, errors.NewValidationError(EntityTypeAttribute, "missing EntityType attribute in item")
	}

	var kind string
	if err := attributevalue.Unmarshal(attr, &kind); err != nil {
		return nil, fmt.Errorf("failed to unmarshal EntityType: %w", err)
	}

	record, err := DecodeRecord(item)
	if err != nil {
		return nil, err
	}

	entity, err := registry.NewEntity(kind, record)
	if errors.IsNotFound(err) {
		return token.New(record), nil
	}
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// DecodeEntities decodes a page of items, keeping their order.
func DecodeEntities(items []map[string]types.AttributeValue) ([]token.Entity, error) {
	out := make([]token.Entity, 0, len(items))
	for i, item := range items {
		entity, err := DecodeEntity(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, entity)
	}
	return out, nil
}
