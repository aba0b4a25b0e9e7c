/*
Package ddb converts between DynamoDB items and grimoire tokens.

Items carry their token kind in an EntityType attribute, the same way a
single-table design tags polymorphic rows:

	item := map[string]types.AttributeValue{
	    "EntityType": &types.AttributeValueMemberS{Value: "character"},
	    "id":         &types.AttributeValueMemberS{Value: "washerwoman"},
	    "firstNight": &types.AttributeValueMemberBOOL{Value: true},
	}

	entity, err := ddb.DecodeEntity(item) // *tokens.Character when that package is imported

Numbers decode as float64, lists as []any and maps as map[string]any, matching
records decoded from JSON. The package has no client: fetching items is left
to the caller.
*/
package ddb
