/*
Package registry manages token variants for the grimoire module.

The registry system enables:
  - Building the right token variant from a kind name found in serialized data
  - Resolving the kind name of a variant value when it is placed or serialized

Variant Registry:
Maps kind names to constructors:

	registry.RegisterVariant("character", func(r token.Record) token.Entity {
	    return NewCharacter(r)
	})

	entity, err := registry.NewEntity("character", record)

Kind Registry:
Associates Go types with kind names:

	registry.RegisterKind[*Character]("character")
	kind, ok := registry.KindOfValue(entity) // "character", true

The registry is thread-safe and should be populated during initialization,
typically in init() functions.
*/
package registry
