/*
Package token provides the data-backed entity used for every grimoire token.

A Token wraps a Record whose keys are not known when the Token is built.
Values are reached through accessors named by convention: the accessor
"getFirstNight" reads the record key "firstNight". Accessors are synthesized
the first time a name is resolved and then kept on the instance, so later
calls skip the name conversion.

	tok := token.New(token.Record{
	    "id":         "washerwoman",
	    "firstNight": true,
	})

	id, err := tok.Call("getId")          // "washerwoman", nil
	_, err = tok.Call("getAbility")       // MissingKeyError for "ability"

Every lookup goes through GetData, which fails with a MissingKeyError when the
record has no such key. There are no defaults.

Variants:
Concrete token kinds embed *Token and pass their own constructor to
NewVariant. Clone always rebuilds through that constructor, so cloning a
Character through its embedded Token still yields a Character:

	func NewCharacter(data token.Record) *Character {
	    c := &Character{}
	    c.Token = token.NewVariant(data, func(r token.Record) token.Entity {
	        return NewCharacter(r)
	    })
	    return c
	}

	dup := token.CloneAs(char) // *Character, same record, empty accessor cache

The record is shared by reference between a Token and its clones. Tokens never
write to it. The accessor cache is per instance and guarded by a mutex, so a
Token may be resolved from several goroutines at once.
*/
package token
