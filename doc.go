/*
Package grimoire lays out character and reminder tokens for a game host.

Character and reminder data come from static JSON files and are wrapped in
data-backed tokens (see package token), whose fields are read through
accessors named after the record keys:

	ability, err := char.Call("getAbility")

A Session ties the pieces together: pick an edition, tick the characters in
play, set the player count to get team totals, and place tokens on the Pad.
Each step is announced on a Bus so UI sections can react.

Basic Usage:

	src := source.NewFS(os.DirFS("assets/data"))
	chars, _ := catalog.Load(ctx, src, catalog.DefaultFile)
	table, _ := game.Load(ctx, src, game.DefaultFile)

	s := grimoire.NewSession(chars, table, grimoire.NewPad(nil), bus)
	s.SelectEdition("tb")
	totals, _ := s.SetPlayers(7)
	id, _ := s.AddCharacter("washerwoman")

Packages:
  - token: the data-backed entity and its accessor convention
  - tokens: the character and reminder variants
  - registry: kind name to variant lookups
  - catalog, game, locale: the data files
  - source: where data files come from
  - errors: semantic error types
*/
package grimoire
