/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tokens

import (
	"github.com/suparena/grimoire/errors"
	"github.com/suparena/grimoire/registry"
	"github.com/suparena/grimoire/token"
)

// Kinds stored in serialized tokens.
const (
	KindCharacter = "character"
	KindReminder  = "reminder"
)

func init() {
	registry.RegisterVariant(KindCharacter, func(r token.Record) token.Entity { return NewCharacter(r) })
	registry.RegisterVariant(KindReminder, func(r token.Record) token.Entity { return NewReminder(r) })
	registry.RegisterKind[*Character](KindCharacter)
	registry.RegisterKind[*Reminder](KindReminder)
}

// Character is a character token read from the character data file.
type Character struct {
	*token.Token
}

// NewCharacter wraps a character record.
func NewCharacter(data token.Record, opts ...token.Option) *Character {
	c := &Character{}
	c.Token = token.NewVariant(data, func(r token.Record) token.Entity {
		return NewCharacter(r)
	}, opts...)
	return c
}

// ID returns the character id.
func (c *Character) ID() (string, error) { return stringValue(c, "getId") }

// Name returns the display name.
func (c *Character) Name() (string, error) { return stringValue(c, "getName") }

// Edition returns the edition the character belongs to.
func (c *Character) Edition() (string, error) { return stringValue(c, "getEdition") }

// Team returns the character's team.
func (c *Character) Team() (string, error) { return stringValue(c, "getTeam") }

// Ability returns the ability text.
func (c *Character) Ability() (string, error) { return stringValue(c, "getAbility") }

// Image returns the token image path.
func (c *Character) Image() (string, error) { return stringValue(c, "getImage") }

// FirstNight reports whether the character acts on the first night.
func (c *Character) FirstNight() (bool, error) { return boolValue(c, "getFirstNight") }

// OtherNight reports whether the character acts on other nights.
func (c *Character) OtherNight() (bool, error) { return boolValue(c, "getOtherNight") }

// Setup reports whether the character changes the game setup.
func (c *Character) Setup() (bool, error) { return boolValue(c, "getSetup") }

// Reminders returns the reminder texts for the character itself.
func (c *Character) Reminders() ([]string, error) { return stringsValue(c, "getReminders") }

// RemindersGlobal returns the reminder texts that are available whether or
// not the character is in play.
func (c *Character) RemindersGlobal() ([]string, error) { return stringsValue(c, "getRemindersGlobal") }

// ReminderTokens builds one Reminder per entry of reminders followed by
// remindersGlobal. Each carries the character's id and image.
func (c *Character) ReminderTokens() ([]*Reminder, error) {
	id, err := c.ID()
	if err != nil {
		return nil, err
	}

	local, err := c.Reminders()
	if err != nil {
		return nil, err
	}
	global, err := c.RemindersGlobal()
	if err != nil {
		return nil, err
	}

	image, err := c.Image()
	hasImage := err == nil
	if err != nil && !errors.IsMissingKey(err) {
		return nil, err
	}

	texts := append(append(make([]string, 0, len(local)+len(global)), local...), global...)
	out := make([]*Reminder, 0, len(texts))
	for _, text := range texts {
		record := token.Record{
			"id":   id,
			"text": text,
		}
		if hasImage {
			record["image"] = image
		}
		out = append(out, NewReminder(record))
	}
	return out, nil
}
