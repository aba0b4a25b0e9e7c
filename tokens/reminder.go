/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tokens

import "github.com/suparena/grimoire/token"

// Reminder is a reminder token. Its id is the id of the character it belongs to.
type Reminder struct {
	*token.Token
}

// NewReminder wraps a reminder record.
func NewReminder(data token.Record, opts ...token.Option) *Reminder {
	r := &Reminder{}
	r.Token = token.NewVariant(data, func(d token.Record) token.Entity {
		return NewReminder(d)
	}, opts...)
	return r
}

// ID returns the id of the character the reminder belongs to.
func (r *Reminder) ID() (string, error) { return stringValue(r, "getId") }

// Image returns the token image path.
func (r *Reminder) Image() (string, error) { return stringValue(r, "getImage") }

// Text returns the reminder text.
func (r *Reminder) Text() (string, error) { return stringValue(r, "getText") }
