/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package grimoire

// Events triggered on the Bus by a Session.
const (
	EventCharactersSelected = "characters-selected"
	EventCharacterToggle    = "character-toggle"
	EventTotalsUpdated      = "totals-updated"
	EventCharacterAdded     = "character-added"
	EventReminderAdded      = "reminder-added"
	EventPadCleared         = "pad-cleared"
)

// Handler receives the detail passed to Trigger.
type Handler func(detail any)

// Bus is the publish/subscribe channel the UI sections listen on. Handlers
// run synchronously in registration order.
type Bus interface {
	On(event string, handler Handler)
	Trigger(event string, detail any)
}

// Dialog is a modal that can be opened and closed.
type Dialog interface {
	Show()
	Hide()
}

// Surface is the drag surface tokens are positioned on.
type Surface interface {
	UpdatePadDimensions()
	Reset()
}

// Toggle is the detail of EventCharacterToggle.
type Toggle struct {
	ID     string
	Active bool
}
