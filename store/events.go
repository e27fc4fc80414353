package store

import (
	"github.com/on-the-ground/roster_ive_go/roster"
)

// Event is a sealed interface over roster change notifications.
// Only UserAdded, UserRemoved and UserToggled implement it.
type Event interface {
	eventName() string
	sealedEvent()
}

var _ Event = UserAdded{}

// UserAdded is emitted after a successful Add or Submit.
type UserAdded struct {
	User roster.User
}

func (UserAdded) eventName() string { return "user_added" }
func (UserAdded) sealedEvent()      {}

var _ Event = UserRemoved{}

// UserRemoved is emitted after Remove drops an existing user.
type UserRemoved struct {
	ID roster.ID
}

func (UserRemoved) eventName() string { return "user_removed" }
func (UserRemoved) sealedEvent()      {}

var _ Event = UserToggled{}

// UserToggled is emitted after Toggle flips an existing user.
// Active carries the flag's new value.
type UserToggled struct {
	ID     roster.ID
	Active bool
}

func (UserToggled) eventName() string { return "user_toggled" }
func (UserToggled) sealedEvent()      {}

// TimeBoundedEvent is an Event stamped with the time span it occurred in.
type TimeBoundedEvent struct {
	Event
	TimeSpan
}

func eventWithNow(e Event) TimeBoundedEvent {
	return TimeBoundedEvent{Event: e, TimeSpan: occurredNow()}
}

// EventAs extracts a typed event from its time-bounded wrapper.
// Returns false when the wrapped event is of a different type.
func EventAs[T Event](tbe TimeBoundedEvent) (T, bool) {
	e, ok := tbe.Event.(T)
	return e, ok
}
