package watchdog

import "time"

// EventType defines the type of watchdog event.
type EventType string

const (
	EventReset     EventType = "reset"
	EventFire      EventType = "fire"
	EventCountdown EventType = "countdown"
	EventPaused    EventType = "paused"
	EventResumed   EventType = "resumed"
)

// Event represents a watchdog update for observers.
type Event struct {
	Type      EventType
	Delay     time.Duration
	Remaining int
	Burst     Burst
	At        time.Time
}
