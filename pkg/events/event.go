package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "QUERY_RESOLVED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a plain implementation for simple events.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const TypeQueryResolved = "QUERY_RESOLVED"

// NewQueryResolved records that a fresh query resolved successfully.
// Only shape metadata is carried; the query text itself stays out of the
// event stream.
func NewQueryResolved(sessionID string, sectionCount, caseCount int, followUp bool) Event {
	return BaseEvent{
		Type: TypeQueryResolved,
		Data: map[string]interface{}{
			"session_id":    sessionID,
			"section_count": sectionCount,
			"case_count":    caseCount,
			"is_follow_up":  followUp,
		},
		OccurredAt: time.Now(),
	}
}
