package events

import "time"

// BaseEvent is the envelope every audit event travels in. Its EventType
// and Payload methods satisfy the bus's Event contract.
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
