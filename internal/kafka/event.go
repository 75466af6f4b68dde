package kafka

import "encoding/json"

// Event is the envelope POS events travel in: a type tag plus the event's
// own JSON payload.
type Event struct {
	EventType string          `json:"event_type"`
	Data      json.RawMessage `json:"data"`
}

// NewEvent wraps a payload in an envelope.
func NewEvent(eventType string, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{EventType: eventType, Data: data}, nil
}
