package models

import (
	"encoding/json"
	"time"
)

// FailedMessage is what lands on the dead letter topic when an event ends in StateFailed.
type FailedMessage struct {
	EventID    string          `json:"event_id"`
	Action     string          `json:"action"`
	Payload    json.RawMessage `json:"payload"`
	Timestamp  time.Time       `json:"timestamp"`
	CauseError error           `json:"-"`

	// Error is a string representation of CauseError
	Error string `json:"error"`
}

func NewFailedMessage(event RawReservationEvent, cause error, at time.Time) FailedMessage {
	return FailedMessage{
		EventID:    event.EventID,
		Action:     event.Action,
		Payload:    event.Payload,
		Timestamp:  at,
		CauseError: cause,
	}
}
