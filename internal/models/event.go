package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	ActionReservationCreated  = "reservation.created"
	ActionReservationModified = "reservation.modified"
	ActionReservationDeleted  = "reservation.deleted"
	ActionReservationCanceled = "reservation.canceled"
)

// ReservationTypeBooked is the only reservation type that produces ledger schedules.
const ReservationTypeBooked = "booked"

type (
	// WebhookRequest is the body the reservation platform posts on every lifecycle change.
	WebhookRequest struct {
		Dt      string          `json:"_dt" validate:"required"`
		Action  string          `json:"action" validate:"required"`
		Payload json.RawMessage `json:"payload" validate:"required"`
	}

	WebhookQueuedResponse struct {
		Status string `json:"status" example:"queued"`
	}

	QueueStatusResponse struct {
		Status    string `json:"status" example:"ok"`
		QueueSize int    `json:"queue_size" example:"0"`
	}

	// ReconcileRequest asks for a reservation to be reprocessed from its current upstream state.
	ReconcileRequest struct {
		Action string `json:"action" validate:"omitempty,oneof=reservation.modified reservation.deleted reservation.canceled"`
	}

	// RawReservationEvent is a webhook call as received. It is never modified after ingestion.
	RawReservationEvent struct {
		EventID    string          `json:"event_id"`
		Timestamp  string          `json:"_dt"`
		Action     string          `json:"action"`
		Payload    json.RawMessage `json:"payload"`
		ReceivedAt time.Time       `json:"received_at"`
	}
)

func NewRawReservationEvent(dt, action string, payload json.RawMessage, receivedAt time.Time) RawReservationEvent {
	return RawReservationEvent{
		EventID:    uuid.NewString(),
		Timestamp:  dt,
		Action:     action,
		Payload:    payload,
		ReceivedAt: receivedAt,
	}
}

func (r WebhookRequest) ToEvent(receivedAt time.Time) RawReservationEvent {
	return NewRawReservationEvent(r.Dt, r.Action, r.Payload, receivedAt)
}

// DecodeReservation reads the payload as a reservation object.
func (e RawReservationEvent) DecodeReservation() (RawReservation, error) {
	var res RawReservation
	err := json.Unmarshal(e.Payload, &res)
	return res, err
}
