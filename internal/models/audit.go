package models

import (
	"time"
)

type (
	// RequestLog is one received webhook call in the requests table.
	RequestLog struct {
		ID        int64     `json:"id"`
		Dt        string    `json:"dt"`
		Action    string    `json:"action"`
		Payload   string    `json:"payload"`
		CreatedAt time.Time `json:"createdAt"`
	}

	// ProcessingLog is the outcome of one processed event in the logs table.
	ProcessingLog struct {
		ID              int64     `json:"id"`
		Dt              string    `json:"dt"`
		Action          string    `json:"action"`
		Payload         string    `json:"payload"`
		InternalPayload string    `json:"internalPayload"`
		CreatedAt       time.Time `json:"createdAt"`
	}

	// InternalPayload is serialized into ProcessingLog.InternalPayload.
	InternalPayload struct {
		EventID   string              `json:"event_id"`
		State     ReconciliationState `json:"state"`
		Reason    string              `json:"reason,omitempty"`
		Error     string              `json:"error,omitempty"`
		TrackLog  []TraceStep         `json:"track_log"`
		Schedules []ScheduleResult    `json:"schedules,omitempty"`
	}

	RequestFilterOptions struct {
		Action string
		From   *time.Time
		To     *time.Time
		Limit  int
	}
)

func NewInternalPayload(o Outcome) InternalPayload {
	p := InternalPayload{
		EventID:   o.EventID,
		State:     o.State,
		Reason:    o.Reason,
		TrackLog:  o.Trace.Steps,
		Schedules: o.Report.Results,
	}
	if o.Err != nil {
		p.Error = o.Err.Error()
	}
	if p.TrackLog == nil {
		p.TrackLog = []TraceStep{}
	}
	return p
}
