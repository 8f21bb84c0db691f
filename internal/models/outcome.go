package models

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ReconciliationState walks Received -> Classified -> one of the terminal states.
type ReconciliationState string

const (
	StateReceived   ReconciliationState = "received"
	StateClassified ReconciliationState = "classified"
	StateCreated    ReconciliationState = "created"
	StateUpdated    ReconciliationState = "updated"
	StateDeleted    ReconciliationState = "deleted"
	StateIgnored    ReconciliationState = "ignored"
	StateFailed     ReconciliationState = "failed"
)

func (s ReconciliationState) Terminal() bool {
	switch s {
	case StateCreated, StateUpdated, StateDeleted, StateIgnored, StateFailed:
		return true
	default:
		return false
	}
}

const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
	OperationSkip   = "skip"
	OperationLookup = "lookup"
)

type (
	// ScheduleResult is what happened to one schedule in a flow.
	ScheduleResult struct {
		Kind         TransactionKind `json:"kind"`
		ScheduleKind ScheduleKind    `json:"scheduleKind"`
		ScheduleID   string          `json:"scheduleId,omitempty"`
		Operation    string          `json:"operation"`
		Err          error           `json:"-"`
		Error        string          `json:"error,omitempty"`
	}

	// FlowReport collects per-schedule results. A failed schedule never stops the others.
	FlowReport struct {
		Results []ScheduleResult `json:"results"`
	}

	TraceStep struct {
		Step    string `json:"step"`
		Message string `json:"message,omitempty"`
		Data    any    `json:"data,omitempty"`
	}

	Trace struct {
		Steps []TraceStep `json:"track_log"`
	}

	Outcome struct {
		EventID       string
		Action        string
		ReservationID string
		State         ReconciliationState
		Reason        string
		Err           error
		Report        FlowReport
		Trace         Trace
	}
)

func (r *FlowReport) Add(res ScheduleResult) {
	if res.Err != nil && res.Error == "" {
		res.Error = res.Err.Error()
	}
	r.Results = append(r.Results, res)
}

func (r *FlowReport) Merge(other FlowReport) {
	r.Results = append(r.Results, other.Results...)
}

func (r FlowReport) Failures() []ScheduleResult {
	var failed []ScheduleResult
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

func (r FlowReport) Count(operation string) int {
	n := 0
	for _, res := range r.Results {
		if res.Operation == operation && res.Err == nil {
			n++
		}
	}
	return n
}

// Err aggregates every failed schedule, or nil.
func (r FlowReport) Err() error {
	var errs *multierror.Error
	for _, res := range r.Failures() {
		errs = multierror.Append(errs, fmt.Errorf("%s %s %s: %w", res.Operation, res.Kind, res.ScheduleID, res.Err))
	}
	return errs.ErrorOrNil()
}

func (t *Trace) Add(step, message string, data any) {
	t.Steps = append(t.Steps, TraceStep{Step: step, Message: message, Data: data})
}
