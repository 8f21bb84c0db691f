package models

// JobFlag carries the worker command line into a job.
type JobFlag struct {
	JobName       string
	Version       string
	Date          string
	ReservationID string
	Action        string
}

// ReplaySummary counts the outcomes of a replay run.
type ReplaySummary struct {
	Total  int                         `json:"total"`
	States map[ReconciliationState]int `json:"states"`
}
