package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"
)

const (
	logJob  = "[JOB]"
	lockTTL = 30 * time.Minute
)

type JobService interface {
	// ReconcileReservation reprocesses one reservation synchronously from its current state.
	ReconcileReservation(ctx context.Context, reservationID, action string) (models.Outcome, error)
	// ReplayRequests reprocesses the webhook calls audited on day, in the order they arrived.
	ReplayRequests(ctx context.Context, day time.Time, action string) (models.ReplaySummary, error)
}

type job service

var _ JobService = (*job)(nil)

func (j *job) ReconcileReservation(ctx context.Context, reservationID, action string) (out models.Outcome, err error) {
	release, err := j.lock(ctx, "ReconcileReservation:"+reservationID)
	if err != nil {
		return out, err
	}
	defer release()

	event, err := j.srv.EventProcessor.BuildEvent(ctx, reservationID, action)
	if err != nil {
		return out, err
	}

	out = j.srv.EventProcessor.Process(ctx, event)
	if out.State == models.StateFailed {
		return out, out.Err
	}
	return out, nil
}

func (j *job) ReplayRequests(ctx context.Context, day time.Time, action string) (summary models.ReplaySummary, err error) {
	if j.srv.sqlRepo == nil {
		return summary, common.ErrAuditDisabled
	}

	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	release, err := j.lock(ctx, "ReplayRequests:"+common.FormatDate(from))
	if err != nil {
		return summary, err
	}
	defer release()

	requests, err := j.srv.sqlRepo.GetAuditLogRepository().ListRequests(ctx, models.RequestFilterOptions{
		Action: action,
		From:   &from,
		To:     &to,
	})
	if err != nil {
		return summary, err
	}

	summary.States = map[models.ReconciliationState]int{}
	for _, req := range requests {
		if err = ctx.Err(); err != nil {
			return summary, err
		}

		event := models.NewRawReservationEvent(req.Dt, req.Action, json.RawMessage(req.Payload), j.srv.now())
		outcome := j.srv.EventProcessor.Process(ctx, event)

		summary.Total++
		summary.States[outcome.State]++
	}

	xlog.Info(ctx, logJob,
		xlog.String("message", "replay finished"),
		xlog.String("date", common.FormatDate(from)),
		xlog.Int("total", summary.Total),
		xlog.Any("states", summary.States))

	return summary, nil
}

// lock is a no-op without redis.
func (j *job) lock(ctx context.Context, name string) (release func(), err error) {
	if j.srv.cacheRepo == nil {
		return func() {}, nil
	}

	token, err := j.srv.cacheRepo.AcquireLock(ctx, name, lockTTL)
	if err != nil {
		if errors.Is(err, common.ErrLockHeld) {
			xlog.Warn(ctx, logJob, xlog.String("message", "job already running"), xlog.String("lock", name))
		}
		return nil, err
	}

	return func() {
		if err := j.srv.cacheRepo.ReleaseLock(context.WithoutCancel(ctx), name, token); err != nil {
			xlog.Warn(ctx, logJob, xlog.String("message", "release lock"), xlog.String("lock", name), xlog.Err(err))
		}
	}, nil
}
