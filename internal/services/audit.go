package services

import (
	"context"
	"encoding/json"
	"fmt"

	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"
)

const logAudit = "[AUDIT]"

type AuditService interface {
	// RecordRequest stores a received webhook call. It does not block; the write happens on a
	// tracked goroutine.
	RecordRequest(ctx context.Context, event models.RawReservationEvent)
	// RecordProcessingLog stores the outcome of a processed event, also without blocking.
	RecordProcessingLog(ctx context.Context, event models.RawReservationEvent, outcome models.Outcome)
	// Wait blocks until every pending write is done or ctx ends.
	Wait(ctx context.Context) error
}

type audit service

var _ AuditService = (*audit)(nil)

func (a *audit) enabled() bool {
	return a.srv.conf.Audit.Enabled && a.srv.sqlRepo != nil
}

func (a *audit) RecordRequest(ctx context.Context, event models.RawReservationEvent) {
	in := &models.RequestLog{
		Dt:      event.Timestamp,
		Action:  event.Action,
		Payload: string(event.Payload),
	}

	if !a.enabled() {
		xlog.Info(ctx, logAudit, xlog.String("message", "request"), xlog.String("event_id", event.EventID), xlog.String("action", event.Action))
		return
	}

	a.goTracked(ctx, "request", event.EventID, func(ctx context.Context) error {
		_, err := a.srv.sqlRepo.GetAuditLogRepository().CreateRequest(ctx, in)
		return err
	})
}

func (a *audit) RecordProcessingLog(ctx context.Context, event models.RawReservationEvent, outcome models.Outcome) {
	internal, err := json.Marshal(models.NewInternalPayload(outcome))
	if err != nil {
		xlog.Warn(ctx, logAudit, xlog.String("message", "marshal internal payload"), xlog.Err(err))
		internal = []byte(fmt.Sprintf(`{"event_id":%q,"state":%q}`, outcome.EventID, outcome.State))
	}

	in := &models.ProcessingLog{
		Dt:              event.Timestamp,
		Action:          event.Action,
		Payload:         string(event.Payload),
		InternalPayload: string(internal),
	}

	if !a.enabled() {
		xlog.Info(ctx, logAudit,
			xlog.String("message", "processing log"),
			xlog.String("event_id", event.EventID),
			xlog.String("state", string(outcome.State)))
		return
	}

	a.goTracked(ctx, "processing log", event.EventID, func(ctx context.Context) error {
		_, err := a.srv.sqlRepo.GetAuditLogRepository().CreateProcessingLog(ctx, in)
		return err
	})
}

// goTracked runs write detached from the caller's cancellation, retrying with backoff.
func (a *audit) goTracked(ctx context.Context, what, eventID string, write func(ctx context.Context) error) {
	ctx = context.WithoutCancel(ctx)

	a.srv.auditWG.Add(1)
	go func() {
		defer a.srv.auditWG.Done()

		operation := func() error { return write(ctx) }
		if a.srv.retryer == nil {
			if err := operation(); err != nil {
				xlog.Error(ctx, logAudit, xlog.String("message", "failed to write "+what), xlog.String("event_id", eventID), xlog.Err(err))
			}
			return
		}

		_ = a.srv.retryer.Retry(ctx, operation, func() error {
			xlog.Error(ctx, logAudit, xlog.String("message", "giving up writing "+what), xlog.String("event_id", eventID))
			return nil
		})
	}()
}

func (a *audit) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		a.srv.auditWG.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("audit writes still pending: %w", ctx.Err())
	}
}
