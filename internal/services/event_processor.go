package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"
	"bitbucket.org/adsa/go-reservation-ledger/internal/monitoring"
)

const (
	logEventProcessor = "[EVENT-PROCESSOR]"

	reservationLockTTL  = 5 * time.Minute
	reservationLockPoll = 200 * time.Millisecond
)

type EventProcessorService interface {
	// Process runs one event through the reconciliation state machine. It never panics on bad
	// input and always returns a terminal outcome.
	Process(ctx context.Context, event models.RawReservationEvent) models.Outcome
	// BuildEvent fetches the current state of a reservation and wraps it as a synthetic event.
	BuildEvent(ctx context.Context, reservationID, action string) (models.RawReservationEvent, error)
}

type eventProcessor service

var _ EventProcessorService = (*eventProcessor)(nil)

func (p *eventProcessor) Process(ctx context.Context, event models.RawReservationEvent) (outcome models.Outcome) {
	startTime := time.Now()
	outcome = models.Outcome{
		EventID: event.EventID,
		Action:  event.Action,
		State:   models.StateReceived,
	}
	defer func() { p.finish(ctx, event, &outcome, startTime) }()

	switch event.Action {
	case models.ActionReservationModified:
		p.processModified(ctx, event, &outcome)
	case models.ActionReservationDeleted, models.ActionReservationCanceled:
		p.processDeleted(ctx, event, &outcome)
	case models.ActionReservationCreated:
		ignore(&outcome, "created reservations are only logged")
	default:
		ignore(&outcome, "unsupported action "+event.Action)
	}

	return outcome
}

func (p *eventProcessor) processModified(ctx context.Context, event models.RawReservationEvent, outcome *models.Outcome) {
	raw, ok := p.classify(event, outcome)
	if !ok {
		return
	}

	if raw.Type != models.ReservationTypeBooked {
		ignore(outcome, fmt.Sprintf("reservation type %q is not %s", raw.Type, models.ReservationTypeBooked))
		return
	}

	if p.isStale(raw.CheckInDate) {
		outcome.Trace.Add("ignored_old_reservation", "payload check-in", raw.CheckInDate)
		ignore(outcome, "check-in date older than stale window")
		return
	}

	release, err := p.lockReservation(ctx, outcome.ReservationID)
	if err != nil {
		fail(outcome, err)
		return
	}
	defer release()

	report, err := p.srv.staysClient.GetReservationReport(ctx, reportQuery(raw))
	if err != nil {
		fail(outcome, fmt.Errorf("get reservation report: %w", err))
		return
	}
	outcome.Trace.Add("get_reservation_report", "", report)

	if p.isStale(report.CheckInDate) {
		outcome.Trace.Add("ignored_old_reservation", "report check-in", report.CheckInDate)
		ignore(outcome, "check-in date older than stale window")
		return
	}

	res, err := p.srv.Normalizer.Normalize(ctx, report, raw)
	if err != nil {
		fail(outcome, fmt.Errorf("normalize reservation: %w", err))
		return
	}
	outcome.Trace.Add("create_reservation_dto", "", res)

	res = ApplyExpediaRecalculation(res)
	outcome.Trace.Add("calculate_expedia", "", res)

	state, flow, err := p.srv.Reconciler.Reconcile(ctx, res)
	outcome.Report = flow
	if err != nil {
		fail(outcome, err)
		return
	}

	outcome.State = state
	outcome.Err = flow.Err()
	outcome.Trace.Add(string(state), "", flow.Results)
}

func (p *eventProcessor) processDeleted(ctx context.Context, event models.RawReservationEvent, outcome *models.Outcome) {
	raw, ok := p.classify(event, outcome)
	if !ok {
		return
	}

	release, err := p.lockReservation(ctx, outcome.ReservationID)
	if err != nil {
		fail(outcome, err)
		return
	}
	defer release()

	report, err := p.srv.staysClient.GetReservationReport(ctx, reportQuery(raw))
	switch {
	case err != nil:
		// the reservation is usually gone upstream already
		outcome.Trace.Add("get_reservation_report", err.Error(), nil)
		xlog.Info(ctx, logEventProcessor,
			xlog.String("message", "report lookup failed, stale check skipped"),
			xlog.String("reservation_id", outcome.ReservationID),
			xlog.Err(err))
	case p.isStale(report.CheckInDate):
		outcome.Trace.Add("get_reservation_report", "", report)
		outcome.Trace.Add("ignored_old_reservation", "report check-in", report.CheckInDate)
		ignore(outcome, "check-in date older than stale window")
		return
	default:
		outcome.Trace.Add("get_reservation_report", "", report)
		// schedules were created under the report's short code, the payload may only carry _id
		if report.ID != "" {
			outcome.ReservationID = report.ID
		}
	}

	flow, err := p.srv.Reconciler.Delete(ctx, outcome.ReservationID)
	outcome.Report = flow
	if err != nil {
		fail(outcome, err)
		return
	}

	outcome.State = models.StateDeleted
	outcome.Err = flow.Err()
	outcome.Trace.Add("delete_transaction", "", flow.Results)
}

// classify decodes the payload. A payload that is not a reservation fails the event.
func (p *eventProcessor) classify(event models.RawReservationEvent, outcome *models.Outcome) (models.RawReservation, bool) {
	raw, err := event.DecodeReservation()
	if err != nil {
		fail(outcome, common.WrapError(common.ErrInvalidPayload, err))
		return raw, false
	}

	outcome.ReservationID = raw.Reference()
	outcome.State = models.StateClassified
	outcome.Trace.Add("get_payload", "", raw)

	if outcome.ReservationID == "" {
		fail(outcome, fmt.Errorf("%w: %w", common.ErrInvalidPayload, models.ValidationError{Field: "id"}))
		return raw, false
	}

	return raw, true
}

// lockReservation keeps a second process (the worker CLI next to the API) from running the
// existence check and the writes of the same reservation at the same time. A cache outage
// degrades to unlocked processing.
func (p *eventProcessor) lockReservation(ctx context.Context, reservationID string) (release func(), err error) {
	release = func() {}
	if p.srv.reservationLockWait <= 0 || p.srv.cacheRepo == nil {
		return release, nil
	}

	name := "reservation:" + reservationID
	waitCtx, cancel := context.WithTimeout(ctx, p.srv.reservationLockWait)
	defer cancel()

	ticker := time.NewTicker(reservationLockPoll)
	defer ticker.Stop()

	for {
		token, err := p.srv.cacheRepo.AcquireLock(ctx, name, reservationLockTTL)
		switch {
		case err == nil:
			return func() {
				if err := p.srv.cacheRepo.ReleaseLock(context.WithoutCancel(ctx), name, token); err != nil {
					xlog.Warn(ctx, logEventProcessor, xlog.String("message", "release reservation lock"), xlog.String("lock", name), xlog.Err(err))
				}
			}, nil
		case !errors.Is(err, common.ErrLockHeld):
			xlog.Warn(ctx, logEventProcessor,
				xlog.String("message", "reservation lock unavailable, processing without it"),
				xlog.String("lock", name),
				xlog.Err(err))
			return release, nil
		}

		select {
		case <-waitCtx.Done():
			return nil, fmt.Errorf("%w: %s", common.ErrLockHeld, name)
		case <-ticker.C:
		}
	}
}

func (p *eventProcessor) isStale(checkIn string) bool {
	t, err := common.ParseDate(checkIn)
	if err != nil {
		return false
	}
	return common.IsOlderThanDays(t, p.srv.now(), p.srv.staleAfterDays())
}

func (p *eventProcessor) finish(ctx context.Context, event models.RawReservationEvent, outcome *models.Outcome, startTime time.Time) {
	fields := []xlog.Field{
		xlog.String("event_id", outcome.EventID),
		xlog.String("action", outcome.Action),
		xlog.String("reservation_id", outcome.ReservationID),
		xlog.String("state", string(outcome.State)),
		xlog.String("reason", outcome.Reason),
		xlog.Int("created", outcome.Report.Count(models.OperationCreate)),
		xlog.Int("updated", outcome.Report.Count(models.OperationUpdate)),
		xlog.Int("deleted", outcome.Report.Count(models.OperationDelete)),
		xlog.Duration("latency", time.Since(startTime)),
	}

	switch {
	case outcome.State == models.StateFailed:
		xlog.Error(ctx, logEventProcessor, append(fields, xlog.Err(outcome.Err))...)
	case outcome.Err != nil:
		xlog.Warn(ctx, logEventProcessor, append(fields, xlog.Err(outcome.Err))...)
	default:
		xlog.Info(ctx, logEventProcessor, fields...)
	}

	if p.srv.metrics != nil {
		p.srv.metrics.GetReconciliationPrometheus().RecordOutcome(startTime, outcome.Action, string(outcome.State))
	}

	p.srv.Audit.RecordProcessingLog(ctx, event, *outcome)

	if outcome.State == models.StateFailed && p.srv.dlq != nil {
		msg := models.NewFailedMessage(event, outcome.Err, p.srv.now())
		if err := p.srv.dlq.Publish(ctx, msg); err != nil {
			xlog.Warn(ctx, logEventProcessor, xlog.String("message", "failed event not parked"), xlog.String("event_id", event.EventID), xlog.Err(err))
		}
	}
}

func (p *eventProcessor) BuildEvent(ctx context.Context, reservationID, action string) (event models.RawReservationEvent, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if action == "" {
		action = models.ActionReservationModified
	}
	switch action {
	case models.ActionReservationModified, models.ActionReservationDeleted, models.ActionReservationCanceled:
	default:
		return event, fmt.Errorf("%w: %s", common.ErrUnsupportedAction, action)
	}

	payload, err := p.srv.staysClient.GetReservationJSON(ctx, reservationID)
	if err != nil {
		return event, err
	}

	if !json.Valid(payload) {
		return event, errors.Join(common.ErrInvalidPayload, fmt.Errorf("reservation %s is not json", reservationID))
	}

	now := p.srv.now()
	return models.NewRawReservationEvent(now.UTC().Format(time.RFC3339), action, payload, now), nil
}

func reportQuery(raw models.RawReservation) models.ReportQuery {
	q := models.ReportQuery{
		ListingID:     raw.ListingID,
		ReservationID: raw.Reference(),
	}
	q.From, _ = common.ParseDate(raw.CheckInDate)
	q.To, _ = common.ParseDate(raw.CheckOutDate)
	return q
}

func ignore(outcome *models.Outcome, reason string) {
	outcome.State = models.StateIgnored
	outcome.Reason = reason
}

func fail(outcome *models.Outcome, err error) {
	outcome.State = models.StateFailed
	outcome.Err = err
	outcome.Reason = err.Error()
}
