package services

import (
	"context"
	"fmt"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"
	"bitbucket.org/adsa/go-reservation-ledger/internal/monitoring"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const logReconciler = "[RECONCILER]"

type ReconcilerService interface {
	// Reconcile creates the schedules of a reservation the ledger does not know yet, or
	// updates every schedule it already has.
	Reconcile(ctx context.Context, res models.NormalizedReservation) (models.ReconciliationState, models.FlowReport, error)
	IsTransactionCreated(ctx context.Context, reservationID string) (bool, error)
	GetSchedules(ctx context.Context, reservationID string) ([]models.TransactionSchedule, error)

	Create(ctx context.Context, res models.NormalizedReservation) models.FlowReport
	Update(ctx context.Context, res models.NormalizedReservation, existing []models.TransactionSchedule) models.FlowReport
	// Delete removes every schedule of the reservation. Failures of single schedules are in the
	// report; the error is only set when the schedules could not be listed.
	Delete(ctx context.Context, reservationID string) (models.FlowReport, error)
}

type reconciler service

var _ ReconcilerService = (*reconciler)(nil)

func (r *reconciler) Reconcile(ctx context.Context, res models.NormalizedReservation) (state models.ReconciliationState, report models.FlowReport, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	existing, err := r.GetSchedules(ctx, res.ReservationID)
	if err != nil {
		return models.StateFailed, report, err
	}

	if len(existing) == 0 {
		return models.StateCreated, r.Create(ctx, res), nil
	}

	return models.StateUpdated, r.Update(ctx, res, existing), nil
}

func (r *reconciler) IsTransactionCreated(ctx context.Context, reservationID string) (bool, error) {
	existing, err := r.GetSchedules(ctx, reservationID)
	if err != nil {
		return false, err
	}
	return len(existing) > 0, nil
}

// GetSchedules looks the reservation up on both ledger sides, debit first.
func (r *reconciler) GetSchedules(ctx context.Context, reservationID string) (schedules []models.TransactionSchedule, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	found := make([][]models.TransactionSchedule, len(models.ScheduleKinds))

	group, gctx := errgroup.WithContext(ctx)
	for i, kind := range models.ScheduleKinds {
		group.Go(func() error {
			list, err := r.srv.niboClient.FindSchedulesByReference(gctx, kind, reservationID)
			if err != nil {
				return fmt.Errorf("find %s schedules: %w", kind, err)
			}
			found[i] = list
			return nil
		})
	}
	if err = group.Wait(); err != nil {
		return nil, common.WrapError(common.ErrExistenceCheckFailed, err)
	}

	schedules = []models.TransactionSchedule{}
	for _, list := range found {
		schedules = append(schedules, list...)
	}
	return schedules, nil
}

func (r *reconciler) Create(ctx context.Context, res models.NormalizedReservation) (report models.FlowReport) {
	kinds := []models.TransactionKind{models.TransactionKindReceivable, models.TransactionKindOperational}
	if res.IsUnpaidBooking() {
		kinds = append(kinds, models.TransactionKindCommission)
	}

	for _, kind := range kinds {
		report.Add(r.createOne(ctx, res, kind))
	}

	r.recordSchedules(report)
	return report
}

func (r *reconciler) createOne(ctx context.Context, res models.NormalizedReservation, kind models.TransactionKind) models.ScheduleResult {
	result := models.ScheduleResult{Kind: kind, ScheduleKind: kind.ScheduleKind(), Operation: models.OperationCreate}

	plan, err := r.srv.rules.Plan(kind, res)
	if err != nil {
		result.Err = err
		return result
	}

	if len(plan.Categories) == 0 {
		xlog.Info(ctx, logReconciler,
			xlog.String("message", "no categories, schedule skipped"),
			xlog.String("reservation_id", res.ReservationID),
			xlog.String("kind", kind.String()))
		result.Operation = models.OperationSkip
		return result
	}

	stakeholderID, err := r.resolveCounterparty(ctx, plan.Counterparty)
	if err != nil {
		result.Err = err
		r.logResult(ctx, res.ReservationID, result)
		return result
	}

	total := models.SumCategories(plan.Categories)
	schedule := models.TransactionSchedule{
		Kind:          kind,
		ReservationID: res.ReservationID,
		StakeholderID: stakeholderID,
		Description:   res.Description(),
		DueDate:       plan.DueDate,
		ScheduleDate:  plan.ScheduleDate,
		AccrualDate:   res.CheckInDate,
		CostCenters: []models.CostCenterAllocation{{
			CostCenterID: res.CostCenterID,
			Percent:      decimal.NewFromInt(100),
			Value:        total,
		}},
		Categories: plan.Categories,
	}

	created, err := r.srv.niboClient.CreateSchedule(ctx, result.ScheduleKind, schedule)
	result.ScheduleID = created.ScheduleID
	result.Err = err
	r.logResult(ctx, res.ReservationID, result)

	return result
}

func (r *reconciler) resolveCounterparty(ctx context.Context, cp models.Counterparty) (string, error) {
	if cp.ID != "" {
		return cp.ID, nil
	}

	switch cp.Role {
	case models.CounterpartySupplier:
		return r.srv.niboClient.FindOrCreateSupplier(ctx, cp.Name)
	default:
		return r.srv.niboClient.FindOrCreateStakeholder(ctx, cp.Name)
	}
}

// Update recomputes the categories of every existing schedule from its kind. Counterparty
// and dates stay as the ledger has them.
func (r *reconciler) Update(ctx context.Context, res models.NormalizedReservation, existing []models.TransactionSchedule) (report models.FlowReport) {
	for _, s := range existing {
		result := models.ScheduleResult{
			Kind:         s.Kind,
			ScheduleKind: s.Kind.ScheduleKind(),
			ScheduleID:   s.ScheduleID,
			Operation:    models.OperationUpdate,
		}

		plan, err := r.srv.rules.Plan(s.Kind, res)
		if err != nil {
			result.Err = err
			report.Add(result)
			continue
		}

		if len(plan.Categories) == 0 {
			result.Operation = models.OperationSkip
			xlog.Warn(ctx, logReconciler,
				xlog.String("message", "no categories for existing schedule, left unchanged"),
				xlog.String("reservation_id", res.ReservationID),
				xlog.String("schedule_id", s.ScheduleID))
			report.Add(result)
			continue
		}

		updated := s.WithCategories(plan.Categories, res.CostCenterID)
		result.Err = r.srv.niboClient.UpdateSchedule(ctx, result.ScheduleKind, s.ScheduleID, updated)
		r.logResult(ctx, res.ReservationID, result)
		report.Add(result)
	}

	r.recordSchedules(report)
	return report
}

func (r *reconciler) Delete(ctx context.Context, reservationID string) (report models.FlowReport, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	existing, err := r.GetSchedules(ctx, reservationID)
	if err != nil {
		return report, err
	}

	for _, s := range existing {
		result := models.ScheduleResult{
			Kind:         s.Kind,
			ScheduleKind: s.Kind.ScheduleKind(),
			ScheduleID:   s.ScheduleID,
			Operation:    models.OperationDelete,
		}
		result.Err = r.srv.niboClient.DeleteSchedule(ctx, result.ScheduleKind, s.ScheduleID)
		r.logResult(ctx, reservationID, result)
		report.Add(result)
	}

	r.recordSchedules(report)
	return report, nil
}

func (r *reconciler) logResult(ctx context.Context, reservationID string, result models.ScheduleResult) {
	fields := []xlog.Field{
		xlog.String("reservation_id", reservationID),
		xlog.String("operation", result.Operation),
		xlog.String("kind", result.Kind.String()),
		xlog.String("schedule_kind", string(result.ScheduleKind)),
		xlog.String("schedule_id", result.ScheduleID),
	}
	if result.Err != nil {
		xlog.Warn(ctx, logReconciler, append(fields, xlog.Err(result.Err))...)
		return
	}
	xlog.Info(ctx, logReconciler, fields...)
}

func (r *reconciler) recordSchedules(report models.FlowReport) {
	if r.srv.metrics == nil {
		return
	}
	for _, res := range report.Results {
		r.srv.metrics.GetReconciliationPrometheus().RecordSchedule(res.Kind.String(), res.Operation, res.Err == nil)
	}
}
