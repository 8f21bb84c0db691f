package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"
	"bitbucket.org/adsa/go-reservation-ledger/internal/monitoring"
)

const logLedger = "[LEDGER-ADMIN]"

// LedgerService is the manual repair path for schedules the reconciler got wrong.
type LedgerService interface {
	CreateSchedule(ctx context.Context, req models.ScheduleRequest) (models.ScheduleCreatedResponse, error)
	UpdateSchedule(ctx context.Context, side, scheduleID string, req models.ScheduleRequest) error
	DeleteSchedule(ctx context.Context, side, scheduleID string) error
	GetTransaction(ctx context.Context, transactionID string) (json.RawMessage, error)
}

type ledger service

var _ LedgerService = (*ledger)(nil)

func (l *ledger) CreateSchedule(ctx context.Context, req models.ScheduleRequest) (res models.ScheduleCreatedResponse, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	schedule, err := toSchedule(req)
	if err != nil {
		return res, err
	}

	side := schedule.Kind.ScheduleKind()
	created, err := l.srv.niboClient.CreateSchedule(ctx, side, schedule)
	if err != nil {
		return res, err
	}

	xlog.Info(ctx, logLedger,
		xlog.String("message", "schedule created by hand"),
		xlog.String("reservation_id", req.ReservationID),
		xlog.String("kind", req.Kind.String()),
		xlog.String("schedule_id", created.ScheduleID))

	return models.ScheduleCreatedResponse{
		ScheduleID: created.ScheduleID,
		Side:       side,
		Reference:  created.Reference,
	}, nil
}

func (l *ledger) UpdateSchedule(ctx context.Context, side, scheduleID string, req models.ScheduleRequest) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	kind, err := parseSide(side)
	if err != nil {
		return err
	}

	schedule, err := toSchedule(req)
	if err != nil {
		return err
	}
	// a receivable on the debit side would never be found again by its reservation
	if schedule.Kind.ScheduleKind() != kind {
		return fmt.Errorf("%w: %s schedules live on the %s side", common.ErrValidation, schedule.Kind, schedule.Kind.ScheduleKind())
	}

	if err = l.srv.niboClient.UpdateSchedule(ctx, kind, scheduleID, schedule); err != nil {
		return err
	}

	xlog.Info(ctx, logLedger,
		xlog.String("message", "schedule updated by hand"),
		xlog.String("side", string(kind)),
		xlog.String("schedule_id", scheduleID))
	return nil
}

func (l *ledger) DeleteSchedule(ctx context.Context, side, scheduleID string) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	kind, err := parseSide(side)
	if err != nil {
		return err
	}

	if err = l.srv.niboClient.DeleteSchedule(ctx, kind, scheduleID); err != nil {
		return err
	}

	xlog.Info(ctx, logLedger,
		xlog.String("message", "schedule deleted by hand"),
		xlog.String("side", string(kind)),
		xlog.String("schedule_id", scheduleID))
	return nil
}

func (l *ledger) GetTransaction(ctx context.Context, transactionID string) (json.RawMessage, error) {
	return l.srv.niboClient.GetTransaction(ctx, transactionID)
}

func parseSide(side string) (models.ScheduleKind, error) {
	kind := models.ScheduleKind(strings.ToLower(strings.TrimSpace(side)))
	switch kind {
	case models.ScheduleKindDebit, models.ScheduleKindCredit:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: unknown schedule side %q", common.ErrValidation, side)
	}
}

// toSchedule applies the same constraints as generated schedules: positive values rounded to
// cents and one cost center carrying the total.
func toSchedule(req models.ScheduleRequest) (models.TransactionSchedule, error) {
	if req.Kind == models.TransactionKindUnknown {
		return models.TransactionSchedule{}, fmt.Errorf("%w: transaction kind is required", common.ErrValidation)
	}

	dueDate, err := common.ParseDate(req.DueDate)
	if err != nil {
		return models.TransactionSchedule{}, common.WrapError(common.ErrValidation, err)
	}

	schedule := models.TransactionSchedule{
		Kind:          req.Kind,
		ReservationID: strings.TrimSpace(req.ReservationID),
		StakeholderID: req.StakeholderID,
		Description:   req.Description,
		DueDate:       dueDate,
		ScheduleDate:  dueDate,
		AccrualDate:   dueDate,
	}
	if schedule.ReservationID == "" {
		return models.TransactionSchedule{}, fmt.Errorf("%w: reservation id is required", common.ErrValidation)
	}

	if req.ScheduleDate != "" {
		if schedule.ScheduleDate, err = common.ParseDate(req.ScheduleDate); err != nil {
			return models.TransactionSchedule{}, common.WrapError(common.ErrValidation, err)
		}
	}
	if req.AccrualDate != "" {
		if schedule.AccrualDate, err = common.ParseDate(req.AccrualDate); err != nil {
			return models.TransactionSchedule{}, common.WrapError(common.ErrValidation, err)
		}
	}

	categories := make([]models.FinancialCategory, 0, len(req.Categories))
	for _, c := range req.Categories {
		value := c.Value.Round(2)
		if !value.IsPositive() || strings.TrimSpace(c.CategoryID) == "" {
			return models.TransactionSchedule{}, fmt.Errorf("%w: category %q needs an id and a positive value", common.ErrValidation, c.CategoryID)
		}
		categories = append(categories, models.FinancialCategory{CategoryID: c.CategoryID, Value: value})
	}
	if len(categories) == 0 {
		return models.TransactionSchedule{}, fmt.Errorf("%w: at least one category is required", common.ErrValidation)
	}

	return schedule.WithCategories(categories, req.CostCenterID), nil
}
