package reconcile

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"
	"bitbucket.org/adsa/go-reservation-ledger/internal/services"
)

var errMissingReservationID = errors.New("reservation id is required, use --reservation")

type reconcileHandler struct {
	jobSrv services.JobService
}

func Routes(js services.JobService) map[string]func(ctx context.Context, date time.Time, flag models.JobFlag) error {
	handler := reconcileHandler{jobSrv: js}
	return map[string]func(ctx context.Context, date time.Time, flag models.JobFlag) error{
		"ReconcileReservation": handler.ReconcileReservation,
		"ReplayRequests":       handler.ReplayRequests,
	}
}

// ReconcileReservation reprocesses the reservation named by --reservation.
func (h reconcileHandler) ReconcileReservation(ctx context.Context, _ time.Time, flag models.JobFlag) error {
	if flag.ReservationID == "" {
		return errMissingReservationID
	}

	out, err := h.jobSrv.ReconcileReservation(ctx, flag.ReservationID, flag.Action)
	if err != nil {
		return err
	}

	xlog.Info(ctx, "[JOB] reservation reconciled",
		xlog.String("reservation_id", flag.ReservationID),
		xlog.String("state", string(out.State)),
		xlog.String("reason", out.Reason),
		xlog.Int("created", out.Report.Count(models.OperationCreate)),
		xlog.Int("updated", out.Report.Count(models.OperationUpdate)),
		xlog.Int("deleted", out.Report.Count(models.OperationDelete)))

	return out.Err
}

// ReplayRequests replays the audited webhook calls of --date, or of yesterday when no date is given.
func (h reconcileHandler) ReplayRequests(ctx context.Context, date time.Time, flag models.JobFlag) error {
	if date.IsZero() {
		date = common.Now().UTC().AddDate(0, 0, -1)
	}

	_, err := h.jobSrv.ReplayRequests(ctx, date, flag.Action)
	return err
}
