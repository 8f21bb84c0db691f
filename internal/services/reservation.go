package services

import (
	"context"
	"encoding/json"
	"strings"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"
)

// ReservationService backs the admin endpoints: what the ledger holds for a reservation and
// what the reservation platform says about it.
type ReservationService interface {
	GetSchedules(ctx context.Context, reservationID string) ([]models.TransactionSchedule, error)
	GetReservation(ctx context.Context, reservationID string) (json.RawMessage, error)
	GetListing(ctx context.Context, listingID string) (json.RawMessage, error)
	GetClient(ctx context.Context, clientID string) (json.RawMessage, error)
}

type reservation service

var _ ReservationService = (*reservation)(nil)

func (r *reservation) GetSchedules(ctx context.Context, reservationID string) ([]models.TransactionSchedule, error) {
	if strings.TrimSpace(reservationID) == "" {
		return nil, common.ErrReservationNotFound
	}
	return r.srv.Reconciler.GetSchedules(ctx, reservationID)
}

func (r *reservation) GetReservation(ctx context.Context, reservationID string) (json.RawMessage, error) {
	return r.srv.staysClient.GetReservationJSON(ctx, reservationID)
}

func (r *reservation) GetListing(ctx context.Context, listingID string) (json.RawMessage, error) {
	return r.srv.staysClient.GetListing(ctx, listingID)
}

func (r *reservation) GetClient(ctx context.Context, clientID string) (json.RawMessage, error) {
	return r.srv.staysClient.GetClient(ctx, clientID)
}
