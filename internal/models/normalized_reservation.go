package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// NormalizedReservation is the canonical record every rule works on. It is rebuilt from the
// upstream report and reservation for each event and never stored.
type NormalizedReservation struct {
	ReservationID       string
	AccountID           string
	CostCenterID        string
	StakeholderID       string
	GuestName           string
	OwnerName           string
	CheckInDate         time.Time
	CheckOutDate        time.Time
	Partner             Partner
	ListingInternalName string
	CleaningFee         decimal.Decimal
	ElectricityFee      decimal.Decimal
	CompanyCommission   decimal.Decimal
	BuyPrice            decimal.Decimal
	ReserveTotal        decimal.Decimal
	TotalPaid           decimal.Decimal
	ServiceCharge       decimal.Decimal
	CreationDate        time.Time
	IssTax              decimal.Decimal
	OwnerFee            decimal.Decimal
}

// Description is the human text the ledger shows for every schedule of this reservation.
func (r NormalizedReservation) Description() string {
	return "Reserva #" + r.ReservationID + " - " + r.ListingInternalName + " - " + r.Partner.String()
}

// IsUnpaidBooking is the condition under which booking.com collects and a commission
// schedule is owed.
func (r NormalizedReservation) IsUnpaidBooking() bool {
	return r.Partner.Is(PartnerBooking) && r.TotalPaid.IsZero()
}
