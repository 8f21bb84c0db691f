package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestParsePartner(t *testing.T) {
	tests := []struct {
		in       string
		wantKind PartnerKind
		wantName string
	}{
		{in: "API airbnb", wantKind: PartnerAirbnb, wantName: "API airbnb"},
		{in: " api BOOKING.COM ", wantKind: PartnerBooking, wantName: "api BOOKING.COM"},
		{in: "API decolar", wantKind: PartnerDecolar, wantName: "API decolar"},
		{in: "API expedia", wantKind: PartnerExpedia, wantName: "API expedia"},
		{in: "Website", wantKind: PartnerWebsite, wantName: "Website"},
		{in: "diretas", wantKind: PartnerDirect, wantName: "diretas"},
		{in: "", wantKind: PartnerWebsite, wantName: "website"},
		{in: "   ", wantKind: PartnerWebsite, wantName: "website"},
		{in: "API vrbo", wantKind: PartnerOther, wantName: "API vrbo"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParsePartner(tt.in)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantName, got.String())
		})
	}
}

func TestNormalizedReservation(t *testing.T) {
	res := NormalizedReservation{
		ReservationID:       "HM01J",
		ListingInternalName: "APT 101",
		Partner:             NewPartner(PartnerBooking),
		TotalPaid:           decimal.Zero,
	}
	assert.Equal(t, "Reserva #HM01J - APT 101 - API booking.com", res.Description())
	assert.True(t, res.IsUnpaidBooking())

	res.TotalPaid = decimal.NewFromInt(10)
	assert.False(t, res.IsUnpaidBooking())

	res.TotalPaid = decimal.Zero
	res.Partner = NewPartner(PartnerAirbnb)
	assert.False(t, res.IsUnpaidBooking())
}
