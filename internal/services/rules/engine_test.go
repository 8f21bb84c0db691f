package rules

import (
	"testing"
	"time"

	"bitbucket.org/adsa/go-reservation-ledger/internal/config"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRules = config.Rules{
	Categories: config.CategoryIDs{
		CompanyCommission: "cat-commission",
		CleaningFee:       "cat-cleaning",
		BuyPrice:          "cat-buy",
		ElectricityFee:    "cat-electricity",
		ISS:               "cat-iss",
		BookingAdvance:    "cat-advance",
		ServiceCharge:     "cat-service",
		OwnerFee:          "cat-owner",
		BookingCommission: "cat-booking-commission",
	},
	AirbnbExcludedListings: []string{"APTO 327 - BARRA BALI", "API booking.com"},
	CommissionCounterparty: "BOOKING.COM BRASIL SERVICOS DE RESERVA DE HOTEIS LTDA.",
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func reservation(kind models.PartnerKind) models.NormalizedReservation {
	return models.NormalizedReservation{
		ReservationID:       "HM01J",
		StakeholderID:       "cus-1",
		GuestName:           "Ana",
		OwnerName:           "Joao Owner",
		CheckInDate:         date("2024-01-10"),
		CheckOutDate:        date("2024-01-20"),
		Partner:             models.NewPartner(kind),
		ListingInternalName: "APT 101",
		CleaningFee:         d("150"),
		ElectricityFee:      d("20"),
		CompanyCommission:   d("300.456"),
		BuyPrice:            d("700"),
		ReserveTotal:        d("1200"),
		TotalPaid:           d("1200"),
		ServiceCharge:       d("30"),
		IssTax:              d("12.5"),
		OwnerFee:            d("80"),
	}
}

type want struct {
	id    string
	value string
}

func assertCategories(t *testing.T, expected []want, got []models.FinancialCategory) {
	t.Helper()
	require.Len(t, got, len(expected))
	for i, w := range expected {
		assert.Equal(t, w.id, got[i].CategoryID, "category %d", i)
		assert.True(t, d(w.value).Equal(got[i].Value), "category %d: want %s got %s", i, w.value, got[i].Value)
	}
}

func TestNextMonth15(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "2024-01-20", want: "2024-02-15"},
		{in: "2024-12-05", want: "2025-01-15"},
		{in: "2024-01-31", want: "2024-02-15"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, date(tt.want), NextMonth15(date(tt.in)))
		})
	}
}

func TestEngine_Receivable(t *testing.T) {
	e := New(testRules)

	unpaidBooking := reservation(models.PartnerBooking)
	unpaidBooking.TotalPaid = decimal.Zero

	excludedAirbnb := reservation(models.PartnerAirbnb)
	excludedAirbnb.ListingInternalName = "APTO 327 - BARRA BALI"

	tests := []struct {
		name    string
		res     models.NormalizedReservation
		wantDue string
		want    []want
	}{
		{
			name:    "airbnb",
			res:     reservation(models.PartnerAirbnb),
			wantDue: "2024-01-11",
			want:    []want{{"cat-commission", "300.46"}, {"cat-cleaning", "150"}, {"cat-buy", "700"}, {"cat-electricity", "20"}},
		},
		{
			name:    "airbnb excluded listing",
			res:     excludedAirbnb,
			wantDue: "2024-01-11",
			want:    []want{{"cat-commission", "300.46"}, {"cat-cleaning", "150"}},
		},
		{
			name:    "decolar",
			res:     reservation(models.PartnerDecolar),
			wantDue: "2024-02-09",
			want:    []want{{"cat-commission", "300.46"}, {"cat-cleaning", "150"}, {"cat-buy", "700"}, {"cat-electricity", "20"}, {"cat-iss", "12.5"}},
		},
		{
			name:    "booking unpaid",
			res:     unpaidBooking,
			wantDue: "2024-01-10",
			want:    []want{{"cat-commission", "300.46"}, {"cat-cleaning", "150"}, {"cat-buy", "700"}, {"cat-electricity", "20"}, {"cat-advance", "80"}},
		},
		{
			name:    "booking paid",
			res:     reservation(models.PartnerBooking),
			wantDue: "2024-02-15",
			want:    []want{{"cat-commission", "300.46"}, {"cat-cleaning", "150"}, {"cat-buy", "700"}, {"cat-electricity", "20"}},
		},
		{
			name:    "expedia",
			res:     reservation(models.PartnerExpedia),
			wantDue: "2024-02-21",
			want:    []want{{"cat-commission", "300.46"}, {"cat-cleaning", "150"}, {"cat-buy", "700"}, {"cat-electricity", "20"}},
		},
		{
			name:    "website",
			res:     reservation(models.PartnerWebsite),
			wantDue: "2024-01-10",
			want:    []want{{"cat-commission", "300.46"}, {"cat-cleaning", "150"}, {"cat-buy", "700"}, {"cat-electricity", "20"}, {"cat-service", "30"}},
		},
		{
			name:    "direct",
			res:     reservation(models.PartnerDirect),
			wantDue: "2024-01-10",
			want:    []want{{"cat-commission", "300.46"}, {"cat-cleaning", "150"}, {"cat-buy", "700"}, {"cat-electricity", "20"}, {"cat-service", "30"}},
		},
		{
			name:    "other partner",
			res:     reservation(models.PartnerOther),
			wantDue: "2024-01-10",
			want:    []want{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := e.Receivable(tt.res)

			assert.Equal(t, models.TransactionKindReceivable, plan.Kind)
			assert.Equal(t, date(tt.wantDue), plan.DueDate)
			assert.Equal(t, plan.DueDate, plan.ScheduleDate)
			assert.Equal(t, models.Counterparty{Role: models.CounterpartyCustomer, ID: "cus-1", Name: "Ana"}, plan.Counterparty)
			assertCategories(t, tt.want, plan.Categories)
		})
	}
}

func TestEngine_ZeroValuesAreDropped(t *testing.T) {
	res := reservation(models.PartnerWebsite)
	res.CleaningFee = decimal.Zero
	res.ElectricityFee = d("0.004")
	res.ServiceCharge = d("-5")

	plan := New(testRules).Receivable(res)
	assertCategories(t, []want{{"cat-commission", "300.46"}, {"cat-buy", "700"}}, plan.Categories)

	for _, c := range plan.Categories {
		assert.True(t, c.Value.IsPositive())
	}
}

func TestEngine_Operational(t *testing.T) {
	e := New(testRules)

	tests := []struct {
		name    string
		res     models.NormalizedReservation
		wantDue string
		want    []want
	}{
		{
			name:    "airbnb",
			res:     reservation(models.PartnerAirbnb),
			wantDue: "2024-02-15",
			want:    []want{{"cat-owner", "700"}, {"cat-owner", "20"}},
		},
		{
			name:    "booking",
			res:     reservation(models.PartnerBooking),
			wantDue: "2024-02-15",
			want:    []want{{"cat-owner", "700"}, {"cat-owner", "20"}},
		},
		{
			name:    "expedia",
			res:     reservation(models.PartnerExpedia),
			wantDue: "2024-02-21",
			want:    []want{{"cat-owner", "700"}, {"cat-owner", "20"}},
		},
		{
			name:    "other partner",
			res:     reservation(models.PartnerOther),
			wantDue: "2024-02-15",
			want:    []want{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := e.Operational(tt.res)

			assert.Equal(t, models.TransactionKindOperational, plan.Kind)
			assert.Equal(t, date(tt.wantDue), plan.DueDate)
			assert.Equal(t, models.Counterparty{Role: models.CounterpartySupplier, Name: "Joao Owner"}, plan.Counterparty)
			assertCategories(t, tt.want, plan.Categories)
		})
	}
}

func TestEngine_Commission(t *testing.T) {
	e := New(testRules)

	booking := e.Commission(reservation(models.PartnerBooking))
	assert.Equal(t, date("2024-02-15"), booking.DueDate)
	assert.Equal(t, models.CounterpartyCustomer, booking.Counterparty.Role)
	assert.Equal(t, testRules.CommissionCounterparty, booking.Counterparty.Name)
	assertCategories(t, []want{{"cat-booking-commission", "80"}}, booking.Categories)

	assert.Empty(t, e.Commission(reservation(models.PartnerAirbnb)).Categories)
}

func TestEngine_Plan(t *testing.T) {
	e := New(testRules)
	res := reservation(models.PartnerBooking)

	for _, kind := range []models.TransactionKind{
		models.TransactionKindReceivable,
		models.TransactionKindOperational,
		models.TransactionKindCommission,
	} {
		plan, err := e.Plan(kind, res)
		require.NoError(t, err)
		assert.Equal(t, kind, plan.Kind)
	}

	_, err := e.Plan(models.TransactionKindUnknown, res)
	assert.Error(t, err)
}
