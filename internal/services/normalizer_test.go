package services_test

import (
	"context"
	"errors"
	"testing"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNormalizer_Normalize(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := serviceTestHelper(t)

		h.mockNiboClient.EXPECT().FindOrCreateCostCenter(gomock.Any(), "APT 101").Return("cc-1", nil)
		h.mockNiboClient.EXPECT().FindOrCreateStakeholder(gomock.Any(), "Ana").Return("cus-1", nil)

		res, err := h.services.Normalizer.Normalize(context.Background(), bookingReport(), bookingRaw())
		require.NoError(t, err)

		want := normalizedBooking()
		assert.Equal(t, want.ReservationID, res.ReservationID)
		assert.Equal(t, "acc-1", res.AccountID)
		assert.Equal(t, "cc-1", res.CostCenterID)
		assert.Equal(t, "cus-1", res.StakeholderID)
		assert.Equal(t, "Ana", res.GuestName)
		assert.Equal(t, "Joao Owner", res.OwnerName)
		assert.Equal(t, models.PartnerBooking, res.Partner.Kind)
		assert.Equal(t, day("2024-01-10"), res.CheckInDate)
		assert.Equal(t, day("2024-01-20"), res.CheckOutDate)
		assert.Equal(t, day("2023-12-01"), res.CreationDate)
		assert.True(t, res.CleaningFee.Equal(d("150")), "first matching fee wins")
		assert.True(t, res.ElectricityFee.Equal(d("20")))
		assert.True(t, res.ServiceCharge.IsZero())
		assert.True(t, res.OwnerFee.Equal(d("80")))
		assert.True(t, res.TotalPaid.IsZero())
		assert.True(t, res.IssTax.IsZero())
		assert.True(t, res.IsUnpaidBooking())
		assert.Equal(t, "Reserva #HM01J - APT 101 - API booking.com", res.Description())
	})

	t.Run("owner fee only read for booking", func(t *testing.T) {
		h := serviceTestHelper(t)

		report := bookingReport()
		report.PartnerName = "API airbnb"

		h.mockNiboClient.EXPECT().FindOrCreateCostCenter(gomock.Any(), gomock.Any()).Return("cc-1", nil)
		h.mockNiboClient.EXPECT().FindOrCreateStakeholder(gomock.Any(), gomock.Any()).Return("cus-1", nil)

		res, err := h.services.Normalizer.Normalize(context.Background(), report, bookingRaw())
		require.NoError(t, err)
		assert.True(t, res.OwnerFee.IsZero())
		assert.Equal(t, models.PartnerAirbnb, res.Partner.Kind)
	})

	t.Run("blank partner is website", func(t *testing.T) {
		h := serviceTestHelper(t)

		report := bookingReport()
		report.PartnerName = ""
		report.Fee = append(report.Fee, models.ReportFee{Desc: "Taxa de Serviço", Val: d("45")})

		h.mockNiboClient.EXPECT().FindOrCreateCostCenter(gomock.Any(), gomock.Any()).Return("cc-1", nil)
		h.mockNiboClient.EXPECT().FindOrCreateStakeholder(gomock.Any(), gomock.Any()).Return("cus-1", nil)

		res, err := h.services.Normalizer.Normalize(context.Background(), report, bookingRaw())
		require.NoError(t, err)
		assert.Equal(t, models.PartnerWebsite, res.Partner.Kind)
		assert.True(t, res.ServiceCharge.Equal(d("45")))
	})

	t.Run("all missing fields reported together", func(t *testing.T) {
		h := serviceTestHelper(t)

		report := models.ReservationReport{
			PartnerName:  "API booking.com",
			CheckInDate:  "10/01/2024",
			CheckOutDate: "",
			Fee:          []models.ReportFee{{Desc: "taxa de limpeza", Val: d("-1")}},
		}
		raw := models.RawReservation{ID: "HM01J"}

		_, err := h.services.Normalizer.Normalize(context.Background(), report, raw)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrValidation)

		var merr *multierror.Error
		require.True(t, errors.As(err, &merr))

		var fields []string
		for _, e := range merr.Errors {
			var verr models.ValidationError
			require.True(t, errors.As(e, &verr))
			fields = append(fields, verr.Field)
		}
		assert.ElementsMatch(t, []string{
			"id",
			"listing.internalName",
			"client.name",
			"guestName",
			"checkInDate",
			"checkOutDate",
			"companyCommision",
			"buyPrice",
			"reserveTotal",
			"stats._f_totalPaid",
			"fee.taxa de limpeza",
		}, fields)
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		h := serviceTestHelper(t)

		report := bookingReport()
		report.CheckOutDate = "2024-01-05"

		_, err := h.services.Normalizer.Normalize(context.Background(), report, bookingRaw())
		require.Error(t, err)

		var verr models.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "checkOutDate", verr.Field)
		assert.Equal(t, "before check-in date", verr.Reason)
	})

	t.Run("negative money rejected", func(t *testing.T) {
		h := serviceTestHelper(t)

		report := bookingReport()
		report.BuyPrice = nd("-10")

		_, err := h.services.Normalizer.Normalize(context.Background(), report, bookingRaw())
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrValidation)
		assert.Contains(t, err.Error(), "buyPrice")
	})

	t.Run("cost center resolution fails", func(t *testing.T) {
		h := serviceTestHelper(t)

		h.mockNiboClient.EXPECT().FindOrCreateCostCenter(gomock.Any(), "APT 101").Return("", common.ErrUpstreamUnavailable)

		_, err := h.services.Normalizer.Normalize(context.Background(), bookingReport(), bookingRaw())
		assert.ErrorIs(t, err, common.ErrUpstreamUnavailable)
	})

	t.Run("stakeholder resolution fails", func(t *testing.T) {
		h := serviceTestHelper(t)

		h.mockNiboClient.EXPECT().FindOrCreateCostCenter(gomock.Any(), "APT 101").Return("cc-1", nil)
		h.mockNiboClient.EXPECT().FindOrCreateStakeholder(gomock.Any(), "Ana").Return("", common.ErrLedgerRejected)

		_, err := h.services.Normalizer.Normalize(context.Background(), bookingReport(), bookingRaw())
		assert.ErrorIs(t, err, common.ErrLedgerRejected)
	})
}
