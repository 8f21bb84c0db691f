package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"
	"bitbucket.org/adsa/go-reservation-ledger/internal/monitoring"

	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
)

const (
	feeCleaning    = "taxa de limpeza"
	feeElectricity = "taxa de eletricidade"
	feeService     = "taxa de serviço"
)

type NormalizerService interface {
	// Normalize builds the canonical reservation out of the report entry and the reservation
	// itself, then resolves its cost center and stakeholder in the ledger. Missing or invalid
	// fields are returned together, each as a models.ValidationError.
	Normalize(ctx context.Context, report models.ReservationReport, raw models.RawReservation) (models.NormalizedReservation, error)
}

type normalizer service

var _ NormalizerService = (*normalizer)(nil)

func (n *normalizer) Normalize(ctx context.Context, report models.ReservationReport, raw models.RawReservation) (res models.NormalizedReservation, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	res, err = extractReservation(report, raw)
	if err != nil {
		return res, err
	}
	res.AccountID = n.srv.conf.Nibo.AccountID

	res.CostCenterID, err = n.srv.niboClient.FindOrCreateCostCenter(ctx, res.ListingInternalName)
	if err != nil {
		return res, fmt.Errorf("resolve cost center %q: %w", res.ListingInternalName, err)
	}

	res.StakeholderID, err = n.srv.niboClient.FindOrCreateStakeholder(ctx, res.GuestName)
	if err != nil {
		return res, fmt.Errorf("resolve stakeholder %q: %w", res.GuestName, err)
	}

	return res, nil
}

type extractor struct {
	errs *multierror.Error
}

func (e *extractor) fail(field, reason string) {
	e.errs = multierror.Append(e.errs, models.ValidationError{Field: field, Reason: reason})
}

func (e *extractor) text(field, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		e.fail(field, "")
	}
	return value
}

func (e *extractor) money(field string, value decimal.NullDecimal) decimal.Decimal {
	if !value.Valid {
		e.fail(field, "")
		return decimal.Zero
	}
	return e.nonNegative(field, value.Decimal)
}

func (e *extractor) nonNegative(field string, value decimal.Decimal) decimal.Decimal {
	if value.IsNegative() {
		e.fail(field, "must not be negative")
		return decimal.Zero
	}
	return value
}

func (e *extractor) date(field, value string) (time.Time, bool) {
	if strings.TrimSpace(value) == "" {
		e.fail(field, "")
		return time.Time{}, false
	}

	t, err := common.ParseDate(value)
	if err != nil {
		e.fail(field, "expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return t, true
}

// extractReservation is the I/O free part of normalization.
func extractReservation(report models.ReservationReport, raw models.RawReservation) (models.NormalizedReservation, error) {
	var (
		e   extractor
		res models.NormalizedReservation
	)

	res.ReservationID = e.text("id", report.ID)
	res.ListingInternalName = e.text("listing.internalName", report.Listing.InternalName)
	res.OwnerName = e.text("client.name", report.Client.Name)
	res.Partner = models.ParsePartner(report.PartnerName)

	if res.GuestName = raw.GuestsDetails.PrimaryName(); res.GuestName == "" {
		e.fail("guestName", "")
	}

	checkIn, checkInOK := e.date("checkInDate", report.CheckInDate)
	checkOut, checkOutOK := e.date("checkOutDate", report.CheckOutDate)
	if checkInOK && checkOutOK && checkIn.After(checkOut) {
		e.fail("checkOutDate", "before check-in date")
	}
	res.CheckInDate, res.CheckOutDate = checkIn, checkOut

	if report.CreationDate != "" {
		// informational only, an unreadable creation date is not a reason to reject
		res.CreationDate, _ = common.ParseDate(report.CreationDate)
	}

	res.CompanyCommission = e.money("companyCommision", report.CompanyCommission)
	res.BuyPrice = e.money("buyPrice", report.BuyPrice)
	res.ReserveTotal = e.money("reserveTotal", report.ReserveTotal)

	if raw.Stats == nil {
		e.fail("stats._f_totalPaid", "")
	} else {
		res.TotalPaid = e.money("stats._f_totalPaid", raw.Stats.TotalPaid)
	}

	res.IssTax = decimal.Zero
	if report.ISS.Valid {
		res.IssTax = e.nonNegative("iss", report.ISS.Decimal)
	}

	res.CleaningFee = e.nonNegative("fee."+feeCleaning, findFee(report.Fee, feeCleaning))
	res.ElectricityFee = e.nonNegative("fee."+feeElectricity, findFee(report.Fee, feeElectricity))
	res.ServiceCharge = e.nonNegative("fee."+feeService, findFee(report.Fee, feeService))

	res.OwnerFee = decimal.Zero
	if res.Partner.Is(models.PartnerBooking) && len(report.OwnerFee) > 0 {
		res.OwnerFee = e.nonNegative("ownerFee", report.OwnerFee[0].Val)
	}

	if err := e.errs.ErrorOrNil(); err != nil {
		return res, common.WrapError(common.ErrValidation, err)
	}
	return res, nil
}

// findFee returns the value of the first fee whose description matches.
func findFee(fees []models.ReportFee, desc string) decimal.Decimal {
	for _, fee := range fees {
		if strings.EqualFold(strings.TrimSpace(fee.Desc), desc) {
			return fee.Val
		}
	}
	return decimal.Zero
}
