package rules

import (
	"strings"
	"time"

	"bitbucket.org/adsa/go-reservation-ledger/internal/config"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryRule is the pricing of one sales channel. Categories returned here are raw; the
// engine rounds them and drops the empty ones.
type CategoryRule interface {
	Receivable(res models.NormalizedReservation) ([]models.FinancialCategory, time.Time)
	Operational(res models.NormalizedReservation) ([]models.FinancialCategory, time.Time)
	Commission(res models.NormalizedReservation) ([]models.FinancialCategory, time.Time)
}

func newRegistry(cfg config.Rules) map[models.PartnerKind]CategoryRule {
	base := baseRule{ids: cfg.Categories}

	excluded := make(map[string]struct{}, len(cfg.AirbnbExcludedListings))
	for _, name := range cfg.AirbnbExcludedListings {
		excluded[strings.TrimSpace(name)] = struct{}{}
	}

	website := websiteRule{base}
	return map[models.PartnerKind]CategoryRule{
		models.PartnerAirbnb:  airbnbRule{baseRule: base, excludedListings: excluded},
		models.PartnerDecolar: decolarRule{base},
		models.PartnerBooking: bookingRule{base},
		models.PartnerExpedia: expediaRule{base},
		models.PartnerWebsite: website,
		models.PartnerDirect:  website,
		models.PartnerOther:   otherRule{},
	}
}

func category(id string, value decimal.Decimal) models.FinancialCategory {
	return models.FinancialCategory{CategoryID: id, Value: value}
}

type baseRule struct {
	ids config.CategoryIDs
}

// common head of every receivable: commission, cleaning, owner price and electricity
func (b baseRule) receivable(res models.NormalizedReservation) []models.FinancialCategory {
	return []models.FinancialCategory{
		category(b.ids.CompanyCommission, res.CompanyCommission),
		category(b.ids.CleaningFee, res.CleaningFee),
		category(b.ids.BuyPrice, res.BuyPrice),
		category(b.ids.ElectricityFee, res.ElectricityFee),
	}
}

// Operational pays the owner the buy price and the electricity, both under the owner fee
// category.
func (b baseRule) Operational(res models.NormalizedReservation) ([]models.FinancialCategory, time.Time) {
	return []models.FinancialCategory{
		category(b.ids.OwnerFee, res.BuyPrice),
		category(b.ids.OwnerFee, res.ElectricityFee),
	}, NextMonth15(res.CheckOutDate)
}

func (b baseRule) Commission(res models.NormalizedReservation) ([]models.FinancialCategory, time.Time) {
	return nil, NextMonth15(res.CheckOutDate)
}

type airbnbRule struct {
	baseRule
	excludedListings map[string]struct{}
}

func (r airbnbRule) Receivable(res models.NormalizedReservation) ([]models.FinancialCategory, time.Time) {
	categories := []models.FinancialCategory{
		category(r.ids.CompanyCommission, res.CompanyCommission),
		category(r.ids.CleaningFee, res.CleaningFee),
	}

	if _, excluded := r.excludedListings[strings.TrimSpace(res.ListingInternalName)]; !excluded {
		categories = append(categories,
			category(r.ids.BuyPrice, res.BuyPrice),
			category(r.ids.ElectricityFee, res.ElectricityFee),
		)
	}

	return categories, addDays(res.CheckInDate, 1)
}

type decolarRule struct{ baseRule }

func (r decolarRule) Receivable(res models.NormalizedReservation) ([]models.FinancialCategory, time.Time) {
	return append(r.receivable(res), category(r.ids.ISS, res.IssTax)), addDays(res.CheckInDate, 30)
}

type bookingRule struct{ baseRule }

// Receivable of a booking.com reservation depends on who collects: an unpaid reservation is
// collected at check-in together with the advance, a paid one is settled the month after
// check-out.
func (r bookingRule) Receivable(res models.NormalizedReservation) ([]models.FinancialCategory, time.Time) {
	if res.TotalPaid.IsZero() {
		return append(r.receivable(res), category(r.ids.BookingAdvance, res.OwnerFee)), res.CheckInDate
	}
	return r.receivable(res), NextMonth15(res.CheckOutDate)
}

func (r bookingRule) Commission(res models.NormalizedReservation) ([]models.FinancialCategory, time.Time) {
	return []models.FinancialCategory{
		category(r.ids.BookingCommission, res.OwnerFee),
	}, NextMonth15(res.CheckOutDate)
}

type expediaRule struct{ baseRule }

func (r expediaRule) Receivable(res models.NormalizedReservation) ([]models.FinancialCategory, time.Time) {
	return r.receivable(res), addDays(res.CheckOutDate, 32)
}

func (r expediaRule) Operational(res models.NormalizedReservation) ([]models.FinancialCategory, time.Time) {
	categories, _ := r.baseRule.Operational(res)
	return categories, addDays(res.CheckOutDate, 32)
}

// websiteRule covers website and direct reservations.
type websiteRule struct{ baseRule }

func (r websiteRule) Receivable(res models.NormalizedReservation) ([]models.FinancialCategory, time.Time) {
	return append(r.receivable(res), category(r.ids.ServiceCharge, res.ServiceCharge)), res.CheckInDate
}

// otherRule has no pricing; schedules of unknown channels are skipped.
type otherRule struct{}

func (otherRule) Receivable(res models.NormalizedReservation) ([]models.FinancialCategory, time.Time) {
	return nil, res.CheckInDate
}

func (otherRule) Operational(res models.NormalizedReservation) ([]models.FinancialCategory, time.Time) {
	return nil, NextMonth15(res.CheckOutDate)
}

func (otherRule) Commission(res models.NormalizedReservation) ([]models.FinancialCategory, time.Time) {
	return nil, NextMonth15(res.CheckOutDate)
}
