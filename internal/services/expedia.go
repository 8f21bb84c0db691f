package services

import (
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"

	"github.com/shopspring/decimal"
)

var (
	expediaCleaningFee     = decimal.NewFromInt(190)
	expediaISSRate         = decimal.RequireFromString("0.04762")
	expediaCommissionShare = decimal.RequireFromString("0.25")
)

// ApplyExpediaRecalculation rebuilds the split of an Expedia reservation out of its total,
// since the channel does not report fees: a fixed cleaning fee, ISS on the remainder, then a
// quarter of what is left as commission and the rest to the owner.
func ApplyExpediaRecalculation(res models.NormalizedReservation) models.NormalizedReservation {
	if !res.Partner.Is(models.PartnerExpedia) {
		return res
	}

	res.CleaningFee = expediaCleaningFee
	balance := res.ReserveTotal.Sub(res.CleaningFee)

	res.IssTax = balance.Mul(expediaISSRate)
	balance = balance.Sub(res.IssTax)

	res.CompanyCommission = balance.Mul(expediaCommissionShare)
	res.BuyPrice = balance.Sub(res.CompanyCommission)

	return res
}
