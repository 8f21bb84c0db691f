// Package rules turns a normalized reservation into the schedule plans the ledger receives.
// Everything here is pure; counterparties are named, not resolved.
package rules

import (
	"fmt"
	"strings"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	"bitbucket.org/adsa/go-reservation-ledger/internal/config"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"
)

const moneyPlaces = 2

type Engine struct {
	registry               map[models.PartnerKind]CategoryRule
	commissionCounterparty string
}

func New(cfg config.Rules) *Engine {
	return &Engine{
		registry:               newRegistry(cfg),
		commissionCounterparty: strings.TrimSpace(cfg.CommissionCounterparty),
	}
}

func (e *Engine) rule(p models.Partner) CategoryRule {
	if r, ok := e.registry[p.Kind]; ok {
		return r
	}
	return otherRule{}
}

func (e *Engine) Receivable(res models.NormalizedReservation) models.SchedulePlan {
	categories, due := e.rule(res.Partner).Receivable(res)
	return models.SchedulePlan{
		Kind:         models.TransactionKindReceivable,
		Categories:   keepPositive(categories),
		DueDate:      due,
		ScheduleDate: due,
		Counterparty: models.Counterparty{
			Role: models.CounterpartyCustomer,
			ID:   res.StakeholderID,
			Name: res.GuestName,
		},
	}
}

func (e *Engine) Operational(res models.NormalizedReservation) models.SchedulePlan {
	categories, due := e.rule(res.Partner).Operational(res)
	return models.SchedulePlan{
		Kind:         models.TransactionKindOperational,
		Categories:   keepPositive(categories),
		DueDate:      due,
		ScheduleDate: due,
		Counterparty: models.Counterparty{
			Role: models.CounterpartySupplier,
			Name: res.OwnerName,
		},
	}
}

func (e *Engine) Commission(res models.NormalizedReservation) models.SchedulePlan {
	categories, due := e.rule(res.Partner).Commission(res)
	return models.SchedulePlan{
		Kind:         models.TransactionKindCommission,
		Categories:   keepPositive(categories),
		DueDate:      due,
		ScheduleDate: due,
		Counterparty: models.Counterparty{
			Role: models.CounterpartyCustomer,
			Name: e.commissionCounterparty,
		},
	}
}

func (e *Engine) Plan(kind models.TransactionKind, res models.NormalizedReservation) (models.SchedulePlan, error) {
	switch kind {
	case models.TransactionKindReceivable:
		return e.Receivable(res), nil
	case models.TransactionKindOperational:
		return e.Operational(res), nil
	case models.TransactionKindCommission:
		return e.Commission(res), nil
	default:
		return models.SchedulePlan{}, fmt.Errorf("%w: %s", common.ErrUnsupportedTransactionKind, kind)
	}
}

// keepPositive rounds to cents and drops everything that is not strictly positive.
func keepPositive(categories []models.FinancialCategory) []models.FinancialCategory {
	out := make([]models.FinancialCategory, 0, len(categories))
	for _, c := range categories {
		v := c.Value.Round(moneyPlaces)
		if !v.IsPositive() {
			continue
		}
		out = append(out, models.FinancialCategory{CategoryID: c.CategoryID, Value: v})
	}
	return out
}
