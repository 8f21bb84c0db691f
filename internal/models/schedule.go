package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleKind is the ledger side of a schedule.
type ScheduleKind string

const (
	ScheduleKindDebit  ScheduleKind = "debit"
	ScheduleKindCredit ScheduleKind = "credit"
)

var ScheduleKinds = []ScheduleKind{ScheduleKindDebit, ScheduleKindCredit}

// TransactionKind is what a schedule represents for a reservation.
type TransactionKind int

const (
	TransactionKindUnknown TransactionKind = iota
	TransactionKindReceivable
	TransactionKindOperational
	TransactionKindCommission
)

func (k TransactionKind) String() string {
	switch k {
	case TransactionKindReceivable:
		return "receivable"
	case TransactionKindOperational:
		return "operational"
	case TransactionKindCommission:
		return "commission"
	default:
		return "unknown"
	}
}

// ScheduleKind returns where the ledger keeps this kind: money owed to the owner is a
// debit, everything collected is a credit.
func (k TransactionKind) ScheduleKind() ScheduleKind {
	if k == TransactionKindOperational {
		return ScheduleKindDebit
	}
	return ScheduleKindCredit
}

func (k TransactionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *TransactionKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "receivable":
		*k = TransactionKindReceivable
	case "operational":
		*k = TransactionKindOperational
	case "commission":
		*k = TransactionKindCommission
	case "unknown", "":
		*k = TransactionKindUnknown
	default:
		return fmt.Errorf("unknown transaction kind %q", string(b))
	}
	return nil
}

type (
	FinancialCategory struct {
		CategoryID string          `json:"categoryId"`
		Value      decimal.Decimal `json:"value"`
	}

	CostCenterAllocation struct {
		CostCenterID string          `json:"costCenterId"`
		Percent      decimal.Decimal `json:"percent"`
		Value        decimal.Decimal `json:"value"`
	}

	// TransactionSchedule is a ledger entry. Kind is explicit; the ledger itself only knows
	// the reference string, which the gateway builds from ReservationID and Kind.
	TransactionSchedule struct {
		ScheduleID    string                 `json:"scheduleId,omitempty"`
		Kind          TransactionKind        `json:"kind"`
		ReservationID string                 `json:"reservationId"`
		Reference     string                 `json:"reference,omitempty"`
		StakeholderID string                 `json:"stakeholderId"`
		Description   string                 `json:"description"`
		DueDate       time.Time              `json:"dueDate"`
		ScheduleDate  time.Time              `json:"scheduleDate"`
		AccrualDate   time.Time              `json:"accrualDate"`
		CostCenters   []CostCenterAllocation `json:"costCenters"`
		Categories    []FinancialCategory    `json:"categories"`
	}

	CounterpartyRole int

	// Counterparty is who a schedule is owed to or by. ID is set when already resolved,
	// otherwise Name is looked up in the ledger.
	Counterparty struct {
		Role CounterpartyRole
		ID   string
		Name string
	}

	// SchedulePlan is what the rules decide for one transaction kind of a reservation.
	SchedulePlan struct {
		Kind         TransactionKind
		Categories   []FinancialCategory
		DueDate      time.Time
		ScheduleDate time.Time
		Counterparty Counterparty
	}
)

const (
	CounterpartyCustomer CounterpartyRole = iota + 1
	CounterpartySupplier
)

func (r CounterpartyRole) String() string {
	switch r {
	case CounterpartyCustomer:
		return "customer"
	case CounterpartySupplier:
		return "supplier"
	default:
		return "unknown"
	}
}

// SumCategories adds all category values.
func SumCategories(categories []FinancialCategory) decimal.Decimal {
	total := decimal.Zero
	for _, c := range categories {
		total = total.Add(c.Value)
	}
	return total
}

func (s TransactionSchedule) Total() decimal.Decimal {
	return SumCategories(s.Categories)
}

// WithCategories replaces the categories and keeps the single cost center allocation
// equal to their sum.
func (s TransactionSchedule) WithCategories(categories []FinancialCategory, fallbackCostCenterID string) TransactionSchedule {
	s.Categories = categories
	total := SumCategories(categories)

	if len(s.CostCenters) == 0 {
		s.CostCenters = []CostCenterAllocation{{CostCenterID: fallbackCostCenterID}}
	} else {
		s.CostCenters = []CostCenterAllocation{s.CostCenters[0]}
	}

	s.CostCenters[0].Percent = decimal.NewFromInt(100)
	s.CostCenters[0].Value = total
	return s
}

// ScheduleRequest is a schedule written by hand through the admin API. The reference is still
// derived from ReservationID and Kind, so a repaired schedule is found by later events.
type ScheduleRequest struct {
	Kind          TransactionKind     `json:"kind" validate:"required"`
	ReservationID string              `json:"reservationId" validate:"required,noStartEndSpaces"`
	StakeholderID string              `json:"stakeholderId" validate:"required"`
	CostCenterID  string              `json:"costCenterId" validate:"required"`
	Description   string              `json:"description"`
	DueDate       string              `json:"dueDate" validate:"required,date"`
	ScheduleDate  string              `json:"scheduleDate" validate:"omitempty,date"`
	AccrualDate   string              `json:"accrualDate" validate:"omitempty,date"`
	Categories    []FinancialCategory `json:"categories" validate:"required,min=1,dive"`
}

// ScheduleCreatedResponse is returned by the admin API after a schedule is written.
type ScheduleCreatedResponse struct {
	ScheduleID string       `json:"scheduleId"`
	Side       ScheduleKind `json:"side"`
	Reference  string       `json:"reference"`
}
