package nibo

import (
	"strings"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"

	"github.com/shopspring/decimal"
)

const SERVICE_NAME = "nibo"

const (
	pathSchedules   = "/schedules/%s"
	pathSchedule    = "/schedules/%s/%s"
	pathTransaction = "/transactions/%s"
	pathCustomers   = "/customers"
	pathSuppliers   = "/suppliers"
	pathCostCenters = "/costcenters"

	headerAPIToken = "apitoken"

	// the ledger has no kind field, the kind travels as a reference suffix
	suffixOperational = "_operacional"
	suffixCommission  = "_comissao"

	costCenterValueTypePercent = 1
)

type (
	RequestSchedule struct {
		StakeholderID       string              `json:"stakeholderId"`
		Description         string              `json:"description"`
		Reference           string              `json:"reference"`
		DueDate             string              `json:"dueDate"`
		ScheduleDate        string              `json:"scheduleDate"`
		AccrualDate         string              `json:"accrualDate,omitempty"`
		CostCenterValueType int                 `json:"costCenterValueType"`
		CostCenters         []RequestCostCenter `json:"costCenters"`
		Categories          []RequestCategory   `json:"categories"`
	}

	RequestCostCenter struct {
		CostCenterID string  `json:"costCenterId"`
		Percent      float64 `json:"percent"`
		Value        float64 `json:"value,omitempty"`
	}

	RequestCategory struct {
		CategoryID string  `json:"categoryId"`
		Value      float64 `json:"value"`
	}

	ResponseScheduleList struct {
		Items []ResponseSchedule `json:"items"`
	}

	ResponseSchedule struct {
		ScheduleID   string               `json:"scheduleId"`
		Description  string               `json:"description"`
		Reference    string               `json:"reference"`
		DueDate      string               `json:"dueDate"`
		ScheduleDate string               `json:"scheduleDate"`
		AccrualDate  string               `json:"accrualDate"`
		Stakeholder  ResponseStakeholder  `json:"stakeholder"`
		CostCenters  []ResponseCostCenter `json:"costCenters"`
		Categories   []ResponseCategory   `json:"categories"`
	}

	ResponseStakeholder struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	ResponseCostCenter struct {
		CostCenterID string          `json:"costCenterId"`
		Description  string          `json:"description"`
		Percent      decimal.Decimal `json:"percent"`
		Value        decimal.Decimal `json:"value"`
	}

	ResponseCategory struct {
		CategoryID string          `json:"categoryId"`
		Value      decimal.Decimal `json:"value"`
	}

	ResponseStakeholderList struct {
		Items []ResponseStakeholder `json:"items"`
	}

	ResponseCostCenterList struct {
		Items []ResponseCostCenter `json:"items"`
	}

	RequestStakeholder struct {
		Name string `json:"name"`
	}

	RequestCostCenterCreate struct {
		Description string `json:"description"`
	}

	ResponseCreated struct {
		ID         string `json:"id"`
		ScheduleID string `json:"scheduleId"`
	}

	ResponseError struct {
		Error      any    `json:"error"`
		Message    string `json:"message"`
		StatusCode int    `json:"statusCode"`
	}
)

// composeReference builds the legacy reference string of a schedule.
func composeReference(kind models.TransactionKind, reservationID string) string {
	switch kind {
	case models.TransactionKindOperational:
		return reservationID + suffixOperational
	case models.TransactionKindCommission:
		return reservationID + suffixCommission
	default:
		return reservationID
	}
}

// parseReference is the inverse of composeReference. A reference without a known suffix is a
// receivable.
func parseReference(reference string) (reservationID string, kind models.TransactionKind) {
	reference = strings.TrimSpace(reference)
	if id, _, found := strings.Cut(reference, suffixOperational); found {
		return id, models.TransactionKindOperational
	}
	if id, _, found := strings.Cut(reference, suffixCommission); found {
		return id, models.TransactionKindCommission
	}
	return reference, models.TransactionKindReceivable
}

// odataString quotes s for an OData $filter literal.
func odataString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func containsFilter(field, value string) string {
	return "contains(" + field + "," + odataString(value) + ")"
}

func toRequestSchedule(s models.TransactionSchedule) RequestSchedule {
	req := RequestSchedule{
		StakeholderID:       s.StakeholderID,
		Description:         s.Description,
		Reference:           composeReference(s.Kind, s.ReservationID),
		DueDate:             common.FormatDate(s.DueDate),
		ScheduleDate:        common.FormatDate(s.ScheduleDate),
		AccrualDate:         common.FormatDate(s.AccrualDate),
		CostCenterValueType: costCenterValueTypePercent,
		CostCenters:         make([]RequestCostCenter, 0, len(s.CostCenters)),
		Categories:          make([]RequestCategory, 0, len(s.Categories)),
	}

	for _, cc := range s.CostCenters {
		req.CostCenters = append(req.CostCenters, RequestCostCenter{
			CostCenterID: cc.CostCenterID,
			Percent:      cc.Percent.InexactFloat64(),
			Value:        cc.Value.InexactFloat64(),
		})
	}
	for _, c := range s.Categories {
		req.Categories = append(req.Categories, RequestCategory{
			CategoryID: c.CategoryID,
			Value:      c.Value.InexactFloat64(),
		})
	}

	return req
}

func (r ResponseSchedule) toModel() models.TransactionSchedule {
	reservationID, kind := parseReference(r.Reference)

	s := models.TransactionSchedule{
		ScheduleID:    r.ScheduleID,
		Kind:          kind,
		ReservationID: reservationID,
		Reference:     r.Reference,
		StakeholderID: r.Stakeholder.ID,
		Description:   r.Description,
		CostCenters:   make([]models.CostCenterAllocation, 0, len(r.CostCenters)),
		Categories:    make([]models.FinancialCategory, 0, len(r.Categories)),
	}
	s.DueDate, _ = common.ParseDate(r.DueDate)
	s.ScheduleDate, _ = common.ParseDate(r.ScheduleDate)
	s.AccrualDate, _ = common.ParseDate(r.AccrualDate)

	for _, cc := range r.CostCenters {
		s.CostCenters = append(s.CostCenters, models.CostCenterAllocation{
			CostCenterID: cc.CostCenterID,
			Percent:      cc.Percent,
			Value:        cc.Value,
		})
	}
	for _, c := range r.Categories {
		s.Categories = append(s.Categories, models.FinancialCategory{
			CategoryID: c.CategoryID,
			Value:      c.Value.Abs(),
		})
	}

	return s
}
