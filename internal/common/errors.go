package common

import (
	"errors"
	"fmt"
)

var (
	ErrValidation                 = errors.New("validation failed")
	ErrUnauthorized               = errors.New("unauthorized")
	ErrMissingWebhookSignature    = errors.New("missing webhook signature")
	ErrInvalidWebhookSignature    = errors.New("invalid webhook signature")
	ErrInvalidFormatDate          = errors.New("invalid format date")
	ErrDataNotFound               = errors.New("data not found")
	ErrInternalServerError        = errors.New("internal server error")
	ErrUpstreamUnavailable        = errors.New("upstream unavailable")
	ErrReservationNotFound        = errors.New("reservation not found")
	ErrReservationReportNotFound  = errors.New("reservation report not found")
	ErrListingNotFound            = errors.New("listing not found")
	ErrClientNotFound             = errors.New("client not found")
	ErrScheduleNotFound           = errors.New("schedule not found")
	ErrTransactionNotFound        = errors.New("transaction not found")
	ErrLedgerRejected             = errors.New("ledger rejected the request")
	ErrEmptyIdentifier            = errors.New("empty identifier returned by ledger")
	ErrQueueClosed                = errors.New("ingestion queue is closed")
	ErrUnsupportedAction          = errors.New("unsupported webhook action")
	ErrInvalidPayload             = errors.New("invalid webhook payload")
	ErrExistenceCheckFailed       = errors.New("unable to check existing schedules")
	ErrAuditDisabled              = errors.New("audit storage is disabled")
	ErrUnsupportedTransactionKind = errors.New("unsupported transaction kind")
	ErrLockHeld                   = errors.New("lock is held by another process")
	ErrUnknownJob                 = errors.New("unknown job")
)

// WrapError wraps err as the cause of base so errors.Is matches both.
func WrapError(base, err error) error {
	if err == nil {
		return base
	}
	return fmt.Errorf("%w: %w", base, err)
}
