package setup

import (
	dlqpublisher "bitbucket.org/adsa/go-reservation-ledger/internal/common/dlq_publisher"
)

// PublisherClient is nil when no broker is configured.
type PublisherClient struct {
	ReservationDLQ dlqpublisher.Publisher
}
