package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"bitbucket.org/adsa/go-reservation-ledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func runOperation(_ context.Context, operation, _ func() error) error {
	return operation()
}

func TestAudit_RecordRequest(t *testing.T) {
	t.Run("disabled only logs", func(t *testing.T) {
		h := serviceTestHelper(t)

		h.services.Audit.RecordRequest(context.Background(), newEvent(models.ActionReservationModified, bookingPayload))
		require.NoError(t, h.services.Audit.Wait(context.Background()))
	})

	t.Run("enabled stores the request", func(t *testing.T) {
		h := serviceTestHelper(t, withAudit())

		event := newEvent(models.ActionReservationModified, bookingPayload)

		h.mockRetryer.EXPECT().Retry(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(runOperation)
		h.mockAuditLogRepository.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *models.RequestLog) (*models.RequestLog, error) {
				assert.Equal(t, event.Timestamp, in.Dt)
				assert.Equal(t, event.Action, in.Action)
				assert.JSONEq(t, bookingPayload, in.Payload)
				return &models.RequestLog{ID: 1}, nil
			})

		ctx, cancel := context.WithCancel(context.Background())
		h.services.Audit.RecordRequest(ctx, event)
		// the write must survive the caller going away
		cancel()

		require.NoError(t, h.services.Audit.Wait(context.Background()))
	})

	t.Run("retry exhausted falls back", func(t *testing.T) {
		h := serviceTestHelper(t, withAudit())

		h.mockRetryer.EXPECT().Retry(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, operation, fallback func() error) error {
				assert.Error(t, operation())
				return fallback()
			})
		h.mockAuditLogRepository.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

		h.services.Audit.RecordRequest(context.Background(), newEvent(models.ActionReservationModified, bookingPayload))
		require.NoError(t, h.services.Audit.Wait(context.Background()))
	})
}

func TestAudit_RecordProcessingLog(t *testing.T) {
	h := serviceTestHelper(t, withAudit())

	event := newEvent(models.ActionReservationDeleted, bookingPayload)
	outcome := models.Outcome{
		EventID: event.EventID,
		State:   models.StateFailed,
		Reason:  "boom",
		Err:     errors.New("boom"),
	}
	outcome.Trace.Add("get_payload", "", nil)

	h.mockRetryer.EXPECT().Retry(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(runOperation)
	h.mockAuditLogRepository.EXPECT().CreateProcessingLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *models.ProcessingLog) (*models.ProcessingLog, error) {
			var internal models.InternalPayload
			require.NoError(t, json.Unmarshal([]byte(in.InternalPayload), &internal))
			assert.Equal(t, event.EventID, internal.EventID)
			assert.Equal(t, models.StateFailed, internal.State)
			assert.Equal(t, "boom", internal.Error)
			require.Len(t, internal.TrackLog, 1)
			assert.Equal(t, models.ActionReservationDeleted, in.Action)
			return in, nil
		})

	h.services.Audit.RecordProcessingLog(context.Background(), event, outcome)
	require.NoError(t, h.services.Audit.Wait(context.Background()))
}

func TestAudit_Wait_timeout(t *testing.T) {
	h := serviceTestHelper(t, withAudit())

	release := make(chan struct{})
	h.mockRetryer.EXPECT().Retry(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(runOperation)
	h.mockAuditLogRepository.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *models.RequestLog) (*models.RequestLog, error) {
			<-release
			return in, nil
		})

	h.services.Audit.RecordRequest(context.Background(), newEvent(models.ActionReservationModified, bookingPayload))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := h.services.Audit.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	require.NoError(t, h.services.Audit.Wait(context.Background()))
}
