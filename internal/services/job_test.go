package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"
	"bitbucket.org/adsa/go-reservation-ledger/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestJob_ReconcileReservation(t *testing.T) {
	const lockName = "ReconcileReservation:HM01J"

	tests := []struct {
		name      string
		action    string
		doMock    func(h testServiceHelper)
		wantState models.ReconciliationState
		wantErr   error
	}{
		{
			name:   "stale reservation is ignored",
			action: "",
			doMock: func(h testServiceHelper) {
				h.mockCacheRepository.EXPECT().AcquireLock(gomock.Any(), lockName, 30*time.Minute).Return("tok", nil)
				h.mockCacheRepository.EXPECT().ReleaseLock(gomock.Any(), lockName, "tok").Return(nil)
				h.mockStaysClient.EXPECT().GetReservationJSON(gomock.Any(), "HM01J").Return(json.RawMessage(stalePayload()), nil)
			},
			wantState: models.StateIgnored,
		},
		{
			name:   "failed outcome returns its error",
			action: models.ActionReservationModified,
			doMock: func(h testServiceHelper) {
				h.mockCacheRepository.EXPECT().AcquireLock(gomock.Any(), lockName, gomock.Any()).Return("tok", nil)
				h.mockCacheRepository.EXPECT().ReleaseLock(gomock.Any(), lockName, "tok").Return(nil)
				h.mockStaysClient.EXPECT().GetReservationJSON(gomock.Any(), "HM01J").Return(json.RawMessage(bookingPayload), nil)
				h.mockStaysClient.EXPECT().GetReservationReport(gomock.Any(), gomock.Any()).
					Return(models.ReservationReport{}, common.ErrUpstreamUnavailable)
				h.mockDLQ.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantState: models.StateFailed,
			wantErr:   common.ErrUpstreamUnavailable,
		},
		{
			name:   "lock held",
			action: models.ActionReservationModified,
			doMock: func(h testServiceHelper) {
				h.mockCacheRepository.EXPECT().AcquireLock(gomock.Any(), lockName, gomock.Any()).Return("", common.ErrLockHeld)
			},
			wantErr: common.ErrLockHeld,
		},
		{
			name:   "unsupported action",
			action: models.ActionReservationCreated,
			doMock: func(h testServiceHelper) {
				h.mockCacheRepository.EXPECT().AcquireLock(gomock.Any(), lockName, gomock.Any()).Return("tok", nil)
				h.mockCacheRepository.EXPECT().ReleaseLock(gomock.Any(), lockName, "tok").Return(common.ErrInternalServerError)
			},
			wantErr: common.ErrUnsupportedAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			tt.doMock(h)

			outcome, err := h.services.Job.ReconcileReservation(context.Background(), "HM01J", tt.action)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantState, outcome.State)
		})
	}
}

func TestJob_ReplayRequests(t *testing.T) {
	t.Run("replays in order and counts states", func(t *testing.T) {
		h := serviceTestHelper(t)

		from := time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 0, 1)

		h.mockCacheRepository.EXPECT().AcquireLock(gomock.Any(), "ReplayRequests:2024-01-14", gomock.Any()).Return("tok", nil)
		h.mockCacheRepository.EXPECT().ReleaseLock(gomock.Any(), "ReplayRequests:2024-01-14", "tok").Return(nil)
		h.mockAuditLogRepository.EXPECT().ListRequests(gomock.Any(), models.RequestFilterOptions{
			Action: models.ActionReservationModified,
			From:   &from,
			To:     &to,
		}).Return([]models.RequestLog{
			{ID: 1, Dt: "2024-01-14T08:00:00Z", Action: models.ActionReservationModified, Payload: stalePayload()},
			{ID: 2, Dt: "2024-01-14T09:00:00Z", Action: models.ActionReservationModified, Payload: `{"type":"blocked","id":"X"}`},
			{ID: 3, Dt: "2024-01-14T10:00:00Z", Action: models.ActionReservationModified, Payload: `not json`},
		}, nil)
		h.mockDLQ.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		summary, err := h.services.Job.ReplayRequests(context.Background(), time.Date(2024, 1, 14, 18, 30, 0, 0, time.UTC), models.ActionReservationModified)
		require.NoError(t, err)
		assert.Equal(t, 3, summary.Total)
		assert.Equal(t, map[models.ReconciliationState]int{
			models.StateIgnored: 2,
			models.StateFailed:  1,
		}, summary.States)
	})

	t.Run("list fails", func(t *testing.T) {
		h := serviceTestHelper(t)

		h.mockCacheRepository.EXPECT().AcquireLock(gomock.Any(), gomock.Any(), gomock.Any()).Return("tok", nil)
		h.mockCacheRepository.EXPECT().ReleaseLock(gomock.Any(), gomock.Any(), "tok").Return(nil)
		h.mockAuditLogRepository.EXPECT().ListRequests(gomock.Any(), gomock.Any()).Return(nil, common.ErrInternalServerError)

		_, err := h.services.Job.ReplayRequests(context.Background(), testNow, "")
		assert.ErrorIs(t, err, common.ErrInternalServerError)
	})

	t.Run("without database", func(t *testing.T) {
		t.Parallel()

		srv := services.New(testConfig(), nil, nil, nil, nil, nil, nil)
		_, err := srv.Job.ReplayRequests(context.Background(), testNow, "")
		assert.ErrorIs(t, err, common.ErrAuditDisabled)
	})
}
