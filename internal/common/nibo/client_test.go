package nibo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/cache"
	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	"bitbucket.org/adsa/go-reservation-ledger/internal/config"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	m.Run()
}

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token", r.Header.Get(headerAPIToken))
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	mem := cache.NewInMemoryClient[string]()
	t.Cleanup(mem.Close)

	return New(config.HTTPConfiguration{BaseURL: srv.URL, SecretKey: "token", Timeout: time.Second}, nil, mem, time.Hour)
}

func sampleSchedule() models.TransactionSchedule {
	return models.TransactionSchedule{
		Kind:          models.TransactionKindOperational,
		ReservationID: "HM01J",
		StakeholderID: "sup-1",
		Description:   "Reserva #HM01J - APT 1 - API airbnb",
		DueDate:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		ScheduleDate:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		AccrualDate:   time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		CostCenters: []models.CostCenterAllocation{
			{CostCenterID: "cc-1", Percent: decimal.NewFromInt(100), Value: decimal.RequireFromString("150.5")},
		},
		Categories: []models.FinancialCategory{
			{CategoryID: "owner", Value: decimal.RequireFromString("150.5")},
		},
	}
}

func TestReference(t *testing.T) {
	tests := []struct {
		kind models.TransactionKind
		ref  string
	}{
		{kind: models.TransactionKindReceivable, ref: "HM01J"},
		{kind: models.TransactionKindOperational, ref: "HM01J_operacional"},
		{kind: models.TransactionKindCommission, ref: "HM01J_comissao"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.ref, composeReference(tt.kind, "HM01J"))

			id, kind := parseReference(tt.ref)
			assert.Equal(t, "HM01J", id)
			assert.Equal(t, tt.kind, kind)
		})
	}

	assert.Equal(t, "contains(name,'D''Avila')", containsFilter("name", "D'Avila"))
}

func TestClient_CreateSchedule(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantID  string
		wantErr error
	}{
		{name: "quoted id", status: http.StatusOK, body: `"sch-1"`, wantID: "sch-1"},
		{name: "object id", status: http.StatusCreated, body: `{"scheduleId":"sch-2"}`, wantID: "sch-2"},
		{name: "empty id", status: http.StatusOK, body: `""`, wantErr: common.ErrEmptyIdentifier},
		{name: "error document", status: http.StatusOK, body: `{"error":"invalid category"}`, wantErr: common.ErrLedgerRejected},
		{name: "bad request", status: http.StatusBadRequest, body: `{"message":"bad"}`, wantErr: common.ErrLedgerRejected},
		{name: "unavailable", status: http.StatusServiceUnavailable, body: ``, wantErr: common.ErrUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/schedules/debit", r.URL.Path)

				var req RequestSchedule
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "HM01J_operacional", req.Reference)
				assert.Equal(t, "2024-03-15", req.DueDate)
				assert.Equal(t, "2024-02-10", req.AccrualDate)
				assert.Equal(t, 150.5, req.Categories[0].Value)
				assert.Equal(t, float64(100), req.CostCenters[0].Percent)

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			got, err := c.CreateSchedule(context.Background(), models.ScheduleKindDebit, sampleSchedule())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ScheduleID)
			assert.Equal(t, "HM01J_operacional", got.Reference)
		})
	}
}

func TestClient_FindSchedulesByReference(t *testing.T) {
	t.Run("filters exact reservation id", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/schedules/credit", r.URL.Path)
			assert.Equal(t, "contains(reference,'HM01J')", r.URL.Query().Get("$filter"))

			_, _ = w.Write([]byte(`{"items":[
				{"scheduleId":"s1","reference":"HM01J","dueDate":"2024-02-11T00:00:00","stakeholder":{"id":"cus-1"},"categories":[{"categoryId":"c1","value":10}],"costCenters":[{"costCenterId":"cc-1","percent":100,"value":10}]},
				{"scheduleId":"s2","reference":"HM01J_comissao","stakeholder":{"id":"cus-2"}},
				{"scheduleId":"s3","reference":"HM01JX","stakeholder":{"id":"cus-3"}}
			]}`))
		})

		got, err := c.FindSchedulesByReference(context.Background(), models.ScheduleKindCredit, "HM01J")
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, "s1", got[0].ScheduleID)
		assert.Equal(t, models.TransactionKindReceivable, got[0].Kind)
		assert.Equal(t, "cus-1", got[0].StakeholderID)
		assert.Equal(t, "2024-02-11", common.FormatDate(got[0].DueDate))
		assert.True(t, got[0].Total().Equal(decimal.NewFromInt(10)))

		assert.Equal(t, models.TransactionKindCommission, got[1].Kind)
	})

	t.Run("not found is empty", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"statusCode":404}`))
		})

		got, err := c.FindSchedulesByReference(context.Background(), models.ScheduleKindDebit, "HM01J")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("upstream failure", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := c.FindSchedulesByReference(context.Background(), models.ScheduleKindDebit, "HM01J")
		assert.ErrorIs(t, err, common.ErrUpstreamUnavailable)
	})
}

func TestClient_UpdateAndDeleteSchedule(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/schedules/debit/s1":
			w.WriteHeader(http.StatusNoContent)
		case "/schedules/credit/gone":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	})
	ctx := context.Background()

	assert.NoError(t, c.UpdateSchedule(ctx, models.ScheduleKindDebit, "s1", sampleSchedule()))
	assert.NoError(t, c.DeleteSchedule(ctx, models.ScheduleKindDebit, "s1"))
	assert.ErrorIs(t, c.DeleteSchedule(ctx, models.ScheduleKindCredit, "gone"), common.ErrScheduleNotFound)
	assert.ErrorIs(t, c.UpdateSchedule(ctx, models.ScheduleKindCredit, "other", sampleSchedule()), common.ErrLedgerRejected)
	assert.ErrorIs(t, c.DeleteSchedule(ctx, models.ScheduleKindCredit, ""), common.ErrScheduleNotFound)
}

func TestClient_GetTransaction(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		switch r.URL.Path {
		case "/transactions/t1":
			_, _ = w.Write([]byte(`{"id":"t1","value":150.5}`))
		case "/transactions/soft-missing":
			_, _ = w.Write([]byte(`{"statusCode":404,"message":"not found"}`))
		case "/transactions/gone":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	})
	ctx := context.Background()

	res, err := c.GetTransaction(ctx, "t1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"t1","value":150.5}`, string(res))

	_, err = c.GetTransaction(ctx, "soft-missing")
	assert.ErrorIs(t, err, common.ErrTransactionNotFound)

	_, err = c.GetTransaction(ctx, "gone")
	assert.ErrorIs(t, err, common.ErrTransactionNotFound)

	_, err = c.GetTransaction(ctx, "other")
	assert.ErrorIs(t, err, common.ErrUpstreamUnavailable)

	_, err = c.GetTransaction(ctx, " ")
	assert.ErrorIs(t, err, common.ErrTransactionNotFound)
}

func TestClient_FindOrCreate(t *testing.T) {
	var creates, searches atomic.Int32

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/customers":
			searches.Add(1)
			_, _ = w.Write([]byte(`{"items":[{"id":"cus-x","name":"Ana Maria"},{"id":"cus-1","name":"ANA"}]}`))
		case r.Method == http.MethodGet && r.URL.Path == "/suppliers":
			searches.Add(1)
			_, _ = w.Write([]byte(`{"items":[]}`))
		case r.Method == http.MethodPost && r.URL.Path == "/suppliers":
			creates.Add(1)
			var req RequestStakeholder
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Joao Owner", req.Name)
			_, _ = w.Write([]byte(`"sup-9"`))
		case r.Method == http.MethodGet && r.URL.Path == "/costcenters":
			searches.Add(1)
			_, _ = w.Write([]byte(`{"items":[{"costCenterId":"cc-7","description":"APT 1"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	id, err := c.FindOrCreateStakeholder(ctx, " Ana ")
	require.NoError(t, err)
	assert.Equal(t, "cus-1", id)

	id, err = c.FindOrCreateStakeholder(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, "cus-1", id)

	id, err = c.FindOrCreateSupplier(ctx, "Joao Owner")
	require.NoError(t, err)
	assert.Equal(t, "sup-9", id)

	id, err = c.FindOrCreateCostCenter(ctx, "APT 1")
	require.NoError(t, err)
	assert.Equal(t, "cc-7", id)

	assert.Equal(t, int32(3), searches.Load(), "second stakeholder lookup is cached")
	assert.Equal(t, int32(1), creates.Load())

	_, err = c.FindOrCreateSupplier(ctx, "  ")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func Test_parseCreatedID(t *testing.T) {
	tests := []struct {
		body    string
		want    string
		wantErr bool
	}{
		{body: `"abc"`, want: "abc"},
		{body: `abc-123`, want: "abc-123"},
		{body: `{"id":"x1"}`, want: "x1"},
		{body: `{}`, wantErr: true},
		{body: ``, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			got, err := parseCreatedID([]byte(tt.body))
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrEmptyIdentifier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
