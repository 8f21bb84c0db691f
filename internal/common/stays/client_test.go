package stays

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	"bitbucket.org/adsa/go-reservation-ledger/internal/config"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	m.Run()
}

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(config.HTTPConfiguration{
		BaseURL:   srv.URL + "/",
		Username:  "login",
		SecretKey: "secret",
		Timeout:   time.Second,
	}, nil)
}

func TestClient_GetReservation(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantID  string
		wantErr error
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   `{"_id":"65a0","id":"HM01J","type":"booked","guestsDetails":{"list":[{"name":"Ana"}]}}`,
			wantID: "HM01J",
		},
		{name: "not found", status: http.StatusNotFound, body: `{}`, wantErr: common.ErrReservationNotFound},
		{name: "upstream error", status: http.StatusBadRequest, body: `{}`, wantErr: common.ErrUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				user, pass, ok := r.BasicAuth()
				assert.True(t, ok)
				assert.Equal(t, "login", user)
				assert.Equal(t, "secret", pass)
				assert.Equal(t, "/booking/reservations/HM01J", r.URL.Path)

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			got, err := c.GetReservation(context.Background(), "HM01J")
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, "Ana", got.GuestsDetails.PrimaryName())
		})
	}
}

func TestClient_GetReservation_emptyID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := c.GetReservation(context.Background(), " ")
	assert.ErrorIs(t, err, common.ErrReservationNotFound)
}

func TestClient_GetReservationReport(t *testing.T) {
	query := models.ReportQuery{
		From:          time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		To:            time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC),
		ListingID:     "L1",
		ReservationID: "HM02",
	}

	tests := []struct {
		name    string
		body    string
		query   models.ReportQuery
		wantID  string
		wantErr error
	}{
		{
			name:   "picks the matching entry",
			body:   `[{"id":"HM01","companyCommision":10},{"id":"HM02","companyCommision":20.5,"listing":{"internalName":"APT 1"}}]`,
			query:  query,
			wantID: "HM02",
		},
		{
			name:   "first entry without reservation id",
			body:   `[{"id":"HM01"}]`,
			query:  models.ReportQuery{ListingID: "L1"},
			wantID: "HM01",
		},
		{name: "no matching entry", body: `[{"id":"HM01"}]`, query: query, wantErr: common.ErrReservationReportNotFound},
		{name: "empty export", body: `[]`, query: query, wantErr: common.ErrReservationReportNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/booking/reservations-export", r.URL.Path)

				var req RequestReservationExport
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "arrival", req.DateType)
				assert.Equal(t, []string{"L1"}, req.ListingID)
				assert.Equal(t, common.FormatDate(tt.query.From), req.From)

				_, _ = w.Write([]byte(tt.body))
			})

			got, err := c.GetReservationReport(context.Background(), tt.query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestClient_rawLookups(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/content/listings/L1":
			_, _ = w.Write([]byte(`{"_id":"L1","internalName":"APT 1"}`))
		case "/booking/clients/C1":
			_, _ = w.Write([]byte(`{"_id":"C1","name":"Owner"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	listing, err := c.GetListing(context.Background(), "L1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"L1","internalName":"APT 1"}`, string(listing))

	cl, err := c.GetClient(context.Background(), "C1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"C1","name":"Owner"}`, string(cl))

	_, err = c.GetClient(context.Background(), "C2")
	assert.ErrorIs(t, err, common.ErrClientNotFound)

	_, err = c.GetListing(context.Background(), "L2")
	assert.ErrorIs(t, err, common.ErrListingNotFound)
}
