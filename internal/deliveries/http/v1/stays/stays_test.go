package stays

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	"bitbucket.org/adsa/go-reservation-ledger/internal/services/mock"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testStaysHelper struct {
	mockCtrl               *gomock.Controller
	mockReservationService *mock.MockReservationService
	router                 *echo.Echo
}

func staysTestHelper(t *testing.T) testStaysHelper {
	t.Helper()
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockReservationService := mock.NewMockReservationService(mockCtrl)

	app := echo.New()
	New(app.Group("/api/v1"), mockReservationService)

	return testStaysHelper{
		mockCtrl:               mockCtrl,
		mockReservationService: mockReservationService,
		router:                 app,
	}
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func Test_Handler_passthrough(t *testing.T) {
	tests := []struct {
		name      string
		urlCalled string
		wantCode  int
		wantRes   string
		doMock    func(h testStaysHelper)
	}{
		{
			name:      "reservation",
			urlCalled: "/api/v1/stays/reservations/HM01J",
			wantCode:  200,
			wantRes:   `{"id":"HM01J","type":"booked"}`,
			doMock: func(h testStaysHelper) {
				h.mockReservationService.EXPECT().GetReservation(gomock.Any(), "HM01J").Return(json.RawMessage(`{"id":"HM01J","type":"booked"}`), nil)
			},
		},
		{
			name:      "listing",
			urlCalled: "/api/v1/stays/listings/L1",
			wantCode:  200,
			wantRes:   `{"_id":"L1","internalName":"APT 101"}`,
			doMock: func(h testStaysHelper) {
				h.mockReservationService.EXPECT().GetListing(gomock.Any(), "L1").Return(json.RawMessage(`{"_id":"L1","internalName":"APT 101"}`), nil)
			},
		},
		{
			name:      "client not found",
			urlCalled: "/api/v1/stays/clients/C1",
			wantCode:  404,
			wantRes:   `{"status":"error","code":404,"message":"client not found"}`,
			doMock: func(h testStaysHelper) {
				h.mockReservationService.EXPECT().GetClient(gomock.Any(), "C1").Return(nil, common.ErrClientNotFound)
			},
		},
		{
			name:      "upstream down",
			urlCalled: "/api/v1/stays/listings/L1",
			wantCode:  502,
			wantRes:   `{"status":"error","code":502,"message":"upstream unavailable"}`,
			doMock: func(h testStaysHelper) {
				h.mockReservationService.EXPECT().GetListing(gomock.Any(), "L1").Return(nil, common.ErrUpstreamUnavailable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := staysTestHelper(t)
			tt.doMock(h)

			req := httptest.NewRequest(http.MethodGet, tt.urlCalled, nil)
			rec := httptest.NewRecorder()
			h.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.wantCode, resp.StatusCode)
			require.Equal(t, tt.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}
