package health

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	"bitbucket.org/adsa/go-reservation-ledger/internal/deliveries/queue/mock"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testHealthCheckHelper struct {
	mockCtrl  *gomock.Controller
	mockQueue *mock.MockQueue
	router    *echo.Echo
}

func toolTestHealthCheckHelper(t *testing.T) testHealthCheckHelper {
	t.Helper()
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockQueue := mock.NewMockQueue(mockCtrl)

	app := echo.New()
	apiGroup := app.Group("/api")
	New(apiGroup, mockQueue)

	return testHealthCheckHelper{
		mockCtrl:  mockCtrl,
		mockQueue: mockQueue,
		router:    app,
	}
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func Test_Handler_healthCheck(t *testing.T) {
	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name      string
		urlCalled string
		mockData  mockData
		doMock    func(h testHealthCheckHelper)
	}{
		{
			name:      "health",
			urlCalled: "/api/health",
			mockData: mockData{
				wantRes:  `{"status":"ready"}`,
				wantCode: 200,
			},
		},
		{
			name:      "queue status",
			urlCalled: "/api/queue-status",
			mockData: mockData{
				wantRes:  `{"status":"ok","queue_size":3}`,
				wantCode: 200,
			},
			doMock: func(h testHealthCheckHelper) {
				h.mockQueue.EXPECT().Len().Return(3)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testHelper := toolTestHealthCheckHelper(t)
			if tt.doMock != nil {
				tt.doMock(testHelper)
			}
			req := httptest.NewRequest(http.MethodGet, tt.urlCalled, nil)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.mockData.wantCode, resp.StatusCode)
			require.Equal(t, tt.mockData.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}
