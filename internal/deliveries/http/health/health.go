package health

import (
	nethttp "net/http"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common/http"
	"bitbucket.org/adsa/go-reservation-ledger/internal/deliveries/queue"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"

	"github.com/labstack/echo/v4"
)

type healthHandler struct {
	queue queue.Queue
}

// New health handler will initialize the health/ and queue-status/ resources endpoint
func New(app *echo.Group, q queue.Queue) {
	hh := healthHandler{queue: q}
	app.GET("/health", hh.healthCheck)
	app.GET("/queue-status", hh.queueStatus)
}

type DoHealthCheckLivenessResponse struct {
	Status string `json:"status" example:"ready"`
}

// healthCheck godoc
// @Summary 	Get the status of server
// @Description	Get the status of server
// @Produce		json
// @Success 200 {object} DoHealthCheckLivenessResponse
// @Router /health [get]
func (hh healthHandler) healthCheck(c echo.Context) error {
	return http.RestSuccessResponse(c, nethttp.StatusOK, DoHealthCheckLivenessResponse{
		Status: "ready",
	})
}

// queueStatus godoc
// @Summary 	Get the number of reservation events waiting to be processed
// @Produce		json
// @Success 200 {object} models.QueueStatusResponse
// @Router /queue-status [get]
func (hh healthHandler) queueStatus(c echo.Context) error {
	return http.RestSuccessResponse(c, nethttp.StatusOK, models.QueueStatusResponse{
		Status:    "ok",
		QueueSize: hh.queue.Len(),
	})
}
