package stays

import (
	"encoding/json"
	nethttp "net/http"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common/http"
	"bitbucket.org/adsa/go-reservation-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

type staysHandler struct {
	reservationSvc services.ReservationService
}

// New stays handler will initialize the stays/ passthrough endpoints
func New(app *echo.Group, reservationSvc services.ReservationService) {
	handler := staysHandler{
		reservationSvc: reservationSvc,
	}
	api := app.Group("/stays")
	api.GET("/reservations/:id", handler.getReservation)
	api.GET("/listings/:id", handler.getListing)
	api.GET("/clients/:id", handler.getClient)
}

// getReservation API raw reservation from the reservation platform
// @Tags Stays
// @Produce  json
// @Param id path string true "reservation id"
// @Success 200 {object} object
// @Failure 404 {object} http.RestErrorResponseModel
// @Router /v1/stays/reservations/{id} [get]
func (h *staysHandler) getReservation(c echo.Context) error {
	res, err := h.reservationSvc.GetReservation(c.Request().Context(), c.Param("id"))
	return h.respond(c, res, err)
}

// getListing API raw listing from the reservation platform
// @Tags Stays
// @Produce  json
// @Param id path string true "listing id"
// @Success 200 {object} object
// @Failure 404 {object} http.RestErrorResponseModel
// @Router /v1/stays/listings/{id} [get]
func (h *staysHandler) getListing(c echo.Context) error {
	res, err := h.reservationSvc.GetListing(c.Request().Context(), c.Param("id"))
	return h.respond(c, res, err)
}

// getClient API raw client from the reservation platform
// @Tags Stays
// @Produce  json
// @Param id path string true "client id"
// @Success 200 {object} object
// @Failure 404 {object} http.RestErrorResponseModel
// @Router /v1/stays/clients/{id} [get]
func (h *staysHandler) getClient(c echo.Context) error {
	res, err := h.reservationSvc.GetClient(c.Request().Context(), c.Param("id"))
	return h.respond(c, res, err)
}

func (h *staysHandler) respond(c echo.Context, res json.RawMessage, err error) error {
	if err != nil {
		return http.RestErrorResponse(c, http.StatusFromError(err), err)
	}
	return c.JSONBlob(nethttp.StatusOK, res)
}
