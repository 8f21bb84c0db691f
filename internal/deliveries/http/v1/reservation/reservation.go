package reservation

import (
	"errors"
	"io"
	nethttp "net/http"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common/http"
	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/validation"
	"bitbucket.org/adsa/go-reservation-ledger/internal/deliveries/queue"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"
	"bitbucket.org/adsa/go-reservation-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

type reservationHandler struct {
	reservationSvc    services.ReservationService
	eventProcessorSvc services.EventProcessorService
	auditSvc          services.AuditService
	queue             queue.Queue
}

// New reservation handler will initialize the reservations/ resources endpoint
func New(
	app *echo.Group,
	reservationSvc services.ReservationService,
	eventProcessorSvc services.EventProcessorService,
	auditSvc services.AuditService,
	q queue.Queue,
) {
	handler := reservationHandler{
		reservationSvc:    reservationSvc,
		eventProcessorSvc: eventProcessorSvc,
		auditSvc:          auditSvc,
		queue:             q,
	}
	api := app.Group("/reservations")
	api.GET("/:id/schedules", handler.getSchedules)
	api.POST("/:id/reconcile", handler.reconcile)
}

// getSchedules API get ledger schedules of a reservation
// @Summary Get every ledger schedule of a reservation
// @Tags Reservations
// @Produce  json
// @Param id path string true "reservation id"
// @Success 200 {object} http.RestListResponseModel
// @Failure 401 {object} http.RestErrorResponseModel
// @Failure 502 {object} http.RestErrorResponseModel
// @Router /v1/reservations/{id}/schedules [get]
func (h *reservationHandler) getSchedules(c echo.Context) error {
	res, err := h.reservationSvc.GetSchedules(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestErrorResponse(c, http.StatusFromError(err), err)
	}

	return http.RestSuccessResponseList(c, res)
}

// reconcile API queue a reservation for reprocessing
// @Summary Fetch a reservation and queue it as a synthetic event
// @Tags Reservations
// @Accept  json
// @Produce  json
// @Param id path string true "reservation id"
// @Param body body models.ReconcileRequest false "body"
// @Success 202 {object} models.WebhookQueuedResponse
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Router /v1/reservations/{id}/reconcile [post]
func (h *reservationHandler) reconcile(c echo.Context) error {
	req := new(models.ReconcileRequest)

	if err := c.Bind(req); err != nil && !errors.Is(err, io.EOF) {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	ctx := c.Request().Context()
	event, err := h.eventProcessorSvc.BuildEvent(ctx, c.Param("id"), req.Action)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusFromError(err), err)
	}

	h.auditSvc.RecordRequest(ctx, event)

	if err = h.queue.Enqueue(ctx, event); err != nil {
		return http.RestErrorResponse(c, http.StatusFromError(err), err)
	}

	xlog.Info(ctx, "[ADMIN] reservation queued for reconciliation",
		xlog.String("reservation_id", c.Param("id")),
		xlog.String("event_id", event.EventID),
		xlog.String("action", event.Action))

	return http.RestSuccessResponse(c, nethttp.StatusAccepted, models.WebhookQueuedResponse{Status: "queued"})
}
