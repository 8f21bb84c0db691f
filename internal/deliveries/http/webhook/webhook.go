package webhook

import (
	nethttp "net/http"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/http"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/http/middleware"
	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/validation"
	"bitbucket.org/adsa/go-reservation-ledger/internal/deliveries/queue"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"
	"bitbucket.org/adsa/go-reservation-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

const logMessage = "[WEBHOOK]"

type webhookHandler struct {
	queue    queue.Queue
	auditSvc services.AuditService
}

// New webhook handler will initialize the stays-webhook/ resources endpoint
func New(app *echo.Group, q queue.Queue, auditSvc services.AuditService, m middleware.AppMiddleware) {
	handler := webhookHandler{
		queue:    q,
		auditSvc: auditSvc,
	}
	app.POST("/stays-webhook", handler.receive, m.WebhookSignature())
}

// receive API accept a reservation lifecycle event
// @Summary Receive a reservation webhook call
// @Description The event is audited and queued; processing happens in the background
// @Tags Webhook
// @Accept  json
// @Produce  json
// @Param body body models.WebhookRequest true "body"
// @Success 200 {object} models.WebhookQueuedResponse
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 403 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 503 {object} http.RestErrorResponseModel
// @Router /stays-webhook [post]
func (h *webhookHandler) receive(c echo.Context) error {
	req := new(models.WebhookRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	ctx := c.Request().Context()
	event := req.ToEvent(common.Now())

	h.auditSvc.RecordRequest(ctx, event)

	if err := h.queue.Enqueue(ctx, event); err != nil {
		xlog.Warn(ctx, logMessage, xlog.String("message", "event not queued"), xlog.String("event_id", event.EventID), xlog.Err(err))
		return http.RestErrorResponse(c, http.StatusFromError(err), err)
	}

	xlog.Info(ctx, logMessage,
		xlog.String("message", "event queued"),
		xlog.String("event_id", event.EventID),
		xlog.String("action", event.Action))

	return http.RestSuccessResponse(c, nethttp.StatusOK, models.WebhookQueuedResponse{Status: "queued"})
}
