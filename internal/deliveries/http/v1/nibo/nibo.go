package nibo

import (
	nethttp "net/http"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common/http"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/validation"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"
	"bitbucket.org/adsa/go-reservation-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

type niboHandler struct {
	ledgerSvc services.LedgerService
}

// New nibo handler will initialize the nibo/ ledger repair endpoints
func New(app *echo.Group, ledgerSvc services.LedgerService) {
	handler := niboHandler{
		ledgerSvc: ledgerSvc,
	}
	api := app.Group("/nibo")
	api.POST("/schedules", handler.createSchedule)
	api.PUT("/schedules/:side/:scheduleId", handler.updateSchedule)
	api.DELETE("/schedules/:side/:scheduleId", handler.deleteSchedule)
	api.GET("/transactions/:id", handler.getTransaction)
}

// createSchedule API write a schedule by hand
// @Summary Create a ledger schedule for a reservation
// @Tags Nibo
// @Accept  json
// @Produce  json
// @Param body body models.ScheduleRequest true "schedule"
// @Success 201 {object} models.ScheduleCreatedResponse
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 502 {object} http.RestErrorResponseModel
// @Router /v1/nibo/schedules [post]
func (h *niboHandler) createSchedule(c echo.Context) error {
	req := new(models.ScheduleRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.ledgerSvc.CreateSchedule(c.Request().Context(), *req)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res)
}

// updateSchedule API overwrite a schedule by hand
// @Summary Replace a ledger schedule
// @Tags Nibo
// @Accept  json
// @Produce  json
// @Param side path string true "debit or credit"
// @Param scheduleId path string true "schedule id"
// @Param body body models.ScheduleRequest true "schedule"
// @Success 204
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Router /v1/nibo/schedules/{side}/{scheduleId} [put]
func (h *niboHandler) updateSchedule(c echo.Context) error {
	req := new(models.ScheduleRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	ctx := c.Request().Context()
	if err := h.ledgerSvc.UpdateSchedule(ctx, c.Param("side"), c.Param("scheduleId"), *req); err != nil {
		return http.RestErrorResponse(c, http.StatusFromError(err), err)
	}

	return c.NoContent(nethttp.StatusNoContent)
}

// deleteSchedule API remove a schedule by hand
// @Summary Delete a ledger schedule
// @Tags Nibo
// @Param side path string true "debit or credit"
// @Param scheduleId path string true "schedule id"
// @Success 204
// @Failure 404 {object} http.RestErrorResponseModel
// @Router /v1/nibo/schedules/{side}/{scheduleId} [delete]
func (h *niboHandler) deleteSchedule(c echo.Context) error {
	if err := h.ledgerSvc.DeleteSchedule(c.Request().Context(), c.Param("side"), c.Param("scheduleId")); err != nil {
		return http.RestErrorResponse(c, http.StatusFromError(err), err)
	}

	return c.NoContent(nethttp.StatusNoContent)
}

// getTransaction API raw ledger transaction
// @Tags Nibo
// @Produce  json
// @Param id path string true "transaction id"
// @Success 200 {object} object
// @Failure 404 {object} http.RestErrorResponseModel
// @Router /v1/nibo/transactions/{id} [get]
func (h *niboHandler) getTransaction(c echo.Context) error {
	res, err := h.ledgerSvc.GetTransaction(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestErrorResponse(c, http.StatusFromError(err), err)
	}
	return c.JSONBlob(nethttp.StatusOK, res)
}
