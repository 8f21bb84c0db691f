package http

import (
	"errors"
	"fmt"
	"net/http"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
)

type (
	RestErrorResponseModel struct {
		Status  string `json:"status" example:"error"`
		Code    any    `json:"code"`
		Message string `json:"message" example:"error"`
	}

	RestErrorValidationResponseModel struct {
		Status  string `json:"status" example:"error"`
		Message string `json:"message" example:"validation failed"`
		Errors  any    `json:"errors"`
	}

	RestListResponseModel struct {
		Kind     string `json:"kind" example:"collection"`
		Contents any    `json:"contents"`
		Total    int    `json:"total" example:"2"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in any) error {
	return c.JSON(code, in)
}

func RestSuccessResponseList[T any](c echo.Context, data []T) error {
	if data == nil {
		data = []T{}
	}
	return c.JSON(http.StatusOK, RestListResponseModel{
		Kind:     "collection",
		Contents: data,
		Total:    len(data),
	})
}

func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	res := RestErrorResponseModel{
		Status:  "error",
		Code:    statusCode,
		Message: err.Error(),
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		res.Code = echoErr.Code
		res.Message = fmt.Sprint(echoErr.Message)
	}

	var data models.ErrorDetail
	if errors.As(err, &data) {
		res.Code = data.Code
		res.Message = data.ErrorMessage.Error()
	}
	return c.JSON(statusCode, res)
}

func RestErrorValidationResponse(c echo.Context, err error) error {
	res := RestErrorValidationResponseModel{
		Status:  "error",
		Message: common.ErrValidation.Error(),
		Errors:  []error{},
	}

	var merr *multierror.Error
	if errors.As(err, &merr) {
		res.Errors = merr.Errors
	}

	return c.JSON(http.StatusUnprocessableEntity, res)
}

// StatusFromError maps the service sentinels to a response status.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrMissingWebhookSignature),
		errors.Is(err, common.ErrInvalidWebhookSignature):
		return http.StatusForbidden
	case errors.Is(err, common.ErrValidation),
		errors.Is(err, common.ErrUnsupportedAction):
		return http.StatusUnprocessableEntity
	case errors.Is(err, common.ErrReservationNotFound),
		errors.Is(err, common.ErrListingNotFound),
		errors.Is(err, common.ErrClientNotFound),
		errors.Is(err, common.ErrScheduleNotFound),
		errors.Is(err, common.ErrTransactionNotFound),
		errors.Is(err, common.ErrDataNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrQueueClosed):
		return http.StatusServiceUnavailable
	case errors.Is(err, common.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
