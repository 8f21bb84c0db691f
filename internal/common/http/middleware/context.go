package middleware

import (
	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context puts a correlation id in the request context: the caller's one when sent, otherwise
// the request id, otherwise a new one. It is echoed back in the response.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			id := req.Header.Get(xlog.HeaderCorrelationID)
			if id == "" {
				id = c.Response().Header().Get(echo.HeaderXRequestID)
			}
			if id == "" {
				id = uuid.NewString()
			}

			c.Response().Header().Set(xlog.HeaderCorrelationID, id)
			c.SetRequest(req.WithContext(xlog.SetCorrelationID(req.Context(), id)))
			return next(c)
		}
	}
}
