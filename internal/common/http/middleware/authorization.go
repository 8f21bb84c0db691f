package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	commonhttp "bitbucket.org/adsa/go-reservation-ledger/internal/common/http"
	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"

	"github.com/labstack/echo/v4"
)

const HeaderSecretKey = "X-Secret-Key"

// InternalAuth guards the admin endpoints.
func (m *AppMiddleware) InternalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			secretKey := c.Request().Header.Get(HeaderSecretKey)
			statusCode := http.StatusUnauthorized
			if secretKey == "" {
				return commonhttp.RestErrorResponse(c, statusCode, errors.New("required secret key"))
			}

			if !secureEqual(secretKey, m.conf.SecretKey) {
				return commonhttp.RestErrorResponse(c, statusCode, errors.New("invalid secret key"))
			}

			return next(c)
		}
	}
}

// WebhookSignature rejects webhook calls that do not carry the shared secret. Nothing past it
// runs for a rejected call, so rejected requests are never audited nor enqueued.
func (m *AppMiddleware) WebhookSignature() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := m.verifyWebhook(c.Request()); err != nil {
				xlog.Warn(c.Request().Context(), "[WEBHOOK] rejected request",
					xlog.String("remote_ip", c.RealIP()),
					xlog.Err(err),
				)
				return commonhttp.RestErrorResponse(c, http.StatusForbidden, err)
			}

			return next(c)
		}
	}
}

func (m *AppMiddleware) verifyWebhook(req *http.Request) error {
	cfg := m.conf.Webhook

	signature := req.Header.Get(cfg.SignatureHeader)
	if signature == "" {
		return common.ErrMissingWebhookSignature
	}
	if cfg.Secret == "" || !secureEqual(signature, cfg.Secret) {
		return common.ErrInvalidWebhookSignature
	}

	if cfg.ClientID != "" && !secureEqual(req.Header.Get(cfg.ClientIDHeader), cfg.ClientID) {
		return common.ErrInvalidWebhookSignature
	}

	return nil
}

func secureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
