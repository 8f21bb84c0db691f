package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"

	"github.com/labstack/echo/v4"
	"golang.org/x/exp/slices"
)

type bodyDumpResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	err := http.NewResponseController(w.ResponseWriter).Flush()
	if err != nil && errors.Is(err, http.ErrNotSupported) {
		panic(errors.New("response writer flushing is not supported"))
	}
}

func (w *bodyDumpResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return http.NewResponseController(w.ResponseWriter).Hijack()
}

func (w *bodyDumpResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// maxLoggedBody keeps a full reservation payload from flooding a log line.
const maxLoggedBody = 8 << 10

func truncateBody(b []byte) string {
	if len(b) > maxLoggedBody {
		return string(b[:maxLoggedBody]) + "...(truncated)"
	}
	return string(b)
}

func (m *AppMiddleware) readRequestBody(c echo.Context) []byte {
	if c.Request().Body == nil {
		return nil
	}
	body, _ := io.ReadAll(c.Request().Body)
	c.Request().Body = io.NopCloser(bytes.NewReader(body))
	return body
}

var sensitiveHeaders = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
	"set-cookie":    {},
	"x-secret-key":  {},
}

func (m *AppMiddleware) isSensitiveHeader(name string) bool {
	name = strings.ToLower(name)
	if _, ok := sensitiveHeaders[name]; ok {
		return true
	}
	return m.conf.Webhook.SignatureHeader != "" && name == strings.ToLower(m.conf.Webhook.SignatureHeader)
}

func (m *AppMiddleware) maskedHeaders(h http.Header) []byte {
	headers := make(map[string][]string, len(h))
	for k, vals := range h {
		if m.isSensitiveHeader(k) {
			headers[k] = []string{"*****"}
		} else {
			headers[k] = vals
		}
	}

	b, _ := json.Marshal(headers)
	return b
}

func (m *AppMiddleware) teeResponseBody(c echo.Context) *bytes.Buffer {
	resBody := new(bytes.Buffer)
	c.Response().Writer = &bodyDumpResponseWriter{
		Writer:         io.MultiWriter(c.Response().Writer, resBody),
		ResponseWriter: c.Response().Writer,
	}
	return resBody
}

// skipLogging is true for health endpoints, the metrics scrape and pprof.
func skipLogging(path string) bool {
	if slices.Contains([]string{"/api/health", "/api/queue-status", "/metrics"}, path) {
		return true
	}
	return strings.HasPrefix(path, "/debug/pprof")
}

func (m *AppMiddleware) Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipLogging(c.Path()) {
				return next(c)
			}

			start := time.Now()
			req := c.Request()
			res := c.Response()
			reqBody := m.readRequestBody(c)
			resBody := m.teeResponseBody(c)

			if err := next(c); err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			fields := []xlog.Field{
				xlog.Time("start_time", start),
				xlog.String("method", req.Method),
				xlog.String("route", c.Path()),
				xlog.String("url_path", req.URL.String()),
				xlog.String("request_body", truncateBody(reqBody)),
				xlog.String("request_header", string(m.maskedHeaders(req.Header))),
				xlog.Int("status", res.Status),
				xlog.String("response", truncateBody(resBody.Bytes())),
				xlog.Duration("latency", latency),
				xlog.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
			}

			ctx := req.Context()
			message := fmt.Sprintf("%v %v %v %v", res.Status, req.Method, req.URL.String(), latency)
			switch {
			case res.Status >= 500:
				xlog.Error(ctx, message, fields...)
			case res.Status >= 400:
				xlog.Warn(ctx, message, fields...)
			default:
				xlog.Info(ctx, message, fields...)
			}

			return nil
		}
	}
}
