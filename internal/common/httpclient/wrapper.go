package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/metrics"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"

	"github.com/go-resty/resty/v2"
)

// maxLoggedBody keeps the logs readable when the upstream answers with a large export.
const maxLoggedBody = 4096

// RetryCondition retries rate limited and 5xx answers. Transport errors are retried by resty itself.
func RetryCondition(r *resty.Response, _ error) bool {
	if r == nil {
		return false
	}
	return models.IsRetryableStatus(r.StatusCode())
}

type RequestWrapper struct {
	client      *resty.Client
	metrics     metrics.Metrics
	serviceName string
	logPrefix   string
}

func NewRequestWrapper(client *resty.Client, metrics metrics.Metrics, serviceName, logPrefix string) *RequestWrapper {
	return &RequestWrapper{
		client:      client,
		metrics:     metrics,
		serviceName: serviceName,
		logPrefix:   logPrefix,
	}
}

// DoRequest sends one request. endpoint is the low cardinality route used as metric label,
// e.g. "/schedules/credit/{id}", while url is the concrete one.
func (w *RequestWrapper) DoRequest(ctx context.Context, method, endpoint, url string, reqFunc func(*resty.Request) *resty.Request) (*resty.Response, error) {
	startTime := time.Now()

	logFields := []xlog.Field{
		xlog.String("url", url),
		xlog.String("method", method),
	}

	xlog.Info(ctx, w.logPrefix, append(logFields, xlog.String("message", "send request"))...)

	req := w.client.R().SetContext(ctx)
	if id := xlog.GetCorrelationID(ctx); id != "" {
		req.SetHeader(xlog.HeaderCorrelationID, id)
	}
	if reqFunc != nil {
		req = reqFunc(req)
	}

	var httpRes *resty.Response
	var err error

	switch method {
	case http.MethodGet:
		httpRes, err = req.Get(url)
	case http.MethodPost:
		httpRes, err = req.Post(url)
	case http.MethodPut:
		httpRes, err = req.Put(url)
	case http.MethodPatch:
		httpRes, err = req.Patch(url)
	case http.MethodDelete:
		httpRes, err = req.Delete(url)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	if err != nil {
		if w.metrics != nil {
			w.metrics.GetUpstreamPrometheus().RecordFailure(time.Since(startTime), w.serviceName, method, endpoint)
		}
		xlog.Warn(ctx, w.logPrefix, append(logFields, xlog.Err(err))...)
		return nil, fmt.Errorf("failed send request: %w", err)
	}

	if w.metrics != nil {
		w.metrics.GetUpstreamPrometheus().Record(
			time.Since(startTime),
			w.serviceName,
			method,
			endpoint,
			httpRes.StatusCode(),
		)
	}

	body := httpRes.String()
	if len(body) > maxLoggedBody {
		body = body[:maxLoggedBody] + "...(truncated)"
	}

	logFields = append(logFields,
		xlog.String("httpStatusCode", httpRes.Status()),
		xlog.String("httpResponse", body),
		xlog.Duration("latency", time.Since(startTime)),
	)

	if httpRes.StatusCode() < 200 || httpRes.StatusCode() >= 300 {
		xlog.Warn(ctx, w.logPrefix, logFields...)
	} else {
		xlog.Info(ctx, w.logPrefix, logFields...)
	}

	return httpRes, nil
}
