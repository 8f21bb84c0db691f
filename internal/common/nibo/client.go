package nibo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/cache"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/httpclient"
	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/metrics"
	"bitbucket.org/adsa/go-reservation-ledger/internal/config"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"
	"bitbucket.org/adsa/go-reservation-ledger/internal/monitoring"

	"github.com/go-resty/resty/v2"
)

var logMessage = "[NIBO-CLIENT]"

// Client is the ledger gateway. Schedules are addressed by their ledger side (debit or credit)
// and found back through the reservation id carried in their reference.
type Client interface {
	CreateSchedule(ctx context.Context, kind models.ScheduleKind, schedule models.TransactionSchedule) (models.TransactionSchedule, error)
	// FindSchedulesByReference returns an empty slice, not an error, when nothing matches.
	FindSchedulesByReference(ctx context.Context, kind models.ScheduleKind, reservationID string) ([]models.TransactionSchedule, error)
	UpdateSchedule(ctx context.Context, kind models.ScheduleKind, scheduleID string, schedule models.TransactionSchedule) error
	DeleteSchedule(ctx context.Context, kind models.ScheduleKind, scheduleID string) error
	// GetTransaction returns the ledger document as is.
	GetTransaction(ctx context.Context, transactionID string) (json.RawMessage, error)

	FindOrCreateStakeholder(ctx context.Context, name string) (string, error)
	FindOrCreateSupplier(ctx context.Context, name string) (string, error)
	FindOrCreateCostCenter(ctx context.Context, description string) (string, error)
}

type client struct {
	baseURL  string
	apiToken string
	request  *httpclient.RequestWrapper

	cache    cache.Client[string]
	ttlCache time.Duration
}

var _ Client = (*client)(nil)

func New(
	configuration config.HTTPConfiguration,
	metrics metrics.Metrics,
	cache cache.Client[string],
	ttlCache time.Duration,
) Client {
	retryWaitTime := time.Duration(configuration.RetryWaitTime) * time.Millisecond

	restyClient := resty.New()
	restyClient = restyClient.AddRetryCondition(httpclient.RetryCondition)

	restyClient = restyClient.
		SetTransport(monitoring.NewMiddlewareRoundTripper(restyClient.GetClient().Transport)).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetRetryCount(configuration.RetryCount).
		SetRetryWaitTime(retryWaitTime).
		SetTimeout(configuration.Timeout)

	return &client{
		baseURL:  strings.TrimRight(configuration.BaseURL, "/"),
		apiToken: configuration.SecretKey,
		request:  httpclient.NewRequestWrapper(restyClient, metrics, SERVICE_NAME, logMessage),
		cache:    cache,
		ttlCache: ttlCache,
	}
}

func (c *client) authorize(r *resty.Request) *resty.Request {
	return r.SetHeader(headerAPIToken, c.apiToken)
}

func (c *client) CreateSchedule(ctx context.Context, kind models.ScheduleKind, schedule models.TransactionSchedule) (res models.TransactionSchedule, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	body := toRequestSchedule(schedule)
	endpoint := fmt.Sprintf(pathSchedules, kind)

	httpRes, err := c.request.DoRequest(ctx, http.MethodPost, endpoint, c.baseURL+endpoint,
		func(r *resty.Request) *resty.Request {
			return c.authorize(r).SetBody(body)
		})
	if err != nil {
		return res, common.WrapError(common.ErrUpstreamUnavailable, err)
	}

	if err = checkStatus(httpRes); err != nil {
		return res, err
	}

	id, err := parseCreatedID(httpRes.Body())
	if err != nil {
		return res, err
	}

	schedule.ScheduleID = id
	schedule.Reference = body.Reference
	return schedule, nil
}

func (c *client) FindSchedulesByReference(ctx context.Context, kind models.ScheduleKind, reservationID string) (res []models.TransactionSchedule, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	res = []models.TransactionSchedule{}
	if strings.TrimSpace(reservationID) == "" {
		return res, nil
	}

	endpoint := fmt.Sprintf(pathSchedules, kind)
	httpRes, err := c.request.DoRequest(ctx, http.MethodGet, endpoint, c.baseURL+endpoint,
		func(r *resty.Request) *resty.Request {
			return c.authorize(r).SetQueryParam("$filter", containsFilter("reference", reservationID))
		})
	if err != nil {
		return nil, common.WrapError(common.ErrUpstreamUnavailable, err)
	}

	if httpRes.StatusCode() == http.StatusNotFound {
		return res, nil
	}
	if err = checkStatus(httpRes); err != nil {
		return nil, err
	}

	var list ResponseScheduleList
	if err = json.Unmarshal(httpRes.Body(), &list); err != nil {
		return nil, fmt.Errorf("error unmarshal schedules: %w", err)
	}

	for _, item := range list.Items {
		s := item.toModel()
		// contains() also matches longer ids sharing the prefix
		if s.ReservationID != reservationID {
			continue
		}
		res = append(res, s)
	}

	return res, nil
}

func (c *client) UpdateSchedule(ctx context.Context, kind models.ScheduleKind, scheduleID string, schedule models.TransactionSchedule) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if scheduleID == "" {
		return common.ErrScheduleNotFound
	}

	body := toRequestSchedule(schedule)
	endpoint := fmt.Sprintf(pathSchedule, kind, "{id}")
	httpRes, err := c.request.DoRequest(ctx, http.MethodPut, endpoint,
		c.baseURL+fmt.Sprintf(pathSchedule, kind, url.PathEscape(scheduleID)),
		func(r *resty.Request) *resty.Request {
			return c.authorize(r).SetBody(body)
		})
	if err != nil {
		return common.WrapError(common.ErrUpstreamUnavailable, err)
	}

	if httpRes.StatusCode() == http.StatusNotFound {
		return common.ErrScheduleNotFound
	}
	return checkStatus(httpRes)
}

func (c *client) DeleteSchedule(ctx context.Context, kind models.ScheduleKind, scheduleID string) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if scheduleID == "" {
		return common.ErrScheduleNotFound
	}

	endpoint := fmt.Sprintf(pathSchedule, kind, "{id}")
	httpRes, err := c.request.DoRequest(ctx, http.MethodDelete, endpoint,
		c.baseURL+fmt.Sprintf(pathSchedule, kind, url.PathEscape(scheduleID)),
		c.authorize)
	if err != nil {
		return common.WrapError(common.ErrUpstreamUnavailable, err)
	}

	if httpRes.StatusCode() == http.StatusNotFound {
		return common.ErrScheduleNotFound
	}
	return checkStatus(httpRes)
}

func (c *client) GetTransaction(ctx context.Context, transactionID string) (res json.RawMessage, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err),
			monitoring.WithFinishExpectedErrors(common.ErrTransactionNotFound))
	}()

	if strings.TrimSpace(transactionID) == "" {
		return nil, common.ErrTransactionNotFound
	}

	endpoint := fmt.Sprintf(pathTransaction, "{id}")
	httpRes, err := c.request.DoRequest(ctx, http.MethodGet, endpoint,
		c.baseURL+fmt.Sprintf(pathTransaction, url.PathEscape(transactionID)),
		c.authorize)
	if err != nil {
		return nil, common.WrapError(common.ErrUpstreamUnavailable, err)
	}

	// a missing transaction may also come back as 200 with an error document
	var resErr ResponseError
	if httpRes.StatusCode() == http.StatusNotFound ||
		(json.Unmarshal(httpRes.Body(), &resErr) == nil && resErr.StatusCode == http.StatusNotFound) {
		return nil, common.ErrTransactionNotFound
	}
	if err = checkStatus(httpRes); err != nil {
		return nil, err
	}

	return json.RawMessage(httpRes.Body()), nil
}

func (c *client) FindOrCreateStakeholder(ctx context.Context, name string) (string, error) {
	return c.findOrCreateCounterparty(ctx, pathCustomers, name)
}

func (c *client) FindOrCreateSupplier(ctx context.Context, name string) (string, error) {
	return c.findOrCreateCounterparty(ctx, pathSuppliers, name)
}

func (c *client) findOrCreateCounterparty(ctx context.Context, path, name string) (id string, err error) {
	monitor := monitoring.New(ctx, monitoring.WithSegmentName("nibo.client.findOrCreate"+path), monitoring.WithLayer(monitoring.LayerGateway))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty name for %s", common.ErrValidation, path)
	}

	return c.cache.GetOrSet(ctx, cache.GetOrSetOpts[string]{
		Key: cacheKey(path, name),
		TTL: c.ttlCache,
		Callback: func() (string, error) {
			var list ResponseStakeholderList
			if err := c.search(ctx, path, "name", name, &list); err != nil {
				return "", err
			}

			for _, item := range list.Items {
				if strings.EqualFold(strings.TrimSpace(item.Name), name) && item.ID != "" {
					return item.ID, nil
				}
			}

			xlog.Info(ctx, logMessage, xlog.String("message", "creating counterparty"), xlog.String("path", path), xlog.String("name", name))
			return c.create(ctx, path, RequestStakeholder{Name: name})
		},
	})
}

func (c *client) FindOrCreateCostCenter(ctx context.Context, description string) (id string, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	description = strings.TrimSpace(description)
	if description == "" {
		return "", fmt.Errorf("%w: empty cost center description", common.ErrValidation)
	}

	return c.cache.GetOrSet(ctx, cache.GetOrSetOpts[string]{
		Key: cacheKey(pathCostCenters, description),
		TTL: c.ttlCache,
		Callback: func() (string, error) {
			var list ResponseCostCenterList
			if err := c.search(ctx, pathCostCenters, "description", description, &list); err != nil {
				return "", err
			}

			for _, item := range list.Items {
				if strings.EqualFold(strings.TrimSpace(item.Description), description) && item.CostCenterID != "" {
					return item.CostCenterID, nil
				}
			}

			xlog.Info(ctx, logMessage, xlog.String("message", "creating cost center"), xlog.String("description", description))
			return c.create(ctx, pathCostCenters, RequestCostCenterCreate{Description: description})
		},
	})
}

func (c *client) search(ctx context.Context, path, field, value string, out any) error {
	httpRes, err := c.request.DoRequest(ctx, http.MethodGet, path, c.baseURL+path,
		func(r *resty.Request) *resty.Request {
			return c.authorize(r).SetQueryParam("$filter", containsFilter(field, value))
		})
	if err != nil {
		return common.WrapError(common.ErrUpstreamUnavailable, err)
	}

	if httpRes.StatusCode() == http.StatusNotFound {
		return nil
	}
	if err = checkStatus(httpRes); err != nil {
		return err
	}

	if err = json.Unmarshal(httpRes.Body(), out); err != nil {
		return fmt.Errorf("error unmarshal %s: %w", path, err)
	}
	return nil
}

func (c *client) create(ctx context.Context, path string, body any) (string, error) {
	httpRes, err := c.request.DoRequest(ctx, http.MethodPost, path, c.baseURL+path,
		func(r *resty.Request) *resty.Request {
			return c.authorize(r).SetBody(body)
		})
	if err != nil {
		return "", common.WrapError(common.ErrUpstreamUnavailable, err)
	}

	if err = checkStatus(httpRes); err != nil {
		return "", err
	}

	return parseCreatedID(httpRes.Body())
}

func cacheKey(path, name string) string {
	return "nibo" + strings.ReplaceAll(path, "/", ":") + ":" + strings.ToLower(name)
}

// checkStatus maps a ledger response to the service errors. The ledger sometimes answers 200
// with an error document, which is treated as a rejection too.
func checkStatus(httpRes *resty.Response) error {
	code := httpRes.StatusCode()
	switch {
	case code >= 500:
		return common.WrapError(common.ErrUpstreamUnavailable, fmt.Errorf("invalid response http code: got %d", code))
	case code < 200 || code >= 300:
		return common.WrapError(common.ErrLedgerRejected, fmt.Errorf("http code %d: %s", code, httpRes.String()))
	}

	var resErr ResponseError
	body := httpRes.Body()
	if len(body) > 0 && body[0] == '{' && json.Unmarshal(body, &resErr) == nil && resErr.Error != nil {
		return common.WrapError(common.ErrLedgerRejected, fmt.Errorf("%v", resErr.Error))
	}

	return nil
}

// parseCreatedID reads the id of a created resource. The ledger returns a plain or JSON quoted
// id, or an object carrying it.
func parseCreatedID(body []byte) (string, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "", common.ErrEmptyIdentifier
	}

	if trimmed[0] != '{' && trimmed[0] != '"' {
		return trimmed, nil
	}

	var id string
	if err := json.Unmarshal([]byte(trimmed), &id); err == nil {
		if id = strings.TrimSpace(id); id == "" {
			return "", common.ErrEmptyIdentifier
		}
		return id, nil
	}

	var created ResponseCreated
	if err := json.Unmarshal([]byte(trimmed), &created); err != nil {
		return "", errors.Join(common.ErrEmptyIdentifier, err)
	}

	switch {
	case created.ScheduleID != "":
		return created.ScheduleID, nil
	case created.ID != "":
		return created.ID, nil
	default:
		return "", common.ErrEmptyIdentifier
	}
}
