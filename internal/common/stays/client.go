package stays

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/httpclient"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/metrics"
	"bitbucket.org/adsa/go-reservation-ledger/internal/config"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"
	"bitbucket.org/adsa/go-reservation-ledger/internal/monitoring"

	"github.com/go-resty/resty/v2"
)

var logMessage = "[STAYS-CLIENT]"

// Client reads reservations from the property management platform.
type Client interface {
	GetReservation(ctx context.Context, reservationID string) (models.RawReservation, error)
	GetReservationReport(ctx context.Context, query models.ReportQuery) (models.ReservationReport, error)

	// raw passthrough lookups
	GetReservationJSON(ctx context.Context, reservationID string) (json.RawMessage, error)
	GetListing(ctx context.Context, listingID string) (json.RawMessage, error)
	GetClient(ctx context.Context, clientID string) (json.RawMessage, error)
}

type client struct {
	baseURL string
	request *httpclient.RequestWrapper
}

var _ Client = (*client)(nil)

func New(configuration config.HTTPConfiguration, metrics metrics.Metrics) Client {
	retryWaitTime := time.Duration(configuration.RetryWaitTime) * time.Millisecond

	restyClient := resty.New()
	restyClient = restyClient.AddRetryCondition(httpclient.RetryCondition)

	restyClient = restyClient.
		SetTransport(monitoring.NewMiddlewareRoundTripper(restyClient.GetClient().Transport)).
		SetBasicAuth(configuration.Username, configuration.SecretKey).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetRetryCount(configuration.RetryCount).
		SetRetryWaitTime(retryWaitTime).
		SetTimeout(configuration.Timeout)

	return &client{
		baseURL: strings.TrimRight(configuration.BaseURL, "/"),
		request: httpclient.NewRequestWrapper(restyClient, metrics, SERVICE_NAME, logMessage),
	}
}

func (c *client) GetReservation(ctx context.Context, reservationID string) (res models.RawReservation, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(
			monitoring.WithFinishCheckError(err),
			monitoring.WithFinishExpectedErrors(common.ErrReservationNotFound))
	}()

	body, err := c.GetReservationJSON(ctx, reservationID)
	if err != nil {
		return res, err
	}

	if err = json.Unmarshal(body, &res); err != nil {
		return res, fmt.Errorf("error unmarshal reservation: %w", err)
	}

	return res, nil
}

func (c *client) GetReservationJSON(ctx context.Context, reservationID string) (json.RawMessage, error) {
	return c.getByID(ctx, pathReservation, reservationID, common.ErrReservationNotFound)
}

func (c *client) GetListing(ctx context.Context, listingID string) (json.RawMessage, error) {
	return c.getByID(ctx, pathListing, listingID, common.ErrListingNotFound)
}

func (c *client) GetClient(ctx context.Context, clientID string) (json.RawMessage, error) {
	return c.getByID(ctx, pathClient, clientID, common.ErrClientNotFound)
}

// GetReservationReport fetches the export of the listing for the date range and picks the entry
// of query.ReservationID. Without a reservation id the first entry is returned.
func (c *client) GetReservationReport(ctx context.Context, query models.ReportQuery) (res models.ReservationReport, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(
			monitoring.WithFinishCheckError(err),
			monitoring.WithFinishExpectedErrors(common.ErrReservationReportNotFound))
	}()

	reqBody := RequestReservationExport{
		From:      common.FormatDate(query.From),
		To:        common.FormatDate(query.To),
		DateType:  dateTypeArrival,
		ListingID: []string{query.ListingID},
	}

	httpRes, err := c.request.DoRequest(ctx, http.MethodPost, pathReservationExport, c.baseURL+pathReservationExport,
		func(r *resty.Request) *resty.Request {
			return r.SetBody(reqBody)
		})
	if err != nil {
		return res, common.WrapError(common.ErrUpstreamUnavailable, err)
	}

	if err = checkStatus(httpRes, common.ErrReservationReportNotFound); err != nil {
		return res, err
	}

	var entries []models.ReservationReport
	if err = json.Unmarshal(httpRes.Body(), &entries); err != nil {
		return res, fmt.Errorf("error unmarshal reservations export: %w", err)
	}

	for _, entry := range entries {
		if query.ReservationID == "" || entry.Matches(query.ReservationID) {
			return entry, nil
		}
	}

	return res, common.ErrReservationReportNotFound
}

func (c *client) getByID(ctx context.Context, pathFormat, id string, notFound error) (json.RawMessage, error) {
	if strings.TrimSpace(id) == "" {
		return nil, notFound
	}

	endpoint := fmt.Sprintf(pathFormat, "{id}")
	httpRes, err := c.request.DoRequest(ctx, http.MethodGet, endpoint, c.baseURL+fmt.Sprintf(pathFormat, url.PathEscape(id)), nil)
	if err != nil {
		return nil, common.WrapError(common.ErrUpstreamUnavailable, err)
	}

	if err = checkStatus(httpRes, notFound); err != nil {
		return nil, err
	}

	return json.RawMessage(httpRes.Body()), nil
}

func checkStatus(httpRes *resty.Response, notFound error) error {
	switch {
	case httpRes.StatusCode() == http.StatusNotFound:
		return notFound
	case httpRes.StatusCode() < 200 || httpRes.StatusCode() >= 300:
		return common.WrapError(common.ErrUpstreamUnavailable,
			fmt.Errorf("invalid response http code: got %d", httpRes.StatusCode()))
	}
	return nil
}
