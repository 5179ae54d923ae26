package courtlistener

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driven"
	"github.com/custodia-labs/recap-cli/internal/logger"
)

var log = logger.Named("archive")

// Ensure Client implements the interface.
var _ driven.ArchiveClient = (*Client)(nil)

const (
	// DefaultRetries is the number of retries for 5xx responses.
	DefaultRetries = 2

	// RetryDelay is the initial delay between retries.
	RetryDelay = 500 * time.Millisecond

	// recapSources restricts docket lookups to dockets that came from
	// uploads, excluding records known only from bulk metadata.
	recapSources = "1,3,5,7,9,11,13,15"

	docketFields = "absolute_url,date_modified,date_last_filing"
)

// Config configures a Client.
type Config struct {
	BaseURL       string
	Token         string
	RatePerSecond float64
	Timeout       time.Duration

	// Retries overrides DefaultRetries when positive. Negative disables
	// retries.
	Retries int
}

// Client queries the archive for docket and document availability.
type Client struct {
	http        *resty.Client
	rateLimiter *RateLimiter
}

// NewClient creates a new archive client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultArchiveTimeout
	}
	retries := DefaultRetries
	if cfg.Retries > 0 {
		retries = cfg.Retries
	} else if cfg.Retries < 0 {
		retries = 0
	}

	rc := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(retries).
		SetRetryWaitTime(RetryDelay).
		SetRetryMaxWaitTime(4*RetryDelay).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return r != nil && r.StatusCode() >= http.StatusInternalServerError
		}).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "recap-cli")
	if cfg.Token != "" {
		rc.SetAuthScheme("Token").SetAuthToken(cfg.Token)
	}

	return &Client{
		http:        rc,
		rateLimiter: NewRateLimiter(cfg.RatePerSecond),
	}
}

type docketPage struct {
	Count   int                     `json:"count"`
	Results []domain.ArchivedDocket `json:"results"`
}

type documentPage struct {
	Results []domain.ArchivedDocument `json:"results"`
}

// DocketAvailability looks up dockets by case identifier, falling back to
// the docket number core when the case identifier is unknown.
func (c *Client) DocketAvailability(ctx context.Context, q domain.DocketQuery) ([]domain.ArchivedDocket, error) {
	if q.Court == "" || (q.CaseID == "" && q.DocketNumberCore == "") {
		return nil, fmt.Errorf("docket availability: %w", domain.ErrMissingIdentifier)
	}

	params := map[string]string{
		"source__in": recapSources,
		"court":      q.Court,
		"fields":     docketFields,
	}
	if q.CaseID != "" {
		params["pacer_case_id"] = string(q.CaseID)
	} else {
		params["docket_number_core"] = string(q.DocketNumberCore)
	}

	var page docketPage
	if err := c.get(ctx, "/dockets/", params, &page); err != nil {
		return nil, fmt.Errorf("docket availability: %w", err)
	}
	log.Debug("%d docket(s) for %s in %s", len(page.Results), q.CaseID, q.Court)
	return page.Results, nil
}

// DocumentAvailability looks up documents by identifier. The API takes a
// single court for the whole batch.
func (c *Client) DocumentAvailability(ctx context.Context, q domain.DocumentQuery) ([]domain.ArchivedDocument, error) {
	if q.Court == "" || len(q.DocumentIDs) == 0 {
		return nil, nil
	}

	ids := make([]string, len(q.DocumentIDs))
	for i, id := range q.DocumentIDs {
		ids[i] = string(id)
	}
	params := map[string]string{
		"pacer_doc_id__in":            strings.Join(ids, ","),
		"docket_entry__docket__court": q.Court,
	}

	var page documentPage
	if err := c.get(ctx, "/recap-query/", params, &page); err != nil {
		return nil, fmt.Errorf("document availability: %w", err)
	}
	log.Debug("%d of %d document(s) available in %s", len(page.Results), len(ids), q.Court)
	return page.Results, nil
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(out).
		Get(path)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}

	if err := c.rateLimiter.CheckRateLimit(resp.RawResponse); err != nil {
		return err
	}
	if resp.IsError() {
		return &APIError{
			StatusCode: resp.StatusCode(),
			Message:    strings.TrimSpace(resp.String()),
			URL:        resp.Request.URL,
		}
	}
	return nil
}
