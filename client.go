// Package guardian is a typed client for the Guardian's content API.
//
// A Client holds the API key and HTTP transport; each request is built
// with a fluent Query and dispatched with Do:
//
//	client := guardian.New(guardian.Config{APIKey: key}, logger)
//	resp, err := client.Query().
//		Search("elections").
//		PageSize(10).
//		ShowFields(guardian.FieldByline, guardian.FieldTrailText).
//		OrderBy(guardian.OrderByNewest).
//		Do(ctx)
//
// Query values are independent of each other, so separate queries may be
// built and dispatched concurrently against the same Client.
package guardian

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const DefaultBaseURL = "https://content.guardianapis.com"

type Config struct {
	// APIKey is sent as the api-key header. An empty key is permitted;
	// the request is then sent without the header.
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// Query starts a new request against the content endpoint. The returned
// value owns its own parameter set and is not safe for concurrent use,
// but distinct Query values are independent.
func (c *Client) Query() *Query {
	return &Query{
		client:   c,
		endpoint: EndpointContent,
		params:   make(map[string]string),
	}
}

// Do dispatches the accumulated query as a single GET and decodes the
// response envelope. The parameter set is cleared once the network has
// been reached, so the Query can be reused for an unrelated request.
func (q *Query) Do(ctx context.Context) (*SearchResponse, error) {
	path, err := q.resolvePath()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, q.client.baseURL+"/"+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if q.client.apiKey != "" {
		req.Header.Set("api-key", q.client.apiKey)
	}

	values := url.Values{}
	for k, v := range q.params {
		values.Set(k, v)
	}
	req.URL.RawQuery = values.Encode()

	resp, err := q.client.client.Do(req)
	q.params = make(map[string]string)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	var envelope responseEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if envelope.Message != nil {
		return nil, &APIError{Message: *envelope.Message}
	}

	if envelope.Response != nil {
		r := envelope.Response
		if r.Status != nil && *r.Status == "error" && r.Message != nil {
			return nil, &APIError{Message: *r.Message}
		}
		return r, nil
	}

	// Neither an error message nor a payload. Surface a warning instead
	// of failing so callers still get a usable zero value.
	q.client.logger.Warn("empty response envelope",
		zap.String("endpoint", path),
		zap.Int("status_code", resp.StatusCode),
	)
	return &SearchResponse{}, nil
}

func (q *Query) resolvePath() (string, error) {
	switch q.endpoint {
	case EndpointContent:
		return "search", nil
	case EndpointSingleItem:
		item, ok := q.params["q"]
		if !ok {
			return "", ErrMissingSearchTerm
		}
		return item, nil
	default:
		return q.endpoint.String(), nil
	}
}
