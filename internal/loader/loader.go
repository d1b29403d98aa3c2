// Package loader fetches aggregated sales rows from the backend sales API
// and derives the series key set each response carries.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/salesboard/salesboard/internal/models"
)

// maxErrorBody caps how much of a failed response body is kept for status text.
const maxErrorBody = 512

// NetworkError reports a failed sales request: a non-success response
// (StatusCode and Body set) or a transport/decode failure (Err set). The
// caller's chart state stays untouched; only status output should change.
type NetworkError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sales request failed: %v", e.Err)
	}
	if e.Body == "" {
		return fmt.Sprintf("sales request failed: status %d", e.StatusCode)
	}
	return fmt.Sprintf("sales request failed: status %d: %s", e.StatusCode, e.Body)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Result holds everything one successful load produces. Each load replaces
// the previous result wholesale; a Result is never mutated after return.
type Result struct {
	Rows     []models.Row
	Keys     []string
	Currency string
	Timezone string
}

// Client issues requests against the sales backend.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New returns a client for the backend at baseURL. A zero timeout means no
// client-side deadline beyond the request context.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// payload mirrors the wire response. Absent rows decode to nil and are
// normalized to an empty dataset rather than treated as a failure.
type payload struct {
	Rows     []models.Row `json:"rows"`
	Currency string       `json:"currency"`
	Timezone string       `json:"tz"`
}

// Load issues exactly one request for the query and returns the parsed rows
// together with a freshly derived series key set. No retry, and no
// cancellation of earlier in-flight requests: overlap policy belongs to the
// caller.
func (c *Client) Load(ctx context.Context, q models.Query) (*Result, error) {
	if q.Shop == "" {
		return nil, models.ErrShopRequired
	}

	u := c.baseURL + "/api/sales?" + q.Values().Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build sales request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &NetworkError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var p payload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("decode sales response: %w", err)}
	}
	if p.Rows == nil {
		p.Rows = []models.Row{}
	}

	return &Result{
		Rows:     p.Rows,
		Keys:     models.SeriesKeys(p.Rows),
		Currency: p.Currency,
		Timezone: p.Timezone,
	}, nil
}
