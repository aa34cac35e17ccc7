package caronsale

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/donaldgifford/auction-monitor/internal/metrics"
)

const requestIDHeader = "X-Request-ID"

type operation struct {
	name  string // used in log lines
	label string // used as metric label
}

var (
	opAuthenticate = operation{name: "COS Authentication", label: "authenticate"}
	opGetAuctions  = operation{name: "COS Get Auctions", label: "get_auctions"}
)

type request struct {
	method string
	path   string
	query  url.Values
	header http.Header
	body   any
}

// do performs one API call inside the progress indicator and decodes the
// JSON response into dst.
func (c *Client) do(ctx context.Context, op operation, r request, dst any) error {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			metrics.APIRequestsTotal.WithLabelValues(op.label, metrics.OutcomeFailed).Inc()
			return fmt.Errorf("rate limit: %w", err)
		}
	}

	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var bodyReader io.Reader = http.NoBody
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	for k, vs := range r.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	var (
		status int
		body   []byte
	)
	err = c.progress.Run(ctx, func(ctx context.Context) error {
		resp, err := c.httpClient.Do(req.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("sending request: %w", err)
		}
		defer resp.Body.Close()

		status = resp.StatusCode
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response body: %w", err)
		}
		return nil
	})
	metrics.APIRequestDuration.WithLabelValues(op.label).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(op.label, metrics.OutcomeFailed).Inc()
		return err
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		metrics.APIRequestsTotal.WithLabelValues(op.label, metrics.OutcomeRejected).Inc()
		return newAPIError(op.name, status, body)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		metrics.APIRequestsTotal.WithLabelValues(op.label, metrics.OutcomeFailed).Inc()
		return fmt.Errorf("decoding response: %w", err)
	}

	metrics.APIRequestsTotal.WithLabelValues(op.label, metrics.OutcomeSuccess).Inc()
	return nil
}
