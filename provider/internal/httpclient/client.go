// Package httpclient holds the JSON-over-HTTP plumbing shared by the chat
// style vendor adapters.
package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mhpenta/sdprompt"
)

// DefaultTimeout is an upper bound for a single HTTP exchange. The manager
// normally cancels the request context well before it fires.
const DefaultTimeout = 30 * time.Second

// Client posts JSON to a single vendor endpoint.
type Client struct {
	Provider string
	Endpoint string
	Headers  map[string]string
	http     *resty.Client
}

// New creates a client for provider posting to endpoint.
func New(provider, endpoint string, headers map[string]string) *Client {
	c := resty.New().
		SetTimeout(DefaultTimeout).
		SetHeader("Content-Type", "application/json")
	return &Client{
		Provider: provider,
		Endpoint: endpoint,
		Headers:  headers,
		http:     c,
	}
}

// PostJSON sends body and decodes a 2xx reply into result. Non-2xx replies
// become *sdprompt.VendorHTTPError; transport failures and context errors are
// wrapped with %w.
func (c *Client) PostJSON(ctx context.Context, body, result any) error {
	rr, err := c.http.R().
		SetContext(ctx).
		SetHeaders(c.Headers).
		SetBody(body).
		Post(c.Endpoint)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", c.Provider, err)
	}

	if !rr.IsSuccess() {
		return &sdprompt.VendorHTTPError{
			Provider: c.Provider,
			Status:   rr.StatusCode(),
			Body:     strings.TrimSpace(rr.String()),
		}
	}

	if err := json.Unmarshal(rr.Body(), result); err != nil {
		return &sdprompt.EmptyGenerationError{Provider: c.Provider, Raw: rr.String()}
	}
	return nil
}

// Close releases idle connections.
func (c *Client) Close() {
	c.http.GetClient().CloseIdleConnections()
}
