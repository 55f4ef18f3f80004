// Package api implements the thin HTTP client for the fraud demo backend.
//
// The backend owns all interesting logic; this client's contract is that a
// call either yields a decoded response or a nil sentinel plus exactly one
// user-facing connection notice. No error ever escapes to a caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/uzpay-labs/fraudscope/internal/encoding"
	"github.com/uzpay-labs/fraudscope/internal/model"
)

// DefaultBaseURL is where the demo backend listens unless configured
// otherwise.
const DefaultBaseURL = "http://127.0.0.1:8000"

// Notifier surfaces connection problems to the user.
type Notifier interface {
	Notify(title, message string)
}

// Client talks to the three backend endpoints. One attempt per call, no
// retry, no backoff.
type Client struct {
	httpClient *http.Client
	notifier   Notifier
	baseURL    string
}

// New creates a client for the given base URL. An empty URL falls back to
// DefaultBaseURL.
func New(baseURL string, notifier Notifier) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		notifier: notifier,
		// No client-side timeout: a request runs until the transport gives
		// up or the context is canceled.
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// BaseURL returns the configured backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// predictRequest is the /predict_fraud request body.
type predictRequest struct {
	FeatureVector encoding.FeatureVector `json:"feature_vector"`
}

// chatRequest is the /chat request body.
type chatRequest struct {
	Message string `json:"message"`
}

// PredictFraud submits a feature vector and returns the backend's verdict,
// or nil if the backend could not be reached.
func (c *Client) PredictFraud(ctx context.Context, vector encoding.FeatureVector) *model.Prediction {
	var pred model.Prediction
	if !c.call(ctx, http.MethodPost, "/predict_fraud", predictRequest{FeatureVector: vector}, &pred) {
		return nil
	}
	return &pred
}

// Chat sends one user message and returns the backend's reply, or nil if
// the backend could not be reached.
func (c *Client) Chat(ctx context.Context, message string) *model.ChatReply {
	var reply model.ChatReply
	if !c.call(ctx, http.MethodPost, "/chat", chatRequest{Message: message}, &reply) {
		return nil
	}
	return &reply
}

// FetchTable retrieves the raw /csv_data payload. The response shape varies
// (bare row array or envelope), so interpretation is left to the caller;
// see model.ParseTable.
func (c *Client) FetchTable(ctx context.Context) json.RawMessage {
	var raw json.RawMessage
	if !c.call(ctx, http.MethodGet, "/csv_data", nil, &raw) {
		return nil
	}
	return raw
}

// call issues a single JSON request and decodes the response into out. Any
// transport failure, non-2xx status, or undecodable body is logged, reported
// once through the notifier, and collapses to false.
func (c *Client) call(ctx context.Context, method, endpoint string, body, out any) bool {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return c.fail(endpoint, fmt.Errorf("failed to marshal request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return c.fail(endpoint, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(endpoint, fmt.Errorf("request failed: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(endpoint, fmt.Errorf("failed to read response: %w", err))
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.fail(endpoint, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(raw)))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return c.fail(endpoint, fmt.Errorf("failed to parse response: %w", err))
	}
	return true
}

func (c *Client) fail(endpoint string, err error) bool {
	slog.Error("backend call failed", "endpoint", endpoint, "error", err)
	if c.notifier != nil {
		c.notifier.Notify("Connection Error", fmt.Sprintf("Could not connect to backend at %s", c.baseURL))
	}
	return false
}
