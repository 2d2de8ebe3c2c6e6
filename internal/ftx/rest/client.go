// Package rest is the synchronous request/response client for the exchange:
// market data queries, account state and order management. It is independent
// of the streaming session and holds no connection state.
package rest

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

const DefaultEndpoint = "https://ftx.com/api"

type Config struct {
	// Endpoint defaults to DefaultEndpoint.
	Endpoint string

	// Key and Secret sign requests. Public endpoints work without them.
	Key    string
	Secret string

	// Subaccount scopes authenticated requests to a subaccount.
	Subaccount string

	// HTTPClient defaults to a client with a 30s timeout.
	HTTPClient *http.Client

	Logger zerolog.Logger
}

type Client struct {
	httpClient *http.Client
	endpoint   string
	key        string
	secret     string
	subaccount string
	logger     zerolog.Logger
}

func New(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		httpClient: cfg.HTTPClient,
		endpoint:   cfg.Endpoint,
		key:        cfg.Key,
		secret:     cfg.Secret,
		subaccount: cfg.Subaccount,
		logger:     cfg.Logger,
	}
}

// APIError is a response the server rejected with its own error message.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("exchange rejected request: %s", e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
	Error   string          `json:"error"`
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// do issues one request. path starts with "/" and may carry a query string;
// the signature covers "/api" + path plus the JSON body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.key != "" {
		c.authorize(req, method, payload)
	}

	c.logger.Debug().Str("method", method).Str("path", path).Msg("rest request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}
	if !env.Success {
		return &APIError{Message: env.Error}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}
	return nil
}

func (c *Client) authorize(req *http.Request, method string, body []byte) {
	ts := time.Now().UnixMilli()
	req.Header.Set("FTX-KEY", c.key)
	req.Header.Set("FTX-TS", strconv.FormatInt(ts, 10))
	req.Header.Set("FTX-SIGN", signRequest(c.secret, ts, method, req.URL.RequestURI(), body))
	if c.subaccount != "" {
		req.Header.Set("FTX-SUBACCOUNT", url.PathEscape(c.subaccount))
	}
}

// signRequest computes hex(HMAC-SHA256(secret, "{ts}{METHOD}{requestURI}{body}"))
// where requestURI includes the /api prefix and any query string.
func signRequest(secret string, ts int64, method, requestURI string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d%s%s", ts, method, requestURI)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
