package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client wraps the backend REST API. Calls never surface transport errors to
// the caller: a request that produced no HTTP response reports status 0, and
// the pipeline treats it like any other failed item.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Health probes the bare /health endpoint, which lives above the API root.
func (c *Client) Health(ctx context.Context) int {
	return c.do(ctx, http.MethodGet, strings.TrimSuffix(c.baseURL, "/api")+"/health", "", nil, nil)
}

// Events lists events, optionally filtered. The query may be nil.
func (c *Client) Events(ctx context.Context, query url.Values) (int, []Event) {
	path := c.baseURL + "/events"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var events []Event
	status := c.do(ctx, http.MethodGet, path, "", nil, &events)

	return status, events
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (int, AuthResponse) {
	var resp AuthResponse
	status := c.do(ctx, http.MethodPost, c.baseURL+"/auth/register", "", req, &resp)

	return status, resp
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (int, AuthResponse) {
	var resp AuthResponse
	status := c.do(ctx, http.MethodPost, c.baseURL+"/auth/login", "", req, &resp)

	return status, resp
}

func (c *Client) Profile(ctx context.Context, token string) (int, User) {
	var user User
	status := c.do(ctx, http.MethodGet, c.baseURL+"/profile", token, nil, &user)

	return status, user
}

func (c *Client) UpdateProfile(ctx context.Context, token string, req ProfileUpdateRequest) int {
	return c.do(ctx, http.MethodPut, c.baseURL+"/profile", token, req, nil)
}

// VerifyUserEmail force-verifies a user through the admin API, bypassing the
// normal confirmation mail.
func (c *Client) VerifyUserEmail(ctx context.Context, adminToken string, userID int) int {
	path := fmt.Sprintf("%s/admin/users/%d/verify-email", c.baseURL, userID)

	return c.do(ctx, http.MethodPut, path, adminToken, nil, nil)
}

func (c *Client) CreateEvent(ctx context.Context, token string, req EventRequest) (int, Event) {
	var event Event
	status := c.do(ctx, http.MethodPost, c.baseURL+"/events", token, req, &event)

	return status, event
}

func (c *Client) JoinEvent(ctx context.Context, token string, eventID int) int {
	path := fmt.Sprintf("%s/events/%d/join", c.baseURL, eventID)

	return c.do(ctx, http.MethodPost, path, token, nil, nil)
}

// do performs one JSON round trip against an absolute URL. Responses that are
// not valid JSON leave out untouched rather than failing the call, since some
// endpoints answer with plain text on error paths.
func (c *Client) do(ctx context.Context, method, endpoint, token string, body, out any) int {
	var payload io.Reader

	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			c.logger.Error("encoding request body", "method", method, "url", endpoint, "error", err)
			return 0
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		c.logger.Error("building request", "method", method, "url", endpoint, "error", err)
		return 0
	}

	requestID := uuid.NewString()

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("request failed", "method", method, "url", endpoint, "request_id", requestID, "error", err)
		return 0
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("reading response body", "method", method, "url", endpoint, "request_id", requestID, "error", err)
		return resp.StatusCode
	}

	c.logger.Debug("api call", "method", method, "url", endpoint, "status", resp.StatusCode, "request_id", requestID)

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			c.logger.Debug("undecodable response body", "method", method, "url", endpoint, "request_id", requestID, "body", string(raw))
		}
	}

	return resp.StatusCode
}
