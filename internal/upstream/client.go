// Package upstream is the typed REST client for the tour backend. It owns
// the HTTP plumbing shared by every resource wrapper: base URL resolution,
// bearer-token injection, and mapping upstream failures onto the domain
// error taxonomy.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kushal272003/tourbooking/internal/domain"
)

// Client talks to the upstream tour backend. All resource wrappers share
// one underlying *http.Client with a fixed timeout.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	onUnauthorized func(context.Context)

	Tours     *ToursService
	Bookings  *BookingsService
	Payments  *PaymentsService
	Reviews   *ReviewsService
	Wishlist  *WishlistService
	Users     *UsersService
	Analytics *AnalyticsService
}

func New(baseURL string, timeout time.Duration) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	c.Tours = &ToursService{c}
	c.Bookings = &BookingsService{c}
	c.Payments = &PaymentsService{c}
	c.Reviews = &ReviewsService{c}
	c.Wishlist = &WishlistService{c}
	c.Users = &UsersService{c}
	c.Analytics = &AnalyticsService{c}
	return c
}

// OnUnauthorized registers a hook invoked on every 401 response, before the
// AuthError is returned. The HTTP layer uses it to clear the session; the
// redirect itself is unconditional and happens regardless of the hook.
func (c *Client) OnUnauthorized(fn func(context.Context)) {
	c.onUnauthorized = fn
}

type tokenKey struct{}

// WithToken attaches the session's bearer token to the request context.
func WithToken(ctx context.Context, token string) context.Context {
	if strings.TrimSpace(token) == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom returns the bearer token carried by ctx, if any.
func TokenFrom(ctx context.Context) string {
	if v, ok := ctx.Value(tokenKey{}).(string); ok {
		return v
	}
	return ""
}

// errorPayload covers the error body shapes the upstream produces.
type errorPayload struct {
	Message string `json:"message"`
	ErrMsg  string `json:"error"`
}

func (p errorPayload) text() string {
	if p.Message != "" {
		return p.Message
	}
	return p.ErrMsg
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) put(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPut, path, query, body, out)
}

func (c *Client) delete(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	op := method + " " + path

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return domain.TransportError{Op: op, Err: err}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return domain.TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := TokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.TransportError{Op: op, Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(raw) == 0 {
			return nil
		}
		// Some upstream endpoints answer with a bare string message.
		if s, ok := out.(*string); ok {
			if err := json.Unmarshal(raw, s); err != nil {
				*s = strings.TrimSpace(string(raw))
			}
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return domain.TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
		}
		return nil
	}

	var payload errorPayload
	_ = json.Unmarshal(raw, &payload)
	msg := payload.text()
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return domain.AuthError{Msg: msg}
	case resp.StatusCode == http.StatusNotFound:
		return domain.NotFoundError{Msg: msg}
	case resp.StatusCode == http.StatusConflict:
		return domain.ConflictError{Msg: msg}
	case resp.StatusCode >= 500:
		return domain.TransportError{Op: op, Err: fmt.Errorf("status %d: %s", resp.StatusCode, msg)}
	default:
		return domain.DomainError{Code: http.StatusText(resp.StatusCode), Msg: msg}
	}
}
