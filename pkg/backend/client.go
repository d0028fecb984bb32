package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/nudostudio/nudo/pkg/logger"
	"github.com/nudostudio/nudo/pkg/sanitizer"
)

const (
	maxErrorBody = 64 * 1024
	maxErrorText = 200

	// refreshMargin renews a session this long before it expires.
	refreshMargin = 30 * time.Second
)

// Client talks to the hosted backend's auth and REST endpoints.
type Client struct {
	baseURL  *url.URL
	apiKey   string
	http     *http.Client
	backoff  Backoff
	attempts int
	log      *slog.Logger

	mu       sync.RWMutex
	session  *Session
	email    string
	password string

	// refreshMu serialises re-sign-ins so concurrent requests renew once.
	refreshMu sync.Mutex
}

// Option customises a Client.
type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithBackoff replaces the sign-in retry delay.
func WithBackoff(b Backoff) Option {
	return func(cl *Client) {
		if b != nil {
			cl.backoff = b
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.log = l
		}
	}
}

// New validates cfg and returns a client. SignIn must be called before
// endpoints that require a user session.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("%w: URL is required", ErrInvalidConfig)
	}
	u, err := url.Parse(strings.TrimRight(cfg.URL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: URL must be an absolute http(s) URL", ErrInvalidConfig)
	}

	c := &Client{
		baseURL:  u,
		apiKey:   cfg.APIKey,
		http:     &http.Client{Timeout: cmpOr(cfg.Timeout, 10*time.Second)},
		backoff:  FixedBackoff{Interval: cmpOr(cfg.SignInDelay, 2*time.Second)},
		attempts: max(cfg.SignInAttempts, 1),
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logger.Component("backend"))
	return c, nil
}

// Session is the result of a successful sign-in.
type Session struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int       `json:"expires_in"`
	User        User      `json:"user"`
	ExpiresAt   time.Time `json:"-"`
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// SignIn exchanges email and password for a session. Transient failures are
// retried with the configured backoff; rejected credentials fail at once.
// After the last attempt the error wraps ErrSignInFailed.
//
// The credentials are kept so that authenticated calls can sign in again
// when the session is about to expire or the backend answers 401.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}

	var lastErr error
	for attempt := range c.attempts {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, errors.Join(ErrSignInFailed, ctx.Err())
			case <-time.After(c.backoff.NextInterval(attempt)):
			}
		}

		var s Session
		err := c.do(ctx, http.MethodPost, "/auth/v1/token", url.Values{"grant_type": {"password"}}, body, &s, false)
		if err == nil {
			if s.ExpiresIn > 0 {
				s.ExpiresAt = time.Now().Add(time.Duration(s.ExpiresIn) * time.Second)
			}
			c.mu.Lock()
			c.session = &s
			c.email, c.password = email, password
			c.mu.Unlock()
			c.log.InfoContext(ctx, "signed in to backend", logger.RetryCount(attempt))
			return &s, nil
		}

		lastErr = err
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.permanent() {
			return nil, errors.Join(ErrSignInFailed, ErrInvalidCredentials, err)
		}
		c.log.WarnContext(ctx, "backend sign in attempt failed",
			logger.RetryCount(attempt+1),
			logger.Error(err),
		)
	}
	return nil, fmt.Errorf("%w after %d attempts: %w", ErrSignInFailed, c.attempts, lastErr)
}

// Session returns the current session or nil.
func (c *Client) Session() *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// Insert adds rows (a struct, map or slice of them) to table.
func (c *Client) Insert(ctx context.Context, table string, rows any) error {
	return c.do(ctx, http.MethodPost, "/rest/v1/"+url.PathEscape(table), nil, rows, nil, true)
}

// List reads rows from table filtered by query into out, which must be a
// pointer to a slice.
func (c *Client) List(ctx context.Context, table string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, "/rest/v1/"+url.PathEscape(table), query, nil, out, true)
}

// Healthcheck probes the auth service.
func (c *Client) Healthcheck(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/auth/v1/health", nil, nil, nil, false)
}

// expiring reports whether s has a known expiry within refreshMargin.
func (s *Session) expiring(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.Add(refreshMargin).After(s.ExpiresAt)
}

// refresh signs in again with the stored credentials unless another caller
// already replaced stale. It is a no-op for clients that never signed in.
func (c *Client) refresh(ctx context.Context, stale *Session) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	c.mu.RLock()
	current, email, password := c.session, c.email, c.password
	c.mu.RUnlock()
	if email == "" || current != stale {
		return nil
	}

	c.log.InfoContext(ctx, "renewing backend session")
	_, err := c.SignIn(ctx, email, password)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any, authed bool) error {
	if !authed {
		return c.send(ctx, method, path, query, in, out, "")
	}

	s := c.Session()
	if s != nil && s.expiring(time.Now()) {
		if err := c.refresh(ctx, s); err != nil {
			return err
		}
		s = c.Session()
	}

	err := c.send(ctx, method, path, query, in, out, c.token(s))

	var apiErr *APIError
	if s == nil || !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
		return err
	}
	if err := c.refresh(ctx, s); err != nil {
		return err
	}
	return c.send(ctx, method, path, query, in, out, c.token(c.Session()))
}

func (c *Client) token(s *Session) string {
	if s != nil {
		return s.AccessToken
	}
	return c.apiKey
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, in, out any, token string) error {
	u := *c.baseURL
	u.Path += path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: encode body: %w", ErrRequestFailed, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "nudo-backend/1.0")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost && out == nil {
		req.Header.Set("Prefer", "return=minimal")
	}
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrRequestFailed, err)
	}
	return nil
}

// errorMessage pulls a readable message out of the backend's error body.
func errorMessage(raw []byte) string {
	var payload struct {
		Message          string `json:"message"`
		Msg              string `json:"msg"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		for _, s := range []string{payload.ErrorDescription, payload.Message, payload.Msg, payload.Error} {
			if s != "" {
				return s
			}
		}
	}
	s := strings.ReplaceAll(strings.TrimSpace(string(raw)), "\n", " ")
	if utf8.RuneCountInString(s) > maxErrorText {
		s = sanitizer.MaxLength(s, maxErrorText) + "..."
	}
	return s
}
