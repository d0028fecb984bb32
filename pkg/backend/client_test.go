package backend_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nudostudio/nudo/pkg/backend"
)

func newClient(t *testing.T, h http.Handler, attempts int) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := backend.New(backend.Config{
		URL:            srv.URL + "/",
		APIKey:         "anon-key",
		SignInAttempts: attempts,
	}, backend.WithBackoff(backend.FixedBackoff{Interval: time.Millisecond}))
	require.NoError(t, err)
	return c
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	for _, u := range []string{"", "ftp://x", "/relative", "http://"} {
		_, err := backend.New(backend.Config{URL: u})
		assert.ErrorIs(t, err, backend.ErrInvalidConfig, u)
	}
}

func TestSignIn(t *testing.T) {
	t.Parallel()

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@nudo.studio", body["email"])

		_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"bearer","expires_in":3600,"user":{"id":"u1","email":"admin@nudo.studio"}}`))
	}), 3)

	s, err := c.SignIn(context.Background(), "admin@nudo.studio", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "tok", s.AccessToken)
	assert.Equal(t, "u1", s.User.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), s.ExpiresAt, 5*time.Second)
	assert.Same(t, s, c.Session())
}

func TestSignIn_RetriesTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"tok"}`))
	}), 3)

	_, err := c.SignIn(context.Background(), "a@b.co", "x")
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestSignIn_GivesUpAfterAttempts(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}), 4)

	_, err := c.SignIn(context.Background(), "a@b.co", "x")
	require.ErrorIs(t, err, backend.ErrSignInFailed)
	assert.ErrorIs(t, err, backend.ErrRequestFailed)
	assert.Contains(t, err.Error(), "after 4 attempts")
	assert.Equal(t, int32(4), calls.Load())
	assert.Nil(t, c.Session())
}

func TestSignIn_InvalidCredentialsNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
	}), 5)

	_, err := c.SignIn(context.Background(), "a@b.co", "x")
	require.ErrorIs(t, err, backend.ErrSignInFailed)
	assert.ErrorIs(t, err, backend.ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "Invalid login credentials")
	assert.Equal(t, int32(1), calls.Load())
}

func TestSignIn_ContextCancelled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	c, err := backend.New(backend.Config{URL: srv.URL, SignInAttempts: 3}, backend.WithBackoff(backend.FixedBackoff{Interval: time.Hour}))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = c.SignIn(ctx, "a@b.co", "x")
	assert.ErrorIs(t, err, backend.ErrSignInFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestInsert(t *testing.T) {
	t.Parallel()

	var got []map[string]any
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/token":
			_, _ = w.Write([]byte(`{"access_token":"user-token"}`))
		case "/rest/v1/products":
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
			assert.Equal(t, "return=minimal", r.Header.Get("Prefer"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusCreated)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}), 1)

	_, err := c.SignIn(context.Background(), "a@b.co", "x")
	require.NoError(t, err)

	rows := []map[string]any{{"name": "Tapiz"}, {"name": "Colgante"}}
	require.NoError(t, c.Insert(context.Background(), "products", rows))
	require.Len(t, got, 2)
	assert.Equal(t, "Colgante", got[1]["name"])
}

func TestInsert_RenewsSessionAfterUnauthorized(t *testing.T) {
	t.Parallel()

	var signIns, inserts atomic.Int32
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/token":
			n := signIns.Add(1)
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "secreto", body["password"])
			_, _ = fmt.Fprintf(w, `{"access_token":"token-%d","expires_in":3600}`, n)
		case "/rest/v1/contact_messages":
			inserts.Add(1)
			if r.Header.Get("Authorization") != "Bearer token-2" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message":"JWT expired"}`))
				return
			}
			w.WriteHeader(http.StatusCreated)
		}
	}), 1)

	_, err := c.SignIn(context.Background(), "admin@nudo.studio", "secreto")
	require.NoError(t, err)

	require.NoError(t, c.Insert(context.Background(), "contact_messages", map[string]any{"name": "Ana"}))
	assert.Equal(t, int32(2), signIns.Load())
	assert.Equal(t, int32(2), inserts.Load())
	assert.Equal(t, "token-2", c.Session().AccessToken)
}

func TestInsert_RenewsExpiringSession(t *testing.T) {
	t.Parallel()

	var signIns atomic.Int32
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/token":
			n := signIns.Add(1)
			// The first token is already inside the renewal margin.
			expires := 5
			if n > 1 {
				expires = 3600
			}
			_, _ = fmt.Fprintf(w, `{"access_token":"token-%d","expires_in":%d}`, n, expires)
		case "/rest/v1/products":
			assert.Equal(t, "Bearer token-2", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusCreated)
		}
	}), 1)

	_, err := c.SignIn(context.Background(), "admin@nudo.studio", "secreto")
	require.NoError(t, err)

	require.NoError(t, c.Insert(context.Background(), "products", map[string]any{"sku": "MAC-001"}))
	require.NoError(t, c.Insert(context.Background(), "products", map[string]any{"sku": "MAC-002"}))
	assert.Equal(t, int32(2), signIns.Load())
}

func TestInsert_UnauthorizedWithoutSessionIsReturned(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}), 1)

	err := c.Insert(context.Background(), "products", map[string]any{"sku": "MAC-001"})
	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestAPIError_LongBodyTruncatedOnRunes(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("ñ", 300)
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(body))
	}), 1)

	err := c.Insert(context.Background(), "products", map[string]any{})
	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, utf8.ValidString(apiErr.Message))
	assert.Equal(t, strings.Repeat("ñ", 200)+"...", apiErr.Message)
}

func TestInsert_APIError(t *testing.T) {
	t.Parallel()

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"duplicate key value"}`))
	}), 1)

	err := c.Insert(context.Background(), "products", map[string]any{"sku": "MAC-001"})
	require.ErrorIs(t, err, backend.ErrRequestFailed)
	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "duplicate key value", apiErr.Message)
}

func TestListWorkshops(t *testing.T) {
	t.Parallel()

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/workshops", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, []string{"gte.2026-03-01T05:00:00Z", "lt.2026-04-01T05:00:00Z"}, q["starts_at"])
		assert.Equal(t, "starts_at.asc", q.Get("order"))
		_, _ = w.Write([]byte(`[{"id":"w1","title":"Macramé básico","starts_at":"2026-03-14T14:00:00Z","seats":8,"available":3,"price":120000}]`))
	}), 1)

	bogota := time.FixedZone("COT", -5*3600)
	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, bogota)
	ws, err := c.ListWorkshops(context.Background(), from, from.AddDate(0, 1, 0))
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, "Macramé básico", ws[0].Title)
	assert.Equal(t, 3, ws[0].Available)

	ev := ws[0].Event()
	assert.Equal(t, "w1", ev.ID)
	assert.Equal(t, 3, ev.Seats)
}

func TestGetWorkshop(t *testing.T) {
	t.Parallel()

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") == "eq.w1" {
			_, _ = w.Write([]byte(`[{"id":"w1","title":"Tapiz"}]`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}), 1)

	ws, err := c.GetWorkshop(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, "Tapiz", ws.Title)

	_, err = c.GetWorkshop(context.Background(), "nope")
	assert.ErrorIs(t, err, backend.ErrNotFound)
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	healthy := atomic.Bool{}
	healthy.Store(true)
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/health", r.URL.Path)
		if !healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}), 1)

	assert.NoError(t, c.Healthcheck(context.Background()))
	healthy.Store(false)
	assert.ErrorIs(t, c.Healthcheck(context.Background()), backend.ErrRequestFailed)
}
