package bonusapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/PasqualeAiello/io-app/activation"
	"github.com/PasqualeAiello/io-app/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(config.APIConfig{
		BaseURL: srv.URL,
		Token:   "token-123",
		Timeout: 2 * time.Second,
	})
}

func TestStartActivation_Created(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, activationsPath, r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get(requestIDHeader))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"b-1","code":"ABCD1234","status":"ACTIVE","max_amount":50000,"max_tax_benefit":10000,"created_at":"2020-07-01T10:00:00Z"}`))
	})

	out, err := c.StartActivation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, activation.StatusSuccess, out.Status)
	require.NotNil(t, out.Bonus)
	assert.Equal(t, "ABCD1234", out.Bonus.Code)
	assert.Equal(t, int64(50000), out.Bonus.MaxAmount)
	assert.Equal(t, 2020, out.Bonus.CreatedAt.Year())
}

func TestStartActivation_StatusMapping(t *testing.T) {
	cases := map[int]activation.Status{
		http.StatusConflict:  activation.StatusExists,
		http.StatusForbidden: activation.StatusEligibilityExpired,
	}
	for code, want := range cases {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		})
		out, err := c.StartActivation(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, out.Status, "status code %d", code)
	}
}

func TestStartActivation_Accepted(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"id":"req-9"}`))
	})

	out, err := c.StartActivation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, activation.StatusProgress, out.Status)
	assert.Equal(t, "req-9", out.AcceptedID)
}

func TestStartActivation_UnexpectedStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	_, err := c.StartActivation(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Body)
}

func TestStartActivation_EmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	_, err := c.StartActivation(context.Background())
	require.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGetActivation(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, activationsPath+"/req-9", r.URL.Path)
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"id":"b-2","status":"ACTIVE"}`))
	})

	bonus, done, err := c.GetActivation(context.Background(), "req-9")
	require.NoError(t, err)
	assert.False(t, done)
	assert.Nil(t, bonus)

	bonus, done, err = c.GetActivation(context.Background(), "req-9")
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "b-2", bonus.ID)
}

// dropConnection closes the connection without an answer.
func dropConnection(t *testing.T, w http.ResponseWriter) {
	hj, ok := w.(http.Hijacker)
	require.True(t, ok)
	conn, _, err := hj.Hijack()
	require.NoError(t, err)
	_ = conn.Close()
}

func TestStartActivationIsNotRetried(t *testing.T) {
	var posts, gets atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			posts.Add(1)
		} else {
			gets.Add(1)
		}
		dropConnection(t, w)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(config.APIConfig{
		BaseURL:    srv.URL,
		Timeout:    2 * time.Second,
		RetryCount: 2,
	})

	_, err := c.StartActivation(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), posts.Load())

	_, _, err = c.GetActivation(context.Background(), "b-1")
	require.Error(t, err)
	assert.GreaterOrEqual(t, gets.Load(), int32(3))
}
