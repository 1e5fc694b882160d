package newsletter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestDemoMode(t *testing.T) {
	for _, id := range []string{"", "  ", "your_loops_form_id_here"} {
		c := New(id, zaptest.NewLogger(t), WithBaseURL("http://127.0.0.1:1"))
		assert.True(t, c.Demo(), id)
		assert.NoError(t, c.Subscribe(context.Background(), "a@b.co", "footer"))
	}
	assert.False(t, New("abc123", nil).Demo())
}

func TestSubscribePostsForm(t *testing.T) {
	var gotPath, gotBody, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := New("form42", zaptest.NewLogger(t), WithBaseURL(srv.URL+"/api/newsletter-form"))
	require.NoError(t, c.Subscribe(context.Background(), "jo+news@example.com", "hero"))

	assert.Equal(t, "/api/newsletter-form/form42", gotPath)
	assert.Equal(t, "application/x-www-form-urlencoded", gotType)
	assert.Equal(t, "userGroup=&mailingLists=&email=jo%2Bnews%40example.com", gotBody)
}

func TestSubscribeRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"Invalid email"}`))
	}))
	defer srv.Close()

	c := New("form42", zaptest.NewLogger(t), WithBaseURL(srv.URL))
	err := c.Subscribe(context.Background(), "bad", "hero")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid email")
}

func TestSubscribeRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := New("form42", zaptest.NewLogger(t), WithBaseURL(srv.URL), WithRetryMax(2))
	c.http.RetryWaitMin = 0
	c.http.RetryWaitMax = 0

	require.NoError(t, c.Subscribe(context.Background(), "a@b.co", "hero"))
	assert.Equal(t, int32(2), calls.Load())
}
