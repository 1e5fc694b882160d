package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/nine-hub/api/datastore"
	"github.com/nine-hub/api/models"
	"github.com/nine-hub/api/webhook"
)

var fixedNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

type fakeSubscriptions struct {
	mu   sync.Mutex
	rows map[string]models.Subscription
	err  error
}

func newFakeSubscriptions() *fakeSubscriptions {
	return &fakeSubscriptions{rows: map[string]models.Subscription{}}
}

func (f *fakeSubscriptions) Upsert(ctx context.Context, sub models.Subscription) (models.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return sub, f.err
	}
	if old, ok := f.rows[sub.FastSpringSubscriptionID]; ok {
		sub.ID = old.ID
		sub.CreatedAt = old.CreatedAt
		if sub.CurrentPeriodStart == nil {
			sub.CurrentPeriodStart = old.CurrentPeriodStart
		}
		if sub.CurrentPeriodEnd == nil {
			sub.CurrentPeriodEnd = old.CurrentPeriodEnd
		}
	}
	f.rows[sub.FastSpringSubscriptionID] = sub
	return sub, nil
}

func (f *fakeSubscriptions) UpdateStatus(ctx context.Context, fastspringID, status string, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	sub := f.rows[fastspringID]
	sub.Status = status
	sub.UpdatedAt = now
	f.rows[fastspringID] = sub
	return nil
}

func (f *fakeSubscriptions) MarkCharged(ctx context.Context, fastspringID string, periodEnd *time.Time, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	sub := f.rows[fastspringID]
	sub.Status = models.StatusActive
	if periodEnd != nil {
		sub.CurrentPeriodEnd = periodEnd
	}
	sub.UpdatedAt = now
	f.rows[fastspringID] = sub
	return nil
}

func (f *fakeSubscriptions) GetByEmail(ctx context.Context, email string) (models.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.Subscription{}, f.err
	}
	for _, sub := range f.rows {
		if sub.Email == email {
			return sub, nil
		}
	}
	return models.Subscription{}, datastore.NoRowsError{NoRows: true, Err: sql.ErrNoRows}
}

func (f *fakeSubscriptions) GetAll(ctx context.Context) ([]models.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	subs := []models.Subscription{}
	for _, sub := range f.rows {
		subs = append(subs, sub)
	}
	return subs, nil
}

func (f *fakeSubscriptions) ExpireLapsed(ctx context.Context, cutoff time.Time, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, sub := range f.rows {
		if sub.Status == models.StatusActive && sub.CurrentPeriodEnd != nil && sub.CurrentPeriodEnd.Before(cutoff) {
			sub.Status = models.StatusExpired
			sub.UpdatedAt = now
			f.rows[id] = sub
			n++
		}
	}
	return n, nil
}

type fakeWaitlist struct {
	mu       sync.Mutex
	entries  []models.WaitlistEmail
	err      error
	countErr error
}

func (f *fakeWaitlist) Create(ctx context.Context, entry models.WaitlistEmail) (models.WaitlistEmail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return entry, f.err
	}
	for _, e := range f.entries {
		if e.Email == entry.Email {
			return entry, datastore.ErrAlreadyExists
		}
	}
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeWaitlist) GetAll(ctx context.Context) ([]models.WaitlistEmail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.WaitlistEmail{}, f.entries...), nil
}

func (f *fakeWaitlist) Count(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countErr != nil {
		return 0, f.countErr
	}
	return len(f.entries), nil
}

type fakeNewsletter struct {
	demo   bool
	err    error
	emails []string
}

func (f *fakeNewsletter) Subscribe(ctx context.Context, email, source string) error {
	if f.err != nil {
		return f.err
	}
	f.emails = append(f.emails, email)
	return nil
}

func (f *fakeNewsletter) Demo() bool { return f.demo }

type fakeExpirer struct {
	n   int64
	err error
}

func (f fakeExpirer) ExpireLapsed(ctx context.Context) (int64, error) { return f.n, f.err }

type fakePinger struct{ err error }

func (f fakePinger) PingContext(ctx context.Context) error { return f.err }

var errBoom = errors.New("boom")

type testEnv struct {
	app      *Application
	handler  http.Handler
	subs     *fakeSubscriptions
	waitlist *fakeWaitlist
	news     *fakeNewsletter
}

func newTestEnv(t *testing.T, mutate ...func(*Config)) *testEnv {
	t.Helper()

	cfg := Config{
		HTTPPort:          ":0",
		JwtSecret:         "test-secret",
		JwtAccessDuration: 900,
		AllowedOrigins:    []string{"https://ninehub.dev"},
	}
	for _, m := range mutate {
		m(&cfg)
	}

	logger := zaptest.NewLogger(t)
	subs := newFakeSubscriptions()
	waitlist := &fakeWaitlist{}
	news := &fakeNewsletter{}

	app := NewApplication(Application{
		Config:           cfg,
		Logger:           logger,
		DB:               fakePinger{},
		SubscriptionRepo: subs,
		WaitlistRepo:     waitlist,
		Webhooks:         webhook.NewProcessor(subs, logger),
		Newsletter:       news,
		Expiry:           fakeExpirer{n: 2},
	})
	app.now = func() time.Time { return fixedNow }
	app.newRand = func() *rand.Rand { return rand.New(rand.NewPCG(7, 11)) }

	return &testEnv{
		app:      app,
		handler:  app.BuildRoutes(http.NewServeMux()),
		subs:     subs,
		waitlist: waitlist,
		news:     news,
	}
}

func (e *testEnv) do(method, target string, body any, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	case []byte:
		reader = bytes.NewReader(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
