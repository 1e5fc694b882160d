package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanOrigin(t *testing.T) {
	cases := map[string]string{
		"https://ninehub.dev":         "ninehub.dev",
		"http://localhost:3000":       "localhost:3000",
		"https://ninehub.dev/tools/x": "ninehub.dev",
		"wss://ninehub.dev":           "ninehub.dev",
		"ninehub.dev":                 "ninehub.dev",
	}
	for in, want := range cases {
		assert.Equal(t, want, cleanOrigin(in), in)
	}
}

func TestIsAllowedOrigin(t *testing.T) {
	allowed := []string{"https://ninehub.dev"}

	assert.True(t, isAllowedOrigin("https://ninehub.dev", allowed, false))
	assert.True(t, isAllowedOrigin("https://ninehub.dev/glass", allowed, false))
	assert.False(t, isAllowedOrigin("https://evil.example", allowed, false))

	assert.False(t, isAllowedOrigin("http://localhost:5173", allowed, false))
	assert.True(t, isAllowedOrigin("http://localhost:5173", allowed, true))

	assert.True(t, isAllowedOrigin("https://anything.example", []string{"*"}, false))
}

func TestOriginWrapper(t *testing.T) {
	env := newTestEnv(t)

	t.Run("allowed origin gets cors headers", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/healthz", nil, "Origin", "https://ninehub.dev")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://ninehub.dev", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unknown origin is rejected", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/healthz", nil, "Origin", "https://evil.example")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "evil.example")
	})

	t.Run("referer stands in for a missing origin", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/healthz", nil, "Referer", "https://evil.example/page")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("server to server calls pass", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/healthz", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("preflight short circuits", func(t *testing.T) {
		rec := env.do(http.MethodOptions, "/v1/webhooks/fastspring", nil, "Origin", "https://ninehub.dev")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-FS-Signature")
	})
}

func TestHomeAndHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Nine Hub API", rec.Body.String())

	rec = env.do(http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody[map[string]string](t, rec)["status"])

	env.app.DB = fakePinger{err: errBoom}
	rec = env.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMethodChecks(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/v1/colors/convert?hex=fff", nil)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
	herr := decodeBody[HandlerError](t, rec)
	assert.Equal(t, "GET Method Required", herr.ErrorName)
	assert.Contains(t, herr.Description, "you used: POST")
	assert.NotEmpty(t, herr.CallerInfo)

	rec = env.do(http.MethodGet, "/v1/waitlist", nil)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}
