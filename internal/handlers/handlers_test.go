package handlers_test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/clsx/internal/config"
	"github.com/vangoframework/clsx/internal/handlers"
	"github.com/vangoframework/clsx/internal/metrics"
	"github.com/vangoframework/clsx/internal/middleware"
)

// testConfig creates a minimal config for testing
func testConfig() *config.Config {
	return &config.Config{
		Port:            "8080",
		Environment:     "development",
		LogLevel:        slog.LevelError,
		MaxBodyBytes:    256,
		ShutdownTimeout: time.Second,
	}
}

func testRouter(t *testing.T) (http.Handler, *metrics.Metrics) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	m := metrics.New()
	h := handlers.New(testConfig(), m, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Get("/", h.Home)
	r.Get("/health", h.Health)
	r.Post("/resolve", h.Resolve)
	r.Get("/resolve", h.ResolveQuery)
	return r, m
}

type resolveResult struct {
	Class   string `json:"class"`
	Present bool   `json:"present"`
	Error   string `json:"error"`
}

func post(t *testing.T, router http.Handler, contentType, body string) (*httptest.ResponseRecorder, resolveResult) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/resolve", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var res resolveResult
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	}
	return rec, res
}

func TestResolveJSON(t *testing.T) {
	router, _ := testRouter(t)

	tests := []struct {
		name        string
		contentType string
		body        string
		want        resolveResult
	}{
		{"json list", "application/json", `["btn", {"active": true, "hidden": false}, "btn"]`, resolveResult{Class: "btn active", Present: true}},
		{"default content type", "", `["a", ["b", "a"]]`, resolveResult{Class: "a b", Present: true}},
		{"single value", "application/json; charset=utf-8", `"x  y"`, resolveResult{Class: "x y", Present: true}},
		{"absent", "application/json", `[null, false, ""]`, resolveResult{Class: "", Present: false}},
		{"yaml", "application/yaml", "- btn\n- ? [a, b]\n  : true\n- !sym c\n", resolveResult{Class: "btn c a b", Present: true}},
		{"html escaping off", "application/json", `["<b>&"]`, resolveResult{Class: "<b>&", Present: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, res := post(t, router, tt.contentType, tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestResolveRawBody(t *testing.T) {
	router, _ := testRouter(t)
	rec, _ := post(t, router, "application/json", `["<b>"]`)
	assert.Contains(t, rec.Body.String(), `"class":"<b>"`)
}

// nestedAliases returns a small YAML document that expands to
// 10^(levels+1) scalars.
func nestedAliases(levels int) string {
	doc := "- &a0 [x, x, x, x, x, x, x, x, x, x]\n"
	for k := 1; k <= levels; k++ {
		ref := fmt.Sprintf("*a%d", k-1)
		doc += fmt.Sprintf("- &a%d [%s]\n", k, strings.TrimSuffix(strings.Repeat(ref+",", 10), ","))
	}
	return doc
}

func TestResolveErrors(t *testing.T) {
	require.Less(t, len(nestedAliases(4)), int(testConfig().MaxBodyBytes))

	router, _ := testRouter(t)

	tests := []struct {
		name        string
		contentType string
		body        string
		status      int
	}{
		{"malformed json", "application/json", `["a",`, http.StatusBadRequest},
		{"malformed yaml", "text/yaml", `[a, b`, http.StatusBadRequest},
		{"unknown tag", "text/yaml", `[!custom a]`, http.StatusBadRequest},
		{"alias expansion", "application/yaml", nestedAliases(4), http.StatusBadRequest},
		{"unsupported type", "text/html", `<p>`, http.StatusUnsupportedMediaType},
		{"too large", "application/json", `["` + strings.Repeat("a", 300) + `"]`, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, res := post(t, router, tt.contentType, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, res.Error)
		})
	}
}

func TestResolveQuery(t *testing.T) {
	router, _ := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/resolve?class=a+b&class=b&class=c", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var res resolveResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, resolveResult{Class: "a b c", Present: true}, res)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/resolve", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.False(t, res.Present)
}

func TestResolveRecordsMetrics(t *testing.T) {
	router, m := testRouter(t)

	post(t, router, "application/json", `["a"]`)
	post(t, router, "application/json", `[false]`)
	post(t, router, "application/json", `["b", "c"]`)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `clsx_resolutions_total{outcome="present"} 2`)
	assert.Contains(t, rec.Body.String(), `clsx_resolutions_total{outcome="absent"} 1`)
	assert.Contains(t, rec.Body.String(), "clsx_tokens_sum 3")

	n, err := testutil.GatherAndCount(m.Registry(), "clsx_resolutions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestHealth(t *testing.T) {
	router, _ := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHome(t *testing.T) {
	router, _ := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?class=w-full+w-full&class=%3Cx%3E", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<div class="))
	assert.Contains(t, body, `<pre id="resolved">w-full &lt;x&gt;</pre>`)
	assert.Contains(t, body, "<button")
	assert.Contains(t, body, "w-full &lt;x&gt;\"")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rec.Body.String(), "(no classes)")
}
