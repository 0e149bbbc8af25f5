package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/pkg/catalog"
	"github.com/dmitrymomot/localize/pkg/langtag"
	"github.com/dmitrymomot/localize/pkg/logger"
	"github.com/dmitrymomot/localize/pkg/resolver"
)

func newTestServer(t *testing.T, cfg Config) http.Handler {
	t.Helper()

	cat, err := newCatalog(cfg, catalog.NewMemoryStore(16), logger.NewNope())
	require.NoError(t, err)
	return newRouter(cat, cfg.Supported, logger.NewNope())
}

func testConfig() Config {
	return Config{
		Specificity: resolver.MostRecent,
		Supported:   langtag.ParseList("en", "fr", "de", "pl"),
	}
}

func get(t *testing.T, h http.Handler, target, acceptLanguage string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("LOCALIZE_SPECIFICITY", "language")
	t.Setenv("LOCALIZE_SUPPORTED", "en,fr_CA")
	t.Setenv("SENTRY_MIN_LEVEL", "ERROR")

	cfg, err := loadConfig()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Address)
	require.Equal(t, resolver.Language, cfg.Specificity)
	require.Equal(t, []string{"en", "fr-CA"}, langtag.Strings(cfg.Supported))
	require.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, "production", cfg.Sentry.Environment)
	require.Equal(t, "ERROR", cfg.Sentry.MinLevel.String())
}

func TestLoadConfig_InvalidSpecificity(t *testing.T) {
	t.Setenv("LOCALIZE_SPECIFICITY", "fuzzy")

	_, err := loadConfig()
	require.ErrorContains(t, err, "unknown specificity")
}

func TestGreeting(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, testConfig())

	tests := []struct {
		acceptLanguage string
		want           string
	}{
		{acceptLanguage: "fr-CH, de;q=0.8", want: "Bonjour"},
		{acceptLanguage: "fr-CA", want: "Allô"},
		{acceptLanguage: "en-GB", want: "Hello, mate"},
		{acceptLanguage: "ja, pl;q=0.3", want: "Cześć"},
		{acceptLanguage: "ja", want: "greetings.hello"},
	}

	for _, tt := range tests {
		w := get(t, h, "/greeting", tt.acceptLanguage)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, tt.want, w.Body.String(), tt.acceptLanguage)
		require.NotEmpty(t, w.Header().Get("X-Request-ID"))
	}

	require.Equal(t, "Hallo", get(t, h, "/greeting?lang=de", "fr").Body.String())
}

func TestGreeting_SupportedLanguagesFilter(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Supported = langtag.ParseList("en")
	h := newTestServer(t, cfg)

	require.Equal(t, "Hello", get(t, h, "/greeting", "fr, en;q=0.5").Body.String())
}

func TestMessages(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, testConfig())

	w := get(t, h, "/messages/greetings.welcome", "de-AT")
	require.Equal(t, http.StatusOK, w.Code)

	var got messageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, messageResponse{Name: "greetings.welcome", Value: "Willkommen zurück", Found: true}, got)

	w = get(t, h, "/messages/greetings.welcome", "pl")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.False(t, got.Found)

	w = get(t, h, "/messages/nope", "fr")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "Rien ici", got.Value)
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, testConfig())
	w := get(t, h, "/languages", "pl, en;q=0.2")
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, []string{"de", "en", "en-GB", "fr", "fr-CA", "pl"}, got["available"])
	require.Equal(t, []string{"pl", "en"}, got["preferred"])
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	w := get(t, newTestServer(t, testConfig()), "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}
