package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize"
	"github.com/dmitrymomot/localize/middlewares"
	"github.com/dmitrymomot/localize/pkg/langtag"
	"github.com/dmitrymomot/localize/pkg/preference"
)

func newLanguageRouter(t *testing.T, opts ...middlewares.LanguageOption) (*chi.Mux, *[]string) {
	t.Helper()

	var got []string
	r := chi.NewRouter()
	r.Use(middlewares.Language(opts...))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		got = langtag.Strings(middlewares.GetLanguages(r))
		w.WriteHeader(http.StatusNoContent)
	})
	return r, &got
}

func TestLanguageMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("reads accept-language", func(t *testing.T) {
		t.Parallel()

		router, got := newLanguageRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "de-DE,de;q=0.9,en;q=0.5")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNoContent, w.Code)
		require.Equal(t, []string{"de-DE", "de", "en"}, *got)
	})

	t.Run("query and cookie rank above header", func(t *testing.T) {
		t.Parallel()

		router, got := newLanguageRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/?lang=pl", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "fr_CA"})
		req.Header.Set("Accept-Language", "en-US,pl;q=0.5")
		router.ServeHTTP(httptest.NewRecorder(), req)

		require.Equal(t, []string{"pl", "fr-CA", "en-US"}, *got)
	})

	t.Run("ignores malformed explicit values", func(t *testing.T) {
		t.Parallel()

		router, got := newLanguageRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/?lang=klingon-please", nil)
		req.Header.Set("Accept-Language", "it")
		router.ServeHTTP(httptest.NewRecorder(), req)

		require.Equal(t, []string{"it"}, *got)
	})

	t.Run("no preferences", func(t *testing.T) {
		t.Parallel()

		router, got := newLanguageRouter(t)
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		require.Empty(t, *got)
	})

	t.Run("custom extractors", func(t *testing.T) {
		t.Parallel()

		router, got := newLanguageRouter(t, middlewares.WithLanguageExtractors(
			middlewares.FromHeader("X-Language"),
			nil,
		))

		req := httptest.NewRequest(http.MethodGet, "/?lang=pl", nil)
		req.Header.Set("X-Language", "uk")
		req.Header.Set("Accept-Language", "en")
		router.ServeHTTP(httptest.NewRecorder(), req)

		require.Equal(t, []string{"uk"}, *got)
	})
}

func TestLanguageMiddleware_ResolvesLocalizedValues(t *testing.T) {
	t.Parallel()

	greeting := localize.MustLocalize(map[string]string{
		"en": "Hello",
		"fr": "Bonjour",
		"de": "Hallo",
	}, localize.MostRecent).WithDefault("Hello")

	r := chi.NewRouter()
	r.Use(middlewares.Language(middlewares.WithSupportedLanguages(
		langtag.MustParse("en"),
		langtag.MustParse("fr"),
	)))
	r.Get("/greeting", func(w http.ResponseWriter, r *http.Request) {
		src, ok := preference.FromContext(r.Context())
		require.True(t, ok)
		require.Len(t, src.SupportedLanguages(), 2)

		v, _ := greeting.ValueContext(r.Context())
		_, _ = w.Write([]byte(v))
	})

	tests := []struct {
		header string
		want   string
	}{
		{header: "fr-CH, de;q=0.9", want: "Bonjour"},
		{header: "de, en;q=0.5", want: "Hello"},
		{header: "ja", want: "Hello"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/greeting", nil)
		req.Header.Set("Accept-Language", tt.header)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, tt.want, strings.TrimSpace(w.Body.String()), tt.header)
	}
}

func TestGetLanguages_WithoutMiddleware(t *testing.T) {
	t.Parallel()

	require.Nil(t, middlewares.GetLanguages(httptest.NewRequest(http.MethodGet, "/", nil)))
}
