package middlewares

import (
	"net/http"

	"github.com/dmitrymomot/localize/pkg/langtag"
	"github.com/dmitrymomot/localize/pkg/preference"
)

// LanguageExtractor reads preferred languages from a request.
// It returns nil when the request carries none.
type LanguageExtractor func(r *http.Request) []langtag.Tag

// LanguageConfig configures the Language middleware.
type LanguageConfig struct {
	Extractors []LanguageExtractor
	Supported  []langtag.Tag
}

// LanguageOption configures LanguageConfig.
type LanguageOption func(*LanguageConfig)

// WithLanguageExtractors replaces the default extractor chain.
func WithLanguageExtractors(extractors ...LanguageExtractor) LanguageOption {
	return func(cfg *LanguageConfig) {
		cfg.Extractors = extractors
	}
}

// WithSupportedLanguages sets the languages reported as supported to
// downstream resolvers.
func WithSupportedLanguages(tags ...langtag.Tag) LanguageOption {
	return func(cfg *LanguageConfig) {
		cfg.Supported = tags
	}
}

// FromQuery returns an extractor reading a single tag from a query parameter.
func FromQuery(name string) LanguageExtractor {
	return func(r *http.Request) []langtag.Tag {
		return parseOne(r.URL.Query().Get(name))
	}
}

// FromCookie returns an extractor reading a single tag from a cookie.
func FromCookie(name string) LanguageExtractor {
	return func(r *http.Request) []langtag.Tag {
		c, err := r.Cookie(name)
		if err != nil {
			return nil
		}
		return parseOne(c.Value)
	}
}

// FromHeader returns an extractor reading a single tag from a header.
func FromHeader(name string) LanguageExtractor {
	return func(r *http.Request) []langtag.Tag {
		return parseOne(r.Header.Get(name))
	}
}

// FromAcceptLanguage returns an extractor reading the Accept-Language header,
// ordered by quality.
func FromAcceptLanguage() LanguageExtractor {
	return func(r *http.Request) []langtag.Tag {
		return preference.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	}
}

// Language returns middleware that collects the request's preferred languages
// and stores them in the request context as a preference.Source.
//
// Extractors run in order and their results are concatenated, so an explicit
// choice (query, cookie) ranks above the browser's Accept-Language list.
// The default chain is: query "lang", cookie "lang", Accept-Language.
func Language(opts ...LanguageOption) func(http.Handler) http.Handler {
	cfg := &LanguageConfig{
		Extractors: []LanguageExtractor{
			FromQuery("lang"),
			FromCookie("lang"),
			FromAcceptLanguage(),
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var tags []langtag.Tag
			for _, ex := range cfg.Extractors {
				if ex == nil {
					continue
				}
				tags = append(tags, ex(r)...)
			}

			src := preference.Static{
				Preferred: langtag.Dedupe(tags),
				Supported: cfg.Supported,
			}

			next.ServeHTTP(w, r.WithContext(preference.WithContext(r.Context(), src)))
		})
	}
}

// GetLanguages returns the preferred languages stored by the Language
// middleware, or nil when the middleware is not used.
func GetLanguages(r *http.Request) []langtag.Tag {
	src, ok := preference.FromContext(r.Context())
	if !ok {
		return nil
	}
	return src.PreferredLanguages()
}

func parseOne(raw string) []langtag.Tag {
	if raw == "" {
		return nil
	}
	t, err := langtag.Parse(raw)
	if err != nil {
		return nil
	}
	return []langtag.Tag{t}
}
