// Package middlewares provides net/http middleware for localized services.
//
// All middlewares have the standard func(http.Handler) http.Handler shape and
// work with any router:
//
//	r := chi.NewRouter()
//	r.Use(
//	    middlewares.RequestID(),
//	    middlewares.Recover(middlewares.WithRecoverLogger(log)),
//	    middlewares.Language(middlewares.WithSupportedLanguages(supported...)),
//	)
//
// # Language
//
// Language collects the caller's preferred languages and stores them in the
// request context as a preference.Source. Explicit choices come first: the
// "lang" query parameter, then the "lang" cookie, then Accept-Language in
// quality order. Localized values and catalogs read them from the context:
//
//	title, _ := greeting.ValueContext(r.Context())
//	body := cat.T(r.Context(), "emails.welcome")
//
// Use WithLanguageExtractors to change the chain, e.g. to read a user profile.
//
// # Request ID
//
// RequestID assigns an ID to each request, reusing X-Request-ID or
// X-Correlation-ID when the client sends one. Pass RequestIDExtractor to
// logger.New to add request_id to every log record:
//
//	log := logger.New(middlewares.RequestIDExtractor(), logger.LanguagesExtractor())
//
// # Recover
//
// Recover turns panics into a logged PanicError and a 500 response.
// WithRecoverHandler replaces the response.
package middlewares
