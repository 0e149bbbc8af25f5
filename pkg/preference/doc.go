// Package preference provides the ordered language preferences that feed
// localization lookups.
//
// A Source reports the user's preferred languages (most preferred first) and
// the languages the application supports. Implementations cover fixed lists
// (Static), POSIX locale variables (FromEnv) and HTTP Accept-Language headers
// (FromAcceptLanguage):
//
//	src := preference.FromEnv(os.Getenv, preference.WithSupported(
//		langtag.MustParse("en"),
//		langtag.MustParse("de"),
//	))
//	tags := preference.Candidates(src) // preferred ∩ supported, in order
//
// Request-scoped preferences travel in a context.Context:
//
//	ctx = preference.WithContext(ctx, preference.FromAcceptLanguage(r.Header.Get("Accept-Language")))
//	src, ok := preference.FromContext(ctx)
package preference
