// Package catalog loads named localization tables from YAML or JSON files
// and resolves them per request.
//
// A catalog is built once at startup:
//
//	//go:embed locales
//	var locales embed.FS
//
//	sub, _ := fs.Sub(locales, "locales")
//	cat, err := catalog.New(
//		catalog.WithYAMLDir(sub),
//		catalog.WithSpecificity(resolver.MostRecent),
//	)
//
// and queried with the preferences carried by the request context, usually
// placed there by middlewares.Language:
//
//	title := cat.T(r.Context(), "greetings.hello")
//
// Resolution results are memoized in a Store keyed by table name, specificity
// and candidate languages. MemoryStore keeps them in process; RedisStore
// shares them between instances. Concurrent misses for the same key are
// resolved once.
package catalog
