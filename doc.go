// Package localize resolves one logical value, expressed in several
// languages, to the variant that best matches the user's language
// preferences.
//
// The core is a pure matching function (see package resolver); this package
// wraps it in an immutable, lazily resolving value:
//
//	greeting := localize.MustLocalize(map[string]string{
//		"en":    "Hello",
//		"en-GB": "Hello, mate",
//		"fr":    "Bonjour",
//	}, localize.MostRecent)
//
//	fmt.Println(greeting) // resolved against LANGUAGE / LC_ALL / LC_MESSAGES / LANG
//
// # Specificity
//
// Exact requires the target language and region to match a key. Language
// accepts any regional variant of the target language. MostRecent tries the
// explicit language and then every preferred language in order, falling back
// gracefully instead of failing when the most preferred language has no
// localization.
//
// # Updates
//
// Instances never change after construction. Builder-style methods return a
// new instance with one field changed and a fresh, unresolved cache:
//
//	legal := greeting.WithSpecificity(localize.Exact)
//	french, err := greeting.InLanguage("fr-CA")
//	safe := greeting.WithDefault("Hi")
//
// # Resolution and caching
//
// Value resolves on first use and caches the outcome for the lifetime of the
// instance; concurrent first calls resolve exactly once. ValueContext and
// ForLanguage resolve on every call and are meant for request-scoped
// preferences:
//
//	ctx = preference.WithContext(ctx, preference.FromAcceptLanguage(header))
//	msg, ok := greeting.ValueContext(ctx)
//
// When nothing matches, the default (if any) is used; otherwise the value is
// absent: Value reports false, String is empty, MarshalJSON writes null and Do
// is a no-op.
package localize
