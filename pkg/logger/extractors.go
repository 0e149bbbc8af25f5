package logger

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/localize/pkg/langtag"
	"github.com/dmitrymomot/localize/pkg/preference"
)

// LanguagesKey is the attribute key used for preferred languages.
const LanguagesKey = "languages"

// Languages renders tags as a string list attribute.
func Languages(tags []langtag.Tag) slog.Attr {
	return slog.Any(LanguagesKey, langtag.Strings(tags))
}

// LanguagesExtractor adds the preferred languages carried by the context
// (see preference.WithContext) to every record.
func LanguagesExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		src, ok := preference.FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		tags := src.PreferredLanguages()
		if len(tags) == 0 {
			return slog.Attr{}, false
		}
		return Languages(tags), true
	}
}
