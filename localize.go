package localize

import (
	"github.com/dmitrymomot/localize/pkg/langtag"
	"github.com/dmitrymomot/localize/pkg/preference"
	"github.com/dmitrymomot/localize/pkg/resolver"
)

// Type aliases - public API
type (
	// Tag is a normalized language tag with an optional region.
	Tag = langtag.Tag

	// Specificity controls how strictly a tag must match a table key.
	Specificity = resolver.Specificity

	// Table is an ordered set of language-keyed values.
	Table[V any] = resolver.Table[V]

	// Pair is a raw key and value used to build a Table in order.
	Pair[V any] = resolver.Pair[V]

	// Source supplies preferred and supported languages.
	Source = preference.Source
)

// Specificities.
const (
	Exact      = resolver.Exact
	Language   = resolver.Language
	MostRecent = resolver.MostRecent
)

// NewTable builds a table that keeps the order of pairs.
func NewTable[V any](pairs ...Pair[V]) (Table[V], error) {
	return resolver.NewTable(pairs...)
}

// Resolved is implemented by values that lazily resolve to a V.
type Resolved[V any] interface {
	Value() (V, bool)
}

var _ Resolved[string] = (*Localized[string])(nil)
