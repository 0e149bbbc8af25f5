package resolver

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/localize/pkg/langtag"
)

// Pair is a raw table key with its value, used to build a Table in a chosen order.
type Pair[V any] struct {
	Key   string
	Value V
}

// Entry is a table row. Tag is the zero Tag when Key is malformed.
type Entry[V any] struct {
	Tag   langtag.Tag
	Value V
	Key   string
}

// Matchable reports whether the entry key parsed into a tag.
func (e Entry[V]) Matchable() bool {
	return !e.Tag.IsZero()
}

// Table maps language tags to values. It is immutable and keeps insertion
// order, which is the order ties are broken in.
type Table[V any] struct {
	entries []Entry[V]
}

// NewTable builds a table from pairs in the given order.
//
// Malformed keys are kept but never match. Two keys that normalize to the
// same tag ("en-US" and "en_us") are rejected with ErrAmbiguousKey.
func NewTable[V any](pairs ...Pair[V]) (Table[V], error) {
	entries := make([]Entry[V], 0, len(pairs))

	for _, p := range pairs {
		tag, _ := langtag.Parse(p.Key)

		if !tag.IsZero() {
			for _, e := range entries {
				if e.Tag.ExactEqual(tag) {
					return Table[V]{}, fmt.Errorf("%w: %q and %q both normalize to %q", ErrAmbiguousKey, e.Key, p.Key, tag.String())
				}
			}
		}

		entries = append(entries, Entry[V]{Key: p.Key, Tag: tag, Value: p.Value})
	}

	return Table[V]{entries: entries}, nil
}

// MustTable is like NewTable but panics on error.
func MustTable[V any](pairs ...Pair[V]) Table[V] {
	t, err := NewTable(pairs...)
	if err != nil {
		panic(err)
	}
	return t
}

// TableFromMap builds a table from a map. Map iteration order is random, so
// keys are ordered by ascending byte value to keep resolution deterministic.
func TableFromMap[V any](m map[string]V) (Table[V], error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	pairs := make([]Pair[V], 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, Pair[V]{Key: k, Value: m[k]})
	}

	return NewTable(pairs...)
}

// Len returns the number of entries, matchable or not.
func (t Table[V]) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the table rows in order.
func (t Table[V]) Entries() []Entry[V] {
	return slices.Clone(t.entries)
}

// Tags returns the tags of all matchable keys in table order.
func (t Table[V]) Tags() []langtag.Tag {
	tags := make([]langtag.Tag, 0, len(t.entries))
	for _, e := range t.entries {
		if e.Matchable() {
			tags = append(tags, e.Tag)
		}
	}
	return tags
}

// exact returns the first entry exact-equal to target.
func (t Table[V]) exact(target langtag.Tag) (V, bool) {
	for _, e := range t.entries {
		if e.Tag.ExactEqual(target) {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// language returns the best language-equal entry for target: the regional
// match first, then the region-less key, then the first language-equal key.
func (t Table[V]) language(target langtag.Tag) (V, bool) {
	var bare, first *Entry[V]

	for i := range t.entries {
		e := &t.entries[i]
		if !e.Tag.LanguageEqual(target) {
			continue
		}
		if e.Tag.ExactEqual(target) {
			return e.Value, true
		}
		if bare == nil && !e.Tag.HasRegion() {
			bare = e
		}
		if first == nil {
			first = e
		}
	}

	switch {
	case bare != nil:
		return bare.Value, true
	case first != nil:
		return first.Value, true
	default:
		var zero V
		return zero, false
	}
}
