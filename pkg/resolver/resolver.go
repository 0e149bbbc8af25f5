package resolver

import "github.com/dmitrymomot/localize/pkg/langtag"

// Request is a single resolution request. The zero Desired tag means no
// explicit language was asked for.
type Request[V any] struct {
	Default     V
	Table       Table[V]
	Preferred   []langtag.Tag
	Desired     langtag.Tag
	Specificity Specificity
	HasDefault  bool
}

// Resolve returns the matched value, or false when nothing matched.
// The request default is not consulted; use ResolveOr for that.
func (r Request[V]) Resolve() (V, bool) {
	return Resolve(r.Table, r.Specificity, r.Desired, r.Preferred)
}

// ResolveOr returns the matched value, falling back to the request default.
// The boolean is false only when nothing matched and no default is set.
func (r Request[V]) ResolveOr() (V, bool) {
	if v, ok := r.Resolve(); ok {
		return v, true
	}
	if r.HasDefault {
		return r.Default, true
	}
	var zero V
	return zero, false
}

// Resolve selects the table value that best matches the desired tag and the
// preferred languages under the given specificity.
//
// Exact and Language test a single target: desired when set, otherwise the
// first preferred tag. MostRecent ranks desired followed by preferred, drops
// repeated languages, and returns the first candidate with a Language match.
//
// Resolve is pure and never mutates its inputs.
func Resolve[V any](table Table[V], specificity Specificity, desired langtag.Tag, preferred []langtag.Tag) (V, bool) {
	var zero V

	if table.Len() == 0 {
		return zero, false
	}

	switch specificity {
	case Exact:
		if target, ok := singleTarget(desired, preferred); ok {
			return table.exact(target)
		}
	case Language:
		if target, ok := singleTarget(desired, preferred); ok {
			return table.language(target)
		}
	case MostRecent:
		for _, candidate := range Ranked(desired, preferred) {
			if v, ok := table.language(candidate); ok {
				return v, true
			}
		}
	}

	return zero, false
}

// Ranked returns the MostRecent candidate list: desired first when set, then
// preferred, keeping only the first tag of each language.
func Ranked(desired langtag.Tag, preferred []langtag.Tag) []langtag.Tag {
	ranked := make([]langtag.Tag, 0, len(preferred)+1)
	if !desired.IsZero() {
		ranked = append(ranked, desired)
	}
	ranked = append(ranked, preferred...)
	return langtag.DedupeLanguages(ranked)
}

func singleTarget(desired langtag.Tag, preferred []langtag.Tag) (langtag.Tag, bool) {
	if !desired.IsZero() {
		return desired, true
	}
	if len(preferred) > 0 && !preferred[0].IsZero() {
		return preferred[0], true
	}
	return langtag.Tag{}, false
}
