package preference

import "github.com/dmitrymomot/localize/pkg/langtag"

// Source reports the user's language preferences and the languages the host
// application ships.
type Source interface {
	// PreferredLanguages returns tags in order of preference, most preferred first.
	PreferredLanguages() []langtag.Tag

	// SupportedLanguages returns the languages the application supports.
	// An empty result means no restriction.
	SupportedLanguages() []langtag.Tag
}

// Static is a fixed Source.
type Static struct {
	Preferred []langtag.Tag
	Supported []langtag.Tag
}

// NewStatic builds a Static source from raw tags. Malformed tags are skipped.
func NewStatic(preferred, supported []string) Static {
	return Static{
		Preferred: langtag.ParseList(preferred...),
		Supported: langtag.ParseList(supported...),
	}
}

// PreferredLanguages implements Source.
func (s Static) PreferredLanguages() []langtag.Tag {
	return s.Preferred
}

// SupportedLanguages implements Source.
func (s Static) SupportedLanguages() []langtag.Tag {
	return s.Supported
}

// Candidates returns the source's preferred languages that are supported,
// in preference order. When the source supports nothing in particular, the
// preferred list is returned without duplicates.
func Candidates(src Source) []langtag.Tag {
	if src == nil {
		return nil
	}
	return langtag.Intersect(src.PreferredLanguages(), src.SupportedLanguages())
}

var _ Source = Static{}
