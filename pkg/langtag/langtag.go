package langtag

import (
	"fmt"
	"strings"
)

// Tag is a normalized language tag made of a primary language subtag and an
// optional region subtag. The zero Tag means "no language".
type Tag struct {
	// Language is the lowercase primary subtag, e.g. "en".
	Language string
	// Region is the uppercase region subtag, e.g. "US". Empty when absent.
	Region string
}

// Parse normalizes a raw tag such as "en", "EN-us" or "pt_BR".
// The raw string is split on the first '-' or '_'.
//
// Only the language and region subtags are modeled. Scripts, variants and
// extensions ("zh-Hant-TW", "en-US-x-foo") are reported as ErrInvalidTag.
func Parse(raw string) (Tag, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Tag{}, ErrEmptyTag
	}

	lang, region, hasRegion := strings.Cut(strings.ReplaceAll(raw, "_", "-"), "-")

	if !isLanguage(lang) {
		return Tag{}, fmt.Errorf("%w: bad language subtag in %q", ErrInvalidTag, raw)
	}
	if hasRegion && !isRegion(region) {
		return Tag{}, fmt.Errorf("%w: bad region subtag in %q", ErrInvalidTag, raw)
	}

	return Tag{
		Language: strings.ToLower(lang),
		Region:   strings.ToUpper(region),
	}, nil
}

// MustParse is like Parse but panics on malformed input.
// Intended for package-level variables and tests.
func MustParse(raw string) Tag {
	t, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// IsZero reports whether the tag carries no language.
func (t Tag) IsZero() bool {
	return t.Language == ""
}

// HasRegion reports whether the tag has a region subtag.
func (t Tag) HasRegion() bool {
	return t.Region != ""
}

// Base returns the tag without its region.
func (t Tag) Base() Tag {
	return Tag{Language: t.Language}
}

// String renders the tag in BCP 47 form: "en" or "en-US".
func (t Tag) String() string {
	if t.Region == "" {
		return t.Language
	}
	return t.Language + "-" + t.Region
}

// LanguageEqual reports whether both tags share the same language, ignoring region.
func (t Tag) LanguageEqual(other Tag) bool {
	return !t.IsZero() && strings.EqualFold(t.Language, other.Language)
}

// ExactEqual reports whether both tags share language and region.
// An absent region only equals another absent region.
func (t Tag) ExactEqual(other Tag) bool {
	return t.LanguageEqual(other) && strings.EqualFold(t.Region, other.Region)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tag) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func isLanguage(s string) bool {
	if len(s) < 2 || len(s) > 8 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isAlpha(s[i]) {
			return false
		}
	}
	return true
}

// isRegion accepts ISO 3166-1 alpha-2 codes and UN M.49 numeric codes.
func isRegion(s string) bool {
	switch len(s) {
	case 2:
		return isAlpha(s[0]) && isAlpha(s[1])
	case 3:
		return isDigit(s[0]) && isDigit(s[1]) && isDigit(s[2])
	default:
		return false
	}
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
