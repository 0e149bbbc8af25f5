package resolver

import (
	"fmt"
	"strings"
)

// Specificity controls how strictly a language tag must match a table key.
type Specificity int

const (
	// Exact requires language and region to match the single target tag.
	Exact Specificity = iota

	// Language accepts any regional variant of the single target tag's language.
	Language

	// MostRecent walks the desired tag and then every preferred tag,
	// applying the Language rule to each until one matches.
	MostRecent
)

// String returns the text form used in configuration.
func (s Specificity) String() string {
	switch s {
	case Exact:
		return "exact"
	case Language:
		return "language"
	case MostRecent:
		return "most-recent"
	default:
		return fmt.Sprintf("specificity(%d)", int(s))
	}
}

// Valid reports whether s is one of the defined specificities.
func (s Specificity) Valid() bool {
	return s >= Exact && s <= MostRecent
}

// ParseSpecificity parses the text form of a specificity, case-insensitively.
// Both "most-recent" and "most_recent" are accepted.
func ParseSpecificity(s string) (Specificity, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "exact":
		return Exact, nil
	case "language":
		return Language, nil
	case "most-recent", "mostrecent":
		return MostRecent, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSpecificity, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Specificity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSpecificity, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Specificity) UnmarshalText(text []byte) error {
	parsed, err := ParseSpecificity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
