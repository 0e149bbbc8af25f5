package preference

import (
	"strings"

	"github.com/dmitrymomot/localize/pkg/langtag"
)

// localeVars are checked after LANGUAGE; the first non-empty one wins.
var localeVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// Env reads preferences from POSIX locale environment variables.
type Env struct {
	getenv    func(string) string
	supported []langtag.Tag
}

// EnvOption configures an Env source.
type EnvOption func(*Env)

// WithSupported restricts the languages reported as supported.
func WithSupported(tags ...langtag.Tag) EnvOption {
	return func(e *Env) {
		e.supported = tags
	}
}

// FromEnv returns a Source backed by getenv, usually os.Getenv.
// Variables are read on every call so the source follows the environment.
//
// The GNU LANGUAGE list ("fr_CA:fr:en") comes first, followed by the first
// set variable among LC_ALL, LC_MESSAGES and LANG. Encoding and modifier
// suffixes ("de_DE.UTF-8@euro") are dropped; the C and POSIX locales carry
// no language.
func FromEnv(getenv func(string) string, opts ...EnvOption) *Env {
	e := &Env{getenv: getenv}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PreferredLanguages implements Source.
func (e *Env) PreferredLanguages() []langtag.Tag {
	if e.getenv == nil {
		return nil
	}

	var tags []langtag.Tag

	for part := range strings.SplitSeq(e.getenv("LANGUAGE"), ":") {
		if t, ok := parseLocale(part); ok {
			tags = append(tags, t)
		}
	}

	for _, name := range localeVars {
		v := e.getenv(name)
		if v == "" {
			continue
		}
		if t, ok := parseLocale(v); ok {
			tags = append(tags, t)
		}
		break
	}

	return langtag.Dedupe(tags)
}

// SupportedLanguages implements Source.
func (e *Env) SupportedLanguages() []langtag.Tag {
	return e.supported
}

// parseLocale converts a POSIX locale name such as "pt_BR.UTF-8" into a tag.
func parseLocale(locale string) (langtag.Tag, bool) {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return langtag.Tag{}, false
	}
	t, err := langtag.Parse(locale)
	if err != nil {
		return langtag.Tag{}, false
	}
	return t, true
}

var _ Source = (*Env)(nil)
