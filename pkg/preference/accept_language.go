package preference

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/localize/pkg/langtag"
)

// maxAcceptLanguageLength caps header parsing work.
const maxAcceptLanguageLength = 4096

// wildcardLanguage is what x/text maps "*" to.
const wildcardLanguage = "mul"

// ParseAcceptLanguage returns the languages of an Accept-Language header
// ordered by quality. Wildcards and q=0 entries are dropped. Script and
// variant subtags are reduced to language and region ("zh-Hant-TW" becomes
// "zh-TW"). A malformed header yields nil.
func ParseAcceptLanguage(header string) []langtag.Tag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
		// Drop the entry cut in half.
		if i := strings.LastIndexByte(header, ','); i > 0 {
			header = header[:i]
		}
	}
	if header == "" {
		return nil
	}

	parsed, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}

	tags := make([]langtag.Tag, 0, len(parsed))
	for _, p := range parsed {
		if t, ok := fromTextTag(p); ok {
			tags = append(tags, t)
		}
	}

	return langtag.Dedupe(tags)
}

// FromAcceptLanguage returns a Static source built from an Accept-Language
// header and the application's supported languages.
func FromAcceptLanguage(header string, supported ...langtag.Tag) Static {
	return Static{
		Preferred: ParseAcceptLanguage(header),
		Supported: supported,
	}
}

func fromTextTag(t language.Tag) (langtag.Tag, bool) {
	// Only explicit subtags count, inferred ones are ignored.
	base, conf := t.Base()
	if conf != language.Exact || base.String() == wildcardLanguage {
		return langtag.Tag{}, false
	}

	raw := base.String()
	if region, conf := t.Region(); conf == language.Exact {
		raw += "-" + region.String()
	}

	parsed, err := langtag.Parse(raw)
	if err != nil {
		return langtag.Tag{}, false
	}
	return parsed, true
}
