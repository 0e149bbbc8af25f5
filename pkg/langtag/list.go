package langtag

// ParseList parses raw tags in order, skipping empty and malformed entries.
func ParseList(raw ...string) []Tag {
	tags := make([]Tag, 0, len(raw))
	for _, r := range raw {
		if t, err := Parse(r); err == nil {
			tags = append(tags, t)
		}
	}
	return tags
}

// Strings renders tags in BCP 47 form.
func Strings(tags []Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.String()
	}
	return out
}

// Contains reports whether tags has an entry exact-equal to t.
func Contains(tags []Tag, t Tag) bool {
	for _, candidate := range tags {
		if candidate.ExactEqual(t) {
			return true
		}
	}
	return false
}

// ContainsLanguage reports whether tags has an entry language-equal to t.
func ContainsLanguage(tags []Tag, t Tag) bool {
	for _, candidate := range tags {
		if candidate.LanguageEqual(t) {
			return true
		}
	}
	return false
}

// Dedupe removes exact-equal duplicates and zero tags, keeping the first occurrence.
func Dedupe(tags []Tag) []Tag {
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if t.IsZero() || Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// DedupeLanguages keeps only the first tag of every language.
// "en-US, fr, en-GB" becomes "en-US, fr".
func DedupeLanguages(tags []Tag) []Tag {
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if t.IsZero() || ContainsLanguage(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Intersect keeps the preferred tags whose language is supported, preserving
// preference order. An empty supported list means everything is supported.
func Intersect(preferred, supported []Tag) []Tag {
	if len(supported) == 0 {
		return Dedupe(preferred)
	}
	out := make([]Tag, 0, len(preferred))
	for _, t := range preferred {
		if ContainsLanguage(supported, t) && !Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}
