// Package langtag parses and compares the small subset of BCP 47 language tags
// used for localization lookups: a primary language subtag and an optional
// region subtag.
//
// Tags are normalized on parse: the language is lowercased and the region
// uppercased, so "EN_us" and "en-US" produce the same Tag.
//
//	t, err := langtag.Parse("pt_br") // Tag{Language: "pt", Region: "BR"}
//	t.String()                       // "pt-BR"
//
// Two comparisons are provided. LanguageEqual ignores the region, ExactEqual
// does not; an absent region is only exact-equal to another absent region.
//
// Scripts, variants, extensions and private-use subtags are not modeled and
// are rejected with ErrInvalidTag.
package langtag
