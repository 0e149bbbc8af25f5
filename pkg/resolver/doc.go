// Package resolver picks the best localized value from a table of
// language-tagged values.
//
// A Table is an ordered set of raw language keys and values:
//
//	table, err := resolver.TableFromMap(map[string]string{
//		"en":    "Hello",
//		"en-GB": "Hello, mate",
//		"fr":    "Bonjour",
//	})
//
// Resolve is a pure function of the table, a Specificity, an optional
// desired tag and the caller's preferred tags:
//
//	v, ok := resolver.Resolve(table, resolver.Language, langtag.MustParse("en-AU"), nil)
//	// v == "Hello", ok == true
//
// # Specificity
//
//   - Exact: the target tag must match a key in both language and region.
//   - Language: any key with the target's language matches. A key with the
//     target's exact region wins, then a region-less key, then the first key
//     of that language in table order.
//   - MostRecent: the desired tag and then every preferred tag are tried in
//     order with the Language rule; repeated languages are tried once.
//
// Exact and Language test a single target: the desired tag when given,
// otherwise the first preferred tag.
//
// # Ordering
//
// Tables built with NewTable keep the order of their pairs. TableFromMap
// sorts keys by ascending byte value. When several regional keys tie (for
// example "en-AU" and "en-GB" for target "en-US") the first one in that order
// wins.
//
// "No match" is a normal result reported through the boolean, not an error.
package resolver
