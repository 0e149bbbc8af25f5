package langtag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/pkg/langtag"
)

func TestParseList(t *testing.T) {
	t.Parallel()

	tags := langtag.ParseList("en-US", "", "zh-Hant-TW", "fr")
	require.Equal(t, []string{"en-US", "fr"}, langtag.Strings(tags))
}

func TestDedupe(t *testing.T) {
	t.Parallel()

	tags := langtag.ParseList("en-US", "en-us", "en", "fr", "EN")
	require.Equal(t, []string{"en-US", "en", "fr"}, langtag.Strings(langtag.Dedupe(tags)))
}

func TestDedupeLanguages(t *testing.T) {
	t.Parallel()

	t.Run("keeps first tag of each language", func(t *testing.T) {
		t.Parallel()

		tags := langtag.ParseList("en-US", "fr", "en-GB", "de", "fr-CA")
		require.Equal(t, []string{"en-US", "fr", "de"}, langtag.Strings(langtag.DedupeLanguages(tags)))
	})

	t.Run("drops zero tags", func(t *testing.T) {
		t.Parallel()

		tags := []langtag.Tag{{}, langtag.MustParse("pl")}
		require.Equal(t, []string{"pl"}, langtag.Strings(langtag.DedupeLanguages(tags)))
	})
}

func TestIntersect(t *testing.T) {
	t.Parallel()

	preferred := langtag.ParseList("de-AT", "fr-CA", "en-GB", "fr-CA")

	t.Run("filters by supported language", func(t *testing.T) {
		t.Parallel()

		supported := langtag.ParseList("en", "fr-FR")
		require.Equal(t, []string{"fr-CA", "en-GB"}, langtag.Strings(langtag.Intersect(preferred, supported)))
	})

	t.Run("empty supported keeps preferred", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, []string{"de-AT", "fr-CA", "en-GB"}, langtag.Strings(langtag.Intersect(preferred, nil)))
	})

	t.Run("nothing supported", func(t *testing.T) {
		t.Parallel()

		require.Empty(t, langtag.Intersect(preferred, langtag.ParseList("ja")))
	})
}

func TestContains(t *testing.T) {
	t.Parallel()

	tags := langtag.ParseList("en-US", "fr")
	require.True(t, langtag.Contains(tags, langtag.MustParse("en-us")))
	require.False(t, langtag.Contains(tags, langtag.MustParse("en")))
	require.True(t, langtag.ContainsLanguage(tags, langtag.MustParse("en")))
	require.False(t, langtag.ContainsLanguage(tags, langtag.MustParse("de")))
}
