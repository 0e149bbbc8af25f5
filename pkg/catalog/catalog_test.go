package catalog_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/pkg/catalog"
	"github.com/dmitrymomot/localize/pkg/langtag"
	"github.com/dmitrymomot/localize/pkg/preference"
	"github.com/dmitrymomot/localize/pkg/resolver"
)

const greetingsYAML = `
hello:
  en: Hello
  en-GB: Hello, mate
  fr: Bonjour
bye:
  en: Bye
  de: Tschüss
`

func newCatalog(t *testing.T, opts ...catalog.Option) *catalog.Catalog {
	t.Helper()

	fsys := fstest.MapFS{
		"greetings.yaml": {Data: []byte(greetingsYAML)},
	}
	c, err := catalog.New(append([]catalog.Option{catalog.WithYAMLDir(fsys)}, opts...)...)
	require.NoError(t, err)
	return c
}

func withPrefs(preferred ...string) context.Context {
	return preference.WithContext(context.Background(), preference.NewStatic(preferred, nil))
}

// countingStore counts writes to the wrapped store.
type countingStore struct {
	*catalog.MemoryStore
	sets atomic.Int32
}

func (s *countingStore) Set(ctx context.Context, key string, res catalog.Result) error {
	s.sets.Add(1)
	return s.MemoryStore.Set(ctx, key, res)
}

// brokenStore fails every operation.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (catalog.Result, error) {
	return catalog.Result{}, errors.New("connection refused")
}

func (brokenStore) Set(context.Context, string, catalog.Result) error {
	return errors.New("connection refused")
}

func TestCatalog_Resolve(t *testing.T) {
	t.Parallel()

	c := newCatalog(t)

	tests := []struct {
		name      string
		table     string
		preferred []string
		want      string
		found     bool
	}{
		{name: "language match", table: "greetings.hello", preferred: []string{"fr-CA"}, want: "Bonjour", found: true},
		{name: "region-less entry preferred", table: "greetings.hello", preferred: []string{"en-US"}, want: "Hello", found: true},
		{name: "exact region", table: "greetings.hello", preferred: []string{"en-GB"}, want: "Hello, mate", found: true},
		{name: "walks preferences", table: "greetings.bye", preferred: []string{"fr", "de"}, want: "Tschüss", found: true},
		{name: "no match", table: "greetings.hello", preferred: []string{"ja"}},
		{name: "no preferences", table: "greetings.hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, ok, err := c.Resolve(withPrefs(tt.preferred...), tt.table)
			require.NoError(t, err)
			require.Equal(t, tt.found, ok)
			require.Equal(t, tt.want, v)
		})
	}

	t.Run("unknown table", func(t *testing.T) {
		t.Parallel()

		_, _, err := c.Resolve(withPrefs("en"), "greetings.missing")
		require.ErrorIs(t, err, catalog.ErrUnknownTable)
	})
}

func TestCatalog_Specificity(t *testing.T) {
	t.Parallel()

	c := newCatalog(t, catalog.WithSpecificity(resolver.Exact))
	require.Equal(t, resolver.Exact, c.Specificity())

	_, ok, err := c.Resolve(withPrefs("en-US", "en"), "greetings.hello")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = catalog.New(catalog.WithSpecificity(resolver.Specificity(42)))
	require.ErrorIs(t, err, resolver.ErrUnknownSpecificity)
}

func TestCatalog_Supported(t *testing.T) {
	t.Parallel()

	c := newCatalog(t, catalog.WithSupported(langtag.MustParse("en")))

	v, ok, err := c.Resolve(withPrefs("fr", "en"), "greetings.hello")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Hello", v)

	ctx := preference.WithContext(context.Background(), preference.NewStatic([]string{"fr", "en"}, []string{"fr"}))
	v, _, err = c.Resolve(ctx, "greetings.hello")
	require.NoError(t, err)
	require.Equal(t, "Bonjour", v, "request supported set wins over the catalog's")
}

func TestCatalog_Source(t *testing.T) {
	t.Parallel()

	c := newCatalog(t, catalog.WithSource(preference.NewStatic([]string{"de"}, nil)))

	v, ok, err := c.Resolve(context.Background(), "greetings.bye")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Tschüss", v)

	v, _, err = c.Resolve(withPrefs("en"), "greetings.bye")
	require.NoError(t, err)
	require.Equal(t, "Bye", v)
}

func TestCatalog_T(t *testing.T) {
	t.Parallel()

	c := newCatalog(t)

	require.Equal(t, "Bonjour", c.T(withPrefs("fr"), "greetings.hello"))
	require.Equal(t, "greetings.hello", c.T(withPrefs("ja"), "greetings.hello"))
	require.Equal(t, "nope", c.T(withPrefs("fr"), "nope"))
}

func TestCatalog_Localized(t *testing.T) {
	t.Parallel()

	c := newCatalog(t, catalog.WithSource(preference.NewStatic([]string{"fr"}, nil)))

	l, err := c.Localized("greetings.hello")
	require.NoError(t, err)

	v, ok := l.Value()
	require.True(t, ok)
	require.Equal(t, "Bonjour", v)

	v, ok = l.ForLanguage("en-GB")
	require.True(t, ok)
	require.Equal(t, "Hello, mate", v)

	_, err = c.Localized("greetings.missing")
	require.ErrorIs(t, err, catalog.ErrUnknownTable)
}

func TestCatalog_NamesAndLanguages(t *testing.T) {
	t.Parallel()

	c := newCatalog(t, catalog.WithTable("custom", resolver.MustTable(
		resolver.Pair[string]{Key: "pl", Value: "Cześć"},
		resolver.Pair[string]{Key: "not a tag", Value: "?"},
	)))

	require.Equal(t, []string{"custom", "greetings.bye", "greetings.hello"}, c.Names())
	require.Equal(t, []string{"de", "en", "en-GB", "fr", "pl"}, langtag.Strings(c.Languages()))
}

func TestCatalog_WithTable(t *testing.T) {
	t.Parallel()

	table := resolver.MustTable(resolver.Pair[string]{Key: "en", Value: "x"})

	_, err := catalog.New(catalog.WithTable(" ", table))
	require.ErrorIs(t, err, catalog.ErrEmptyName)

	_, err = catalog.New(catalog.WithTable("a", table), catalog.WithTable("a", table))
	require.ErrorIs(t, err, catalog.ErrDuplicateTable)

	_, err = catalog.New(catalog.WithStore(nil))
	require.ErrorIs(t, err, catalog.ErrNilStore)
}

func TestCatalog_MemoizesResults(t *testing.T) {
	t.Parallel()

	store := &countingStore{MemoryStore: catalog.NewMemoryStore(0)}
	c := newCatalog(t, catalog.WithStore(store))

	for range 3 {
		v, ok, err := c.Resolve(withPrefs("fr"), "greetings.hello")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "Bonjour", v)
	}
	require.Equal(t, int32(1), store.sets.Load())

	for range 2 {
		_, ok, err := c.Resolve(withPrefs("ja"), "greetings.hello")
		require.NoError(t, err)
		require.False(t, ok)
	}
	require.Equal(t, int32(2), store.sets.Load(), "misses are memoized too")

	_, _, err := c.Resolve(withPrefs("de", "fr"), "greetings.hello")
	require.NoError(t, err)
	require.Equal(t, int32(3), store.sets.Load())
	require.Equal(t, 3, store.Len())
}

func TestCatalog_StoreFailuresDoNotFailLookups(t *testing.T) {
	t.Parallel()

	c := newCatalog(t, catalog.WithStore(brokenStore{}))

	v, ok, err := c.Resolve(withPrefs("fr"), "greetings.hello")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Bonjour", v)
}

func TestCatalog_Concurrent(t *testing.T) {
	t.Parallel()

	c := newCatalog(t)
	prefs := [][]string{{"fr"}, {"en-GB"}, {"de", "en"}, {"ja"}}
	want := []string{"Bonjour", "Hello, mate", "Hello", ""}

	var wg sync.WaitGroup
	for i := range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := i % len(prefs)
			v, _, err := c.Resolve(withPrefs(prefs[n]...), "greetings.hello")
			assert.NoError(t, err)
			assert.Equal(t, want[n], v)
		}()
	}
	wg.Wait()
}

func TestCatalog_Ping(t *testing.T) {
	t.Parallel()

	require.NoError(t, newCatalog(t).Ping(context.Background()))
	require.NoError(t, newCatalog(t, catalog.WithStore(brokenStore{})).Ping(context.Background()))
}

func TestCatalog_LocalizedHonorsSupported(t *testing.T) {
	t.Parallel()

	c, err := catalog.New(
		catalog.WithTable("g", resolver.MustTable(
			resolver.Pair[string]{Key: "de", Value: "hallo"},
			resolver.Pair[string]{Key: "fr", Value: "bonjour"},
		)),
		catalog.WithSupported(langtag.MustParse("fr")),
		catalog.WithSource(preference.NewStatic([]string{"de", "fr"}, nil)),
	)
	require.NoError(t, err)

	resolved, ok, err := c.Resolve(context.Background(), "g")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "bonjour", resolved)

	l, err := c.Localized("g")
	require.NoError(t, err)

	v, ok := l.Value()
	require.True(t, ok)
	require.Equal(t, resolved, v)

	// A supported set carried by the request still wins.
	ctx := preference.WithContext(context.Background(), preference.NewStatic([]string{"de", "fr"}, []string{"de"}))
	v, ok = l.ValueContext(ctx)
	require.True(t, ok)
	require.Equal(t, "hallo", v)
}
