package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/localize"
	"github.com/dmitrymomot/localize/pkg/langtag"
	"github.com/dmitrymomot/localize/pkg/logger"
	"github.com/dmitrymomot/localize/pkg/preference"
	"github.com/dmitrymomot/localize/pkg/resolver"
)

// Catalog is a named set of localization tables.
// It is immutable after New and safe for concurrent use.
type Catalog struct {
	tables      map[string]resolver.Table[string]
	store       Store
	source      preference.Source
	logger      *slog.Logger
	group       singleflight.Group
	supported   []langtag.Tag
	specificity resolver.Specificity
}

// New creates a catalog with the given options.
// Defaults: MostRecent specificity, an in-memory store of 4096 results and
// no preferences outside a request context.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{
		tables:      make(map[string]resolver.Table[string]),
		store:       NewMemoryStore(4096),
		source:      preference.Static{},
		logger:      logger.NewNope(),
		specificity: resolver.MostRecent,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return c, nil
}

// Resolve returns the value of table name for the preferences in ctx.
// Preferences stored with preference.WithContext win over the catalog's own
// source. The returned bool is false when no entry matches; that is not an
// error. Store failures are logged and never fail the lookup.
func (c *Catalog) Resolve(ctx context.Context, name string) (string, bool, error) {
	table, ok := c.tables[name]
	if !ok {
		return "", false, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}

	candidates := c.candidates(ctx)
	key := c.cacheKey(name, candidates)

	res, err := c.store.Get(ctx, key)
	if err == nil {
		return res.Value, res.Found, nil
	}
	if !errors.Is(err, ErrNotFound) {
		c.logger.WarnContext(ctx, "catalog store read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	v, _, _ := c.group.Do(key, func() (any, error) {
		value, found := resolver.Resolve(table, c.specificity, langtag.Tag{}, candidates)
		res := Result{Value: value, Found: found}

		if err := c.store.Set(ctx, key, res); err != nil {
			c.logger.WarnContext(ctx, "catalog store write failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		if !found {
			c.logger.DebugContext(ctx, "catalog entry not resolved",
				slog.String("name", name),
				slog.Any("candidates", langtag.Strings(candidates)),
			)
		}
		return res, nil
	})

	res = v.(Result)
	return res.Value, res.Found, nil
}

// T returns the value of table name, or name itself when the table is
// unknown or has no match.
func (c *Catalog) T(ctx context.Context, name string) string {
	v, ok, err := c.Resolve(ctx, name)
	if err != nil || !ok {
		return name
	}
	return v
}

// Localized wraps table name in a Localized value sharing the catalog's
// specificity, preference source, supported languages and logger.
func (c *Catalog) Localized(name string) (*localize.Localized[string], error) {
	table, ok := c.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}

	return localize.New(table, c.specificity).
		WithSource(withSupported{Source: c.source, supported: c.supported}).
		WithLogger(c.logger), nil
}

// withSupported reports the catalog's supported languages when the wrapped
// source names none.
type withSupported struct {
	preference.Source
	supported []langtag.Tag
}

func (s withSupported) SupportedLanguages() []langtag.Tag {
	if tags := s.Source.SupportedLanguages(); len(tags) > 0 {
		return tags
	}
	return s.supported
}

// Names returns all table names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Languages returns every well-formed tag used by any table, sorted.
func (c *Catalog) Languages() []langtag.Tag {
	var tags []langtag.Tag
	for _, table := range c.tables {
		tags = append(tags, table.Tags()...)
	}

	tags = langtag.Dedupe(tags)
	slices.SortFunc(tags, func(a, b langtag.Tag) int {
		return strings.Compare(a.String(), b.String())
	})
	return tags
}

// Ping reports whether the store is reachable. Stores without a Ping method
// are always considered healthy.
func (c *Catalog) Ping(ctx context.Context) error {
	p, ok := c.store.(interface{ Ping(context.Context) error })
	if !ok {
		return nil
	}
	return p.Ping(ctx)
}

// Specificity returns the specificity used for lookups.
func (c *Catalog) Specificity() resolver.Specificity {
	return c.specificity
}

func (c *Catalog) candidates(ctx context.Context) []langtag.Tag {
	src, ok := preference.FromContext(ctx)
	if !ok {
		src = c.source
	}
	return preference.Candidates(withSupported{Source: src, supported: c.supported})
}

func (c *Catalog) cacheKey(name string, candidates []langtag.Tag) string {
	return name + "|" + c.specificity.String() + "|" + strings.Join(langtag.Strings(candidates), ",")
}
