package catalog

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/localize/pkg/langtag"
	"github.com/dmitrymomot/localize/pkg/preference"
	"github.com/dmitrymomot/localize/pkg/resolver"
)

// Option configures a Catalog.
type Option func(*Catalog) error

// WithTable registers table under name.
func WithTable(name string, table resolver.Table[string]) Option {
	return func(c *Catalog) error {
		return c.add(name, table)
	}
}

// WithSpecificity sets how strictly languages must match. Default: MostRecent.
func WithSpecificity(s resolver.Specificity) Option {
	return func(c *Catalog) error {
		if !s.Valid() {
			return fmt.Errorf("%w: %d", resolver.ErrUnknownSpecificity, int(s))
		}
		c.specificity = s
		return nil
	}
}

// WithStore sets where resolution results are memoized.
func WithStore(store Store) Option {
	return func(c *Catalog) error {
		if store == nil {
			return ErrNilStore
		}
		c.store = store
		return nil
	}
}

// WithLogger sets the logger for store failures and unresolved lookups.
func WithLogger(log *slog.Logger) Option {
	return func(c *Catalog) error {
		if log != nil {
			c.logger = log
		}
		return nil
	}
}

// WithSupported limits lookups to the given languages when the request's
// preference source does not name its own supported set.
func WithSupported(tags ...langtag.Tag) Option {
	return func(c *Catalog) error {
		c.supported = langtag.Dedupe(tags)
		return nil
	}
}

// WithSource sets the preferences used when the context carries none.
func WithSource(src preference.Source) Option {
	return func(c *Catalog) error {
		if src == nil {
			src = preference.Static{}
		}
		c.source = src
		return nil
	}
}

func (c *Catalog) add(name string, table resolver.Table[string]) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if _, exists := c.tables[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateTable, name)
	}
	c.tables[name] = table
	return nil
}
