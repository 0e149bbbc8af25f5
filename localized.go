package localize

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/dmitrymomot/localize/pkg/langtag"
	"github.com/dmitrymomot/localize/pkg/logger"
	"github.com/dmitrymomot/localize/pkg/preference"
	"github.com/dmitrymomot/localize/pkg/resolver"
)

// Localized represents one logical value in several languages.
//
// It is immutable: every With* method returns a new instance and leaves the
// receiver untouched, so instances can be shared between goroutines freely.
// Value resolves lazily on first use and caches the result for the lifetime
// of the instance. The zero value is usable: an empty table with no
// preferences, which resolves only to a default.
type Localized[V any] struct {
	def         V
	source      preference.Source
	logger      *slog.Logger
	cell        *cell[V]
	table       resolver.Table[V]
	desired     langtag.Tag
	specificity resolver.Specificity
	hasDefault  bool
}

// cell holds the memoized resolution. It is shared by pointer so copying a
// Localized never copies the sync.Once.
type cell[V any] struct {
	value V
	once  sync.Once
	ok    bool
}

// New wraps table with the given specificity.
// Preferences come from the process locale environment until WithSource is used.
// A specificity outside Exact, Language and MostRecent never matches; use
// Localize to have it rejected.
func New[V any](table resolver.Table[V], specificity resolver.Specificity) *Localized[V] {
	return &Localized[V]{
		table:       table,
		specificity: specificity,
		source:      preference.FromEnv(os.Getenv),
		logger:      logger.NewNope(),
		cell:        &cell[V]{},
	}
}

// Localize builds a Localized from a map of raw language keys.
// It fails when two keys normalize to the same tag or when specificity is
// unknown.
func Localize[V any](values map[string]V, specificity resolver.Specificity) (*Localized[V], error) {
	if !specificity.Valid() {
		return nil, fmt.Errorf("%w: %d", resolver.ErrUnknownSpecificity, int(specificity))
	}

	table, err := resolver.TableFromMap(values)
	if err != nil {
		return nil, err
	}
	return New(table, specificity), nil
}

// MustLocalize is like Localize but panics on error.
func MustLocalize[V any](values map[string]V, specificity resolver.Specificity) *Localized[V] {
	l, err := Localize(values, specificity)
	if err != nil {
		panic(err)
	}
	return l
}

// Value returns the resolved value. The first call resolves against the
// current preferences and caches the outcome; later calls return the cached
// outcome even if preferences change. When nothing matches the default is
// returned, and false is reported only when there is no default either.
func (l *Localized[V]) Value() (V, bool) {
	if l == nil {
		var zero V
		return zero, false
	}
	// A zero Localized has no cache to fill.
	if l.cell == nil {
		return l.resolve(context.Background(), l.source)
	}

	l.cell.once.Do(func() {
		l.cell.value, l.cell.ok = l.resolve(context.Background(), l.source)
	})

	return l.cell.value, l.cell.ok
}

// ValueOr returns the resolved value or fallback when unresolved.
func (l *Localized[V]) ValueOr(fallback V) V {
	if v, ok := l.Value(); ok {
		return v
	}
	return fallback
}

// ValueContext resolves against the preferences stored in ctx by
// preference.WithContext, falling back to the configured source.
// The result is not cached.
func (l *Localized[V]) ValueContext(ctx context.Context) (V, bool) {
	if l == nil {
		var zero V
		return zero, false
	}

	src, ok := preference.FromContext(ctx)
	if !ok {
		src = l.source
	}
	return l.resolve(ctx, src)
}

// ForLanguage resolves for an explicit language without caching, as
// InLanguage(lang) followed by Value would. A malformed lang never matches.
func (l *Localized[V]) ForLanguage(lang string) (V, bool) {
	if l == nil {
		var zero V
		return zero, false
	}

	tag, err := langtag.Parse(lang)
	if err != nil {
		l.log().Debug("invalid language for lookup", slog.String("language", lang), slog.String("error", err.Error()))
		return l.fallback()
	}

	c := l.clone()
	c.desired = tag
	return c.resolve(context.Background(), c.source)
}

// WithSpecificity returns a copy using specificity s.
// An unknown specificity never matches.
func (l *Localized[V]) WithSpecificity(s resolver.Specificity) *Localized[V] {
	c := l.clone()
	c.specificity = s
	return c
}

// InLanguage returns a copy that targets lang explicitly.
// An empty lang clears the explicit language. A malformed lang is reported
// immediately with ErrInvalidLanguage.
func (l *Localized[V]) InLanguage(lang string) (*Localized[V], error) {
	c := l.clone()
	if lang == "" {
		c.desired = langtag.Tag{}
		return c, nil
	}

	tag, err := langtag.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLanguage, err)
	}
	c.desired = tag
	return c, nil
}

// WithDefault returns a copy that yields v when nothing matches.
func (l *Localized[V]) WithDefault(v V) *Localized[V] {
	c := l.clone()
	c.def = v
	c.hasDefault = true
	return c
}

// WithoutDefault returns a copy without a default value.
func (l *Localized[V]) WithoutDefault() *Localized[V] {
	c := l.clone()
	var zero V
	c.def = zero
	c.hasDefault = false
	return c
}

// WithSource returns a copy reading preferences from src.
// A nil src means no preferences at all.
func (l *Localized[V]) WithSource(src preference.Source) *Localized[V] {
	c := l.clone()
	if src == nil {
		src = preference.Static{}
	}
	c.source = src
	return c
}

// WithLogger returns a copy that logs unresolved lookups at debug level.
func (l *Localized[V]) WithLogger(log *slog.Logger) *Localized[V] {
	c := l.clone()
	if log == nil {
		log = logger.NewNope()
	}
	c.logger = log
	return c
}

// Specificity returns the configured specificity.
func (l *Localized[V]) Specificity() resolver.Specificity {
	if l == nil {
		return resolver.Exact
	}
	return l.specificity
}

// Language returns the explicit language, or the zero Tag when none is set.
func (l *Localized[V]) Language() langtag.Tag {
	if l == nil {
		return langtag.Tag{}
	}
	return l.desired
}

// Default returns the default value and whether one is set.
func (l *Localized[V]) Default() (V, bool) {
	if l == nil {
		var zero V
		return zero, false
	}
	return l.def, l.hasDefault
}

// Table returns the localization table.
func (l *Localized[V]) Table() resolver.Table[V] {
	if l == nil {
		return resolver.Table[V]{}
	}
	return l.table
}

func (l *Localized[V]) resolve(ctx context.Context, src preference.Source) (V, bool) {
	candidates := preference.Candidates(src)

	req := resolver.Request[V]{
		Table:       l.table,
		Specificity: l.specificity,
		Desired:     l.desired,
		Preferred:   candidates,
	}

	if v, ok := req.Resolve(); ok {
		return v, true
	}

	l.log().DebugContext(ctx, "localized value not resolved",
		slog.String("specificity", l.specificity.String()),
		slog.String("language", l.desired.String()),
		slog.Any("candidates", langtag.Strings(candidates)),
		slog.Int("entries", l.table.Len()),
		slog.Bool("default", l.hasDefault),
	)

	return l.fallback()
}

func (l *Localized[V]) fallback() (V, bool) {
	if l.hasDefault {
		return l.def, true
	}
	var zero V
	return zero, false
}

func (l *Localized[V]) log() *slog.Logger {
	if l.logger == nil {
		return logger.NewNope()
	}
	return l.logger
}

// clone copies l with a fresh cache. A nil receiver yields an empty
// instance, as New with an empty table would.
func (l *Localized[V]) clone() *Localized[V] {
	if l == nil {
		return New(resolver.Table[V]{}, resolver.Exact)
	}

	c := *l
	c.cell = &cell[V]{}
	if c.logger == nil {
		c.logger = logger.NewNope()
	}
	if c.source == nil {
		c.source = preference.Static{}
	}
	return &c
}

// String formats the resolved value with fmt.Sprint, or returns an empty
// string when unresolved.
func (l *Localized[V]) String() string {
	v, ok := l.Value()
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}

// MarshalJSON encodes the resolved value, or null when unresolved.
func (l *Localized[V]) MarshalJSON() ([]byte, error) {
	v, ok := l.Value()
	if !ok {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// Do calls fn with the resolved value. It does nothing when unresolved.
func (l *Localized[V]) Do(fn func(V)) {
	if v, ok := l.Value(); ok && fn != nil {
		fn(v)
	}
}

// Map applies fn to the resolved value of l.
func Map[V, R any](l *Localized[V], fn func(V) R) (R, bool) {
	v, ok := l.Value()
	if !ok || fn == nil {
		var zero R
		return zero, false
	}
	return fn(v), true
}
