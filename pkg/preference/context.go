package preference

import "context"

type contextKey struct{}

// WithContext returns a copy of ctx carrying src.
func WithContext(ctx context.Context, src Source) context.Context {
	return context.WithValue(ctx, contextKey{}, src)
}

// FromContext returns the Source stored by WithContext.
func FromContext(ctx context.Context) (Source, bool) {
	if ctx == nil {
		return nil, false
	}
	src, ok := ctx.Value(contextKey{}).(Source)
	return src, ok && src != nil
}
