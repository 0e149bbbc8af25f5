package resolver

import "errors"

var (
	ErrAmbiguousKey       = errors.New("resolver: ambiguous localization key")
	ErrUnknownSpecificity = errors.New("resolver: unknown specificity")
)
