package localize

import "errors"

// ErrInvalidLanguage is returned when an explicit language cannot be parsed.
var ErrInvalidLanguage = errors.New("localize: invalid language")
