package langtag

import "errors"

var (
	ErrEmptyTag   = errors.New("langtag: tag cannot be empty")
	ErrInvalidTag = errors.New("langtag: malformed tag")
)
