package segment

import "errors"

// Errors.
var (
	ErrEmptyParam        = errors.New("segment: empty param")
	ErrEmptyGroup        = errors.New("segment: empty group")
	ErrUnterminatedParam = errors.New("segment: unterminated param")
)
