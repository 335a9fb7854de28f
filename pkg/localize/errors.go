package localize

import "errors"

var (
	// ErrDomainConflict is reported when no_prefix is combined with
	// different domains and two locales share a domain.
	ErrDomainConflict = errors.New("localize: locales share a domain under no_prefix")

	// ErrInvalidDeclaration is returned for malformed inline page declarations.
	ErrInvalidDeclaration = errors.New("localize: invalid page declaration")
)
