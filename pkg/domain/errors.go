package domain

import "errors"

var (
	ErrAmbiguousDomain = errors.New("domain: several locales share the host")
	ErrDomainConflict  = errors.New("domain: locales must use distinct domains")
	ErrNoDomain        = errors.New("domain: locale has no domain")
)
