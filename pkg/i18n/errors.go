package i18n

import "errors"

var (
	ErrInvalidStrategy      = errors.New("i18n: invalid strategy")
	ErrInvalidRedirectOn    = errors.New("i18n: invalid redirectOn value")
	ErrInvalidCustomRoutes  = errors.New("i18n: invalid customRoutes value")
	ErrEmptyLocaleCode      = errors.New("i18n: locale code cannot be empty")
	ErrDuplicateLocale      = errors.New("i18n: duplicate locale code")
	ErrUnknownDefaultLocale = errors.New("i18n: default locale is not a configured locale")
	ErrNoLocales            = errors.New("i18n: at least one locale is required")
	ErrInvalidFile          = errors.New("i18n: invalid configuration file")
	ErrUnsupportedFormat    = errors.New("i18n: unsupported configuration format")
	ErrInvalidEnv           = errors.New("i18n: invalid environment value")
)
