package i18n

// Strategy decides how locales are encoded in route paths.
type Strategy string

const (
	// NoPrefix keeps paths unchanged for every locale.
	NoPrefix Strategy = "no_prefix"
	// Prefix prefixes every locale, including the default one.
	Prefix Strategy = "prefix"
	// PrefixExceptDefault prefixes every locale except the default one.
	PrefixExceptDefault Strategy = "prefix_except_default"
	// PrefixAndDefault prefixes every locale and also serves the default
	// locale without a prefix.
	PrefixAndDefault Strategy = "prefix_and_default"
)

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	switch s {
	case NoPrefix, Prefix, PrefixExceptDefault, PrefixAndDefault:
		return true
	}
	return false
}

// RedirectOn limits which paths may trigger a detection redirect.
type RedirectOn string

const (
	RedirectOnRoot     RedirectOn = "root"
	RedirectOnNoPrefix RedirectOn = "no prefix"
	RedirectOnAll      RedirectOn = "all"
)

// Valid reports whether r is a known value.
func (r RedirectOn) Valid() bool {
	switch r {
	case RedirectOnRoot, RedirectOnNoPrefix, RedirectOnAll:
		return true
	}
	return false
}

// CustomRoutes selects where per-route locale options are declared.
type CustomRoutes string

const (
	// CustomRoutesPage reads declarations from the page files.
	CustomRoutesPage CustomRoutes = "page"
	// CustomRoutesConfig reads declarations from Config.Pages.
	CustomRoutesConfig CustomRoutes = "config"
)

// Valid reports whether c is a known value.
func (c CustomRoutes) Valid() bool {
	return c == CustomRoutesPage || c == CustomRoutesConfig
}
