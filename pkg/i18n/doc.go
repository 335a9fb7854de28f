// Package i18n holds the localization configuration shared by the route
// localizer and the runtime locale detector.
//
// # Configuration
//
// Config is assembled from layers. Defaults supplies the baseline; every
// further layer is an Overrides value whose nil fields leave lower layers
// untouched, so the most specific layer wins per key:
//
//	cfg := i18n.Merge(i18n.Defaults(), projectLayer, moduleLayer)
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
// Locales merge by code. A later layer may add a domain to an existing
// locale without repeating the rest of its definition.
//
// Load reads layers from YAML, JSON or TOML files and finally from I18N_*
// environment variables:
//
//	cfg, err := i18n.Load("i18n.yaml", "i18n.local.toml")
//
// A minimal YAML layer:
//
//	strategy: prefix_except_default
//	defaultLocale: en
//	locales:
//	  - en
//	  - code: fr
//	    language: fr-FR
//	detectBrowserLanguage:
//	  redirectOn: root
//	pages:
//	  about:
//	    fr: /a-propos
//
// # Browser languages
//
// ParseAcceptLanguage orders the tags of an Accept-Language header by
// quality, and MatchBrowserLocale picks the configured locale that fits
// them best: exact tags first, then language-only matches.
package i18n
