// Package localize expands an unlocalized route tree into per-locale routes.
//
// Localize takes the tree and Options explicitly and returns a new tree; the
// input is never modified. Each route becomes one route per locale, named
// "<name><sep><locale>" and prefixed with "/<locale>" unless the strategy
// exempts it:
//
//	no_prefix              never prefixed (a no-op without different domains)
//	prefix                 always prefixed
//	prefix_except_default  default locale unprefixed
//	prefix_and_default     default locale emitted twice, unprefixed first
//
// Children are localized once per parent locale and keep paths relative to
// their parent.
//
// A Resolver narrows the locales of each route and overrides paths per
// locale. PagesResolver reads the central pages map of the configuration.
// ComponentResolver reads a YAML front matter block from the page file:
//
//	---
//	i18n:
//	  paths:
//	    fr: /a-propos
//	---
package localize
