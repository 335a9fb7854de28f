package i18n

import "gopkg.in/yaml.v3"

// DefaultCookieKey is the cookie that persists the detected locale.
const DefaultCookieKey = "i18n_redirected"

// Detection configures browser language detection.
type Detection struct {
	Enabled           bool       `json:"enabled" yaml:"enabled" toml:"enabled"`
	UseCookie         bool       `json:"useCookie" yaml:"useCookie" toml:"useCookie"`
	CookieKey         string     `json:"cookieKey" yaml:"cookieKey" toml:"cookieKey"`
	RedirectOn        RedirectOn `json:"redirectOn" yaml:"redirectOn" toml:"redirectOn"`
	AlwaysRedirect    bool       `json:"alwaysRedirect" yaml:"alwaysRedirect" toml:"alwaysRedirect"`
	FallbackLocale    string     `json:"fallbackLocale,omitempty" yaml:"fallbackLocale,omitempty" toml:"fallbackLocale,omitempty"`
	ForDomains        []string   `json:"forDomains,omitempty" yaml:"forDomains,omitempty" toml:"forDomains,omitempty"`
	CookieDomain      string     `json:"cookieDomain,omitempty" yaml:"cookieDomain,omitempty" toml:"cookieDomain,omitempty"`
	CookieSecure      bool       `json:"cookieSecure" yaml:"cookieSecure" toml:"cookieSecure"`
	CookieCrossOrigin bool       `json:"cookieCrossOrigin" yaml:"cookieCrossOrigin" toml:"cookieCrossOrigin"`
}

// DetectionOverrides is a partial Detection used by configuration layers.
// Nil fields leave the lower layer untouched.
type DetectionOverrides struct {
	Enabled           *bool       `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	UseCookie         *bool       `json:"useCookie,omitempty" yaml:"useCookie,omitempty"`
	CookieKey         *string     `json:"cookieKey,omitempty" yaml:"cookieKey,omitempty"`
	RedirectOn        *RedirectOn `json:"redirectOn,omitempty" yaml:"redirectOn,omitempty"`
	AlwaysRedirect    *bool       `json:"alwaysRedirect,omitempty" yaml:"alwaysRedirect,omitempty"`
	FallbackLocale    *string     `json:"fallbackLocale,omitempty" yaml:"fallbackLocale,omitempty"`
	ForDomains        []string    `json:"forDomains,omitempty" yaml:"forDomains,omitempty"`
	CookieDomain      *string     `json:"cookieDomain,omitempty" yaml:"cookieDomain,omitempty"`
	CookieSecure      *bool       `json:"cookieSecure,omitempty" yaml:"cookieSecure,omitempty"`
	CookieCrossOrigin *bool       `json:"cookieCrossOrigin,omitempty" yaml:"cookieCrossOrigin,omitempty"`
}

// UnmarshalYAML accepts a boolean shorthand: "false" disables detection,
// "true" enables it with the lower layer's settings.
func (d *DetectionOverrides) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var enabled bool
		if err := node.Decode(&enabled); err != nil {
			return err
		}
		*d = DetectionOverrides{Enabled: &enabled}
		return nil
	}

	type plain DetectionOverrides
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	if p.Enabled == nil {
		enabled := true
		p.Enabled = &enabled
	}
	*d = DetectionOverrides(p)
	return nil
}

func (d Detection) apply(o *DetectionOverrides) Detection {
	if o == nil {
		return d
	}
	setIf(&d.Enabled, o.Enabled)
	setIf(&d.UseCookie, o.UseCookie)
	setIf(&d.CookieKey, o.CookieKey)
	setIf(&d.RedirectOn, o.RedirectOn)
	setIf(&d.AlwaysRedirect, o.AlwaysRedirect)
	setIf(&d.FallbackLocale, o.FallbackLocale)
	setIf(&d.CookieDomain, o.CookieDomain)
	setIf(&d.CookieSecure, o.CookieSecure)
	setIf(&d.CookieCrossOrigin, o.CookieCrossOrigin)
	if o.ForDomains != nil {
		d.ForDomains = o.ForDomains
	}
	return d
}
