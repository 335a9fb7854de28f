package i18n

import (
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Locale describes one configured locale.
type Locale struct {
	Code              string   `json:"code" yaml:"code" toml:"code"`
	Language          string   `json:"language,omitempty" yaml:"language,omitempty" toml:"language,omitempty"`
	Name              string   `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Dir               string   `json:"dir,omitempty" yaml:"dir,omitempty" toml:"dir,omitempty"`
	Domain            string   `json:"domain,omitempty" yaml:"domain,omitempty" toml:"domain,omitempty"`
	Domains           []string `json:"domains,omitempty" yaml:"domains,omitempty" toml:"domains,omitempty"`
	DomainDefault     bool     `json:"domainDefault,omitempty" yaml:"domainDefault,omitempty" toml:"domainDefault,omitempty"`
	DefaultForDomains []string `json:"defaultForDomains,omitempty" yaml:"defaultForDomains,omitempty" toml:"defaultForDomains,omitempty"`
	Files             []string `json:"files,omitempty" yaml:"files,omitempty" toml:"files,omitempty"`
}

// UnmarshalYAML accepts either a bare locale code or a mapping.
func (l *Locale) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*l = Locale{Code: node.Value}
		return nil
	}
	type plain Locale
	return node.Decode((*plain)(l))
}

// Tag returns the BCP-47 tag used for browser matching.
func (l Locale) Tag() string {
	if l.Language != "" {
		return l.Language
	}
	return l.Code
}

// Codes returns the codes of locales in configuration order.
func Codes(locales []Locale) []string {
	codes := make([]string, 0, len(locales))
	for _, l := range locales {
		codes = append(codes, l.Code)
	}
	return codes
}

// FindLocale returns the locale with the given code.
func FindLocale(locales []Locale, code string) (Locale, bool) {
	i := slices.IndexFunc(locales, func(l Locale) bool { return l.Code == code })
	if i < 0 {
		return Locale{}, false
	}
	return locales[i], true
}

// HasLocale reports whether code names a configured locale.
func HasLocale(locales []Locale, code string) bool {
	_, ok := FindLocale(locales, code)
	return ok
}

// LocaleFromPath returns the locale code that prefixes path, matched
// case-insensitively against codes, or "".
//
//	LocaleFromPath("/fr/about", []string{"en", "fr"}) // "fr"
//	LocaleFromPath("/french", []string{"en", "fr"})   // ""
func LocaleFromPath(path string, codes []string) string {
	rest, ok := strings.CutPrefix(path, "/")
	if !ok {
		return ""
	}
	first, _, _ := strings.Cut(rest, "/")
	for _, code := range codes {
		if strings.EqualFold(first, code) {
			return code
		}
	}
	return ""
}
