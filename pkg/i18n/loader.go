package i18n

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Load builds a validated Config from Defaults, the given files in order,
// and finally I18N_* environment variables.
func Load(files ...string) (Config, error) {
	layers := make([]Overrides, 0, len(files)+1)
	for _, f := range files {
		o, err := LoadFile(f)
		if err != nil {
			return Config{}, err
		}
		layers = append(layers, o)
	}

	envLayer, err := FromEnv()
	if err != nil {
		return Config{}, err
	}
	layers = append(layers, envLayer)

	cfg := Merge(Defaults(), layers...)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads one configuration layer. The format follows the file
// extension: .yaml, .yml, .json or .toml.
func LoadFile(name string) (Overrides, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return Overrides{}, fmt.Errorf("reading %q: %w", name, err)
	}
	return Decode(data, filepath.Ext(name))
}

// LoadFS reads one configuration layer from fsys.
func LoadFS(fsys fs.FS, name string) (Overrides, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Overrides{}, fmt.Errorf("reading %q: %w", name, err)
	}
	return Decode(data, path.Ext(name))
}

// Decode parses a configuration layer. JSON is a YAML subset and goes
// through the YAML decoder; TOML is normalised into YAML first so the
// custom unmarshalers apply to every format.
func Decode(data []byte, ext string) (Overrides, error) {
	var o Overrides

	switch strings.ToLower(ext) {
	case ".yaml", ".yml", ".json":
	case ".toml":
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return o, fmt.Errorf("%w: %s", ErrInvalidFile, err)
		}
		converted, err := yaml.Marshal(raw)
		if err != nil {
			return o, fmt.Errorf("%w: %s", ErrInvalidFile, err)
		}
		data = converted
	default:
		return o, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := yaml.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}
	return o, nil
}

type envConfig struct {
	Strategy         string   `env:"STRATEGY"`
	DefaultLocale    string   `env:"DEFAULT_LOCALE"`
	Locales          []string `env:"LOCALES" envSeparator:","`
	TrailingSlash    string   `env:"TRAILING_SLASH"`
	DifferentDomains string   `env:"DIFFERENT_DOMAINS"`
	BaseURL          string   `env:"BASE_URL"`
	Detect           string   `env:"DETECT_BROWSER_LANGUAGE"`
	RedirectOn       string   `env:"REDIRECT_ON"`
	CookieKey        string   `env:"COOKIE_KEY"`
	CookieDomain     string   `env:"COOKIE_DOMAIN"`
	FallbackLocale   string   `env:"FALLBACK_LOCALE"`
	Debug            string   `env:"DEBUG"`
}

// FromEnv reads a configuration layer from I18N_* environment variables.
// Unset variables leave the lower layers untouched.
func FromEnv() (Overrides, error) {
	var e envConfig
	if err := env.ParseWithOptions(&e, env.Options{Prefix: "I18N_"}); err != nil {
		return Overrides{}, fmt.Errorf("parsing environment: %w", err)
	}

	var (
		o   Overrides
		err error
	)
	if e.Strategy != "" {
		s := Strategy(e.Strategy)
		o.Strategy = &s
	}
	o.DefaultLocale = nonEmpty(e.DefaultLocale)
	o.BaseURL = nonEmpty(e.BaseURL)
	for _, code := range e.Locales {
		if code = strings.TrimSpace(code); code != "" {
			o.Locales = append(o.Locales, Locale{Code: code})
		}
	}
	if o.TrailingSlash, err = parseBool("I18N_TRAILING_SLASH", e.TrailingSlash); err != nil {
		return o, err
	}
	if o.DifferentDomains, err = parseBool("I18N_DIFFERENT_DOMAINS", e.DifferentDomains); err != nil {
		return o, err
	}
	if o.Debug, err = parseBool("I18N_DEBUG", e.Debug); err != nil {
		return o, err
	}

	var d DetectionOverrides
	if d.Enabled, err = parseBool("I18N_DETECT_BROWSER_LANGUAGE", e.Detect); err != nil {
		return o, err
	}
	if e.RedirectOn != "" {
		r := RedirectOn(e.RedirectOn)
		d.RedirectOn = &r
	}
	d.CookieKey = nonEmpty(e.CookieKey)
	d.CookieDomain = nonEmpty(e.CookieDomain)
	d.FallbackLocale = nonEmpty(e.FallbackLocale)
	if d.Enabled != nil || d.RedirectOn != nil || d.CookieKey != nil || d.CookieDomain != nil || d.FallbackLocale != nil {
		o.DetectBrowserLanguage = &d
	}

	return o, nil
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseBool(name, s string) (*bool, error) {
	if s == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidEnv, name, s)
	}
	return &b, nil
}
