package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/i18nroutes/pkg/i18n"
)

func TestMatchBrowserLocale(t *testing.T) {
	t.Parallel()

	locales := []i18n.Locale{
		{Code: "en", Language: "en-US"},
		{Code: "en-gb", Language: "en-GB"},
		{Code: "fr", Language: "fr"},
		{Code: "fr-ca", Language: "fr-CA"},
		{Code: "ja"},
	}

	tests := []struct {
		name    string
		browser []string
		want    string
	}{
		{name: "no browser languages", browser: nil, want: ""},
		{name: "exact tag", browser: []string{"en-GB"}, want: "en-gb"},
		{name: "exact tag is case-insensitive", browser: []string{"fr-ca"}, want: "fr-ca"},
		{name: "code used when language is missing", browser: []string{"ja"}, want: "ja"},
		{name: "language-only prefers catch-all locale", browser: []string{"fr-BE"}, want: "fr"},
		{name: "language-only falls back to first candidate", browser: []string{"en-AU"}, want: "en"},
		{name: "earlier preference wins", browser: []string{"de", "fr-CH", "en-GB"}, want: "fr"},
		{name: "exact beats language-only at same position", browser: []string{"en-US", "fr"}, want: "en"},
		{name: "no match", browser: []string{"de", "pl"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, i18n.MatchBrowserLocale(locales, tt.browser))
		})
	}
}

func TestLocaleFromPath(t *testing.T) {
	t.Parallel()

	codes := []string{"en", "fr", "pt-br"}

	assert.Equal(t, "fr", i18n.LocaleFromPath("/fr", codes))
	assert.Equal(t, "fr", i18n.LocaleFromPath("/fr/about", codes))
	assert.Equal(t, "fr", i18n.LocaleFromPath("/FR/about", codes))
	assert.Equal(t, "pt-br", i18n.LocaleFromPath("/pt-br/", codes))
	assert.Equal(t, "", i18n.LocaleFromPath("/french", codes))
	assert.Equal(t, "", i18n.LocaleFromPath("/", codes))
	assert.Equal(t, "", i18n.LocaleFromPath("fr/about", codes))
}
