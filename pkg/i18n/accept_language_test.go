package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18nroutes/pkg/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		expected []string
	}{
		{
			name:     "empty header",
			header:   "",
			expected: []string{},
		},
		{
			name:     "single tag",
			header:   "fr",
			expected: []string{"fr"},
		},
		{
			name:     "ordered by quality",
			header:   "de;q=0.5,pl;q=0.9,en;q=0.8",
			expected: []string{"pl", "en", "de"},
		},
		{
			name:     "equal quality keeps header order",
			header:   "fr-CA,fr,en",
			expected: []string{"fr-ca", "fr", "en"},
		},
		{
			name:     "wildcard and zero quality are dropped",
			header:   "*,en;q=0,de;q=0.3",
			expected: []string{"de"},
		},
		{
			name:     "invalid quality defaults to 1",
			header:   "en;q=abc,fr;q=0.9",
			expected: []string{"en", "fr"},
		},
		{
			name:     "whitespace is trimmed",
			header:   " en-US , en ; q=0.7 ",
			expected: []string{"en-us", "en"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, i18n.ParseAcceptLanguage(tt.header))
		})
	}
}

func TestParseAcceptLanguage_OversizedHeader(t *testing.T) {
	t.Parallel()

	header := "fr," + strings.Repeat("x", 5000)
	tags := i18n.ParseAcceptLanguage(header)
	require.NotEmpty(t, tags)
	require.Equal(t, "fr", tags[0])
}
