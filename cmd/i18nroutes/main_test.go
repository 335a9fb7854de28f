package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/i18nroutes/pkg/route"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestLocalizeCmd(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "i18n.yaml", "defaultLocale: en\nlocales: [en, fr]\n")
	routes := writeFile(t, dir, "routes.yaml", "- path: /\n  name: index\n- path: /about\n  name: about\n")

	out := run(t, "localize", "-c", cfg, "--routes", routes)

	var got []route.Node
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, []route.Node{
		{Path: "/", Name: "index___en"},
		{Path: "/fr", Name: "index___fr"},
		{Path: "/about", Name: "about___en"},
		{Path: "/fr/about", Name: "about___fr"},
	}, got)
}

func TestLocalizeCmd_Pages(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "i18n.yaml", "strategy: prefix\ndefaultLocale: en\nlocales: [en, fr]\n")
	writeFile(t, dir, "pages/about.html", "---\ni18n:\n  paths:\n    fr: /a-propos\n---\n")

	out := run(t, "localize", "-c", cfg, "--root", dir, "--pages", "pages", "--format", "json")

	var got []route.Node
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "/en/about", got[0].Path)
	assert.Equal(t, "/fr/a-propos", got[1].Path)
}

func TestLocalizeCmd_MissingRoutes(t *testing.T) {
	cmd := rootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"localize"})
	err := cmd.ExecuteContext(context.Background())
	require.ErrorIs(t, err, errNoRoutes)
}

func TestDetectCmd(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "i18n.yaml", "defaultLocale: en\nlocales: [en, fr]\n")

	tests := []struct {
		name string
		args []string
		want map[string]string
	}{
		{
			name: "header on root",
			args: []string{"--path", "/", "--accept-language", "fr-FR,fr;q=0.9"},
			want: map[string]string{"locale": "fr", "from": "navigator_or_header", "redirect": "/fr"},
		},
		{
			name: "not root",
			args: []string{"--path", "/blog/article", "--accept-language", "fr"},
			want: map[string]string{"locale": "", "reason": "not_redirect_on_root"},
		},
		{
			name: "cookie beats header",
			args: []string{"--accept-language", "en", "--cookie", "fr"},
			want: map[string]string{"locale": "fr", "from": "cookie", "redirect": "/fr"},
		},
		{
			name: "repeat visit",
			args: []string{"--accept-language", "fr", "--not-first"},
			want: map[string]string{"locale": "", "reason": "first_access_only"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := run(t, append([]string{"detect", "-c", cfg}, tt.args...)...)

			var got map[string]string
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersionCmd(t *testing.T) {
	assert.Equal(t, "dev\n", run(t, "version", "--short"))
}
