package i18nroutes_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18nroutes"
	"github.com/dmitrymomot/i18nroutes/pkg/route"
)

func TestEndToEnd(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"pages/index.html":        {Data: []byte("<h1>Home</h1>")},
		"pages/about.html":        {Data: []byte("<h1>About</h1>")},
		"pages/blog/[slug].html":  {Data: []byte("---\ni18n:\n  locales: [fr]\n---\n")},
		"pages/_partial.html":     {Data: []byte("skipped")},
		"pages/legal/privacy.txt": {Data: []byte("---\ni18n: false\n---\n")},
	}

	routes, err := route.Scan(fsys, "pages")
	require.NoError(t, err)

	cfg := i18nroutes.Defaults()
	cfg.DefaultLocale = "en"
	cfg.Locales = []i18nroutes.Locale{{Code: "en"}, {Code: "fr"}}

	engine, err := i18nroutes.New(cfg, i18nroutes.WithPagesFS(fsys))
	require.NoError(t, err)
	t.Cleanup(func() { _ = engine.Close() })

	localized, err := engine.LocalizeRoutes(context.Background(), routes)
	require.NoError(t, err)

	paths := make(map[string]string)
	for _, e := range route.Flatten(localized) {
		paths[e.Node.Name] = e.Path
	}
	assert.Equal(t, "/about", paths["about___en"])
	assert.Equal(t, "/fr/about", paths["about___fr"])
	assert.Equal(t, "/fr/blog/:slug()", paths["blog-slug___fr"])
	assert.NotContains(t, paths, "blog-slug___en")
	assert.NotContains(t, paths, "legal-privacy___en")

	h, err := engine.Handler(context.Background(), routes, func(e i18nroutes.RouteEntry) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale, _ := i18nroutes.LocaleFromContext(r.Context())
			_, _ = io.WriteString(w, e.Node.Name+" "+locale)
		})
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/fr/blog/hello", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "blog-slug___fr fr", w.Body.String())
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "i18n.yaml")
	require.NoError(t, os.WriteFile(file, []byte("strategy: prefix\ndefaultLocale: en\nlocales: [en, fr]\n"), 0o600))

	cfg, err := i18nroutes.LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, i18nroutes.Prefix, cfg.Strategy)
	assert.Equal(t, []string{"en", "fr"}, cfg.Codes())
	assert.True(t, cfg.DetectBrowserLanguage.Enabled)
}
