package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18nroutes/pkg/cookie"
	"github.com/dmitrymomot/i18nroutes/pkg/i18n"
)

const testSecret = "this-is-a-32-byte-or-longer-key!"

// roundTrip copies response cookies onto a new request.
func roundTrip(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestManager_Plain(t *testing.T) {
	t.Parallel()

	m := cookie.New()

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		_, err := m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "missing")
		require.ErrorIs(t, err, cookie.ErrNotFound)
	})

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		m.Set(w, "name", "value", 3600)

		v, err := m.Get(roundTrip(w), "name")
		require.NoError(t, err)
		assert.Equal(t, "value", v)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		m.Delete(w, "name")

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Negative(t, cookies[0].MaxAge)
	})
}

func TestManager_Signed(t *testing.T) {
	t.Parallel()

	t.Run("without secret", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(cookie.WithSecret("short"))
		assert.False(t, m.HasSecret())
		require.ErrorIs(t, m.SetSigned(httptest.NewRecorder(), "sid", "v", 0), cookie.ErrNoSecret)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(cookie.WithSecret(testSecret))
		w := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(w, "sid", "abc-123", 60))

		v, err := m.GetSigned(roundTrip(w), "sid")
		require.NoError(t, err)
		assert.Equal(t, "abc-123", v)
	})

	t.Run("tampered", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(cookie.WithSecret(testSecret))
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "sid", Value: "YWJj.bm9wZQ"})

		_, err := m.GetSigned(r, "sid")
		require.ErrorIs(t, err, cookie.ErrBadSig)
	})

	t.Run("other secret", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, cookie.New(cookie.WithSecret(testSecret)).SetSigned(w, "sid", "abc", 60))

		other := cookie.New(cookie.WithSecret("another-32-byte-or-longer-secret"))
		_, err := other.GetSigned(roundTrip(w), "sid")
		require.ErrorIs(t, err, cookie.ErrBadSig)
	})
}

func TestManager_Attributes(t *testing.T) {
	t.Parallel()

	m := cookie.New(
		cookie.WithDomain("example.com"),
		cookie.WithPath("/app"),
		cookie.WithSecure(true),
		cookie.WithHTTPOnly(false),
		cookie.WithSameSite(http.SameSiteStrictMode),
	)
	c := m.Cookie("name", "value", 10)

	assert.Equal(t, "example.com", c.Domain)
	assert.Equal(t, "/app", c.Path)
	assert.True(t, c.Secure)
	assert.False(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.Equal(t, 10, c.MaxAge)
}

func localeConfig(mod func(*i18n.Detection)) i18n.Config {
	cfg := i18n.Defaults()
	cfg.DefaultLocale = "en"
	cfg.Locales = []i18n.Locale{{Code: "en"}, {Code: "fr"}}
	if mod != nil {
		mod(&cfg.DetectBrowserLanguage)
	}
	return cfg
}

func TestLocale_Write(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		mod          func(*i18n.Detection)
		wantSameSite http.SameSite
		wantSecure   bool
		wantDomain   string
	}{
		{
			name:         "defaults",
			wantSameSite: http.SameSiteLaxMode,
		},
		{
			name:         "secure",
			mod:          func(d *i18n.Detection) { d.CookieSecure = true },
			wantSameSite: http.SameSiteLaxMode,
			wantSecure:   true,
		},
		{
			name: "cross origin",
			mod: func(d *i18n.Detection) {
				d.CookieCrossOrigin = true
				d.CookieDomain = "example.com"
			},
			wantSameSite: http.SameSiteNoneMode,
			wantSecure:   true,
			wantDomain:   "example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lc := cookie.NewLocale(localeConfig(tt.mod))
			w := httptest.NewRecorder()
			lc.Write(w, "fr")

			cookies := w.Result().Cookies()
			require.Len(t, cookies, 1)
			c := cookies[0]
			assert.Equal(t, i18n.DefaultCookieKey, c.Name)
			assert.Equal(t, "fr", c.Value)
			assert.Equal(t, "/", c.Path)
			assert.Equal(t, cookie.LocaleMaxAge, c.MaxAge)
			assert.Equal(t, tt.wantSameSite, c.SameSite)
			assert.Equal(t, tt.wantSecure, c.Secure)
			assert.Equal(t, tt.wantDomain, c.Domain)
			assert.False(t, c.HttpOnly)
		})
	}
}

func TestLocale_Read(t *testing.T) {
	t.Parallel()

	request := func(value string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if value != "" {
			r.AddCookie(&http.Cookie{Name: i18n.DefaultCookieKey, Value: value})
		}
		return r
	}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		assert.Equal(t, "fr", cookie.NewLocale(localeConfig(nil)).Read(w, request("fr")))
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		assert.Empty(t, cookie.NewLocale(localeConfig(nil)).Read(w, request("")))
	})

	t.Run("invalid is reset to default", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		assert.Equal(t, "en", cookie.NewLocale(localeConfig(nil)).Read(w, request("xx")))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "en", cookies[0].Value)
	})

	t.Run("invalid without default is deleted", func(t *testing.T) {
		t.Parallel()

		cfg := localeConfig(nil)
		cfg.DefaultLocale = ""
		w := httptest.NewRecorder()
		assert.Empty(t, cookie.NewLocale(cfg).Read(w, request("xx")))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		lc := cookie.NewLocale(localeConfig(func(d *i18n.Detection) { d.UseCookie = false }))
		w := httptest.NewRecorder()
		assert.Empty(t, lc.Read(w, request("fr")))
		lc.Write(w, "fr")
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("custom key", func(t *testing.T) {
		t.Parallel()

		lc := cookie.NewLocale(localeConfig(func(d *i18n.Detection) { d.CookieKey = "lang" }))
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "lang", Value: "fr"})

		assert.Equal(t, "lang", lc.Key())
		assert.Equal(t, "fr", lc.Read(httptest.NewRecorder(), r))
	})
}
