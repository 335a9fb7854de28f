package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

// Errors.
var (
	ErrNotFound = errors.New("cookie: not found")
	ErrNoSecret = errors.New("cookie: secret required")
	ErrBadSig   = errors.New("cookie: invalid signature")
)

// Manager handles cookie operations.
type Manager struct {
	secret   []byte // nil = no signing
	domain   string
	path     string
	secure   bool
	httpOnly bool
	sameSite http.SameSite
}

// Option configures the Manager.
type Option func(*Manager)

// New creates a cookie Manager with the given options.
func New(opts ...Option) *Manager {
	m := &Manager{
		path:     "/",
		httpOnly: true,
		sameSite: http.SameSiteLaxMode,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithSecret sets the secret for signing.
// Must be at least 32 bytes; shorter secrets are ignored.
func WithSecret(secret string) Option {
	return func(m *Manager) {
		if len(secret) >= 32 {
			m.secret = []byte(secret)
		}
	}
}

// WithDomain sets the cookie domain.
func WithDomain(domain string) Option {
	return func(m *Manager) {
		m.domain = domain
	}
}

// WithPath sets the cookie path.
func WithPath(path string) Option {
	return func(m *Manager) {
		m.path = path
	}
}

// WithSecure sets the Secure flag.
func WithSecure(secure bool) Option {
	return func(m *Manager) {
		m.secure = secure
	}
}

// WithHTTPOnly sets the HttpOnly flag.
func WithHTTPOnly(httpOnly bool) Option {
	return func(m *Manager) {
		m.httpOnly = httpOnly
	}
}

// WithSameSite sets the SameSite attribute.
func WithSameSite(ss http.SameSite) Option {
	return func(m *Manager) {
		m.sameSite = ss
	}
}

// HasSecret reports whether signed cookies are available.
func (m *Manager) HasSecret() bool {
	return m.secret != nil
}

// Get returns a plain cookie value.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Set sets a plain cookie.
func (m *Manager) Set(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, m.Cookie(name, value, maxAge))
}

// Delete removes a cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, m.Cookie(name, "", -1))
}

// GetSigned returns a signed cookie value.
// Returns ErrNoSecret if no secret is configured.
// Returns ErrBadSig if signature verification fails.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	if m.secret == nil {
		return "", ErrNoSecret
	}

	raw, err := m.Get(r, name)
	if err != nil {
		return "", err
	}

	// Format: base64(value).base64(signature)
	encValue, encSig, ok := strings.Cut(raw, ".")
	if !ok {
		return "", ErrBadSig
	}

	value, err := base64.RawURLEncoding.DecodeString(encValue)
	if err != nil {
		return "", ErrBadSig
	}

	sig, err := base64.RawURLEncoding.DecodeString(encSig)
	if err != nil {
		return "", ErrBadSig
	}

	if !hmac.Equal(sig, m.sign(value)) {
		return "", ErrBadSig
	}

	return string(value), nil
}

// SetSigned sets a signed cookie.
// Returns ErrNoSecret if no secret is configured.
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, maxAge int) error {
	if m.secret == nil {
		return ErrNoSecret
	}

	encoded := base64.RawURLEncoding.EncodeToString([]byte(value)) +
		"." + base64.RawURLEncoding.EncodeToString(m.sign([]byte(value)))

	http.SetCookie(w, m.Cookie(name, encoded, maxAge))
	return nil
}

// Cookie creates a cookie with the manager's attributes.
func (m *Manager) Cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     m.path,
		Domain:   m.domain,
		MaxAge:   maxAge,
		Secure:   m.secure,
		HttpOnly: m.httpOnly,
		SameSite: m.sameSite,
	}
}

func (m *Manager) sign(value []byte) []byte {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write(value)
	return mac.Sum(nil)
}
