// Package cookie manages HTTP cookies, including the locale cookie.
//
// Manager handles plain and HMAC-signed cookies with shared attributes:
//
//	m := cookie.New(
//		cookie.WithSecret("your-32+-byte-secret-key-here!!"),
//		cookie.WithSecure(true),
//	)
//	m.Set(w, "theme", "dark", 86400)
//	_ = m.SetSigned(w, "sid", sessionID, 86400)
//	sid, err := m.GetSigned(r, "sid")
//
// Locale persists the detected locale under the configured key
// (i18n_redirected by default) for 365 days:
//
//	lc := cookie.NewLocale(cfg)
//	current := lc.Read(w, r) // invalid values are reset
//	lc.Write(w, "fr")
//
// # Errors
//
//   - [ErrNotFound]: Cookie does not exist
//   - [ErrNoSecret]: Secret required for signed operations
//   - [ErrBadSig]: Signature verification failed
package cookie
