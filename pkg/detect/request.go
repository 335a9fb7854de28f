package detect

import (
	"net/http"

	"github.com/dmitrymomot/i18nroutes/pkg/domain"
)

// FromHTTP builds a Request from an incoming HTTP request.
func FromHTTP(r *http.Request) Request {
	return Request{
		Path:           r.URL.Path,
		Host:           domain.Host(r),
		AcceptLanguage: r.Header.Get("Accept-Language"),
	}
}
