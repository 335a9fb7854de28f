package segment

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrymomot/i18nroutes/pkg/cache"
)

// Path renders tokens as a router path pattern.
//
//	static   -> percent-encoded text, ":" escaped as "\:"
//	dynamic  -> :name()
//	optional -> :name?
//	catchall -> :name(.*)*
//	group    -> (nothing)
func Path(tokens []Token) string {
	var b strings.Builder
	b.WriteByte('/')
	for _, t := range tokens {
		switch t.Kind {
		case Static:
			b.WriteString(strings.ReplaceAll(encodePath(t.Value), ":", `\:`))
		case Dynamic:
			b.WriteString(":" + t.Value + "()")
		case Optional:
			b.WriteString(":" + t.Value + "?")
		case CatchAll:
			b.WriteString(":" + t.Value + "(.*)*")
		}
	}
	return b.String()
}

// Resolve converts a custom page path such as "/blog/[slug]" into a
// router pattern ("/blog/:slug()").
func Resolve(path string) (string, error) {
	tokens, err := Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", err
	}
	return Path(tokens), nil
}

// pathSafe holds the punctuation kept verbatim in static text: the URI
// path set without "#", "?", "&" and "+".
const pathSafe = "-_.!~*'();,/:@=$|"

const upperHex = "0123456789ABCDEF"

func encodePath(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9',
			strings.IndexByte(pathSafe, c) >= 0:
			b.WriteByte(c)
		case c == '%' && strings.HasPrefix(strings.ToUpper(s[i:]), "%2F"):
			// Encoded slashes stay encoded once.
			b.WriteString("%2F")
			i += 2
		default:
			b.WriteByte('%')
			b.WriteByte(upperHex[c>>4])
			b.WriteByte(upperHex[c&15])
		}
	}
	return b.String()
}

// Resolver memoizes Resolve. Outputs depend only on the input path,
// so entries never expire.
type Resolver struct {
	loader *cache.Loader[string]
}

// NewResolver returns a Resolver backed by store.
// A nil store selects an unbounded in-memory cache.
func NewResolver(store cache.Cache[string]) *Resolver {
	if store == nil {
		store = cache.NewMemory[string](cache.WithCleanupInterval(0))
	}
	return &Resolver{loader: cache.NewLoader(store, time.Duration(-1))}
}

// Resolve is the memoized form of the package-level Resolve.
func (r *Resolver) Resolve(ctx context.Context, path string) (string, error) {
	return r.loader.Load(ctx, path, func(context.Context) (string, error) {
		return Resolve(path)
	})
}
