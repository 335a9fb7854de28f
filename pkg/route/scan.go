package route

import (
	"cmp"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/dmitrymomot/i18nroutes/pkg/segment"
)

// Scan builds a route tree from a directory of page files.
//
//	pages/index.html          -> /            (index)
//	pages/about.html          -> /about       (about)
//	pages/blog/[slug].html    -> /blog/:slug() (blog-slug)
//	pages/users.html          -> /users       (users)
//	pages/users/[id].html     ->   :id()      (users-id, child of /users)
//
// A file and a directory with the same stem form a parent route with
// nested children. Names starting with "_" or "." are ignored.
func Scan(fsys fs.FS, dir string) ([]Node, error) {
	return scanDir(fsys, dir, "", nil, false)
}

type page struct {
	stem    string
	file    string
	tokens  []segment.Token
	hasFile bool
	hasDir  bool
}

func scanDir(fsys fs.FS, dir, base string, names []string, nested bool) ([]Node, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("route: scan %s: %w", dir, err)
	}

	pages := make(map[string]*page)
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") {
			continue
		}

		stem := name
		if !e.IsDir() {
			stem = strings.TrimSuffix(name, path.Ext(name))
		}

		p, ok := pages[stem]
		if !ok {
			tokens, err := segment.Parse(stem)
			if err != nil {
				return nil, fmt.Errorf("route: %s: %w", path.Join(dir, name), err)
			}
			p = &page{stem: stem, tokens: tokens}
			pages[stem] = p
		}

		if e.IsDir() {
			p.hasDir = true
		} else {
			p.hasFile = true
			p.file = path.Join(dir, name)
		}
	}

	ordered := make([]*page, 0, len(pages))
	for _, p := range pages {
		ordered = append(ordered, p)
	}
	slices.SortFunc(ordered, comparePages)

	var nodes []Node
	for _, p := range ordered {
		pattern := ""
		partNames := names
		if p.stem != "index" {
			pattern = strings.TrimPrefix(segment.Path(p.tokens), "/")
			if part := tokenName(p.tokens); part != "" {
				partNames = append(slices.Clone(names), part)
			}
		}
		rel := joinRel(base, pattern)

		if !p.hasFile {
			// Plain directory: its pages share this level.
			sub, err := scanDir(fsys, path.Join(dir, p.stem), rel, partNames, nested)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, sub...)
			continue
		}

		n := Node{File: p.file, Name: strings.Join(partNames, "-")}
		if nested {
			n.Path = rel
		} else {
			n.Path = "/" + rel
		}
		if n.Name == "" && !nested {
			n.Name = "index"
		}

		if p.hasDir {
			children, err := scanDir(fsys, path.Join(dir, p.stem), "", partNames, true)
			if err != nil {
				return nil, err
			}
			n.Children = children
			// The index child owns the name.
			if slices.ContainsFunc(children, func(c Node) bool { return c.Path == "" }) {
				n.Name = ""
			}
		}

		nodes = append(nodes, n)
	}

	return nodes, nil
}

func joinRel(base, pattern string) string {
	switch {
	case base == "":
		return pattern
	case pattern == "":
		return base
	default:
		return base + "/" + pattern
	}
}

// tokenName builds a route name fragment from a segment.
func tokenName(tokens []segment.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.Kind != segment.Group {
			b.WriteString(t.Value)
		}
	}
	return b.String()
}

// comparePages orders index first, static before dynamic, then by name.
func comparePages(a, b *page) int {
	return cmp.Or(
		cmp.Compare(rank(a), rank(b)),
		cmp.Compare(a.stem, b.stem),
	)
}

func rank(p *page) int {
	if p.stem == "index" {
		return 0
	}
	r := 1
	for _, t := range p.tokens {
		switch t.Kind {
		case segment.Dynamic:
			r = max(r, 2)
		case segment.Optional:
			r = max(r, 3)
		case segment.CatchAll:
			r = max(r, 4)
		}
	}
	return r
}
