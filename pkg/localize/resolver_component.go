package localize

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/i18nroutes/pkg/cache"
	"github.com/dmitrymomot/i18nroutes/pkg/route"
	"github.com/dmitrymomot/i18nroutes/pkg/segment"
)

// declaration is the inline i18n block of one page file.
type declaration struct {
	Found    bool
	Disabled bool
	Locales  []string
	Paths    map[string]string
}

// ComponentResolver reads route options declared inside page files as
// YAML front matter:
//
//	---
//	i18n:
//	  locales: [en, fr]
//	  paths:
//	    fr: /a-propos
//	---
//
// "i18n: false" excludes the page. Declarations are parsed once per file.
type ComponentResolver struct {
	fsys   fs.FS
	paths  *segment.Resolver
	loader *cache.Loader[declaration]
}

// NewComponentResolver reads page files from fsys.
func NewComponentResolver(fsys fs.FS, paths *segment.Resolver) *ComponentResolver {
	if paths == nil {
		paths = segment.NewResolver(nil)
	}
	return &ComponentResolver{
		fsys:   fsys,
		paths:  paths,
		loader: cache.NewLoader[declaration](cache.NewMemory[declaration](cache.WithCleanupInterval(0)), -1),
	}
}

// Resolve implements Resolver.
func (c *ComponentResolver) Resolve(ctx context.Context, n route.Node, locales []string) (RouteOptions, bool, error) {
	if n.File == "" {
		return RouteOptions{Locales: locales}, true, nil
	}

	decl, err := c.loader.Load(ctx, n.File, func(context.Context) (declaration, error) {
		return c.read(n.File)
	})
	if err != nil {
		return RouteOptions{}, false, err
	}

	switch {
	case !decl.Found:
		return RouteOptions{Locales: locales}, true, nil
	case decl.Disabled:
		return RouteOptions{}, false, nil
	}

	opts := RouteOptions{Locales: locales}
	if decl.Locales != nil {
		opts.Locales = slices.DeleteFunc(slices.Clone(locales), func(code string) bool {
			return !slices.Contains(decl.Locales, code)
		})
	}

	for code, custom := range decl.Paths {
		if !slices.Contains(opts.Locales, code) {
			continue
		}
		resolved, err := c.paths.Resolve(ctx, custom)
		if err != nil {
			return RouteOptions{}, false, fmt.Errorf("page %q, locale %q: %w", n.File, code, err)
		}
		if opts.Paths == nil {
			opts.Paths = make(map[string]string)
		}
		opts.Paths[code] = resolved
	}

	return opts, true, nil
}

func (c *ComponentResolver) read(file string) (declaration, error) {
	data, err := fs.ReadFile(c.fsys, file)
	if errors.Is(err, fs.ErrNotExist) {
		return declaration{}, nil
	}
	if err != nil {
		return declaration{}, fmt.Errorf("reading %q: %w", file, err)
	}
	return parseDeclaration(data)
}

func parseDeclaration(data []byte) (declaration, error) {
	block, ok := frontMatter(data)
	if !ok {
		return declaration{}, nil
	}

	var doc struct {
		I18n yaml.Node `yaml:"i18n"`
	}
	if err := yaml.Unmarshal(block, &doc); err != nil {
		return declaration{}, fmt.Errorf("%w: %s", ErrInvalidDeclaration, err)
	}
	if doc.I18n.Kind == 0 || doc.I18n.ShortTag() == "!!null" {
		return declaration{}, nil
	}

	if doc.I18n.Kind == yaml.ScalarNode {
		var enabled bool
		if err := doc.I18n.Decode(&enabled); err != nil {
			return declaration{}, fmt.Errorf("%w: i18n must be false or a mapping", ErrInvalidDeclaration)
		}
		return declaration{Found: true, Disabled: !enabled}, nil
	}

	var body struct {
		Locales []string          `yaml:"locales"`
		Paths   map[string]string `yaml:"paths"`
	}
	if err := doc.I18n.Decode(&body); err != nil {
		return declaration{}, fmt.Errorf("%w: %s", ErrInvalidDeclaration, err)
	}
	return declaration{Found: true, Locales: body.Locales, Paths: body.Paths}, nil
}

// frontMatter returns the YAML between a leading "---" line and the next one.
func frontMatter(data []byte) ([]byte, bool) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	if !sc.Scan() || string(bytes.TrimSpace(sc.Bytes())) != "---" {
		return nil, false
	}

	var block bytes.Buffer
	for sc.Scan() {
		line := sc.Bytes()
		if string(bytes.TrimSpace(line)) == "---" {
			return block.Bytes(), true
		}
		block.Write(line)
		block.WriteByte('\n')
	}
	return nil, false
}
