package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/i18nroutes"
	"github.com/dmitrymomot/i18nroutes/pkg/i18n"
	"github.com/dmitrymomot/i18nroutes/pkg/route"
)

var errNoRoutes = errors.New("either --routes or --pages is required")

// source holds the flags shared by commands that read routes.
type source struct {
	configs []string
	routes  string
	pages   string
	root    string
}

func (s *source) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&s.configs, "config", "c", nil, "Configuration file (repeatable, later files win)")
	cmd.Flags().StringVar(&s.routes, "routes", "", "YAML or JSON route list")
	cmd.Flags().StringVar(&s.pages, "pages", "", "Pages directory to scan, relative to --root")
	cmd.Flags().StringVar(&s.root, "root", ".", "Project root holding the page files")
}

func (s *source) config() (i18n.Config, error) {
	return i18n.Load(s.configs...)
}

func (s *source) load() ([]route.Node, error) {
	switch {
	case s.routes != "":
		return route.LoadFile(s.routes)
	case s.pages != "":
		return route.Scan(os.DirFS(s.root), s.pages)
	default:
		return nil, errNoRoutes
	}
}

func localizeCmd() *cobra.Command {
	var (
		src    source
		format string
	)

	cmd := &cobra.Command{
		Use:   "localize",
		Short: "Print the localized route table",
		Long: `Localize a route table and print the result.

Examples:
  i18nroutes localize -c i18n.yaml --routes routes.yaml
  i18nroutes localize -c i18n.yaml --pages pages --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := src.config()
			if err != nil {
				return err
			}
			routes, err := src.load()
			if err != nil {
				return err
			}

			engine, err := i18nroutes.New(cfg, i18nroutes.WithPagesFS(os.DirFS(src.root)))
			if err != nil {
				return err
			}
			defer func() { _ = engine.Close() }()

			localized, err := engine.LocalizeRoutes(cmd.Context(), routes)
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), format, localized)
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: yaml or json")

	return cmd
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
