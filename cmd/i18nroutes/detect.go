package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/i18nroutes/pkg/detect"
	"github.com/dmitrymomot/i18nroutes/pkg/i18n"
	"github.com/dmitrymomot/i18nroutes/pkg/redirect"
)

// detection is the output of the detect command.
type detection struct {
	detect.Result `yaml:",inline"`
	Redirect      string `json:"redirect,omitempty" yaml:"redirect,omitempty"`
}

func detectCmd() *cobra.Command {
	var (
		configs        []string
		path           string
		host           string
		acceptLanguage string
		cookie         string
		notFirst       bool
		format         string
	)

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Run browser locale detection for a request",
		Long: `Run browser locale detection for a simulated request and print the
detected locale, its source or the reason for no result, and the redirect
target.

Examples:
  i18nroutes detect -c i18n.yaml --path / --accept-language "fr-FR,fr;q=0.9"
  i18nroutes detect -c i18n.yaml --path /about --cookie de --not-first`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := i18n.Load(configs...)
			if err != nil {
				return err
			}

			redirects := redirect.New(cfg, nil)
			routeLocale := redirects.Getter().FromPath(path)
			current := routeLocale
			if current == "" {
				current = cfg.DefaultLocale
				if cfg.Strategy != i18n.Prefix {
					routeLocale = current
				}
			}

			res := detect.New(cfg).Detect(cmd.Context(), detect.Request{
				Path:           path,
				Host:           host,
				AcceptLanguage: acceptLanguage,
			}, detect.Context{
				FirstAccess:  !notFirst,
				CallType:     detect.CallRouting,
				SSG:          detect.SSGNormal,
				LocaleCookie: cookie,
			}, current)

			out := detection{Result: res}
			if res.Locale != "" {
				out.Redirect = redirects.DetectRedirect(redirect.Options{
					To:          redirect.Target{Path: path},
					Locale:      res.Locale,
					RouteLocale: routeLocale,
				}, false)
			}
			return encode(cmd.OutOrStdout(), format, out)
		},
	}

	cmd.Flags().StringSliceVarP(&configs, "config", "c", nil, "Configuration file (repeatable, later files win)")
	cmd.Flags().StringVar(&path, "path", "/", "Request path")
	cmd.Flags().StringVar(&host, "host", "", "Request host")
	cmd.Flags().StringVar(&acceptLanguage, "accept-language", "", "Accept-Language header")
	cmd.Flags().StringVar(&cookie, "cookie", "", "Locale cookie value")
	cmd.Flags().BoolVar(&notFirst, "not-first", false, "Treat the request as a repeat visit")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: yaml or json")

	return cmd
}
