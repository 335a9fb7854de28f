package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "i18nroutes",
		Short: "Localize route tables and detect visitor locales",
		Long: `i18nroutes duplicates a route table per locale and serves it with
browser language detection.

Configuration is read from YAML, JSON or TOML files, merged over the
defaults and the I18N_* environment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		localizeCmd(),
		detectCmd(),
		serveCmd(),
		versionCmd(),
	)

	return cmd
}
