package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/syntax"
	"github.com/3-lines-studio/syntax/internal/adapters/fs"
	"github.com/3-lines-studio/syntax/internal/config"
	"github.com/3-lines-studio/syntax/internal/logging"
)

var (
	configFile string
	cfg        config.Config
	logger     = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:           "syntax",
	Short:         "Serve and export the documentation site",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configFile, cmd.Flags())
		if err != nil {
			return err
		}
		cfg = c

		l, err := logging.Stderr(cfg.LogLevel)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default ./syntax.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Bool("dev", false, "show error details and disable asset caching")
	flags.String("site-title", "", "site title shown in the browser tab")
	flags.String("highlight-style", "", "chroma style for code blocks")
	flags.String("content-dir", "", "serve markdown from this directory instead of the embedded pages")
}

func newSite() (*syntax.Site, error) {
	opts := []syntax.Option{
		syntax.WithDev(cfg.Dev),
		syntax.WithHighlightStyle(cfg.HighlightStyle),
		syntax.WithLogger(logger),
	}
	if cfg.SiteTitle != "" {
		opts = append(opts, syntax.WithSiteTitle(cfg.SiteTitle))
	}
	if cfg.ContentDir != "" {
		content, err := fs.DirFS(cfg.ContentDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open content dir: %w", err)
		}
		opts = append(opts, syntax.WithContent(content))
	}

	return syntax.New(opts...)
}
