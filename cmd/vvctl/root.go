// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taibuivan/vvdex/internal/platform/apiclient"
	"github.com/taibuivan/vvdex/internal/platform/config"
	"github.com/taibuivan/vvdex/internal/platform/constants"
)

// cli carries the state shared by every subcommand.
type cli struct {
	out    io.Writer
	errOut io.Writer

	apiURL  string
	token   string
	verbose bool

	cfg    *config.ClientConfig
	logger *slog.Logger
	client *apiclient.Client
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	app := &cli{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           constants.CLIName,
		Short:         "Operate the VVDex Content API",
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&app.apiURL, "api-url", "", "API root, overrides VVDEX_API_URL")
	root.PersistentFlags().StringVar(&app.token, "token", "", "admin bearer token, overrides VVDEX_API_TOKEN")
	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "log requests to stderr")

	root.SetOut(out)
	root.SetErr(errOut)

	root.AddCommand(
		newDocsCmd(app),
		newLogsCmd(app),
		newCatalogCmd(app),
		newLoginCmd(app),
		newHashPasswordCmd(app),
	)

	return root
}

// connect loads the client configuration, applies flag overrides and builds
// the API client. Commands that talk to the API call it first.
func (app *cli) connect(cmd *cobra.Command) error {
	if app.client != nil {
		return nil
	}

	level := slog.LevelWarn
	if app.verbose {
		level = slog.LevelDebug
	}
	app.logger = slog.New(slog.NewTextHandler(app.errOut, &slog.HandlerOptions{Level: level})).
		With(slog.String(constants.FieldApp, constants.CLIName))

	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.BaseURL = app.apiURL
	}
	if flags.Changed("token") {
		cfg.Token = app.token
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	app.cfg = cfg
	app.client = apiclient.New(*cfg, app.logger)
	return nil
}
