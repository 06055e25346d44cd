// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/vvdex/internal/core/updatelog"
)

func newLogsCmd(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "logs",
		Aliases: []string{"update-logs"},
		Short:   "List and edit update logs",
	}

	cmd.AddCommand(
		newLogsListCmd(app),
		newLogsAddCmd(app),
		newLogsUpdateCmd(app),
		newLogsDeleteCmd(app),
	)
	return cmd
}

func (app *cli) updateLogStore(cmd *cobra.Command) (*updatelog.Store, error) {
	if err := app.connect(cmd); err != nil {
		return nil, err
	}
	return updatelog.NewStore(updatelog.NewAPI(app.client), app.cfg.PageLimit, app.logger)
}

var updateLogColumns = []string{"ID", "VERSION", "TITLE", "CATEGORY", "PUBLISHED", "RELEASED"}

func updateLogRow(l updatelog.UpdateLog) []string {
	return []string{l.ID, l.Version, l.Title, l.Category, strconv.FormatBool(l.Published), formatTime(l.ReleasedAt)}
}

func newLogsListCmd(app *cli) *cobra.Command {
	var opts listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List update logs, latest release first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := app.updateLogStore(cmd)
			if err != nil {
				return err
			}
			items, err := loadList(cmd, st, opts)
			if err != nil {
				return err
			}
			return printTable(app.out, updateLogColumns, items, updateLogRow)
		},
	}

	opts.bind(cmd)
	return cmd
}

type updateLogFlags struct {
	version    string
	title      string
	content    string
	category   string
	author     string
	tags       []string
	published  bool
	releasedAt string
}

func (f *updateLogFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.version, "version", "", "release version, e.g. 2.14.0")
	flags.StringVar(&f.title, "title", "", "headline")
	flags.StringVar(&f.content, "content", "", "markdown body")
	flags.StringVar(&f.category, "category", "", "category, defaults to general")
	flags.StringVar(&f.author, "author", "", "author name")
	flags.StringSliceVar(&f.tags, "tag", nil, "tag, repeatable")
	flags.BoolVar(&f.published, "published", false, "publish immediately")
	flags.StringVar(&f.releasedAt, "released-at", "", "release time, RFC 3339 or YYYY-MM-DD")
}

func (f *updateLogFlags) releaseTime() (*time.Time, error) {
	if f.releasedAt == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if parsed, err := time.Parse(layout, f.releasedAt); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("invalid --released-at %q: want RFC 3339 or YYYY-MM-DD", f.releasedAt)
}

func newLogsAddCmd(app *cli) *cobra.Command {
	var f updateLogFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an update log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			releasedAt, err := f.releaseTime()
			if err != nil {
				return err
			}

			st, err := app.updateLogStore(cmd)
			if err != nil {
				return err
			}

			created, err := st.Add(cmd.Context(), updatelog.Draft{
				Version:    f.version,
				Title:      f.title,
				Content:    f.content,
				Category:   f.category,
				Author:     f.author,
				Tags:       f.tags,
				Published:  f.published,
				ReleasedAt: releasedAt,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(app.out, created.ID)
			return nil
		},
	}

	f.bind(cmd)
	_ = cmd.MarkFlagRequired("version")
	return cmd
}

func newLogsUpdateCmd(app *cli) *cobra.Command {
	var f updateLogFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of an update log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			releasedAt, err := f.releaseTime()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			patch := updatelog.Patch{
				Version:    changed(flags, "version", f.version),
				Title:      changed(flags, "title", f.title),
				Content:    changed(flags, "content", f.content),
				Category:   changed(flags, "category", f.category),
				Author:     changed(flags, "author", f.author),
				Tags:       changed(flags, "tag", f.tags),
				Published:  changed(flags, "published", f.published),
				ReleasedAt: releasedAt,
			}
			if patch.IsEmpty() {
				return errNothingToUpdate
			}

			st, err := app.updateLogStore(cmd)
			if err != nil {
				return err
			}

			updated, err := st.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			return printTable(app.out, updateLogColumns, []updatelog.UpdateLog{updated}, updateLogRow)
		},
	}

	f.bind(cmd)
	return cmd
}

func newLogsDeleteCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an update log (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.updateLogStore(cmd)
			if err != nil {
				return err
			}
			return st.Delete(cmd.Context(), args[0])
		},
	}
}
