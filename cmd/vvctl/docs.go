// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taibuivan/vvdex/internal/core/document"
)

func newDocsCmd(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "docs",
		Aliases: []string{"documents"},
		Short:   "List and edit documents",
	}

	cmd.AddCommand(
		newDocsListCmd(app),
		newDocsAddCmd(app),
		newDocsUpdateCmd(app),
		newDocsDeleteCmd(app),
	)
	return cmd
}

func (app *cli) documentStore(cmd *cobra.Command) (*document.Store, error) {
	if err := app.connect(cmd); err != nil {
		return nil, err
	}
	return document.NewStore(document.NewAPI(app.client), app.cfg.PageLimit, app.logger)
}

var documentColumns = []string{"ID", "TITLE", "CATEGORY", "PUBLISHED", "CREATED"}

func documentRow(d document.Document) []string {
	return []string{d.ID, d.Title, d.Category, strconv.FormatBool(d.Published), formatTime(d.CreatedAt)}
}

func newDocsListCmd(app *cli) *cobra.Command {
	var opts listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documents, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := app.documentStore(cmd)
			if err != nil {
				return err
			}
			items, err := loadList(cmd, st, opts)
			if err != nil {
				return err
			}
			return printTable(app.out, documentColumns, items, documentRow)
		},
	}

	opts.bind(cmd)
	return cmd
}

type documentFlags struct {
	title     string
	content   string
	category  string
	author    string
	tags      []string
	published bool
}

func (f *documentFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.title, "title", "", "document title")
	flags.StringVar(&f.content, "content", "", "markdown body")
	flags.StringVar(&f.category, "category", "", "category, e.g. guide")
	flags.StringVar(&f.author, "author", "", "author name")
	flags.StringSliceVar(&f.tags, "tag", nil, "tag, repeatable")
	flags.BoolVar(&f.published, "published", false, "publish immediately")
}

func newDocsAddCmd(app *cli) *cobra.Command {
	var f documentFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := app.documentStore(cmd)
			if err != nil {
				return err
			}

			created, err := st.Add(cmd.Context(), document.Draft{
				Title:     f.title,
				Content:   f.content,
				Category:  f.category,
				Author:    f.author,
				Tags:      f.tags,
				Published: f.published,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(app.out, created.ID)
			return nil
		},
	}

	f.bind(cmd)
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newDocsUpdateCmd(app *cli) *cobra.Command {
	var f documentFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			patch := document.Patch{
				Title:     changed(flags, "title", f.title),
				Content:   changed(flags, "content", f.content),
				Category:  changed(flags, "category", f.category),
				Author:    changed(flags, "author", f.author),
				Tags:      changed(flags, "tag", f.tags),
				Published: changed(flags, "published", f.published),
			}
			if patch.IsEmpty() {
				return errNothingToUpdate
			}

			st, err := app.documentStore(cmd)
			if err != nil {
				return err
			}

			updated, err := st.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			return printTable(app.out, documentColumns, []document.Document{updated}, documentRow)
		},
	}

	f.bind(cmd)
	return cmd
}

func newDocsDeleteCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a document (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.documentStore(cmd)
			if err != nil {
				return err
			}
			return st.Delete(cmd.Context(), args[0])
		},
	}
}
