// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/taibuivan/vvdex/internal/store"
	"github.com/taibuivan/vvdex/pkg/convert"
	"github.com/taibuivan/vvdex/pkg/multisort"
)

var errNothingToUpdate = errors.New("nothing to update: pass at least one field flag")

// # List Flags

type listFlags struct {
	category  string
	sort      string
	published string
}

func (f *listFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.category, "category", "", "only show this category (filtered locally)")
	flags.StringVar(&f.sort, "sort", "", `local sort expression, e.g. "category:asc,title:asc"`)
	flags.StringVar(&f.published, "published", "", "true for published only, false for drafts only")
}

// loadList loads st with its default options, then applies the local
// category filter and sort expression.
func loadList[T store.Item, D any, P any](cmd *cobra.Command, st *store.Store[T, D, P], f listFlags) ([]T, error) {
	var criteria []multisort.Criterion[T]
	if f.sort != "" {
		parsed, err := multisort.ParseCriteria[T](f.sort)
		if err != nil {
			return nil, fmt.Errorf("invalid --sort: %w", err)
		}
		criteria = parsed
	}

	options := st.Defaults()
	if f.published != "" {
		options.PublishedOnly = convert.ToBoolPtr(f.published)
		if options.PublishedOnly == nil {
			return nil, fmt.Errorf("invalid --published %q: want true or false", f.published)
		}
	}

	state := st.Load(cmd.Context(), options)
	if state.Err != "" {
		return nil, errors.New(state.Err)
	}

	items := state.Items
	if f.category != "" {
		items = st.ByCategory(f.category)
	}

	if len(criteria) > 0 {
		items = multisort.Sort(items, criteria...)
	}
	return items, nil
}

// changed returns a pointer to value when the named flag was set on the command line.
func changed[V any](flags *pflag.FlagSet, name string, value V) *V {
	if !flags.Changed(name) {
		return nil
	}
	return &value
}

// # Rendering

func printTable[T any](out io.Writer, columns []string, items []T, row func(T) []string) error {
	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, strings.Join(columns, "\t"))
	for _, item := range items {
		fmt.Fprintln(writer, strings.Join(row(item), "\t"))
	}
	return writer.Flush()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.DateOnly)
}
