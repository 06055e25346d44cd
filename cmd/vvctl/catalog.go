// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/vvdex/internal/core/catalog"
	"github.com/taibuivan/vvdex/pkg/multisort"
)

func newCatalogCmd(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect characters, swimsuits and skills",
	}
	cmd.AddCommand(newCatalogSortCmd(app))
	return cmd
}

func newCatalogSortCmd(app *cli) *cobra.Command {
	var (
		kind  string
		by    string
		lang  string
		query catalog.Query
		limit int
	)

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Fetch a catalog list and sort it locally",
		Long: `Fetch a catalog list and sort it locally with a multi-key expression.

Fields: name, type, rarity, stats (total), stats.<name>, id, or any extra
attribute. Directions are asc (default) and desc.

  vvctl catalog sort --kind swimsuits --by "rarity:desc,stats.pow:desc,name"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsedKind, err := catalog.ParseKind(kind)
			if err != nil {
				return err
			}

			expr := by
			if strings.TrimSpace(expr) == "" {
				expr = catalog.DefaultSort
			}
			criteria, err := multisort.ParseCriteria[catalog.Item](expr)
			if err != nil {
				return fmt.Errorf("invalid --by: %w", err)
			}

			if err := app.connect(cmd); err != nil {
				return err
			}

			items, err := catalog.Fetch(cmd.Context(), app.client, parsedKind, query, limit)
			if err != nil {
				return err
			}

			sorted := multisort.Sort(items, criteria...)
			return printTable(app.out, []string{"ID", "NAME", "TYPE", "RARITY", "STATS"}, sorted, func(item catalog.Item) []string {
				name := item.Name
				if translated, ok := item.TranslatedName(lang); ok {
					name = translated
				}
				return []string{item.ID, name, item.Type, item.Rarity, strconv.FormatFloat(multisort.StatsTotal(item.Stats), 'f', -1, 64)}
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&kind, "kind", string(catalog.KindCharacter), "characters, swimsuits or skills")
	flags.StringVar(&by, "by", "", "sort expression, defaults to "+catalog.DefaultSort)
	flags.StringVar(&lang, "lang", "", "show translated names for this language")
	flags.StringVar(&query.Type, "type", "", "only this type")
	flags.StringVar(&query.Rarity, "rarity", "", "only this rarity")
	flags.IntVar(&limit, "limit", 500, "maximum items to fetch")
	return cmd
}
