package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/config"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/server"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/store"
	"github.com/spf13/cobra"
)

type catalogOptions struct {
	file     string
	search   string
	category string
	asJSON   bool
}

func newCatalogCmd() *cobra.Command {
	opts := catalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the menu as the ordering UI would show it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := server.LoadRepository(config.CatalogConfig{File: opts.file})
			if err != nil {
				return err
			}
			catalog, err := repo.GetAll(cmd.Context())
			if err != nil {
				return err
			}

			st := store.New(catalog)
			st.SetSearchQuery(opts.search)
			st.SetSelectedCategory(opts.category)

			return printMenu(cmd.OutOrStdout(), st, opts.asJSON)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "YAML catalog file (defaults to the built-in menu)")
	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "case-insensitive search over name and description")
	cmd.Flags().StringVarP(&opts.category, "category", "c", models.CategoryAll, "category filter")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of a table")

	return cmd
}

func printMenu(w io.Writer, st *store.Store, asJSON bool) error {
	items := st.FilteredMenu()

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tPREP\tCALORIES\tPOPULAR")
	for _, item := range items {
		calories := "-"
		if item.Calories != nil {
			calories = strconv.Itoa(*item.Calories)
		}
		popular := ""
		if item.Popular {
			popular = "*"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%dm\t%s\t%s\n",
			item.ID, item.Name, item.Category, item.Price, item.PrepTime, calories, popular)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d of %d items; categories: %v\n", len(items), len(st.Catalog()), st.Categories())
	return nil
}
