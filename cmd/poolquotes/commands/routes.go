package commands

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"poolquotes/internal/routes"
	"poolquotes/internal/seo"
)

var routesList bool

func init() {
	routesCmd.Flags().BoolVar(&routesList, "list", false, "print every page path instead of the summary")
	rootCmd.AddCommand(routesCmd)
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Summarizes the pages the site serves, by kind.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, renderer, err := loadRenderer()
		if err != nil {
			return err
		}
		site := renderer.Site()
		keys := routes.Site(site.Catalog, site.Articles)

		if routesList {
			for _, k := range keys {
				fmt.Println(k.Path())
			}
			return nil
		}

		counts := make(map[routes.Kind]int)
		for _, k := range keys {
			counts[k.Kind]++
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Kind", "Pages", "In sitemap"})
		for _, kind := range routes.Kinds() {
			if counts[kind] == 0 {
				continue
			}
			inSitemap := "no"
			if seo.InSitemap(kind) {
				inSitemap = "yes"
			}
			t.AppendRow(table.Row{kind, counts[kind], inSitemap})
		}
		t.AppendFooter(table.Row{"Total", len(keys), ""})
		t.Render()
		return nil
	},
}
