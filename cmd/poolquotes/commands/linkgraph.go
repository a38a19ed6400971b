package commands

import (
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"poolquotes/internal/app"
	"poolquotes/internal/tools/linkgraph"
)

var linkgraphOut string

func init() {
	linkgraphCmd.Flags().StringVar(&linkgraphOut, "out", "static/linkgraph.json", "path to write the link graph JSON")
	rootCmd.AddCommand(linkgraphCmd)
}

var linkgraphCmd = &cobra.Command{
	Use:   "linkgraph",
	Short: "Renders the site and writes its internal link graph with link silos.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, renderer, err := loadRenderer()
		if err != nil {
			return err
		}
		g, err := app.LinkGraph(cmd.Context(), renderer, cfg.ExportConcurrency)
		if err != nil {
			return err
		}
		if err := linkgraph.Write(linkgraphOut, g); err != nil {
			return err
		}
		log.Printf("wrote link graph to %s (%d pages, %d links, %d silos, %d broken)",
			linkgraphOut, g.Totals.Pages, g.Totals.Links, g.Totals.Silos, g.Totals.Broken)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Silo", "Pages", "Internal links", "Outgoing links", "Hub"})
		for _, s := range g.Silos {
			hub := ""
			if len(s.Sample) > 0 {
				hub = s.Sample[0]
			}
			t.AppendRow(table.Row{s.ID, s.Size, s.InternalLinks, s.ExternalLinks, hub})
		}
		t.Render()
		return nil
	},
}
