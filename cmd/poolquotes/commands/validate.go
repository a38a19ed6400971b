package commands

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"poolquotes/internal/app"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Checks data tables, article tokens, the sitemap and every internal link.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, renderer, err := loadRenderer()
		if err != nil {
			return err
		}
		rep, err := app.Validate(cmd.Context(), renderer, cfg.ExportConcurrency)
		if err != nil {
			return err
		}

		if len(rep.Errors)+len(rep.Warnings) > 0 {
			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetStyle(table.StyleRounded)
			t.AppendHeader(table.Row{"Level", "Finding"})
			for _, e := range rep.Errors {
				t.AppendRow(table.Row{"error", e})
			}
			for _, w := range rep.Warnings {
				t.AppendRow(table.Row{"warning", w})
			}
			t.Render()
		}

		if !rep.OK() {
			return fmt.Errorf("validation failed with %d errors", len(rep.Errors))
		}
		fmt.Printf("ok: %d warnings\n", len(rep.Warnings))
		return nil
	},
}
