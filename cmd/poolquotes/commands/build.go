package commands

import (
	"log"
	"time"

	"github.com/spf13/cobra"

	"poolquotes/internal/app"
)

var (
	buildOut    string
	buildBrotli bool
)

func init() {
	buildCmd.Flags().StringVar(&buildOut, "out", "dist", "directory to write the static site into")
	buildCmd.Flags().BoolVar(&buildBrotli, "brotli", false, "also write a .br copy of every file")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Renders the whole site into a directory of static files.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, renderer, err := loadRenderer()
		if err != nil {
			return err
		}

		start := time.Now()
		res, err := app.Export(cmd.Context(), renderer, buildOut, app.ExportOptions{
			Concurrency: cfg.ExportConcurrency,
			Brotli:      buildBrotli,
		})
		if err != nil {
			return err
		}
		log.Printf("wrote %d pages (%d in sitemap, %d bytes) to %s in %s",
			res.Pages, res.SitemapURLs, res.Bytes, buildOut, time.Since(start).Round(time.Millisecond))
		return nil
	},
}
