package commands

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"poolquotes/internal/routes"
	"poolquotes/internal/seo"
)

var sitemapOut string

func init() {
	sitemapCmd.Flags().StringVar(&sitemapOut, "out", "public/sitemap.xml", "path to write the sitemap to")
	rootCmd.AddCommand(sitemapCmd)
}

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Writes sitemap.xml for the configured base URL.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, renderer, err := loadRenderer()
		if err != nil {
			return err
		}
		site := renderer.Site()

		var buf bytes.Buffer
		n, err := seo.WriteSitemap(&buf, routes.Site(site.Catalog, site.Articles), site.BaseURL, time.Now())
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(sitemapOut), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(sitemapOut, buf.Bytes(), 0o644); err != nil {
			return err
		}
		log.Printf("wrote %d urls to %s", n, sitemapOut)
		return nil
	},
}
