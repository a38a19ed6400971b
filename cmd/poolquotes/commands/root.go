package commands

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"poolquotes/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "poolquotes",
	Short: "poolquotes serves and builds the PoolQuotesNow lead generation site.",
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadRenderer reads configuration and the embedded data tables.
func loadRenderer() (app.Config, *app.Renderer, error) {
	cfg, err := app.LoadConfig()
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}
	site, err := app.LoadSite(cfg)
	if err != nil {
		return cfg, nil, fmt.Errorf("load site: %w", err)
	}
	r, err := app.NewRenderer(site)
	if err != nil {
		return cfg, nil, err
	}
	log.Printf("loaded %d states, %d cities, %d services, %d articles",
		len(site.Catalog.States()), site.Catalog.CityCount(), len(site.Catalog.Services()), site.Articles.Len())
	return cfg, r, nil
}
