//go:build ignore

package main

import (
	"flag"
	"log"
	"os"
	"time"

	"poolquotes/internal/app"
	"poolquotes/internal/routes"
	"poolquotes/internal/seo"
)

func main() {
	outPath := flag.String("out", "public/sitemap.xml", "path to write sitemap XML")
	flag.Parse()

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	site, err := app.LoadSite(cfg)
	if err != nil {
		log.Fatalf("load site: %v", err)
	}

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("create %s: %v", *outPath, err)
	}
	defer f.Close()

	n, err := seo.WriteSitemap(f, routes.Site(site.Catalog, site.Articles), site.BaseURL, time.Now())
	if err != nil {
		log.Fatalf("write sitemap: %v", err)
	}

	log.Printf("wrote sitemap to %s (%d urls for %s)", *outPath, n, site.BaseURL)
}
