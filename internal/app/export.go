package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/andybalholm/brotli"
	"golang.org/x/sync/errgroup"

	"poolquotes/internal/routes"
	"poolquotes/internal/seo"
)

// ExportOptions tunes a static build.
type ExportOptions struct {
	Concurrency int
	Brotli      bool
	LastMod     time.Time
}

// ExportResult summarizes a finished build.
type ExportResult struct {
	Pages       int
	SitemapURLs int
	Bytes       int64
}

// Export renders every site page into outDir/<path>/index.html alongside
// sitemap.xml, robots.txt and 404.html.
func Export(ctx context.Context, r *Renderer, outDir string, opts ExportOptions) (ExportResult, error) {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.LastMod.IsZero() {
		opts.LastMod = time.Now()
	}
	site := r.Site()
	keys := routes.Site(site.Catalog, site.Articles)

	var written atomic.Int64
	write := func(rel string, body []byte) error {
		n, err := writeFile(filepath.Join(outDir, rel), body, opts.Brotli)
		written.Add(n)
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for _, k := range keys {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			body, err := r.Render(k)
			if err != nil {
				return fmt.Errorf("render %s: %w", k.Path(), err)
			}
			return write(pageFile(k.Path()), body)
		})
	}
	if err := g.Wait(); err != nil {
		return ExportResult{}, err
	}

	var sitemap bytes.Buffer
	urls, err := seo.WriteSitemap(&sitemap, keys, site.BaseURL, opts.LastMod)
	if err != nil {
		return ExportResult{}, err
	}
	if err := write("sitemap.xml", sitemap.Bytes()); err != nil {
		return ExportResult{}, err
	}
	if err := write("robots.txt", []byte(seo.Robots(site.BaseURL))); err != nil {
		return ExportResult{}, err
	}
	notFound, err := r.RenderNotFound()
	if err != nil {
		return ExportResult{}, err
	}
	if err := write("404.html", notFound); err != nil {
		return ExportResult{}, err
	}

	return ExportResult{Pages: len(keys), SitemapURLs: urls, Bytes: written.Load()}, nil
}

// pageFile maps a site path to its index.html below the output root.
func pageFile(path string) string {
	rel := strings.Trim(path, "/")
	if rel == "" {
		return "index.html"
	}
	return filepath.Join(filepath.FromSlash(rel), "index.html")
}

func writeFile(path string, body []byte, precompress bool) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return 0, err
	}
	n := int64(len(body))
	if !precompress {
		return n, nil
	}

	f, err := os.Create(path + ".br")
	if err != nil {
		return n, err
	}
	counter := &countingWriter{w: f}
	bw := brotli.NewWriterLevel(counter, brotli.BestCompression)
	if _, err := bw.Write(body); err != nil {
		f.Close()
		return n, fmt.Errorf("compress %s: %w", path, err)
	}
	if err := bw.Close(); err != nil {
		f.Close()
		return n, fmt.Errorf("compress %s: %w", path, err)
	}
	return n + counter.n, f.Close()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
