package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
)

func TestPageFile(t *testing.T) {
	tests := map[string]string{
		"/":                            "index.html",
		"/services":                    filepath.Join("services", "index.html"),
		"/florida/miami/pool-cleaning": filepath.Join("florida", "miami", "pool-cleaning", "index.html"),
	}
	for path, want := range tests {
		if got := pageFile(path); got != want {
			t.Fatalf("pageFile(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestExportWritesSite(t *testing.T) {
	r := newTestRenderer(t)
	out := t.TempDir()
	lastmod := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	res, err := Export(context.Background(), r, out, ExportOptions{Concurrency: 4, Brotli: true, LastMod: lastmod})
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if res.Pages != 642 {
		t.Fatalf("exported %d pages, want 642", res.Pages)
	}
	if res.SitemapURLs != 607 {
		t.Fatalf("sitemap urls = %d, want 607", res.SitemapURLs)
	}

	for _, rel := range []string{
		"index.html",
		"florida/miami/pool-cleaning/index.html",
		"blog/florida/year-round-pool-maintenance-florida/index.html",
		"thank-you/index.html",
		"404.html",
		"robots.txt",
	} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(rel))); err != nil {
			t.Fatalf("missing %s: %v", rel, err)
		}
	}

	sitemap, err := os.ReadFile(filepath.Join(out, "sitemap.xml"))
	if err != nil {
		t.Fatalf("read sitemap: %v", err)
	}
	if !strings.Contains(string(sitemap), "<lastmod>2026-01-02</lastmod>") {
		t.Fatal("sitemap does not carry the build date")
	}

	plain, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	f, err := os.Open(filepath.Join(out, "index.html.br"))
	if err != nil {
		t.Fatalf("open brotli copy: %v", err)
	}
	defer f.Close()
	decoded, err := io.ReadAll(brotli.NewReader(f))
	if err != nil {
		t.Fatalf("decode brotli copy: %v", err)
	}
	if !bytes.Equal(plain, decoded) {
		t.Fatal("brotli copy does not match index.html")
	}
}

func TestExportHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Export(ctx, newTestRenderer(t), t.TempDir(), ExportOptions{Concurrency: 2}); err == nil {
		t.Fatal("Export() expected context error")
	}
}
