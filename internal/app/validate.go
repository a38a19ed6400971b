package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"poolquotes/internal/catalog"
	"poolquotes/internal/routes"
	"poolquotes/internal/seo"
	"poolquotes/internal/tools/linkgraph"
)

// Report collects validation results. Errors fail the build; warnings are
// printed only.
type Report struct {
	Errors   []string
	Warnings []string
}

// OK reports whether validation found no errors.
func (r Report) OK() bool { return len(r.Errors) == 0 }

func (r *Report) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// linkTargets are served by the handler without being site pages.
var linkTargets = []string{"/sitemap.xml", "/robots.txt"}

// RenderPages renders every site page with at most concurrency renders in
// flight. The result keeps routes.Site order; the first render failure aborts.
func RenderPages(ctx context.Context, r *Renderer, concurrency int) ([]linkgraph.Page, error) {
	pages, failures, err := renderSite(ctx, r, concurrency, true)
	if err != nil {
		return nil, err
	}
	if len(failures) > 0 {
		return nil, errors.New(failures[0])
	}
	return pages, nil
}

// renderSite renders each distinct site path once. Unless strict, render
// failures are collected instead of cancelling the remaining renders.
func renderSite(ctx context.Context, r *Renderer, concurrency int, strict bool) ([]linkgraph.Page, []string, error) {
	site := r.Site()
	var keys []routes.Key
	var failures []string
	seen := make(map[string]bool)
	for _, k := range routes.Site(site.Catalog, site.Articles) {
		if seen[k.Path()] {
			failures = append(failures, fmt.Sprintf("duplicate page path %s", k.Path()))
			continue
		}
		seen[k.Path()] = true
		keys = append(keys, k)
	}

	rendered := make([]linkgraph.Page, len(keys))
	ok := make([]bool, len(keys))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(concurrency, 1))
	for i, k := range keys {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			body, err := r.Render(k)
			if err != nil {
				err = fmt.Errorf("render %s: %w", k.Path(), err)
				if strict {
					return err
				}
				mu.Lock()
				failures = append(failures, err.Error())
				mu.Unlock()
				return nil
			}
			rendered[i] = linkgraph.Page{Path: k.Path(), HTML: body}
			ok[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	pages := make([]linkgraph.Page, 0, len(keys))
	for i, p := range rendered {
		if ok[i] {
			pages = append(pages, p)
		}
	}
	sort.Strings(failures)
	return pages, failures, nil
}

// LinkGraph renders the site and builds its internal link graph.
func LinkGraph(ctx context.Context, r *Renderer, concurrency int) (linkgraph.Graph, error) {
	pages, err := RenderPages(ctx, r, concurrency)
	if err != nil {
		return linkgraph.Graph{}, err
	}
	return linkgraph.Build(pages, linkTargets...)
}

// sitemapSize is the number of sitemap URLs the catalog implies: home, the
// services index, then every state, city and city-service page.
func sitemapSize(cat *catalog.Catalog) int {
	cities := cat.CityCount()
	return 2 + len(cat.States()) + cities + cities*len(cat.Services())
}

func checkSitemap(rep *Report, cat *catalog.Catalog, entries []seo.URL) {
	if want := sitemapSize(cat); len(entries) != want {
		rep.errorf("sitemap: %d entries, catalog implies %d", len(entries), want)
	}
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Loc] {
			rep.errorf("sitemap: duplicate location %s", e.Loc)
		}
		seen[e.Loc] = true
	}
}

// Validate checks the data tables against each other and renders the whole
// site looking for links that lead nowhere.
func Validate(ctx context.Context, r *Renderer, concurrency int) (Report, error) {
	var rep Report
	site := r.Site()

	for _, f := range site.Catalog.Lint() {
		rep.warnf("catalog: %s", f)
	}
	for _, slug := range routes.Collisions(site.Catalog) {
		rep.errorf("routes: state slug %q is shadowed by a fixed route", slug)
	}
	for _, f := range site.Articles.Lint(site.Catalog) {
		rep.errorf("articles: %s", f)
	}
	for _, gap := range site.Geo.Coverage(site.Catalog) {
		rep.warnf("geo: %s", gap)
	}

	enumerated := routes.Enumerate(site.Catalog, site.Articles)
	if want := routes.Count(site.Catalog, site.Articles); len(enumerated) != want {
		rep.errorf("routes: enumerated %d pages, expected %d", len(enumerated), want)
	}
	entries := seo.Entries(routes.Site(site.Catalog, site.Articles), site.BaseURL, time.Now())
	checkSitemap(&rep, site.Catalog, entries)

	pages, failures, err := renderSite(ctx, r, concurrency, false)
	if err != nil {
		return rep, err
	}
	for _, f := range failures {
		rep.errorf("pages: %s", f)
	}
	g, err := linkgraph.Build(pages, linkTargets...)
	if err != nil {
		return rep, err
	}
	for _, b := range g.Broken {
		rep.errorf("links: %s links to unknown page %s", b.Source, b.Href)
	}
	for _, o := range g.Orphans {
		if o == thankYouPath {
			continue
		}
		rep.warnf("links: %s has no inbound links", o)
	}
	return rep, nil
}
