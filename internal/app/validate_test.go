package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"poolquotes/internal/articles"
	"poolquotes/internal/catalog"
	"poolquotes/internal/routes"
	"poolquotes/internal/seo"
)

func TestValidateShippedSite(t *testing.T) {
	rep, err := Validate(context.Background(), newTestRenderer(t), 4)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !rep.OK() {
		t.Fatalf("Validate() errors:\n%s", strings.Join(rep.Errors, "\n"))
	}
}

func TestValidateReportsShadowedStateAndBadTokens(t *testing.T) {
	cat, err := catalog.New(
		[]catalog.State{
			{Slug: "blog", Name: "Blog", Abbreviation: "BL", MainCity: "Provo", Cities: []catalog.City{{Slug: "provo", Name: "Provo"}}},
			{Slug: "utah", Name: "Utah", Abbreviation: "UT", MainCity: "Provo", Cities: []catalog.City{{Slug: "provo", Name: "Provo"}}},
		},
		[]catalog.Service{{Slug: "pool-repair", Name: "Pool Repair", Description: "Expert pool repair services"}},
	)
	if err != nil {
		t.Fatalf("catalog.New() error: %v", err)
	}
	lib, err := articles.Parse([]byte(`[{state: "utah", articles: [{
		slug: "guide", title: "Guide", heading: "Guide", intro: "Intro",
		sections: [{heading: "Links", body: "See {CITY3_SERVICE3} and {NOT_A_TOKEN}."}],
	}]}]`))
	if err != nil {
		t.Fatalf("articles.Parse() error: %v", err)
	}
	geo, err := catalog.ParseGeo([]byte(`[]`))
	if err != nil {
		t.Fatalf("catalog.ParseGeo() error: %v", err)
	}

	base := newTestRenderer(t)
	site := base.Site()
	site.Catalog = cat
	site.Articles = lib
	site.Geo = geo
	r, err := NewRenderer(site)
	if err != nil {
		t.Fatalf("NewRenderer() error: %v", err)
	}

	rep, err := Validate(context.Background(), r, 2)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	joined := strings.Join(rep.Errors, "\n")
	for _, want := range []string{`state slug "blog"`, "unknown token {NOT_A_TOKEN}", "CITY3"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("errors missing %q:\n%s", want, joined)
		}
	}
	if len(rep.Warnings) == 0 {
		t.Fatal("expected geo coverage warnings")
	}
}

func TestCheckSitemapAgainstCatalog(t *testing.T) {
	r := newTestRenderer(t)
	site := r.Site()
	entries := seo.Entries(routes.Site(site.Catalog, site.Articles), site.BaseURL, time.Now())

	var rep Report
	checkSitemap(&rep, site.Catalog, entries)
	if !rep.OK() {
		t.Fatalf("shipped sitemap flagged:\n%s", strings.Join(rep.Errors, "\n"))
	}
	if n := sitemapSize(site.Catalog); n != 607 {
		t.Fatalf("sitemapSize() = %d, want 607", n)
	}

	rep = Report{}
	checkSitemap(&rep, site.Catalog, entries[:len(entries)-1])
	if rep.OK() {
		t.Fatal("missing sitemap entry not reported")
	}

	rep = Report{}
	checkSitemap(&rep, site.Catalog, append(entries[:len(entries)-1:len(entries)-1], entries[0]))
	if rep.OK() {
		t.Fatal("duplicate sitemap location not reported")
	}
}
