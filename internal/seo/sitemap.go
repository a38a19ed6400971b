package seo

import (
	"encoding/xml"
	"fmt"
	"io"
	"slices"
	"time"

	"poolquotes/internal/routes"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapRule struct {
	rank       int
	priority   string
	changefreq string
}

// Only these kinds are listed; everything else is reachable by links.
var sitemapRules = map[routes.Kind]sitemapRule{
	routes.Home:          {0, "1.0", "daily"},
	routes.Services:      {1, "0.9", "weekly"},
	routes.State:         {2, "0.8", "weekly"},
	routes.City:          {3, "0.7", "monthly"},
	routes.ServiceInCity: {4, "0.6", "monthly"},
}

type URL struct {
	Loc        string `xml:"loc"`
	Priority   string `xml:"priority"`
	ChangeFreq string `xml:"changefreq"`
	LastMod    string `xml:"lastmod"`
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// InSitemap reports whether pages of kind k are listed.
func InSitemap(k routes.Kind) bool {
	_, ok := sitemapRules[k]
	return ok
}

// Entries filters keys to the sitemap kinds and groups them by priority,
// keeping walk order inside each group.
func Entries(keys []routes.Key, base string, lastmod time.Time) []URL {
	listed := make([]routes.Key, 0, len(keys))
	for _, k := range keys {
		if InSitemap(k.Kind) {
			listed = append(listed, k)
		}
	}
	slices.SortStableFunc(listed, func(a, b routes.Key) int {
		return sitemapRules[a.Kind].rank - sitemapRules[b.Kind].rank
	})

	day := lastmod.UTC().Format(time.DateOnly)
	out := make([]URL, len(listed))
	for i, k := range listed {
		rule := sitemapRules[k.Kind]
		out[i] = URL{
			Loc:        Absolute(base, k.Path()),
			Priority:   rule.priority,
			ChangeFreq: rule.changefreq,
			LastMod:    day,
		}
	}
	return out
}

// WriteSitemap writes the urlset document and returns the URL count.
func WriteSitemap(w io.Writer, keys []routes.Key, base string, lastmod time.Time) (int, error) {
	doc := urlSet{Xmlns: sitemapNS, URLs: Entries(keys, base, lastmod)}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return 0, err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return 0, fmt.Errorf("encode sitemap: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return 0, err
	}
	return len(doc.URLs), nil
}

// Robots is the robots.txt body pointing crawlers at the sitemap.
func Robots(base string) string {
	return "User-agent: *\nAllow: /\n\nSitemap: " + Absolute(base, "/sitemap.xml") + "\n"
}
