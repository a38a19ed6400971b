package linkgraph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const maxSiloSample = 10

// Page is one rendered page of the site.
type Page struct {
	Path string
	HTML []byte
}

// Edge is a deduplicated internal link between two pages.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Node is a page with its link degrees and silo id.
type Node struct {
	Path     string `json:"path"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
	Silo     int    `json:"silo"`
}

// BrokenLink is an internal href that matches no page.
type BrokenLink struct {
	Source string `json:"source"`
	Href   string `json:"href"`
}

// Silo is one Louvain community of pages.
type Silo struct {
	ID            int      `json:"id"`
	Size          int      `json:"size"`
	Sample        []string `json:"sample"`
	InternalLinks int      `json:"internal_links"`
	ExternalLinks int      `json:"external_links"`
}

// Totals summarizes a Graph.
type Totals struct {
	Pages   int `json:"pages"`
	Links   int `json:"links"`
	Broken  int `json:"broken"`
	Orphans int `json:"orphans"`
	Silos   int `json:"silos"`
}

// Graph is the internal link snapshot written by Write.
type Graph struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Totals      Totals       `json:"totals"`
	Nodes       []Node       `json:"nodes"`
	Edges       []Edge       `json:"edges"`
	Broken      []BrokenLink `json:"broken"`
	Orphans     []string     `json:"orphans"`
	Silos       []Silo       `json:"silos"`
}

// Links returns every anchor href in document order.
func Links(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	var out []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		out = append(out, href)
	})
	return out, nil
}

// Internal reports the site path an href points at. Links to other hosts,
// non-http schemes and same-page fragments are not internal.
func Internal(href string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil || u.Scheme != "" || u.Host != "" || u.Opaque != "" {
		return "", false
	}
	if u.Path == "" || !strings.HasPrefix(u.Path, "/") {
		return "", false
	}
	return u.Path, true
}

// Build extracts internal links from pages. Targets in allow (for example
// /sitemap.xml) count as valid without being graph nodes.
func Build(pages []Page, allow ...string) (Graph, error) {
	index := make(map[string]int, len(pages))
	for i, p := range pages {
		if _, dup := index[p.Path]; dup {
			return Graph{}, fmt.Errorf("duplicate page %s", p.Path)
		}
		index[p.Path] = i
	}
	allowed := make(map[string]bool, len(allow))
	for _, a := range allow {
		allowed[a] = true
	}

	nodes := make([]Node, len(pages))
	var (
		edges  []Edge
		pairs  [][2]int
		broken []BrokenLink
	)
	for i, p := range pages {
		nodes[i].Path = p.Path
		hrefs, err := Links(bytes.NewReader(p.HTML))
		if err != nil {
			return Graph{}, fmt.Errorf("%s: %w", p.Path, err)
		}
		seen := make(map[int]bool)
		for _, href := range hrefs {
			target, ok := Internal(href)
			if !ok {
				continue
			}
			j, ok := index[target]
			if !ok {
				if !allowed[target] {
					broken = append(broken, BrokenLink{Source: p.Path, Href: href})
				}
				continue
			}
			if j == i || seen[j] {
				continue
			}
			seen[j] = true
			nodes[i].Outbound++
			nodes[j].Inbound++
			edges = append(edges, Edge{Source: p.Path, Target: target})
			pairs = append(pairs, [2]int{i, j})
		}
	}

	assign := communities(len(pages), pairs, 1.0)
	for i := range nodes {
		nodes[i].Silo = assign[i]
	}

	var orphans []string
	for _, n := range nodes {
		if n.Inbound == 0 && n.Path != "/" {
			orphans = append(orphans, n.Path)
		}
	}

	silos := summarizeSilos(nodes, pairs)
	return Graph{
		GeneratedAt: time.Now().UTC(),
		Totals: Totals{
			Pages:   len(nodes),
			Links:   len(edges),
			Broken:  len(broken),
			Orphans: len(orphans),
			Silos:   len(silos),
		},
		Nodes:   nodes,
		Edges:   edges,
		Broken:  broken,
		Orphans: orphans,
		Silos:   silos,
	}, nil
}

func summarizeSilos(nodes []Node, pairs [][2]int) []Silo {
	byID := make(map[int]*Silo)
	members := make(map[int][]Node)
	for _, n := range nodes {
		s := byID[n.Silo]
		if s == nil {
			s = &Silo{ID: n.Silo}
			byID[n.Silo] = s
		}
		s.Size++
		members[n.Silo] = append(members[n.Silo], n)
	}
	for _, p := range pairs {
		a, b := nodes[p[0]].Silo, nodes[p[1]].Silo
		if a == b {
			byID[a].InternalLinks++
			continue
		}
		byID[a].ExternalLinks++
		byID[b].ExternalLinks++
	}

	out := make([]Silo, 0, len(byID))
	for id, s := range byID {
		list := members[id]
		sort.Slice(list, func(i, j int) bool {
			if list[i].Inbound == list[j].Inbound {
				return list[i].Path < list[j].Path
			}
			return list[i].Inbound > list[j].Inbound
		})
		for _, n := range list[:min(len(list), maxSiloSample)] {
			s.Sample = append(s.Sample, n.Path)
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Size == out[j].Size {
			return out[i].ID < out[j].ID
		}
		return out[i].Size > out[j].Size
	})
	return out
}

// Write stores the graph as indented JSON, creating parent directories.
func Write(outPath string, g Graph) error {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}
