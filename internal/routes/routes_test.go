package routes

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"poolquotes/internal/articles"
	"poolquotes/internal/catalog"
)

func shipped(t *testing.T) (*catalog.Catalog, *articles.Library) {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error: %v", err)
	}
	lib, err := articles.Default()
	if err != nil {
		t.Fatalf("articles.Default() error: %v", err)
	}
	return cat, lib
}

func TestEnumerateShippedCatalog(t *testing.T) {
	cat, lib := shipped(t)
	keys := Enumerate(cat, lib)

	if want := 5 + 100 + 500 + 25; len(keys) != want {
		t.Fatalf("Enumerate() = %d keys, want %d", len(keys), want)
	}
	if len(keys) != Count(cat, lib) {
		t.Fatalf("Count() = %d, Enumerate() = %d", Count(cat, lib), len(keys))
	}

	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		p := k.Path()
		if seen[p] {
			t.Fatalf("duplicate path %s", p)
		}
		seen[p] = true
	}

	head := []Key{
		{Kind: State, State: "florida"},
		{Kind: City, State: "florida", City: "miami"},
		{Kind: ServiceInCity, State: "florida", City: "miami", Service: "pool-builder"},
	}
	if diff := cmp.Diff(head, keys[:3]); diff != "" {
		t.Fatalf("Enumerate() head mismatch (-want +got):\n%s", diff)
	}
	if last := keys[len(keys)-1]; last.Kind != Article || last.State != "nevada" {
		t.Fatalf("last key = %+v, want a nevada article", last)
	}
}

func TestEnumerateMinimalCatalog(t *testing.T) {
	cat, err := catalog.New(
		[]catalog.State{{Slug: "utah", Name: "Utah", Cities: []catalog.City{{Slug: "provo", Name: "Provo"}}}},
		[]catalog.Service{{Slug: "pool-repair", Name: "Pool Repair"}},
	)
	if err != nil {
		t.Fatalf("catalog.New() error: %v", err)
	}

	want := []Key{
		{Kind: State, State: "utah"},
		{Kind: City, State: "utah", City: "provo"},
		{Kind: ServiceInCity, State: "utah", City: "provo", Service: "pool-repair"},
	}
	if diff := cmp.Diff(want, Enumerate(cat, articles.Empty())); diff != "" {
		t.Fatalf("Enumerate() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, Enumerate(cat, nil)); diff != "" {
		t.Fatalf("Enumerate(nil library) mismatch (-want +got):\n%s", diff)
	}
	if n := len(Site(cat, nil)); n != 3+8 {
		t.Fatalf("Site() = %d keys, want 11", n)
	}
}

func TestSiteStartsWithFixedRoutes(t *testing.T) {
	cat, lib := shipped(t)
	site := Site(cat, lib)
	if site[0].Path() != "/" || site[1].Path() != "/services" || site[2].Path() != "/services/pool-builder" {
		t.Fatalf("Site() head = %v", site[:3])
	}
	if want := 2 + 5 + 5 + Count(cat, lib); len(site) != want {
		t.Fatalf("Site() = %d keys, want %d", len(site), want)
	}
}

func TestParseRoundTripsSite(t *testing.T) {
	cat, lib := shipped(t)
	for _, k := range Site(cat, lib) {
		got, ok := Parse(k.Path())
		if !ok {
			t.Fatalf("Parse(%q) failed", k.Path())
		}
		if got != k {
			t.Fatalf("Parse(%q) = %+v, want %+v", k.Path(), got, k)
		}
	}
}

func TestParseRejects(t *testing.T) {
	for _, p := range []string{"", "florida", "//", "/florida//miami", "/a/b/c/d", "/blog/florida", "/services/a/b", "/thank-you/x"} {
		if k, ok := Parse(p); ok {
			t.Fatalf("Parse(%q) = %+v, want rejection", p, k)
		}
	}
	if k, ok := Parse("/florida/miami/"); !ok || k.Kind != City {
		t.Fatalf("Parse with trailing slash = %+v, %v", k, ok)
	}
}

func TestCollisions(t *testing.T) {
	cat, _ := shipped(t)
	if got := Collisions(cat); len(got) != 0 {
		t.Fatalf("Collisions() = %v", got)
	}
	bad, err := catalog.New([]catalog.State{{Slug: "blog", Name: "Blog"}}, nil)
	if err != nil {
		t.Fatalf("catalog.New() error: %v", err)
	}
	if got := Collisions(bad); len(got) != 1 {
		t.Fatalf("Collisions() = %v, want [blog]", got)
	}
}

func TestKindString(t *testing.T) {
	if ServiceInCity.String() != "service-in-city" || Kind(99).String() != "unknown" {
		t.Fatalf("unexpected kind names")
	}
	if len(Kinds()) != 12 {
		t.Fatalf("Kinds() = %d", len(Kinds()))
	}
}
