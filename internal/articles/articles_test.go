package articles

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"poolquotes/internal/catalog"
)

var (
	twoCityState = catalog.State{
		Slug: "nevada", Name: "Nevada", Abbreviation: "NV",
		Cities: []catalog.City{{Slug: "las-vegas", Name: "Las Vegas"}, {Slug: "henderson", Name: "Henderson"}},
	}
	fiveServices = []catalog.Service{
		{Slug: "pool-builder", Name: "Pool builder"},
		{Slug: "pool-repair", Name: "Pool Repair"},
		{Slug: "pool-cleaning", Name: "Pool Cleaning"},
		{Slug: "pool-resurfacing", Name: "Pool Resurfacing"},
		{Slug: "pool-remodeling", Name: "Pool Remodeling"},
	}
)

func TestExpandFallsBackForSmallStates(t *testing.T) {
	got, err := Expand("{CITY4_SERVICE4} and {CITY5_SERVICE5}", twoCityState, fiveServices)
	if err != nil {
		t.Fatalf("Expand() error: %v", err)
	}
	want := `<a href="/nevada/las-vegas/pool-resurfacing">Pool Resurfacing in Las Vegas</a> and ` +
		`<a href="/nevada/henderson/pool-remodeling">Pool Remodeling in Henderson</a>`
	if got != want {
		t.Fatalf("Expand() mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestExpandFailsOnMissingRank(t *testing.T) {
	_, err := Expand("see {CITY3_SERVICE3}", twoCityState, fiveServices)
	if !errors.Is(err, ErrUnresolvableToken) {
		t.Fatalf("Expand() error = %v, want ErrUnresolvableToken", err)
	}

	_, err = Expand("{CITY2_SERVICE2}", twoCityState, fiveServices[:1])
	if !errors.Is(err, ErrUnresolvableToken) {
		t.Fatalf("Expand() with one service error = %v, want ErrUnresolvableToken", err)
	}
}

func TestExpandLeavesUnknownTokens(t *testing.T) {
	body := "{FOO} then {STATE_LINK} then {CITY9_SERVICE9} and {lower}"
	got, err := Expand(body, twoCityState, fiveServices)
	if err != nil {
		t.Fatalf("Expand() error: %v", err)
	}
	want := `{FOO} then <a href="/nevada">Pool services in Nevada</a> then {CITY9_SERVICE9} and {lower}`
	if got != want {
		t.Fatalf("Expand() = %q, want %q", got, want)
	}
	if diff := cmp.Diff([]string{"{FOO}", "{CITY9_SERVICE9}"}, UnknownTokens(body+" {FOO}")); diff != "" {
		t.Fatalf("UnknownTokens mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandIsGlobalAndIdempotent(t *testing.T) {
	body := "{CITY1_STATE_LINK}, {CITY1_STATE_LINK}, {SERVICE2_STATE_LINK}"
	once, err := Expand(body, twoCityState, fiveServices)
	if err != nil {
		t.Fatalf("Expand() error: %v", err)
	}
	if n := strings.Count(once, `<a href="/nevada/las-vegas">Pool services in Las Vegas</a>`); n != 2 {
		t.Fatalf("city link replaced %d times, want 2: %s", n, once)
	}
	if !strings.Contains(once, `<a href="/nevada/henderson/pool-repair">Pool Repair in Nevada</a>`) {
		t.Fatalf("SERVICE2_STATE_LINK not expanded: %s", once)
	}

	twice, err := Expand(once, twoCityState, fiveServices)
	if err != nil {
		t.Fatalf("second Expand() error: %v", err)
	}
	if twice != once {
		t.Fatalf("Expand not idempotent:\n%s\n%s", once, twice)
	}
}

func TestExpandIsOrderIndependent(t *testing.T) {
	a, err := Expand("{STATE_LINK}{CITY2_STATE_LINK}{CITY1_SERVICE1}", twoCityState, fiveServices)
	if err != nil {
		t.Fatalf("Expand() error: %v", err)
	}
	b, err := Expand("{CITY1_SERVICE1}{CITY2_STATE_LINK}{STATE_LINK}", twoCityState, fiveServices)
	if err != nil {
		t.Fatalf("Expand() error: %v", err)
	}
	parts := func(s string) []string {
		out := strings.SplitAfter(s, "</a>")
		return out[:len(out)-1]
	}
	pa, pb := parts(a), parts(b)
	if len(pa) != 3 || pa[0] != pb[2] || pa[1] != pb[1] || pa[2] != pb[0] {
		t.Fatalf("expansions differ by order:\n%v\n%v", pa, pb)
	}
}

func TestLinkTextIsEscaped(t *testing.T) {
	st := catalog.State{Slug: "x", Name: "A & B", Cities: []catalog.City{{Slug: "c", Name: "C"}}}
	got, err := Expand("{STATE_LINK}", st, nil)
	if err != nil {
		t.Fatalf("Expand() error: %v", err)
	}
	if got != `<a href="/x">Pool services in A &amp; B</a>` {
		t.Fatalf("Expand() = %q", got)
	}
}

func TestRelatedLinks(t *testing.T) {
	links := RelatedLinks(twoCityState, fiveServices)
	// state link, ranks 1 and 2, ranks 4 and 5 by fallback; rank 3 is skipped.
	if len(links) != 5 {
		t.Fatalf("RelatedLinks = %v", links)
	}
	if links[0].Path != "/nevada" || links[3].Path != "/nevada/las-vegas/pool-resurfacing" {
		t.Fatalf("RelatedLinks = %v", links)
	}
}

func TestDefaultLibrary(t *testing.T) {
	lib, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if lib.Len() != 25 {
		t.Fatalf("Len() = %d, want 25", lib.Len())
	}
	if diff := cmp.Diff([]string{"florida", "texas", "california", "arizona", "nevada"}, lib.States()); diff != "" {
		t.Fatalf("States() mismatch (-want +got):\n%s", diff)
	}
	for _, st := range lib.States() {
		if n := len(lib.ForState(st)); n != 5 {
			t.Fatalf("ForState(%s) = %d articles, want 5", st, n)
		}
	}
	if lib.ForState("oregon") != nil {
		t.Fatalf("ForState(oregon) should be empty")
	}

	ref := lib.All()[0]
	a, err := lib.Find(ref.State, ref.Slug)
	if err != nil || a.State != "florida" {
		t.Fatalf("Find(%v) = %+v, %v", ref, a, err)
	}
	if _, err := lib.Find("florida", "nope"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("Find(florida, nope) error = %v, want ErrNotFound", err)
	}
	if _, err := lib.Find("nope", ref.Slug); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("Find(nope, ...) error = %v, want ErrNotFound", err)
	}
}

func TestShippedArticlesLintClean(t *testing.T) {
	lib, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error: %v", err)
	}
	if err := Bind(lib, cat); err != nil {
		t.Fatalf("Bind() error: %v", err)
	}
	if findings := lib.Lint(cat); len(findings) != 0 {
		t.Fatalf("unexpected findings: %v", findings)
	}

	st, _ := cat.FindState("florida")
	a := lib.ForState("florida")[0]
	body, err := a.Render(st, cat.Services())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.Contains(body, "{STATE_LINK}") || !strings.Contains(body, `href="/florida"`) {
		t.Fatalf("rendered article still carries tokens")
	}
}

func TestParseRejectsDuplicates(t *testing.T) {
	_, err := Parse([]byte(`[{state: "texas", articles: [{slug: "a"}, {slug: "a"}]}]`))
	if err == nil || !strings.Contains(err.Error(), "duplicate article slug") {
		t.Fatalf("Parse() error = %v, want duplicate article slug", err)
	}
}

func TestBindRejectsUnknownState(t *testing.T) {
	lib, err := Parse([]byte(`[{state: "oregon", articles: [{slug: "a"}]}]`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error: %v", err)
	}
	if err := Bind(lib, cat); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("Bind() error = %v, want ErrNotFound", err)
	}
}
