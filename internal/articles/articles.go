package articles

import (
	_ "embed"
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/titanous/json5"

	"poolquotes/internal/catalog"
	"poolquotes/internal/content"
)

//go:embed data/articles.json5
var articlesJSON []byte

// Section is one headed block of an article body.
type Section struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Article is one long-form guide owned by a single state. Text fields are
// plain text that may carry link tokens.
type Article struct {
	State           string        `json:"-"`
	Slug            string        `json:"slug"`
	Title           string        `json:"title"`
	MetaTitle       string        `json:"meta_title"`
	MetaDescription string        `json:"meta_description"`
	Heading         string        `json:"heading"`
	Intro           string        `json:"intro"`
	Sections        []Section     `json:"sections"`
	FAQs            []content.FAQ `json:"faqs"`
	CTA             string        `json:"cta"`
}

// Template composes the article body as HTML. Text is escaped; tokens survive
// escaping untouched so Expand can run over the result.
func (a Article) Template(stateName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(a.Heading))
	fmt.Fprintf(&b, "<p class=\"intro\">%s</p>\n", html.EscapeString(a.Intro))
	for _, s := range a.Sections {
		fmt.Fprintf(&b, "<section>\n<h2>%s</h2>\n<p>%s</p>\n</section>\n", html.EscapeString(s.Heading), html.EscapeString(s.Body))
	}
	if len(a.FAQs) > 0 {
		fmt.Fprintf(&b, "<section class=\"faqs\">\n<h2>Frequently Asked Questions in %s</h2>\n", html.EscapeString(stateName))
		for _, f := range a.FAQs {
			fmt.Fprintf(&b, "<h3>%s</h3>\n<p>%s</p>\n", html.EscapeString(f.Question), html.EscapeString(f.Answer))
		}
		b.WriteString("</section>\n")
	}
	if a.CTA != "" {
		fmt.Fprintf(&b, "<p class=\"cta\">%s</p>\n", html.EscapeString(a.CTA))
	}
	return b.String()
}

// Render composes and expands the article for its owning state.
func (a Article) Render(st catalog.State, services []catalog.Service) (string, error) {
	body, err := Expand(a.Template(st.Name), st, services)
	if err != nil {
		return "", fmt.Errorf("article %s/%s: %w", a.State, a.Slug, err)
	}
	return body, nil
}

// Ref names an article by owning state and slug.
type Ref struct {
	State string
	Slug  string
}

type group struct {
	State    string    `json:"state"`
	Articles []Article `json:"articles"`
}

// Library holds the guides grouped by owning state, in document order.
type Library struct {
	groups []group
	idx    map[string]map[string]int
}

var loadDefault = sync.OnceValues(func() (*Library, error) {
	return Parse(articlesJSON)
})

// Default returns the embedded library, parsed once per process.
func Default() (*Library, error) {
	return loadDefault()
}

// Parse decodes a json5 article library grouped by owning state.
func Parse(data []byte) (*Library, error) {
	var groups []group
	if err := json5.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}
	return newLibrary(groups)
}

// Empty returns a library with no articles.
func Empty() *Library {
	return &Library{idx: map[string]map[string]int{}}
}

func newLibrary(groups []group) (*Library, error) {
	lib := &Library{idx: make(map[string]map[string]int, len(groups))}
	for _, g := range groups {
		if g.State == "" {
			return nil, fmt.Errorf("article group with empty state")
		}
		if _, dup := lib.idx[g.State]; dup {
			return nil, fmt.Errorf("duplicate article group for state %q", g.State)
		}
		slugs := make(map[string]int, len(g.Articles))
		list := make([]Article, len(g.Articles))
		for i, a := range g.Articles {
			if a.Slug == "" {
				return nil, fmt.Errorf("state %s: article %q has empty slug", g.State, a.Title)
			}
			if _, dup := slugs[a.Slug]; dup {
				return nil, fmt.Errorf("state %s: duplicate article slug %q", g.State, a.Slug)
			}
			a.State = g.State
			slugs[a.Slug] = i
			list[i] = a
		}
		lib.idx[g.State] = slugs
		lib.groups = append(lib.groups, group{State: g.State, Articles: list})
	}
	return lib, nil
}

// Bind checks that every owning state exists in the catalog.
func Bind(lib *Library, cat *catalog.Catalog) error {
	for _, g := range lib.groups {
		if _, err := cat.FindState(g.State); err != nil {
			return fmt.Errorf("articles owned by unknown state: %w", err)
		}
	}
	return nil
}

// ForState returns the state's articles in document order; nil when the
// state owns none.
func (l *Library) ForState(stateSlug string) []Article {
	for _, g := range l.groups {
		if g.State == stateSlug {
			return append([]Article(nil), g.Articles...)
		}
	}
	return nil
}

// Find returns one article of a state; misses wrap catalog.ErrNotFound.
func (l *Library) Find(stateSlug, articleSlug string) (Article, error) {
	slugs, ok := l.idx[stateSlug]
	if !ok {
		return Article{}, fmt.Errorf("articles for %q: %w", stateSlug, catalog.ErrNotFound)
	}
	i, ok := slugs[articleSlug]
	if !ok {
		return Article{}, fmt.Errorf("article %q in %s: %w", articleSlug, stateSlug, catalog.ErrNotFound)
	}
	for _, g := range l.groups {
		if g.State == stateSlug {
			return g.Articles[i], nil
		}
	}
	return Article{}, fmt.Errorf("article %q in %s: %w", articleSlug, stateSlug, catalog.ErrNotFound)
}

// States lists the owning states in document order.
func (l *Library) States() []string {
	out := make([]string, len(l.groups))
	for i, g := range l.groups {
		out[i] = g.State
	}
	return out
}

// All lists every article in library order.
func (l *Library) All() []Ref {
	var out []Ref
	for _, g := range l.groups {
		for _, a := range g.Articles {
			out = append(out, Ref{State: g.State, Slug: a.Slug})
		}
	}
	return out
}

// Len is the total number of articles.
func (l *Library) Len() int {
	n := 0
	for _, g := range l.groups {
		n += len(g.Articles)
	}
	return n
}

// Lint reports unknown tokens and tokens that cannot be resolved against the
// owning state.
func (l *Library) Lint(cat *catalog.Catalog) []catalog.Finding {
	var findings []catalog.Finding
	services := cat.Services()
	for _, g := range l.groups {
		st, err := cat.FindState(g.State)
		if err != nil {
			findings = append(findings, catalog.Finding{Where: "articles/" + g.State, Message: err.Error()})
			continue
		}
		for _, a := range g.Articles {
			where := "articles/" + g.State + "/" + a.Slug
			body := a.Template(st.Name)
			for _, tok := range UnknownTokens(body) {
				findings = append(findings, catalog.Finding{Where: where, Message: "unknown token " + tok})
			}
			if _, err := Expand(body, st, services); err != nil {
				findings = append(findings, catalog.Finding{Where: where, Message: err.Error()})
			}
		}
	}
	return findings
}
