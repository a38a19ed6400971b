package articles

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"

	"poolquotes/internal/catalog"
)

// ErrUnresolvableToken is returned when a recognized token asks for a city
// or service rank the state cannot provide.
var ErrUnresolvableToken = errors.New("unresolvable link token")

var tokenPattern = regexp.MustCompile(`\{[A-Z0-9_]+\}`)

// tokenRule describes what a token links to. Ranks are 1-based; a zero city
// rank means the state page.
type tokenRule struct {
	city      int
	service   int
	stateText bool
}

var tokenRules = map[string]tokenRule{
	"{STATE_LINK}":          {},
	"{CITY1_STATE_LINK}":    {city: 1},
	"{CITY2_STATE_LINK}":    {city: 2},
	"{CITY1_SERVICE1}":      {city: 1, service: 1},
	"{CITY2_SERVICE2}":      {city: 2, service: 2},
	"{CITY3_SERVICE3}":      {city: 3, service: 3},
	"{CITY4_SERVICE4}":      {city: 4, service: 4},
	"{CITY5_SERVICE5}":      {city: 5, service: 5},
	"{SERVICE1_STATE_LINK}": {city: 1, service: 1, stateText: true},
	"{SERVICE2_STATE_LINK}": {city: 2, service: 2, stateText: true},
}

// cityFallback maps a missing city rank to the rank used in its place.
var cityFallback = map[int]int{4: 1, 5: 2}

// Link is an internal anchor produced by token expansion.
type Link struct {
	Path string
	Text string
}

func (l Link) HTML() string {
	return `<a href="` + html.EscapeString(l.Path) + `">` + html.EscapeString(l.Text) + `</a>`
}

// Known reports whether token (including braces) is in the fixed table.
func Known(token string) bool {
	_, ok := tokenRules[token]
	return ok
}

// Expand replaces every recognized token in body with its link in a single
// pass. Unrecognized tokens are left untouched.
func Expand(body string, st catalog.State, services []catalog.Service) (string, error) {
	var firstErr error
	out := tokenPattern.ReplaceAllStringFunc(body, func(tok string) string {
		rule, ok := tokenRules[tok]
		if !ok {
			return tok
		}
		link, err := rule.resolve(st, services)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s in %s: %w", tok, st.Slug, err)
			}
			return tok
		}
		return link.HTML()
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

// UnknownTokens lists, in first-seen order, the brace tokens in body that are
// not in the fixed table.
func UnknownTokens(body string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, tok := range tokenPattern.FindAllString(body, -1) {
		if Known(tok) || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

// RelatedLinks is the state link followed by rank-i city with rank-i service
// for i in 1..5. Ranks that cannot be resolved are skipped.
func RelatedLinks(st catalog.State, services []catalog.Service) []Link {
	links := []Link{stateLink(st)}
	for i := 1; i <= 5; i++ {
		link, err := tokenRule{city: i, service: i}.resolve(st, services)
		if err != nil {
			continue
		}
		links = append(links, link)
	}
	return links
}

func stateLink(st catalog.State) Link {
	return Link{Path: "/" + st.Slug, Text: "Pool services in " + st.Name}
}

func (r tokenRule) resolve(st catalog.State, services []catalog.Service) (Link, error) {
	if r.city == 0 {
		return stateLink(st), nil
	}

	city, err := cityAt(st, r.city)
	if err != nil {
		return Link{}, err
	}
	if r.service == 0 {
		return Link{
			Path: "/" + st.Slug + "/" + city.Slug,
			Text: "Pool services in " + city.Name,
		}, nil
	}

	if r.service > len(services) {
		return Link{}, fmt.Errorf("service rank %d of %d: %w", r.service, len(services), ErrUnresolvableToken)
	}
	svc := services[r.service-1]
	place := city.Name
	if r.stateText {
		place = st.Name
	}
	return Link{
		Path: strings.Join([]string{"", st.Slug, city.Slug, svc.Slug}, "/"),
		Text: svc.Name + " in " + place,
	}, nil
}

func cityAt(st catalog.State, rank int) (catalog.City, error) {
	if rank > len(st.Cities) {
		if fb, ok := cityFallback[rank]; ok {
			rank = fb
		}
	}
	if rank > len(st.Cities) {
		return catalog.City{}, fmt.Errorf("city rank %d of %d: %w", rank, len(st.Cities), ErrUnresolvableToken)
	}
	return st.Cities[rank-1], nil
}
