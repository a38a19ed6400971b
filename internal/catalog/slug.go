package catalog

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// CanonicalSlug derives the URL slug a display name should carry:
// diacritics folded, letters and digits lowercased, every other run of
// characters collapsed to one hyphen. Apostrophes and periods are dropped
// without leaving a separator ("St. Petersburg" -> "st-petersburg").
func CanonicalSlug(name string) string {
	folded, _, err := transform.String(diacriticStripper, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range folded {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(unicode.ToLower(r))
		case r == '\'' || r == '.' || r == '’':
			// dropped in place
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}

// Finding is a non-fatal observation about catalog data.
type Finding struct {
	Where   string
	Message string
}

func (f Finding) String() string {
	return f.Where + ": " + f.Message
}

// Lint reports data that loads fine but probably is an authoring mistake.
func (c *Catalog) Lint() []Finding {
	var out []Finding
	check := func(where, slug, name string) {
		if want := CanonicalSlug(name); want != slug {
			out = append(out, Finding{
				Where:   where,
				Message: fmt.Sprintf("slug %q differs from canonical %q for %q", slug, want, name),
			})
		}
	}

	for _, svc := range c.services {
		check("service "+svc.Slug, svc.Slug, svc.Name)
	}
	for _, st := range c.states {
		check("state "+st.Slug, st.Slug, st.Name)
		if len(st.Cities) == 0 {
			out = append(out, Finding{Where: "state " + st.Slug, Message: "has no cities"})
		}
		for _, city := range st.Cities {
			check("city "+st.Slug+"/"+city.Slug, city.Slug, city.Name)
		}
	}
	return out
}
