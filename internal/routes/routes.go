package routes

import (
	"strings"

	"poolquotes/internal/articles"
	"poolquotes/internal/catalog"
)

// Kind identifies which page template a Key renders with.
type Kind int

const (
	Home Kind = iota
	Services
	ServiceDetail
	ServiceAreas
	State
	City
	ServiceInCity
	Blog
	Article
	Reviews
	Contact
	ThankYou
)

var kindNames = [...]string{
	Home:          "home",
	Services:      "services",
	ServiceDetail: "service-detail",
	ServiceAreas:  "service-areas",
	State:         "state",
	City:          "city",
	ServiceInCity: "service-in-city",
	Blog:          "blog",
	Article:       "article",
	Reviews:       "reviews",
	Contact:       "contact",
	ThankYou:      "thank-you",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Reserved first path segments. A state slug equal to one of these would be
// shadowed by the fixed route.
var Reserved = map[string]Kind{
	"services":      Services,
	"service-areas": ServiceAreas,
	"blog":          Blog,
	"reviews":       Reviews,
	"contact-us":    Contact,
	"thank-you":     ThankYou,
}

// Key is a derived page key. Only the fields relevant to Kind are set.
type Key struct {
	Kind    Kind
	State   string
	City    string
	Service string
	Article string
}

func (k Key) Path() string {
	switch k.Kind {
	case Home:
		return "/"
	case Services:
		return "/services"
	case ServiceDetail:
		return "/services/" + k.Service
	case ServiceAreas:
		return "/service-areas"
	case State:
		return "/" + k.State
	case City:
		return "/" + k.State + "/" + k.City
	case ServiceInCity:
		return "/" + k.State + "/" + k.City + "/" + k.Service
	case Blog:
		return "/blog"
	case Article:
		return "/blog/" + k.State + "/" + k.Article
	case Reviews:
		return "/reviews"
	case Contact:
		return "/contact-us"
	case ThankYou:
		return "/thank-you"
	default:
		return ""
	}
}

// Enumerate walks the catalog once: each state, its cities, and every city
// crossed with every service, followed by each state's articles.
func Enumerate(cat *catalog.Catalog, lib *articles.Library) []Key {
	services := cat.Services()
	keys := make([]Key, 0, Count(cat, lib))
	for _, st := range cat.States() {
		keys = append(keys, Key{Kind: State, State: st.Slug})
		for _, city := range st.Cities {
			keys = append(keys, Key{Kind: City, State: st.Slug, City: city.Slug})
			for _, svc := range services {
				keys = append(keys, Key{Kind: ServiceInCity, State: st.Slug, City: city.Slug, Service: svc.Slug})
			}
		}
	}
	if lib == nil {
		return keys
	}
	for _, ref := range lib.All() {
		keys = append(keys, Key{Kind: Article, State: ref.State, Article: ref.Slug})
	}
	return keys
}

// Site is every page the site serves: the fixed routes followed by
// Enumerate. Export, sitemap and validation all walk this list.
func Site(cat *catalog.Catalog, lib *articles.Library) []Key {
	keys := []Key{{Kind: Home}, {Kind: Services}}
	for _, svc := range cat.Services() {
		keys = append(keys, Key{Kind: ServiceDetail, Service: svc.Slug})
	}
	keys = append(keys,
		Key{Kind: ServiceAreas},
		Key{Kind: Blog},
		Key{Kind: Reviews},
		Key{Kind: Contact},
		Key{Kind: ThankYou},
	)
	return append(keys, Enumerate(cat, lib)...)
}

// Count is the size Enumerate must produce.
func Count(cat *catalog.Catalog, lib *articles.Library) int {
	states := cat.States()
	cities := 0
	for _, st := range states {
		cities += len(st.Cities)
	}
	n := len(states) + cities + cities*len(cat.Services())
	if lib != nil {
		n += lib.Len()
	}
	return n
}

// Parse maps a request path to the key it names, without checking that the
// slugs exist. A single trailing slash is tolerated.
func Parse(path string) (Key, bool) {
	if path == "/" {
		return Key{Kind: Home}, true
	}
	if !strings.HasPrefix(path, "/") {
		return Key{}, false
	}
	path = strings.TrimSuffix(path[1:], "/")
	segs := strings.Split(path, "/")
	for _, s := range segs {
		if s == "" {
			return Key{}, false
		}
	}

	if kind, ok := Reserved[segs[0]]; ok {
		switch {
		case len(segs) == 1:
			return Key{Kind: kind}, true
		case kind == Services && len(segs) == 2:
			return Key{Kind: ServiceDetail, Service: segs[1]}, true
		case kind == Blog && len(segs) == 3:
			return Key{Kind: Article, State: segs[1], Article: segs[2]}, true
		default:
			return Key{}, false
		}
	}

	switch len(segs) {
	case 1:
		return Key{Kind: State, State: segs[0]}, true
	case 2:
		return Key{Kind: City, State: segs[0], City: segs[1]}, true
	case 3:
		return Key{Kind: ServiceInCity, State: segs[0], City: segs[1], Service: segs[2]}, true
	default:
		return Key{}, false
	}
}

// Collisions lists state slugs shadowed by a fixed route.
func Collisions(cat *catalog.Catalog) []string {
	var out []string
	for _, st := range cat.States() {
		if _, ok := Reserved[st.Slug]; ok {
			out = append(out, st.Slug)
		}
	}
	return out
}
