package seo

import (
	"strings"

	"poolquotes/internal/articles"
	"poolquotes/internal/catalog"
	"poolquotes/internal/routes"
)

const (
	SiteName       = "PoolQuotesNow"
	DefaultBaseURL = "https://poolquotesnow.com"
)

// Meta is the head metadata of one page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
}

// Absolute joins base and an absolute site path.
func Absolute(base, path string) string {
	return strings.TrimSuffix(base, "/") + path
}

func suffixed(title string) string {
	return title + " - " + SiteName
}

func HomeMeta(base string) Meta {
	return Meta{
		Title:       SiteName + " - Find Pool Services Near You",
		Description: "Get quotes from trusted pool professionals for installation, repair, cleaning, resurfacing, and remodeling services.",
		Canonical:   Absolute(base, "/"),
	}
}

// FixedMeta covers the pages that take no slugs. Unknown kinds get the home
// description under a generic title.
func FixedMeta(base string, kind routes.Kind) Meta {
	path := routes.Key{Kind: kind}.Path()
	switch kind {
	case routes.Home:
		return HomeMeta(base)
	case routes.Services:
		return Meta{suffixed("Pool Services"), "Browse our pool services including installation, repair, cleaning, resurfacing, and remodeling. Get quotes from trusted professionals.", Absolute(base, path)}
	case routes.ServiceAreas:
		return Meta{suffixed("Service Areas"), "Find pool services in cities across every state we cover. Browse our service areas to find trusted pool professionals near you.", Absolute(base, path)}
	case routes.Blog:
		return Meta{suffixed("Pool Blog"), "Expert pool advice, maintenance tips, and state-specific guides for pool owners.", Absolute(base, path)}
	case routes.Reviews:
		return Meta{suffixed("Reviews"), "Read reviews from satisfied customers who found trusted pool professionals through " + SiteName + ".", Absolute(base, path)}
	case routes.Contact:
		return Meta{suffixed("Contact Us"), "Get in touch with us to find trusted pool professionals in your area.", Absolute(base, path)}
	case routes.ThankYou:
		return Meta{suffixed("Thank You"), "Thank you for requesting a quote. We'll connect you with trusted pool professionals in your area.", Absolute(base, path)}
	default:
		return Meta{Title: SiteName, Description: HomeMeta(base).Description, Canonical: Absolute(base, path)}
	}
}

func ServiceDetailMeta(base string, svc catalog.Service) Meta {
	return Meta{
		Title:       suffixed(svc.Name),
		Description: "Get quotes for " + strings.ToLower(svc.Name) + " from trusted pool professionals. " + svc.Description + ".",
		Canonical:   Absolute(base, routes.Key{Kind: routes.ServiceDetail, Service: svc.Slug}.Path()),
	}
}

func StateMeta(base string, st catalog.State) Meta {
	return Meta{
		Title:       suffixed("Pool Services in " + st.Name),
		Description: "Find trusted pool professionals in " + st.Name + ". Get quotes for pool installation, repair, cleaning, resurfacing, and remodeling services in " + st.Name + ".",
		Canonical:   Absolute(base, routes.Key{Kind: routes.State, State: st.Slug}.Path()),
	}
}

func CityMeta(base string, st catalog.State, city catalog.City) Meta {
	return Meta{
		Title:       suffixed("Pool Services in " + city.Name + ", " + st.Abbreviation),
		Description: "Find trusted pool professionals in " + city.Name + ", " + st.Name + ". Get quotes for pool installation, repair, cleaning, resurfacing, and remodeling services.",
		Canonical:   Absolute(base, routes.Key{Kind: routes.City, State: st.Slug, City: city.Slug}.Path()),
	}
}

func ServiceInCityMeta(base string, st catalog.State, city catalog.City, svc catalog.Service) Meta {
	return Meta{
		Title: suffixed(svc.Name + " in " + city.Name + ", " + st.Abbreviation),
		Description: "Get quotes for " + strings.ToLower(svc.Name) + " in " + city.Name + ", " + st.Name +
			". Find trusted pool professionals for " + strings.ToLower(svc.Description) + ".",
		Canonical: Absolute(base, routes.Key{Kind: routes.ServiceInCity, State: st.Slug, City: city.Slug, Service: svc.Slug}.Path()),
	}
}

// ArticleMeta uses the article's own meta title, which already carries
// whatever branding the author chose.
func ArticleMeta(base string, a articles.Article) Meta {
	return Meta{
		Title:       a.MetaTitle,
		Description: a.MetaDescription,
		Canonical:   Absolute(base, routes.Key{Kind: routes.Article, State: a.State, Article: a.Slug}.Path()),
	}
}

func NotFoundMeta() Meta {
	return Meta{
		Title:       suffixed("Page Not Found"),
		Description: "The requested page could not be found.",
	}
}
