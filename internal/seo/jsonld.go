package seo

import (
	"encoding/json"
	"fmt"
	"html/template"

	"poolquotes/internal/catalog"
	"poolquotes/internal/content"
)

const schemaContext = "https://schema.org"

type organization struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Logo        string   `json:"logo"`
	Description string   `json:"description"`
	SameAs      []string `json:"sameAs"`
}

func Organization(base string) any {
	return organization{
		Context:     schemaContext,
		Type:        "Organization",
		Name:        SiteName,
		URL:         Absolute(base, ""),
		Logo:        Absolute(base, "/logo.png"),
		Description: "Find trusted pool professionals for installation, repair, cleaning, resurfacing, and remodeling services.",
		SameAs:      []string{},
	}
}

type searchAction struct {
	Type       string `json:"@type"`
	Target     string `json:"target"`
	QueryInput string `json:"query-input"`
}

type website struct {
	Context         string       `json:"@context"`
	Type            string       `json:"@type"`
	Name            string       `json:"name"`
	URL             string       `json:"url"`
	PotentialAction searchAction `json:"potentialAction"`
}

func WebSite(base string) any {
	return website{
		Context: schemaContext,
		Type:    "WebSite",
		Name:    SiteName,
		URL:     Absolute(base, ""),
		PotentialAction: searchAction{
			Type:       "SearchAction",
			Target:     Absolute(base, "/search?q={search_term_string}"),
			QueryInput: "required name=search_term_string",
		},
	}
}

// Crumb is one breadcrumb level; Path is site-absolute.
type Crumb struct {
	Name string
	Path string
}

type listItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

type breadcrumbList struct {
	Context string     `json:"@context"`
	Type    string     `json:"@type"`
	Items   []listItem `json:"itemListElement"`
}

// Breadcrumbs builds Home followed by whichever of state, city and service
// are set. Zero-valued levels are omitted.
func Breadcrumbs(base string, st catalog.State, city catalog.City, svc catalog.Service) any {
	crumbs := []Crumb{{Name: "Home", Path: ""}}
	if st.Slug != "" {
		crumbs = append(crumbs, Crumb{Name: st.Name, Path: "/" + st.Slug})
		if city.Slug != "" {
			crumbs = append(crumbs, Crumb{Name: city.Name, Path: "/" + st.Slug + "/" + city.Slug})
			if svc.Slug != "" {
				crumbs = append(crumbs, Crumb{Name: svc.Name, Path: "/" + st.Slug + "/" + city.Slug + "/" + svc.Slug})
			}
		}
	}

	doc := breadcrumbList{Context: schemaContext, Type: "BreadcrumbList", Items: make([]listItem, len(crumbs))}
	for i, c := range crumbs {
		doc.Items[i] = listItem{Type: "ListItem", Position: i + 1, Name: c.Name, Item: Absolute(base, c.Path)}
	}
	return doc
}

type answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

type question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer answer `json:"acceptedAnswer"`
}

type faqPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []question `json:"mainEntity"`
}

func FAQPage(faqs []content.FAQ) any {
	doc := faqPage{Context: schemaContext, Type: "FAQPage", MainEntity: make([]question, len(faqs))}
	for i, f := range faqs {
		doc.MainEntity[i] = question{
			Type:           "Question",
			Name:           f.Question,
			AcceptedAnswer: answer{Type: "Answer", Text: f.Answer},
		}
	}
	return doc
}

type geoCoordinates struct {
	Type      string  `json:"@type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type place struct {
	Type        string          `json:"@type"`
	Name        string          `json:"name"`
	Geo         *geoCoordinates `json:"geo,omitempty"`
	ContainedIn *place          `json:"containedIn,omitempty"`
}

type provider struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type serviceDoc struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	AreaServed  place    `json:"areaServed"`
	Provider    provider `json:"provider"`
}

func coordinates(p catalog.Point, ok bool) *geoCoordinates {
	if !ok {
		return nil
	}
	return &geoCoordinates{Type: "GeoCoordinates", Latitude: p.Lat, Longitude: p.Lng}
}

// StateService describes the pool services offered across a state. geo may
// be nil; a missing entry only drops the geo property.
func StateService(st catalog.State, geo *catalog.Geo) any {
	p, ok := geo.State(st.Name)
	return serviceDoc{
		Context:     schemaContext,
		Type:        "Service",
		Name:        "Pool Services in " + st.Name,
		Description: "Pool installation, repair, cleaning, resurfacing, and remodeling services in " + st.Name + ".",
		AreaServed:  place{Type: "State", Name: st.Name, Geo: coordinates(p, ok)},
		Provider:    provider{Type: "LocalBusiness", Name: SiteName},
	}
}

func CityService(st catalog.State, city catalog.City, svc catalog.Service, geo *catalog.Geo) any {
	p, ok := geo.City(st.Name, city.Name)
	return serviceDoc{
		Context:     schemaContext,
		Type:        "Service",
		Name:        svc.Name + " in " + city.Name + ", " + st.Name,
		Description: svc.Description,
		AreaServed: place{
			Type:        "City",
			Name:        city.Name,
			Geo:         coordinates(p, ok),
			ContainedIn: &place{Type: "State", Name: st.Name},
		},
		Provider: provider{Type: "LocalBusiness", Name: SiteName},
	}
}

// Script encodes docs as one JSON array for a ld+json script element.
// encoding/json escapes <, > and & so the payload cannot close the element.
func Script(docs ...any) (template.JS, error) {
	b, err := json.Marshal(docs)
	if err != nil {
		return "", fmt.Errorf("encode json-ld: %w", err)
	}
	return template.JS(b), nil
}
