package app

import (
	"bytes"
	"fmt"
	"html/template"

	"poolquotes/internal/articles"
	"poolquotes/internal/catalog"
	"poolquotes/internal/content"
	"poolquotes/internal/routes"
	"poolquotes/internal/seo"
)

// Renderer turns page keys into HTML. It holds no mutable state and is safe
// for concurrent use.
type Renderer struct {
	site Site
	tmpl *template.Template
}

// leadForm drives the "leadform" template. ThankYou is an absolute URL so a
// relay redirects back to this site rather than its own host.
type leadForm struct {
	Action    string
	AccessKey string
	Relay     bool
	ThankYou  string
	Source    string
	Service   string
	Location  string
	Services  []catalog.Service
	Error     string
	Values    Lead
}

type pageData struct {
	Meta   seo.Meta
	JSONLD template.JS
	Form   *leadForm
	Body   any
}

type homeBody struct {
	Services []catalog.Service
	States   []catalog.State
	Reviews  []Review
}

type serviceDetailBody struct {
	Service  catalog.Service
	Overview content.ServiceOverviewContent
	States   []catalog.State
}

type stateBody struct {
	State    catalog.State
	Content  content.StateContent
	Services []catalog.Service
	Articles []articles.Article
}

type cityBody struct {
	State    catalog.State
	City     catalog.City
	Content  content.CityContent
	Services []catalog.Service
}

type serviceInCityBody struct {
	State   catalog.State
	City    catalog.City
	Service catalog.Service
	Content content.ServiceInCityContent
	Others  []catalog.Service
	Nearby  []catalog.City
}

type blogGroup struct {
	State    catalog.State
	Articles []articles.Article
}

type articleBody struct {
	State   catalog.State
	Article articles.Article
	HTML    template.HTML
	Related []articles.Link
}

func NewRenderer(site Site) (*Renderer, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{site: site, tmpl: tmpl}, nil
}

// Site returns the data the renderer was built from.
func (r *Renderer) Site() Site {
	return r.site
}

// Render resolves every slug in k and renders the page. Lookup failures wrap
// catalog.ErrNotFound.
func (r *Renderer) Render(k routes.Key) ([]byte, error) {
	name, data, err := r.page(k)
	if err != nil {
		return nil, err
	}
	return r.execute(name, data)
}

func (r *Renderer) page(k routes.Key) (string, pageData, error) {
	base := r.site.BaseURL
	cat := r.site.Catalog
	org := seo.Organization(base)

	switch k.Kind {
	case routes.Home:
		body := homeBody{Services: cat.Services(), States: cat.States(), Reviews: r.site.Reviews}
		if len(body.Reviews) > 3 {
			body.Reviews = body.Reviews[:3]
		}
		return r.assemble("home.gohtml", k, seo.HomeMeta(base), body, nil, org, seo.WebSite(base))

	case routes.Services:
		return r.assemble("services.gohtml", k, seo.FixedMeta(base, k.Kind), cat.Services(), nil,
			seo.Breadcrumbs(base, catalog.State{}, catalog.City{}, catalog.Service{}), org, seo.WebSite(base))

	case routes.ServiceDetail:
		svc, err := cat.FindService(k.Service)
		if err != nil {
			return "", pageData{}, err
		}
		overview := content.ServiceOverview(svc)
		body := serviceDetailBody{Service: svc, Overview: overview, States: cat.States()}
		form := r.form(k, svc.Name, "")
		return r.assemble("service.gohtml", k, seo.ServiceDetailMeta(base, svc), body, form,
			seo.Breadcrumbs(base, catalog.State{}, catalog.City{}, catalog.Service{}), org, seo.WebSite(base), seo.FAQPage(overview.FAQs))

	case routes.ServiceAreas:
		return r.assemble("service_areas.gohtml", k, seo.FixedMeta(base, k.Kind), cat.States(), nil, org, seo.WebSite(base))

	case routes.State:
		st, err := cat.FindState(k.State)
		if err != nil {
			return "", pageData{}, err
		}
		sc := content.StatePage(st)
		body := stateBody{State: st, Content: sc, Services: cat.Services(), Articles: r.site.Articles.ForState(st.Slug)}
		form := r.form(k, "", st.Name)
		return r.assemble("state.gohtml", k, seo.StateMeta(base, st), body, form,
			seo.Breadcrumbs(base, st, catalog.City{}, catalog.Service{}), org, seo.StateService(st, r.site.Geo), seo.FAQPage(sc.FAQs))

	case routes.City:
		st, city, err := r.city(k)
		if err != nil {
			return "", pageData{}, err
		}
		cc := content.CityPage(st, city)
		body := cityBody{State: st, City: city, Content: cc, Services: cat.Services()}
		form := r.form(k, "", city.Name+", "+st.Abbreviation)
		return r.assemble("city.gohtml", k, seo.CityMeta(base, st, city), body, form,
			seo.Breadcrumbs(base, st, city, catalog.Service{}), org, seo.FAQPage(cc.FAQs))

	case routes.ServiceInCity:
		st, city, err := r.city(k)
		if err != nil {
			return "", pageData{}, err
		}
		svc, err := cat.FindService(k.Service)
		if err != nil {
			return "", pageData{}, err
		}
		sic := content.ServiceInCity(st, city, svc)
		body := serviceInCityBody{
			State: st, City: city, Service: svc, Content: sic,
			Others: otherServices(cat.Services(), svc.Slug),
			Nearby: nearbyCities(st, city.Slug, 5),
		}
		form := r.form(k, svc.Name, city.Name+", "+st.Abbreviation)
		return r.assemble("service_in_city.gohtml", k, seo.ServiceInCityMeta(base, st, city, svc), body, form,
			seo.Breadcrumbs(base, st, city, svc), org, seo.CityService(st, city, svc, r.site.Geo), seo.FAQPage(sic.FAQs))

	case routes.Blog:
		var groups []blogGroup
		for _, slug := range r.site.Articles.States() {
			st, err := cat.FindState(slug)
			if err != nil {
				return "", pageData{}, err
			}
			groups = append(groups, blogGroup{State: st, Articles: r.site.Articles.ForState(slug)})
		}
		return r.assemble("blog.gohtml", k, seo.FixedMeta(base, k.Kind), groups, nil, org, seo.WebSite(base))

	case routes.Article:
		st, err := cat.FindState(k.State)
		if err != nil {
			return "", pageData{}, err
		}
		a, err := r.site.Articles.Find(k.State, k.Article)
		if err != nil {
			return "", pageData{}, err
		}
		html, err := a.Render(st, cat.Services())
		if err != nil {
			return "", pageData{}, err
		}
		body := articleBody{State: st, Article: a, HTML: template.HTML(html), Related: articles.RelatedLinks(st, cat.Services())}
		form := r.form(k, "", st.Name)
		return r.assemble("article.gohtml", k, seo.ArticleMeta(base, a), body, form,
			seo.Breadcrumbs(base, st, catalog.City{}, catalog.Service{}), org, seo.FAQPage(a.FAQs))

	case routes.Reviews:
		return r.assemble("reviews.gohtml", k, seo.FixedMeta(base, k.Kind), r.site.Reviews, nil, org, seo.WebSite(base))

	case routes.Contact:
		return r.assemble("contact.gohtml", k, seo.FixedMeta(base, k.Kind), nil, nil, org)

	case routes.ThankYou:
		data, err := r.data(seo.FixedMeta(base, k.Kind), nil, nil, org)
		return "thank_you.gohtml", data, err

	default:
		return "", pageData{}, fmt.Errorf("page kind %s: %w", k.Kind, catalog.ErrNotFound)
	}
}

func (r *Renderer) city(k routes.Key) (catalog.State, catalog.City, error) {
	st, err := r.site.Catalog.FindState(k.State)
	if err != nil {
		return catalog.State{}, catalog.City{}, err
	}
	city, err := r.site.Catalog.FindCity(k.State, k.City)
	if err != nil {
		return catalog.State{}, catalog.City{}, err
	}
	return st, city, nil
}

// assemble attaches the lead form (a default one when form is nil) and the
// JSON-LD payload.
func (r *Renderer) assemble(name string, k routes.Key, meta seo.Meta, body any, form *leadForm, docs ...any) (string, pageData, error) {
	if form == nil {
		form = r.form(k, "", "")
	}
	data, err := r.data(meta, body, form, docs...)
	return name, data, err
}

func (r *Renderer) data(meta seo.Meta, body any, form *leadForm, docs ...any) (pageData, error) {
	js, err := seo.Script(docs...)
	if err != nil {
		return pageData{}, err
	}
	return pageData{Meta: meta, JSONLD: js, Form: form, Body: body}, nil
}

func (r *Renderer) form(k routes.Key, service, location string) *leadForm {
	return &leadForm{
		Action:    r.site.Form.Action,
		AccessKey: r.site.Form.AccessKey,
		Relay:     r.site.Form.Action != contactPath,
		ThankYou:  seo.Absolute(r.site.BaseURL, thankYouPath),
		Source:    k.Path(),
		Service:   service,
		Location:  location,
		Services:  r.site.Catalog.Services(),
	}
}

const contactPath = "/contact-us"

// RenderContact re-renders the contact page with the submitted values and an
// inline error.
func (r *Renderer) RenderContact(values Lead, message string) ([]byte, error) {
	k := routes.Key{Kind: routes.Contact}
	form := r.form(k, values.Service, values.Location)
	form.Values = values
	form.Error = message
	if values.SourcePath != "" {
		form.Source = values.SourcePath
	}
	_, data, err := r.assemble("contact.gohtml", k, seo.FixedMeta(r.site.BaseURL, k.Kind), nil, form, seo.Organization(r.site.BaseURL))
	if err != nil {
		return nil, err
	}
	return r.execute("contact.gohtml", data)
}

// RenderNotFound renders the generic page served with 404.
func (r *Renderer) RenderNotFound() ([]byte, error) {
	data, err := r.data(seo.NotFoundMeta(), nil, nil, seo.Organization(r.site.BaseURL))
	if err != nil {
		return nil, err
	}
	return r.execute("not_found.gohtml", data)
}

func (r *Renderer) execute(name string, data pageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func otherServices(all []catalog.Service, except string) []catalog.Service {
	out := make([]catalog.Service, 0, len(all))
	for _, svc := range all {
		if svc.Slug != except {
			out = append(out, svc)
		}
	}
	return out
}

// nearbyCities returns up to n other cities of the state, top cities first.
func nearbyCities(st catalog.State, except string, n int) []catalog.City {
	var out []catalog.City
	for _, c := range st.Cities {
		if len(out) == n {
			break
		}
		if c.Slug != except {
			out = append(out, c)
		}
	}
	return out
}
