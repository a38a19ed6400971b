package app

import (
	"embed"
	"html/template"

	"poolquotes/internal/routes"
)

// templateFS contains the HTML templates bundled with the binary.
//
//go:embed templates/*
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"statePath": func(state string) string {
		return routes.Key{Kind: routes.State, State: state}.Path()
	},
	"cityPath": func(state, city string) string {
		return routes.Key{Kind: routes.City, State: state, City: city}.Path()
	},
	"servicePath": func(state, city, service string) string {
		return routes.Key{Kind: routes.ServiceInCity, State: state, City: city, Service: service}.Path()
	},
	"serviceDetailPath": func(service string) string {
		return routes.Key{Kind: routes.ServiceDetail, Service: service}.Path()
	},
	"articlePath": func(state, article string) string {
		return routes.Key{Kind: routes.Article, State: state, Article: article}.Path()
	},
}

func parseTemplates() (*template.Template, error) {
	return template.New("base").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.gohtml")
}
