package app

import (
	_ "embed"
	"fmt"

	"github.com/titanous/json5"

	"poolquotes/internal/articles"
	"poolquotes/internal/catalog"
)

//go:embed data/reviews.json5
var reviewsJSON []byte

// Review is a customer testimonial.
type Review struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Service  string `json:"service"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// Stars renders the rating as filled and empty stars.
func (r Review) Stars() string {
	out := make([]rune, 5)
	for i := range out {
		out[i] = '☆'
		if i < r.Rating {
			out[i] = '★'
		}
	}
	return string(out)
}

func parseReviews(data []byte) ([]Review, error) {
	var out []Review
	if err := json5.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	for i, r := range out {
		if r.Rating < 1 || r.Rating > 5 {
			return nil, fmt.Errorf("review %d (%s): rating %d out of range", i, r.Name, r.Rating)
		}
	}
	return out, nil
}

// FormConfig controls where the lead form posts.
type FormConfig struct {
	Action    string
	AccessKey string
}

// Site bundles the immutable data every page is derived from.
type Site struct {
	Catalog  *catalog.Catalog
	Articles *articles.Library
	Geo      *catalog.Geo
	Reviews  []Review
	BaseURL  string
	Form     FormConfig
}

// LoadSite loads the embedded tables and checks they agree with each other.
func LoadSite(cfg Config) (Site, error) {
	cat, err := catalog.Default()
	if err != nil {
		return Site{}, fmt.Errorf("load catalog: %w", err)
	}
	lib, err := articles.Default()
	if err != nil {
		return Site{}, fmt.Errorf("load articles: %w", err)
	}
	if err := articles.Bind(lib, cat); err != nil {
		return Site{}, err
	}
	geo, err := catalog.DefaultGeo()
	if err != nil {
		return Site{}, fmt.Errorf("load geo table: %w", err)
	}
	reviews, err := parseReviews(reviewsJSON)
	if err != nil {
		return Site{}, err
	}

	form := FormConfig{Action: contactPath}
	if cfg.RelayEndpoint != "" {
		form = FormConfig{Action: cfg.RelayEndpoint, AccessKey: cfg.RelayAccessKey}
	}

	return Site{
		Catalog:  cat,
		Articles: lib,
		Geo:      geo,
		Reviews:  reviews,
		BaseURL:  cfg.BaseURL,
		Form:     form,
	}, nil
}
