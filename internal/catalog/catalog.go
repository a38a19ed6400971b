package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/titanous/json5"
)

// ErrNotFound is returned by every lookup whose slug has no match.
var ErrNotFound = errors.New("not found")

//go:embed data/catalog.json5
var catalogJSON []byte

// Service is one of the fixed pool services offered in every city.
type Service struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// City belongs to exactly one State.
type City struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// State owns an ordered list of cities. The order decides which cities are
// treated as the state's top cities.
type State struct {
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	MainCity     string `json:"main_city"`
	Cities       []City `json:"cities"`
}

// TopCities returns up to n cities from the head of the list.
func (s State) TopCities(n int) []City {
	if n > len(s.Cities) {
		n = len(s.Cities)
	}
	if n < 0 {
		n = 0
	}
	out := make([]City, n)
	copy(out, s.Cities[:n])
	return out
}

// Catalog is the immutable source of every derived page and link.
type Catalog struct {
	states   []State
	services []Service

	stateIdx   map[string]int
	serviceIdx map[string]int
	cityIdx    map[string]map[string]int
}

type catalogDoc struct {
	Services []Service `json:"services"`
	States   []State   `json:"states"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Parse(catalogJSON)
})

// Default returns the embedded catalog, parsed once per process.
func Default() (*Catalog, error) {
	return loadDefault()
}

// Parse decodes a json5 catalog document and validates it.
func Parse(data []byte) (*Catalog, error) {
	var doc catalogDoc
	if err := json5.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.States, doc.Services)
}

// New builds a catalog from in-memory tables. The slices are copied.
func New(states []State, services []Service) (*Catalog, error) {
	c := &Catalog{
		states:     make([]State, len(states)),
		services:   append([]Service(nil), services...),
		stateIdx:   make(map[string]int, len(states)),
		serviceIdx: make(map[string]int, len(services)),
		cityIdx:    make(map[string]map[string]int, len(states)),
	}

	for i, svc := range c.services {
		if err := checkEntry("service", svc.Slug, svc.Name); err != nil {
			return nil, err
		}
		if _, dup := c.serviceIdx[svc.Slug]; dup {
			return nil, fmt.Errorf("duplicate service slug %q", svc.Slug)
		}
		c.serviceIdx[svc.Slug] = i
	}

	for i, st := range states {
		if err := checkEntry("state", st.Slug, st.Name); err != nil {
			return nil, err
		}
		if _, dup := c.stateIdx[st.Slug]; dup {
			return nil, fmt.Errorf("duplicate state slug %q", st.Slug)
		}
		st.Cities = append([]City(nil), st.Cities...)
		cities := make(map[string]int, len(st.Cities))
		for j, city := range st.Cities {
			if err := checkEntry("city", city.Slug, city.Name); err != nil {
				return nil, fmt.Errorf("state %s: %w", st.Slug, err)
			}
			if _, dup := cities[city.Slug]; dup {
				return nil, fmt.Errorf("state %s: duplicate city slug %q", st.Slug, city.Slug)
			}
			cities[city.Slug] = j
		}
		c.states[i] = st
		c.stateIdx[st.Slug] = i
		c.cityIdx[st.Slug] = cities
	}

	return c, nil
}

func checkEntry(kind, slug, name string) error {
	if slug == "" {
		return fmt.Errorf("%s %q: empty slug", kind, name)
	}
	if name == "" {
		return fmt.Errorf("%s %q: empty name", kind, slug)
	}
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("%s %q: slug must be lowercase letters, digits and single hyphens", kind, slug)
	}
	return nil
}

// States returns the states in catalog order.
func (c *Catalog) States() []State {
	out := make([]State, len(c.states))
	for i, st := range c.states {
		st.Cities = append([]City(nil), st.Cities...)
		out[i] = st
	}
	return out
}

// Services returns the services in catalog order.
func (c *Catalog) Services() []Service {
	return append([]Service(nil), c.services...)
}

// FindState looks up a state by exact slug.
func (c *Catalog) FindState(slug string) (State, error) {
	i, ok := c.stateIdx[slug]
	if !ok {
		return State{}, fmt.Errorf("state %q: %w", slug, ErrNotFound)
	}
	st := c.states[i]
	st.Cities = append([]City(nil), st.Cities...)
	return st, nil
}

// FindCity looks up a city inside a state. An unknown state yields
// ErrNotFound as well.
func (c *Catalog) FindCity(stateSlug, citySlug string) (City, error) {
	cities, ok := c.cityIdx[stateSlug]
	if !ok {
		return City{}, fmt.Errorf("state %q: %w", stateSlug, ErrNotFound)
	}
	j, ok := cities[citySlug]
	if !ok {
		return City{}, fmt.Errorf("city %q in %s: %w", citySlug, stateSlug, ErrNotFound)
	}
	return c.states[c.stateIdx[stateSlug]].Cities[j], nil
}

// FindService looks up a service by exact slug.
func (c *Catalog) FindService(slug string) (Service, error) {
	i, ok := c.serviceIdx[slug]
	if !ok {
		return Service{}, fmt.Errorf("service %q: %w", slug, ErrNotFound)
	}
	return c.services[i], nil
}

// CityCount is the number of cities across every state.
func (c *Catalog) CityCount() int {
	n := 0
	for _, st := range c.states {
		n += len(st.Cities)
	}
	return n
}
