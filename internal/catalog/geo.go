package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/titanous/json5"
)

//go:embed data/geo.json5
var geoJSON []byte

// Point is a latitude/longitude pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geoStateDoc struct {
	State  string           `json:"state"`
	Lat    float64          `json:"lat"`
	Lng    float64          `json:"lng"`
	Cities map[string]Point `json:"cities"`
}

type geoState struct {
	center Point
	cities map[string]Point
}

// Geo maps display names to coordinates. City entries live inside their
// state's namespace; two states may each have a city with the same name.
type Geo struct {
	states map[string]geoState
}

var loadDefaultGeo = sync.OnceValues(func() (*Geo, error) {
	return ParseGeo(geoJSON)
})

// DefaultGeo returns the embedded coordinate table.
func DefaultGeo() (*Geo, error) {
	return loadDefaultGeo()
}

// ParseGeo decodes a json5 coordinate table.
func ParseGeo(data []byte) (*Geo, error) {
	var docs []geoStateDoc
	if err := json5.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("decode geo table: %w", err)
	}
	g := &Geo{states: make(map[string]geoState, len(docs))}
	for _, d := range docs {
		if d.State == "" {
			return nil, fmt.Errorf("geo table: entry without state name")
		}
		if _, dup := g.states[d.State]; dup {
			return nil, fmt.Errorf("geo table: duplicate state %q", d.State)
		}
		cities := make(map[string]Point, len(d.Cities))
		for name, p := range d.Cities {
			cities[name] = p
		}
		g.states[d.State] = geoState{center: Point{Lat: d.Lat, Lng: d.Lng}, cities: cities}
	}
	return g, nil
}

// State returns the center point of a state, by state display name.
func (g *Geo) State(stateName string) (Point, bool) {
	if g == nil {
		return Point{}, false
	}
	st, ok := g.states[stateName]
	if !ok {
		return Point{}, false
	}
	return st.center, true
}

// City returns a city's point, by state and city display names.
func (g *Geo) City(stateName, cityName string) (Point, bool) {
	if g == nil {
		return Point{}, false
	}
	st, ok := g.states[stateName]
	if !ok {
		return Point{}, false
	}
	p, ok := st.cities[cityName]
	return p, ok
}

// Gap is a catalog location without coordinates.
type Gap struct {
	State string
	City  string // empty when the whole state is missing
}

func (g Gap) String() string {
	if g.City == "" {
		return fmt.Sprintf("no coordinates for state %s", g.State)
	}
	return fmt.Sprintf("no coordinates for %s, %s", g.City, g.State)
}

// Coverage lists every catalog location that has no geo entry.
func (g *Geo) Coverage(c *Catalog) []Gap {
	var gaps []Gap
	for _, st := range c.states {
		if _, ok := g.State(st.Name); !ok {
			gaps = append(gaps, Gap{State: st.Name})
		}
		for _, city := range st.Cities {
			if _, ok := g.City(st.Name, city.Name); !ok {
				gaps = append(gaps, Gap{State: st.Name, City: city.Name})
			}
		}
	}
	return gaps
}
