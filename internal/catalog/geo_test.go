package catalog

import "testing"

func TestCityGeo(t *testing.T) {
	g, err := DefaultGeo()
	if err != nil {
		t.Fatalf("DefaultGeo() error: %v", err)
	}

	p, ok := g.City("Florida", "Miami")
	if !ok {
		t.Fatalf("City(Florida, Miami) not found")
	}
	if p.Lat != 25.7617 || p.Lng != -80.1918 {
		t.Fatalf("City(Florida, Miami) = %+v", p)
	}

	if _, ok := g.City("Florida", "Nonexistent City"); ok {
		t.Fatalf("City(Florida, Nonexistent City) unexpectedly found")
	}
	if _, ok := g.City("Atlantis", "Miami"); ok {
		t.Fatalf("City with unknown state unexpectedly found")
	}
	if _, ok := g.State("Nevada"); !ok {
		t.Fatalf("State(Nevada) not found")
	}
}

func TestGeoIsNamespacedByState(t *testing.T) {
	g, err := DefaultGeo()
	if err != nil {
		t.Fatalf("DefaultGeo() error: %v", err)
	}

	az, ok := g.City("Arizona", "Glendale")
	if !ok {
		t.Fatalf("City(Arizona, Glendale) not found")
	}
	ca, ok := g.City("California", "Glendale")
	if !ok {
		t.Fatalf("City(California, Glendale) not found")
	}
	if az == ca {
		t.Fatalf("Glendale AZ and CA resolved to the same point %+v", az)
	}
	if az.Lng > -112 || ca.Lng > -118 {
		t.Fatalf("Glendale points swapped: AZ %+v CA %+v", az, ca)
	}
}

func TestGeoCoverage(t *testing.T) {
	c := mustDefault(t)
	g, err := DefaultGeo()
	if err != nil {
		t.Fatalf("DefaultGeo() error: %v", err)
	}
	if gaps := g.Coverage(c); len(gaps) != 0 {
		t.Fatalf("shipped tables should be fully covered, gaps: %v", gaps)
	}

	partial, err := ParseGeo([]byte(`[{state: "Florida", lat: 1, lng: 2, cities: {Miami: {lat: 3, lng: 4}}}]`))
	if err != nil {
		t.Fatalf("ParseGeo() error: %v", err)
	}
	gaps := partial.Coverage(c)
	// 19 Florida cities, plus four states and their 80 cities.
	if want := 19 + 4 + 80; len(gaps) != want {
		t.Fatalf("gaps = %d, want %d", len(gaps), want)
	}
}
