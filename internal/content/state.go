package content

import (
	"fmt"
	"strings"

	"poolquotes/internal/catalog"
)

// StateContent is the copy for a /{state} page.
type StateContent struct {
	Intro           string
	TopAreas        string
	PopularServices string
	WhyPopular      string
	FreeQuotes      string
	FAQs            []FAQ
	FinalCTA        string
}

func StatePage(st catalog.State) StateContent {
	n, a := st.Name, st.Abbreviation

	var climate, reason string
	switch RegionOf(st) {
	case RegionFlorida:
		climate = "year-round warm weather and high pool ownership rates"
		reason = "Year-round warm weather makes pools usable in every season, and Florida's outdoor lifestyle centers on backyard entertainment and relaxation"
	case RegionCalifornia:
		climate = "favorable climate and strong pool culture"
		reason = "A favorable climate allows extended pool seasons, and California's emphasis on outdoor living makes pools a natural fit for many homes"
	case RegionTexas:
		climate = "long swimming seasons and growing pool market"
		reason = "Long, hot summers create strong demand for pool cooling and recreation, while Texas's growing population drives new installations"
	case RegionArizona:
		climate = "desert climate ideal for pool ownership"
		reason = "Intense desert heat makes pools essential for cooling and comfort, and Arizona's outdoor lifestyle supports a strong pool culture"
	case RegionNevada:
		climate = "hot summers perfect for pool enjoyment"
		reason = "Hot summers and an outdoor entertainment culture make pools popular features, especially in growing suburban areas"
	default:
		climate = "favorable conditions"
		reason = n + "'s climate and lifestyle make pools popular features for homeowners"
	}

	names := make([]string, len(st.Cities))
	for i, city := range st.Cities {
		names[i] = city.Name
	}

	return StateContent{
		Intro: fmt.Sprintf("%[1]s is home to one of the nation's most active pool markets, with thousands of homeowners enjoying the benefits of pool ownership. "+
			"%[1]s's %[3]s make pools a popular feature in residential properties across the state. "+
			"From major metropolitan areas to suburban communities, %[2]s residents invest in pools for recreation, relaxation, and increased property value. "+
			"Whether you're in a busy city or a quiet suburb, %[2]s homeowners have access to qualified pool contractors who understand the state's climate, building codes, and pool ownership trends.", n, a, climate),
		TopAreas: fmt.Sprintf("Pool services are available throughout %[1]s, with particularly strong contractor networks in major metropolitan areas and growing suburbs. "+
			"Top service areas in %[1]s include %[2]s. "+
			"Each of these cities has established pool professionals serving local homeowners with installation, repair, cleaning, resurfacing, and remodeling services.", n, strings.Join(names, ", ")),
		PopularServices: fmt.Sprintf("%[1]s homeowners rely on five core pool services to maintain and enhance their investments. "+
			"Pool installation helps %[2]s families create custom outdoor spaces, and pool repair addresses equipment issues and structural problems across %[1]s. "+
			"Regular pool cleaning protects water quality during %[1]s's active pool season. "+
			"Pool resurfacing restores worn surfaces, and pool remodeling brings modern features, finishes, and amenities that %[1]s homeowners value.", n, a),
		WhyPopular: fmt.Sprintf("Pool projects are popular in %[1]s for several reasons. %[3]s. "+
			"%[2]s homeowners also recognize that well-maintained pools add property value and create attractive outdoor living spaces. "+
			"Many %[1]s neighborhoods feature pools as standard amenities, so homeowners invest in quality installations and regular maintenance.", n, a, reason),
		FreeQuotes: fmt.Sprintf("Getting free pool quotes across %[1]s is simple. "+
			"Our service connects %[2]s homeowners with qualified pool professionals in their local area, with detailed estimates at no cost or obligation. "+
			"Fill out our form with your project details, and local %[1]s pool professionals will contact you to schedule consultations. "+
			"Explore our city pages to find pool services in your part of %[1]s, or submit a quote request to get matched with local professionals.", n, a),
		FAQs: []FAQ{
			{
				Question: fmt.Sprintf("What pool services are available throughout %s?", n),
				Answer: fmt.Sprintf("All major pool services are available across %s, including installation, repair, cleaning, resurfacing, and remodeling. "+
					"%s homeowners can find qualified professionals in major cities and surrounding communities.", n, a),
			},
			{
				Question: fmt.Sprintf("How long do pool projects typically take in %s?", n),
				Answer: fmt.Sprintf("Project timelines in %s vary by service type. Simple repairs may take a few hours, while installations or major remodels typically require 4-12 weeks depending on permits and weather. "+
					"%s pool contractors provide detailed timelines during consultations.", n, a),
			},
			{
				Question: fmt.Sprintf("What do pool services cost in %s?", n),
				Answer: fmt.Sprintf("Pool service costs in %s vary by service type and project scope. Basic cleaning typically runs $80-$200 per visit, while new installations generally start around $40,000. "+
					"%s pool professionals provide free estimates based on your project.", n, a),
			},
			{
				Question: fmt.Sprintf("Do I need permits for pool work in %s?", n),
				Answer: fmt.Sprintf("Permit requirements in %s vary by project type and location. Major installations, structural changes, and electrical work typically require permits. "+
					"Licensed %s pool contractors handle the permit applications as part of their service.", n, a),
			},
		},
		FinalCTA: fmt.Sprintf("Whether you're planning a new pool installation, need repairs, or want to upgrade your existing pool, %[1]s pool professionals are ready to help. "+
			"Our network connects %[2]s homeowners with trusted local experts. "+
			"Browse our city pages or submit a quote request to get matched with qualified professionals in your area of %[1]s.", n, a),
	}
}
