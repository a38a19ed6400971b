package content

import (
	"fmt"
	"strings"

	"poolquotes/internal/catalog"
)

// ServiceInCityContent is the copy for a /{state}/{city}/{service} page.
type ServiceInCityContent struct {
	Intro          string
	WhyMatters     string
	Benefits       []string
	CommonProjects []string
	QuoteProcess   string
	AverageCosts   string
	FAQs           []FAQ
	FinalCTA       string
}

// ServiceInCity fills the service-in-city templates. Callers must have
// resolved all three entities through the catalog first.
func ServiceInCity(st catalog.State, city catalog.City, svc catalog.Service) ServiceInCityContent {
	v := serviceVars{
		city:    city.Name,
		abbr:    st.Abbreviation,
		service: svc.Name,
		lower:   strings.ToLower(svc.Name),
	}
	region := RegionOf(st)
	kind := KindOf(svc)

	return ServiceInCityContent{
		Intro:          serviceIntro(region, v),
		WhyMatters:     serviceWhyMatters(region, v),
		Benefits:       serviceBenefits(v),
		CommonProjects: commonProjects(kind, v),
		QuoteProcess:   quoteProcess(v),
		AverageCosts:   averageCosts(kind, v),
		FAQs:           serviceFAQs(v),
		FinalCTA:       serviceFinalCTA(v),
	}
}

type serviceVars struct {
	city    string
	abbr    string
	service string
	lower   string
}

func serviceIntro(region Region, v serviceVars) string {
	var climate string
	switch region {
	case RegionFlorida:
		climate = "With year-round warm weather and high humidity"
	case RegionCalifornia:
		climate = "In California's diverse climate zones"
	case RegionTexas:
		climate = "Given Texas's hot summers and mild winters"
	case RegionArizona:
		climate = "In Arizona's desert climate with intense sun exposure"
	case RegionNevada:
		climate = "In Nevada's arid climate with hot summers"
	default:
		climate = fmt.Sprintf("In %s's climate", v.abbr)
	}

	return fmt.Sprintf("%[1]s, %[2]s homeowners understand the importance of maintaining a beautiful, functional pool. "+
		"%[3]s, pools in %[1]s require regular attention and professional %[4]s services to stay in peak condition. "+
		"Whether you're dealing with wear and tear from frequent use, seasonal maintenance needs, or planning a major upgrade, finding the right pool professional in %[1]s is essential. "+
		"Our network of licensed and insured pool contractors specializes in %[4]s throughout the %[1]s area, offering homeowners peace of mind and quality workmanship. "+
		"We connect %[1]s residents with trusted local experts who understand the unique challenges of pool ownership in %[2]s. "+
		"Get started today with a free, no-obligation quote for %[4]s in %[1]s and compare pricing from multiple contractors to find the right match for your project.",
		v.city, v.abbr, climate, v.lower)
}

func serviceWhyMatters(region Region, v serviceVars) string {
	var seasonal string
	switch region {
	case RegionFlorida:
		seasonal = "year-round pool season means continuous use and maintenance needs"
	case RegionCalifornia:
		seasonal = "extended pool season creates ongoing maintenance requirements"
	case RegionTexas:
		seasonal = "long swimming seasons demand consistent pool care"
	case RegionArizona:
		seasonal = "year-round pool weather requires constant attention"
	case RegionNevada:
		seasonal = "hot summers and extended pool seasons increase maintenance demands"
	default:
		seasonal = "extended pool seasons"
	}

	return fmt.Sprintf("Pool %[2]s in %[1]s isn't just about aesthetics. It's about protecting your investment and keeping your family safe. "+
		"%[1]s's %[3]s, which means pools get heavy use throughout much of the year. "+
		"This frequent use, combined with %[1]s's local climate conditions, can accelerate wear and tear on pool surfaces, equipment, and systems. "+
		"Professional %[2]s services in %[1]s help homeowners address issues before they become costly repairs, maintain water quality for safe swimming, and extend the lifespan of pool components. "+
		"%[1]s homeowners also face specific challenges like hard water deposits, intense sun exposure, or seasonal temperature swings that call for specialized knowledge. "+
		"Local pool professionals in %[1]s understand these regional factors and can provide targeted solutions that generic approaches might miss.",
		v.city, v.lower, seasonal)
}

func serviceBenefits(v serviceVars) []string {
	return []string{
		fmt.Sprintf("Faster response times: Local %s pool contractors can typically respond to service requests within 24-48 hours, and many offer same-day emergency services for urgent repairs.", v.city),
		fmt.Sprintf("Local expertise: Pool professionals in %s understand %s's building codes, permit requirements, and climate-specific challenges that affect pool maintenance and installation.", v.city, v.abbr),
		fmt.Sprintf("Accurate pricing: Contractors familiar with %s's market can provide realistic cost estimates based on local material costs, labor rates, and project complexity.", v.city),
		fmt.Sprintf("Established relationships: Many local pool pros in %s have long-standing relationships with suppliers, which can lead to better pricing and faster material delivery.", v.city),
		fmt.Sprintf("Community knowledge: Local contractors know %s's neighborhoods and common pool styles, and can recommend what works well in similar homes nearby.", v.city),
	}
}

func commonProjects(kind ServiceKind, v serviceVars) []string {
	c := v.city
	switch kind {
	case ServiceBuilder:
		return []string{
			"In-ground pool installations for " + c + " homes with custom designs",
			"Fiberglass pool installations with professional excavation and setup",
			"Vinyl liner pool installations tailored to " + c + " homeowners' preferences",
			"Concrete pool construction with custom features like waterfalls or spas",
			"Pool decking and surrounding landscape integration",
			"Pool equipment installation including pumps, filters, and heaters",
			"Pool lighting and automation system installations",
		}
	case ServiceRepair:
		return []string{
			"Pool leak detection and repair services throughout " + c,
			"Pool pump and filter system repairs for " + c + " homeowners",
			"Pool tile and coping repair and replacement",
			"Pool plumbing repairs and pipe replacement",
			"Pool equipment troubleshooting and repair",
			"Pool surface crack repairs and patching",
			"Pool heater repair and maintenance",
		}
	case ServiceCleaning:
		return []string{
			"Weekly pool cleaning and maintenance services in " + c,
			"Pool skimming, vacuuming, and debris removal",
			"Pool chemical balancing and water testing",
			"Pool filter cleaning and backwashing",
			"Pool tile and surface scrubbing",
			"Pool equipment cleaning and maintenance",
			"Seasonal pool opening and closing services",
		}
	case ServiceResurfacing:
		return []string{
			"Pool plaster resurfacing for " + c + " homeowners",
			"Pool pebble finish applications",
			"Pool tile replacement and upgrades",
			"Pool coping replacement during resurfacing",
			"Pool surface repair before resurfacing",
			"Pool color and finish customization",
			"Pool deck resurfacing coordination",
		}
	case ServiceRemodeling:
		return []string{
			"Complete pool renovations in " + c + " including new finishes and features",
			"Pool shape modifications and expansions",
			"Pool deck and patio remodeling",
			"Pool automation and smart technology upgrades",
			"Pool lighting upgrades and LED installations",
			"Pool feature additions like waterfalls, fountains, or spas",
			"Pool landscaping and hardscaping improvements",
		}
	default:
		return []string{
			v.service + " services for " + c + " homeowners",
			"Professional " + v.lower + " throughout " + c,
			"Custom " + v.lower + " solutions for " + c + " pools",
		}
	}
}

func quoteProcess(v serviceVars) string {
	return fmt.Sprintf("Getting a free quote for %[2]s in %[1]s is simple. "+
		"First, fill out our quick online form with basic details about your project, including the type of service you need, your %[1]s address, and any specific requirements or concerns. "+
		"We then match you with up to three licensed pool professionals in the %[1]s area who specialize in %[2]s. "+
		"These contractors will contact you within 24-48 hours to schedule an on-site assessment or virtual consultation. "+
		"During the consultation, they'll evaluate your pool's condition, discuss your goals, and provide detailed written estimates covering labor, materials, and any necessary permits. "+
		"There's no obligation to move forward: compare quotes, ask questions, and choose the contractor that best fits your budget and timeline. "+
		"This process gives %[1]s homeowners the confidence to make informed decisions about their pool projects.",
		v.city, v.lower)
}

func averageCosts(kind ServiceKind, v serviceVars) string {
	c := v.city
	switch kind {
	case ServiceCleaning:
		return "Pool cleaning services in " + c + " typically range from $80 to $200 per visit for basic maintenance, with monthly service packages often costing between $200 and $500 depending on pool size and service frequency. One-time deep cleaning services may cost $150 to $400."
	case ServiceRepair:
		return "Pool repair costs in " + c + " vary widely based on the issue, ranging from $200 for minor repairs like replacing a pool light to $2,500 or more for major equipment replacements or structural repairs. Common repairs like pump replacement typically cost $400 to $1,200, while plumbing repairs may range from $300 to $1,500."
	case ServiceResurfacing:
		return "Pool resurfacing in " + c + " generally costs between $5,000 and $15,000, depending on pool size, surface material choice, and any additional work needed. Basic plaster resurfacing starts around $5,000, while premium finishes like pebble or quartz can cost $8,000 to $15,000 or more."
	case ServiceRemodeling:
		return "Pool remodeling projects in " + c + " typically range from $10,000 for smaller updates to $60,000 or more for complete transformations. Basic remodels with new finishes and minor feature additions often cost $10,000 to $25,000, while extensive renovations with new features, decking, and landscaping can exceed $50,000."
	case ServiceBuilder:
		return "New pool installation in " + c + " typically starts around $40,000 for basic in-ground pools and can exceed $100,000 for custom designs with premium features. Fiberglass pools generally range from $40,000 to $75,000, while concrete pools typically cost $50,000 to $100,000 or more depending on size and features."
	default:
		return "The cost of " + v.lower + " in " + c + " varies based on your pool's size, condition, and specific project requirements. Contact local " + c + " pool professionals for detailed estimates tailored to your needs."
	}
}

func serviceFAQs(v serviceVars) []FAQ {
	c, a, s := v.city, v.abbr, v.lower
	return []FAQ{
		{
			Question: fmt.Sprintf("How much does %s cost in %s, %s?", s, c, a),
			Answer: fmt.Sprintf("The cost of %[1]s in %[2]s varies based on your pool's size, the scope of work, and materials chosen. "+
				"%[2]s pool professionals typically provide free estimates after assessing your project. "+
				"Factors like pool age, current condition, and desired outcomes all influence pricing. Contact local %[2]s, %[3]s contractors for detailed quotes tailored to your pool.", s, c, a),
		},
		{
			Question: fmt.Sprintf("How long does %s take in %s, %s?", s, c, a),
			Answer: fmt.Sprintf("Timelines for %[1]s in %[2]s depend on the project scope. Simple repairs may take a few hours, while installations or major remodels can take several weeks. "+
				"%[2]s pool contractors will provide detailed timelines during your consultation, accounting for weather, %[3]s permit processing, and material delivery.", s, c, a),
		},
		{
			Question: fmt.Sprintf("Do I need permits for %s in %s, %s?", s, c, a),
			Answer: fmt.Sprintf("Permit requirements for %[1]s in %[2]s vary by project type. Major installations, structural changes, and electrical work typically require permits from %[2]s or %[3]s authorities. "+
				"Licensed pool contractors in %[2]s are familiar with local regulations and will handle permit applications and inspections as part of their service.", s, c, a),
		},
		{
			Question: fmt.Sprintf("What should I look for in a %s professional in %s, %s?", s, c, a),
			Answer: fmt.Sprintf("When choosing a %[1]s contractor in %[2]s, look for licensed and insured professionals with experience in your specific service type. "+
				"Check for positive reviews from other %[2]s homeowners, transparent pricing, and clear communication. "+
				"All contractors in our %[2]s, %[3]s network are vetted for these qualifications.", s, c, a),
		},
		{
			Question: fmt.Sprintf("Can I get multiple quotes for %s in %s, %s?", s, c, a),
			Answer: fmt.Sprintf("Absolutely. We encourage %[2]s homeowners to compare quotes from multiple pool professionals. "+
				"Our service connects you with up to three qualified contractors in %[2]s, %[3]s, so you can compare pricing, timelines, and approaches before choosing who handles your %[1]s project.", s, c, a),
		},
	}
}

func serviceFinalCTA(v serviceVars) string {
	return fmt.Sprintf("Ready to get started with %[3]s in %[1]s, %[2]s? Our network of trusted pool professionals is ready to help you reach your pool goals. "+
		"Whether you need routine maintenance, emergency repairs, or a complete transformation, %[1]s contractors have the expertise and local knowledge to deliver. "+
		"Request your free, no-obligation quote today and compare pricing, timelines, and service approaches from multiple qualified professionals without any pressure. "+
		"Take the first step toward a better pool experience in %[1]s and submit your quote request now.",
		v.city, v.abbr, v.lower)
}
