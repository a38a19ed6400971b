package content

import (
	"fmt"

	"poolquotes/internal/catalog"
)

// CityContent is the copy for a /{state}/{city} page.
type CityContent struct {
	Intro           string
	PopularServices string
	WhyLocal        string
	Trends          string
	FreeQuotes      string
	FAQs            []FAQ
	FinalCTA        string
}

func CityPage(st catalog.State, city catalog.City) CityContent {
	c, a := city.Name, st.Abbreviation

	var climate string
	switch RegionOf(st) {
	case RegionFlorida:
		climate = "year-round warm weather"
	case RegionCalifornia:
		climate = "favorable climate"
	case RegionTexas:
		climate = "long swimming seasons"
	case RegionArizona:
		climate = "desert climate"
	case RegionNevada:
		climate = "hot summers"
	default:
		climate = "favorable weather"
	}

	return CityContent{
		Intro: fmt.Sprintf("%[1]s, %[2]s is home to thousands of pool owners who rely on professional pool services to keep their backyards beautiful and functional. "+
			"With %[1]s's %[3]s, pools are a central feature of many homes, providing families with recreation and entertainment for much of the year. "+
			"Whether you're maintaining an existing pool, planning renovations, or considering a new installation, %[1]s homeowners have access to a network of trusted local pool professionals. "+
			"These experts understand the demands of pool ownership in %[2]s and can help with everything from routine cleaning to major installations. "+
			"Our service connects %[1]s residents with licensed, insured pool contractors who deliver quality workmanship throughout the %[1]s area.", c, a, climate),
		PopularServices: fmt.Sprintf("Homeowners in %[1]s rely on five core pool services to maintain and enhance their backyard investments. "+
			"Pool installation services help %[1]s families create their dream outdoor spaces with custom-designed pools. "+
			"Pool repair services address everything from equipment malfunctions to structural issues, keeping %[1]s pools safe and operational. "+
			"Regular pool cleaning protects water quality and extends equipment life during %[1]s's active pool season. "+
			"Pool resurfacing restores worn surfaces and gives %[1]s pools a fresh look, while pool remodeling adds new features, finishes, and modern amenities. "+
			"Each service is available from qualified professionals who understand %[1]s's local market and climate.", c),
		WhyLocal: fmt.Sprintf("%[1]s homeowners choose local pool professionals for several key advantages. "+
			"Local contractors can respond to service requests within 24-48 hours, which matters for urgent repairs or seasonal maintenance. "+
			"They understand %[1]s's building codes, permit processes, and local regulations, so projects comply with every requirement. "+
			"%[1]s pool pros also have established relationships with local suppliers, which can lead to better pricing and faster material delivery. "+
			"This local knowledge translates to more accurate estimates, appropriate material choices, and solutions tailored to %[1]s's conditions.", c),
		Trends: fmt.Sprintf("Pool trends in %[1]s, %[2]s reflect homeowners' desire for both functionality and style. "+
			"Many %[1]s residents are upgrading older pools with LED lighting, automation systems, and energy-efficient equipment. "+
			"There's growing interest in saltwater conversions, which reduce chemical maintenance for %[1]s pool owners. "+
			"Backyard transformations that pair pools with outdoor kitchens, fire features, and expanded decking are popular in %[1]s neighborhoods. "+
			"As %[1]s continues to grow, new pool installations remain strong, with many homeowners choosing custom designs that complement their home's architecture.", c, a),
		FreeQuotes: fmt.Sprintf("Getting free pool quotes in %[1]s is the first step toward your pool project. "+
			"Our service connects %[1]s homeowners with up to three qualified pool professionals who provide detailed, written estimates at no cost or obligation. "+
			"Fill out our quick form with your project details, and %[1]s contractors will contact you to schedule consultations. "+
			"You'll discuss your goals, receive professional assessments, and get transparent pricing that includes labor, materials, and permits. "+
			"There's no pressure to commit: you choose the contractor and timeline that work best for your %[1]s home.", c),
		FAQs: []FAQ{
			{
				Question: fmt.Sprintf("What pool services are available in %s, %s?", c, a),
				Answer: fmt.Sprintf("%[1]s homeowners have access to all major pool services including installation, repair, cleaning, resurfacing, and remodeling. "+
					"Our network connects %[1]s residents with licensed professionals who specialize in each service type.", c),
			},
			{
				Question: fmt.Sprintf("How quickly can I get pool service in %s?", c),
				Answer: fmt.Sprintf("Most %[1]s pool professionals respond to service requests within 24-48 hours. Emergency repairs may be available same-day depending on contractor availability. "+
					"For installations or remodels, %[1]s contractors typically book 2-4 weeks in advance during peak season.", c),
			},
			{
				Question: fmt.Sprintf("Do pool contractors in %s handle permits?", c),
				Answer: fmt.Sprintf("Yes, licensed pool contractors in %s are familiar with local and %s permit requirements. "+
					"They'll handle the permit applications and coordinate inspections as part of their service.", c, a),
			},
			{
				Question: fmt.Sprintf("How much do pool services cost in %s?", c),
				Answer: fmt.Sprintf("Pool service costs in %[1]s vary by service type and project scope. Basic cleaning typically runs $80-$200 per visit, while major installations can cost $40,000 or more. "+
					"%[1]s pool professionals provide free estimates so you can get accurate pricing for your project.", c),
			},
		},
		FinalCTA: fmt.Sprintf("Whether you need routine maintenance, emergency repairs, or a complete pool transformation, %[1]s, %[2]s pool professionals are ready to help. "+
			"Request your free quote today and compare pricing, timelines, and service approaches from multiple qualified contractors with no obligation. "+
			"Take the first step toward a better pool experience in %[1]s.", c, a),
	}
}
