package content

import (
	"fmt"
	"strings"

	"poolquotes/internal/catalog"
)

// ServiceOverviewContent is the copy for /services/{service}.
type ServiceOverviewContent struct {
	Heading string
	Intro   []string
	FAQs    []FAQ
}

func ServiceOverview(svc catalog.Service) ServiceOverviewContent {
	s := strings.ToLower(svc.Name)
	return ServiceOverviewContent{
		Heading: "Professional " + svc.Name + " Services",
		Intro: []string{
			fmt.Sprintf("Looking for %[1]s? Our network of trusted pool professionals provides expert %[1]s services throughout the United States. "+
				"Whether you need routine maintenance or a complete project, we connect you with licensed and insured contractors who deliver quality work.", s),
			"Our pool professionals understand local climate conditions, building codes, and the needs of pool owners. " +
				"Get free quotes from multiple contractors to compare pricing and find the best fit for your project.",
		},
		FAQs: []FAQ{
			{
				Question: fmt.Sprintf("What is %s?", s),
				Answer:   fmt.Sprintf("%s. Our network of trusted pool professionals provides expert %s services across the United States.", strings.TrimSuffix(svc.Description, "."), s),
			},
			{
				Question: fmt.Sprintf("How much does %s cost?", s),
				Answer:   fmt.Sprintf("The cost of %s varies based on the size of your pool, materials used, and specific requirements. Contact our local professionals for a free, no-obligation quote tailored to your project.", s),
			},
			{
				Question: fmt.Sprintf("How long does %s take?", s),
				Answer:   fmt.Sprintf("The timeline for %s depends on the scope of work. Simple repairs may take a few hours, while installations or major remodels can take several weeks. Our professionals will provide a detailed timeline with your quote.", s),
			},
			{
				Question: fmt.Sprintf("Do I need permits for %s?", s),
				Answer:   fmt.Sprintf("Permit requirements vary by location and project type. Our licensed professionals are familiar with local regulations and will handle all necessary permits for your %s project.", s),
			},
			{
				Question: fmt.Sprintf("What should I look for in a %s professional?", s),
				Answer:   fmt.Sprintf("When choosing a %s professional, look for licensed and insured contractors with experience, positive reviews, and transparent pricing. All professionals in our network meet these standards.", s),
			},
		},
	}
}
