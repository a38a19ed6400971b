package content

import "poolquotes/internal/catalog"

// Region selects state-specific wording. States without their own copy use
// RegionOther.
type Region int

const (
	RegionOther Region = iota
	RegionFlorida
	RegionTexas
	RegionCalifornia
	RegionArizona
	RegionNevada
)

// RegionOf maps a state to its copy variant.
func RegionOf(st catalog.State) Region {
	switch st.Slug {
	case "florida":
		return RegionFlorida
	case "texas":
		return RegionTexas
	case "california":
		return RegionCalifornia
	case "arizona":
		return RegionArizona
	case "nevada":
		return RegionNevada
	default:
		return RegionOther
	}
}

// ServiceKind selects service-specific wording.
type ServiceKind int

const (
	ServiceOther ServiceKind = iota
	ServiceBuilder
	ServiceRepair
	ServiceCleaning
	ServiceResurfacing
	ServiceRemodeling
)

// KindOf maps a service to its copy variant by slug.
func KindOf(svc catalog.Service) ServiceKind {
	switch svc.Slug {
	case "pool-builder", "pool-installation":
		return ServiceBuilder
	case "pool-repair":
		return ServiceRepair
	case "pool-cleaning":
		return ServiceCleaning
	case "pool-resurfacing":
		return ServiceResurfacing
	case "pool-remodeling":
		return ServiceRemodeling
	default:
		return ServiceOther
	}
}

// FAQ is one question/answer pair. Each entry is emitted on its own in the
// FAQPage structured data.
type FAQ struct {
	Question string
	Answer   string
}
