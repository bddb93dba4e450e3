// Package entity contains the core business objects of the project.
package entity

// Service is the core entity for a boarding service branch.
// Several branches of the same shop are separate Service documents
// sharing a ShopName; ServiceID stays unique across the catalog.
type Service struct {
	ServiceID     string // Document id assigned by the store, immutable.
	ShopName      string // Display name of the shop; grouping key for branches.
	CanonicalSlug string // Authoritative SEO slug; empty on records that predate slug assignment.

	// Location path segments used in canonical URLs.
	AreaName     string
	District     string
	DistrictSlug string
	State        string

	// Postal details rendered on the detail page and in structured data.
	Street      string
	FullAddress string
	PostalCode  string

	Description string
	OwnerPhone  string

	// Location is nil for branches without coordinates; such branches
	// rank after every located branch.
	Location *GeoPoint

	// DisplayEligible gates participation in the nearby listing.
	DisplayEligible bool

	Pets      []string
	ShopLogo  string
	ImageURLs []string

	OpenTime  string
	CloseTime string

	// StandardPrices maps pet type -> plan -> price per day.
	StandardPrices map[string]map[string]float64

	// MinPrice is derived from StandardPrices; zero when no prices exist.
	MinPrice float64

	// RatingStats is the aggregate over the branch's reviews.
	RatingStats RatingStats

	// PetInformation holds the entries of the pet_information subcollection.
	PetInformation []PetInformation
}

// RatingStats is the review aggregate for a service branch.
type RatingStats struct {
	Avg   float64 `json:"avg"`
	Count int     `json:"count"`
}

// PetInformation is one entry of a service's pet_information subcollection.
// The payload is shop-authored and passed through unshaped.
type PetInformation struct {
	ID   string         `json:"id"`
	Data map[string]any `json:"data"`
}

// LowestPrice returns the minimum price across all pet types and plans,
// or 0 when the price table is empty.
func (s *Service) LowestPrice() float64 {
	var best float64
	found := false
	for _, plans := range s.StandardPrices {
		for _, price := range plans {
			if !found || price < best {
				best = price
				found = true
			}
		}
	}
	if !found {
		return 0
	}

	return best
}
