package model

import (
	"google.golang.org/genproto/googleapis/type/latlng"
)

// ServiceModel is the Firestore-specific struct for the boarding service
// branch documents. Field tags follow the document schema, not Go naming.
type ServiceModel struct {
	ShopName     string `firestore:"shop_name"`
	SEOSlug      string `firestore:"seo_slug"`
	AreaName     string `firestore:"area_name"`
	District     string `firestore:"district"`
	DistrictSlug string `firestore:"district_slug"`
	State        string `firestore:"state"`

	Street      string `firestore:"street"`
	FullAddress string `firestore:"full_address"`
	PostalCode  string `firestore:"postal_code"`

	Description string `firestore:"description"`
	OwnerPhone  string `firestore:"owner_phone"`

	// Two coordinate fields exist in the wild: listing documents carry
	// shop_location, older detail documents carry location_geopoint.
	ShopLocation     *latlng.LatLng `firestore:"shop_location"`
	LocationGeopoint *latlng.LatLng `firestore:"location_geopoint"`

	Display bool `firestore:"display"`

	Pets      []string `firestore:"pets"`
	ShopLogo  string   `firestore:"shop_logo"`
	ImageURLs []string `firestore:"image_urls"`

	OpenTime  string `firestore:"open_time"`
	CloseTime string `firestore:"close_time"`

	StandardPrices map[string]map[string]float64 `firestore:"pre_calculated_standard_prices"`
}

// Coordinates returns the document's location, preferring shop_location.
func (m *ServiceModel) Coordinates() *latlng.LatLng {
	if m.ShopLocation != nil {
		return m.ShopLocation
	}

	return m.LocationGeopoint
}

// ReviewModel is the Firestore-specific struct for one review document.
// Reviews without a rating decode to 0 and count as unrated.
type ReviewModel struct {
	Rating float64 `firestore:"rating"`
}
