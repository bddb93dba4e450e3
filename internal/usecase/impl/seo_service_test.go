package impl

import (
	"context"
	"testing"

	"fellowpet/config"
	"fellowpet/internal/domain/entity"
	mockRepo "fellowpet/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSEOService(repo *mockRepo.MockServiceRepository) *seoService {
	return NewSEOService(repo, &config.Config{
		Site: &config.SiteConfig{
			BaseURL:     "https://myfellowpet.com",
			Country:     "india",
			ServiceType: "boarding",
		},
	}).(*seoService)
}

func seoFixtureService() *entity.Service {
	return &entity.Service{
		ServiceID:     "sp-001",
		ShopName:      "Acme Boarding",
		CanonicalSlug: "acme-boarding",
		AreaName:      "Indiranagar",
		District:      "Bengaluru Urban",
		DistrictSlug:  "bengaluru",
		State:         "Karnataka",
		Street:        "100 Feet Road",
		FullAddress:   "100 Feet Road, Indiranagar, Bengaluru",
		PostalCode:    "560038",
		Description:   "Cage-free boarding with daily walks.",
		OwnerPhone:    "+91-9000000000",
		Pets:          []string{"Dog", "Cat"},
		ShopLogo:      "https://cdn.example.com/acme.png",
		OpenTime:      "09:00",
		CloseTime:     "19:00",
		MinPrice:      500,
	}
}

func TestSEOService_CanonicalURL(t *testing.T) {
	service := newTestSEOService(nil)

	url := service.CanonicalURL(seoFixtureService())
	assert.Equal(t,
		"https://myfellowpet.com/india/boarding/karnataka/bengaluru/indiranagar/acme-boarding",
		url)
}

func TestSEOService_CanonicalURL_DerivedSegments(t *testing.T) {
	service := newTestSEOService(nil)

	record := &entity.Service{
		ShopName: "Happy Tails",
		AreaName: "HSR Layout",
		District: "Bengaluru Urban",
		State:    "Karnataka",
	}

	// No curated slugs on the record: every segment is derived.
	url := service.CanonicalURL(record)
	assert.Equal(t,
		"https://myfellowpet.com/india/boarding/karnataka/bengaluru-urban/hsr-layout/happy-tails",
		url)
}

func TestSEOService_PageMeta(t *testing.T) {
	service := newTestSEOService(nil)

	meta := service.PageMeta(seoFixtureService())
	assert.Equal(t, "Acme Boarding | Dog Boarding in Indiranagar", meta.Title)
	assert.Equal(t, "Cage-free boarding with daily walks.", meta.Description)
	assert.Equal(t, "https://cdn.example.com/acme.png", meta.OpenGraph.Image)
	assert.Equal(t, meta.CanonicalURL, meta.OpenGraph.URL)
	assert.Equal(t, "summary_large_image", meta.Twitter.Card)
}

func TestSEOService_PageMeta_Fallbacks(t *testing.T) {
	service := newTestSEOService(nil)

	meta := service.PageMeta(&entity.Service{AreaName: "Koramangala"})
	assert.Equal(t, "Pet Service | Pet Boarding in Koramangala", meta.Title)
	assert.Equal(t, "Trusted pet service provider.", meta.Description)
	assert.Equal(t, "/default-og.png", meta.OpenGraph.Image)
}

func TestSEOService_StructuredData(t *testing.T) {
	service := newTestSEOService(nil)

	record := seoFixtureService()
	record.Location = &entity.GeoPoint{Latitude: 12.97, Longitude: 77.64}

	blocks := service.StructuredData(record)
	require.Len(t, blocks, 3, "no rating block without reviews")

	assert.Equal(t, "LocalBusiness", blocks[0]["@type"])
	assert.Contains(t, blocks[0], "geo")
	assert.Equal(t, "FAQPage", blocks[1]["@type"])
	assert.Len(t, blocks[1]["mainEntity"], 4)
	assert.Equal(t, "BreadcrumbList", blocks[2]["@type"])
	assert.Len(t, blocks[2]["itemListElement"], 6)
}

func TestSEOService_StructuredData_WithRatings(t *testing.T) {
	service := newTestSEOService(nil)

	record := seoFixtureService()
	record.RatingStats = entity.RatingStats{Avg: 4.5, Count: 12}

	blocks := service.StructuredData(record)
	require.Len(t, blocks, 4)

	rating := blocks[3]
	assert.Equal(t, "AggregateRating", rating["@type"])
	assert.Equal(t, 4.5, rating["ratingValue"])
	assert.Equal(t, 12, rating["reviewCount"])
}

func TestSEOService_StructuredData_NoGeoWithoutLocation(t *testing.T) {
	service := newTestSEOService(nil)

	blocks := service.StructuredData(seoFixtureService())
	assert.NotContains(t, blocks[0], "geo")
}

func TestSEOService_SitemapEntries(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	service := newTestSEOService(mockServiceRepo)

	ctx := context.Background()

	mockServiceRepo.EXPECT().
		ListAll(ctx).
		Return([]*entity.Service{
			seoFixtureService(),
			{ShopName: "Happy Tails", AreaName: "HSR Layout", District: "Bengaluru Urban", State: "Karnataka"},
		}, nil)

	entries, err := service.SitemapEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t,
		"https://myfellowpet.com/india/boarding/karnataka/bengaluru/indiranagar/acme-boarding",
		entries[0].URL)
	assert.False(t, entries[0].LastModified.IsZero())
}
