package impl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fellowpet/config"
	"fellowpet/internal/domain/entity"
	"fellowpet/internal/domain/repository"
	"fellowpet/internal/slug"
	"fellowpet/internal/usecase"
)

const (
	defaultServiceName = "Pet Service"
	defaultDescription = "Trusted pet service provider."
	defaultOGImage     = "/default-og.png"
)

type seoService struct {
	serviceRepo repository.ServiceRepository
	config      *config.Config
}

// NewSEOService creates a new SEO service instance
func NewSEOService(serviceRepo repository.ServiceRepository, cfg *config.Config) usecase.SEOUsecase {
	if cfg.Site == nil {
		cfg.Site = &config.SiteConfig{
			BaseURL:     "https://myfellowpet.com",
			Country:     "india",
			ServiceType: "boarding",
		}
	}

	return &seoService{
		serviceRepo: serviceRepo,
		config:      cfg,
	}
}

// CanonicalURL builds the canonical page URL:
// {base}/{country}/{serviceType}/{state}/{district}/{area}/{slug}
func (s *seoService) CanonicalURL(service *entity.Service) string {
	site := s.config.Site

	return fmt.Sprintf("%s/%s/%s/%s/%s/%s/%s",
		strings.TrimRight(site.BaseURL, "/"),
		site.Country,
		site.ServiceType,
		pathSegment(service.State),
		districtSegment(service),
		pathSegment(service.AreaName),
		canonicalSlug(service),
	)
}

// PageMeta projects the detail page metadata from a resolved record.
func (s *seoService) PageMeta(service *entity.Service) usecase.PageMeta {
	name := service.ShopName
	if name == "" {
		name = defaultServiceName
	}

	desc := service.Description
	if desc == "" {
		desc = defaultDescription
	}

	img := service.ShopLogo
	if img == "" && len(service.ImageURLs) > 0 {
		img = service.ImageURLs[0]
	}
	if img == "" {
		img = defaultOGImage
	}

	pet := "Pet"
	if len(service.Pets) > 0 {
		pet = service.Pets[0]
	}

	canonical := s.CanonicalURL(service)

	return usecase.PageMeta{
		Title:        fmt.Sprintf("%s | %s Boarding in %s", name, pet, service.AreaName),
		Description:  desc,
		CanonicalURL: canonical,
		OpenGraph: usecase.OpenGraphMeta{
			Title:       name,
			Description: desc,
			URL:         canonical,
			Image:       img,
		},
		Twitter: usecase.TwitterMeta{
			Card:        "summary_large_image",
			Title:       name,
			Description: desc,
			Image:       img,
		},
	}
}

// StructuredData projects the page's JSON-LD blocks.
func (s *seoService) StructuredData(service *entity.Service) []map[string]any {
	blocks := []map[string]any{
		s.localBusinessBlock(service),
		s.faqBlock(service),
		s.breadcrumbBlock(service),
	}

	// Google rejects AggregateRating nodes without reviews, so the block
	// only appears once at least one positive rating exists.
	if service.RatingStats.Avg > 0 && service.RatingStats.Count > 0 {
		blocks = append(blocks, s.aggregateRatingBlock(service))
	}

	return blocks
}

// SitemapEntries lists one entry per catalog record.
func (s *seoService) SitemapEntries(ctx context.Context) ([]usecase.SitemapEntry, error) {
	services, err := s.serviceRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services for sitemap: %w", err)
	}

	now := time.Now()
	entries := make([]usecase.SitemapEntry, 0, len(services))
	for _, service := range services {
		entries = append(entries, usecase.SitemapEntry{
			URL:          s.CanonicalURL(service),
			LastModified: now,
		})
	}

	return entries, nil
}

func (s *seoService) localBusinessBlock(service *entity.Service) map[string]any {
	block := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "LocalBusiness",
		"@id":         fmt.Sprintf("%s/%s", strings.TrimRight(s.config.Site.BaseURL, "/"), canonicalSlug(service)),
		"name":        service.ShopName,
		"description": service.Description,
		"image":       firstNonEmpty(service.ShopLogo, firstOrEmpty(service.ImageURLs)),
		"url":         s.CanonicalURL(service),
		"telephone":   service.OwnerPhone,
		"priceRange":  "₹₹",
		"address": map[string]any{
			"@type":           "PostalAddress",
			"streetAddress":   service.Street,
			"addressLocality": service.AreaName,
			"addressRegion":   service.State,
			"postalCode":      service.PostalCode,
			"addressCountry":  "IN",
		},
		"openingHoursSpecification": map[string]any{
			"@type":  "OpeningHoursSpecification",
			"opens":  service.OpenTime,
			"closes": service.CloseTime,
		},
	}

	if service.Location != nil {
		block["geo"] = map[string]any{
			"@type":     "GeoCoordinates",
			"latitude":  service.Location.Latitude,
			"longitude": service.Location.Longitude,
		}
	}

	return block
}

func (s *seoService) faqBlock(service *entity.Service) map[string]any {
	question := func(name, answer string) map[string]any {
		return map[string]any{
			"@type": "Question",
			"name":  name,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  answer,
			},
		}
	}

	return map[string]any{
		"@context": "https://schema.org",
		"@type":    "FAQPage",
		"mainEntity": []map[string]any{
			question(
				fmt.Sprintf("What is the starting price at %s?", service.ShopName),
				fmt.Sprintf("The starting price at %s is ₹%.0f per day.", service.ShopName, service.MinPrice),
			),
			question(
				"What pets are accepted at this boarding center?",
				fmt.Sprintf("This service accepts %s.", strings.Join(service.Pets, ", ")),
			),
			question(
				"What are the check-in and check-out timings?",
				fmt.Sprintf("Check-in starts at %s and check-out is by %s.", service.OpenTime, service.CloseTime),
			),
			question(
				"Where is this pet boarding service located?",
				fmt.Sprintf("%s is located at %s.", service.ShopName, service.FullAddress),
			),
		},
	}
}

func (s *seoService) breadcrumbBlock(service *entity.Service) map[string]any {
	base := strings.TrimRight(s.config.Site.BaseURL, "/")
	root := fmt.Sprintf("%s/%s/%s", base, s.config.Site.Country, s.config.Site.ServiceType)
	stateSeg := pathSegment(service.State)
	districtSeg := districtSegment(service)
	areaSeg := pathSegment(service.AreaName)

	item := func(position int, name, url string) map[string]any {
		return map[string]any{
			"@type":    "ListItem",
			"position": position,
			"name":     name,
			"item":     url,
		}
	}

	return map[string]any{
		"@context": "https://schema.org",
		"@type":    "BreadcrumbList",
		"itemListElement": []map[string]any{
			item(1, "Home", base),
			item(2, "Pet Boarding", root),
			item(3, service.State, fmt.Sprintf("%s/%s", root, stateSeg)),
			item(4, service.District, fmt.Sprintf("%s/%s/%s", root, stateSeg, districtSeg)),
			item(5, service.AreaName, fmt.Sprintf("%s/%s/%s/%s", root, stateSeg, districtSeg, areaSeg)),
			item(6, service.ShopName, s.CanonicalURL(service)),
		},
	}
}

func (s *seoService) aggregateRatingBlock(service *entity.Service) map[string]any {
	return map[string]any{
		"@context": "https://schema.org",
		"@type":    "AggregateRating",
		"itemReviewed": map[string]any{
			"@type": "LocalBusiness",
			"name":  service.ShopName,
			"url":   s.CanonicalURL(service),
		},
		"ratingValue": service.RatingStats.Avg,
		"reviewCount": service.RatingStats.Count,
		"bestRating":  "5",
		"worstRating": "1",
	}
}

// canonicalSlug prefers the stored canonical slug and falls back to the
// slug derived from the shop name, mirroring the resolver's fallback.
func canonicalSlug(service *entity.Service) string {
	if service.CanonicalSlug != "" {
		return service.CanonicalSlug
	}

	return slug.Slugify(service.ShopName)
}

// districtSegment prefers the curated district slug over the raw name.
func districtSegment(service *entity.Service) string {
	if service.DistrictSlug != "" {
		return service.DistrictSlug
	}

	return pathSegment(service.District)
}

// pathSegment lowercases a location name and joins its words with hyphens.
func pathSegment(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func firstOrEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}

	return values[0]
}
