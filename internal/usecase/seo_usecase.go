package usecase

import (
	"context"
	"time"

	"fellowpet/internal/domain/entity"
)

// PageMeta carries the SEO metadata of a service detail page.
type PageMeta struct {
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	CanonicalURL string        `json:"canonical_url"`
	OpenGraph    OpenGraphMeta `json:"open_graph"`
	Twitter      TwitterMeta   `json:"twitter"`
}

// OpenGraphMeta holds the OpenGraph fields of a page.
type OpenGraphMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Image       string `json:"image"`
}

// TwitterMeta holds the Twitter card fields of a page.
type TwitterMeta struct {
	Card        string `json:"card"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// SitemapEntry is one URL of the sitemap.
type SitemapEntry struct {
	URL          string
	LastModified time.Time
}

// SEOUsecase builds metadata, structured data, and sitemap entries from
// resolved service records. All projections are pure except the sitemap,
// which enumerates the catalog.
type SEOUsecase interface {
	// CanonicalURL builds the canonical page URL of a service record.
	CanonicalURL(service *entity.Service) string

	// PageMeta projects title/description/OpenGraph/Twitter metadata.
	PageMeta(service *entity.Service) PageMeta

	// StructuredData projects the page's JSON-LD blocks: LocalBusiness,
	// FAQPage, BreadcrumbList, and AggregateRating (the last only when the
	// record carries at least one positive rating).
	StructuredData(service *entity.Service) []map[string]any

	// SitemapEntries lists one entry per catalog record.
	SitemapEntries(ctx context.Context) ([]SitemapEntry, error)
}
