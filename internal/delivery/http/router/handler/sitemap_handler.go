package handler

import (
	"encoding/xml"
	"log/slog"
	"net/http"
	"time"

	"fellowpet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SitemapHandlerParams holds dependencies for SitemapHandler, injected by Fx.
type SitemapHandlerParams struct {
	fx.In

	SEOUC  usecase.SEOUsecase
	Logger *slog.Logger
}

// SitemapHandler renders the XML sitemap over the catalog.
type SitemapHandler struct {
	seoUC  usecase.SEOUsecase
	logger *slog.Logger
}

// NewSitemapHandler is the constructor for SitemapHandler
func NewSitemapHandler(params SitemapHandlerParams) *SitemapHandler {
	return &SitemapHandler{
		seoUC:  params.SEOUC,
		logger: params.Logger,
	}
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

// GetSitemap handles the sitemap.xml endpoint
func (h *SitemapHandler) GetSitemap(c echo.Context) error {
	entries, err := h.seoUC.SitemapEntries(c.Request().Context())
	if err != nil {
		return errors.Wrap(err, "failed to build sitemap")
	}

	urlSet := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, 0, len(entries)),
	}
	for _, entry := range entries {
		urlSet.URLs = append(urlSet.URLs, sitemapURL{
			Loc:     entry.URL,
			LastMod: entry.LastModified.Format(time.RFC3339),
		})
	}

	body, err := xml.MarshalIndent(urlSet, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal sitemap")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationXMLCharsetUTF8, append([]byte(xml.Header), body...))
}
