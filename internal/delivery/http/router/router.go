// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fellowpet/config"
	"fellowpet/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	ServiceHandler *handler.ServiceHandler
	BlogHandler    *handler.BlogHandler
	ContentHandler *handler.ContentHandler
	SitemapHandler *handler.SitemapHandler
	TestHandler    *handler.TestHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	serviceHandler *handler.ServiceHandler
	blogHandler    *handler.BlogHandler
	contentHandler *handler.ContentHandler
	sitemapHandler *handler.SitemapHandler
	testHandler    *handler.TestHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		serviceHandler: params.ServiceHandler,
		blogHandler:    params.BlogHandler,
		contentHandler: params.ContentHandler,
		sitemapHandler: params.SitemapHandler,
		testHandler:    params.TestHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Sitemap is served at the root for crawlers
	e.GET("/sitemap.xml", r.sitemapHandler.GetSitemap)

	api := e.Group("/api")
	{
		serviceGroup := api.Group("/services")
		serviceGroup.GET("/nearby", r.serviceHandler.NearbyServices)
		serviceGroup.GET("/:slug", r.serviceHandler.GetService)
		serviceGroup.GET("/:slug/qr", r.serviceHandler.GetServiceQR)

		blogGroup := api.Group("/blogs")
		blogGroup.GET("", r.blogHandler.ListBlogs)
		blogGroup.GET("/:slug", r.blogHandler.GetBlog)

		api.GET("/content/footer", r.contentHandler.GetFooter)

		if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
			api.GET("/test/public", r.testHandler.TestPublicEndpoint)
		}
	}
}
