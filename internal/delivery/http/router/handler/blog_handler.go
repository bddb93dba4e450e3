package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fellowpet/internal/delivery/http/response"
	"fellowpet/internal/domain/entity"
	domainerrors "fellowpet/internal/domain/errors"
	"fellowpet/internal/domain/repository"
	"fellowpet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BlogHandlerParams holds dependencies for BlogHandler, injected by Fx.
type BlogHandlerParams struct {
	fx.In

	BlogUC usecase.BlogUsecase
	Logger *slog.Logger
}

// BlogHandler holds dependencies for blog-related handlers
type BlogHandler struct {
	blogUC usecase.BlogUsecase
	logger *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler
func NewBlogHandler(params BlogHandlerParams) *BlogHandler {
	return &BlogHandler{
		blogUC: params.BlogUC,
		logger: params.Logger,
	}
}

// BlogResponse mirrors the blog document shape on the wire.
type BlogResponse struct {
	Slug        string               `json:"slug"`
	Title       string               `json:"title"`
	Excerpt     string               `json:"excerpt,omitempty"`
	MainImage   string               `json:"main_image,omitempty"`
	Tags        []string             `json:"tags,omitempty"`
	Author      entity.BlogAuthor    `json:"author"`
	CreatedAt   *time.Time           `json:"created_at,omitempty"`
	PublishedAt string               `json:"published_at,omitempty"`
	Sections    []entity.BlogSection `json:"sections,omitempty"`
}

// ListBlogs handles the published article listing
func (h *BlogHandler) ListBlogs(c echo.Context) error {
	blogs, err := h.blogUC.ListBlogs(c.Request().Context())
	if err != nil {
		return errors.Wrap(err, "failed to list blogs")
	}

	payload := make([]BlogResponse, 0, len(blogs))
	for _, blog := range blogs {
		payload = append(payload, toBlogResponse(blog))
	}

	return response.Success(c, http.StatusOK, payload, "Blogs retrieved successfully")
}

// GetBlog handles one article with its ordered sections
func (h *BlogHandler) GetBlog(c echo.Context) error {
	blog, err := h.blogUC.GetBlog(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			appErr := domainerrors.ErrBlogNotFound

			return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
		}

		return errors.Wrap(err, "failed to get blog")
	}

	return response.Success(c, http.StatusOK, toBlogResponse(blog), "Blog retrieved successfully")
}

func toBlogResponse(blog *entity.Blog) BlogResponse {
	resp := BlogResponse{
		Slug:        blog.Slug,
		Title:       blog.Title,
		Excerpt:     blog.Excerpt,
		MainImage:   blog.MainImage,
		Tags:        blog.Tags,
		Author:      blog.Author,
		PublishedAt: blog.PublishedAt,
		Sections:    blog.Sections,
	}

	if !blog.CreatedAt.IsZero() {
		createdAt := blog.CreatedAt
		resp.CreatedAt = &createdAt
	}

	return resp
}
