package handler

import (
	"log/slog"
	"net/http"

	"fellowpet/internal/delivery/http/response"
	"fellowpet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ContentHandlerParams holds dependencies for ContentHandler, injected by Fx.
type ContentHandlerParams struct {
	fx.In

	ContentUC usecase.ContentUsecase
	Logger    *slog.Logger
}

// ContentHandler holds dependencies for site-wide CMS content handlers
type ContentHandler struct {
	contentUC usecase.ContentUsecase
	logger    *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler
func NewContentHandler(params ContentHandlerParams) *ContentHandler {
	return &ContentHandler{
		contentUC: params.ContentUC,
		logger:    params.Logger,
	}
}

// GetFooter handles the company footer document
func (h *ContentHandler) GetFooter(c echo.Context) error {
	footer, err := h.contentUC.GetFooter(c.Request().Context())
	if err != nil {
		return errors.Wrap(err, "failed to get footer")
	}

	return response.Success(c, http.StatusOK, footer, "Footer retrieved successfully")
}
