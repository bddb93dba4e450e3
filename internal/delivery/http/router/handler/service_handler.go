package handler

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"fellowpet/config"
	"fellowpet/internal/delivery/http/response"
	"fellowpet/internal/domain/entity"
	domainerrors "fellowpet/internal/domain/errors"
	"fellowpet/internal/domain/repository"
	"fellowpet/internal/domain/service"
	"fellowpet/internal/slug"
	"fellowpet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const shopImagePlaceholder = "/assets/pet_card_placeholder.jpg"

// ServiceHandlerParams holds dependencies for ServiceHandler, injected by Fx.
type ServiceHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	RankingUC usecase.RankingUsecase
	SEOUC     usecase.SEOUsecase
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// ServiceHandler holds dependencies for catalog-related handlers
type ServiceHandler struct {
	catalogUC usecase.CatalogUsecase
	rankingUC usecase.RankingUsecase
	seoUC     usecase.SEOUsecase
	qrCode    service.QRCodeService
	config    *config.Config
	logger    *slog.Logger
}

// NewServiceHandler is the constructor for ServiceHandler
func NewServiceHandler(params ServiceHandlerParams) *ServiceHandler {
	return &ServiceHandler{
		catalogUC: params.CatalogUC,
		rankingUC: params.RankingUC,
		seoUC:     params.SEOUC,
		qrCode:    params.QRCode,
		config:    params.Config,
		logger:    params.Logger,
	}
}

// ServiceCardResponse is one shop-level card of the nearby listing.
type ServiceCardResponse struct {
	ServiceID     string   `json:"service_id"`
	ShopName      string   `json:"shop_name"`
	AreaName      string   `json:"area_name"`
	SEOSlug       string   `json:"seo_slug"`
	ShopImage     string   `json:"shop_image"`
	Pets          []string `json:"pets"`
	MinPrice      float64  `json:"min_price"`
	DistanceKm    *float64 `json:"distance_km"` // null when the branch has no coordinates
	OtherBranches []string `json:"other_branches"`
}

// ServiceDetailResponse is the full detail page payload.
type ServiceDetailResponse struct {
	Service        ServiceDetailDTO `json:"service"`
	Meta           usecase.PageMeta `json:"meta"`
	StructuredData []map[string]any `json:"structured_data"`
}

// ServiceDetailDTO mirrors the service document shape on the wire.
type ServiceDetailDTO struct {
	ServiceID      string                        `json:"service_id"`
	ShopName       string                        `json:"shop_name"`
	SEOSlug        string                        `json:"seo_slug"`
	AreaName       string                        `json:"area_name"`
	District       string                        `json:"district"`
	DistrictSlug   string                        `json:"district_slug"`
	State          string                        `json:"state"`
	Street         string                        `json:"street"`
	FullAddress    string                        `json:"full_address"`
	PostalCode     string                        `json:"postal_code"`
	Description    string                        `json:"description"`
	OwnerPhone     string                        `json:"owner_phone"`
	Location       *entity.GeoPoint              `json:"location,omitempty"`
	Pets           []string                      `json:"pets"`
	ShopLogo       string                        `json:"shop_logo"`
	ImageURLs      []string                      `json:"image_urls"`
	OpenTime       string                        `json:"open_time"`
	CloseTime      string                        `json:"close_time"`
	StandardPrices map[string]map[string]float64 `json:"standard_prices"`
	MinPrice       float64                       `json:"min_price"`
	RatingStats    entity.RatingStats            `json:"rating_stats"`
	PetInformation []entity.PetInformation       `json:"pet_information"`
}

// NearbyServices handles the ranked nearby listing
func (h *ServiceHandler) NearbyServices(c echo.Context) error {
	caller, err := h.callerLocation(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "Invalid latitude or longitude")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "Invalid limit value")
		}
		limit = parsed
	}

	cards, err := h.rankingUC.NearbyCards(c.Request().Context(), caller, limit)
	if err != nil {
		return h.handleCatalogError(c, err)
	}

	// An empty list is a valid result, not an error.
	payload := make([]ServiceCardResponse, 0, len(cards))
	for _, card := range cards {
		payload = append(payload, toCardResponse(card))
	}

	return response.Success(c, http.StatusOK, payload, "Nearby services retrieved successfully")
}

// GetService handles the detail page payload for one slug
func (h *ServiceHandler) GetService(c echo.Context) error {
	detail, err := h.catalogUC.ServiceDetail(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleCatalogError(c, err)
	}

	payload := ServiceDetailResponse{
		Service:        toDetailDTO(detail),
		Meta:           h.seoUC.PageMeta(detail),
		StructuredData: h.seoUC.StructuredData(detail),
	}

	return response.Success(c, http.StatusOK, payload, "Service retrieved successfully")
}

// GetServiceQR handles the PNG share QR of a service page
func (h *ServiceHandler) GetServiceQR(c echo.Context) error {
	resolved, err := h.catalogUC.ResolveService(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleCatalogError(c, err)
	}

	png, err := h.qrCode.ServicePageQR(h.seoUC.CanonicalURL(resolved))
	if err != nil {
		return errors.Wrap(err, "failed to generate service page QR")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// callerLocation reads lat/lon query params, falling back to the
// configured default location when both are absent.
func (h *ServiceHandler) callerLocation(c echo.Context) (entity.GeoPoint, error) {
	rawLat, rawLon := c.QueryParam("lat"), c.QueryParam("lon")
	if rawLat == "" && rawLon == "" {
		return entity.GeoPoint{
			Latitude:  h.config.Site.DefaultLatitude,
			Longitude: h.config.Site.DefaultLongitude,
		}, nil
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil || lat < -90 || lat > 90 {
		return entity.GeoPoint{}, errors.New("invalid latitude")
	}

	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil || lon < -180 || lon > 180 {
		return entity.GeoPoint{}, errors.New("invalid longitude")
	}

	return entity.GeoPoint{Latitude: lat, Longitude: lon}, nil
}

// handleCatalogError maps catalog sentinels to their HTTP representations
func (h *ServiceHandler) handleCatalogError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	switch {
	case errors.Is(err, repository.ErrServiceNotFound):
		appErr = domainerrors.ErrServiceNotFound
	case errors.Is(err, repository.ErrLookupUnavailable):
		appErr = domainerrors.ErrLookupUnavailable
	default:
		return errors.WithStack(err)
	}

	return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
}

func toCardResponse(card *entity.RankedCard) ServiceCardResponse {
	branch := card.Service

	shopImage := branch.ShopLogo
	if shopImage == "" {
		shopImage = shopImagePlaceholder
	}

	seoSlug := branch.CanonicalSlug
	if seoSlug == "" {
		seoSlug = slug.Slugify(branch.ShopName)
	}

	return ServiceCardResponse{
		ServiceID:     branch.ServiceID,
		ShopName:      branch.ShopName,
		AreaName:      branch.AreaName,
		SEOSlug:       seoSlug,
		ShopImage:     shopImage,
		Pets:          branch.Pets,
		MinPrice:      branch.MinPrice,
		DistanceKm:    roundedDistance(card.DistanceKm),
		OtherBranches: card.OtherBranchIDs,
	}
}

func toDetailDTO(detail *entity.Service) ServiceDetailDTO {
	seoSlug := detail.CanonicalSlug
	if seoSlug == "" {
		seoSlug = slug.Slugify(detail.ShopName)
	}

	return ServiceDetailDTO{
		ServiceID:      detail.ServiceID,
		ShopName:       detail.ShopName,
		SEOSlug:        seoSlug,
		AreaName:       detail.AreaName,
		District:       detail.District,
		DistrictSlug:   detail.DistrictSlug,
		State:          detail.State,
		Street:         detail.Street,
		FullAddress:    detail.FullAddress,
		PostalCode:     detail.PostalCode,
		Description:    detail.Description,
		OwnerPhone:     detail.OwnerPhone,
		Location:       detail.Location,
		Pets:           detail.Pets,
		ShopLogo:       detail.ShopLogo,
		ImageURLs:      detail.ImageURLs,
		OpenTime:       detail.OpenTime,
		CloseTime:      detail.CloseTime,
		StandardPrices: detail.StandardPrices,
		MinPrice:       detail.MinPrice,
		RatingStats:    detail.RatingStats,
		PetInformation: detail.PetInformation,
	}
}

// roundedDistance rounds to two decimals for the wire; unknown distances
// (no coordinates) serialize as null rather than a sentinel number.
func roundedDistance(distanceKm float64) *float64 {
	if math.IsInf(distanceKm, 1) {
		return nil
	}

	rounded := math.Round(distanceKm*100) / 100

	return &rounded
}
