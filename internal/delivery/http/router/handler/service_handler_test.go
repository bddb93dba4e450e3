package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fellowpet/config"
	"fellowpet/internal/domain/entity"
	"fellowpet/internal/domain/repository"
	"fellowpet/internal/infra/qrcode"
	mockRepo "fellowpet/internal/mocks/repository"
	"fellowpet/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testSiteConfig() *config.Config {
	return &config.Config{
		Site: &config.SiteConfig{
			BaseURL:          "https://myfellowpet.com",
			Country:          "india",
			ServiceType:      "boarding",
			DefaultLatitude:  12.9716,
			DefaultLongitude: 77.5946,
			CardLimit:        10,
		},
		QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"},
	}
}

func newTestServiceHandler(serviceRepo *mockRepo.MockServiceRepository, feed *mockRepo.MockBranchFeed) *ServiceHandler {
	cfg := testSiteConfig()

	return &ServiceHandler{
		catalogUC: impl.NewCatalogService(serviceRepo),
		rankingUC: impl.NewRankingService(feed, cfg),
		seoUC:     impl.NewSEOService(serviceRepo, cfg),
		qrCode:    qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel),
		config:    cfg,
		logger:    slog.Default(),
	}
}

func doRequest(t *testing.T, target string, handlerFn echo.HandlerFunc, params ...string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}

	require.NoError(t, handlerFn(c))

	return rec
}

func TestServiceHandler_NearbyServices(t *testing.T) {
	mockFeed := mockRepo.NewMockBranchFeed(t)
	handler := newTestServiceHandler(nil, mockFeed)

	near := &entity.Service{
		ServiceID:     "sp-near",
		ShopName:      "Bark Avenue",
		AreaName:      "Indiranagar",
		CanonicalSlug: "bark-avenue",
		Location:      &entity.GeoPoint{Latitude: 12.9716 + 0.009, Longitude: 77.5946},
		StandardPrices: map[string]map[string]float64{
			"dog": {"standard": 450},
		},
	}
	unlocated := &entity.Service{ServiceID: "sp-no-geo", ShopName: "Mystery Kennel"}

	mockFeed.EXPECT().
		EligibleBranches(mock.Anything).
		Return([]*entity.Service{unlocated, near}, nil)

	rec := doRequest(t, "/api/services/nearby", handler.NearbyServices)
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool                  `json:"success"`
		Data    []ServiceCardResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	require.Len(t, envelope.Data, 2)

	// Located branch ranks first; its distance is rounded to two decimals.
	first := envelope.Data[0]
	assert.Equal(t, "sp-near", first.ServiceID)
	assert.Equal(t, "bark-avenue", first.SEOSlug)
	assert.InDelta(t, 450, first.MinPrice, 1e-9)
	require.NotNil(t, first.DistanceKm)
	assert.InDelta(t, 1.0, *first.DistanceKm, 0.05)

	// Missing coordinates serialize as null, not a sentinel number.
	second := envelope.Data[1]
	assert.Equal(t, "sp-no-geo", second.ServiceID)
	assert.Nil(t, second.DistanceKm)
	assert.Equal(t, shopImagePlaceholder, second.ShopImage)
}

func TestServiceHandler_NearbyServices_InvalidCoordinates(t *testing.T) {
	handler := newTestServiceHandler(nil, nil)

	for _, target := range []string{
		"/api/services/nearby?lat=abc&lon=77.6",
		"/api/services/nearby?lat=95&lon=77.6",
		"/api/services/nearby?lat=12.9&lon=190",
	} {
		rec := doRequest(t, target, handler.NearbyServices)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestServiceHandler_GetService_NotFound(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	handler := newTestServiceHandler(mockServiceRepo, nil)

	mockServiceRepo.EXPECT().
		FindByCanonicalSlug(mock.Anything, "no-such-shop").
		Return(nil, repository.ErrServiceNotFound)
	mockServiceRepo.EXPECT().
		ListAll(mock.Anything).
		Return([]*entity.Service{}, nil)

	rec := doRequest(t, "/api/services/no-such-shop", handler.GetService, "slug", "no-such-shop")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "SERVICE_NOT_FOUND")
}

func TestServiceHandler_GetService_LookupUnavailable(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	handler := newTestServiceHandler(mockServiceRepo, nil)

	mockServiceRepo.EXPECT().
		FindByCanonicalSlug(mock.Anything, "acme-boarding").
		Return(nil, repository.ErrLookupUnavailable)

	rec := doRequest(t, "/api/services/acme-boarding", handler.GetService, "slug", "acme-boarding")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "LOOKUP_UNAVAILABLE")
}

func TestServiceHandler_GetService(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	handler := newTestServiceHandler(mockServiceRepo, nil)

	resolved := &entity.Service{
		ServiceID:     "sp-001",
		ShopName:      "Acme Boarding",
		CanonicalSlug: "acme-boarding",
		AreaName:      "Indiranagar",
		District:      "Bengaluru Urban",
		State:         "Karnataka",
	}

	mockServiceRepo.EXPECT().
		FindByCanonicalSlug(mock.Anything, "acme-boarding").
		Return(resolved, nil)
	mockServiceRepo.EXPECT().
		ListPetInformation(mock.Anything, "sp-001").
		Return([]entity.PetInformation{}, nil)
	mockServiceRepo.EXPECT().
		ListReviewRatings(mock.Anything, "sp-001").
		Return([]float64{}, nil)

	rec := doRequest(t, "/api/services/acme-boarding", handler.GetService, "slug", "acme-boarding")
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data ServiceDetailResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "sp-001", envelope.Data.Service.ServiceID)
	assert.NotEmpty(t, envelope.Data.Meta.CanonicalURL)
	// No ratings: LocalBusiness, FAQPage, and BreadcrumbList only.
	assert.Len(t, envelope.Data.StructuredData, 3)
}

func TestServiceHandler_GetServiceQR(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	handler := newTestServiceHandler(mockServiceRepo, nil)

	mockServiceRepo.EXPECT().
		FindByCanonicalSlug(mock.Anything, "acme-boarding").
		Return(&entity.Service{
			ServiceID:     "sp-001",
			ShopName:      "Acme Boarding",
			CanonicalSlug: "acme-boarding",
			AreaName:      "Indiranagar",
			District:      "Bengaluru Urban",
			State:         "Karnataka",
		}, nil)

	rec := doRequest(t, "/api/services/acme-boarding/qr", handler.GetServiceQR, "slug", "acme-boarding")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))

	body := rec.Body.Bytes()
	require.NotEmpty(t, body)
	assert.Equal(t, byte(0x89), body[0])
	assert.Equal(t, byte(0x50), body[1])
}
