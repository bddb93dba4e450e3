package impl

import (
	"context"
	"errors"
	"testing"

	"fellowpet/internal/domain/entity"
	"fellowpet/internal/domain/repository"
	mockRepo "fellowpet/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ResolveService_IndexedPath(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	service := NewCatalogService(mockServiceRepo)

	ctx := context.Background()
	expected := &entity.Service{
		ServiceID:     "sp-001",
		ShopName:      "Acme Boarding",
		CanonicalSlug: "acme-boarding",
	}

	// Mixed case and surrounding whitespace normalize away before the lookup.
	mockServiceRepo.EXPECT().
		FindByCanonicalSlug(ctx, "acme-boarding").
		Return(expected, nil)

	got, err := service.ResolveService(ctx, "  Acme-Boarding ")
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestCatalogService_ResolveService_FallbackPath(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	service := NewCatalogService(mockServiceRepo)

	ctx := context.Background()
	legacy := &entity.Service{
		ServiceID: "sp-legacy",
		ShopName:  "Happy Tails",
		// Predates canonical slug assignment.
		CanonicalSlug: "",
	}

	mockServiceRepo.EXPECT().
		FindByCanonicalSlug(ctx, "happy-tails").
		Return(nil, repository.ErrServiceNotFound)

	mockServiceRepo.EXPECT().
		ListAll(ctx).
		Return([]*entity.Service{
			{ServiceID: "sp-other", ShopName: "Pawsome Place", CanonicalSlug: "pawsome-place"},
			legacy,
		}, nil)

	got, err := service.ResolveService(ctx, "happy-tails")
	require.NoError(t, err)
	assert.Equal(t, legacy, got)
}

func TestCatalogService_ResolveService_EmptySlug(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	service := NewCatalogService(mockServiceRepo)

	ctx := context.Background()

	// No store access for empty or whitespace-only slugs.
	for _, raw := range []string{"", "   ", "\t\n"} {
		got, err := service.ResolveService(ctx, raw)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, repository.ErrServiceNotFound)
	}
}

func TestCatalogService_ResolveService_Miss(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	service := NewCatalogService(mockServiceRepo)

	ctx := context.Background()

	mockServiceRepo.EXPECT().
		FindByCanonicalSlug(ctx, "no-such-shop").
		Return(nil, repository.ErrServiceNotFound)

	mockServiceRepo.EXPECT().
		ListAll(ctx).
		Return([]*entity.Service{
			{ServiceID: "sp-001", ShopName: "Acme Boarding"},
		}, nil)

	got, err := service.ResolveService(ctx, "no-such-shop")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, repository.ErrServiceNotFound)
}

func TestCatalogService_ResolveService_LookupUnavailable(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	service := NewCatalogService(mockServiceRepo)

	ctx := context.Background()

	mockServiceRepo.EXPECT().
		FindByCanonicalSlug(ctx, "acme-boarding").
		Return(nil, repository.ErrLookupUnavailable)

	got, err := service.ResolveService(ctx, "acme-boarding")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, repository.ErrLookupUnavailable)
	assert.False(t, errors.Is(err, repository.ErrServiceNotFound),
		"a failed lookup must not masquerade as a missing service")
}

func TestCatalogService_ResolveService_FallbackScanUnavailable(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	service := NewCatalogService(mockServiceRepo)

	ctx := context.Background()

	mockServiceRepo.EXPECT().
		FindByCanonicalSlug(ctx, "happy-tails").
		Return(nil, repository.ErrServiceNotFound)

	mockServiceRepo.EXPECT().
		ListAll(ctx).
		Return(nil, repository.ErrLookupUnavailable)

	got, err := service.ResolveService(ctx, "happy-tails")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, repository.ErrLookupUnavailable)
}

func TestCatalogService_ServiceDetail(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	service := NewCatalogService(mockServiceRepo)

	ctx := context.Background()
	resolved := &entity.Service{
		ServiceID:     "sp-001",
		ShopName:      "Acme Boarding",
		CanonicalSlug: "acme-boarding",
		StandardPrices: map[string]map[string]float64{
			"dog": {"standard": 500, "premium": 900},
			"cat": {"standard": 350},
		},
	}
	petInfo := []entity.PetInformation{
		{ID: "dog", Data: map[string]any{"max_weight_kg": 40}},
	}

	mockServiceRepo.EXPECT().
		FindByCanonicalSlug(ctx, "acme-boarding").
		Return(resolved, nil)
	mockServiceRepo.EXPECT().
		ListPetInformation(ctx, "sp-001").
		Return(petInfo, nil)
	mockServiceRepo.EXPECT().
		ListReviewRatings(ctx, "sp-001").
		Return([]float64{5, 4, 0, 3}, nil)

	got, err := service.ServiceDetail(ctx, "acme-boarding")
	require.NoError(t, err)
	assert.Equal(t, petInfo, got.PetInformation)
	// Zero ratings are unrated and excluded from the aggregate.
	assert.InDelta(t, 4.0, got.RatingStats.Avg, 1e-9)
	assert.Equal(t, 3, got.RatingStats.Count)
	assert.InDelta(t, 350, got.MinPrice, 1e-9)
}

func TestCatalogService_ServiceDetail_DegradedSubcollections(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	service := NewCatalogService(mockServiceRepo)

	ctx := context.Background()
	resolved := &entity.Service{
		ServiceID:     "sp-001",
		ShopName:      "Acme Boarding",
		CanonicalSlug: "acme-boarding",
	}

	mockServiceRepo.EXPECT().
		FindByCanonicalSlug(ctx, "acme-boarding").
		Return(resolved, nil)
	mockServiceRepo.EXPECT().
		ListPetInformation(ctx, "sp-001").
		Return(nil, repository.ErrLookupUnavailable)
	mockServiceRepo.EXPECT().
		ListReviewRatings(ctx, "sp-001").
		Return(nil, repository.ErrLookupUnavailable)

	got, err := service.ServiceDetail(ctx, "acme-boarding")
	require.NoError(t, err, "secondary data must degrade, not fail the page")
	assert.Empty(t, got.PetInformation)
	assert.Zero(t, got.RatingStats.Avg)
	assert.Zero(t, got.RatingStats.Count)
}

func TestAggregateRatings_ClampsToFive(t *testing.T) {
	stats := aggregateRatings([]float64{9, 8})
	assert.InDelta(t, 5.0, stats.Avg, 1e-9)
	assert.Equal(t, 2, stats.Count)
}

func TestAggregateRatings_Empty(t *testing.T) {
	assert.Equal(t, entity.RatingStats{}, aggregateRatings(nil))
	assert.Equal(t, entity.RatingStats{}, aggregateRatings([]float64{0, 0, -1}))
}
