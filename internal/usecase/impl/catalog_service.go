package impl

import (
	"context"
	"errors"
	"fmt"

	"fellowpet/internal/domain/entity"
	"fellowpet/internal/domain/repository"
	"fellowpet/internal/slug"
	"fellowpet/internal/usecase"
)

type catalogService struct {
	serviceRepo repository.ServiceRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(serviceRepo repository.ServiceRepository) usecase.CatalogUsecase {
	return &catalogService{
		serviceRepo: serviceRepo,
	}
}

// ResolveService resolves a slug to its canonical service record.
//
// The indexed canonical-slug lookup is the common path. Records created
// before slug assignment have no canonical slug, so a miss falls back to a
// linear scan that recomputes each record's slug from its shop name. The
// scan is acceptable at catalog scale only; making the canonical slug
// mandatory at write time would remove it.
func (s *catalogService) ResolveService(ctx context.Context, rawSlug string) (*entity.Service, error) {
	cleaned := slug.Normalize(rawSlug)
	if cleaned == "" {
		return nil, repository.ErrServiceNotFound
	}

	service, err := s.serviceRepo.FindByCanonicalSlug(ctx, cleaned)
	if err == nil {
		return service, nil
	}
	if !errors.Is(err, repository.ErrServiceNotFound) {
		return nil, fmt.Errorf("failed to find service by canonical slug: %w", err)
	}

	// Fallback: derive each record's slug from its shop name.
	candidates, err := s.serviceRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services for fallback scan: %w", err)
	}

	for _, candidate := range candidates {
		if slug.Slugify(candidate.ShopName) == cleaned {
			return candidate, nil
		}
	}

	return nil, repository.ErrServiceNotFound
}

// ServiceDetail resolves a slug and attaches the pet information entries
// and the review aggregate. Subcollection reads degrade to empty values so
// a detail page never fails on secondary data.
func (s *catalogService) ServiceDetail(ctx context.Context, rawSlug string) (*entity.Service, error) {
	service, err := s.ResolveService(ctx, rawSlug)
	if err != nil {
		return nil, err
	}

	if petInfo, err := s.serviceRepo.ListPetInformation(ctx, service.ServiceID); err == nil {
		service.PetInformation = petInfo
	} else {
		service.PetInformation = []entity.PetInformation{}
	}

	if ratings, err := s.serviceRepo.ListReviewRatings(ctx, service.ServiceID); err == nil {
		service.RatingStats = aggregateRatings(ratings)
	} else {
		service.RatingStats = entity.RatingStats{}
	}

	service.MinPrice = service.LowestPrice()

	return service, nil
}

// aggregateRatings averages the positive ratings, clamped to [0, 5].
// Zero and negative values count as unrated and are skipped.
func aggregateRatings(ratings []float64) entity.RatingStats {
	var sum float64
	count := 0
	for _, r := range ratings {
		if r > 0 {
			sum += r
			count++
		}
	}
	if count == 0 {
		return entity.RatingStats{}
	}

	avg := sum / float64(count)
	if avg > 5 {
		avg = 5
	}
	if avg < 0 {
		avg = 0
	}

	return entity.RatingStats{Avg: avg, Count: count}
}
