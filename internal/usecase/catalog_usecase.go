package usecase

import (
	"context"

	"fellowpet/internal/domain/entity"
)

// CatalogUsecase resolves human-readable path segments to canonical
// service records and assembles the detail view of a record.
type CatalogUsecase interface {
	// ResolveService resolves a slug to its canonical service record.
	// The indexed canonical-slug lookup runs first; on miss a bounded
	// linear scan compares the slug derived from each record's shop name.
	// Returns repository.ErrServiceNotFound when nothing matches and
	// repository.ErrLookupUnavailable when the store cannot be queried.
	ResolveService(ctx context.Context, slug string) (*entity.Service, error)

	// ServiceDetail resolves a slug and attaches the record's pet
	// information entries and review aggregate. Subcollection failures
	// degrade to empty values; only the resolve itself can fail.
	ServiceDetail(ctx context.Context, slug string) (*entity.Service, error)
}
