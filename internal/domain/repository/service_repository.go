// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"fellowpet/internal/domain/entity"
	"fellowpet/internal/errors"
)

// Domain-specific errors for service persistence.
var (
	// ErrServiceNotFound is returned when no service matches the lookup.
	ErrServiceNotFound = errors.New("service not found")
	// ErrLookupUnavailable is returned when the store could not be reached or
	// queried. It is deliberately distinct from ErrServiceNotFound: a lookup
	// that could not run says nothing about whether the service exists.
	ErrLookupUnavailable = errors.New("service lookup unavailable")
)

// ServiceRepository defines the read operations over the boarding service
// catalog. All operations are read-only from this component's perspective.
type ServiceRepository interface {
	// FindByCanonicalSlug retrieves the single service whose indexed
	// canonical-slug field equals slug. Returns ErrServiceNotFound when no
	// document matches and ErrLookupUnavailable on store failure.
	FindByCanonicalSlug(ctx context.Context, slug string) (*entity.Service, error)

	// ListAll retrieves every service document. Used only as the resolver's
	// fallback scan; bounded by the catalog size.
	ListAll(ctx context.Context) ([]*entity.Service, error)

	// ListDisplayEligible retrieves the services participating in the
	// nearby listing (displayEligible == true).
	ListDisplayEligible(ctx context.Context) ([]*entity.Service, error)

	// ListPetInformation retrieves the pet_information subcollection of a
	// service document.
	ListPetInformation(ctx context.Context, serviceID string) ([]entity.PetInformation, error)

	// ListReviewRatings retrieves the raw rating values of a service's
	// reviews subcollection. Zero and missing ratings are included as 0.
	ListReviewRatings(ctx context.Context, serviceID string) ([]float64, error)
}

// BranchFeed provides the current set of display-eligible branches the
// ranker runs over. A live implementation re-reads its snapshot on every
// call; the ranking itself stays a pure function of the returned slice.
type BranchFeed interface {
	EligibleBranches(ctx context.Context) ([]*entity.Service, error)
}
