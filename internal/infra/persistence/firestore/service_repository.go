package firestore

import (
	"context"

	"cloud.google.com/go/firestore"

	"fellowpet/config"
	"fellowpet/internal/domain/entity"
	"fellowpet/internal/domain/repository"
	"fellowpet/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// Review documents live in a separate tree keyed by the service id:
// public_review/service_providers/sps/{serviceID}/reviews.
const (
	reviewRootCollection    = "public_review"
	reviewProvidersDocument = "service_providers"
	reviewProvidersSubtree  = "sps"
	reviewsSubcollection    = "reviews"

	petInformationSubcollection = "pet_information"
)

// serviceRepository implements the repository.ServiceRepository interface.
type serviceRepository struct {
	client     *firestore.Client
	collection string
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(client *firestore.Client, cfg *config.Config) repository.ServiceRepository {
	return &serviceRepository{
		client:     client,
		collection: cfg.Firestore.ServiceCollection,
	}
}

// FindByCanonicalSlug retrieves the single document whose indexed seo_slug
// field equals slug.
func (repo *serviceRepository) FindByCanonicalSlug(ctx context.Context, slug string) (*entity.Service, error) {
	iter := repo.client.Collection(repo.collection).
		Where("seo_slug", "==", slug).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrServiceNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(repository.ErrLookupUnavailable, "query seo_slug: %v", err)
	}

	return docToServiceDomain(doc)
}

// ListAll retrieves every service document in the collection.
func (repo *serviceRepository) ListAll(ctx context.Context) ([]*entity.Service, error) {
	return repo.collectServices(repo.client.Collection(repo.collection).Documents(ctx))
}

// ListDisplayEligible retrieves the documents participating in the nearby
// listing.
func (repo *serviceRepository) ListDisplayEligible(ctx context.Context) ([]*entity.Service, error) {
	iter := repo.client.Collection(repo.collection).
		Where("display", "==", true).
		Documents(ctx)

	return repo.collectServices(iter)
}

// ListPetInformation retrieves the pet_information subcollection of a
// service document. The payload stays an unshaped map.
func (repo *serviceRepository) ListPetInformation(ctx context.Context, serviceID string) ([]entity.PetInformation, error) {
	iter := repo.client.Collection(repo.collection).
		Doc(serviceID).
		Collection(petInformationSubcollection).
		Documents(ctx)
	defer iter.Stop()

	entries := []entity.PetInformation{}
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(repository.ErrLookupUnavailable, "list pet information: %v", err)
		}

		entries = append(entries, entity.PetInformation{
			ID:   doc.Ref.ID,
			Data: doc.Data(),
		})
	}

	return entries, nil
}

// ListReviewRatings retrieves the raw rating values of a service's reviews.
func (repo *serviceRepository) ListReviewRatings(ctx context.Context, serviceID string) ([]float64, error) {
	iter := repo.client.Collection(reviewRootCollection).
		Doc(reviewProvidersDocument).
		Collection(reviewProvidersSubtree).
		Doc(serviceID).
		Collection(reviewsSubcollection).
		Documents(ctx)
	defer iter.Stop()

	ratings := []float64{}
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(repository.ErrLookupUnavailable, "list review ratings: %v", err)
		}

		var review model.ReviewModel
		if err := doc.DataTo(&review); err != nil {
			// A malformed review counts as unrated rather than failing
			// the whole aggregate.
			ratings = append(ratings, 0)

			continue
		}
		ratings = append(ratings, review.Rating)
	}

	return ratings, nil
}

func (repo *serviceRepository) collectServices(iter *firestore.DocumentIterator) ([]*entity.Service, error) {
	defer iter.Stop()

	services := []*entity.Service{}
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(repository.ErrLookupUnavailable, "iterate services: %v", err)
		}

		service, err := docToServiceDomain(doc)
		if err != nil {
			// Skip documents that no longer match the schema instead of
			// poisoning the whole listing.
			continue
		}
		services = append(services, service)
	}

	return services, nil
}

// docToServiceDomain decodes a snapshot and converts it to the domain entity.
func docToServiceDomain(doc *firestore.DocumentSnapshot) (*entity.Service, error) {
	var serviceM model.ServiceModel
	if err := doc.DataTo(&serviceM); err != nil {
		return nil, errors.Wrap(err, "failed to decode service document")
	}

	return toServiceDomain(doc.Ref.ID, &serviceM), nil
}

func toServiceDomain(id string, serviceM *model.ServiceModel) *entity.Service {
	service := &entity.Service{
		ServiceID:       id,
		ShopName:        serviceM.ShopName,
		CanonicalSlug:   serviceM.SEOSlug,
		AreaName:        serviceM.AreaName,
		District:        serviceM.District,
		DistrictSlug:    serviceM.DistrictSlug,
		State:           serviceM.State,
		Street:          serviceM.Street,
		FullAddress:     serviceM.FullAddress,
		PostalCode:      serviceM.PostalCode,
		Description:     serviceM.Description,
		OwnerPhone:      serviceM.OwnerPhone,
		DisplayEligible: serviceM.Display,
		Pets:            serviceM.Pets,
		ShopLogo:        serviceM.ShopLogo,
		ImageURLs:       serviceM.ImageURLs,
		OpenTime:        serviceM.OpenTime,
		CloseTime:       serviceM.CloseTime,
		StandardPrices:  serviceM.StandardPrices,
	}

	if coords := serviceM.Coordinates(); coords != nil {
		service.Location = &entity.GeoPoint{
			Latitude:  coords.GetLatitude(),
			Longitude: coords.GetLongitude(),
		}
	}

	return service
}
