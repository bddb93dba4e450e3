package firestore

import (
	"context"

	"cloud.google.com/go/firestore"

	"fellowpet/internal/domain/entity"
	"fellowpet/internal/domain/repository"
	"fellowpet/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	companyDocumentsCollection = "company_documents"
	footerDocument             = "footer"
)

// contentRepository implements the repository.ContentRepository interface.
type contentRepository struct {
	client *firestore.Client
}

// NewContentRepository is the constructor for contentRepository.
func NewContentRepository(client *firestore.Client) repository.ContentRepository {
	return &contentRepository{client: client}
}

// GetFooter retrieves the single company footer document. A missing
// document yields an empty footer rather than an error; pages render
// without it.
func (repo *contentRepository) GetFooter(ctx context.Context) (*entity.Footer, error) {
	doc, err := repo.client.Collection(companyDocumentsCollection).Doc(footerDocument).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return &entity.Footer{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get footer document")
	}

	var footerM model.FooterModel
	if err := doc.DataTo(&footerM); err != nil {
		return nil, errors.Wrap(err, "failed to decode footer document")
	}

	return &entity.Footer{
		WhatsApp:        footerM.WhatsApp,
		WhatsAppMessage: footerM.WhatsAppMessage,
		Email:           footerM.Email,
		Instagram:       footerM.Instagram,
		AboutUs:         footerM.AboutUs,
		Careers:         footerM.Careers,
		ContactUs:       footerM.ContactUs,
	}, nil
}
