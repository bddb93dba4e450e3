package repository

import (
	"context"

	"fellowpet/internal/domain/entity"
)

// ContentRepository reads site-wide CMS documents (footer, contact info).
type ContentRepository interface {
	// GetFooter retrieves the company footer document. A missing document
	// yields a zero-value footer, not an error.
	GetFooter(ctx context.Context) (*entity.Footer, error)
}
