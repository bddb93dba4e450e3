package usecase

import (
	"context"

	"fellowpet/internal/domain/entity"
)

// ContentUsecase reads site-wide CMS documents.
type ContentUsecase interface {
	// GetFooter retrieves the company footer document.
	GetFooter(ctx context.Context) (*entity.Footer, error)
}
