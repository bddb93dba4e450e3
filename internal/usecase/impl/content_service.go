package impl

import (
	"context"
	"fmt"

	"fellowpet/internal/domain/entity"
	"fellowpet/internal/domain/repository"
	"fellowpet/internal/usecase"
)

type contentService struct {
	contentRepo repository.ContentRepository
}

// NewContentService creates a new content service instance
func NewContentService(contentRepo repository.ContentRepository) usecase.ContentUsecase {
	return &contentService{
		contentRepo: contentRepo,
	}
}

// GetFooter retrieves the company footer document.
func (s *contentService) GetFooter(ctx context.Context) (*entity.Footer, error) {
	footer, err := s.contentRepo.GetFooter(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get footer document: %w", err)
	}

	return footer, nil
}
