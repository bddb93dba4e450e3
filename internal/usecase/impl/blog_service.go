package impl

import (
	"context"
	"fmt"

	"fellowpet/internal/domain/entity"
	"fellowpet/internal/domain/repository"
	"fellowpet/internal/usecase"
)

type blogService struct {
	blogRepo repository.BlogRepository
}

// NewBlogService creates a new blog service instance
func NewBlogService(blogRepo repository.BlogRepository) usecase.BlogUsecase {
	return &blogService{
		blogRepo: blogRepo,
	}
}

// GetBlog retrieves an article and its ordered sections.
func (s *blogService) GetBlog(ctx context.Context, slug string) (*entity.Blog, error) {
	blog, err := s.blogRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to find blog by slug: %w", err)
	}

	sections, err := s.blogRepo.ListSections(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog sections: %w", err)
	}
	blog.Sections = sections

	return blog, nil
}

// ListBlogs retrieves published article summaries, newest first.
func (s *blogService) ListBlogs(ctx context.Context) ([]*entity.Blog, error) {
	blogs, err := s.blogRepo.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list published blogs: %w", err)
	}

	return blogs, nil
}
