package usecase

import (
	"context"

	"fellowpet/internal/domain/entity"
)

// BlogUsecase reads admin-authored blog content.
type BlogUsecase interface {
	// GetBlog retrieves an article and its sections ordered ascending by
	// the stored order field. Returns repository.ErrBlogNotFound when the
	// article does not exist.
	GetBlog(ctx context.Context, slug string) (*entity.Blog, error)

	// ListBlogs retrieves published article summaries, newest first.
	ListBlogs(ctx context.Context) ([]*entity.Blog, error)
}
