package repository

import (
	"context"

	"fellowpet/internal/domain/entity"
	"fellowpet/internal/errors"
)

// ErrBlogNotFound is returned when no blog article matches the slug.
var ErrBlogNotFound = errors.New("blog not found")

// BlogRepository defines the read operations over admin-authored blog content.
type BlogRepository interface {
	// FindBySlug retrieves a blog document by its slug (document id).
	// Returns ErrBlogNotFound when the document does not exist.
	FindBySlug(ctx context.Context, slug string) (*entity.Blog, error)

	// ListSections retrieves a blog's sections subcollection ordered
	// ascending by the stored order field.
	ListSections(ctx context.Context, slug string) ([]entity.BlogSection, error)

	// ListPublished retrieves blog summaries ordered by creation time,
	// newest first. Sections are not populated.
	ListPublished(ctx context.Context) ([]*entity.Blog, error)
}
