package impl

import (
	"context"
	"testing"

	"fellowpet/internal/domain/entity"
	"fellowpet/internal/domain/repository"
	mockRepo "fellowpet/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogService_GetBlog(t *testing.T) {
	mockBlogRepo := mockRepo.NewMockBlogRepository(t)
	service := NewBlogService(mockBlogRepo)

	ctx := context.Background()
	article := &entity.Blog{
		Slug:  "puppy-first-boarding",
		Title: "Preparing Your Puppy for Its First Boarding Stay",
	}
	sections := []entity.BlogSection{
		{ID: "s1", Title: "Before You Book", Order: 1},
		{ID: "s2", Title: "Packing Checklist", Order: 2},
	}

	mockBlogRepo.EXPECT().
		FindBySlug(ctx, "puppy-first-boarding").
		Return(article, nil)
	mockBlogRepo.EXPECT().
		ListSections(ctx, "puppy-first-boarding").
		Return(sections, nil)

	got, err := service.GetBlog(ctx, "puppy-first-boarding")
	require.NoError(t, err)
	assert.Equal(t, "Preparing Your Puppy for Its First Boarding Stay", got.Title)
	assert.Equal(t, sections, got.Sections)
}

func TestBlogService_GetBlog_NotFound(t *testing.T) {
	mockBlogRepo := mockRepo.NewMockBlogRepository(t)
	service := NewBlogService(mockBlogRepo)

	ctx := context.Background()

	mockBlogRepo.EXPECT().
		FindBySlug(ctx, "missing").
		Return(nil, repository.ErrBlogNotFound)

	got, err := service.GetBlog(ctx, "missing")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, repository.ErrBlogNotFound)
}

func TestBlogService_ListBlogs(t *testing.T) {
	mockBlogRepo := mockRepo.NewMockBlogRepository(t)
	service := NewBlogService(mockBlogRepo)

	ctx := context.Background()
	published := []*entity.Blog{
		{Slug: "summer-care", Title: "Summer Care for Boarded Pets"},
		{Slug: "puppy-first-boarding", Title: "Preparing Your Puppy"},
	}

	mockBlogRepo.EXPECT().
		ListPublished(ctx).
		Return(published, nil)

	got, err := service.ListBlogs(ctx)
	require.NoError(t, err)
	assert.Equal(t, published, got)
}
