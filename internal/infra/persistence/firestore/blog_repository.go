package firestore

import (
	"context"

	"cloud.google.com/go/firestore"

	"fellowpet/internal/domain/entity"
	"fellowpet/internal/domain/repository"
	"fellowpet/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Blog documents live under settings/blogs/admin_blogs/{slug}, with the
// article body split into an ordered sections subcollection.
const (
	settingsCollection    = "settings"
	blogsDocument         = "blogs"
	adminBlogsSubtree     = "admin_blogs"
	sectionsSubcollection = "sections"
)

// blogRepository implements the repository.BlogRepository interface.
type blogRepository struct {
	client *firestore.Client
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(client *firestore.Client) repository.BlogRepository {
	return &blogRepository{client: client}
}

func (repo *blogRepository) adminBlogs() *firestore.CollectionRef {
	return repo.client.Collection(settingsCollection).
		Doc(blogsDocument).
		Collection(adminBlogsSubtree)
}

// FindBySlug retrieves one article document. The slug is the document id.
func (repo *blogRepository) FindBySlug(ctx context.Context, slug string) (*entity.Blog, error) {
	doc, err := repo.adminBlogs().Doc(slug).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, repository.ErrBlogNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get blog document")
	}

	var blogM model.BlogModel
	if err := doc.DataTo(&blogM); err != nil {
		return nil, errors.Wrap(err, "failed to decode blog document")
	}

	return toBlogDomain(doc.Ref.ID, &blogM), nil
}

// ListSections retrieves an article's sections in authored order.
func (repo *blogRepository) ListSections(ctx context.Context, slug string) ([]entity.BlogSection, error) {
	iter := repo.adminBlogs().
		Doc(slug).
		Collection(sectionsSubcollection).
		OrderBy("order", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	sections := []entity.BlogSection{}
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate blog sections")
		}

		var sectionM model.BlogSectionModel
		if err := doc.DataTo(&sectionM); err != nil {
			return nil, errors.Wrap(err, "failed to decode blog section")
		}

		sections = append(sections, entity.BlogSection{
			ID:      doc.Ref.ID,
			Title:   sectionM.Title,
			Content: sectionM.Content,
			Image:   sectionM.Image,
			Order:   sectionM.Order,
		})
	}

	return sections, nil
}

// ListPublished retrieves the article summaries, newest first.
func (repo *blogRepository) ListPublished(ctx context.Context) ([]*entity.Blog, error) {
	iter := repo.adminBlogs().
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	blogs := []*entity.Blog{}
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate blogs")
		}

		var blogM model.BlogModel
		if err := doc.DataTo(&blogM); err != nil {
			return nil, errors.Wrap(err, "failed to decode blog document")
		}

		blogs = append(blogs, toBlogDomain(doc.Ref.ID, &blogM))
	}

	return blogs, nil
}

func toBlogDomain(slug string, blogM *model.BlogModel) *entity.Blog {
	return &entity.Blog{
		Slug:        slug,
		Title:       blogM.Title,
		Excerpt:     blogM.Excerpt,
		MainImage:   blogM.MainImage,
		Tags:        blogM.Tags,
		Author:      entity.BlogAuthor{Name: blogM.Author.Name},
		CreatedAt:   blogM.CreatedAt,
		PublishedAt: blogM.PublishedAt,
	}
}
