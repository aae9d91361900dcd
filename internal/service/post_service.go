package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/eduhub-platform/backend/internal/content"
	"github.com/eduhub-platform/backend/internal/domain"
	"github.com/eduhub-platform/backend/internal/dto"
	"github.com/eduhub-platform/backend/internal/query"
	"github.com/eduhub-platform/backend/internal/repository"
	"github.com/eduhub-platform/backend/pkg/telemetry"
)

var (
	ErrPostNotFound      = errors.New("post not found")
	ErrPostAlreadyExists = errors.New("post with this slug already exists")
)

// PostService defines the interface for blog post operations
type PostService interface {
	// List returns a page of published posts matching the descriptor,
	// completed to the current public schema with the body stripped,
	// together with the full matching count
	List(ctx context.Context, q query.Descriptor) ([]domain.Post, int64, error)
	// GetBySlug returns one completed post
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
	// Create stores a new post
	Create(ctx context.Context, authorID string, req *dto.CreatePostRequest) (*domain.Post, error)
	// Update applies a partial update to an existing post
	Update(ctx context.Context, slug string, req *dto.UpdatePostRequest) (*domain.Post, error)
	// Delete removes a post
	Delete(ctx context.Context, slug string) error
}

// postService implements PostService
type postService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

// List returns a page of published posts
func (s *postService) List(ctx context.Context, q query.Descriptor) ([]domain.Post, int64, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.post.list")
	defer span.End()

	span.SetAttributes(
		attribute.Int("page", q.Page),
		attribute.Int("limit", q.Limit),
	)

	filter := repository.PostFilter{
		Category:      q.Category,
		Search:        q.Search,
		PublishedOnly: true,
		Limit:         q.Limit,
		Skip:          q.Skip,
	}

	posts, err := s.postRepo.Find(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	total, err := s.postRepo.Count(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	span.SetStatus(codes.Ok, "")
	return content.CompleteAll(posts, true), total, nil
}

// GetBySlug returns one completed post
func (s *postService) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.post.get_by_slug")
	defer span.End()

	span.SetAttributes(attribute.String("slug", slug))

	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	completed := content.Complete(*post)
	return &completed, nil
}

// Create stores a new post. The slug is derived from the title when not
// provided; a duplicate slug is rejected before any write.
func (s *postService) Create(ctx context.Context, authorID string, req *dto.CreatePostRequest) (*domain.Post, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.post.create")
	defer span.End()

	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}

	exists, err := s.postRepo.ExistsBySlug(ctx, slug)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if exists {
		span.SetStatus(codes.Error, "duplicate slug")
		return nil, ErrPostAlreadyExists
	}

	now := time.Now()
	post := &domain.Post{
		ID:       uuid.New().String(),
		Title:    req.Title,
		Slug:     slug,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		CoverURL: req.CoverURL,
		Tags:     req.Tags,
		SEO: &domain.SEO{
			MetaTitle:       req.MetaTitle,
			MetaDescription: req.MetaDescription,
			MetaKeywords:    req.MetaKeywords,
		},
		IsFeatured:  req.IsFeatured,
		IsPublished: req.IsPublished,
		AuthorID:    authorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.postRepo.Insert(ctx, post); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("post_id", post.ID))
	span.SetStatus(codes.Ok, "")
	return post, nil
}

// Update applies a partial update to an existing post
func (s *postService) Update(ctx context.Context, slug string, req *dto.UpdatePostRequest) (*domain.Post, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.post.update")
	defer span.End()

	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	// Complete first so older documents gain the SEO block before the
	// patch is applied.
	updated := content.Complete(*post)

	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.Excerpt != nil {
		updated.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		updated.Content = *req.Content
	}
	if req.Category != nil {
		updated.Category = *req.Category
	}
	if req.CoverURL != nil {
		updated.CoverURL = *req.CoverURL
	}
	if req.Tags != nil {
		updated.Tags = req.Tags
	}
	if req.MetaTitle != nil {
		updated.SEO.MetaTitle = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		updated.SEO.MetaDescription = *req.MetaDescription
	}
	if req.MetaKeywords != nil {
		updated.SEO.MetaKeywords = *req.MetaKeywords
	}
	if req.IsFeatured != nil {
		updated.IsFeatured = *req.IsFeatured
	}
	if req.IsPublished != nil {
		updated.IsPublished = *req.IsPublished
	}
	updated.UpdatedAt = time.Now()

	if err := s.postRepo.Update(ctx, &updated); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	return &updated, nil
}

// Delete removes a post
func (s *postService) Delete(ctx context.Context, slug string) error {
	ctx, span := telemetry.StartSpan(ctx, "service.post.delete")
	defer span.End()

	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	if err := s.postRepo.Delete(ctx, post.ID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// Slugify lowercases a title and replaces runs of non-alphanumeric
// characters with single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
