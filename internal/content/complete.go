package content

import "github.com/eduhub-platform/backend/internal/domain"

// Complete normalizes a stored post into the current public schema: every
// optional field introduced by schema evolution is present in the result,
// with a documented default where the stored document lacked it (empty
// slice for tags, empty strings for SEO metadata, false for flags).
// Required fields (id, title, slug, created_at) are assumed present.
//
// Complete is idempotent and does not mutate its input.
func Complete(post domain.Post) domain.Post {
	out := post

	if out.Tags == nil {
		out.Tags = []string{}
	}

	if post.SEO == nil {
		out.SEO = &domain.SEO{}
	} else {
		seo := *post.SEO
		out.SEO = &seo
	}

	if out.UpdatedAt.IsZero() {
		out.UpdatedAt = out.CreatedAt
	}

	return out
}

// CompleteAll normalizes a slice of posts, optionally stripping the body so
// list endpoints stay light. The input slice is left untouched.
func CompleteAll(posts []domain.Post, excludeContent bool) []domain.Post {
	out := make([]domain.Post, len(posts))
	for i, p := range posts {
		out[i] = Complete(p)
		if excludeContent {
			out[i].Content = ""
		}
	}
	return out
}
