package content

import (
	"reflect"
	"testing"
	"time"

	"github.com/eduhub-platform/backend/internal/domain"
)

func legacyPost() domain.Post {
	return domain.Post{
		ID:        "post-1",
		Title:     "Intro to Algebra",
		Slug:      "intro-to-algebra",
		Content:   "Lesson body",
		CreatedAt: time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestComplete_FillsDefaults(t *testing.T) {
	got := Complete(legacyPost())

	if got.Tags == nil || len(got.Tags) != 0 {
		t.Errorf("Tags = %#v, want empty slice", got.Tags)
	}
	if got.SEO == nil {
		t.Fatal("SEO is nil, want empty struct")
	}
	if got.SEO.MetaTitle != "" || got.SEO.MetaDescription != "" || got.SEO.MetaKeywords != "" {
		t.Errorf("SEO = %+v, want zero values", got.SEO)
	}
	if got.IsFeatured || got.IsPublished {
		t.Error("boolean flags should default to false")
	}
	if !got.UpdatedAt.Equal(got.CreatedAt) {
		t.Errorf("UpdatedAt = %v, want CreatedAt %v", got.UpdatedAt, got.CreatedAt)
	}
}

func TestComplete_Idempotent(t *testing.T) {
	once := Complete(legacyPost())
	twice := Complete(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Complete(Complete(r)) = %+v, want %+v", twice, once)
	}
}

func TestComplete_DoesNotMutateInput(t *testing.T) {
	in := legacyPost()
	_ = Complete(in)

	if in.Tags != nil {
		t.Error("input Tags was mutated")
	}
	if in.SEO != nil {
		t.Error("input SEO was mutated")
	}
}

func TestComplete_PreservesPopulatedFields(t *testing.T) {
	in := legacyPost()
	in.Tags = []string{"math", "beginner"}
	in.SEO = &domain.SEO{MetaTitle: "Algebra 101"}
	in.IsPublished = true
	in.UpdatedAt = in.CreatedAt.Add(time.Hour)

	got := Complete(in)

	if !reflect.DeepEqual(got.Tags, in.Tags) {
		t.Errorf("Tags = %#v, want %#v", got.Tags, in.Tags)
	}
	if got.SEO.MetaTitle != "Algebra 101" {
		t.Errorf("MetaTitle = %q, want Algebra 101", got.SEO.MetaTitle)
	}
	if !got.IsPublished {
		t.Error("IsPublished was reset")
	}
	if !got.UpdatedAt.Equal(in.UpdatedAt) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, in.UpdatedAt)
	}

	// Completing a populated copy must not alias the caller's SEO block.
	got.SEO.MetaTitle = "changed"
	if in.SEO.MetaTitle != "Algebra 101" {
		t.Error("result SEO aliases input SEO")
	}
}

func TestCompleteAll_ExcludesContent(t *testing.T) {
	posts := []domain.Post{legacyPost(), legacyPost()}

	got := CompleteAll(posts, true)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for i, p := range got {
		if p.Content != "" {
			t.Errorf("posts[%d].Content = %q, want empty", i, p.Content)
		}
	}
	if posts[0].Content == "" {
		t.Error("input slice was mutated")
	}
}
