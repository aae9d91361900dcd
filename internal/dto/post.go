package dto

import "strings"

// CreatePostRequest represents the request to create a blog post
type CreatePostRequest struct {
	Title           string   `json:"title" binding:"required"`
	Slug            string   `json:"slug"`
	Excerpt         string   `json:"excerpt"`
	Content         string   `json:"content" binding:"required"`
	Category        string   `json:"category"`
	CoverURL        string   `json:"cover_url"`
	Tags            []string `json:"tags"`
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	MetaKeywords    string   `json:"meta_keywords"`
	IsFeatured      bool     `json:"is_featured"`
	IsPublished     bool     `json:"is_published"`
}

// Validate validates the CreatePostRequest
func (r *CreatePostRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.Title) == "" {
		return false, "Title is required"
	}
	if strings.TrimSpace(r.Content) == "" {
		return false, "Content is required"
	}
	if len(r.Title) > 255 {
		return false, "Title is too long"
	}
	return true, ""
}

// UpdatePostRequest represents the request to update a blog post.
// Nil pointer fields are left unchanged.
type UpdatePostRequest struct {
	Title           *string  `json:"title"`
	Excerpt         *string  `json:"excerpt"`
	Content         *string  `json:"content"`
	Category        *string  `json:"category"`
	CoverURL        *string  `json:"cover_url"`
	Tags            []string `json:"tags"`
	MetaTitle       *string  `json:"meta_title"`
	MetaDescription *string  `json:"meta_description"`
	MetaKeywords    *string  `json:"meta_keywords"`
	IsFeatured      *bool    `json:"is_featured"`
	IsPublished     *bool    `json:"is_published"`
}

// Validate validates the UpdatePostRequest
func (r *UpdatePostRequest) Validate() (bool, string) {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return false, "Title cannot be empty"
	}
	if r.Content != nil && strings.TrimSpace(*r.Content) == "" {
		return false, "Content cannot be empty"
	}
	return true, ""
}
