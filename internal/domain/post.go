package domain

import "time"

// SEO is per-post metadata added in a later schema revision. Older documents
// may lack the whole block or individual fields.
type SEO struct {
	MetaTitle       string `bson:"meta_title,omitempty" json:"meta_title"`
	MetaDescription string `bson:"meta_description,omitempty" json:"meta_description"`
	MetaKeywords    string `bson:"meta_keywords,omitempty" json:"meta_keywords"`
}

// Post is a stored blog document. Only ID, Title, Slug and CreatedAt are
// guaranteed present; everything else arrived through schema evolution and
// may be absent on older records. ContentCompletion fills the gaps before
// a post leaves the API.
type Post struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Slug        string    `bson:"slug" json:"slug"`
	Excerpt     string    `bson:"excerpt,omitempty" json:"excerpt"`
	Content     string    `bson:"content,omitempty" json:"content,omitempty"`
	Category    string    `bson:"category,omitempty" json:"category"`
	CoverURL    string    `bson:"cover_url,omitempty" json:"cover_url"`
	Tags        []string  `bson:"tags,omitempty" json:"tags"`
	SEO         *SEO      `bson:"seo,omitempty" json:"seo"`
	IsFeatured  bool      `bson:"is_featured,omitempty" json:"is_featured"`
	IsPublished bool      `bson:"is_published,omitempty" json:"is_published"`
	AuthorID    string    `bson:"author_id,omitempty" json:"author_id"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at,omitempty" json:"updated_at"`
}
