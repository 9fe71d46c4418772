package domain

import "time"

// BlogPost is a marketing article. Slug is unique across the collection;
// only published posts are visible on the public surface.
type BlogPost struct {
	ID         string     `json:"id" bson:"_id,omitempty"`
	Title      string     `json:"title" bson:"title"`
	Slug       string     `json:"slug" bson:"slug"`
	Excerpt    string     `json:"excerpt,omitempty" bson:"excerpt,omitempty"`
	Content    string     `json:"content" bson:"content"`
	Published  bool       `json:"published" bson:"published"`
	CoverImage string     `json:"cover_image,omitempty" bson:"cover_image,omitempty"`
	CreatedAt  time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// Doc is a simple categorized link record maintained by admins.
type Doc struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Category  string    `json:"category" bson:"category"`
	URL       string    `json:"url" bson:"url"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
