package posts

import (
	"time"
)

// Post represents one published item in the feed
type Post struct {
	PublishedAt time.Time `json:"publishedAt" db:"published_at"`
	ID          string    `json:"id" db:"id"`
	Caption     string    `json:"caption" db:"caption"`
	PublisherID string    `json:"publisherId" db:"publisher_id"`
	Images      []string  `json:"images" db:"images"`
	Likes       []string  `json:"likes" db:"likes"`
}

// FeedPost is a post enriched for listing: the publisher id is resolved
// to a display name and likes are collapsed to a count
type FeedPost struct {
	PublishedAt   time.Time `json:"publishedAt"`
	ID            string    `json:"id"`
	Caption       string    `json:"caption"`
	PublisherID   string    `json:"publisherId"`
	PublisherName string    `json:"publisherName"`
	Images        []string  `json:"images"`
	LikeCount     int       `json:"likes"`
}

// ImageUpload is one raw image payload attached to a create request
type ImageUpload struct {
	MimeType string
	Data     []byte
}

// CreatePostRequest represents input for creating a new post.
// PublisherID is always derived from the authenticated caller, never
// from the request body.
type CreatePostRequest struct {
	PublisherID string
	Caption     string
	Images      []ImageUpload
}
