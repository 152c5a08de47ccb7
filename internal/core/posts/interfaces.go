package posts

import "context"

// MaxImagesPerPost caps how many images a single post may carry
const MaxImagesPerPost = 5

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a new post
	Create(ctx context.Context, post *Post) error

	// GetByID retrieves a post by id, including its liker ids.
	// Returns ErrPostNotFound when no post matches.
	GetByID(ctx context.Context, id string) (*Post, error)

	// List retrieves posts ordered by published date descending, with the
	// publisher resolved to a display name.
	List(ctx context.Context, limit, offset int) ([]*FeedPost, error)

	// Delete permanently removes a post and its likes.
	// Returns ErrPostNotFound when no post matches.
	Delete(ctx context.Context, id string) error

	// AddLike records that userID liked postID and returns the new like
	// count. Returns ErrAlreadyLiked when the pair is already recorded.
	AddLike(ctx context.Context, postID, userID string) (int, error)
}

// Service defines the business logic interface for posts
type Service interface {
	// CreatePost uploads the attached images and persists a new post owned
	// by the caller
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)

	// ListPosts returns the feed, newest first
	ListPosts(ctx context.Context, limit, offset int) ([]*FeedPost, error)

	// DeletePost removes a post if the caller owns it. A missing post and a
	// foreign post both return ErrNotPostOwner.
	DeletePost(ctx context.Context, callerID, postID string) error

	// LikePost records a like by the caller and returns the new like count
	LikePost(ctx context.Context, callerID, postID string) (int, error)
}
