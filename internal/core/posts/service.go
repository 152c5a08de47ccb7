package posts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"Glimpse/internal/core/blobs"
)

const (
	defaultListLimit = 100
	maxListLimit     = 100
)

type postService struct {
	repo  Repository
	blobs blobs.Service
}

// NewPostService creates a new post service
func NewPostService(repo Repository, blobService blobs.Service) Service {
	return &postService{
		repo:  repo,
		blobs: blobService,
	}
}

// CreatePost uploads the attached images and persists a new post.
// Uploads run concurrently; each result is written to its input index so the
// stored URL order always matches the attachment order.
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	if req.PublisherID == "" {
		return nil, fmt.Errorf("publisher id is required")
	}

	req.Caption = strings.TrimSpace(req.Caption)
	if req.Caption == "" {
		return nil, NewValidationError("caption", "caption is required")
	}
	if len(req.Images) > MaxImagesPerPost {
		return nil, NewValidationError("images",
			fmt.Sprintf("at most %d images per post", MaxImagesPerPost))
	}

	urls := make([]string, len(req.Images))
	g, gctx := errgroup.WithContext(ctx)
	for i, img := range req.Images {
		i, img := i, img
		g.Go(func() error {
			blob, err := s.blobs.UploadImage(gctx, img.Data, img.MimeType)
			if err != nil {
				return &UploadError{Index: i, Err: err}
			}
			urls[i] = blob.URL
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Completed uploads are not rolled back; the image host may keep
		// orphaned blobs.
		return nil, err
	}

	post := &Post{
		ID:          uuid.NewString(),
		Caption:     req.Caption,
		Images:      urls,
		PublisherID: req.PublisherID,
		PublishedAt: time.Now().UTC(),
		Likes:       []string{},
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns the feed, newest first
func (s *postService) ListPosts(ctx context.Context, limit, offset int) ([]*FeedPost, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}

// DeletePost removes a post if the caller owns it.
// Missing posts are reported as ErrNotPostOwner, same as foreign posts, so
// DELETE responses never reveal whether an id exists.
func (s *postService) DeletePost(ctx context.Context, callerID, postID string) error {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return ErrNotPostOwner
		}
		return err
	}

	if post.PublisherID != callerID {
		return ErrNotPostOwner
	}

	return s.repo.Delete(ctx, postID)
}

// LikePost records a like by the caller and returns the new like count.
// Self-likes and duplicate likes are rejected; there is no unlike.
func (s *postService) LikePost(ctx context.Context, callerID, postID string) (int, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return 0, err
	}

	if post.PublisherID == callerID {
		return 0, ErrSelfLike
	}
	for _, liker := range post.Likes {
		if liker == callerID {
			return 0, ErrAlreadyLiked
		}
	}

	// The unique constraint on (post_id, user_id) catches the race where two
	// identical likes pass the check above concurrently.
	return s.repo.AddLike(ctx, postID, callerID)
}
