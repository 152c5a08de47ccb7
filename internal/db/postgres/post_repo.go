package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"Glimpse/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post into the posts table
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (id, caption, images, publisher_id, published_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(
		ctx, query,
		post.ID, post.Caption, pq.Array(post.Images),
		post.PublisherID, post.PublishedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return fmt.Errorf("publisher not found: %s", post.PublisherID)
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// GetByID retrieves a post by id, including its liker ids
func (r *postgresPostRepo) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	// A non-UUID id cannot match any row; comparing it against the UUID
	// column would raise a cast error (22P02) instead of returning no rows
	if _, err := uuid.Parse(id); err != nil {
		return nil, posts.ErrPostNotFound
	}

	query := `
		SELECT
			p.id, p.caption, p.images, p.publisher_id, p.published_at,
			COALESCE(array_agg(l.user_id ORDER BY l.liked_at) FILTER (WHERE l.user_id IS NOT NULL), '{}')
		FROM posts p
		LEFT JOIN post_likes l ON l.post_id = p.id
		WHERE p.id = $1
		GROUP BY p.id
	`

	var post posts.Post
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Caption, pq.Array(&post.Images),
		&post.PublisherID, &post.PublishedAt, pq.Array(&post.Likes),
	)

	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	if post.Images == nil {
		post.Images = []string{}
	}
	if post.Likes == nil {
		post.Likes = []string{}
	}

	return &post, nil
}

// List retrieves posts ordered by published date descending, publisher
// resolved to a display name and likes collapsed to a count
func (r *postgresPostRepo) List(ctx context.Context, limit, offset int) ([]*posts.FeedPost, error) {
	query := `
		SELECT
			p.id, p.caption, p.images, p.publisher_id,
			u.first_name || ' ' || u.last_name,
			p.published_at,
			COUNT(l.user_id)
		FROM posts p
		JOIN users u ON u.id = p.publisher_id
		LEFT JOIN post_likes l ON l.post_id = p.id
		GROUP BY p.id, u.first_name, u.last_name
		ORDER BY p.published_at DESC, p.id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []*posts.FeedPost{}
	for rows.Next() {
		var fp posts.FeedPost
		err := rows.Scan(
			&fp.ID, &fp.Caption, pq.Array(&fp.Images), &fp.PublisherID,
			&fp.PublisherName, &fp.PublishedAt, &fp.LikeCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		if fp.Images == nil {
			fp.Images = []string{}
		}
		result = append(result, &fp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return result, nil
}

// Delete permanently removes a post; likes go with it via ON DELETE CASCADE
func (r *postgresPostRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return posts.ErrPostNotFound
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

// AddLike records that userID liked postID and returns the new like count
func (r *postgresPostRepo) AddLike(ctx context.Context, postID, userID string) (int, error) {
	if _, err := uuid.Parse(postID); err != nil {
		return 0, posts.ErrPostNotFound
	}

	query := `
		INSERT INTO post_likes (post_id, user_id, liked_at)
		VALUES ($1, $2, NOW())
	`

	_, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		// Unique constraint on (post_id, user_id): like already recorded
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "post_likes_pkey") {
			return 0, posts.ErrAlreadyLiked
		}
		// Post deleted between the service's existence check and this insert
		if strings.Contains(err.Error(), "fk_like_post") {
			return 0, posts.ErrPostNotFound
		}
		return 0, fmt.Errorf("failed to insert like: %w", err)
	}

	var count int
	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM post_likes WHERE post_id = $1`, postID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return count, nil
}
