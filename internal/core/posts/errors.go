package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for common post operations
var (
	// ErrPostNotFound is returned when a post lookup finds no matching record
	ErrPostNotFound = errors.New("post not found")

	// ErrNotPostOwner is returned when a caller tries to delete a post they
	// do not own. Deleting a post that does not exist returns the same error
	// so callers cannot probe for post existence.
	ErrNotPostOwner = errors.New("not authorized to delete this post")

	// ErrSelfLike is returned when a publisher tries to like their own post
	ErrSelfLike = errors.New("cannot like your own post")

	// ErrAlreadyLiked is returned when a caller likes the same post twice
	ErrAlreadyLiked = errors.New("post already liked")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// UploadError wraps a failed image upload with the index of the offending
// attachment. Earlier uploads that already completed are not rolled back;
// orphaned blobs on the image host are accepted.
type UploadError struct {
	Err   error
	Index int
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("failed to upload image %d: %v", e.Index, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// IsUploadError checks if error is an image upload failure
func IsUploadError(err error) bool {
	var upErr *UploadError
	return errors.As(err, &upErr)
}
