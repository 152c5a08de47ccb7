package blobs

import (
	"fmt"
	"strings"
)

// MaxBlobSize is the largest accepted image payload (6MB)
const MaxBlobSize = 6 * 1024 * 1024

// Blob represents an image stored on the external host
type Blob struct {
	URL      string `json:"url"`
	MimeType string `json:"mimeType"`
	Size     int    `json:"size"`
}

// normalizeMimeType maps common aliases onto their canonical form
func normalizeMimeType(mimeType string) string {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	// Strip parameters like "; charset=..."
	if idx := strings.Index(mimeType, ";"); idx != -1 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}
	if mimeType == "image/jpg" {
		return "image/jpeg"
	}
	return mimeType
}

// isValidMimeType reports whether the MIME type is an accepted image format
func isValidMimeType(mimeType string) bool {
	switch mimeType {
	case "image/jpeg", "image/png", "image/webp", "image/gif":
		return true
	}
	return false
}

// ValidateImage checks payload size and MIME type before upload.
// Returns the normalized MIME type.
func ValidateImage(data []byte, mimeType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("image data cannot be empty")
	}
	if len(data) > MaxBlobSize {
		return "", fmt.Errorf("image size %d bytes exceeds maximum of %d bytes (6MB)", len(data), MaxBlobSize)
	}

	normalized := normalizeMimeType(mimeType)
	if !isValidMimeType(normalized) {
		return "", fmt.Errorf("unsupported MIME type: %s (allowed: image/jpeg, image/png, image/webp, image/gif)", mimeType)
	}
	return normalized, nil
}
