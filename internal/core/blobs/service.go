package blobs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Service defines the interface for blob operations
type Service interface {
	// UploadImage uploads binary image data to the external image host and
	// returns the resulting public blob reference
	UploadImage(ctx context.Context, data []byte, mimeType string) (*Blob, error)
}

type httpBlobService struct {
	client  *http.Client
	hostURL string
	token   string
}

// NewHTTPBlobService creates a blob service backed by the image host's
// HTTP upload API.
func NewHTTPBlobService(hostURL, token string) Service {
	return &httpBlobService{
		// 30s to handle slow hosts and large images
		client:  &http.Client{Timeout: 30 * time.Second},
		hostURL: strings.TrimSuffix(hostURL, "/"),
		token:   token,
	}
}

// uploadResponse is the image host's upload API response body
type uploadResponse struct {
	URL string `json:"url"`
}

// UploadImage uploads binary data to the image host
// Flow:
// 1. Validate size and MIME type
// 2. POST bytes to {hostURL}/v1/images with bearer credential
// 3. Parse response and extract the public URL
func (s *httpBlobService) UploadImage(ctx context.Context, data []byte, mimeType string) (*Blob, error) {
	normalized, err := ValidateImage(data, mimeType)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.hostURL+"/v1/images", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", normalized)
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("failed to close upload response body", "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		// Bounded read; host error bodies are small but untrusted
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		slog.Error("image host rejected upload",
			"status", resp.StatusCode,
			"mime_type", normalized,
			"size", len(data),
		)
		return nil, fmt.Errorf("image host returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse upload response: %w", err)
	}
	if result.URL == "" {
		return nil, fmt.Errorf("upload response missing url")
	}

	return &Blob{
		URL:      result.URL,
		MimeType: normalized,
		Size:     len(data),
	}, nil
}
