package post

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/blobs"
	"Glimpse/internal/core/posts"
)

// maxCreateBody caps the whole multipart body: 5 images at 6MB each
// plus caption and form overhead
const maxCreateBody = 5*blobs.MaxBlobSize + 64*1024

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate handles POST /api/posts
// Accepts a multipart form with a caption field and up to five image files
// under the "images" key
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// 1. Extract authenticated caller (injected by auth middleware)
	userID := middleware.GetUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	// 2. Limit request body size
	r.Body = http.MaxBytesReader(w, r.Body, maxCreateBody)

	// 3. Parse multipart form; file parts above 8MB spill to disk
	if err := r.ParseMultipartForm(8 * 1024 * 1024); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest",
			"Invalid multipart form or request too large")
		return
	}

	req := posts.CreatePostRequest{
		PublisherID: userID,
		Caption:     r.FormValue("caption"),
	}

	// 4. Collect image attachments in form order
	if r.MultipartForm != nil {
		fileHeaders := r.MultipartForm.File["images"]
		if len(fileHeaders) > posts.MaxImagesPerPost {
			writeError(w, http.StatusBadRequest, "InvalidRequest",
				"At most 5 images per post")
			return
		}

		for _, fh := range fileHeaders {
			file, err := fh.Open()
			if err != nil {
				writeError(w, http.StatusBadRequest, "InvalidRequest",
					"Failed to read image attachment")
				return
			}
			data, err := io.ReadAll(file)
			_ = file.Close()
			if err != nil {
				writeError(w, http.StatusBadRequest, "InvalidRequest",
					"Failed to read image attachment")
				return
			}

			req.Images = append(req.Images, posts.ImageUpload{
				Data:     data,
				MimeType: fh.Header.Get("Content-Type"),
			})
		}
	}

	// 5. Create the post (uploads images, persists)
	created, err := h.service.CreatePost(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		log.Printf("Failed to encode post creation response: %v", err)
	}
}
