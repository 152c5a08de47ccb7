package blobs

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUploadImage_Success(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody []byte

	host := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/images" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"url": "https://img.example/abc.jpg"})
	}))
	defer host.Close()

	service := NewHTTPBlobService(host.URL, "host-token")

	blob, err := service.UploadImage(context.Background(), []byte{0xFF, 0xD8, 0xFF}, "image/jpg")
	if err != nil {
		t.Fatalf("UploadImage failed: %v", err)
	}

	if blob.URL != "https://img.example/abc.jpg" {
		t.Errorf("unexpected blob URL %q", blob.URL)
	}
	if blob.MimeType != "image/jpeg" {
		t.Errorf("expected normalized mime image/jpeg, got %q", blob.MimeType)
	}
	if blob.Size != 3 {
		t.Errorf("expected size 3, got %d", blob.Size)
	}
	if gotAuth != "Bearer host-token" {
		t.Errorf("expected bearer credential, got %q", gotAuth)
	}
	if gotContentType != "image/jpeg" {
		t.Errorf("expected Content-Type image/jpeg, got %q", gotContentType)
	}
	if len(gotBody) != 3 {
		t.Errorf("expected raw bytes forwarded, got %d bytes", len(gotBody))
	}
}

func TestUploadImage_HostError(t *testing.T) {
	host := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer host.Close()

	service := NewHTTPBlobService(host.URL, "host-token")

	if _, err := service.UploadImage(context.Background(), []byte{0x01}, "image/png"); err == nil {
		t.Error("expected error when host rejects the upload")
	}
}

func TestUploadImage_MissingURLInResponse(t *testing.T) {
	host := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer host.Close()

	service := NewHTTPBlobService(host.URL, "")

	if _, err := service.UploadImage(context.Background(), []byte{0x01}, "image/png"); err == nil {
		t.Error("expected error for response without url")
	}
}

func TestUploadImage_RejectsInvalidPayloadBeforeHTTP(t *testing.T) {
	// No server: validation failures must never reach the network
	service := NewHTTPBlobService("http://127.0.0.1:0", "")

	if _, err := service.UploadImage(context.Background(), nil, "image/png"); err == nil {
		t.Error("expected error for empty payload")
	}
	if _, err := service.UploadImage(context.Background(), []byte{0x01}, "application/pdf"); err == nil {
		t.Error("expected error for non-image mime type")
	}
}
