package http

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"ecobin-backend/internal/service"
	"ecobin-backend/internal/storage"
)

// PhotoHandler serves the mock presigned-URL endpoints plus the API call
// that hands out upload targets.
type PhotoHandler struct {
	photoSvc    service.PhotoStorageService
	mockStorage *storage.MockStorageService
}

func NewPhotoHandler(photoSvc service.PhotoStorageService, mockStorage *storage.MockStorageService) *PhotoHandler {
	return &PhotoHandler{
		photoSvc:    photoSvc,
		mockStorage: mockStorage,
	}
}

type uploadURLRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}

func (h *PhotoHandler) GetUploadURL(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	var req uploadURLRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Filename == "" || req.ContentType == "" {
		writeBadRequest(w, "filename and content_type are required")
		return
	}

	uploadURL, downloadURL, err := h.photoSvc.GetUploadURL(r.Context(), accountID, req.Filename, req.ContentType)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"upload_url":   uploadURL,
		"download_url": downloadURL,
	})
}

// HandleMockUpload handles HTTP PUT requests to mock presigned upload URLs.
func (h *PhotoHandler) HandleMockUpload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" && contentType != "image/webp" {
		http.Error(w, "Invalid content type", http.StatusBadRequest)
		return
	}

	if err := h.mockStorage.SaveFile(key, r.Body); err != nil {
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}

	// Mimic an S3 PUT response.
	w.Header().Set("ETag", `"mock-etag-success"`)
	w.WriteHeader(http.StatusOK)
}

// HandleMockDownload serves photos saved through the mock upload endpoint.
func (h *PhotoHandler) HandleMockDownload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	file, err := h.mockStorage.ReadFile(key)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".webp":
		contentType = "image/webp"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}

// RegisterMockStorageRoutes registers the mock storage HTTP endpoints. These
// sit outside the authenticated API because presigned URLs carry their own
// authorization.
func (h *PhotoHandler) RegisterMockStorageRoutes(router *mux.Router) {
	router.HandleFunc("/api/v1/photos/upload/{token}", h.HandleMockUpload).Methods("PUT")
	router.HandleFunc("/api/v1/photos/download/{hash}", h.HandleMockDownload).Methods("GET")
}
