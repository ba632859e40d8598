package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"roomly_server/services"
)

// ImageController hands out presigned S3 URLs for image upload and reading
type ImageController struct {
	ImageService *services.ImageService
}

// NewImageController creates a new ImageController instance
func NewImageController(imageService *services.ImageService) *ImageController {
	return &ImageController{ImageService: imageService}
}

// GeneratePresignedURL generates a presigned URL for S3 uploads
func (ic *ImageController) GeneratePresignedURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if payload.FileName == "" || payload.FileType == "" {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	url, key, err := ic.ImageService.GenerateUploadURL(r.Context(), payload.FileName, payload.FileType)
	if err != nil {
		log.Printf("Error generating pre-signed URL: %v", err)
		http.Error(w, "Failed to generate pre-signed URL", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"url": url, "fileName": key})
}

// GetPresignedReadURL generates a presigned URL for reading S3 objects
func (ic *ImageController) GetPresignedReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	url, err := ic.ImageService.GenerateReadURL(r.Context(), payload.Key)
	if err != nil {
		http.Error(w, "Failed to generate read pre-signed URL", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"url": url})
}
