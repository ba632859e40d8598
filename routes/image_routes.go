package routes

import (
	"roomly_server/controllers"
	"roomly_server/services"

	"github.com/gorilla/mux"
)

// RegisterImageRoutes sets up routes for presigned image URL operations
func RegisterImageRoutes(r *mux.Router, imageService *services.ImageService) {
	controller := controllers.NewImageController(imageService)

	r.HandleFunc("/generate-presigned-url", controller.GeneratePresignedURL).Methods("POST")
	r.HandleFunc("/get-presigned-read-url", controller.GetPresignedReadURL).Methods("POST")
}
