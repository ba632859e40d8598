package routes

import (
	"roomly_server/controllers"
	"roomly_server/services"

	"github.com/gorilla/mux"
)

// RegisterListingRoutes sets up routes for listing operations under /api/listings
func RegisterListingRoutes(r *mux.Router, listingService *services.ListingService) {
	controller := controllers.NewListingController(listingService)

	listingRouter := r.PathPrefix("/api/listings").Subrouter()

	listingRouter.HandleFunc("", controller.CreateListing).Methods("POST")
	listingRouter.HandleFunc("", controller.GetListingsByOwner).Methods("GET")
	listingRouter.HandleFunc("/{listingId}", controller.UpdateListing).Methods("PUT")
	listingRouter.HandleFunc("/{listingId}", controller.DeleteListing).Methods("DELETE")
}
