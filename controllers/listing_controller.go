package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"roomly_server/models"
	"roomly_server/services"

	"github.com/gorilla/mux"
)

// ListingController handles HTTP requests for room listings
type ListingController struct {
	ListingService *services.ListingService
}

// NewListingController creates a new ListingController instance
func NewListingController(listingService *services.ListingService) *ListingController {
	return &ListingController{ListingService: listingService}
}

// CreateListing handles adding a new listing for a provider
func (lc *ListingController) CreateListing(w http.ResponseWriter, r *http.Request) {
	var listing models.Listing

	if err := json.NewDecoder(r.Body).Decode(&listing); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if listing.OwnerID == "" {
		http.Error(w, "ownerId is required", http.StatusBadRequest)
		return
	}

	created, err := lc.ListingService.AddListing(r.Context(), listing)
	if err != nil {
		log.Printf("Failed to add listing: %v", err)
		http.Error(w, "Failed to add listing", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Listing added successfully",
		"listing": created,
	})
}

// GetListingsByOwner handles fetching all listings of a provider
func (lc *ListingController) GetListingsByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("ownerId")
	if ownerID == "" {
		http.Error(w, "ownerId is required", http.StatusBadRequest)
		return
	}

	listings, err := lc.ListingService.GetListingsByOwner(r.Context(), ownerID)
	if err != nil {
		http.Error(w, "Failed to fetch listings", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"listings": listings,
	})
}

// UpdateListing handles editing an existing listing
func (lc *ListingController) UpdateListing(w http.ResponseWriter, r *http.Request) {
	var listing models.Listing

	if err := json.NewDecoder(r.Body).Decode(&listing); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	listing.ListingID = mux.Vars(r)["listingId"]

	updated, err := lc.ListingService.UpdateListing(r.Context(), listing)
	if err != nil {
		http.Error(w, "Failed to update listing", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Listing updated successfully",
		"listing": updated,
	})
}

// DeleteListing handles removing a listing
func (lc *ListingController) DeleteListing(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("ownerId")
	listingID := mux.Vars(r)["listingId"]
	if ownerID == "" || listingID == "" {
		http.Error(w, "ownerId and listingId are required", http.StatusBadRequest)
		return
	}

	if err := lc.ListingService.DeleteListing(r.Context(), ownerID, listingID); err != nil {
		http.Error(w, "Failed to delete listing", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Listing deleted successfully",
	})
}
