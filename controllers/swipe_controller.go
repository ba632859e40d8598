package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"roomly_server/models"
	"roomly_server/services"
)

// SwipeController handles HTTP requests for the swipe engine
type SwipeController struct {
	SwipeService *services.SwipeService
}

// NewSwipeController creates a new SwipeController instance
func NewSwipeController(swipeService *services.SwipeService) *SwipeController {
	return &SwipeController{SwipeService: swipeService}
}

// HandleGetQueue builds (or rebuilds) the viewer's candidate queue and
// returns it together with the session state.
func (sc *SwipeController) HandleGetQueue(w http.ResponseWriter, r *http.Request) {
	viewerID := r.URL.Query().Get("userId")

	queue, err := sc.SwipeService.BuildQueue(r.Context(), viewerID)
	if err != nil {
		if errors.Is(err, services.ErrNotAuthenticated) {
			http.Error(w, "userId is required", http.StatusUnauthorized)
			return
		}
		log.Printf("Failed to build queue for %s: %v", viewerID, err)
		http.Error(w, "Failed to build candidate queue", http.StatusInternalServerError)
		return
	}

	current, state := sc.SwipeService.Current(viewerID)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"state":   state,
		"current": current,
		"queue":   queue,
	})
}

// HandleDecide records an accept/reject decision about the current candidate
func (sc *SwipeController) HandleDecide(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID      string `json:"userId"`
		CandidateID string `json:"candidateId"`
		Action      string `json:"action"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if request.CandidateID == "" {
		http.Error(w, "candidateId is required", http.StatusBadRequest)
		return
	}

	var accepted bool
	switch request.Action {
	case models.SwipeActionAccept:
		accepted = true
	case models.SwipeActionReject:
		accepted = false
	default:
		http.Error(w, "action must be 'accept' or 'reject'", http.StatusBadRequest)
		return
	}

	result, err := sc.SwipeService.Decide(r.Context(), request.UserID, request.CandidateID, accepted)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthenticated):
			http.Error(w, "userId is required", http.StatusUnauthorized)
		case errors.Is(err, services.ErrNoCurrentCandidate):
			http.Error(w, "No candidate to decide on", http.StatusConflict)
		case errors.Is(err, services.ErrCandidateNotCurrent):
			http.Error(w, "Candidate is not the current candidate", http.StatusConflict)
		default:
			log.Printf("Failed to record decision: %v", err)
			http.Error(w, "Failed to record decision", http.StatusInternalServerError)
		}
		return
	}

	response := map[string]interface{}{
		"state": result.State,
	}
	if result.Match != nil {
		response["message"] = "It's a match!"
		response["match"] = result.Match
	} else {
		response["message"] = "Decision recorded"
	}

	json.NewEncoder(w).Encode(response)
}
