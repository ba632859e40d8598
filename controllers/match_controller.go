package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"roomly_server/services"
)

// MatchController handles HTTP requests for match-related actions
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchService *services.MatchService) *MatchController {
	return &MatchController{MatchService: matchService}
}

// GetMatches handles fetching the confirmed matches for a user
func (mc *MatchController) GetMatches(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusUnauthorized)
		return
	}

	matches, err := mc.MatchService.ListMatches(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to fetch matches", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"matches": matches,
	})
}

// DeleteMatch removes a match for both participants
func (mc *MatchController) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserA string `json:"userA"`
		UserB string `json:"userB"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if request.UserA == "" || request.UserB == "" {
		http.Error(w, "userA and userB are required", http.StatusBadRequest)
		return
	}

	if err := mc.MatchService.DeleteMatchPair(r.Context(), request.UserA, request.UserB); err != nil {
		log.Printf("Failed to delete match: %v", err)
		http.Error(w, "Failed to delete match", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{
		"message": "Match deleted",
	})
}

// GetConversationID resolves the shared conversation id for a pair of users
func (mc *MatchController) GetConversationID(w http.ResponseWriter, r *http.Request) {
	userA := r.URL.Query().Get("userA")
	userB := r.URL.Query().Get("userB")
	if userA == "" || userB == "" {
		http.Error(w, "userA and userB are required", http.StatusBadRequest)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{
		"conversationId": services.ConversationID(userA, userB),
	})
}
