package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"roomly_server/services"
)

// ChatController struct
type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController initializes the chat controller
func NewChatController(chatService *services.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// HandleGetMessages fetches messages for a conversation, oldest first
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	conversationID := r.URL.Query().Get("conversationId")
	limitStr := r.URL.Query().Get("limit")

	if conversationID == "" {
		http.Error(w, `{"error": "conversationId is required"}`, http.StatusBadRequest)
		return
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 50
	}

	messages, err := c.ChatService.Messages(r.Context(), conversationID, limit)
	if err != nil {
		log.Printf("Failed to fetch messages: %v", err)
		http.Error(w, `{"error": "Failed to fetch messages"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}

// HandleSendMessage appends a new message to a conversation. Empty text is
// accepted and dropped without error.
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ConversationID string `json:"conversationId"`
		SenderID       string `json:"senderId"`
		Text           string `json:"text"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if request.ConversationID == "" || request.SenderID == "" {
		http.Error(w, `{"error": "Missing required fields: conversationId or senderId"}`, http.StatusBadRequest)
		return
	}

	message, err := c.ChatService.PostMessage(r.Context(), request.ConversationID, request.SenderID, request.Text)
	if err != nil {
		log.Printf("Failed to send message: %v", err)
		http.Error(w, `{"error": "Failed to send message"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if message == nil {
		// whitespace-only input is dropped silently
		json.NewEncoder(w).Encode(map[string]string{"status": "ignored"})
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": message,
	})
}

// HandleMarkMessagesAsRead marks the messages a user received as read
func (c *ChatController) HandleMarkMessagesAsRead(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ConversationID string `json:"conversationId"`
		UserID         string `json:"userId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.ChatService.MarkMessagesRead(r.Context(), request.ConversationID, request.UserID); err != nil {
		http.Error(w, `{"error": "Failed to mark messages as read"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}
