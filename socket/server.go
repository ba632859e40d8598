package socket

import (
	"context"
	"log"

	"roomly_server/services"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes a Socket.IO server that bridges the chat
// service's live message stream to connected clients. Joining a
// conversation subscribes the socket; disconnecting tears the
// subscription down so no dangling listener keeps firing.
func NewSocketServer(chatService *services.ChatService) *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(s socketio.Conn) error {
		log.Println("Socket connected:", s.ID())
		return nil
	})

	server.OnEvent("/", "join", func(s socketio.Conn, conversationID string) {
		if conversationID == "" {
			log.Println("Invalid conversationId in join request")
			return
		}

		// a socket follows one conversation at a time
		if cancel, ok := s.Context().(func()); ok && cancel != nil {
			cancel()
		}

		updates, cancel, err := chatService.Subscribe(context.Background(), conversationID)
		if err != nil {
			log.Printf("Failed to subscribe socket %s to %s: %v", s.ID(), conversationID, err)
			return
		}
		s.SetContext(cancel)

		log.Printf("Socket %s joined conversation %s", s.ID(), conversationID)
		go func() {
			for message := range updates {
				s.Emit("newMessage", message)
			}
		}()
	})

	server.OnEvent("/", "sendMessage", func(s socketio.Conn, data map[string]string) {
		conversationID := data["conversationId"]
		senderID := data["senderId"]
		text := data["text"]
		if conversationID == "" || senderID == "" {
			log.Println("Invalid sendMessage payload")
			return
		}

		if _, err := chatService.PostMessage(context.Background(), conversationID, senderID, text); err != nil {
			log.Printf("Failed to post socket message: %v", err)
		}
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		if cancel, ok := s.Context().(func()); ok && cancel != nil {
			cancel()
		}
		log.Println("Socket disconnected:", s.ID(), reason)
	})

	return server
}
