package services

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"roomly_server/models"

	"github.com/google/uuid"
)

// ChatService layers live delivery on top of a ConversationLog. Messages are
// append-only; subscribers get the full history replayed and then every new
// message until they unsubscribe.
type ChatService struct {
	Log ConversationLog

	mu          sync.Mutex
	subscribers map[string][]chan models.ChatMessage
}

// subscriberBuffer bounds how far a slow subscriber may fall behind before
// messages are dropped for it.
const subscriberBuffer = 64

// sentAtLayout is a fixed-width RFC3339 layout. The fractional part always
// carries nine digits, so sentAt strings sort chronologically under the
// Messages table's string sort key even within the same second.
const sentAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// PostMessage appends a message with a server-assigned timestamp and fans it
// out to live subscribers. Empty or whitespace-only text is silently
// ignored, mirroring the permissive input handling of the filter layer.
func (cs *ChatService) PostMessage(ctx context.Context, conversationID, senderID, text string) (*models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	message := models.ChatMessage{
		ConversationID: conversationID,
		SentAt:         time.Now().UTC().Format(sentAtLayout),
		MessageID:      uuid.NewString(),
		SenderID:       senderID,
		Text:           text,
		IsUnread:       true,
	}

	// The append and the fan-out happen under one lock so a concurrent
	// Subscribe can never miss or duplicate a message.
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if err := cs.Log.AppendMessage(ctx, message); err != nil {
		return nil, err
	}

	for _, subscriber := range cs.subscribers[conversationID] {
		select {
		case subscriber <- message:
		default:
			log.Printf("Dropping message for slow subscriber on conversation %s", conversationID)
		}
	}

	return &message, nil
}

// Messages returns up to limit messages of a conversation, oldest first
func (cs *ChatService) Messages(ctx context.Context, conversationID string, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	return cs.Log.ListMessages(ctx, conversationID, limit)
}

// MarkMessagesRead marks the messages a reader received as read
func (cs *ChatService) MarkMessagesRead(ctx context.Context, conversationID, readerID string) error {
	return cs.Log.MarkMessagesRead(ctx, conversationID, readerID)
}

// Subscribe replays the conversation history and then streams new messages
// as they arrive. The returned cancel function tears the subscription down;
// after cancelling, the channel is closed and no further callbacks occur.
func (cs *ChatService) Subscribe(ctx context.Context, conversationID string) (<-chan models.ChatMessage, func(), error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	history, err := cs.Log.ListMessages(ctx, conversationID, 0)
	if err != nil {
		return nil, nil, err
	}

	updates := make(chan models.ChatMessage, len(history)+subscriberBuffer)
	for _, message := range history {
		updates <- message
	}

	if cs.subscribers == nil {
		cs.subscribers = make(map[string][]chan models.ChatMessage)
	}
	cs.subscribers[conversationID] = append(cs.subscribers[conversationID], updates)

	cancel := func() {
		cs.mu.Lock()
		defer cs.mu.Unlock()
		active := cs.subscribers[conversationID]
		for i, subscriber := range active {
			if subscriber == updates {
				cs.subscribers[conversationID] = append(active[:i], active[i+1:]...)
				close(updates)
				break
			}
		}
	}

	return updates, cancel, nil
}
