package services

import (
	"context"

	"roomly_server/models"
)

// Store contracts consumed by the swipe engine and chat service. The Dynamo
// backed services below implement them; tests substitute in-memory fakes.

// ProfileDirectory resolves user profiles.
type ProfileDirectory interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	ListProfiles(ctx context.Context) ([]models.UserProfile, error)
}

// ListingDirectory resolves the listings owned by a provider.
type ListingDirectory interface {
	GetListingsByOwner(ctx context.Context, ownerID string) ([]models.Listing, error)
}

// DecisionLog records and looks up swipe decisions.
type DecisionLog interface {
	GetDecision(ctx context.Context, viewerID, candidateID string) (*models.SwipeDecision, error)
	PutDecision(ctx context.Context, decision models.SwipeDecision) error
	ListDecisionsByViewer(ctx context.Context, viewerID string) ([]models.SwipeDecision, error)
}

// MatchLedger stores confirmed matches, both halves at once.
type MatchLedger interface {
	CreateMatchPair(ctx context.Context, a, b models.Match) error
	DeleteMatchPair(ctx context.Context, userA, userB string) error
	ListMatches(ctx context.Context, userID string) ([]models.Match, error)
}

// ConversationLog appends and reads chat messages. ListMessages returns
// messages oldest first; a limit of zero or less means no limit.
type ConversationLog interface {
	AppendMessage(ctx context.Context, message models.ChatMessage) error
	ListMessages(ctx context.Context, conversationID string, limit int) ([]models.ChatMessage, error)
	MarkMessagesRead(ctx context.Context, conversationID, readerID string) error
}
