package models

// ChatMessage is a single append-only message in a match conversation
type ChatMessage struct {
	ConversationID string `dynamodbav:"conversationId" json:"conversationId"` // Partition Key
	SentAt         string `dynamodbav:"sentAt" json:"sentAt"`                 // Sort Key, server-assigned timestamp
	MessageID      string `dynamodbav:"messageId" json:"messageId"`           // UUID-based
	SenderID       string `dynamodbav:"senderId" json:"senderId"`
	Text           string `dynamodbav:"text" json:"text"`
	IsUnread       bool   `dynamodbav:"isUnread" json:"isUnread"`
}

// MessagesTable is the DynamoDB table name for chat messages
const MessagesTable = "Messages"
