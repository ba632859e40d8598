package models

// Match is one participant's half of a confirmed mutual connection. The
// mirror record lives under the counterpart's userId; both halves share the
// same conversationId.
type Match struct {
	UserID          string `dynamodbav:"userId" json:"userId"`                   // Partition Key, the owning participant
	CounterpartID   string `dynamodbav:"counterpartId" json:"counterpartId"`     // Sort Key, the other participant
	CounterpartName string `dynamodbav:"counterpartName" json:"counterpartName"` // Display name at match time
	CounterpartRole string `dynamodbav:"counterpartRole" json:"counterpartRole"` // "seeker" or "provider"
	ConversationID  string `dynamodbav:"conversationId" json:"conversationId"`
	CreatedAt       string `dynamodbav:"createdAt" json:"createdAt"`
}

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "Matches"
