package models

// SwipeDecision records one directional accept/reject. At most one decision
// exists per (viewerId, candidateId) pair; writing again overwrites it.
type SwipeDecision struct {
	ViewerID    string `dynamodbav:"viewerId" json:"viewerId"`       // Partition Key
	CandidateID string `dynamodbav:"candidateId" json:"candidateId"` // Sort Key
	Accepted    bool   `dynamodbav:"accepted" json:"accepted"`
	CreatedAt   string `dynamodbav:"createdAt" json:"createdAt"`
}

// SwipeDecisionsTable is the DynamoDB table name for swipe decisions
const SwipeDecisionsTable = "SwipeDecisions"
