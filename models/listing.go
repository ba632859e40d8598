package models

// Listing represents a room listing owned by a provider profile
type Listing struct {
	OwnerID     string   `dynamodbav:"ownerId" json:"ownerId"`     // Partition Key, the provider's userId
	ListingID   string   `dynamodbav:"listingId" json:"listingId"` // Sort Key, UUID-based
	Title       string   `dynamodbav:"title,omitempty" json:"title,omitempty"`
	Description string   `dynamodbav:"description,omitempty" json:"description,omitempty"`
	SizeSqm     float64  `dynamodbav:"sizeSqm,omitempty" json:"sizeSqm,omitempty"`
	MonthlyRent float64  `dynamodbav:"monthlyRent,omitempty" json:"monthlyRent,omitempty"`
	Deposit     float64  `dynamodbav:"deposit,omitempty" json:"deposit,omitempty"`
	Address     string   `dynamodbav:"address,omitempty" json:"address,omitempty"`
	ZipCode     string   `dynamodbav:"zipCode,omitempty" json:"zipCode,omitempty"`
	City        string   `dynamodbav:"city,omitempty" json:"city,omitempty"` // Area used by the filter evaluator
	Images      []string `dynamodbav:"images,omitempty" json:"images,omitempty"`
	CreatedAt   string   `dynamodbav:"createdAt" json:"createdAt"` // Timestamp of creation
}

// ListingsTable is the DynamoDB table name for room listings
const ListingsTable = "Listings"
