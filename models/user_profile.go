package models

// Filter holds a seeker's listing preferences. Every field is optional: a
// nil bound or an empty area list does not restrict candidates.
type Filter struct {
	RentMin *float64 `dynamodbav:"rentMin,omitempty" json:"rentMin,omitempty"`
	RentMax *float64 `dynamodbav:"rentMax,omitempty" json:"rentMax,omitempty"`
	SizeMin *float64 `dynamodbav:"sizeMin,omitempty" json:"sizeMin,omitempty"`
	SizeMax *float64 `dynamodbav:"sizeMax,omitempty" json:"sizeMax,omitempty"`
	Areas   []string `dynamodbav:"areas,omitempty" json:"areas,omitempty"`
}

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserID      string   `dynamodbav:"userId" json:"userId"`                           // Partition Key
	Name        string   `dynamodbav:"name,omitempty" json:"name,omitempty"`           // Display name
	DOB         string   `dynamodbav:"dob,omitempty" json:"dob,omitempty"`             // Date of birth
	AboutMe     string   `dynamodbav:"aboutMe,omitempty" json:"aboutMe,omitempty"`     // Short biography
	SeekingRoom bool     `dynamodbav:"seekingRoom" json:"seekingRoom"`                 // true = looking for a place, false = offers one
	Filters     *Filter  `dynamodbav:"filters,omitempty" json:"filters,omitempty"`     // Listing preferences, attached regardless of role
	Images      []string `dynamodbav:"images,omitempty" json:"images,omitempty"`       // Image references, first is the avatar
	CreatedAt   string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"` // Timestamp of creation
}

// Role returns the matchmaking role implied by the seekingRoom flag.
func (p UserProfile) Role() string {
	if p.SeekingRoom {
		return RoleSeeker
	}
	return RoleProvider
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"
