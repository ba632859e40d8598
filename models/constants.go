package models

// Matchmaking roles
const (
	RoleSeeker   = "seeker"   // looking for a room
	RoleProvider = "provider" // offers a room via a listing
)

// Swipe actions accepted by the decision endpoint
const (
	SwipeActionAccept = "accept"
	SwipeActionReject = "reject"
)
