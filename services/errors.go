package services

import "errors"

var (
	// ErrNotAuthenticated is returned when an operation is attempted without
	// a resolvable viewer identity. Callers must surface it, not retry.
	ErrNotAuthenticated = errors.New("no authenticated user")

	// ErrItemNotFound is returned by store reads when the requested record
	// does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrNoCurrentCandidate is returned by Decide when the session holds no
	// candidate to decide on (already exhausted or not yet loaded).
	ErrNoCurrentCandidate = errors.New("no current candidate")

	// ErrCandidateNotCurrent is returned by Decide when the named candidate
	// is not the one at the head of the queue.
	ErrCandidateNotCurrent = errors.New("candidate is not the current candidate")
)
