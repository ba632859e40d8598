package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"roomly_server/models"
)

// Session states. A session starts Loading, moves to Presenting once the
// candidate queue is resolved, and ends in Exhausted when no candidates
// remain. Exhausted is terminal until the queue is rebuilt.
const (
	SessionLoading    = "loading"
	SessionPresenting = "presenting"
	SessionExhausted  = "exhausted"
)

// Candidate is one entry of a viewer's swipe queue: the profile plus the
// listing the filter check ran against (nil for seeker candidates).
type Candidate struct {
	Profile models.UserProfile `json:"profile"`
	Listing *models.Listing    `json:"listing,omitempty"`
}

// SwipeService drives the per-viewer swipe session: queue construction,
// decision recording and match creation on mutual accept.
type SwipeService struct {
	Profiles  ProfileDirectory
	Listings  ListingDirectory
	Decisions DecisionLog
	Matches   MatchLedger

	mu       sync.Mutex
	sessions map[string]*swipeSession
}

type swipeSession struct {
	viewerID string
	state    string
	queue    []Candidate
	position int
}

// DecideResult reports the outcome of a decision: the match created on
// mutual accept (nil otherwise) and the session state afterwards.
type DecideResult struct {
	Match *models.Match `json:"match,omitempty"`
	State string        `json:"state"`
}

func (ss *SwipeService) session(viewerID string) *swipeSession {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.sessions == nil {
		ss.sessions = make(map[string]*swipeSession)
	}
	session, ok := ss.sessions[viewerID]
	if !ok {
		session = &swipeSession{viewerID: viewerID, state: SessionLoading}
		ss.sessions[viewerID] = session
	}
	return session
}

// BuildQueue resolves the candidate queue for a viewer and resets the
// session to its head. Called once per session and again whenever the
// underlying data changes.
func (ss *SwipeService) BuildQueue(ctx context.Context, viewerID string) ([]Candidate, error) {
	if viewerID == "" {
		return nil, ErrNotAuthenticated
	}

	viewer, err := ss.Profiles.GetProfile(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve viewer %s: %w", viewerID, err)
	}

	profiles, err := ss.Profiles.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	decisions, err := ss.Decisions.ListDecisionsByViewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	decided := make(map[string]struct{}, len(decisions))
	for _, decision := range decisions {
		decided[decision.CandidateID] = struct{}{}
	}

	var queue []Candidate
	for _, profile := range profiles {
		if profile.UserID == viewerID {
			continue
		}
		// strict role complementarity: providers see seekers and vice versa
		if profile.SeekingRoom == viewer.SeekingRoom {
			continue
		}
		if _, alreadyDecided := decided[profile.UserID]; alreadyDecided {
			continue
		}

		candidate, ok, err := ss.evaluate(ctx, viewer, &profile)
		if err != nil {
			return nil, err
		}
		if ok {
			queue = append(queue, candidate)
		}
	}

	session := ss.session(viewerID)
	ss.mu.Lock()
	session.queue = queue
	session.position = 0
	if len(queue) == 0 {
		session.state = SessionExhausted
	} else {
		session.state = SessionPresenting
	}
	ss.mu.Unlock()

	log.Printf("Built swipe queue for %s: %d candidates", viewerID, len(queue))
	return queue, nil
}

// evaluate runs the filter check for one viewer/candidate pairing. The
// seeker's filter is always evaluated against the provider's most recent
// listing, whichever side is viewing. A provider candidate without any
// listing is skipped.
func (ss *SwipeService) evaluate(ctx context.Context, viewer, candidate *models.UserProfile) (Candidate, bool, error) {
	var seeker, provider *models.UserProfile
	if viewer.SeekingRoom {
		seeker, provider = viewer, candidate
	} else {
		seeker, provider = candidate, viewer
	}

	listings, err := ss.Listings.GetListingsByOwner(ctx, provider.UserID)
	if err != nil {
		return Candidate{}, false, err
	}

	var listing *models.Listing
	if len(listings) > 0 {
		listing = &listings[0]
	}

	if provider == candidate && listing == nil {
		// a provider with nothing to offer is not presentable
		return Candidate{}, false, nil
	}

	if !PassesFilter(listing, seeker.Filters) {
		return Candidate{}, false, nil
	}

	result := Candidate{Profile: *candidate}
	if provider == candidate {
		result.Listing = listing
	}
	return result, true, nil
}

// Current returns the candidate at the head of the viewer's queue and the
// session state. A Loading state means BuildQueue has not run yet.
func (ss *SwipeService) Current(viewerID string) (*Candidate, string) {
	session := ss.session(viewerID)
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if session.state != SessionPresenting || session.position >= len(session.queue) {
		return nil, session.state
	}
	candidate := session.queue[session.position]
	return &candidate, session.state
}

// Decide records the viewer's decision about the current candidate. On a
// mutual accept both match records are created before the queue advances;
// any persistence failure leaves the candidate current so the caller can
// retry.
func (ss *SwipeService) Decide(ctx context.Context, viewerID, candidateID string, accepted bool) (*DecideResult, error) {
	if viewerID == "" {
		return nil, ErrNotAuthenticated
	}

	session := ss.session(viewerID)
	ss.mu.Lock()
	if session.state != SessionPresenting || session.position >= len(session.queue) {
		ss.mu.Unlock()
		return nil, ErrNoCurrentCandidate
	}
	current := session.queue[session.position]
	ss.mu.Unlock()

	if current.Profile.UserID != candidateID {
		return nil, fmt.Errorf("candidate %s: %w", candidateID, ErrCandidateNotCurrent)
	}

	decision := models.SwipeDecision{
		ViewerID:    viewerID,
		CandidateID: candidateID,
		Accepted:    accepted,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := ss.Decisions.PutDecision(ctx, decision); err != nil {
		return nil, err
	}

	var created *models.Match
	if accepted {
		reverse, err := ss.Decisions.GetDecision(ctx, candidateID, viewerID)
		if err != nil {
			return nil, err
		}
		if reverse != nil && reverse.Accepted {
			viewer, err := ss.Profiles.GetProfile(ctx, viewerID)
			if err != nil {
				return nil, err
			}
			forViewer, forCandidate := NewMatchPair(*viewer, current.Profile)
			if err := ss.Matches.CreateMatchPair(ctx, forViewer, forCandidate); err != nil {
				return nil, err
			}
			created = &forViewer
			log.Printf("Mutual accept: matched %s with %s", viewerID, candidateID)
		}
	}

	ss.mu.Lock()
	session.position++
	if session.position >= len(session.queue) {
		session.state = SessionExhausted
	}
	state := session.state
	ss.mu.Unlock()

	return &DecideResult{Match: created, State: state}, nil
}
