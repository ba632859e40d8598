package services

import (
	"context"
	"errors"
	"testing"

	"roomly_server/models"
)

// In-memory store fakes used by the swipe engine tests.

type fakeProfiles struct {
	profiles []models.UserProfile
}

func (f *fakeProfiles) GetProfile(_ context.Context, userID string) (*models.UserProfile, error) {
	for _, profile := range f.profiles {
		if profile.UserID == userID {
			p := profile
			return &p, nil
		}
	}
	return nil, ErrItemNotFound
}

func (f *fakeProfiles) ListProfiles(_ context.Context) ([]models.UserProfile, error) {
	return append([]models.UserProfile(nil), f.profiles...), nil
}

type fakeListings struct {
	byOwner map[string][]models.Listing
}

func (f *fakeListings) GetListingsByOwner(_ context.Context, ownerID string) ([]models.Listing, error) {
	return f.byOwner[ownerID], nil
}

type fakeDecisions struct {
	decisions map[string]models.SwipeDecision
	failPuts  bool
}

func decisionKey(viewerID, candidateID string) string { return viewerID + "|" + candidateID }

func (f *fakeDecisions) PutDecision(_ context.Context, decision models.SwipeDecision) error {
	if f.failPuts {
		return errors.New("store unavailable")
	}
	if f.decisions == nil {
		f.decisions = make(map[string]models.SwipeDecision)
	}
	f.decisions[decisionKey(decision.ViewerID, decision.CandidateID)] = decision
	return nil
}

func (f *fakeDecisions) GetDecision(_ context.Context, viewerID, candidateID string) (*models.SwipeDecision, error) {
	if decision, ok := f.decisions[decisionKey(viewerID, candidateID)]; ok {
		return &decision, nil
	}
	return nil, nil
}

func (f *fakeDecisions) ListDecisionsByViewer(_ context.Context, viewerID string) ([]models.SwipeDecision, error) {
	var decisions []models.SwipeDecision
	for _, decision := range f.decisions {
		if decision.ViewerID == viewerID {
			decisions = append(decisions, decision)
		}
	}
	return decisions, nil
}

type fakeLedger struct {
	matches map[string]models.Match
}

func (f *fakeLedger) CreateMatchPair(_ context.Context, a, b models.Match) error {
	if f.matches == nil {
		f.matches = make(map[string]models.Match)
	}
	f.matches[decisionKey(a.UserID, a.CounterpartID)] = a
	f.matches[decisionKey(b.UserID, b.CounterpartID)] = b
	return nil
}

func (f *fakeLedger) DeleteMatchPair(_ context.Context, userA, userB string) error {
	delete(f.matches, decisionKey(userA, userB))
	delete(f.matches, decisionKey(userB, userA))
	return nil
}

func (f *fakeLedger) ListMatches(_ context.Context, userID string) ([]models.Match, error) {
	var matches []models.Match
	for _, match := range f.matches {
		if match.UserID == userID {
			matches = append(matches, match)
		}
	}
	return matches, nil
}

func (f *fakeLedger) has(userID, counterpartID string) bool {
	_, ok := f.matches[decisionKey(userID, counterpartID)]
	return ok
}

// newSwipeFixture builds a world with one seeker and two providers: anna
// (seeker, rent cap 7000), bo (listing at 6000) and carla (listing at 9000).
func newSwipeFixture() (*SwipeService, *fakeDecisions, *fakeLedger) {
	profiles := &fakeProfiles{profiles: []models.UserProfile{
		{UserID: "anna", Name: "Anna", SeekingRoom: true, Filters: &models.Filter{RentMax: f64(7000)}},
		{UserID: "bo", Name: "Bo", SeekingRoom: false},
		{UserID: "carla", Name: "Carla", SeekingRoom: false},
	}}
	listings := &fakeListings{byOwner: map[string][]models.Listing{
		"bo":    {{OwnerID: "bo", ListingID: "l1", MonthlyRent: 6000, SizeSqm: 18, City: "Nørrebro"}},
		"carla": {{OwnerID: "carla", ListingID: "l2", MonthlyRent: 9000, SizeSqm: 25, City: "Vesterbro"}},
	}}
	decisions := &fakeDecisions{}
	ledger := &fakeLedger{}

	engine := &SwipeService{
		Profiles:  profiles,
		Listings:  listings,
		Decisions: decisions,
		Matches:   ledger,
	}
	return engine, decisions, ledger
}

func TestBuildQueueAppliesSeekerFilterToProviderListings(t *testing.T) {
	t.Parallel()

	engine, _, _ := newSwipeFixture()

	queue, err := engine.BuildQueue(context.Background(), "anna")
	if err != nil {
		t.Fatalf("BuildQueue failed: %v", err)
	}

	// carla's listing at 9000 breaks anna's 7000 rent cap
	if len(queue) != 1 || queue[0].Profile.UserID != "bo" {
		t.Fatalf("queue = %+v, want only bo", queue)
	}
	if queue[0].Listing == nil || queue[0].Listing.MonthlyRent != 6000 {
		t.Fatalf("candidate should carry the evaluated listing, got %+v", queue[0].Listing)
	}
}

func TestBuildQueueRequiresComplementaryRole(t *testing.T) {
	t.Parallel()

	engine, _, _ := newSwipeFixture()

	// bo (provider) must only see seekers, never carla (provider) or himself
	queue, err := engine.BuildQueue(context.Background(), "bo")
	if err != nil {
		t.Fatalf("BuildQueue failed: %v", err)
	}

	if len(queue) != 1 || queue[0].Profile.UserID != "anna" {
		t.Fatalf("queue = %+v, want only anna", queue)
	}
	if queue[0].Listing != nil {
		t.Fatalf("seeker candidates carry no listing, got %+v", queue[0].Listing)
	}
}

func TestBuildQueueRejectsMissingViewerID(t *testing.T) {
	t.Parallel()

	engine, _, _ := newSwipeFixture()

	if _, err := engine.BuildQueue(context.Background(), ""); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("BuildQueue with empty viewer = %v, want ErrNotAuthenticated", err)
	}
}

func TestDecideNeverResurfacesACandidate(t *testing.T) {
	t.Parallel()

	engine, _, _ := newSwipeFixture()
	ctx := context.Background()

	if _, err := engine.BuildQueue(ctx, "anna"); err != nil {
		t.Fatalf("BuildQueue failed: %v", err)
	}
	if _, err := engine.Decide(ctx, "anna", "bo", false); err != nil {
		t.Fatalf("Decide failed: %v", err)
	}

	// rebuild: bo was decided on (outcome irrelevant), so nothing remains
	queue, err := engine.BuildQueue(ctx, "anna")
	if err != nil {
		t.Fatalf("BuildQueue failed: %v", err)
	}
	if len(queue) != 0 {
		t.Fatalf("queue after rebuild = %+v, want empty", queue)
	}
	if _, state := engine.Current("anna"); state != SessionExhausted {
		t.Fatalf("state = %s, want exhausted", state)
	}
}

func TestDecideOneSidedAcceptCreatesNoMatch(t *testing.T) {
	t.Parallel()

	engine, _, ledger := newSwipeFixture()
	ctx := context.Background()

	if _, err := engine.BuildQueue(ctx, "anna"); err != nil {
		t.Fatalf("BuildQueue failed: %v", err)
	}
	result, err := engine.Decide(ctx, "anna", "bo", true)
	if err != nil {
		t.Fatalf("Decide failed: %v", err)
	}

	if result.Match != nil {
		t.Fatalf("one-sided accept produced a match: %+v", result.Match)
	}
	if ledger.has("anna", "bo") || ledger.has("bo", "anna") {
		t.Fatal("no match records should exist after a one-sided accept")
	}
}

func TestDecideMutualAcceptCreatesBothMatchRecords(t *testing.T) {
	t.Parallel()

	engine, _, ledger := newSwipeFixture()
	ctx := context.Background()

	if _, err := engine.BuildQueue(ctx, "anna"); err != nil {
		t.Fatalf("BuildQueue failed: %v", err)
	}
	if _, err := engine.Decide(ctx, "anna", "bo", true); err != nil {
		t.Fatalf("Decide failed: %v", err)
	}

	if _, err := engine.BuildQueue(ctx, "bo"); err != nil {
		t.Fatalf("BuildQueue failed: %v", err)
	}
	result, err := engine.Decide(ctx, "bo", "anna", true)
	if err != nil {
		t.Fatalf("Decide failed: %v", err)
	}

	if result.Match == nil {
		t.Fatal("mutual accept should report a match")
	}
	if !ledger.has("anna", "bo") || !ledger.has("bo", "anna") {
		t.Fatal("both halves of the match must exist after the second accept")
	}

	forBo := ledger.matches[decisionKey("bo", "anna")]
	if forBo.CounterpartName != "Anna" || forBo.CounterpartRole != models.RoleSeeker {
		t.Fatalf("bo's record should name the seeker counterpart, got %+v", forBo)
	}
	forAnna := ledger.matches[decisionKey("anna", "bo")]
	if forAnna.CounterpartName != "Bo" || forAnna.CounterpartRole != models.RoleProvider {
		t.Fatalf("anna's record should name the provider counterpart, got %+v", forAnna)
	}
	if forAnna.ConversationID != forBo.ConversationID {
		t.Fatal("both halves must share one conversation id")
	}
}

func TestDecideRejectCreatesNoMatchEvenIfReciprocated(t *testing.T) {
	t.Parallel()

	engine, _, ledger := newSwipeFixture()
	ctx := context.Background()

	if _, err := engine.BuildQueue(ctx, "anna"); err != nil {
		t.Fatalf("BuildQueue failed: %v", err)
	}
	if _, err := engine.Decide(ctx, "anna", "bo", true); err != nil {
		t.Fatalf("Decide failed: %v", err)
	}

	if _, err := engine.BuildQueue(ctx, "bo"); err != nil {
		t.Fatalf("BuildQueue failed: %v", err)
	}
	if _, err := engine.Decide(ctx, "bo", "anna", false); err != nil {
		t.Fatalf("Decide failed: %v", err)
	}

	if len(ledger.matches) != 0 {
		t.Fatalf("reject must not create matches, got %+v", ledger.matches)
	}
}

func TestDecideDoesNotAdvanceOnPersistenceFailure(t *testing.T) {
	t.Parallel()

	engine, decisions, _ := newSwipeFixture()
	ctx := context.Background()

	if _, err := engine.BuildQueue(ctx, "anna"); err != nil {
		t.Fatalf("BuildQueue failed: %v", err)
	}

	decisions.failPuts = true
	if _, err := engine.Decide(ctx, "anna", "bo", true); err == nil {
		t.Fatal("Decide should surface the persistence failure")
	}

	// the candidate stays current so the caller can retry
	current, state := engine.Current("anna")
	if state != SessionPresenting || current == nil || current.Profile.UserID != "bo" {
		t.Fatalf("after a failed decide: current=%+v state=%s, want bo presenting", current, state)
	}

	decisions.failPuts = false
	result, err := engine.Decide(ctx, "anna", "bo", true)
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if result.State != SessionExhausted {
		t.Fatalf("state after deciding the last candidate = %s, want exhausted", result.State)
	}
}

func TestDecideRejectsWrongCandidate(t *testing.T) {
	t.Parallel()

	engine, _, _ := newSwipeFixture()
	ctx := context.Background()

	if _, err := engine.BuildQueue(ctx, "anna"); err != nil {
		t.Fatalf("BuildQueue failed: %v", err)
	}

	if _, err := engine.Decide(ctx, "anna", "carla", true); !errors.Is(err, ErrCandidateNotCurrent) {
		t.Fatalf("deciding on a candidate that is not current = %v, want ErrCandidateNotCurrent", err)
	}
}

func TestDecideWithoutSessionReturnsNoCurrentCandidate(t *testing.T) {
	t.Parallel()

	engine, _, _ := newSwipeFixture()

	if _, err := engine.Decide(context.Background(), "anna", "bo", true); !errors.Is(err, ErrNoCurrentCandidate) {
		t.Fatalf("Decide before BuildQueue = %v, want ErrNoCurrentCandidate", err)
	}
}

func TestBuildQueueSkipsProvidersWithoutListings(t *testing.T) {
	t.Parallel()

	engine, _, _ := newSwipeFixture()
	engine.Listings = &fakeListings{byOwner: map[string][]models.Listing{}}

	queue, err := engine.BuildQueue(context.Background(), "anna")
	if err != nil {
		t.Fatalf("BuildQueue failed: %v", err)
	}
	if len(queue) != 0 {
		t.Fatalf("providers with no listing should be skipped, got %+v", queue)
	}
}

func TestDecisionLogOverwriteIsIdempotent(t *testing.T) {
	t.Parallel()

	decisions := &fakeDecisions{}
	ctx := context.Background()

	first := models.SwipeDecision{ViewerID: "anna", CandidateID: "bo", Accepted: false}
	second := models.SwipeDecision{ViewerID: "anna", CandidateID: "bo", Accepted: true}

	if err := decisions.PutDecision(ctx, first); err != nil {
		t.Fatalf("PutDecision failed: %v", err)
	}
	if err := decisions.PutDecision(ctx, second); err != nil {
		t.Fatalf("PutDecision failed: %v", err)
	}

	recorded, err := decisions.ListDecisionsByViewer(ctx, "anna")
	if err != nil {
		t.Fatalf("ListDecisionsByViewer failed: %v", err)
	}
	if len(recorded) != 1 {
		t.Fatalf("duplicate writes must not duplicate decisions, got %d", len(recorded))
	}
	if !recorded[0].Accepted {
		t.Fatal("last write should win")
	}
}
