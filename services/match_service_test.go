package services

import (
	"context"
	"testing"

	"roomly_server/models"
)

func TestConversationIDIsOrderIndependent(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"anna", "bo"},
		{"zelda", "adam"},
		{"user-1", "user-2"},
	}

	for _, pair := range pairs {
		ab := ConversationID(pair[0], pair[1])
		ba := ConversationID(pair[1], pair[0])
		if ab != ba {
			t.Errorf("ConversationID(%q, %q) = %q but reversed = %q", pair[0], pair[1], ab, ba)
		}
	}
}

func TestConversationIDSortsLexicographically(t *testing.T) {
	t.Parallel()

	if got := ConversationID("bo", "anna"); got != "anna_bo" {
		t.Fatalf("ConversationID = %q, want anna_bo", got)
	}
}

func TestNewMatchPairMirrorsCounterparts(t *testing.T) {
	t.Parallel()

	seeker := models.UserProfile{UserID: "anna", Name: "Anna", SeekingRoom: true}
	provider := models.UserProfile{UserID: "bo", Name: "Bo", SeekingRoom: false}

	forSeeker, forProvider := NewMatchPair(seeker, provider)

	if forSeeker.UserID != "anna" || forSeeker.CounterpartID != "bo" {
		t.Fatalf("seeker half misrouted: %+v", forSeeker)
	}
	if forProvider.UserID != "bo" || forProvider.CounterpartID != "anna" {
		t.Fatalf("provider half misrouted: %+v", forProvider)
	}
	if forSeeker.CounterpartName != "Bo" || forSeeker.CounterpartRole != models.RoleProvider {
		t.Fatalf("seeker half should describe the provider, got %+v", forSeeker)
	}
	if forProvider.CounterpartName != "Anna" || forProvider.CounterpartRole != models.RoleSeeker {
		t.Fatalf("provider half should describe the seeker, got %+v", forProvider)
	}
	if forSeeker.ConversationID != forProvider.ConversationID {
		t.Fatal("both halves must share the conversation id")
	}
	if forSeeker.ConversationID != ConversationID("anna", "bo") {
		t.Fatalf("conversation id = %q, want %q", forSeeker.ConversationID, ConversationID("anna", "bo"))
	}
	if forSeeker.CreatedAt != forProvider.CreatedAt {
		t.Fatal("both halves must carry the same creation timestamp")
	}
}

func TestDeleteMatchPairRemovesBothSides(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ledger := &fakeLedger{}
	forA, forB := NewMatchPair(
		models.UserProfile{UserID: "anna", Name: "Anna", SeekingRoom: true},
		models.UserProfile{UserID: "bo", Name: "Bo", SeekingRoom: false},
	)
	if err := ledger.CreateMatchPair(ctx, forA, forB); err != nil {
		t.Fatalf("CreateMatchPair failed: %v", err)
	}

	// argument order must not matter
	if err := ledger.DeleteMatchPair(ctx, "bo", "anna"); err != nil {
		t.Fatalf("DeleteMatchPair failed: %v", err)
	}

	if ledger.has("anna", "bo") || ledger.has("bo", "anna") {
		t.Fatal("deletion must remove the record for both participants")
	}
}
