package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"roomly_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConversationID derives the shared chat id for a pair of users. Both
// participants compute the same id regardless of argument order.
func ConversationID(userA, userB string) string {
	if userA > userB {
		userA, userB = userB, userA
	}
	return strings.Join([]string{userA, userB}, "_")
}

// NewMatchPair builds the two mirror match records for a confirmed mutual
// accept, each tagged with the counterpart's display name and role.
func NewMatchPair(a, b models.UserProfile) (models.Match, models.Match) {
	createdAt := time.Now().UTC().Format(time.RFC3339)
	conversationID := ConversationID(a.UserID, b.UserID)

	forA := models.Match{
		UserID:          a.UserID,
		CounterpartID:   b.UserID,
		CounterpartName: b.Name,
		CounterpartRole: b.Role(),
		ConversationID:  conversationID,
		CreatedAt:       createdAt,
	}
	forB := models.Match{
		UserID:          b.UserID,
		CounterpartID:   a.UserID,
		CounterpartName: a.Name,
		CounterpartRole: a.Role(),
		ConversationID:  conversationID,
		CreatedAt:       createdAt,
	}
	return forA, forB
}

type MatchService struct {
	Dynamo   *DynamoService
	Profiles ProfileDirectory
}

// CreateMatchPair writes both halves of a match in a single transaction so
// a partial failure can never leave a one-sided record.
func (ms *MatchService) CreateMatchPair(ctx context.Context, a, b models.Match) error {
	itemA, err := attributevalue.MarshalMap(a)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}
	itemB, err := attributevalue.MarshalMap(b)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	err = ms.Dynamo.TransactWriteItems(ctx, []types.TransactWriteItem{
		{Put: &types.Put{TableName: aws.String(models.MatchesTable), Item: itemA}},
		{Put: &types.Put{TableName: aws.String(models.MatchesTable), Item: itemB}},
	})
	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}

	log.Printf("Match created: %s and %s", a.UserID, b.UserID)
	return nil
}

// DeleteMatchPair removes the match under both participants atomically
func (ms *MatchService) DeleteMatchPair(ctx context.Context, userA, userB string) error {
	err := ms.Dynamo.TransactWriteItems(ctx, []types.TransactWriteItem{
		{Delete: &types.Delete{TableName: aws.String(models.MatchesTable), Key: matchKey(userA, userB)}},
		{Delete: &types.Delete{TableName: aws.String(models.MatchesTable), Key: matchKey(userB, userA)}},
	})
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	log.Printf("Match deleted: %s and %s", userA, userB)
	return nil
}

// ListMatches returns a user's confirmed matches. A match whose mirror
// record is missing is self-healed by rewriting the missing side.
func (ms *MatchService) ListMatches(ctx context.Context, userID string) ([]models.Match, error) {
	keyCondition := "userId = :userId"
	expressionValues := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}

	items, err := ms.Dynamo.QueryItems(ctx, models.MatchesTable, keyCondition, expressionValues, nil, 200)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches: %w", err)
	}

	var matches []models.Match
	if err := attributevalue.UnmarshalListOfMaps(items, &matches); err != nil {
		return nil, fmt.Errorf("failed to parse matches: %w", err)
	}

	for _, match := range matches {
		if err := ms.healMirror(ctx, match); err != nil {
			log.Printf("Could not verify mirror record for match %s/%s: %v", match.UserID, match.CounterpartID, err)
		}
	}

	return matches, nil
}

// healMirror rewrites the counterpart's half of a match when it is missing
func (ms *MatchService) healMirror(ctx context.Context, match models.Match) error {
	_, err := ms.Dynamo.GetItem(ctx, models.MatchesTable, matchKey(match.CounterpartID, match.UserID))
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrItemNotFound) {
		return err
	}

	mirror := models.Match{
		UserID:         match.CounterpartID,
		CounterpartID:  match.UserID,
		ConversationID: match.ConversationID,
		CreatedAt:      match.CreatedAt,
	}
	if ms.Profiles != nil {
		if owner, err := ms.Profiles.GetProfile(ctx, match.UserID); err == nil {
			mirror.CounterpartName = owner.Name
			mirror.CounterpartRole = owner.Role()
		}
	}
	log.Printf("Healing one-sided match record: rewriting %s/%s", mirror.UserID, mirror.CounterpartID)
	return ms.Dynamo.PutItem(ctx, models.MatchesTable, mirror)
}

func matchKey(userID, counterpartID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"userId":        &types.AttributeValueMemberS{Value: userID},
		"counterpartId": &types.AttributeValueMemberS{Value: counterpartID},
	}
}
