package services

import (
	"context"
	"errors"
	"fmt"

	"roomly_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type DecisionService struct {
	Dynamo *DynamoService
}

// PutDecision records a swipe decision. Writing the same (viewer, candidate)
// pair again overwrites the previous decision, so retries cannot duplicate.
func (dcs *DecisionService) PutDecision(ctx context.Context, decision models.SwipeDecision) error {
	if err := dcs.Dynamo.PutItem(ctx, models.SwipeDecisionsTable, decision); err != nil {
		return fmt.Errorf("failed to record decision: %w", err)
	}
	return nil
}

// GetDecision fetches the decision a viewer made about a candidate, or nil
// if none was recorded.
func (dcs *DecisionService) GetDecision(ctx context.Context, viewerID, candidateID string) (*models.SwipeDecision, error) {
	key := map[string]types.AttributeValue{
		"viewerId":    &types.AttributeValueMemberS{Value: viewerID},
		"candidateId": &types.AttributeValueMemberS{Value: candidateID},
	}

	item, err := dcs.Dynamo.GetItem(ctx, models.SwipeDecisionsTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var decision models.SwipeDecision
	if err := attributevalue.UnmarshalMap(item, &decision); err != nil {
		return nil, fmt.Errorf("failed to unmarshal decision: %w", err)
	}
	return &decision, nil
}

// ListDecisionsByViewer returns every decision a viewer has recorded
func (dcs *DecisionService) ListDecisionsByViewer(ctx context.Context, viewerID string) ([]models.SwipeDecision, error) {
	keyCondition := "viewerId = :viewerId"
	expressionValues := map[string]types.AttributeValue{
		":viewerId": &types.AttributeValueMemberS{Value: viewerID},
	}

	items, err := dcs.Dynamo.QueryItems(ctx, models.SwipeDecisionsTable, keyCondition, expressionValues, nil, 500)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch decisions: %w", err)
	}

	var decisions []models.SwipeDecision
	if err := attributevalue.UnmarshalListOfMaps(items, &decisions); err != nil {
		return nil, fmt.Errorf("failed to parse decisions: %w", err)
	}
	return decisions, nil
}
