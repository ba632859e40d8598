package services

import (
	"context"
	"fmt"
	"time"

	"roomly_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type ListingService struct {
	Dynamo *DynamoService
}

// AddListing stores a new listing for a provider, assigning its id and
// creation timestamp.
func (ls *ListingService) AddListing(ctx context.Context, listing models.Listing) (*models.Listing, error) {
	if listing.OwnerID == "" {
		return nil, fmt.Errorf("listing is missing ownerId")
	}
	if listing.ListingID == "" {
		listing.ListingID = uuid.NewString()
	}
	listing.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := ls.Dynamo.PutItem(ctx, models.ListingsTable, listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// GetListingsByOwner returns all listings owned by a provider, newest first
func (ls *ListingService) GetListingsByOwner(ctx context.Context, ownerID string) ([]models.Listing, error) {
	keyCondition := "ownerId = :ownerId"
	expressionValues := map[string]types.AttributeValue{
		":ownerId": &types.AttributeValueMemberS{Value: ownerID},
	}

	items, err := ls.Dynamo.QueryItems(ctx, models.ListingsTable, keyCondition, expressionValues, nil, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}

	var listings []models.Listing
	if err := attributevalue.UnmarshalListOfMaps(items, &listings); err != nil {
		return nil, fmt.Errorf("failed to parse listings: %w", err)
	}
	return listings, nil
}

// UpdateListing overwrites an existing listing's editable fields
func (ls *ListingService) UpdateListing(ctx context.Context, listing models.Listing) (*models.Listing, error) {
	if listing.OwnerID == "" || listing.ListingID == "" {
		return nil, fmt.Errorf("listing is missing ownerId or listingId")
	}
	if err := ls.Dynamo.PutItem(ctx, models.ListingsTable, listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// DeleteListing removes a listing
func (ls *ListingService) DeleteListing(ctx context.Context, ownerID, listingID string) error {
	key := map[string]types.AttributeValue{
		"ownerId":   &types.AttributeValueMemberS{Value: ownerID},
		"listingId": &types.AttributeValueMemberS{Value: listingID},
	}
	return ls.Dynamo.DeleteItem(ctx, models.ListingsTable, key)
}
