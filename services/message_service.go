package services

import (
	"context"
	"fmt"
	"log"

	"roomly_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type MessageService struct {
	Dynamo *DynamoService
}

// AppendMessage stores a chat message in the Messages table
func (msgs *MessageService) AppendMessage(ctx context.Context, message models.ChatMessage) error {
	if err := msgs.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		return fmt.Errorf("failed to store message: %w", err)
	}
	return nil
}

// ListMessages fetches messages for a conversation ordered by sentAt
// ascending (oldest first). A limit of zero or less returns the full
// history, paging through the table as needed.
func (msgs *MessageService) ListMessages(ctx context.Context, conversationID string, limit int) ([]models.ChatMessage, error) {
	keyCondition := "conversationId = :conversationId"
	expressionValues := map[string]types.AttributeValue{
		":conversationId": &types.AttributeValueMemberS{Value: conversationID},
	}

	var items []map[string]types.AttributeValue
	var err error
	if limit > 0 {
		items, err = msgs.Dynamo.QueryItemsWithOptions(ctx, models.MessagesTable, keyCondition, expressionValues, nil, int32(limit), true)
	} else {
		items, err = msgs.Dynamo.QueryAllItems(ctx, models.MessagesTable, keyCondition, expressionValues, nil, true)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.ChatMessage
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}
	return messages, nil
}

// MarkMessagesRead flips isUnread on the messages a reader received, leaving
// the reader's own messages untouched.
func (msgs *MessageService) MarkMessagesRead(ctx context.Context, conversationID, readerID string) error {
	messages, err := msgs.ListMessages(ctx, conversationID, 0)
	if err != nil {
		return err
	}

	for _, message := range messages {
		if message.SenderID == readerID || !message.IsUnread {
			continue
		}

		key := map[string]types.AttributeValue{
			"conversationId": &types.AttributeValueMemberS{Value: conversationID},
			"sentAt":         &types.AttributeValueMemberS{Value: message.SentAt},
		}
		updateExpression := "SET isUnread = :false"
		expressionValues := map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
		}

		if _, err := msgs.Dynamo.UpdateItem(ctx, models.MessagesTable, updateExpression, key, expressionValues, nil); err != nil {
			log.Printf("Failed to mark message %s as read: %v", message.MessageID, err)
		}
	}

	return nil
}
