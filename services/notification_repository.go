package services

import (
	"context"
	"sort"

	"codecollab_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoNotificationRepository implements NotificationRepository over the
// Notifications table with a recipient GSI
type DynamoNotificationRepository struct {
	Dynamo *DynamoService
}

func notificationKey(notificationID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"notificationId": &types.AttributeValueMemberS{Value: notificationID},
	}
}

func (r *DynamoNotificationRepository) Put(ctx context.Context, notification models.Notification) error {
	return r.Dynamo.PutItem(ctx, models.NotificationsTable, notification)
}

func (r *DynamoNotificationRepository) Get(ctx context.Context, notificationID string) (*models.Notification, error) {
	item, err := r.Dynamo.GetItem(ctx, models.NotificationsTable, notificationKey(notificationID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	var notification models.Notification
	if err := attributevalue.UnmarshalMap(item, &notification); err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *DynamoNotificationRepository) ByRecipient(ctx context.Context, recipientID string, limit int) ([]models.Notification, error) {
	notifications, err := r.allByRecipient(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(notifications) {
		notifications = notifications[:limit]
	}
	return notifications, nil
}

func (r *DynamoNotificationRepository) CountUnread(ctx context.Context, recipientID string) (int, error) {
	notifications, err := r.allByRecipient(ctx, recipientID)
	if err != nil {
		return 0, err
	}
	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}
	return unread, nil
}

func (r *DynamoNotificationRepository) MarkRead(ctx context.Context, notificationID string) error {
	_, err := r.Dynamo.UpdateItem(ctx, models.NotificationsTable,
		"SET isRead = :read",
		notificationKey(notificationID),
		map[string]types.AttributeValue{
			":read": &types.AttributeValueMemberBOOL{Value: true},
		},
		nil,
	)
	return err
}

func (r *DynamoNotificationRepository) Delete(ctx context.Context, notificationID string) error {
	return r.Dynamo.DeleteItem(ctx, models.NotificationsTable, notificationKey(notificationID))
}

// Clear removes every notification for a recipient
func (r *DynamoNotificationRepository) Clear(ctx context.Context, recipientID string) error {
	notifications, err := r.allByRecipient(ctx, recipientID)
	if err != nil {
		return err
	}
	if len(notifications) == 0 {
		return nil
	}

	requests := make([]types.WriteRequest, 0, len(notifications))
	for _, n := range notifications {
		requests = append(requests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{Key: notificationKey(n.NotificationID)},
		})
	}
	return r.Dynamo.BatchWriteItems(ctx, models.NotificationsTable, requests)
}

func (r *DynamoNotificationRepository) allByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	items, err := r.Dynamo.QueryItemsWithIndex(ctx, models.NotificationsTable, models.RecipientIndex,
		"recipientId = :recipientId",
		map[string]types.AttributeValue{
			":recipientId": &types.AttributeValueMemberS{Value: recipientID},
		},
		0,
	)
	if err != nil {
		return nil, err
	}
	var notifications []models.Notification
	if err := attributevalue.UnmarshalListOfMaps(items, &notifications); err != nil {
		return nil, err
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt > notifications[j].CreatedAt
	})
	return notifications, nil
}
