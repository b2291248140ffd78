package models

// Notification is delivered to a project owner when someone shows interest
type Notification struct {
	NotificationID string `dynamodbav:"notificationId" json:"notificationId"`
	RecipientID    string `dynamodbav:"recipientId" json:"recipientId"`
	SenderID       string `dynamodbav:"senderId" json:"senderId"`
	Type           string `dynamodbav:"type" json:"type"` // interest, message
	ProjectID      string `dynamodbav:"projectId,omitempty" json:"projectId,omitempty"`
	Message        string `dynamodbav:"message" json:"message"`
	IsRead         bool   `dynamodbav:"isRead" json:"isRead"`
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`
}

// NotificationsTable is the DynamoDB table name for notifications
const NotificationsTable = "Notifications"

// RecipientIndex is the GSI used to list a user's notifications
const RecipientIndex = "recipientId-index"
