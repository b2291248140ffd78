package services

import (
	"context"
	"time"

	"codecollab_server/apperrors"
	"codecollab_server/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultNotificationLimit caps a notification listing when the caller
// does not ask for a specific amount
const DefaultNotificationLimit = 10

// NotificationService owns owner-scoped notification listing and state
type NotificationService struct {
	Notifications NotificationRepository
	Log           *zap.Logger
}

// NotifyInterest records an interest notification for the project owner.
// Failures are logged, not surfaced: a missed notification must never fail
// the interest toggle that triggered it.
func (s *NotificationService) NotifyInterest(ctx context.Context, project *models.Project, sender *models.UserProfile) {
	// Never notify yourself.
	if project.OwnerID == sender.UserID {
		return
	}
	notification := models.Notification{
		NotificationID: uuid.New().String(),
		RecipientID:    project.OwnerID,
		SenderID:       sender.UserID,
		Type:           models.NotificationTypeInterest,
		ProjectID:      project.ProjectID,
		Message:        interestMessage(sender, project),
		IsRead:         false,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Notifications.Put(ctx, notification); err != nil {
		s.Log.Error("failed to store notification",
			zap.String("recipientId", project.OwnerID), zap.Error(err))
	}
}

// MyNotifications lists the viewer's notifications, newest first
func (s *NotificationService) MyNotifications(ctx context.Context, viewer *models.UserProfile, limit int) ([]models.Notification, error) {
	if viewer == nil {
		return nil, apperrors.Unauthorized("sign in to list notifications")
	}
	if limit < 1 {
		limit = DefaultNotificationLimit
	}
	notifications, err := s.Notifications.ByRecipient(ctx, viewer.UserID, limit)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch notifications", err)
	}
	return notifications, nil
}

// UnreadCount returns the viewer's unread notification count. Anonymous
// viewers have zero unread notifications rather than an error.
func (s *NotificationService) UnreadCount(ctx context.Context, viewer *models.UserProfile) (int, error) {
	if viewer == nil {
		return 0, nil
	}
	count, err := s.Notifications.CountUnread(ctx, viewer.UserID)
	if err != nil {
		return 0, apperrors.Storage("failed to count notifications", err)
	}
	return count, nil
}

// MarkRead marks one of the viewer's notifications as read
func (s *NotificationService) MarkRead(ctx context.Context, viewer *models.UserProfile, notificationID string) error {
	if viewer == nil {
		return apperrors.Unauthorized("sign in to update notifications")
	}
	notification, err := s.Notifications.Get(ctx, notificationID)
	if err != nil {
		return apperrors.Storage("failed to fetch notification", err)
	}
	if notification == nil {
		return apperrors.NotFound("notification not found")
	}
	if notification.RecipientID != viewer.UserID {
		return apperrors.Forbidden("not your notification")
	}
	if err := s.Notifications.MarkRead(ctx, notificationID); err != nil {
		return apperrors.Storage("failed to mark notification as read", err)
	}
	return nil
}

// MarkAllRead marks every unread notification of the viewer as read
func (s *NotificationService) MarkAllRead(ctx context.Context, viewer *models.UserProfile) error {
	if viewer == nil {
		return apperrors.Unauthorized("sign in to update notifications")
	}
	notifications, err := s.Notifications.ByRecipient(ctx, viewer.UserID, 0)
	if err != nil {
		return apperrors.Storage("failed to fetch notifications", err)
	}
	for _, n := range notifications {
		if n.IsRead {
			continue
		}
		if err := s.Notifications.MarkRead(ctx, n.NotificationID); err != nil {
			return apperrors.Storage("failed to mark notifications as read", err)
		}
	}
	return nil
}

// DeleteNotification removes one of the viewer's notifications
func (s *NotificationService) DeleteNotification(ctx context.Context, viewer *models.UserProfile, notificationID string) error {
	if viewer == nil {
		return apperrors.Unauthorized("sign in to delete notifications")
	}
	notification, err := s.Notifications.Get(ctx, notificationID)
	if err != nil {
		return apperrors.Storage("failed to fetch notification", err)
	}
	if notification == nil {
		return apperrors.NotFound("notification not found")
	}
	if notification.RecipientID != viewer.UserID {
		return apperrors.Forbidden("not your notification")
	}
	if err := s.Notifications.Delete(ctx, notificationID); err != nil {
		return apperrors.Storage("failed to delete notification", err)
	}
	return nil
}

// ClearNotifications removes all notifications of the viewer
func (s *NotificationService) ClearNotifications(ctx context.Context, viewer *models.UserProfile) error {
	if viewer == nil {
		return apperrors.Unauthorized("sign in to clear notifications")
	}
	if err := s.Notifications.Clear(ctx, viewer.UserID); err != nil {
		return apperrors.Storage("failed to clear notifications", err)
	}
	return nil
}
