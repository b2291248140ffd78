package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"codecollab_server/apperrors"
	"codecollab_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newNotificationService() (*NotificationService, *fakeNotificationRepo) {
	repo := newFakeNotificationRepo()
	return &NotificationService{Notifications: repo, Log: zap.NewNop()}, repo
}

func seedNotifications(t *testing.T, repo *fakeNotificationRepo, recipientID string, n int) {
	t.Helper()
	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		require.NoError(t, repo.Put(context.Background(), models.Notification{
			NotificationID: fmt.Sprintf("n-%d", i),
			RecipientID:    recipientID,
			SenderID:       "sender",
			Type:           models.NotificationTypeInterest,
			Message:        "someone is interested",
			CreatedAt:      base.Add(-time.Duration(i) * time.Minute).Format(time.RFC3339),
		}))
	}
}

func TestNotifyInterest(t *testing.T) {
	svc, repo := newNotificationService()
	sender := testViewer()
	project := &models.Project{ProjectID: "p1", Title: "Recipe Finder", OwnerID: "owner-1"}

	svc.NotifyInterest(context.Background(), project, sender)

	stored, err := repo.ByRecipient(context.Background(), "owner-1", 0)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, sender.UserID, stored[0].SenderID)
	assert.Equal(t, "p1", stored[0].ProjectID)
	assert.Contains(t, stored[0].Message, "Recipe Finder")
	assert.False(t, stored[0].IsRead)

	// Owner showing interest in their own project is never notified.
	own := &models.Project{ProjectID: "p2", Title: "t", OwnerID: sender.UserID}
	svc.NotifyInterest(context.Background(), own, sender)
	stored, err = repo.ByRecipient(context.Background(), sender.UserID, 0)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestMyNotifications(t *testing.T) {
	svc, repo := newNotificationService()
	viewer := testViewer()
	seedNotifications(t, repo, viewer.UserID, 15)

	_, err := svc.MyNotifications(context.Background(), nil, 0)
	assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))

	// Default limit applies when none is given.
	notifications, err := svc.MyNotifications(context.Background(), viewer, 0)
	require.NoError(t, err)
	assert.Len(t, notifications, DefaultNotificationLimit)
	// Newest first.
	assert.Equal(t, "n-0", notifications[0].NotificationID)

	notifications, err = svc.MyNotifications(context.Background(), viewer, 3)
	require.NoError(t, err)
	assert.Len(t, notifications, 3)
}

func TestUnreadCountAndMarkRead(t *testing.T) {
	svc, repo := newNotificationService()
	viewer := testViewer()
	seedNotifications(t, repo, viewer.UserID, 3)

	// Anonymous viewers just have zero unread.
	count, err := svc.UnreadCount(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = svc.UnreadCount(context.Background(), viewer)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, svc.MarkRead(context.Background(), viewer, "n-1"))
	count, err = svc.UnreadCount(context.Background(), viewer)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, svc.MarkAllRead(context.Background(), viewer))
	count, err = svc.UnreadCount(context.Background(), viewer)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMarkRead_OwnershipEnforced(t *testing.T) {
	svc, repo := newNotificationService()
	viewer := testViewer()
	seedNotifications(t, repo, "someone-else", 1)

	err := svc.MarkRead(context.Background(), viewer, "n-0")
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	err = svc.MarkRead(context.Background(), viewer, "missing")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	err = svc.DeleteNotification(context.Background(), viewer, "n-0")
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
}

func TestDeleteAndClearNotifications(t *testing.T) {
	svc, repo := newNotificationService()
	viewer := testViewer()
	seedNotifications(t, repo, viewer.UserID, 3)

	require.NoError(t, svc.DeleteNotification(context.Background(), viewer, "n-0"))
	remaining, err := svc.MyNotifications(context.Background(), viewer, 0)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)

	require.NoError(t, svc.ClearNotifications(context.Background(), viewer))
	remaining, err = svc.MyNotifications(context.Background(), viewer, 0)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
