package controllers

import (
	"net/http"
	"strconv"

	"codecollab_server/services"

	"github.com/gorilla/mux"
)

// NotificationController handles notification listing and read state
type NotificationController struct {
	NotificationService *services.NotificationService
	UserService         *services.UserProfileService
}

// NewNotificationController creates a new instance of NotificationController
func NewNotificationController(notificationService *services.NotificationService, userService *services.UserProfileService) *NotificationController {
	return &NotificationController{NotificationService: notificationService, UserService: userService}
}

// MyNotifications handles GET /api/notifications
func (c *NotificationController) MyNotifications(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	viewer := resolveViewer(r, c.UserService)
	notifications, err := c.NotificationService.MyNotifications(r.Context(), viewer, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"notifications": notifications})
}

// UnreadCount handles GET /api/notifications/unread-count
func (c *NotificationController) UnreadCount(w http.ResponseWriter, r *http.Request) {
	viewer := resolveViewer(r, c.UserService)
	count, err := c.NotificationService.UnreadCount(r.Context(), viewer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

// MarkRead handles PATCH /api/notifications/{notificationId}/read
func (c *NotificationController) MarkRead(w http.ResponseWriter, r *http.Request) {
	notificationID := mux.Vars(r)["notificationId"]

	viewer := resolveViewer(r, c.UserService)
	if err := c.NotificationService.MarkRead(r.Context(), viewer, notificationID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "notification marked as read"})
}

// MarkAllRead handles PATCH /api/notifications/read-all
func (c *NotificationController) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	viewer := resolveViewer(r, c.UserService)
	if err := c.NotificationService.MarkAllRead(r.Context(), viewer); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "all notifications marked as read"})
}

// DeleteNotification handles DELETE /api/notifications/{notificationId}
func (c *NotificationController) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	notificationID := mux.Vars(r)["notificationId"]

	viewer := resolveViewer(r, c.UserService)
	if err := c.NotificationService.DeleteNotification(r.Context(), viewer, notificationID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "notification deleted"})
}

// ClearNotifications handles DELETE /api/notifications
func (c *NotificationController) ClearNotifications(w http.ResponseWriter, r *http.Request) {
	viewer := resolveViewer(r, c.UserService)
	if err := c.NotificationService.ClearNotifications(r.Context(), viewer); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "notifications cleared"})
}
