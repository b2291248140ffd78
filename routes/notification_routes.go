package routes

import (
	"codecollab_server/controllers"
	"codecollab_server/services"

	"github.com/gorilla/mux"
)

// RegisterNotificationRoutes sets up routes for notifications under /api/notifications
func RegisterNotificationRoutes(r *mux.Router, notificationService *services.NotificationService, userService *services.UserProfileService) {
	controller := controllers.NewNotificationController(notificationService, userService)

	notificationRouter := r.PathPrefix("/api/notifications").Subrouter()

	notificationRouter.HandleFunc("", controller.MyNotifications).Methods("GET")
	notificationRouter.HandleFunc("", controller.ClearNotifications).Methods("DELETE")
	notificationRouter.HandleFunc("/unread-count", controller.UnreadCount).Methods("GET")
	notificationRouter.HandleFunc("/read-all", controller.MarkAllRead).Methods("PATCH")
	notificationRouter.HandleFunc("/{notificationId}/read", controller.MarkRead).Methods("PATCH")
	notificationRouter.HandleFunc("/{notificationId}", controller.DeleteNotification).Methods("DELETE")
}
