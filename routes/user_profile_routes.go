package routes

import (
	"codecollab_server/controllers"
	"codecollab_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for user profile operations under /api/profiles
func RegisterUserProfileRoutes(r *mux.Router, userProfileService *services.UserProfileService) {
	controller := controllers.NewUserProfileController(userProfileService)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()

	profileRouter.HandleFunc("", controller.CreateUserProfile).Methods("POST")
	profileRouter.HandleFunc("/me", controller.UpdateUserProfile).Methods("PUT")
	profileRouter.HandleFunc("/me", controller.DeleteUserProfile).Methods("DELETE")
	profileRouter.HandleFunc("/me/completion", controller.ProfileCompletion).Methods("GET")
	profileRouter.HandleFunc("/email/{emailId}", controller.GetUserProfileByEmail).Methods("GET")
	profileRouter.HandleFunc("/{userId}", controller.GetUserProfileByID).Methods("GET")
}
