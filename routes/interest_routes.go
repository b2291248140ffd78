package routes

import (
	"codecollab_server/controllers"
	"codecollab_server/services"

	"github.com/gorilla/mux"
)

// RegisterInterestRoutes sets up routes for interest operations under /api/interests
func RegisterInterestRoutes(r *mux.Router, interestService *services.InterestService, userService *services.UserProfileService) {
	controller := controllers.NewInterestController(interestService, userService)

	interestRouter := r.PathPrefix("/api/interests").Subrouter()

	interestRouter.HandleFunc("/mine", controller.MyInterests).Methods("GET")
	interestRouter.HandleFunc("/{projectId}/toggle", controller.ToggleInterest).Methods("POST")
	interestRouter.HandleFunc("/{projectId}/check", controller.CheckInterest).Methods("GET")
}
