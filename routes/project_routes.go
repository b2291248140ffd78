package routes

import (
	"codecollab_server/controllers"
	"codecollab_server/services"

	"github.com/gorilla/mux"
)

// RegisterProjectRoutes sets up routes for project operations under /api/projects
func RegisterProjectRoutes(r *mux.Router, projectService *services.ProjectService, interestService *services.InterestService, userService *services.UserProfileService) {
	projectController := controllers.NewProjectController(projectService, userService)
	interestController := controllers.NewInterestController(interestService, userService)

	projectRouter := r.PathPrefix("/api/projects").Subrouter()

	projectRouter.HandleFunc("", projectController.CreateProject).Methods("POST")
	projectRouter.HandleFunc("", projectController.BrowseProjects).Methods("GET")
	projectRouter.HandleFunc("/recommendations", projectController.RecommendProjects).Methods("GET")
	projectRouter.HandleFunc("/mine", projectController.MyProjects).Methods("GET")
	projectRouter.HandleFunc("/{projectId}", projectController.GetProject).Methods("GET")
	projectRouter.HandleFunc("/{projectId}", projectController.UpdateProject).Methods("PATCH")
	projectRouter.HandleFunc("/{projectId}", projectController.DeleteProject).Methods("DELETE")
	projectRouter.HandleFunc("/{projectId}/interested", interestController.InterestedUsers).Methods("GET")
}
