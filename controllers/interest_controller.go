package controllers

import (
	"net/http"

	"codecollab_server/services"

	"github.com/gorilla/mux"
)

// InterestController handles interest toggling and the owner-facing ranked
// list of interested users
type InterestController struct {
	InterestService *services.InterestService
	UserService     *services.UserProfileService
}

// NewInterestController creates a new instance of InterestController
func NewInterestController(interestService *services.InterestService, userService *services.UserProfileService) *InterestController {
	return &InterestController{InterestService: interestService, UserService: userService}
}

// ToggleInterest handles POST /api/interests/{projectId}/toggle
func (c *InterestController) ToggleInterest(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	viewer := resolveViewer(r, c.UserService)
	interested, err := c.InterestService.ToggleInterest(r.Context(), viewer, projectID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"interested": interested})
}

// CheckInterest handles GET /api/interests/{projectId}/check
func (c *InterestController) CheckInterest(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	viewer := resolveViewer(r, c.UserService)
	interested, err := c.InterestService.CheckInterest(r.Context(), viewer, projectID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"interested": interested})
}

// MyInterests handles GET /api/interests/mine
func (c *InterestController) MyInterests(w http.ResponseWriter, r *http.Request) {
	viewer := resolveViewer(r, c.UserService)
	projects, err := c.InterestService.MyInterests(r.Context(), viewer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"projects": projects})
}

// InterestedUsers handles GET /api/projects/{projectId}/interested. Owner
// only; the ranking explains itself through matchingSkills.
func (c *InterestController) InterestedUsers(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	viewer := resolveViewer(r, c.UserService)
	users, err := c.InterestService.RankInterestedUsers(r.Context(), viewer, projectID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}
