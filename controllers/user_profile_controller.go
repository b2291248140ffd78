package controllers

import (
	"encoding/json"
	"net/http"

	"codecollab_server/apperrors"
	"codecollab_server/models"
	"codecollab_server/services"

	"github.com/gorilla/mux"
)

// UserProfileController handles requests related to user profiles
type UserProfileController struct {
	UserProfileService *services.UserProfileService
}

// NewUserProfileController creates a new instance of UserProfileController
func NewUserProfileController(userProfileService *services.UserProfileService) *UserProfileController {
	return &UserProfileController{UserProfileService: userProfileService}
}

// CreateUserProfile handles POST /api/profiles
func (c *UserProfileController) CreateUserProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, apperrors.Validation("invalid request payload"))
		return
	}

	created, err := c.UserProfileService.CreateUserProfile(r.Context(), profile)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetUserProfileByID handles GET /api/profiles/{userId}
func (c *UserProfileController) GetUserProfileByID(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := c.UserProfileService.GetUserProfile(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// GetUserProfileByEmail handles GET /api/profiles/email/{emailId}
func (c *UserProfileController) GetUserProfileByEmail(w http.ResponseWriter, r *http.Request) {
	emailID := mux.Vars(r)["emailId"]

	profile, err := c.UserProfileService.GetUserProfileByEmail(r.Context(), emailID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// UpdateUserProfile handles PUT /api/profiles/me
func (c *UserProfileController) UpdateUserProfile(w http.ResponseWriter, r *http.Request) {
	var updated models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		writeError(w, apperrors.Validation("invalid request payload"))
		return
	}

	viewer := resolveViewer(r, c.UserProfileService)
	profile, err := c.UserProfileService.UpdateUserProfile(r.Context(), viewer, updated)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// DeleteUserProfile handles DELETE /api/profiles/me
func (c *UserProfileController) DeleteUserProfile(w http.ResponseWriter, r *http.Request) {
	viewer := resolveViewer(r, c.UserProfileService)
	if err := c.UserProfileService.DeleteUserProfile(r.Context(), viewer); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "profile deleted"})
}

// ProfileCompletion handles GET /api/profiles/me/completion
func (c *UserProfileController) ProfileCompletion(w http.ResponseWriter, r *http.Request) {
	viewer := resolveViewer(r, c.UserProfileService)
	completion, err := c.UserProfileService.Completion(viewer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, completion)
}
