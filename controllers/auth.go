package controllers

import (
	"net/http"

	"codecollab_server/models"
	"codecollab_server/services"
)

// viewerHeader carries the authenticated identity resolved by the gateway
// in front of this service. Session handling itself lives there, not here.
const viewerHeader = "X-User-Email"

// resolveViewer maps the request to a user profile, or nil for anonymous
// requests. Absence of a viewer is not an error; handlers that require one
// pass the nil through and let the service reject it.
func resolveViewer(r *http.Request, users *services.UserProfileService) *models.UserProfile {
	email := r.Header.Get(viewerHeader)
	if email == "" {
		return nil
	}
	profile, err := users.GetUserProfileByEmail(r.Context(), email)
	if err != nil {
		return nil
	}
	return profile
}
