package models

// ProjectMatch is a project enriched with a per-viewer match score. The
// score is computed per request and never persisted; it is nil when the
// request carries no viewer identity.
type ProjectMatch struct {
	Project
	MatchScore *int `json:"matchScore,omitempty"`
}

// InterestedUser is the owner-facing view of a user who showed interest in
// a project: a profile subset plus the score and the skill overlap that
// produced it.
type InterestedUser struct {
	UserID          string   `json:"userId"`
	Name            string   `json:"name"`
	EmailID         string   `json:"emailId"`
	Image           string   `json:"image,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	Location        string   `json:"location,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	ExperienceLevel string   `json:"experienceLevel,omitempty"`
	MatchScore      int      `json:"matchScore"`
	MatchingSkills  []string `json:"matchingSkills"`
	InterestedAt    string   `json:"interestedAt"`
}

// Pagination describes the page window of a browse result
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	TotalCount int  `json:"totalCount"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}
