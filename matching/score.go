// Package matching computes compatibility scores between developer profiles
// and project requirements. Everything here is pure: no I/O, no state, safe
// for concurrent use.
package matching

import (
	"math"

	"codecollab_server/models"
)

// Score weights. Skill coverage dominates; experience proximity and profile
// completeness split the remainder evenly.
const (
	skillWeight        = 0.6
	experienceWeight   = 0.2
	completenessWeight = 0.2
)

var experienceOrder = []string{
	models.ExperienceBeginner,
	models.ExperienceIntermediate,
	models.ExperienceAdvanced,
}

// ExperienceIndex maps an experience level to its ordinal position.
// Unknown or empty values fall back to Beginner (index 0) so that Score
// stays total over arbitrary string input.
func ExperienceIndex(level string) int {
	for i, l := range experienceOrder {
		if l == level {
			return i
		}
	}
	return 0
}

// Score calculates how well a viewer matches a target's requirements as an
// integer percentage in [0, 100].
//
// Skill coverage (60%) measures the fraction of the target's tech stack the
// viewer already covers; it is deliberately asymmetric (extra viewer skills
// do not help). Experience proximity (20%) rewards being at or near the
// target's level. Completeness (20%) rewards a filled-out profile.
func Score(viewerSkills []string, viewerExperience string, viewerComplete bool, targetTechStack []string, targetExperience string) int {
	skillSet := make(map[string]struct{}, len(viewerSkills))
	for _, s := range viewerSkills {
		skillSet[s] = struct{}{}
	}
	matched := 0
	for _, s := range targetTechStack {
		if _, ok := skillSet[s]; ok {
			matched++
		}
	}

	// An empty tech stack contributes nothing, not everything.
	skillPct := 0.0
	if len(targetTechStack) > 0 {
		skillPct = float64(matched) / float64(len(targetTechStack)) * 100
	}

	delta := ExperienceIndex(viewerExperience) - ExperienceIndex(targetExperience)
	if delta < 0 {
		delta = -delta
	}
	expPct := 25.0
	switch delta {
	case 0:
		expPct = 100
	case 1:
		expPct = 50
	}

	complPct := 50.0
	if viewerComplete {
		complPct = 100
	}

	final := skillPct*skillWeight + expPct*experienceWeight + complPct*completenessWeight
	return int(math.Round(final))
}

// MatchingSkills returns the target tech-stack entries the viewer covers,
// in the target's order. The result is display-only; Score does its own
// intersection.
func MatchingSkills(targetTechStack, viewerSkills []string) []string {
	skillSet := make(map[string]struct{}, len(viewerSkills))
	for _, s := range viewerSkills {
		skillSet[s] = struct{}{}
	}
	matched := []string{}
	for _, s := range targetTechStack {
		if _, ok := skillSet[s]; ok {
			matched = append(matched, s)
		}
	}
	return matched
}

// IsProfileComplete reports whether at least 3 of {bio, skills,
// experienceLevel, location} are filled in.
func IsProfileComplete(u *models.UserProfile) bool {
	filled := 0
	if u.Bio != "" {
		filled++
	}
	if len(u.Skills) > 0 {
		filled++
	}
	if u.ExperienceLevel != "" {
		filled++
	}
	if u.Location != "" {
		filled++
	}
	return filled >= 3
}
