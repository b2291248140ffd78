package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"codecollab_server/apperrors"
	"codecollab_server/matching"
	"codecollab_server/models"

	"go.uber.org/zap"
)

// InterestService owns the interest toggle and the owner-facing ranked list
// of interested users.
type InterestService struct {
	Interests     InterestRepository
	Projects      ProjectRepository
	Users         UserRepository
	Notifications *NotificationService
	Log           *zap.Logger
}

// ToggleInterest flips the viewer's interest in a project and returns the
// new state. The storage-level uniqueness of the (user, project) pair is
// the only concurrency control: losing the conditional create to a
// concurrent duplicate resolves to "already interested" and the cached
// interestCount moves only when a row actually changed.
func (s *InterestService) ToggleInterest(ctx context.Context, viewer *models.UserProfile, projectID string) (bool, error) {
	if viewer == nil {
		return false, apperrors.Unauthorized("sign in to show interest")
	}

	project, err := s.Projects.Get(ctx, projectID)
	if err != nil {
		return false, apperrors.Storage("failed to fetch project", err)
	}
	if project == nil {
		return false, apperrors.NotFound("project not found")
	}
	if project.OwnerID == viewer.UserID {
		return false, apperrors.Validation("cannot show interest in your own project")
	}

	exists, err := s.Interests.Exists(ctx, viewer.UserID, projectID)
	if err != nil {
		return false, apperrors.Storage("failed to check interest", err)
	}

	if exists {
		removed, err := s.Interests.Remove(ctx, viewer.UserID, projectID)
		if err != nil {
			return false, apperrors.Storage("failed to withdraw interest", err)
		}
		if removed {
			if err := s.Projects.AdjustInterestCount(ctx, projectID, -1); err != nil {
				s.Log.Error("failed to decrement interest count",
					zap.String("projectId", projectID), zap.Error(err))
			}
		}
		return false, nil
	}

	created, err := s.Interests.Create(ctx, models.Interest{
		UserID:    viewer.UserID,
		ProjectID: projectID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return false, apperrors.Storage("failed to save interest", err)
	}
	if !created {
		// Lost the race to a concurrent duplicate click; the other call
		// already incremented the counter.
		return true, nil
	}

	if err := s.Projects.AdjustInterestCount(ctx, projectID, 1); err != nil {
		s.Log.Error("failed to increment interest count",
			zap.String("projectId", projectID), zap.Error(err))
	}

	s.Notifications.NotifyInterest(ctx, project, viewer)
	return true, nil
}

// CheckInterest reports whether the viewer has shown interest in a project.
// An anonymous viewer is simply not interested, never an error.
func (s *InterestService) CheckInterest(ctx context.Context, viewer *models.UserProfile, projectID string) (bool, error) {
	if viewer == nil {
		return false, nil
	}
	exists, err := s.Interests.Exists(ctx, viewer.UserID, projectID)
	if err != nil {
		return false, apperrors.Storage("failed to check interest", err)
	}
	return exists, nil
}

// MyInterests lists the projects the viewer has shown interest in, newest
// interest first. Projects deleted since the interest was recorded are
// skipped.
func (s *InterestService) MyInterests(ctx context.Context, viewer *models.UserProfile) ([]models.Project, error) {
	if viewer == nil {
		return nil, apperrors.Unauthorized("sign in to list your interests")
	}
	interests, err := s.Interests.ByUser(ctx, viewer.UserID)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch interests", err)
	}

	projects := []models.Project{}
	for _, i := range interests {
		project, err := s.Projects.Get(ctx, i.ProjectID)
		if err != nil {
			return nil, apperrors.Storage("failed to fetch interest project", err)
		}
		if project == nil {
			continue
		}
		projects = append(projects, *project)
	}
	return projects, nil
}

// RankInterestedUsers returns the users interested in a project, ranked by
// how well each matches the project's requirements. Only the owner may
// call it; everyone else gets Forbidden and no data.
//
// The scoring direction is reversed relative to browsing: each interested
// user plays the viewer role and the fixed project is the target. The
// score drives the sort; the matchingSkills intersection rides along for
// display only.
func (s *InterestService) RankInterestedUsers(ctx context.Context, viewer *models.UserProfile, projectID string) ([]models.InterestedUser, error) {
	if viewer == nil {
		return nil, apperrors.Unauthorized("sign in to view interested users")
	}
	project, err := s.Projects.Get(ctx, projectID)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch project", err)
	}
	if project == nil {
		return nil, apperrors.NotFound("project not found")
	}
	if project.OwnerID != viewer.UserID {
		return nil, apperrors.Forbidden("only the project owner can view interested users")
	}

	interests, err := s.Interests.ByProject(ctx, projectID)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch interests", err)
	}

	ranked := []models.InterestedUser{}
	for _, interest := range interests {
		user, err := s.Users.Get(ctx, interest.UserID)
		if err != nil {
			return nil, apperrors.Storage("failed to fetch interested user", err)
		}
		if user == nil {
			continue
		}

		score := matching.Score(user.Skills, user.ExperienceLevel, matching.IsProfileComplete(user), project.TechStack, project.ExperienceLevel)
		ranked = append(ranked, models.InterestedUser{
			UserID:          user.UserID,
			Name:            user.Name,
			EmailID:         user.EmailID,
			Image:           user.Image,
			Bio:             user.Bio,
			Location:        user.Location,
			Skills:          user.Skills,
			ExperienceLevel: user.ExperienceLevel,
			MatchScore:      score,
			MatchingSkills:  matching.MatchingSkills(project.TechStack, user.Skills),
			InterestedAt:    interest.CreatedAt,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].MatchScore != ranked[j].MatchScore {
			return ranked[i].MatchScore > ranked[j].MatchScore
		}
		return ranked[i].InterestedAt > ranked[j].InterestedAt
	})

	s.Log.Debug("ranked interested users",
		zap.String("projectId", projectID),
		zap.Int("count", len(ranked)))
	return ranked, nil
}

// interestMessage builds the owner-facing notification text
func interestMessage(sender *models.UserProfile, project *models.Project) string {
	return fmt.Sprintf("%s is interested in your project \"%s\"", sender.Name, project.Title)
}
