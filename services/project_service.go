package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"codecollab_server/apperrors"
	"codecollab_server/matching"
	"codecollab_server/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Defaults for browse pagination and dashboard recommendations
const (
	DefaultPageSize       = 12
	DefaultRecommendLimit = 5
	MinRecommendScore     = 40
)

// ProjectService owns project CRUD and the two ranked retrievals: browse
// with per-viewer match scores and dashboard recommendations. Cache is
// optional; when nil, recommendations are always computed fresh.
type ProjectService struct {
	Projects  ProjectRepository
	Interests InterestRepository
	Cache     *redis.Client
	CacheTTL  time.Duration
	Log       *zap.Logger
}

// BrowseFilters are the exact-match filters for project browsing
type BrowseFilters struct {
	TechStack       []string
	ExperienceLevel string
	Category        string
}

// BrowseResult is one page of projects plus pagination metadata
type BrowseResult struct {
	Projects   []models.ProjectMatch `json:"projects"`
	Pagination models.Pagination     `json:"pagination"`
}

// CreateProject validates and stores a new project for the owner
func (s *ProjectService) CreateProject(ctx context.Context, owner *models.UserProfile, project models.Project) (*models.Project, error) {
	if owner == nil {
		return nil, apperrors.Unauthorized("sign in to create a project")
	}
	if strings.TrimSpace(project.Title) == "" {
		return nil, apperrors.Validation("title cannot be empty")
	}
	if strings.TrimSpace(project.Description) == "" {
		return nil, apperrors.Validation("description cannot be empty")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	project.ProjectID = uuid.New().String()
	project.OwnerID = owner.UserID
	project.InterestCount = 0
	project.CreatedAt = now
	project.UpdatedAt = now
	if project.Category == "" {
		project.Category = models.CategoryWebApp
	}
	if project.ExperienceLevel == "" {
		project.ExperienceLevel = models.ExperienceBeginner
	}
	if project.Status == "" {
		project.Status = models.StatusLooking
	}

	if err := s.Projects.Put(ctx, project); err != nil {
		return nil, apperrors.Storage("failed to create project", err)
	}

	s.Log.Info("project created",
		zap.String("projectId", project.ProjectID),
		zap.String("ownerId", project.OwnerID))
	return &project, nil
}

// GetProject fetches a single project. No auth check: projects are public.
func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*models.Project, error) {
	project, err := s.Projects.Get(ctx, projectID)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch project", err)
	}
	if project == nil {
		return nil, apperrors.NotFound("project not found")
	}
	return project, nil
}

// UpdateProject applies owner-authorized changes to a project
func (s *ProjectService) UpdateProject(ctx context.Context, viewer *models.UserProfile, projectID string, update models.ProjectUpdate) (*models.Project, error) {
	if viewer == nil {
		return nil, apperrors.Unauthorized("sign in to update a project")
	}
	project, err := s.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != viewer.UserID {
		return nil, apperrors.Forbidden("only the project owner can update it")
	}

	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return nil, apperrors.Validation("title cannot be empty")
		}
		project.Title = *update.Title
	}
	if update.Description != nil {
		if strings.TrimSpace(*update.Description) == "" {
			return nil, apperrors.Validation("description cannot be empty")
		}
		project.Description = *update.Description
	}
	if update.ShortDescription != nil {
		project.ShortDescription = *update.ShortDescription
	}
	if update.TechStack != nil {
		project.TechStack = *update.TechStack
	}
	if update.Category != nil {
		project.Category = *update.Category
	}
	if update.ExperienceLevel != nil {
		project.ExperienceLevel = *update.ExperienceLevel
	}
	if update.TeamSize != nil {
		project.TeamSize = *update.TeamSize
	}
	if update.Duration != nil {
		project.Duration = *update.Duration
	}
	if update.Status != nil {
		project.Status = *update.Status
	}
	project.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.Projects.Put(ctx, *project); err != nil {
		return nil, apperrors.Storage("failed to update project", err)
	}
	return project, nil
}

// DeleteProject removes an owned project and cascades its interests
func (s *ProjectService) DeleteProject(ctx context.Context, viewer *models.UserProfile, projectID string) error {
	if viewer == nil {
		return apperrors.Unauthorized("sign in to delete a project")
	}
	project, err := s.GetProject(ctx, projectID)
	if err != nil {
		return err
	}
	if project.OwnerID != viewer.UserID {
		return apperrors.Forbidden("only the project owner can delete it")
	}

	if err := s.Projects.Delete(ctx, projectID); err != nil {
		return apperrors.Storage("failed to delete project", err)
	}
	if err := s.Interests.RemoveByProject(ctx, projectID); err != nil {
		return apperrors.Storage("failed to clean up interests", err)
	}

	s.Log.Info("project deleted", zap.String("projectId", projectID))
	return nil
}

// MyProjects lists the viewer's own projects, newest first
func (s *ProjectService) MyProjects(ctx context.Context, viewer *models.UserProfile) ([]models.Project, error) {
	if viewer == nil {
		return nil, apperrors.Unauthorized("sign in to list your projects")
	}
	projects, err := s.Projects.ByOwner(ctx, viewer.UserID)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch your projects", err)
	}
	return projects, nil
}

// BrowseProjects returns one page of projects matching the keyword and
// filters, ordered newest first at the storage level.
//
// When a viewer is present their own projects are dropped from the page, a
// match score is attached to the rest and the page is re-sorted by score.
// Scoring happens only within the fetched page: pagination stays anchored
// to recency, and only the in-page order is match-adjusted. Without a
// viewer the page comes back unscored in storage order.
func (s *ProjectService) BrowseProjects(ctx context.Context, keywords string, filters BrowseFilters, page, pageSize int, viewer *models.UserProfile) (*BrowseResult, error) {
	// Out-of-range paging inputs are normalized, not rejected.
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	query := ProjectQuery{
		Keywords:        keywords,
		TechStack:       filters.TechStack,
		ExperienceLevel: filters.ExperienceLevel,
		Category:        filters.Category,
	}

	totalCount, err := s.Projects.Count(ctx, query)
	if err != nil {
		return nil, apperrors.Storage("failed to count projects", err)
	}
	totalPages := (totalCount + pageSize - 1) / pageSize

	projects, err := s.Projects.Find(ctx, query, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch projects", err)
	}

	items := make([]models.ProjectMatch, 0, len(projects))
	for _, p := range projects {
		items = append(items, models.ProjectMatch{Project: p})
	}

	if viewer != nil {
		complete := matching.IsProfileComplete(viewer)
		scored := make([]models.ProjectMatch, 0, len(items))
		for _, item := range items {
			if item.OwnerID == viewer.UserID {
				continue
			}
			score := matching.Score(viewer.Skills, viewer.ExperienceLevel, complete, item.TechStack, item.ExperienceLevel)
			item.MatchScore = &score
			scored = append(scored, item)
		}
		// Stable keeps the recency order among equal scores.
		sort.SliceStable(scored, func(i, j int) bool {
			return *scored[i].MatchScore > *scored[j].MatchScore
		})
		items = scored
	}

	return &BrowseResult{
		Projects: items,
		Pagination: models.Pagination{
			Page:       page,
			PageSize:   pageSize,
			TotalCount: totalCount,
			TotalPages: totalPages,
			HasMore:    page < totalPages,
		},
	}, nil
}

// RecommendProjects returns the viewer's top project matches for the
// dashboard. Unlike BrowseProjects it scans the whole eligible pool (open
// projects not owned by the viewer), applies a hard floor of
// MinRecommendScore and truncates to limit. Ties are broken by creation
// time descending, then project id, so the order is deterministic.
func (s *ProjectService) RecommendProjects(ctx context.Context, viewer *models.UserProfile, limit int) ([]models.ProjectMatch, error) {
	if viewer == nil {
		return nil, apperrors.Unauthorized("sign in to see recommendations")
	}
	if limit < 1 {
		limit = DefaultRecommendLimit
	}

	cacheKey := fmt.Sprintf("recommend:%s:%d", viewer.UserID, limit)
	if cached := s.cachedRecommendations(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	query := ProjectQuery{
		Status:         models.StatusLooking,
		ExcludeOwnerID: viewer.UserID,
	}
	projects, err := s.Projects.Find(ctx, query, 0, 0)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch recommendations", err)
	}

	complete := matching.IsProfileComplete(viewer)
	matches := []models.ProjectMatch{}
	for _, p := range projects {
		score := matching.Score(viewer.Skills, viewer.ExperienceLevel, complete, p.TechStack, p.ExperienceLevel)
		if score < MinRecommendScore {
			continue
		}
		m := models.ProjectMatch{Project: p}
		m.MatchScore = &score
		matches = append(matches, m)
	}

	sort.Slice(matches, func(i, j int) bool {
		if *matches[i].MatchScore != *matches[j].MatchScore {
			return *matches[i].MatchScore > *matches[j].MatchScore
		}
		if matches[i].CreatedAt != matches[j].CreatedAt {
			return matches[i].CreatedAt > matches[j].CreatedAt
		}
		return matches[i].ProjectID > matches[j].ProjectID
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	s.storeRecommendations(ctx, cacheKey, matches)
	return matches, nil
}

// cachedRecommendations reads a cached result set. Cache failures degrade
// to a fresh computation and are only logged.
func (s *ProjectService) cachedRecommendations(ctx context.Context, key string) []models.ProjectMatch {
	if s.Cache == nil {
		return nil
	}
	payload, err := s.Cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.Log.Warn("recommendation cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
	var matches []models.ProjectMatch
	if err := json.Unmarshal(payload, &matches); err != nil {
		s.Log.Warn("recommendation cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil
	}
	return matches
}

func (s *ProjectService) storeRecommendations(ctx context.Context, key string, matches []models.ProjectMatch) {
	if s.Cache == nil {
		return
	}
	payload, err := json.Marshal(matches)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, payload, s.CacheTTL).Err(); err != nil {
		s.Log.Warn("recommendation cache write failed", zap.String("key", key), zap.Error(err))
	}
}
