package services

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"codecollab_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoProjectRepository implements ProjectRepository over a full-table
// scan with Go-side filtering. The candidate pool is small enough that a
// scan per request is acceptable; revisit with a GSI if it stops being so.
type DynamoProjectRepository struct {
	Dynamo *DynamoService
}

func (r *DynamoProjectRepository) Put(ctx context.Context, project models.Project) error {
	return r.Dynamo.PutItem(ctx, models.ProjectsTable, project)
}

func (r *DynamoProjectRepository) Get(ctx context.Context, projectID string) (*models.Project, error) {
	key := map[string]types.AttributeValue{
		"projectId": &types.AttributeValueMemberS{Value: projectID},
	}
	item, err := r.Dynamo.GetItem(ctx, models.ProjectsTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	var project models.Project
	if err := attributevalue.UnmarshalMap(item, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *DynamoProjectRepository) Delete(ctx context.Context, projectID string) error {
	key := map[string]types.AttributeValue{
		"projectId": &types.AttributeValueMemberS{Value: projectID},
	}
	return r.Dynamo.DeleteItem(ctx, models.ProjectsTable, key)
}

func (r *DynamoProjectRepository) Find(ctx context.Context, query ProjectQuery, skip, limit int) ([]models.Project, error) {
	projects, err := r.scanFiltered(ctx, query)
	if err != nil {
		return nil, err
	}
	if skip >= len(projects) {
		return []models.Project{}, nil
	}
	projects = projects[skip:]
	if limit > 0 && limit < len(projects) {
		projects = projects[:limit]
	}
	return projects, nil
}

func (r *DynamoProjectRepository) Count(ctx context.Context, query ProjectQuery) (int, error) {
	projects, err := r.scanFiltered(ctx, query)
	if err != nil {
		return 0, err
	}
	return len(projects), nil
}

func (r *DynamoProjectRepository) ByOwner(ctx context.Context, ownerID string) ([]models.Project, error) {
	projects, err := r.scanFiltered(ctx, ProjectQuery{})
	if err != nil {
		return nil, err
	}
	owned := []models.Project{}
	for _, p := range projects {
		if p.OwnerID == ownerID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

func (r *DynamoProjectRepository) AdjustInterestCount(ctx context.Context, projectID string, delta int) error {
	key := map[string]types.AttributeValue{
		"projectId": &types.AttributeValueMemberS{Value: projectID},
	}
	_, err := r.Dynamo.UpdateItem(ctx, models.ProjectsTable,
		"ADD interestCount :delta",
		key,
		map[string]types.AttributeValue{
			":delta": &types.AttributeValueMemberN{Value: strconv.Itoa(delta)},
		},
		nil,
	)
	return err
}

// scanFiltered returns the matching projects, newest first.
func (r *DynamoProjectRepository) scanFiltered(ctx context.Context, query ProjectQuery) ([]models.Project, error) {
	var all []models.Project
	if err := r.Dynamo.ScanWithFilter(ctx, models.ProjectsTable, nil, &all); err != nil {
		return nil, err
	}

	matched := []models.Project{}
	for _, p := range all {
		if matchesQuery(p, query) {
			matched = append(matched, p)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt != matched[j].CreatedAt {
			return matched[i].CreatedAt > matched[j].CreatedAt
		}
		return matched[i].ProjectID > matched[j].ProjectID
	})
	return matched, nil
}

func matchesQuery(p models.Project, q ProjectQuery) bool {
	if q.ExcludeOwnerID != "" && p.OwnerID == q.ExcludeOwnerID {
		return false
	}
	if q.Status != "" && p.Status != q.Status {
		return false
	}
	if q.ExperienceLevel != "" && p.ExperienceLevel != q.ExperienceLevel {
		return false
	}
	if q.Category != "" && p.Category != q.Category {
		return false
	}
	if len(q.TechStack) > 0 && !stacksIntersect(p.TechStack, q.TechStack) {
		return false
	}
	if q.Keywords != "" && !matchesKeywords(p, q.Keywords) {
		return false
	}
	return true
}

// matchesKeywords is a case-insensitive substring match across title,
// descriptions and tech stack, OR-ed across fields.
func matchesKeywords(p models.Project, keywords string) bool {
	needle := strings.ToLower(strings.TrimSpace(keywords))
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.ShortDescription), needle) {
		return true
	}
	for _, tech := range p.TechStack {
		if strings.Contains(strings.ToLower(tech), needle) {
			return true
		}
	}
	return false
}

func stacksIntersect(a, b []string) bool {
	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}
	for _, s := range b {
		if _, ok := set[s]; ok {
			return true
		}
	}
	return false
}
