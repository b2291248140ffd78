package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"codecollab_server/models"
)

// In-memory repository fakes. They honor the same contracts as the Dynamo
// implementations, including the conditional create/remove semantics the
// interest toggle relies on.

var errStorageDown = errors.New("storage offline")

type fakeProjectRepo struct {
	mu        sync.Mutex
	projects  map[string]models.Project
	failing   bool
	findCalls int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[string]models.Project{}}
}

func (r *fakeProjectRepo) Put(ctx context.Context, project models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return errStorageDown
	}
	r.projects[project.ProjectID] = project
	return nil
}

func (r *fakeProjectRepo) Get(ctx context.Context, projectID string) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return nil, errStorageDown
	}
	p, ok := r.projects[projectID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, projectID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return errStorageDown
	}
	delete(r.projects, projectID)
	return nil
}

func (r *fakeProjectRepo) Find(ctx context.Context, query ProjectQuery, skip, limit int) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return nil, errStorageDown
	}
	r.findCalls++
	matched := r.matching(query)
	if skip >= len(matched) {
		return []models.Project{}, nil
	}
	matched = matched[skip:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *fakeProjectRepo) Count(ctx context.Context, query ProjectQuery) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return 0, errStorageDown
	}
	return len(r.matching(query)), nil
}

func (r *fakeProjectRepo) ByOwner(ctx context.Context, ownerID string) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return nil, errStorageDown
	}
	owned := []models.Project{}
	for _, p := range r.matching(ProjectQuery{}) {
		if p.OwnerID == ownerID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

func (r *fakeProjectRepo) AdjustInterestCount(ctx context.Context, projectID string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return errStorageDown
	}
	p, ok := r.projects[projectID]
	if !ok {
		return errors.New("project missing")
	}
	p.InterestCount += delta
	r.projects[projectID] = p
	return nil
}

// matching mirrors the Dynamo repository: filter, then newest first.
func (r *fakeProjectRepo) matching(query ProjectQuery) []models.Project {
	matched := []models.Project{}
	for _, p := range r.projects {
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
	return matched
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]models.UserProfile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]models.UserProfile{}}
}

func (r *fakeUserRepo) Put(ctx context.Context, profile models.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[profile.UserID] = profile
	return nil
}

func (r *fakeUserRepo) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, emailID string) (*models.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.EmailID == emailID {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, userID)
	return nil
}

type fakeInterestRepo struct {
	mu        sync.Mutex
	interests map[string]models.Interest
	// staleExists makes Exists report false regardless of state, simulating
	// two requests that both read before either writes.
	staleExists bool
}

func newFakeInterestRepo() *fakeInterestRepo {
	return &fakeInterestRepo{interests: map[string]models.Interest{}}
}

func interestID(userID, projectID string) string {
	return userID + "|" + projectID
}

func (r *fakeInterestRepo) Create(ctx context.Context, interest models.Interest) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := interestID(interest.UserID, interest.ProjectID)
	if _, exists := r.interests[id]; exists {
		return false, nil
	}
	r.interests[id] = interest
	return true, nil
}

func (r *fakeInterestRepo) Remove(ctx context.Context, userID, projectID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := interestID(userID, projectID)
	if _, exists := r.interests[id]; !exists {
		return false, nil
	}
	delete(r.interests, id)
	return true, nil
}

func (r *fakeInterestRepo) Exists(ctx context.Context, userID, projectID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.staleExists {
		return false, nil
	}
	_, exists := r.interests[interestID(userID, projectID)]
	return exists, nil
}

func (r *fakeInterestRepo) ByProject(ctx context.Context, projectID string) ([]models.Interest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Interest{}
	for _, i := range r.interests {
		if i.ProjectID == projectID {
			out = append(out, i)
		}
	}
	sortInterests(out)
	return out, nil
}

func (r *fakeInterestRepo) ByUser(ctx context.Context, userID string) ([]models.Interest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Interest{}
	for _, i := range r.interests {
		if i.UserID == userID {
			out = append(out, i)
		}
	}
	sortInterests(out)
	return out, nil
}

func (r *fakeInterestRepo) RemoveByProject(ctx context.Context, projectID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, i := range r.interests {
		if i.ProjectID == projectID {
			delete(r.interests, id)
		}
	}
	return nil
}

func sortInterests(interests []models.Interest) {
	sort.Slice(interests, func(i, j int) bool {
		return interests[i].CreatedAt > interests[j].CreatedAt
	})
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications map[string]models.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: map[string]models.Notification{}}
}

func (r *fakeNotificationRepo) Put(ctx context.Context, notification models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications[notification.NotificationID] = notification
	return nil
}

func (r *fakeNotificationRepo) Get(ctx context.Context, notificationID string) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notifications[notificationID]
	if !ok {
		return nil, nil
	}
	return &n, nil
}

func (r *fakeNotificationRepo) ByRecipient(ctx context.Context, recipientID string, limit int) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Notification{}
	for _, n := range r.notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeNotificationRepo) CountUnread(ctx context.Context, recipientID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, n := range r.notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, notificationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notifications[notificationID]
	if !ok {
		return errors.New("notification missing")
	}
	n.IsRead = true
	r.notifications[notificationID] = n
	return nil
}

func (r *fakeNotificationRepo) Delete(ctx context.Context, notificationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.notifications, notificationID)
	return nil
}

func (r *fakeNotificationRepo) Clear(ctx context.Context, recipientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, n := range r.notifications {
		if n.RecipientID == recipientID {
			delete(r.notifications, id)
		}
	}
	return nil
}
