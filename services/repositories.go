package services

import (
	"context"

	"codecollab_server/models"
)

// ProjectQuery is the storage filter for project retrieval. Zero-valued
// fields are ignored.
type ProjectQuery struct {
	Keywords        string   // case-insensitive substring over title, descriptions and tech stack
	TechStack       []string // match projects whose stack intersects this set
	ExperienceLevel string
	Category        string
	Status          string
	ExcludeOwnerID  string
}

// ProjectRepository is the storage interface for projects. Find returns
// items ordered by creation time descending; limit <= 0 means no limit.
type ProjectRepository interface {
	Put(ctx context.Context, project models.Project) error
	Get(ctx context.Context, projectID string) (*models.Project, error)
	Delete(ctx context.Context, projectID string) error
	Find(ctx context.Context, query ProjectQuery, skip, limit int) ([]models.Project, error)
	Count(ctx context.Context, query ProjectQuery) (int, error)
	ByOwner(ctx context.Context, ownerID string) ([]models.Project, error)
	// AdjustInterestCount atomically adds delta to the cached counter. The
	// counter is never recomputed from interest rows.
	AdjustInterestCount(ctx context.Context, projectID string, delta int) error
}

// UserRepository is the storage interface for user profiles
type UserRepository interface {
	Put(ctx context.Context, profile models.UserProfile) error
	Get(ctx context.Context, userID string) (*models.UserProfile, error)
	GetByEmail(ctx context.Context, emailID string) (*models.UserProfile, error)
	Delete(ctx context.Context, userID string) error
}

// InterestRepository is the storage interface for interests. Create and
// Remove are conditional writes: the storage-level uniqueness of the
// (userId, projectId) pair is the only concurrency control, so a lost race
// comes back as (false, nil) rather than an error.
type InterestRepository interface {
	Create(ctx context.Context, interest models.Interest) (bool, error)
	Remove(ctx context.Context, userID, projectID string) (bool, error)
	Exists(ctx context.Context, userID, projectID string) (bool, error)
	ByProject(ctx context.Context, projectID string) ([]models.Interest, error)
	ByUser(ctx context.Context, userID string) ([]models.Interest, error)
	RemoveByProject(ctx context.Context, projectID string) error
}

// NotificationRepository is the storage interface for notifications
type NotificationRepository interface {
	Put(ctx context.Context, notification models.Notification) error
	Get(ctx context.Context, notificationID string) (*models.Notification, error)
	ByRecipient(ctx context.Context, recipientID string, limit int) ([]models.Notification, error)
	CountUnread(ctx context.Context, recipientID string) (int, error)
	MarkRead(ctx context.Context, notificationID string) error
	Delete(ctx context.Context, notificationID string) error
	Clear(ctx context.Context, recipientID string) error
}
