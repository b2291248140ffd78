package models

// Experience levels, ordered from least to most experienced
const (
	ExperienceBeginner     = "Beginner"
	ExperienceIntermediate = "Intermediate"
	ExperienceAdvanced     = "Advanced"
)

// Project statuses
const (
	StatusLooking    = "Looking for collaborators"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Project categories
const (
	CategoryWebApp   = "Web App"
	CategoryMobile   = "Mobile App"
	CategoryAIML     = "AI/ML"
	CategoryGame     = "Game"
	CategoryDevTools = "DevTools"
	CategoryOther    = "Other"
)

// Notification types
const (
	NotificationTypeInterest = "interest"
	NotificationTypeMessage  = "message"
)
