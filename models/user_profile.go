package models

// UserProfile defines the structure for developer profiles
type UserProfile struct {
	UserID          string   `dynamodbav:"userId" json:"userId"`
	Name            string   `dynamodbav:"name" json:"name"`
	EmailID         string   `dynamodbav:"emailId" json:"emailId"`
	Image           string   `dynamodbav:"image,omitempty" json:"image,omitempty"`
	Bio             string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Location        string   `dynamodbav:"location,omitempty" json:"location,omitempty"`
	Skills          []string `dynamodbav:"skills,omitempty" json:"skills,omitempty"`
	ExperienceLevel string   `dynamodbav:"experienceLevel,omitempty" json:"experienceLevel,omitempty"`
	GithubURL       string   `dynamodbav:"githubUrl,omitempty" json:"githubUrl,omitempty"`
	LinkedinURL     string   `dynamodbav:"linkedinUrl,omitempty" json:"linkedinUrl,omitempty"`
	CreatedAt       string   `dynamodbav:"createdAt" json:"createdAt"`
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"

// EmailIndex is the GSI used to resolve a profile from an email address
const EmailIndex = "emailId-index"
