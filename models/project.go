package models

// Project defines the structure for side-project postings
type Project struct {
	ProjectID        string   `dynamodbav:"projectId" json:"projectId"`
	Title            string   `dynamodbav:"title" json:"title"`
	Description      string   `dynamodbav:"description" json:"description"`
	ShortDescription string   `dynamodbav:"shortDescription,omitempty" json:"shortDescription,omitempty"`
	OwnerID          string   `dynamodbav:"ownerId" json:"ownerId"`
	TechStack        []string `dynamodbav:"techStack,omitempty" json:"techStack,omitempty"`
	Category         string   `dynamodbav:"category" json:"category"`
	ExperienceLevel  string   `dynamodbav:"experienceLevel" json:"experienceLevel"`
	TeamSize         string   `dynamodbav:"teamSize,omitempty" json:"teamSize,omitempty"`
	Duration         string   `dynamodbav:"duration,omitempty" json:"duration,omitempty"`
	Status           string   `dynamodbav:"status" json:"status"`
	InterestCount    int      `dynamodbav:"interestCount" json:"interestCount"`
	CreatedAt        string   `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt        string   `dynamodbav:"updatedAt" json:"updatedAt"`
}

// ProjectUpdate carries the owner-editable fields of a project. Nil fields
// are left untouched.
type ProjectUpdate struct {
	Title            *string   `json:"title,omitempty"`
	Description      *string   `json:"description,omitempty"`
	ShortDescription *string   `json:"shortDescription,omitempty"`
	TechStack        *[]string `json:"techStack,omitempty"`
	Category         *string   `json:"category,omitempty"`
	ExperienceLevel  *string   `json:"experienceLevel,omitempty"`
	TeamSize         *string   `json:"teamSize,omitempty"`
	Duration         *string   `json:"duration,omitempty"`
	Status           *string   `json:"status,omitempty"`
}

// ProjectsTable is the DynamoDB table name for projects
const ProjectsTable = "Projects"
