package models

// Interest records that a user wants to join a project. At most one record
// exists per (userId, projectId) pair; the table's composite key enforces it.
type Interest struct {
	UserID    string `dynamodbav:"userId" json:"userId"`       // Partition Key
	ProjectID string `dynamodbav:"projectId" json:"projectId"` // Sort Key
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// InterestsTable is the DynamoDB table name for interests
const InterestsTable = "Interests"

// ProjectIndex is the GSI used to list interests for a project
const ProjectIndex = "projectId-index"
