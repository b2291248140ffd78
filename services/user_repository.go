package services

import (
	"context"

	"codecollab_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoUserRepository implements UserRepository over the UserProfiles table
type DynamoUserRepository struct {
	Dynamo *DynamoService
}

func (r *DynamoUserRepository) Put(ctx context.Context, profile models.UserProfile) error {
	return r.Dynamo.PutItem(ctx, models.UserProfilesTable, profile)
}

func (r *DynamoUserRepository) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	item, err := r.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByEmail resolves a profile through the email GSI. Missing profiles
// return (nil, nil).
func (r *DynamoUserRepository) GetByEmail(ctx context.Context, emailID string) (*models.UserProfile, error) {
	items, err := r.Dynamo.QueryItemsWithIndex(ctx, models.UserProfilesTable, models.EmailIndex,
		"emailId = :emailId",
		map[string]types.AttributeValue{
			":emailId": &types.AttributeValueMemberS{Value: emailID},
		},
		1,
	)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(items[0], &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *DynamoUserRepository) Delete(ctx context.Context, userID string) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	return r.Dynamo.DeleteItem(ctx, models.UserProfilesTable, key)
}
