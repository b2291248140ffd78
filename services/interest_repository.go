package services

import (
	"context"
	"sort"

	"codecollab_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoInterestRepository implements InterestRepository over the Interests
// table. The composite key (userId, projectId) gives the uniqueness
// guarantee; conditional writes make toggling race-safe.
type DynamoInterestRepository struct {
	Dynamo *DynamoService
}

func interestKey(userID, projectID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"userId":    &types.AttributeValueMemberS{Value: userID},
		"projectId": &types.AttributeValueMemberS{Value: projectID},
	}
}

// Create inserts the interest unless the pair already exists. A concurrent
// duplicate insert loses the conditional write and reports (false, nil).
func (r *DynamoInterestRepository) Create(ctx context.Context, interest models.Interest) (bool, error) {
	err := r.Dynamo.PutItemWithCondition(ctx, models.InterestsTable, interest, "attribute_not_exists(userId)")
	if err != nil {
		if IsConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Remove deletes the interest if present, reporting whether it existed
func (r *DynamoInterestRepository) Remove(ctx context.Context, userID, projectID string) (bool, error) {
	err := r.Dynamo.DeleteItemWithCondition(ctx, models.InterestsTable, interestKey(userID, projectID), "attribute_exists(userId)")
	if err != nil {
		if IsConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *DynamoInterestRepository) Exists(ctx context.Context, userID, projectID string) (bool, error) {
	item, err := r.Dynamo.GetItem(ctx, models.InterestsTable, interestKey(userID, projectID))
	if err != nil {
		return false, err
	}
	return item != nil, nil
}

func (r *DynamoInterestRepository) ByProject(ctx context.Context, projectID string) ([]models.Interest, error) {
	items, err := r.Dynamo.QueryItemsWithIndex(ctx, models.InterestsTable, models.ProjectIndex,
		"projectId = :projectId",
		map[string]types.AttributeValue{
			":projectId": &types.AttributeValueMemberS{Value: projectID},
		},
		0,
	)
	if err != nil {
		return nil, err
	}
	return unmarshalInterests(items)
}

func (r *DynamoInterestRepository) ByUser(ctx context.Context, userID string) ([]models.Interest, error) {
	items, err := r.Dynamo.QueryItems(ctx, models.InterestsTable,
		"userId = :userId",
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
		0,
	)
	if err != nil {
		return nil, err
	}
	return unmarshalInterests(items)
}

// RemoveByProject deletes every interest for a project; used when the
// project itself is deleted.
func (r *DynamoInterestRepository) RemoveByProject(ctx context.Context, projectID string) error {
	interests, err := r.ByProject(ctx, projectID)
	if err != nil {
		return err
	}
	if len(interests) == 0 {
		return nil
	}

	requests := make([]types.WriteRequest, 0, len(interests))
	for _, i := range interests {
		requests = append(requests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{Key: interestKey(i.UserID, i.ProjectID)},
		})
	}
	return r.Dynamo.BatchWriteItems(ctx, models.InterestsTable, requests)
}

func unmarshalInterests(items []map[string]types.AttributeValue) ([]models.Interest, error) {
	var interests []models.Interest
	if err := attributevalue.UnmarshalListOfMaps(items, &interests); err != nil {
		return nil, err
	}
	sort.Slice(interests, func(i, j int) bool {
		return interests[i].CreatedAt > interests[j].CreatedAt
	})
	return interests, nil
}
