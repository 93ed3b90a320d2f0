package services

import (
	"context"
	"fmt"
	"log"

	"knock_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type ProfileService struct {
	Dynamo *DynamoService
}

// AddProfile validates and stores a new profile
func (ps *ProfileService) AddProfile(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := ps.Dynamo.PutItem(ctx, models.ProfilesTable, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetProfile retrieves a profile by user ID
func (ps *ProfileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ps.Dynamo.GetItem(ctx, models.ProfilesTable, key)
	if err != nil {
		return nil, err
	}

	var profile models.Profile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// GetCandidateProfiles scans for every profile except the given user's
func (ps *ProfileService) GetCandidateProfiles(ctx context.Context, userID string) ([]*models.Profile, error) {
	var candidates []*models.Profile
	err := ps.Dynamo.ScanWithFilter(ctx, models.ProfilesTable, nil, map[string]string{"userId": userID}, &candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate profiles: %w", err)
	}
	log.Printf("Fetched %d candidate profiles for user %s", len(candidates), userID)
	return candidates, nil
}

// UpdateProfile applies string-field updates to an existing profile
func (ps *ProfileService) UpdateProfile(ctx context.Context, userID string, updates map[string]string) (*models.Profile, error) {
	if len(updates) == 0 {
		return nil, &models.ValidationError{Field: "updates", Reason: "empty"}
	}

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	updateExpression := "SET"
	expressionAttributeValues := make(map[string]types.AttributeValue)
	expressionAttributeNames := make(map[string]string)
	for k, v := range updates {
		updateExpression += " #" + k + " = :" + k + ","
		expressionAttributeValues[":"+k] = &types.AttributeValueMemberS{Value: v}
		expressionAttributeNames["#"+k] = k
	}
	updateExpression = updateExpression[:len(updateExpression)-1]

	updatedItem, err := ps.Dynamo.UpdateItem(ctx, models.ProfilesTable, updateExpression, key, expressionAttributeValues, expressionAttributeNames)
	if err != nil {
		return nil, err
	}

	var updatedProfile models.Profile
	if err := attributevalue.UnmarshalMap(updatedItem, &updatedProfile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated profile: %w", err)
	}
	return &updatedProfile, nil
}

// DeleteProfile removes a profile
func (ps *ProfileService) DeleteProfile(ctx context.Context, userID string) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	return ps.Dynamo.DeleteItem(ctx, models.ProfilesTable, key)
}
