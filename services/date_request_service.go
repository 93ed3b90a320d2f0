package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"knock_server/models"
	"knock_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// DateRequestService proposes meeting slots for a pair of users and manages
// the persisted date requests built from them.
type DateRequestService struct {
	Dynamo    *DynamoService
	Profiles  *ProfileService
	Scheduler *SlotSchedulerService
}

// SuggestDateSlots loads both users' profiles and returns concrete meeting
// suggestions from their shared weekly availability, skipping dates on either
// party's blackout list. An empty result is a valid outcome, not an error.
func (drs *DateRequestService) SuggestDateSlots(ctx context.Context, userID, candidateID string, horizonDays, maxResults int) ([]models.SlotSuggestion, error) {
	subject, err := drs.Profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile for %s: %w", userID, err)
	}
	candidate, err := drs.Profiles.GetProfile(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile for %s: %w", candidateID, err)
	}
	if err := subject.Validate(); err != nil {
		return nil, err
	}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	blackoutUnion := append(append([]string{}, subject.BlackoutDates...), candidate.BlackoutDates...)
	suggestions := drs.Scheduler.SuggestSlots(subject.Availability, candidate.Availability, blackoutUnion, horizonDays, maxResults)
	log.Printf("Generated %d slot suggestions for %s × %s", len(suggestions), userID, candidateID)
	return suggestions, nil
}

// CreateDateRequest persists a picked slot suggestion as a pending request
func (drs *DateRequestService) CreateDateRequest(ctx context.Context, request models.DateRequest) (*models.DateRequest, error) {
	if request.FromUserID == "" {
		return nil, &models.ValidationError{Field: "fromUserId", Reason: "missing"}
	}
	if request.ToUserID == "" {
		return nil, &models.ValidationError{Field: "toUserId", Reason: "missing"}
	}
	parsedDate, err := models.ParseDate(request.Date)
	if err != nil {
		return nil, &models.ValidationError{Field: "date", Reason: "invalid date"}
	}
	band, ok := models.NormalizeTimeBand(request.TimeBand)
	if !ok {
		return nil, &models.ValidationError{Field: "timeBand", Reason: "unknown time band"}
	}

	request.RequestID = uuid.NewString()
	request.TimeBand = band
	request.Weekday = models.WeekdayName(parsedDate.Weekday())
	request.RepresentativeTime = models.RepresentativeTimes[band]
	request.Status = models.StatusPending
	request.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := drs.Dynamo.PutItem(ctx, models.DateRequestsTable, request); err != nil {
		return nil, err
	}
	return &request, nil
}

// GetDateRequestsForUser lists requests addressed to a user, each enriched
// with the sender's display name and first photo.
func (drs *DateRequestService) GetDateRequestsForUser(ctx context.Context, userID string) ([]map[string]interface{}, error) {
	keyCondition := "toUserId = :toUserId"
	expressionValues := map[string]types.AttributeValue{
		":toUserId": &types.AttributeValueMemberS{Value: userID},
	}

	items, err := drs.Dynamo.QueryItemsWithIndex(ctx, models.DateRequestsTable, models.ToUserIndex, keyCondition, expressionValues, nil, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch date requests: %w", err)
	}

	enriched := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		var request models.DateRequest
		if err := attributevalue.UnmarshalMap(item, &request); err != nil {
			log.Printf("Error unmarshalling date request: %v", err)
			continue
		}

		senderName := ""
		senderPhoto := ""
		senderKey := map[string]types.AttributeValue{
			"userId": &types.AttributeValueMemberS{Value: request.FromUserID},
		}
		if senderItem, err := drs.Dynamo.GetItem(ctx, models.ProfilesTable, senderKey); err == nil {
			senderName = utils.ExtractString(senderItem, "name")
			senderPhoto = utils.ExtractFirstPhoto(senderItem, "photos")
		}

		enriched = append(enriched, map[string]interface{}{
			"request":     request,
			"senderName":  senderName,
			"senderPhoto": senderPhoto,
		})
	}
	return enriched, nil
}

// UpdateDateRequestStatus moves a request to accepted, declined or cancelled
func (drs *DateRequestService) UpdateDateRequestStatus(ctx context.Context, requestID, status string) (*models.DateRequest, error) {
	switch status {
	case models.StatusAccepted, models.StatusDeclined, models.StatusCancelled:
	default:
		return nil, &models.ValidationError{Field: "status", Reason: "unknown status " + status}
	}

	key := map[string]types.AttributeValue{
		"requestId": &types.AttributeValueMemberS{Value: requestID},
	}
	updateExpression := "SET #status = :status"
	expressionValues := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: status},
	}
	expressionNames := map[string]string{"#status": "status"}

	updatedItem, err := drs.Dynamo.UpdateItem(ctx, models.DateRequestsTable, updateExpression, key, expressionValues, expressionNames)
	if err != nil {
		return nil, err
	}

	var updated models.DateRequest
	if err := attributevalue.UnmarshalMap(updatedItem, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated request: %w", err)
	}
	return &updated, nil
}
