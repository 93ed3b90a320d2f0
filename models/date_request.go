package models

// SlotSuggestion is one concrete proposed meeting opportunity generated by
// the slot scheduler. It is transient; the client turns a picked suggestion
// into a DateRequest.
type SlotSuggestion struct {
	Date               string `json:"date"` // ISO calendar date
	Weekday            string `json:"weekday"`
	TimeBand           string `json:"timeBand"`
	RepresentativeTime string `json:"representativeTime"` // Display/booking only
}

// DateRequest is a persisted proposal from one user to meet another on a
// specific date and time band.
type DateRequest struct {
	RequestID          string `dynamodbav:"requestId" json:"requestId"` // ✅ Partition Key
	FromUserID         string `dynamodbav:"fromUserId" json:"fromUserId"`
	ToUserID           string `dynamodbav:"toUserId" json:"toUserId"` // Indexed via GSI
	Date               string `dynamodbav:"date" json:"date"`
	Weekday            string `dynamodbav:"weekday" json:"weekday"`
	TimeBand           string `dynamodbav:"timeBand" json:"timeBand"`
	RepresentativeTime string `dynamodbav:"representativeTime" json:"representativeTime"`
	Note               string `dynamodbav:"note,omitempty" json:"note,omitempty"`
	Status             string `dynamodbav:"status" json:"status"`
	CreatedAt          string `dynamodbav:"createdAt" json:"createdAt"` // Timestamp of creation
}

// DateRequestsTable is the DynamoDB table name for date requests
const DateRequestsTable = "KnockDateRequests"

// ToUserIndex is the GSI used to list date requests addressed to a user
const ToUserIndex = "toUserId-index"
