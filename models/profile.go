package models

import "strconv"

// Profile defines the matchable attributes of a Knock user.
type Profile struct {
	UserID               string       `dynamodbav:"userId" json:"userId"` // ✅ Partition Key
	Name                 string       `dynamodbav:"name,omitempty" json:"name,omitempty"`
	Bio                  string       `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Photos               []string     `dynamodbav:"photos,omitempty" json:"photos,omitempty"`
	VisualPreferenceTags []int        `dynamodbav:"visualPreferenceTags,omitempty" json:"visualPreferenceTags,omitempty"` // Face-style indices, similarity only
	ActivityTags         []string     `dynamodbav:"activityTags,omitempty" json:"activityTags,omitempty"`                 // Free-text interests
	Availability         Availability `dynamodbav:"availability,omitempty" json:"availability,omitempty"`                 // Weekly free slots
	BlackoutDates        []string     `dynamodbav:"blackoutDates,omitempty" json:"blackoutDates,omitempty"`               // ISO dates, always unavailable
}

// ProfilesTable is the DynamoDB table name for Knock profiles
const ProfilesTable = "KnockProfiles"

// Validate enforces the shape contract at the construction boundary: a
// non-empty id, duplicate-free tag sets, availability drawn from the
// canonical weekday/band vocabulary, and parseable blackout dates.
func (p *Profile) Validate() error {
	if p.UserID == "" {
		return &ValidationError{Field: "userId", Reason: "missing"}
	}
	seenTags := make(map[string]bool, len(p.ActivityTags))
	for _, tag := range p.ActivityTags {
		if seenTags[tag] {
			return &ValidationError{Field: "activityTags", Reason: "duplicate tag " + strconv.Quote(tag)}
		}
		seenTags[tag] = true
	}
	seenPrefs := make(map[int]bool, len(p.VisualPreferenceTags))
	for _, tag := range p.VisualPreferenceTags {
		if seenPrefs[tag] {
			return &ValidationError{Field: "visualPreferenceTags", Reason: "duplicate tag " + strconv.Itoa(tag)}
		}
		seenPrefs[tag] = true
	}
	if _, err := p.Availability.Normalized(); err != nil {
		return err
	}
	for _, date := range p.BlackoutDates {
		if _, err := ParseDate(date); err != nil {
			return &ValidationError{Field: "blackoutDates", Reason: "invalid date " + strconv.Quote(date)}
		}
	}
	return nil
}
