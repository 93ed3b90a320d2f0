package models

// OverlapSlot is one (weekday, time band) combination present in both users'
// weekly availability.
type OverlapSlot struct {
	Weekday  string `json:"weekday"`
	TimeBand string `json:"timeBand"`
}

// MatchResult scores one candidate against a subject. Component scores are
// retained so callers (and tests) can explain the total.
type MatchResult struct {
	Candidate        *Profile      `json:"candidate"`
	Score            float64       `json:"score"`
	VisualScore      float64       `json:"visualScore"`
	ActivityScore    float64       `json:"activityScore"`
	OverlappingSlots []OverlapSlot `json:"overlappingSlots"`
}

// MatchSuggestion is a MatchResult enriched with display attributes for the
// client, built by the match service from the candidate's stored profile.
type MatchSuggestion struct {
	MatchResult
	CandidateName  string `json:"candidateName,omitempty"`
	CandidatePhoto string `json:"candidatePhoto,omitempty"`
}
