package services

import (
	"log"
	"sort"

	"knock_server/models"
)

// ScoreWeights holds the contribution of each compatibility component. The
// weights must sum to 1 for scores to stay in [0,1].
type ScoreWeights struct {
	Visual       float64
	Activity     float64
	Availability float64
}

// DefaultScoreWeights is the production weighting.
var DefaultScoreWeights = ScoreWeights{Visual: 0.4, Activity: 0.3, Availability: 0.3}

const (
	// SlotSaturation is the shared-slot count at which the availability
	// component reaches its maximum.
	SlotSaturation = 5
	// ScoreThreshold filters the ranked list: only candidates scoring
	// strictly above it qualify.
	ScoreThreshold = 0.5
)

// CompatibilityService ranks candidate profiles against a subject profile.
// It is pure and safe for concurrent use.
type CompatibilityService struct {
	Weights ScoreWeights
}

// NewCompatibilityService creates a CompatibilityService with the default weights
func NewCompatibilityService() *CompatibilityService {
	return &CompatibilityService{Weights: DefaultScoreWeights}
}

// ScoreCandidates scores every candidate against the subject and returns the
// qualifying ones, highest score first. A malformed subject fails the whole
// call; a malformed candidate is skipped so one bad record cannot block the
// rest of the list. A candidate sharing the subject's id is never returned.
func (cs *CompatibilityService) ScoreCandidates(subject *models.Profile, candidates []*models.Profile) ([]models.MatchResult, error) {
	if subject == nil {
		return nil, &models.ValidationError{Field: "subject", Reason: "missing"}
	}
	if err := subject.Validate(); err != nil {
		return nil, err
	}

	var results []models.MatchResult
	for _, candidate := range candidates {
		if candidate == nil || candidate.UserID == subject.UserID {
			continue
		}
		if err := candidate.Validate(); err != nil {
			log.Printf("Skipping malformed candidate %q: %v", candidate.UserID, err)
			continue
		}
		result := cs.score(subject, candidate)
		if result.Score <= ScoreThreshold {
			continue
		}
		results = append(results, result)
	}

	// Stable sort keeps input order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}

func (cs *CompatibilityService) score(subject, candidate *models.Profile) models.MatchResult {
	visualScore := visualSimilarity(subject.VisualPreferenceTags, candidate.VisualPreferenceTags)
	activityScore := activitySimilarity(subject.ActivityTags, candidate.ActivityTags)

	slots := OverlapSlots(subject.Availability, candidate.Availability)
	availabilityScore := float64(len(slots)) / SlotSaturation
	if availabilityScore > 1 {
		availabilityScore = 1
	}

	return models.MatchResult{
		Candidate:        candidate,
		VisualScore:      visualScore,
		ActivityScore:    activityScore,
		OverlappingSlots: slots,
		Score: cs.Weights.Visual*visualScore +
			cs.Weights.Activity*activityScore +
			cs.Weights.Availability*availabilityScore,
	}
}

// visualSimilarity is |a ∩ b| / max(|a|, |b|); either side empty scores 0.
func visualSimilarity(a, b []int) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[int]bool, len(a))
	for _, tag := range a {
		set[tag] = true
	}
	shared := 0
	for _, tag := range b {
		if set[tag] {
			shared++
		}
	}
	return float64(shared) / float64(max(len(a), len(b)))
}

// activitySimilarity is |a ∩ b| / max(|a|, |b|); either side empty scores 0.
func activitySimilarity(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]bool, len(a))
	for _, tag := range a {
		set[tag] = true
	}
	shared := 0
	for _, tag := range b {
		if set[tag] {
			shared++
		}
	}
	return float64(shared) / float64(max(len(a), len(b)))
}
