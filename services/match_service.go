package services

import (
	"context"
	"fmt"
	"log"

	"knock_server/models"
)

// MatchService loads profiles from storage and runs the compatibility
// scorer over them.
type MatchService struct {
	Profiles      *ProfileService
	Compatibility *CompatibilityService
}

// GetRankedMatches fetches the subject's profile and every other profile,
// scores the candidates, and returns the qualifying ones enriched with
// display attributes, highest score first.
func (ms *MatchService) GetRankedMatches(ctx context.Context, userID string) ([]models.MatchSuggestion, error) {
	subject, err := ms.Profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subject profile for %s: %w", userID, err)
	}

	candidates, err := ms.Profiles.GetCandidateProfiles(ctx, userID)
	if err != nil {
		return nil, err
	}

	results, err := ms.Compatibility.ScoreCandidates(subject, candidates)
	if err != nil {
		return nil, err
	}
	log.Printf("Scored %d candidates for user %s, %d qualified", len(candidates), userID, len(results))

	suggestions := make([]models.MatchSuggestion, 0, len(results))
	for _, result := range results {
		suggestion := models.MatchSuggestion{MatchResult: result}
		if result.Candidate != nil {
			suggestion.CandidateName = result.Candidate.Name
			if len(result.Candidate.Photos) > 0 {
				suggestion.CandidatePhoto = result.Candidate.Photos[0]
			}
		}
		suggestions = append(suggestions, suggestion)
	}
	return suggestions, nil
}
