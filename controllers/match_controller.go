package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"knock_server/models"
	"knock_server/services"
)

// MatchController handles HTTP requests for match-related actions
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchService *services.MatchService) *MatchController {
	return &MatchController{MatchService: matchService}
}

// GetMatchSuggestions handles fetching the ranked match list for a user
func (mc *MatchController) GetMatchSuggestions(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	suggestions, err := mc.MatchService.GetRankedMatches(r.Context(), userID)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, services.ErrItemNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to fetch matches: %v", err), http.StatusInternalServerError)
		return
	}

	// An empty list is a valid outcome; the client shows a broaden-your-
	// preferences prompt.
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"matches": suggestions,
	})
}
