package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"knock_server/models"
	"knock_server/services"

	"github.com/gorilla/mux"
)

// ScheduleController handles HTTP requests for slot suggestions and date
// requests
type ScheduleController struct {
	DateRequestService *services.DateRequestService
}

// NewScheduleController creates a new ScheduleController instance
func NewScheduleController(dateRequestService *services.DateRequestService) *ScheduleController {
	return &ScheduleController{DateRequestService: dateRequestService}
}

// SuggestSlots handles computing concrete meeting slots for a pair of users
func (sc *ScheduleController) SuggestSlots(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID      string `json:"userId"`
		CandidateID string `json:"candidateId"`
		HorizonDays int    `json:"horizonDays"`
		MaxResults  int    `json:"maxResults"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if payload.UserID == "" || payload.CandidateID == "" {
		http.Error(w, "userId and candidateId are required", http.StatusBadRequest)
		return
	}

	suggestions, err := sc.DateRequestService.SuggestDateSlots(r.Context(), payload.UserID, payload.CandidateID, payload.HorizonDays, payload.MaxResults)
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
		http.Error(w, fmt.Sprintf("Failed to suggest slots: %v", err), http.StatusInternalServerError)
		return
	}

	// No shared slots is a valid outcome; the client falls back to a manual
	// time proposal.
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"suggestions": suggestions,
	})
}

// CreateDateRequest handles persisting a picked slot as a date request
func (sc *ScheduleController) CreateDateRequest(w http.ResponseWriter, r *http.Request) {
	var request models.DateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	created, err := sc.DateRequestService.CreateDateRequest(r.Context(), request)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to create date request: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// GetDateRequests handles listing date requests addressed to a user
func (sc *ScheduleController) GetDateRequests(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	requests, err := sc.DateRequestService.GetDateRequestsForUser(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"requests": requests,
	})
}

// UpdateDateRequestStatus handles accepting, declining or cancelling a request
func (sc *ScheduleController) UpdateDateRequestStatus(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["requestId"]
	if requestID == "" {
		http.Error(w, "requestId is required", http.StatusBadRequest)
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Status == "" {
		http.Error(w, "status is required", http.StatusBadRequest)
		return
	}

	updated, err := sc.DateRequestService.UpdateDateRequestStatus(r.Context(), requestID, payload.Status)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(updated)
}
