package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

// The rejection paths below never reach a service, so nil services are fine.

func TestGetMatchSuggestionsRequiresUserID(t *testing.T) {
	controller := NewMatchController(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/match/suggestions", nil)
	rec := httptest.NewRecorder()
	controller.GetMatchSuggestions(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestSuggestSlotsRejectsBadPayload(t *testing.T) {
	controller := NewScheduleController(nil)

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", "{not json"},
		{"missing ids", `{"horizonDays": 7}`},
		{"missing candidate", `{"userId": "u1"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/schedule/suggest", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			controller.SuggestSlots(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestCreateDateRequestRejectsInvalidJSON(t *testing.T) {
	controller := NewScheduleController(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/schedule/request", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	controller.CreateDateRequest(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetDateRequestsRequiresUserID(t *testing.T) {
	controller := NewScheduleController(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/schedule/requests", nil)
	rec := httptest.NewRecorder()
	controller.GetDateRequests(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestUpdateDateRequestStatusRequiresStatus(t *testing.T) {
	controller := NewScheduleController(nil)

	r := mux.NewRouter()
	r.HandleFunc("/api/schedule/request/{requestId}", controller.UpdateDateRequestStatus).Methods("PATCH")

	req := httptest.NewRequest(http.MethodPatch, "/api/schedule/request/req-1", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestProfileEndpointsRequireUserID(t *testing.T) {
	controller := NewProfileController(nil)

	handlers := map[string]http.HandlerFunc{
		"get":    controller.GetProfile,
		"update": controller.UpdateProfile,
		"delete": controller.DeleteProfile,
	}
	for name, handler := range handlers {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
			rec := httptest.NewRecorder()
			handler(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestCreateProfileRejectsInvalidJSON(t *testing.T) {
	controller := NewProfileController(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/profile", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	controller.CreateProfile(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
