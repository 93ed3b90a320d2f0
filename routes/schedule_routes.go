package routes

import (
	"knock_server/controllers"
	"knock_server/services"

	"github.com/gorilla/mux"
)

// RegisterScheduleRoutes sets up routes for slot suggestions and date requests
func RegisterScheduleRoutes(r *mux.Router, dateRequestService *services.DateRequestService) {
	controller := controllers.NewScheduleController(dateRequestService)

	scheduleRouter := r.PathPrefix("/api/schedule").Subrouter()
	scheduleRouter.HandleFunc("/suggest", controller.SuggestSlots).Methods("POST")
	scheduleRouter.HandleFunc("/request", controller.CreateDateRequest).Methods("POST")
	scheduleRouter.HandleFunc("/requests", controller.GetDateRequests).Methods("GET")
	scheduleRouter.HandleFunc("/request/{requestId}", controller.UpdateDateRequestStatus).Methods("PATCH")
}
