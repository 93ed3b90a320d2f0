package routes

import (
	"knock_server/controllers"
	"knock_server/services"

	"github.com/gorilla/mux"
)

// RegisterProfileRoutes sets up routes related to Knock profiles
func RegisterProfileRoutes(r *mux.Router, profileService *services.ProfileService) {
	controller := controllers.NewProfileController(profileService)

	profileRouter := r.PathPrefix("/api/profile").Subrouter()
	profileRouter.HandleFunc("", controller.CreateProfile).Methods("POST")
	profileRouter.HandleFunc("", controller.GetProfile).Methods("GET")
	profileRouter.HandleFunc("", controller.UpdateProfile).Methods("PATCH")
	profileRouter.HandleFunc("", controller.DeleteProfile).Methods("DELETE")
}
