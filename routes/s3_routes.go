package routes

import (
	"knock_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for profile-photo URL generation
func RegisterS3Routes(r *mux.Router) {
	r.HandleFunc("/generate-presigned-url", controllers.GeneratePresignedURL).Methods("POST")
	r.HandleFunc("/get-presigned-read-url", controllers.GetPresignedReadURL).Methods("POST")
}
