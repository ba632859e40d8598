package routes

import (
	"roomly_server/controllers"
	"roomly_server/services"

	"github.com/gorilla/mux"
)

// RegisterSwipeRoutes sets up routes for the swipe engine under /api/swipe
func RegisterSwipeRoutes(r *mux.Router, swipeService *services.SwipeService) {
	controller := controllers.NewSwipeController(swipeService)

	swipeRouter := r.PathPrefix("/api/swipe").Subrouter()

	swipeRouter.HandleFunc("/queue", controller.HandleGetQueue).Methods("GET")
	swipeRouter.HandleFunc("/decide", controller.HandleDecide).Methods("POST")
}
