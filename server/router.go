package server

import (
	"oh-server/server/handlers"

	"github.com/gorilla/mux"
)

type Router struct {
	hoursHandler *handlers.HoursHandler
	adminHandler *handlers.AdminHandler
	router       *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	hoursHandler *handlers.HoursHandler,
	adminHandler *handlers.AdminHandler,
	router *mux.Router) *Router {
	return &Router{
		hoursHandler: hoursHandler,
		adminHandler: adminHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?link={place share link}&name={display name}
	r.router.HandleFunc("/v1/hours/status", r.hoursHandler.GetStatus).Methods("GET")

	// expects ?link={place share link}
	r.router.HandleFunc("/v1/hours/schedule", r.hoursHandler.GetSchedule).Methods("GET")

	// admin surface, gated by the shared secret header
	r.router.HandleFunc("/v1/admin/hours/refresh", r.adminHandler.RefreshAll).Methods("POST")
	r.router.HandleFunc("/v1/admin/hours/override", r.adminHandler.OverrideSchedule).Methods("POST")

	r.router.HandleFunc("/ping", r.hoursHandler.Ping).Methods("GET")
}
