package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// VenueRoutes is the handler surface the router wires up.
type VenueRoutes interface {
	SearchVenues(w http.ResponseWriter, r *http.Request)
	GetVenueInsights(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	venueHandler VenueRoutes
	router       *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	venueHandler VenueRoutes,
	router *mux.Router) *Router {
	return &Router{
		venueHandler: venueHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?lat={latitude}&lng={longitude}&radius={meters}&category=...&price_min=...&price_max=...&smoking=...&keyword=...
	r.router.HandleFunc("/v1/venues/search", r.venueHandler.SearchVenues).Methods("GET")

	r.router.HandleFunc("/v1/venues/{id}/insights", r.venueHandler.GetVenueInsights).Methods("GET")

	r.router.HandleFunc("/ping", r.venueHandler.Ping).Methods("GET")
}
