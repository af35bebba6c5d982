package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"df-server/api"
	"df-server/config"
	"df-server/geo"
	"df-server/models"
	services "df-server/service"
)

const (
	LAT_QUERY_ARG       = "lat"
	LNG_QUERY_ARG       = "lng"
	RADIUS_QUERY_ARG    = "radius"
	CATEGORY_QUERY_ARG  = "category"
	PRICE_MIN_QUERY_ARG = "price_min"
	PRICE_MAX_QUERY_ARG = "price_max"
	SMOKING_QUERY_ARG   = "smoking"
	KEYWORD_QUERY_ARG   = "keyword"
)

// VenueHandler serves the venue search and insight endpoints.
type VenueHandler struct {
	venueService *services.VenueService
	geoProvider  geo.Provider
}

func NewVenueHandler(venueService *services.VenueService, geoProvider geo.Provider) *VenueHandler {
	return &VenueHandler{venueService: venueService, geoProvider: geoProvider}
}

// SearchVenues handles GET /v1/venues/search.
func (h *VenueHandler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	pos, ok := h.parsePosition(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	criteria, ok := h.parseCriteria(r.URL.Query(), w)
	if !ok {
		return
	}

	ranked, err := h.venueService.SearchNearby(pos.Lat, pos.Lng, criteria)
	if err != nil {
		h.writeSearchError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ranked)
}

// GetVenueInsights handles GET /v1/venues/{id}/insights. Detail fetch
// failures degrade to a partial payload, so this only errors on a bad ID.
func (h *VenueHandler) GetVenueInsights(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["id"]
	if venueID == "" {
		http.Error(w, "Missing venue id", http.StatusBadRequest)
		return
	}

	insights, err := h.venueService.GetVenueInsights(venueID)
	if err != nil {
		log.Println("Error deriving venue insights:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, insights)
}

// parsePosition reads lat/lng, falling back to the configured provider
// when the request carries neither.
func (h *VenueHandler) parsePosition(vals url.Values, w http.ResponseWriter) (geo.Position, bool) {
	if vals.Get(LAT_QUERY_ARG) == "" && vals.Get(LNG_QUERY_ARG) == "" {
		pos, err := h.geoProvider.CurrentPosition()
		if err != nil {
			var posErr *geo.PositionError
			if errors.As(err, &posErr) {
				http.Error(w, "Position unavailable: "+posErr.Message, http.StatusServiceUnavailable)
			} else {
				http.Error(w, "Position unavailable", http.StatusServiceUnavailable)
			}
			return geo.Position{}, false
		}
		return pos, true
	}

	lat, err := strconv.ParseFloat(vals.Get(LAT_QUERY_ARG), 64)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return geo.Position{}, false
	}
	lng, err := strconv.ParseFloat(vals.Get(LNG_QUERY_ARG), 64)
	if err != nil {
		http.Error(w, "Invalid argument "+LNG_QUERY_ARG, http.StatusBadRequest)
		return geo.Position{}, false
	}
	return geo.Position{Lat: lat, Lng: lng}, true
}

func (h *VenueHandler) parseCriteria(vals url.Values, w http.ResponseWriter) (models.FilterCriteria, bool) {
	criteria := models.DefaultFilterCriteria(config.DEFAULT_SEARCH_RADIUS_METERS)

	if v := vals.Get(RADIUS_QUERY_ARG); v != "" {
		radius, err := strconv.ParseFloat(v, 64)
		if err != nil || radius <= 0 || radius > config.MAX_SEARCH_RADIUS_METERS {
			http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
			return criteria, false
		}
		criteria.MaxDistanceMeters = radius
	}
	if v := vals.Get(CATEGORY_QUERY_ARG); v != "" {
		criteria.Category = models.Category(v)
	}
	if v := vals.Get(PRICE_MIN_QUERY_ARG); v != "" {
		min, err := strconv.Atoi(v)
		if err != nil || min < 0 || min > 4 {
			http.Error(w, "Invalid argument "+PRICE_MIN_QUERY_ARG, http.StatusBadRequest)
			return criteria, false
		}
		criteria.PriceMin = &min
	}
	if v := vals.Get(PRICE_MAX_QUERY_ARG); v != "" {
		max, err := strconv.Atoi(v)
		if err != nil || max < 0 || max > 4 {
			http.Error(w, "Invalid argument "+PRICE_MAX_QUERY_ARG, http.StatusBadRequest)
			return criteria, false
		}
		criteria.PriceMax = &max
	}
	if v := vals.Get(SMOKING_QUERY_ARG); v != "" {
		criteria.Smoking = models.SmokingPreference(v)
	}
	criteria.CuisineKeyword = vals.Get(KEYWORD_QUERY_ARG)

	return criteria, true
}

// writeSearchError maps transport error kinds to distinguishable status
// codes and messages; quota and denial must not look alike.
func (h *VenueHandler) writeSearchError(w http.ResponseWriter, err error) {
	var tErr *api.TransportError
	if !errors.As(err, &tErr) {
		log.Println("Error searching venues:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	switch tErr.Kind {
	case api.TransportQuotaExceeded:
		http.Error(w, "Search quota exceeded, retry later", http.StatusTooManyRequests)
	case api.TransportInvalidRequest:
		http.Error(w, "Invalid search request", http.StatusBadRequest)
	case api.TransportDenied:
		http.Error(w, "Search request denied upstream, check credentials", http.StatusBadGateway)
	default:
		http.Error(w, "Venue search temporarily unavailable", http.StatusServiceUnavailable)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// Ping handles GET /ping.
func (h *VenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}
