package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"oh-server/models"
	services "oh-server/service"
)

const (
	LINK_QUERY_ARG = "link"
	NAME_QUERY_ARG = "name"
)

// StatusResponse is the caller-facing answer to "is this place open".
// Status is one of "open", "closed", "unknown"; unknown is never collapsed
// into open, because a missing warning costs players a wasted trip.
type StatusResponse struct {
	PlaceLink         string `json:"place_link"`
	DisplayName       string `json:"display_name"`
	Status            string `json:"status"`
	MinutesUntilClose *int   `json:"minutes_until_close"`
	Stale             bool   `json:"stale"`
}

type HoursHandler struct {
	hoursCache   *services.HoursCacheService
	availability *services.AvailabilityService
}

func NewHoursHandler(hoursCache *services.HoursCacheService, availability *services.AvailabilityService) *HoursHandler {
	return &HoursHandler{hoursCache: hoursCache, availability: availability}
}

// GetStatus handles GET /v1/hours/status
func (h *HoursHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.parseRef(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	resp := StatusResponse{
		PlaceLink:   ref.PlaceLink,
		DisplayName: ref.DisplayName,
		Status:      "unknown",
	}

	schedule, stale, err := h.hoursCache.GetSchedule(ref, false)
	if err != nil {
		log.Printf("Could not determine hours for %s: %v", ref.PlaceLink, err)
		writeJSON(w, http.StatusOK, resp)
		return
	}

	open, minutes := h.availability.StatusNow(schedule)
	resp.Stale = stale
	resp.MinutesUntilClose = minutes
	if open {
		resp.Status = "open"
	} else {
		resp.Status = "closed"
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetSchedule handles GET /v1/hours/schedule
func (h *HoursHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.parseRef(r.URL.Query(), w)
	if !ok {
		return
	}

	entry, err := h.hoursCache.GetEntry(ref.PlaceLink)
	if err != nil {
		log.Println("Error loading schedule entry:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if entry == nil {
		http.Error(w, "No schedule cached for place", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *HoursHandler) parseRef(vals url.Values, w http.ResponseWriter) (models.PlaceReference, bool) {
	link := vals.Get(LINK_QUERY_ARG)
	if link == "" {
		http.Error(w, "Missing argument "+LINK_QUERY_ARG, http.StatusBadRequest)
		return models.PlaceReference{}, false
	}
	return models.PlaceReference{
		PlaceLink:   link,
		DisplayName: vals.Get(NAME_QUERY_ARG),
	}, true
}

// Ping handles GET /ping
func (h *HoursHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("Error encoding response:", err)
	}
}
