package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"oh-server/models"
	services "oh-server/service"
)

const ADMIN_SECRET_HEADER = "X-Admin-Secret"
const FORCE_QUERY_ARG = "force"

// OverrideRequest is the body of a manual schedule override. The schedule map
// is keyed by weekday index (Sunday=0); missing days become Closed.
type OverrideRequest struct {
	PlaceLink   string                     `json:"place_link"`
	DisplayName string                     `json:"display_name"`
	Note        string                     `json:"note"`
	Schedule    map[int]models.DaySchedule `json:"schedule"`
}

// AdminHandler exposes the protected operational surface: forced refresh of
// every place and manual entry overrides.
type AdminHandler struct {
	refresher  *services.HoursRefresherService
	hoursCache *services.HoursCacheService
	secret     string
}

func NewAdminHandler(refresher *services.HoursRefresherService, hoursCache *services.HoursCacheService, secret string) *AdminHandler {
	return &AdminHandler{refresher: refresher, hoursCache: hoursCache, secret: secret}
}

// RefreshAll handles POST /v1/admin/hours/refresh
func (h *AdminHandler) RefreshAll(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	force := true
	if v := r.URL.Query().Get(FORCE_QUERY_ARG); v != "" {
		force, _ = strconv.ParseBool(v)
	}

	// The sweep can take minutes with the inter-request delay; run it in the
	// background and acknowledge immediately.
	go func() {
		if err := h.refresher.RefreshAll(force); err != nil {
			log.Printf("Admin-triggered refresh failed: %v", err)
		}
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "refresh started"})
}

// OverrideSchedule handles POST /v1/admin/hours/override
func (h *AdminHandler) OverrideSchedule(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	var req OverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid override body", http.StatusBadRequest)
		return
	}
	if req.PlaceLink == "" {
		http.Error(w, "Missing place_link", http.StatusBadRequest)
		return
	}

	ref := models.PlaceReference{PlaceLink: req.PlaceLink, DisplayName: req.DisplayName}
	entry, err := h.hoursCache.OverrideSchedule(ref, models.PartialWeekly(req.Schedule), req.Note)
	if err != nil {
		log.Println("Manual override failed:", err)
		http.Error(w, "Override failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *AdminHandler) authorize(w http.ResponseWriter, r *http.Request) bool {
	if h.secret == "" {
		http.Error(w, "Admin surface disabled", http.StatusForbidden)
		return false
	}
	if r.Header.Get(ADMIN_SECRET_HEADER) != h.secret {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}
