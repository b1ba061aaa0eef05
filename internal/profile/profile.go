// Package profile serves user accounts and their saved design-condition
// presets.
package profile

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"Plenum/internal/auth"
	"Plenum/internal/climate"
	"Plenum/internal/repo"
)

type ProfileHandler struct {
	Repo repo.Repository
}

type updateProfileRequest struct {
	Login       string `json:"login"`
	Description string `json:"description"`
}

type designDefaultsRequest struct {
	ClimateZone   string  `json:"climate_zone"`
	IndoorWinterF float64 `json:"indoor_winter_f"`
	IndoorSummerF float64 `json:"indoor_summer_f"`
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	targetID, ok := auth.UserID(r.Context())
	if idStr, present := mux.Vars(r)["id"]; present && idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			http.Error(w, "Invalid id", http.StatusBadRequest)
			return
		}
		targetID, ok = id, true
	}
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	prof, err := h.Repo.GetProfileByID(r.Context(), targetID)
	if err != nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(prof)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Login = strings.TrimSpace(req.Login)
	if req.Login == "" {
		http.Error(w, "Login required", http.StatusBadRequest)
		return
	}
	if err := h.Repo.UpdateProfile(r.Context(), userID, req.Login, req.Description); err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateDesignDefaults stores the user's preferred climate zone and indoor
// setpoints, pre-filling future calculations.
func (h *ProfileHandler) UpdateDesignDefaults(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req designDefaultsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.ClimateZone != "" {
		if _, known := climate.LookupZone(req.ClimateZone); !known {
			http.Error(w, "Unknown climate zone", http.StatusBadRequest)
			return
		}
	}
	if err := h.Repo.UpdateDesignDefaults(r.Context(), userID, req.ClimateZone, req.IndoorWinterF, req.IndoorSummerF); err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DesignDefaults returns the zone design temperatures for the saved preset so
// clients can seed a calculation form.
func (h *ProfileHandler) DesignDefaults(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	prof, err := h.Repo.GetProfileByID(r.Context(), userID)
	if err != nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	design := climate.DesignConditions{
		IndoorWinterF: prof.IndoorWinterF,
		IndoorSummerF: prof.IndoorSummerF,
	}
	if zone, known := climate.LookupZone(prof.ClimateZone); known {
		design.OutdoorWinterF = zone.OutdoorWinterF
		design.OutdoorSummerF = zone.OutdoorSummerF
		design.Latitude = zone.Latitude
		design.DailyRange = zone.DailyRange
	}
	design.ApplyDefaults()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(design)
}
