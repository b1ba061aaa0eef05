package equipment

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

type verifyRequest struct {
	Load      Load     `json:"load"`
	Equipment Capacity `json:"equipment"`
	Options   Options  `json:"options,omitempty"`
}

func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := Verify(req.Load, req.Equipment, req.Options)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
