package terminal

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

type selectRequest struct {
	Rooms   []Room  `json:"rooms"`
	Options Options `json:"options,omitempty"`
}

type selectResponse struct {
	Selections []Selection `json:"selections"`
}

func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := SelectRooms(req.Rooms, req.Options)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(selectResponse{Selections: res})
}
