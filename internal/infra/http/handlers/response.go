package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nxtgenhub/lead-relay/internal/entity"
	"github.com/nxtgenhub/lead-relay/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Warn("failed to write response", "error", err)
	}
}

func writeDispatchError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, entity.DispatchResult{Success: false, Error: msg})
}
