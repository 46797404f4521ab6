package api

import (
	"encoding/json"
	"net/http"

	"github.com/keen-tools/blocklist-gen/src/internal/log"
)

// Handler serves whatever snapshot the holder currently publishes.
// It keeps no state of its own.
type Handler struct {
	holder *SnapshotHolder
	logger *log.Logger
}

func NewHandler(holder *SnapshotHolder, logger *log.Logger) *Handler {
	return &Handler{holder: holder, logger: logger}
}

// writeJSON wraps data in the {"data": ...} envelope.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(DataResponse{Data: data})
}

func writeJSONData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}
