package api

import (
	"fmt"
	"net/http"
)

// CheckHealth reports whether a blocklist is available and how its sources fared.
// GET /health
func (h *Handler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthCheckResponse{
		Healthy: true,
		Checks:  make(map[string]CheckResult),
	}

	snapshot := h.holder.Load()
	if snapshot == nil {
		response.Healthy = false
		response.Checks["blocklist_generated"] = CheckResult{
			Passed:  false,
			Message: "Blocklist has not been generated yet",
		}
		writeJSON(w, http.StatusServiceUnavailable, response)
		return
	}

	response.Checks["blocklist_generated"] = CheckResult{
		Passed:  true,
		Message: fmt.Sprintf("Blocklist contains %d entries", snapshot.Result.Count()),
	}

	// Individual source failures are expected; only a run where nothing
	// could be downloaded is reported.
	total := len(snapshot.Result.Sources)
	failed := snapshot.Result.FailedSources()
	sourcesOK := failed < total
	response.Checks["sources_reachable"] = CheckResult{
		Passed:  sourcesOK,
		Message: fmt.Sprintf("%d of %d sources downloaded", total-failed, total),
	}

	if !sourcesOK {
		response.Healthy = false
		writeJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	writeJSONData(w, response)
}
