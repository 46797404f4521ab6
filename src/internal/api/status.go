package api

import (
	"net/http"
)

// GetStatus returns a summary of the latest run.
// GET /api/v1/status
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	snapshot := h.holder.Load()
	if snapshot == nil {
		writeJSONData(w, StatusResponse{Sources: []SourceStatus{}})
		return
	}

	result := snapshot.Result
	generatedAt := result.FinishedAt
	response := StatusResponse{
		Ready:         true,
		Format:        snapshot.Format.String(),
		Count:         result.Count(),
		GeneratedAt:   &generatedAt,
		DurationMs:    result.FinishedAt.Sub(result.StartedAt).Milliseconds(),
		FailedSources: result.FailedSources(),
		HostsMD5:      snapshot.HostsChecksum,
		DomainsMD5:    snapshot.DomainsChecksum,
		Sources:       make([]SourceStatus, 0, len(result.Sources)),
	}

	for _, source := range result.Sources {
		status := SourceStatus{
			URL:          source.URL,
			Lines:        source.Lines,
			Extracted:    source.Extracted,
			Discarded:    source.Discarded,
			Added:        source.Added,
			InvalidNames: source.InvalidNames,
			MD5:          source.Checksum,
			Error:        source.Error,
			DurationMs:   source.Duration.Milliseconds(),
		}
		if !source.Failed() {
			status.Format = source.Format.String()
		}
		response.Sources = append(response.Sources, status)
	}

	writeJSONData(w, response)
}
