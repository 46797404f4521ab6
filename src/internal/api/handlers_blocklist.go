package api

import (
	"net/http"
	"strconv"
)

// GetDomains serves the domain-only blocklist.
// GET /blocklist
func (h *Handler) GetDomains(w http.ResponseWriter, r *http.Request) {
	snapshot := h.holder.Load()
	if snapshot == nil {
		WriteNotReady(w)
		return
	}
	if !snapshot.Format.IncludesDomains() {
		WriteNotFound(w, "domain-only blocklist")
		return
	}
	writeArtifact(w, r, snapshot.Domains, snapshot.DomainsChecksum)
}

// GetHosts serves the hosts-format blocklist.
// GET /blocklist.hosts
func (h *Handler) GetHosts(w http.ResponseWriter, r *http.Request) {
	snapshot := h.holder.Load()
	if snapshot == nil {
		WriteNotReady(w)
		return
	}
	if !snapshot.Format.IncludesHosts() {
		WriteNotFound(w, "hosts blocklist")
		return
	}
	writeArtifact(w, r, snapshot.Hosts, snapshot.HostsChecksum)
}

func writeArtifact(w http.ResponseWriter, r *http.Request, content []byte, checksum string) {
	etag := strconv.Quote(checksum)
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		w.Write(content)
	}
}
