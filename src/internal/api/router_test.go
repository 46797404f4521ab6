package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/keen-tools/blocklist-gen/src/internal/config"
	"github.com/keen-tools/blocklist-gen/src/internal/lists"
	"github.com/keen-tools/blocklist-gen/src/internal/log"
	"github.com/keen-tools/blocklist-gen/src/internal/metrics"
)

func newTestResult(domains ...string) *lists.RunResult {
	store := lists.CreateDomainStore()
	store.AddAll(domains)
	started := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return &lists.RunResult{
		Domains: store,
		Sources: []lists.SourceReport{
			{URL: "https://lists.example/hosts", Format: lists.ListFormatHosts, Lines: 3, Extracted: len(domains), Added: len(domains), Checksum: "abc", Duration: 250 * time.Millisecond},
			{URL: "https://down.example/list", Error: "connection refused"},
		},
		StartedAt:  started,
		FinishedAt: started.Add(2 * time.Second),
	}
}

func newTestRouter(t *testing.T, format config.OutputFormat, result *lists.RunResult) (http.Handler, *SnapshotHolder) {
	t.Helper()
	holder := &SnapshotHolder{}
	if result != nil {
		snapshot, err := NewSnapshot(result, format, "0.0.0.0")
		if err != nil {
			t.Fatalf("Failed to create snapshot: %v", err)
		}
		holder.Store(snapshot)
	}
	return NewRouter(holder, metrics.New(), log.Discard()), holder
}

func doRequest(handler http.Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Blocklists(t *testing.T) {
	router, _ := newTestRouter(t, config.FormatBoth, newTestResult("b.example", "a.example"))

	rec := doRequest(router, http.MethodGet, "/blocklist", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "a.example\nb.example" {
		t.Errorf("Unexpected domains body %q", rec.Body.String())
	}
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain") {
		t.Errorf("Expected text/plain, got %s", rec.Header().Get("Content-Type"))
	}

	rec = doRequest(router, http.MethodGet, "/blocklist.hosts", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "0.0.0.0 a.example\n0.0.0.0 b.example" {
		t.Errorf("Unexpected hosts body %q", rec.Body.String())
	}
}

func TestRouter_BlocklistETag(t *testing.T) {
	router, _ := newTestRouter(t, config.FormatDomains, newTestResult("a.example"))

	rec := doRequest(router, http.MethodGet, "/blocklist", nil)
	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("Expected ETag header")
	}

	rec = doRequest(router, http.MethodGet, "/blocklist", http.Header{"If-None-Match": {etag}})
	if rec.Code != http.StatusNotModified {
		t.Errorf("Expected 304, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("Expected empty body for 304")
	}
}

func TestRouter_NotSelectedFormat(t *testing.T) {
	tests := []struct {
		format config.OutputFormat
		path   string
		want   int
	}{
		{config.FormatHosts, "/blocklist", http.StatusNotFound},
		{config.FormatHosts, "/blocklist.hosts", http.StatusOK},
		{config.FormatDomains, "/blocklist.hosts", http.StatusNotFound},
		{config.FormatDomains, "/blocklist", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.format.String()+tt.path, func(t *testing.T) {
			router, _ := newTestRouter(t, tt.format, newTestResult("a.example"))
			if rec := doRequest(router, http.MethodGet, tt.path, nil); rec.Code != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestRouter_NotReady(t *testing.T) {
	router, holder := newTestRouter(t, config.FormatBoth, nil)

	for _, path := range []string{"/blocklist", "/blocklist.hosts", "/health"} {
		if rec := doRequest(router, http.MethodGet, path, nil); rec.Code != http.StatusServiceUnavailable {
			t.Errorf("%s: expected 503, got %d", path, rec.Code)
		}
	}

	rec := doRequest(router, http.MethodGet, "/api/v1/status", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 for status, got %d", rec.Code)
	}
	var response struct {
		Data StatusResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode status: %v", err)
	}
	if response.Data.Ready {
		t.Errorf("Expected status not ready")
	}

	// Publishing a snapshot makes the blocklist available
	snapshot, err := NewSnapshot(newTestResult("a.example"), config.FormatBoth, "0.0.0.0")
	if err != nil {
		t.Fatalf("Failed to create snapshot: %v", err)
	}
	if previous := holder.Store(snapshot); previous != nil {
		t.Errorf("Expected no previous snapshot")
	}
	if rec := doRequest(router, http.MethodGet, "/blocklist", nil); rec.Code != http.StatusOK {
		t.Errorf("Expected 200 after publishing, got %d", rec.Code)
	}
}

func TestRouter_Status(t *testing.T) {
	router, _ := newTestRouter(t, config.FormatBoth, newTestResult("a.example", "b.example"))

	rec := doRequest(router, http.MethodGet, "/api/v1/status", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("Content-Type") != "application/json" {
		t.Errorf("Expected JSON content type, got %s", rec.Header().Get("Content-Type"))
	}

	var response struct {
		Data StatusResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode status: %v", err)
	}

	status := response.Data
	if !status.Ready || status.Count != 2 || status.Format != "both" {
		t.Errorf("Unexpected status: %+v", status)
	}
	if status.DurationMs != 2000 {
		t.Errorf("Expected duration 2000ms, got %d", status.DurationMs)
	}
	if status.FailedSources != 1 {
		t.Errorf("Expected 1 failed source, got %d", status.FailedSources)
	}
	if status.HostsMD5 == "" || status.DomainsMD5 == "" {
		t.Errorf("Expected artifact checksums")
	}
	if len(status.Sources) != 2 {
		t.Fatalf("Expected 2 sources, got %d", len(status.Sources))
	}
	if status.Sources[0].Format != "hosts" || status.Sources[0].DurationMs != 250 || status.Sources[0].MD5 != "abc" {
		t.Errorf("Unexpected source status: %+v", status.Sources[0])
	}
	if status.Sources[1].Error != "connection refused" || status.Sources[1].Format != "" {
		t.Errorf("Unexpected failed source status: %+v", status.Sources[1])
	}
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t, config.FormatBoth, newTestResult("a.example"))

	rec := doRequest(router, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var response struct {
		Data HealthCheckResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode health: %v", err)
	}
	if !response.Data.Healthy {
		t.Errorf("Expected healthy response: %+v", response.Data)
	}
	if !response.Data.Checks["sources_reachable"].Passed {
		t.Errorf("Expected sources check to pass with one working source")
	}
}

func TestRouter_HealthAllSourcesFailed(t *testing.T) {
	result := &lists.RunResult{
		Domains: lists.CreateDomainStore(),
		Sources: []lists.SourceReport{{URL: "a", Error: "timeout"}},
	}
	router, _ := newTestRouter(t, config.FormatBoth, result)

	if rec := doRequest(router, http.MethodGet, "/health", nil); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503, got %d", rec.Code)
	}
}

func TestRouter_Metrics(t *testing.T) {
	router, _ := newTestRouter(t, config.FormatBoth, newTestResult("a.example"))

	rec := doRequest(router, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "blocklist_gen_runs_total") {
		t.Errorf("Expected blocklist metrics in output")
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t, config.FormatBoth, newTestResult("a.example"))

	if rec := doRequest(router, http.MethodGet, "/nope", nil); rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}
