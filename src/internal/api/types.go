package api

import "time"

// DataResponse wraps successful responses with a "data" field.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// StatusResponse describes the latest generated blocklist.
type StatusResponse struct {
	Ready         bool           `json:"ready"`
	Format        string         `json:"format"`
	Count         int            `json:"count"`
	GeneratedAt   *time.Time     `json:"generated_at,omitempty"`
	DurationMs    int64          `json:"duration_ms"`
	FailedSources int            `json:"failed_sources"`
	HostsMD5      string         `json:"hosts_md5,omitempty"`
	DomainsMD5    string         `json:"domains_md5,omitempty"`
	Sources       []SourceStatus `json:"sources"`
}

// SourceStatus is the outcome of one source in the latest run.
type SourceStatus struct {
	URL          string `json:"url"`
	Format       string `json:"format,omitempty"`
	Lines        int    `json:"lines"`
	Extracted    int    `json:"extracted"`
	Discarded    int    `json:"discarded"`
	Added        int    `json:"added"`
	InvalidNames int    `json:"invalid_names"`
	MD5          string `json:"md5,omitempty"`
	Error        string `json:"error,omitempty"`
	DurationMs   int64  `json:"duration_ms"`
}

// HealthCheckResponse contains health check results.
type HealthCheckResponse struct {
	Healthy bool                   `json:"healthy"`
	Checks  map[string]CheckResult `json:"checks"`
}

// CheckResult contains the result of a single health check.
type CheckResult struct {
	Passed  bool   `json:"passed"`
	Message string `json:"message,omitempty"`
}
