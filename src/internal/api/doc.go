// Package api serves generated blocklists over HTTP.
//
// The serve command regenerates the blocklist and publishes each result as
// an immutable Snapshot through a SnapshotHolder; handlers only ever read
// the latest published snapshot.
//
// # Endpoints
//
//	GET /blocklist          domain-only blocklist (text/plain)
//	GET /blocklist.hosts    hosts-format blocklist (text/plain)
//	GET /api/v1/status      summary of the latest run (JSON)
//	GET /health             health checks (JSON)
//	GET /metrics            Prometheus metrics
//
// Blocklists return 503 until the first run has finished and 404 when the
// configured output format does not include them.
//
// # Response Format
//
// JSON responses wrap data in a "data" field:
//
//	{
//	  "data": { /* response payload */ }
//	}
//
// Error responses use the following format:
//
//	{
//	  "error": {
//	    "code": "not_ready",
//	    "message": "blocklist has not been generated yet"
//	  }
//	}
package api
