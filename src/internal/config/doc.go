// Package config loads blocklist-gen settings and the blocklist URL file.
//
// Settings are optional and read from a TOML file. Every key has a default,
// so an empty or missing section behaves exactly like running without a
// settings file. Settings are validated with go-playground/validator and all
// problems are reported at once as ValidationErrors.
//
// Example settings file:
//
//	[general]
//	urls_file = "blocklist_urls.txt"
//	format = "both"
//
//	[fetch]
//	timeout_seconds = 10
//	concurrency = 4
//
//	[output]
//	dir = "/var/lib/blocklist-gen"
//	sinkhole_address = "0.0.0.0"
//
// The URL file contains one blocklist URL per line. Blank lines and lines
// starting with '#' are ignored.
package config
