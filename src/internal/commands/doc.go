// Package commands implements CLI command handlers for blocklist-gen.
//
// Each command implements the Runner interface:
//   - Init(): Parse arguments, apply them on top of the settings and validate
//   - Run(): Execute the command
//   - Name(): Return command name for routing
//
// # Available Commands
//
//   - generate: Download all blocklists once and write the merged files
//   - serve: Generate the blocklist and serve it over HTTP, optionally
//     regenerating it periodically
//
// Configuration problems (missing or empty URL file, invalid format, invalid
// settings) are returned from Init as CONFIG_ERROR or VALIDATION_ERROR before
// any blocklist is downloaded.
package commands
