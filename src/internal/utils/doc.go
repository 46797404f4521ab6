// Package utils provides small helpers shared across blocklist-gen.
//
//   - CloseOrWarn closes a response body or file and logs a warning on failure
//   - IsDNSName checks whether an extracted entry looks like a DNS name
package utils
