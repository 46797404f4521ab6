package config

import (
	"fmt"
	"strings"

	"github.com/keen-tools/blocklist-gen/src/internal/errors"
)

// OutputFormat selects which blocklist files are generated.
type OutputFormat uint8

const (
	FormatHosts OutputFormat = iota + 1
	FormatDomains
	FormatBoth
)

// ParseOutputFormat parses a format name or one of the numeric codes
// 1 (hosts), 2 (domains) and 3 (both).
func ParseOutputFormat(value string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "hosts", "1":
		return FormatHosts, nil
	case "domains", "domain-only", "2":
		return FormatDomains, nil
	case "both", "3":
		return FormatBoth, nil
	}
	return 0, errors.NewConfigError(
		fmt.Sprintf("invalid output format %q (expected hosts, domains, both, 1, 2 or 3)", value), nil)
}

func (f OutputFormat) String() string {
	switch f {
	case FormatHosts:
		return "hosts"
	case FormatDomains:
		return "domains"
	case FormatBoth:
		return "both"
	default:
		return fmt.Sprintf("OutputFormat(%d)", uint8(f))
	}
}

// IncludesHosts reports whether the hosts-format file is generated.
func (f OutputFormat) IncludesHosts() bool {
	return f == FormatHosts || f == FormatBoth
}

// IncludesDomains reports whether the domain-only file is generated.
func (f OutputFormat) IncludesDomains() bool {
	return f == FormatDomains || f == FormatBoth
}
