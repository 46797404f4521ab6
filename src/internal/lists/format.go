package lists

import "strings"

// ListFormat is the syntax family of a blocklist source.
type ListFormat uint8

const (
	// ListFormatHosts is a hosts-file style list ("0.0.0.0 domain" or bare domains).
	ListFormatHosts ListFormat = iota
	// ListFormatAdblock is an Adblock-Plus style filter list ("||domain^").
	ListFormatAdblock
)

var adblockMarkers = []string{"||", "@@", "!"}

func (f ListFormat) String() string {
	if f == ListFormatAdblock {
		return "adblock"
	}
	return "hosts"
}

// IsAdblockFormat reports whether any line starts with an Adblock-Plus marker
// ("||", "@@" or "!"). Lines are checked as given, without trimming.
// An empty list is not Adblock-style.
func IsAdblockFormat(lines []string) bool {
	for _, line := range lines {
		for _, marker := range adblockMarkers {
			if strings.HasPrefix(line, marker) {
				return true
			}
		}
	}
	return false
}

// DetectFormat classifies the raw lines of one source.
func DetectFormat(lines []string) ListFormat {
	if IsAdblockFormat(lines) {
		return ListFormatAdblock
	}
	return ListFormatHosts
}

// NormalizeStats summarizes how the lines of one source were handled.
type NormalizeStats struct {
	// Lines is the number of raw lines.
	Lines int
	// Extracted is the number of domains returned.
	Extracted int
	// Duplicates is the number of lines that repeated a domain already
	// extracted from the same source.
	Duplicates int
	// Discarded is the number of lines that yielded no domain
	// (blank, comments, exceptions and unrecognized syntax).
	Discarded int
}

// Normalize extracts domains from lines using the normalizer of format.
func Normalize(format ListFormat, lines []string) ([]string, NormalizeStats) {
	if format == ListFormatAdblock {
		return NormalizeAdblock(lines)
	}
	return NormalizeHosts(lines)
}
