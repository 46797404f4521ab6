package lists

import "strings"

// NormalizeHosts extracts domains from hosts-file style lines.
//
// Blank lines and '#' comments are skipped. A line with two or more
// whitespace-separated tokens yields its second token ("0.0.0.0 example.com"),
// a single-token line yields the token itself. Duplicates are kept.
func NormalizeHosts(lines []string) ([]string, NormalizeStats) {
	stats := NormalizeStats{Lines: len(lines)}
	domains := make([]string, 0, len(lines))

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			stats.Discarded++
			continue
		}

		fields := strings.Fields(line)
		if len(fields) >= 2 {
			domains = append(domains, fields[1])
		} else {
			domains = append(domains, fields[0])
		}
	}

	stats.Extracted = len(domains)
	return domains, stats
}
