package lists

import "strings"

// NormalizeAdblock extracts domains from Adblock-Plus style lines.
//
// Only network rules of the form "||domain^..." produce a domain: the text
// before the first "^" with all leading '|' removed. Comments ("!"), exception
// rules ("@@") and every other rule shape are dropped. Each domain is
// returned once, in the order it was first seen.
func NormalizeAdblock(lines []string) ([]string, NormalizeStats) {
	stats := NormalizeStats{Lines: len(lines)}
	seen := make(map[string]struct{})
	domains := make([]string, 0, len(lines))

	for _, raw := range lines {
		domain, ok := parseAdblockLine(raw)
		if !ok {
			stats.Discarded++
			continue
		}
		if _, exists := seen[domain]; exists {
			stats.Duplicates++
			continue
		}
		seen[domain] = struct{}{}
		domains = append(domains, domain)
	}

	stats.Extracted = len(domains)
	return domains, stats
}

func parseAdblockLine(raw string) (string, bool) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "!") || strings.HasPrefix(line, "@@") {
		return "", false
	}
	if !strings.HasPrefix(line, "||") {
		return "", false
	}

	caret := strings.Index(line, "^")
	if caret < 0 {
		return "", false
	}

	domain := strings.TrimLeft(line[:caret], "|")
	if domain == "" {
		return "", false
	}
	return domain, true
}
