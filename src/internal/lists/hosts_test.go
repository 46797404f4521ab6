package lists

import (
	"reflect"
	"testing"
)

func TestNormalizeHosts_Lines(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"sinkhole entry", "0.0.0.0 tracker.example.com", []string{"tracker.example.com"}},
		{"loopback entry", "127.0.0.1\tads.example.net", []string{"ads.example.net"}},
		{"comment", "# comment", nil},
		{"indented comment", "   # indented", nil},
		{"bare domain", "bare.example.com", []string{"bare.example.com"}},
		{"extra tokens", "0.0.0.0 a.example b.example # trailing", []string{"a.example"}},
		{"whitespace only", " \t ", nil},
		{"crlf remains trimmed", "0.0.0.0 crlf.example\r", []string{"crlf.example"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domains, _ := NormalizeHosts([]string{tt.line})
			if len(tt.want) == 0 && len(domains) == 0 {
				return
			}
			if !reflect.DeepEqual(domains, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, domains)
			}
		})
	}
}

func TestNormalizeHosts_KeepsDuplicates(t *testing.T) {
	lines := []string{
		"# StevenBlack hosts",
		"",
		"0.0.0.0 dup.example.com",
		"0.0.0.0 dup.example.com",
		"localhost",
	}

	domains, stats := NormalizeHosts(lines)

	expected := []string{"dup.example.com", "dup.example.com", "localhost"}
	if !reflect.DeepEqual(domains, expected) {
		t.Errorf("Expected %v, got %v", expected, domains)
	}

	wantStats := NormalizeStats{Lines: 5, Extracted: 3, Discarded: 2}
	if stats != wantStats {
		t.Errorf("Expected stats %+v, got %+v", wantStats, stats)
	}
}
