package utils

import (
	"strings"

	"github.com/miekg/dns"
)

// IsDNSName reports whether name is a syntactically valid DNS domain name
// with at least two labels.
func IsDNSName(name string) bool {
	if name == "" || strings.ContainsAny(name, " \t/:*") {
		return false
	}
	if _, ok := dns.IsDomainName(name); !ok {
		return false
	}
	return dns.CountLabel(name) >= 2
}
