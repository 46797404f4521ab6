package lists

import "sort"

// DomainStore is the set of unique domains collected during one run.
// Domains are compared exactly as given. It is not safe for concurrent use;
// the Aggregator is its only writer.
type DomainStore struct {
	domains map[string]struct{}
}

// CreateDomainStore returns an empty store.
func CreateDomainStore() *DomainStore {
	return &DomainStore{
		domains: make(map[string]struct{}),
	}
}

// Add inserts a domain and reports whether it was not present before.
func (s *DomainStore) Add(domain string) bool {
	if _, ok := s.domains[domain]; ok {
		return false
	}
	s.domains[domain] = struct{}{}
	return true
}

// AddAll inserts every domain and returns how many of them were new.
func (s *DomainStore) AddAll(domains []string) int {
	added := 0
	for _, domain := range domains {
		if s.Add(domain) {
			added++
		}
	}
	return added
}

// Contains reports whether domain was added.
func (s *DomainStore) Contains(domain string) bool {
	_, ok := s.domains[domain]
	return ok
}

// Count returns the number of unique domains.
func (s *DomainStore) Count() int {
	return len(s.domains)
}

// Sorted returns all domains in ascending order.
func (s *DomainStore) Sorted() []string {
	result := make([]string, 0, len(s.domains))
	for domain := range s.domains {
		result = append(result, domain)
	}
	sort.Strings(result)
	return result
}
