package api

import (
	"bytes"
	"io"
	"sync/atomic"

	"github.com/keen-tools/blocklist-gen/src/internal/config"
	"github.com/keen-tools/blocklist-gen/src/internal/hashing"
	"github.com/keen-tools/blocklist-gen/src/internal/lists"
)

// Snapshot is one generated blocklist, rendered and ready to be served.
// It is never modified after creation.
type Snapshot struct {
	Format          config.OutputFormat
	Result          *lists.RunResult
	Hosts           []byte
	HostsChecksum   string
	Domains         []byte
	DomainsChecksum string
}

// NewSnapshot renders the artifacts selected by format.
func NewSnapshot(result *lists.RunResult, format config.OutputFormat, sinkholeAddress string) (*Snapshot, error) {
	s := &Snapshot{Format: format, Result: result}
	domains := result.Domains.Sorted()

	if format.IncludesHosts() {
		content, checksum, err := render(func(w io.Writer) error {
			return lists.RenderHosts(w, domains, sinkholeAddress)
		})
		if err != nil {
			return nil, err
		}
		s.Hosts, s.HostsChecksum = content, checksum
	}

	if format.IncludesDomains() {
		content, checksum, err := render(func(w io.Writer) error {
			return lists.RenderDomains(w, domains)
		})
		if err != nil {
			return nil, err
		}
		s.Domains, s.DomainsChecksum = content, checksum
	}

	return s, nil
}

func render(fn func(io.Writer) error) ([]byte, string, error) {
	var buf bytes.Buffer
	proxy := hashing.NewMD5WriterProxy(&buf)
	if err := fn(proxy); err != nil {
		return nil, "", err
	}
	checksum, err := proxy.GetChecksum()
	if err != nil {
		return nil, "", err
	}
	return buf.Bytes(), checksum, nil
}

// SnapshotHolder publishes the latest Snapshot to concurrent readers.
type SnapshotHolder struct {
	current atomic.Pointer[Snapshot]
}

// Load returns the latest snapshot, or nil before the first one is stored.
func (h *SnapshotHolder) Load() *Snapshot {
	return h.current.Load()
}

// Store replaces the latest snapshot and returns the previous one.
func (h *SnapshotHolder) Store(s *Snapshot) *Snapshot {
	return h.current.Swap(s)
}
