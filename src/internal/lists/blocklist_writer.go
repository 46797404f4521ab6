package lists

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/valyala/fasttemplate"

	"github.com/keen-tools/blocklist-gen/src/internal/config"
	"github.com/keen-tools/blocklist-gen/src/internal/errors"
	"github.com/keen-tools/blocklist-gen/src/internal/hashing"
	"github.com/keen-tools/blocklist-gen/src/internal/log"
)

const (
	HOSTS_TMPL_ADDRESS = "address"
	HOSTS_TMPL_DOMAIN  = "domain"

	hostsLineTemplate = "{{" + HOSTS_TMPL_ADDRESS + "}} {{" + HOSTS_TMPL_DOMAIN + "}}"
)

var hostsTemplate = fasttemplate.New(hostsLineTemplate, "{{", "}}")

// RenderHosts writes one "<address> <domain>" line per domain. Lines are
// separated by '\n' with no trailing newline.
func RenderHosts(w io.Writer, domains []string, address string) error {
	if address == "" {
		address = config.DefaultSinkholeAddress
	}
	return renderLines(w, domains, func(w io.Writer, domain string) error {
		_, err := hostsTemplate.ExecuteFunc(w, func(w io.Writer, tag string) (int, error) {
			switch tag {
			case HOSTS_TMPL_ADDRESS:
				return io.WriteString(w, address)
			case HOSTS_TMPL_DOMAIN:
				return io.WriteString(w, domain)
			default:
				return 0, fmt.Errorf("unknown template tag: %s", tag)
			}
		})
		return err
	})
}

// RenderDomains writes one bare domain per line, separated by '\n' with no
// trailing newline.
func RenderDomains(w io.Writer, domains []string) error {
	return renderLines(w, domains, func(w io.Writer, domain string) error {
		_, err := io.WriteString(w, domain)
		return err
	})
}

func renderLines(w io.Writer, domains []string, line func(io.Writer, string) error) error {
	buffer := bufio.NewWriter(w)
	for i, domain := range domains {
		if i > 0 {
			if err := buffer.WriteByte('\n'); err != nil {
				return err
			}
		}
		if err := line(buffer, domain); err != nil {
			return err
		}
	}
	return buffer.Flush()
}

type WriterOptions struct {
	// Dir is the output directory (default: current directory).
	Dir string
	// HostsFile is the hosts-format file name (default: blocklist.hosts).
	HostsFile string
	// DomainsFile is the domain-only file name (default: blocklist).
	DomainsFile string
	// SinkholeAddress prefixes every hosts line (default: 0.0.0.0).
	SinkholeAddress string
}

// Artifact describes one written blocklist file.
type Artifact struct {
	Path     string
	Entries  int
	Size     int64
	Checksum string
}

// BlocklistWriter writes the collected domains to the output files.
type BlocklistWriter struct {
	opts   WriterOptions
	logger *log.Logger
}

func NewBlocklistWriter(opts WriterOptions, logger *log.Logger) *BlocklistWriter {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.HostsFile == "" {
		opts.HostsFile = config.DefaultHostsFile
	}
	if opts.DomainsFile == "" {
		opts.DomainsFile = config.DefaultDomainsFile
	}
	if opts.SinkholeAddress == "" {
		opts.SinkholeAddress = config.DefaultSinkholeAddress
	}
	return &BlocklistWriter{opts: opts, logger: logger}
}

// HostsPath returns the path of the hosts-format file.
func (bw *BlocklistWriter) HostsPath() string {
	return filepath.Join(bw.opts.Dir, bw.opts.HostsFile)
}

// DomainsPath returns the path of the domain-only file.
func (bw *BlocklistWriter) DomainsPath() string {
	return filepath.Join(bw.opts.Dir, bw.opts.DomainsFile)
}

// WriteBlocklist writes the files selected by format, replacing any previous
// content. Domains are written in ascending order.
func (bw *BlocklistWriter) WriteBlocklist(store *DomainStore, format config.OutputFormat) ([]Artifact, error) {
	if err := os.MkdirAll(bw.opts.Dir, 0755); err != nil {
		return nil, errors.NewOutputError(fmt.Sprintf("failed to create output directory %s", bw.opts.Dir), err)
	}

	domains := store.Sorted()
	var artifacts []Artifact

	if format.IncludesHosts() {
		artifact, err := bw.writeFile(bw.HostsPath(), len(domains), func(w io.Writer) error {
			return RenderHosts(w, domains, bw.opts.SinkholeAddress)
		})
		if err != nil {
			return artifacts, err
		}
		artifacts = append(artifacts, artifact)
	}

	if format.IncludesDomains() {
		artifact, err := bw.writeFile(bw.DomainsPath(), len(domains), func(w io.Writer) error {
			return RenderDomains(w, domains)
		})
		if err != nil {
			return artifacts, err
		}
		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}

func (bw *BlocklistWriter) writeFile(path string, entries int, render func(io.Writer) error) (Artifact, error) {
	file, err := os.Create(path)
	if err != nil {
		return Artifact{}, errors.NewOutputError(fmt.Sprintf("failed to create %s", path), err)
	}

	proxy := hashing.NewMD5WriterProxy(file)
	if err := render(proxy); err != nil {
		_ = file.Close()
		return Artifact{}, errors.NewOutputError(fmt.Sprintf("failed to write %s", path), err)
	}
	if err := file.Close(); err != nil {
		return Artifact{}, errors.NewOutputError(fmt.Sprintf("failed to write %s", path), err)
	}

	checksum, err := proxy.GetChecksum()
	if err != nil {
		return Artifact{}, errors.NewInternalError("failed to calculate blocklist checksum", err)
	}

	bw.logger.Infof("Blocklist saved to %s (%d entries, md5 %s)", path, entries, checksum)

	return Artifact{
		Path:     path,
		Entries:  entries,
		Size:     proxy.Size(),
		Checksum: checksum,
	}, nil
}
