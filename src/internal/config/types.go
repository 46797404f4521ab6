package config

import (
	"path/filepath"
	"time"
)

// Settings is the optional blocklist-gen settings file.
type Settings struct {
	// General holds input and logging settings.
	General GeneralSettings `toml:"general" json:"general"`
	// Fetch controls how blocklist sources are downloaded.
	Fetch FetchSettings `toml:"fetch" json:"fetch"`
	// Output controls where and how the generated blocklists are written.
	Output OutputSettings `toml:"output" json:"output"`
	// Server holds settings of the serve command.
	Server ServerSettings `toml:"server" json:"server"`

	_absConfigFilePath string
}

type GeneralSettings struct {
	// URLsFile is the file with blocklist URLs, one per line (default: blocklist_urls.txt).
	URLsFile string `toml:"urls_file" json:"urls_file" validate:"required"`
	// LogFile is the file that receives a copy of every log message (default: log). Empty disables it.
	LogFile string `toml:"log_file" json:"log_file"`
	// Format selects the generated files: hosts, domains or both (default: both).
	Format string `toml:"format" json:"format" validate:"output_format"`
}

type FetchSettings struct {
	// TimeoutSeconds is the per-request download timeout (default: 10).
	TimeoutSeconds int `toml:"timeout_seconds" json:"timeout_seconds" validate:"min=1,max=3600"`
	// Concurrency is the number of sources downloaded at the same time (default: 1).
	Concurrency int `toml:"concurrency" json:"concurrency" validate:"min=1,max=64"`
	// UserAgent is sent with every download request.
	UserAgent string `toml:"user_agent" json:"user_agent" validate:"required"`
	// MaxBodyBytes limits the size of a downloaded list (0 = unlimited).
	MaxBodyBytes int64 `toml:"max_body_bytes" json:"max_body_bytes" validate:"min=0"`
}

type OutputSettings struct {
	// Dir is the output directory (default: current directory).
	Dir string `toml:"dir" json:"dir" validate:"required"`
	// HostsFile is the name of the hosts-format file (default: blocklist.hosts).
	HostsFile string `toml:"hosts_file" json:"hosts_file" validate:"required,file_name"`
	// DomainsFile is the name of the domain-only file (default: blocklist).
	DomainsFile string `toml:"domains_file" json:"domains_file" validate:"required,file_name"`
	// SinkholeAddress is the address written in front of every domain in the hosts file (default: 0.0.0.0).
	SinkholeAddress string `toml:"sinkhole_address" json:"sinkhole_address" validate:"required,ip"`
}

type ServerSettings struct {
	// ListenAddr is the HTTP listen address of the serve command (default: :8080).
	ListenAddr string `toml:"listen_addr" json:"listen_addr" validate:"hostport_or_empty"`
	// RefreshMinutes regenerates the blocklist periodically (0 = generate once).
	RefreshMinutes int `toml:"refresh_minutes" json:"refresh_minutes" validate:"min=0"`
}

// DefaultSettings returns the settings used when no settings file is given.
func DefaultSettings() *Settings {
	return &Settings{
		General: GeneralSettings{
			URLsFile: DefaultURLsFile,
			LogFile:  DefaultLogFile,
			Format:   FormatBoth.String(),
		},
		Fetch: FetchSettings{
			TimeoutSeconds: 10,
			Concurrency:    1,
			UserAgent:      DefaultUserAgent,
		},
		Output: OutputSettings{
			Dir:             ".",
			HostsFile:       DefaultHostsFile,
			DomainsFile:     DefaultDomainsFile,
			SinkholeAddress: DefaultSinkholeAddress,
		},
		Server: ServerSettings{
			ListenAddr: ":8080",
		},
	}
}

// GetConfigDir returns the directory of the loaded settings file, or an empty
// string for default settings.
func (s *Settings) GetConfigDir() string {
	if s._absConfigFilePath == "" {
		return ""
	}
	return filepath.Dir(s._absConfigFilePath)
}

// ResolvePath resolves a path from the settings file relative to its directory.
// Paths given on the command line are passed through unchanged.
func (s *Settings) ResolvePath(path string) string {
	if path == "" || s._absConfigFilePath == "" {
		return path
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.GetConfigDir(), path)
}

// Timeout returns the per-request download timeout.
func (f FetchSettings) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// RefreshInterval returns the regeneration interval of the serve command.
func (s ServerSettings) RefreshInterval() time.Duration {
	return time.Duration(s.RefreshMinutes) * time.Minute
}

// OutputFormat returns the parsed output format.
func (s *Settings) OutputFormat() (OutputFormat, error) {
	return ParseOutputFormat(s.General.Format)
}
