package config

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/keen-tools/blocklist-gen/src/internal/errors"
	"github.com/keen-tools/blocklist-gen/src/internal/log"
)

const (
	DefaultURLsFile        = "blocklist_urls.txt"
	DefaultLogFile         = "log"
	DefaultHostsFile       = "blocklist.hosts"
	DefaultDomainsFile     = "blocklist"
	DefaultSinkholeAddress = "0.0.0.0"
	DefaultUserAgent       = "blocklist-gen/1.0"
)

// LoadSettings reads a TOML settings file on top of DefaultSettings.
// Keys missing from the file keep their default values.
func LoadSettings(settingsPath string, logger *log.Logger) (*Settings, error) {
	settingsFile := filepath.Clean(settingsPath)

	if !filepath.IsAbs(settingsFile) {
		if path, err := filepath.Abs(settingsFile); err != nil {
			return nil, errors.NewConfigError("failed to get absolute path", err)
		} else {
			settingsFile = path
		}
	}

	content, err := os.ReadFile(settingsFile)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.NewConfigError(fmt.Sprintf("settings file not found: %s", settingsFile), nil)
		}
		return nil, errors.NewConfigError("failed to read settings file", err)
	}

	settings := DefaultSettings()
	if err := toml.Unmarshal(content, settings); err != nil {
		var derr *toml.DecodeError
		if stderrors.As(err, &derr) {
			logger.Errorf("%s", derr.String())
			row, col := derr.Position()
			logger.Errorf("Error at line %d, column %d", row, col)
			return nil, errors.NewConfigError("failed to parse settings file", derr)
		}
		return nil, errors.NewConfigError("failed to parse settings file", err)
	}

	settings._absConfigFilePath = settingsFile
	logger.Debugf("Settings file path: %s", settingsFile)

	return settings, nil
}

// LoadSourceURLs reads the blocklist URL file. Each line is trimmed; blank
// lines and lines starting with '#' are skipped. A missing file or a file
// without URLs is a configuration error.
func LoadSourceURLs(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.NewConfigError(fmt.Sprintf("URL file not found: %s", path), nil)
		}
		return nil, errors.NewConfigError(fmt.Sprintf("failed to open URL file %s", path), err)
	}
	defer file.Close()

	var urls []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to read URL file %s", path), err)
	}

	if len(urls) == 0 {
		return nil, errors.NewConfigError(fmt.Sprintf("no blocklist URLs found in %s", path), nil)
	}

	return urls, nil
}
