package lists

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/keen-tools/blocklist-gen/src/internal/errors"
	"github.com/keen-tools/blocklist-gen/src/internal/hashing"
	"github.com/keen-tools/blocklist-gen/src/internal/log"
	"github.com/keen-tools/blocklist-gen/src/internal/utils"
)

const DefaultTimeout = 10 * time.Second

// Fetcher retrieves the raw lines of one blocklist source.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// FetchResult is the body of one downloaded source.
type FetchResult struct {
	// Lines is the body split into lines, without line terminators.
	Lines []string
	// Checksum is the MD5 of the body.
	Checksum string
	// Size is the body size in bytes.
	Size int64
}

type DownloaderOptions struct {
	// Timeout bounds each request, including reading the body (default: 10s).
	Timeout time.Duration
	// UserAgent is sent with every request. Empty keeps the Go default.
	UserAgent string
	// MaxBodyBytes rejects larger bodies (0 = unlimited).
	MaxBodyBytes int64
	// Client overrides the HTTP client. Its Timeout is left untouched.
	Client *http.Client
}

// Downloader fetches blocklist sources over HTTP. Failed downloads are not retried.
type Downloader struct {
	client       *http.Client
	timeout      time.Duration
	userAgent    string
	maxBodyBytes int64
	logger       *log.Logger
}

func NewDownloader(opts DownloaderOptions, logger *log.Logger) *Downloader {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	return &Downloader{
		client:       client,
		timeout:      timeout,
		userAgent:    opts.UserAgent,
		maxBodyBytes: opts.MaxBodyBytes,
		logger:       logger,
	}
}

// Fetch downloads url and splits the body into lines.
// Any non-2xx response is an error.
func (d *Downloader) Fetch(ctx context.Context, url string) (*FetchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewListError(fmt.Sprintf("invalid URL %s", url), err)
	}
	if d.userAgent != "" {
		req.Header.Set("User-Agent", d.userAgent)
	}

	d.logger.Debugf("Downloading list from URL: %s", url)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, errors.NewListError(fmt.Sprintf("failed to download %s", url), err)
	}
	defer utils.CloseOrWarn(resp.Body, d.logger)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewListError(fmt.Sprintf("failed to download %s", url), fmt.Errorf("unexpected status: %s", resp.Status))
	}

	var body io.Reader = resp.Body
	if d.maxBodyBytes > 0 {
		body = io.LimitReader(resp.Body, d.maxBodyBytes+1)
	}
	bodyProxy := hashing.NewMD5ReaderProxy(body)

	content, err := io.ReadAll(bodyProxy)
	if err != nil {
		return nil, errors.NewListError(fmt.Sprintf("failed to read response from %s", url), err)
	}
	if d.maxBodyBytes > 0 && int64(len(content)) > d.maxBodyBytes {
		return nil, errors.NewListError(fmt.Sprintf("failed to download %s", url),
			fmt.Errorf("body exceeds %d bytes", d.maxBodyBytes))
	}

	checksum, err := bodyProxy.GetChecksum()
	if err != nil {
		return nil, errors.NewInternalError("failed to calculate list checksum", err)
	}

	return &FetchResult{
		Lines:    SplitLines(string(content)),
		Checksum: checksum,
		Size:     bodyProxy.Size(),
	}, nil
}

// SplitLines splits text on '\n' and drops a trailing '\r' from every line.
// A final line terminator does not produce an empty last line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
