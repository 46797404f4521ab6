package commands

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/keen-tools/blocklist-gen/src/internal/config"
	"github.com/keen-tools/blocklist-gen/src/internal/errors"
	"github.com/keen-tools/blocklist-gen/src/internal/lists"
	"github.com/keen-tools/blocklist-gen/src/internal/log"
	"github.com/keen-tools/blocklist-gen/src/internal/metrics"
)

// generateFlags are the flags shared by generate and serve.
type generateFlags struct {
	format      string
	outputDir   string
	timeout     time.Duration
	concurrency int
}

func registerGenerateFlags(fs *flag.FlagSet) *generateFlags {
	f := &generateFlags{}
	fs.StringVar(&f.format, "format", "", "Output format: hosts, domains or both (also 1, 2, 3) (default \"both\")")
	fs.StringVar(&f.outputDir, "output-dir", "", "Directory for generated blocklists (default \".\")")
	fs.DurationVar(&f.timeout, "timeout", 0, "Download timeout per blocklist (default 10s)")
	fs.IntVar(&f.concurrency, "concurrency", 0, "Number of blocklists downloaded in parallel (default 1)")
	return f
}

// pipeline downloads, normalizes and merges all blocklists of the URL file.
type pipeline struct {
	settings   *config.Settings
	format     config.OutputFormat
	urlsFile   string
	outputDir  string
	timeout    time.Duration
	logger     *log.Logger
	aggregator *lists.Aggregator
}

// newPipeline applies the command-line flags on top of the settings and
// validates the result. Every problem is reported as a configuration error
// before any network activity.
func newPipeline(fs *flag.FlagSet, flags *generateFlags, ctx *AppContext, m *metrics.Metrics) (*pipeline, error) {
	settings := *ctx.Settings
	urlsFile := settings.ResolvePath(settings.General.URLsFile)
	outputDir := settings.ResolvePath(settings.Output.Dir)
	timeout := settings.Fetch.Timeout()

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			settings.General.Format = flags.format
		case "output-dir":
			outputDir = flags.outputDir
			settings.Output.Dir = flags.outputDir
		case "concurrency":
			settings.Fetch.Concurrency = flags.concurrency
		case "timeout":
			if flags.timeout <= 0 {
				flagErr = errors.NewConfigError(fmt.Sprintf("invalid timeout %s", flags.timeout), nil)
			}
			timeout = flags.timeout
		}
	})
	if flagErr != nil {
		return nil, flagErr
	}

	switch fs.NArg() {
	case 0:
	case 1:
		urlsFile = fs.Arg(0)
	default:
		return nil, errors.NewConfigError(fmt.Sprintf("unexpected arguments: %v", fs.Args()[1:]), nil)
	}

	format, err := settings.OutputFormat()
	if err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	logger := ctx.Logger
	downloader := lists.NewDownloader(lists.DownloaderOptions{
		Timeout:      timeout,
		UserAgent:    settings.Fetch.UserAgent,
		MaxBodyBytes: settings.Fetch.MaxBodyBytes,
	}, logger)

	return &pipeline{
		settings:  &settings,
		format:    format,
		urlsFile:  urlsFile,
		outputDir: outputDir,
		timeout:   timeout,
		logger:    logger,
		aggregator: lists.NewAggregator(downloader, logger, lists.AggregatorOptions{
			Concurrency: settings.Fetch.Concurrency,
			Metrics:     m,
		}),
	}, nil
}

// loadURLs reads the URL file.
func (p *pipeline) loadURLs() ([]string, error) {
	urls, err := config.LoadSourceURLs(p.urlsFile)
	if err != nil {
		return nil, err
	}
	p.logger.Debugf("Loaded %d blocklist URLs from %s", len(urls), p.urlsFile)
	return urls, nil
}

// generate runs one aggregation over the current content of the URL file.
func (p *pipeline) generate(ctx context.Context) (*lists.RunResult, error) {
	urls, err := p.loadURLs()
	if err != nil {
		return nil, err
	}
	return p.aggregator.Run(ctx, urls)
}

func (p *pipeline) writer() *lists.BlocklistWriter {
	return lists.NewBlocklistWriter(lists.WriterOptions{
		Dir:             p.outputDir,
		HostsFile:       p.settings.Output.HostsFile,
		DomainsFile:     p.settings.Output.DomainsFile,
		SinkholeAddress: p.settings.Output.SinkholeAddress,
	}, p.logger)
}
