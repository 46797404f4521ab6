package lists

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/keen-tools/blocklist-gen/src/internal/errors"
	"github.com/keen-tools/blocklist-gen/src/internal/log"
	"github.com/keen-tools/blocklist-gen/src/internal/metrics"
	"github.com/keen-tools/blocklist-gen/src/internal/utils"
)

// SourceReport is the outcome of processing one source.
type SourceReport struct {
	URL    string
	Format ListFormat
	// Lines is the number of raw lines fetched.
	Lines     int
	Extracted int
	Discarded int
	// Added is the number of domains that were not already collected
	// from an earlier source.
	Added int
	// InvalidNames counts extracted entries that are not valid DNS names.
	// They are kept.
	InvalidNames int
	Checksum     string
	Size         int64
	// Error is set when the source could not be downloaded.
	Error    string
	Duration time.Duration
}

// Failed reports whether the source could not be downloaded.
func (r SourceReport) Failed() bool {
	return r.Error != ""
}

// RunResult is the outcome of one aggregation run.
type RunResult struct {
	Domains    *DomainStore
	Sources    []SourceReport
	StartedAt  time.Time
	FinishedAt time.Time
}

// Count returns the number of unique domains.
func (r *RunResult) Count() int {
	return r.Domains.Count()
}

// FailedSources returns the number of sources that could not be downloaded.
func (r *RunResult) FailedSources() int {
	failed := 0
	for _, source := range r.Sources {
		if source.Failed() {
			failed++
		}
	}
	return failed
}

type AggregatorOptions struct {
	// Concurrency is the number of sources downloaded at the same time (default: 1).
	Concurrency int
	// Metrics receives per-source and per-run observations. May be nil.
	Metrics *metrics.Metrics
}

// Aggregator downloads all sources, normalizes them and merges the result
// into one set of unique domains.
type Aggregator struct {
	fetcher     Fetcher
	logger      *log.Logger
	metrics     *metrics.Metrics
	concurrency int
	now         func() time.Time
}

func NewAggregator(fetcher Fetcher, logger *log.Logger, opts AggregatorOptions) *Aggregator {
	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &Aggregator{
		fetcher:     fetcher,
		logger:      logger,
		metrics:     opts.Metrics,
		concurrency: concurrency,
		now:         time.Now,
	}
}

type sourceOutcome struct {
	report  SourceReport
	domains []string
}

// Run processes urls and returns the merged domains. A source that fails to
// download is logged and contributes nothing. An empty url list is a
// configuration error. Run only fails otherwise when ctx is canceled.
func (a *Aggregator) Run(ctx context.Context, urls []string) (*RunResult, error) {
	if len(urls) == 0 {
		return nil, errors.NewConfigError("no blocklists to download", nil)
	}

	result := &RunResult{
		Domains:   CreateDomainStore(),
		Sources:   make([]SourceReport, 0, len(urls)),
		StartedAt: a.now(),
	}

	a.logger.Infof("Downloading %d blocklists ...", len(urls))

	if a.concurrency == 1 {
		for i, url := range urls {
			if err := ctx.Err(); err != nil {
				return nil, a.abort(result, err)
			}
			a.fold(result, i, len(urls), a.processSource(ctx, url))
		}
	} else {
		outcomes := make([]sourceOutcome, len(urls))

		var g errgroup.Group
		g.SetLimit(a.concurrency)
		for i, url := range urls {
			i, url := i, url
			g.Go(func() error {
				outcomes[i] = a.processSource(ctx, url)
				return nil
			})
		}
		_ = g.Wait()

		if err := ctx.Err(); err != nil {
			return nil, a.abort(result, err)
		}
		for i := range outcomes {
			a.fold(result, i, len(urls), outcomes[i])
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, a.abort(result, err)
	}

	result.FinishedAt = a.now()
	a.logger.Infof("%d unique entries after removing duplicates.", result.Count())
	if failed := result.FailedSources(); failed > 0 {
		a.logger.Warnf("%d of %d blocklists could not be downloaded", failed, len(urls))
	}
	a.metrics.ObserveRun(true, result.Count(), result.FinishedAt, result.FinishedAt.Sub(result.StartedAt))

	return result, nil
}

func (a *Aggregator) abort(result *RunResult, err error) error {
	finished := a.now()
	a.metrics.ObserveRun(false, 0, finished, finished.Sub(result.StartedAt))
	return errors.NewInternalError("blocklist generation interrupted", err)
}

// processSource downloads and normalizes one source. It does not touch
// shared state, so it may run concurrently.
func (a *Aggregator) processSource(ctx context.Context, url string) sourceOutcome {
	started := a.now()
	report := SourceReport{URL: url}

	fetched, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		report.Error = err.Error()
		report.Duration = a.now().Sub(started)
		return sourceOutcome{report: report}
	}

	report.Format = DetectFormat(fetched.Lines)
	domains, stats := Normalize(report.Format, fetched.Lines)

	report.Lines = stats.Lines
	report.Extracted = stats.Extracted
	report.Discarded = stats.Discarded
	report.Checksum = fetched.Checksum
	report.Size = fetched.Size
	for _, domain := range domains {
		if !utils.IsDNSName(domain) {
			report.InvalidNames++
		}
	}
	report.Duration = a.now().Sub(started)

	return sourceOutcome{report: report, domains: domains}
}

// fold merges one outcome into the result. Outcomes are folded in input order.
func (a *Aggregator) fold(result *RunResult, index, total int, outcome sourceOutcome) {
	report := outcome.report

	if report.Failed() {
		a.logger.Warnf("[%d/%d] Skipping %s: %s", index+1, total, report.URL, report.Error)
	} else {
		report.Added = result.Domains.AddAll(outcome.domains)
		a.logger.Infof("[%d/%d] %s: %d entries (%s format, %d new)",
			index+1, total, report.URL, report.Extracted, report.Format, report.Added)
		a.logger.Debugf("[%d/%d] %d lines, %d discarded, %d not valid DNS names, %d bytes, md5 %s",
			index+1, total, report.Lines, report.Discarded, report.InvalidNames, report.Size, report.Checksum)
	}

	a.metrics.ObserveSource(!report.Failed(), report.Extracted, report.Duration)
	result.Sources = append(result.Sources, report)
}
