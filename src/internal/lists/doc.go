// Package lists turns remote blocklists into one deduplicated set of domains.
//
// A run goes through these stages for every source URL:
//
//   - Downloader fetches the body and splits it into lines
//   - DetectFormat classifies the lines as Adblock-Plus or hosts style
//   - NormalizeAdblock or NormalizeHosts extracts one domain per usable line
//   - Aggregator merges the domains of all sources into a DomainStore
//
// BlocklistWriter then writes the set as a hosts file ("0.0.0.0 domain"),
// a domain-only file, or both.
//
// A source that cannot be downloaded is logged and skipped; it never aborts
// the run. Lines that do not match the expected syntax are dropped without
// further validation.
//
// # Example Usage
//
//	downloader := lists.NewDownloader(lists.DownloaderOptions{Timeout: 10 * time.Second}, logger)
//	aggregator := lists.NewAggregator(downloader, logger, lists.AggregatorOptions{})
//
//	result, err := aggregator.Run(ctx, urls)
//	if err != nil {
//	    return err
//	}
//
//	writer := lists.NewBlocklistWriter(lists.WriterOptions{Dir: "."}, logger)
//	_, err = writer.WriteBlocklist(result.Domains, config.FormatBoth)
package lists
