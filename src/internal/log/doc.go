// Package log provides simple leveled logging for blocklist-gen.
//
// A Logger writes every message to the console and, when a file path is
// given, appends the same message to a log file. Console lines carry ANSI
// colored level prefixes; file lines are plain text.
//
// # Log Levels
//
//   - DEBUG: Detailed diagnostic information (only shown in verbose mode)
//   - INFO: General informational messages
//   - WARN: Warning messages, e.g. a blocklist source that could not be fetched
//   - ERROR: Error messages, written to stderr
//
// # Example Usage
//
//	logger, err := log.New(log.Options{FilePath: "log", Verbose: true})
//	if err != nil {
//	    panic(err)
//	}
//	defer logger.Close()
//
//	logger.Infof("Loaded %d blocklist URLs", len(urls))
//	logger.Debugf("Discarded %d lines", discarded)
//
// Components receive the *Logger they should use; tests pass log.Discard().
package log
