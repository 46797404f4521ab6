package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/keen-tools/blocklist-gen/src/internal/commands"
	"github.com/keen-tools/blocklist-gen/src/internal/config"
	"github.com/keen-tools/blocklist-gen/src/internal/errors"
	"github.com/keen-tools/blocklist-gen/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := &commands.AppContext{}
	var logFile string

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", "", "Path to optional settings file (TOML)")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")
	flag.StringVar(&logFile, "log-file", config.DefaultLogFile, "Path to log file (empty to disable)")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Blocklist Generator\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command> [command options] [urls_file]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  generate                Download blocklists and write blocklist.hosts and/or blocklist\n")
		fmt.Fprintf(os.Stderr, "  serve                   Generate blocklists and serve them over HTTP\n\n")
		fmt.Fprintf(os.Stderr, "urls_file defaults to %s\n\n", config.DefaultURLsFile)
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	// Settings are loaded with a console-only logger, the log file location may come from them
	bootstrap, err := log.New(log.Options{Verbose: ctx.Verbose})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	settings, err := commands.LoadSettings(ctx.ConfigPath, bootstrap)
	if err != nil {
		bootstrap.Errorf("Failed to load settings: %v", err)
		return 1
	}
	ctx.Settings = settings

	logFileSet := false
	flag.Visit(func(f *flag.Flag) {
		logFileSet = logFileSet || f.Name == "log-file"
	})
	if !logFileSet {
		logFile = settings.ResolvePath(settings.General.LogFile)
	}

	logger, err := log.New(log.Options{Verbose: ctx.Verbose, FilePath: logFile})
	if err != nil {
		bootstrap.Errorf("Failed to open log file: %v", err)
		return 1
	}
	defer logger.Close()
	ctx.Logger = logger

	cmds := []commands.Runner{
		commands.CreateGenerateCommand(),
		commands.CreateServeCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		return 1
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				if errors.IsConfigError(err) {
					logger.Errorf("Configuration error: %v", err)
				} else {
					logger.Errorf("Failed to initialize command: %v", err)
				}
				return 1
			}

			if err := cmd.Run(); err != nil {
				logger.Errorf("Failed to run command: %v", err)
				return 1
			}

			return 0
		}
	}

	logger.Errorf("Unknown subcommand: %s", subcommand)
	flag.Usage()
	return 1
}
