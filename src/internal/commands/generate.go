package commands

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
)

func CreateGenerateCommand() *GenerateCommand {
	gc := &GenerateCommand{
		fs: flag.NewFlagSet("generate", flag.ExitOnError),
	}
	gc.flags = registerGenerateFlags(gc.fs)
	return gc
}

// GenerateCommand downloads all blocklists once and writes the merged result.
type GenerateCommand struct {
	fs       *flag.FlagSet
	flags    *generateFlags
	pipeline *pipeline
}

func (g *GenerateCommand) Name() string {
	return g.fs.Name()
}

func (g *GenerateCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	p, err := newPipeline(g.fs, g.flags, ctx, nil)
	if err != nil {
		return err
	}
	g.pipeline = p

	// Fail on a missing or empty URL file before anything is downloaded
	_, err = p.loadURLs()
	return err
}

func (g *GenerateCommand) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return g.run(ctx)
}

func (g *GenerateCommand) run(ctx context.Context) error {
	p := g.pipeline

	result, err := p.generate(ctx)
	if err != nil {
		return err
	}

	if _, err := p.writer().WriteBlocklist(result.Domains, p.format); err != nil {
		return err
	}

	p.logger.Infof("The final blocklist contains %d entries.", result.Count())
	return nil
}
