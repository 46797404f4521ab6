package commands

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/keen-tools/blocklist-gen/src/internal/api"
	"github.com/keen-tools/blocklist-gen/src/internal/errors"
	"github.com/keen-tools/blocklist-gen/src/internal/metrics"
)

const shutdownTimeout = 30 * time.Second

func CreateServeCommand() *ServeCommand {
	sc := &ServeCommand{
		fs: flag.NewFlagSet("serve", flag.ExitOnError),
	}
	sc.flags = registerGenerateFlags(sc.fs)
	sc.fs.StringVar(&sc.listenAddr, "listen", "", "HTTP listen address (default \":8080\")")
	sc.fs.DurationVar(&sc.refresh, "refresh", 0, "Regenerate the blocklist at this interval (default: never)")
	return sc
}

// ServeCommand generates the blocklist and serves it over HTTP,
// optionally regenerating it periodically.
type ServeCommand struct {
	fs         *flag.FlagSet
	flags      *generateFlags
	listenAddr string
	refresh    time.Duration

	pipeline *pipeline
	metrics  *metrics.Metrics
	holder   *api.SnapshotHolder
}

func (s *ServeCommand) Name() string {
	return s.fs.Name()
}

func (s *ServeCommand) Init(args []string, ctx *AppContext) error {
	if err := s.fs.Parse(args); err != nil {
		return err
	}

	s.metrics = metrics.New()
	p, err := newPipeline(s.fs, s.flags, ctx, s.metrics)
	if err != nil {
		return err
	}
	s.pipeline = p
	s.holder = &api.SnapshotHolder{}

	listenSet, refreshSet := false, false
	s.fs.Visit(func(f *flag.Flag) {
		listenSet = listenSet || f.Name == "listen"
		refreshSet = refreshSet || f.Name == "refresh"
	})
	if !listenSet {
		s.listenAddr = p.settings.Server.ListenAddr
	}
	if !refreshSet {
		s.refresh = p.settings.Server.RefreshInterval()
	}
	if s.listenAddr == "" {
		return errors.NewConfigError("listen address is required", nil)
	}
	if s.refresh < 0 {
		return errors.NewConfigError(fmt.Sprintf("invalid refresh interval %s", s.refresh), nil)
	}

	_, err = p.loadURLs()
	return err
}

func (s *ServeCommand) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listener, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.listenAddr, err)
	}

	return s.serve(ctx, listener)
}

// serve runs the HTTP server and the generation loop until ctx is done.
func (s *ServeCommand) serve(ctx context.Context, listener net.Listener) error {
	logger := s.pipeline.logger
	server := api.NewServer(s.listenAddr, api.NewRouter(s.holder, s.metrics, logger), logger)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Serve(listener)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Stop(shutdownCtx)
	})

	g.Go(func() error {
		s.refreshLoop(gctx)
		return nil
	})

	err := g.Wait()
	logger.Infof("Server stopped")
	return err
}

// refreshLoop generates the blocklist immediately and then at every refresh
// interval until ctx is done. A failed run keeps the previous blocklist.
func (s *ServeCommand) refreshLoop(ctx context.Context) {
	s.regenerate(ctx)

	if s.refresh <= 0 {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(s.refresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.regenerate(ctx)
		}
	}
}

func (s *ServeCommand) regenerate(ctx context.Context) {
	p := s.pipeline

	result, err := p.generate(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Errorf("Failed to generate blocklist: %v", err)
		}
		return
	}

	snapshot, err := api.NewSnapshot(result, p.format, p.settings.Output.SinkholeAddress)
	if err != nil {
		p.logger.Errorf("Failed to render blocklist: %v", err)
		return
	}

	previous := s.holder.Store(snapshot)
	if previous != nil && previous.HostsChecksum == snapshot.HostsChecksum && previous.DomainsChecksum == snapshot.DomainsChecksum {
		p.logger.Infof("Blocklist unchanged (%d entries)", result.Count())
		return
	}
	p.logger.Infof("The final blocklist contains %d entries.", result.Count())
}
