package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	sortvis "github.com/Dyyynamic/sort-visualizer"
	"github.com/Dyyynamic/sort-visualizer/internal/logging"
	"github.com/Dyyynamic/sort-visualizer/internal/metrics"
	"github.com/Dyyynamic/sort-visualizer/internal/publish"
	"github.com/Dyyynamic/sort-visualizer/internal/tui"
)

const stopTimeout = 5 * time.Second

// run wires the session to its observers and blocks until the run ends.
//
// In headless mode the session runs sort then verify and a summary line is
// printed. Otherwise the terminal UI drives verification and quitting.
func run(ctx context.Context, stdout, stderr io.Writer, cfg *sortvis.Config, headless bool) error {
	logger, err := newLogger(stderr, cfg, headless)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []sortvis.Option{sortvis.WithLogger(logger)}

	var registry *prometheus.Registry
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		opts = append(opts, sortvis.WithMetrics(metrics.NewPrometheus(registry, cfg.Metrics.Namespace)))
	}

	session, err := sortvis.NewSession(cfg, opts...)
	if err != nil {
		return err
	}

	var conn *nats.Conn
	if cfg.NATS.URL != "" {
		conn, err = nats.Connect(cfg.NATS.URL, nats.Name("sortvis-"+session.ID()))
		if err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		defer conn.Close()
	}

	g, gctx := errgroup.WithContext(ctx)
	auxCtx, stopAux := context.WithCancel(gctx)
	defer stopAux()

	if registry != nil {
		srv := metrics.NewServer(cfg.Metrics.Addr, registry, logger)
		g.Go(func() error {
			return srv.Start(auxCtx)
		})
	}

	if conn != nil {
		phases, unsubscribe := session.Subscribe()
		pub := publish.New(conn, session.ID(), cfg.Algorithm, session.Observer(), publish.Config{
			SubjectPrefix: cfg.NATS.SubjectPrefix,
			Interval:      cfg.NATS.PublishInterval,
		}, logger)
		g.Go(func() error {
			defer unsubscribe()
			return pub.Run(auxCtx, phases)
		})
	}

	g.Go(func() error {
		defer stopAux()

		if headless {
			res, err := session.Run(gctx)
			if res.Phase != sortvis.PhaseIdle {
				fmt.Fprintln(stdout, formatResult(res))
			}

			return err
		}

		if err := session.Start(gctx); err != nil {
			return err
		}

		return tui.Run(gctx, session, cfg.Algorithm, cfg.FrameRate)
	})

	runErr := g.Wait()

	stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()

	return errors.Join(runErr, session.Stop(stopCtx))
}

// newLogger builds the slog-backed logger. Interactive runs stay silent at the
// default level since the terminal UI owns the screen.
func newLogger(stderr io.Writer, cfg *sortvis.Config, headless bool) (sortvis.Logger, error) {
	if !headless && cfg.Log.Level == sortvis.DefaultConfig().Log.Level {
		return logging.NewNop(), nil
	}

	logger, err := logging.New(stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("invalid log configuration: %w", err)
	}

	return logger, nil
}
