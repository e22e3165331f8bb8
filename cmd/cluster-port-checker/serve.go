package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/khmm12/cluster-port-checker/internal/adapter/httpsrv"
	"github.com/khmm12/cluster-port-checker/internal/adapter/prometheus"
	"github.com/khmm12/cluster-port-checker/internal/adapter/simulated"
	"github.com/khmm12/cluster-port-checker/internal/adapter/worker"
	"github.com/khmm12/cluster-port-checker/internal/catalog"
	"github.com/khmm12/cluster-port-checker/internal/common/logging"
	"github.com/khmm12/cluster-port-checker/internal/usecase"
)

type Metrics struct {
	Addr string `name:"addr" env:"METRICS_ADDR" default:"0.0.0.0:8080" help:"HTTP Address to bind Prometheus metrics"`
	Path string `name:"path" env:"METRICS_PATH" default:"/metrics" help:"Path to serve Prometheus metrics"`
}

type Serve struct {
	Interval time.Duration `name:"interval" env:"CHECK_INTERVAL" default:"30s" help:"The interval between port checks (e.g., 1s, 5m, 1h)."`
	Metrics  Metrics       `embed:"" prefix:"metrics."`
	LogLevel string        `name:"log.level" env:"LOG_LEVEL" default:"info" help:"Log level (debug, info, warn, error)"`
}

const shutdownTimeout = 5 * time.Second

func (s *Serve) Run(ctx context.Context, st *streams) error {
	return serve(ctx, s, st.stdout)
}

func (s *Serve) Validate() error {
	var errs []error

	if s.Interval <= 0 {
		errs = append(errs, fmt.Errorf("--interval: must be greater than zero"))
	}

	if !isTCPAddr(s.Metrics.Addr) {
		errs = append(errs, fmt.Errorf("--metrics.addr: must be a valid tcp listening address (e.g. 0.0.0.0:8080)"))
	}

	if !isHTTPPath(s.Metrics.Path) {
		errs = append(errs, fmt.Errorf("--metrics.path: must be an absolute URL path (e.g. /metrics)"))
	}

	if !isLogLevel(s.LogLevel) {
		errs = append(errs, fmt.Errorf("--log.level: must be one of debug, info, warn, error"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

func serve(ctx context.Context, s *Serve, logOut io.Writer) error {
	logger, err := logging.New(logOut, s.LogLevel)
	if err != nil {
		return err
	}

	exporter, err := prometheus.NewExporter()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create prometheus exporter", logging.Error(err))
		return err
	}

	uc := usecase.NewCheckPortsUseCase(
		logger,
		simulated.NewSource(catalog.SimulatedOpenPorts()),
		prometheus.NewCheckResultPublisher(logger, exporter),
	)

	srv := httpsrv.NewServer(s.Metrics.Addr, httpsrv.ServerOptions{
		MetricsHandler: exporter.Handler(),
		MetricsPath:    s.Metrics.Path,
	})

	w := worker.NewWorker(logger, s.Interval, newTask(logger, uc, catalog.Requirements()))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(gctx, "Start HTTP Server", slog.String("address", srv.ListenAddr()))

		if err := srv.Start(); err != nil {
			logger.ErrorContext(gctx, "Failed to start HTTP Server", logging.Error(err))
			return err
		}

		return nil
	})

	g.Go(func() error {
		logger.InfoContext(gctx, "Start Worker", slog.Duration("interval", s.Interval))

		if err := w.Start(gctx); err != nil {
			logger.ErrorContext(gctx, "Failed to start Worker", logging.Error(err))
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		logger.InfoContext(ctx, "Stopping...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		logger.InfoContext(ctx, "Stopping Worker...")
		if err := w.Shutdown(shutdownCtx); err != nil {
			logger.ErrorContext(ctx, "Failed to stop Worker", logging.Error(err))
		}

		logger.InfoContext(ctx, "Stopping HTTP Server...")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.ErrorContext(ctx, "Failed to stop HTTP Server", logging.Error(err))
		}

		logger.InfoContext(ctx, "Stopped")

		return nil
	})

	return g.Wait()
}

type taskUC interface {
	Execute(ctx context.Context, cmd usecase.CheckPortsCommand) (usecase.CheckResult, error)
}

type task struct {
	logger       *slog.Logger
	uc           taskUC
	requirements []catalog.Requirement
}

func newTask(logger *slog.Logger, uc taskUC, requirements []catalog.Requirement) *task {
	return &task{
		logger:       logger,
		uc:           uc,
		requirements: requirements,
	}
}

func (t *task) Execute(ctx context.Context) error {
	t.logger.InfoContext(ctx, "Run port check")

	result, err := t.uc.Execute(ctx, usecase.CheckPortsCommand{
		Requirements: t.requirements,
	})
	if err != nil {
		return fmt.Errorf("failed to execute port check: %w", err)
	}

	open, closed := result.Counts()
	t.logger.InfoContext(ctx, "Finished port check", slog.Int("open", open), slog.Int("closed", closed))

	return nil
}
