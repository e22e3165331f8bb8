package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/khmm12/cluster-port-checker/internal/adapter/report"
	"github.com/khmm12/cluster-port-checker/internal/adapter/simulated"
	"github.com/khmm12/cluster-port-checker/internal/catalog"
	"github.com/khmm12/cluster-port-checker/internal/common/logging"
	"github.com/khmm12/cluster-port-checker/internal/common/tracing"
	"github.com/khmm12/cluster-port-checker/internal/usecase"
)

type Check struct {
	LogLevel string `name:"log.level" env:"LOG_LEVEL" default:"warn" help:"Log level (debug, info, warn, error). Logs are written to stderr."`
}

func (c *Check) Run(ctx context.Context, s *streams) error {
	return check(ctx, c, s.stdout, s.stderr)
}

func (c *Check) Validate() error {
	if !isLogLevel(c.LogLevel) {
		return errors.New("--log.level: must be one of debug, info, warn, error")
	}

	return nil
}

func check(ctx context.Context, c *Check, stdout, stderr io.Writer) error {
	logger, err := logging.New(stderr, c.LogLevel)
	if err != nil {
		return err
	}

	ctx = tracing.WithTraceID(ctx)

	uc := usecase.NewCheckPortsUseCase(
		logger,
		simulated.NewSource(catalog.SimulatedOpenPorts()),
		report.NewReporter(stdout),
	)

	result, err := uc.Execute(ctx, usecase.CheckPortsCommand{
		Requirements: catalog.Requirements(),
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to execute port check", logging.Error(err))
		return err
	}

	open, closed := result.Counts()
	logger.InfoContext(ctx, "Finished port check", slog.Int("open", open), slog.Int("closed", closed))

	return nil
}
