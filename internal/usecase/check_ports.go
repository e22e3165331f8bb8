package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/khmm12/cluster-port-checker/internal/catalog"
	"github.com/khmm12/cluster-port-checker/internal/ports"
)

type CheckPortsUseCase struct {
	logger     *slog.Logger
	source     ports.OpenPortSource
	publishers []ports.CheckResultPublisher
}

func NewCheckPortsUseCase(logger *slog.Logger, source ports.OpenPortSource, publishers ...ports.CheckResultPublisher) *CheckPortsUseCase {
	return &CheckPortsUseCase{
		logger:     logger,
		source:     source,
		publishers: publishers,
	}
}

type CheckPortsCommand struct {
	Requirements []catalog.Requirement
}

func (u *CheckPortsUseCase) Execute(ctx context.Context, cmd CheckPortsCommand) (CheckResult, error) {
	openPorts, err := u.source.OpenPorts(ctx)
	if err != nil {
		return CheckResult{}, fmt.Errorf("failed to load open ports: %w", err)
	}

	result := Evaluate(cmd.Requirements, NewPortSet(openPorts))

	open, closed := result.Counts()
	u.logger.DebugContext(ctx, "Evaluated port requirements",
		slog.Group("check",
			slog.Int("services", len(result.Statuses)),
			slog.Int("open", open),
			slog.Int("closed", closed),
			slog.Int("open_ports", len(openPorts)),
		))

	for _, p := range u.publishers {
		if err := p.Publish(ctx, result.Statuses); err != nil {
			return result, fmt.Errorf("failed to publish port check results: %w", err)
		}
	}

	return result, nil
}
