package prometheus

import (
	"context"
	"log/slog"

	"github.com/khmm12/cluster-port-checker/internal/ports"
)

type CheckResultPublisher struct {
	logger   *slog.Logger
	exporter *Exporter
}

func NewCheckResultPublisher(logger *slog.Logger, exporter *Exporter) *CheckResultPublisher {
	return &CheckResultPublisher{
		logger:   logger,
		exporter: exporter,
	}
}

func (p *CheckResultPublisher) Publish(ctx context.Context, statuses []ports.ServiceStatus) error {
	var open, closed int
	for _, s := range statuses {
		if s.Open {
			open++
		} else {
			closed++
		}
	}

	p.logger.DebugContext(ctx, "Publishing port check results",
		slog.Group("publish",
			slog.Int("open_services", open),
			slog.Int("closed_services", closed),
		))

	if len(statuses) == 0 {
		p.logger.DebugContext(ctx, "No services found for port check")
		return nil
	}

	var status float64
	if closed == 0 {
		status = 1.0
	}

	m := p.exporter.metrics

	m.clusterStatus.Set(status)
	m.servicesTotal.Set(float64(len(statuses)))
	m.servicesOpen.Set(float64(open))
	m.servicesClosed.Set(float64(closed))

	for _, s := range statuses {
		var v float64
		if s.Open {
			v = 1.0
		}

		m.serviceStatus.WithLabelValues(s.Service).Set(v)
		m.serviceRequiredPorts.WithLabelValues(s.Service).Set(float64(len(s.Ports)))
	}

	return nil
}
