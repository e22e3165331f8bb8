package prometheus

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/khmm12/cluster-port-checker/internal/ports"
)

func TestCheckResultPublisher_PublishMetricsForOpenAndClosedServices(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	err := publisher.Publish(ctx, []ports.ServiceStatus{
		{Service: "Docker", Ports: []int{2375, 2376}, Open: true},
		{Service: "Kube-Scheduler", Ports: []int{10251}, Open: false},
		{Service: "Kube Controller Manager", Ports: []int{10252}, Open: false},
	})
	require.NoError(t, err)

	requireMetric(t, 0.0, exporter.metrics.clusterStatus)
	requireMetric(t, 3.0, exporter.metrics.servicesTotal)
	requireMetric(t, 1.0, exporter.metrics.servicesOpen)
	requireMetric(t, 2.0, exporter.metrics.servicesClosed)
	requireMetric(t, 1.0, exporter.metrics.serviceStatus.WithLabelValues("Docker"))
	requireMetric(t, 0.0, exporter.metrics.serviceStatus.WithLabelValues("Kube-Scheduler"))
	requireMetric(t, 0.0, exporter.metrics.serviceStatus.WithLabelValues("Kube Controller Manager"))
	requireMetric(t, 2.0, exporter.metrics.serviceRequiredPorts.WithLabelValues("Docker"))
}

func TestCheckResultPublisher_PublishSuccessWhenAllOpen(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	err := publisher.Publish(ctx, []ports.ServiceStatus{
		{Service: "Metrics Server", Ports: []int{443}, Open: true},
	})
	require.NoError(t, err)

	requireMetric(t, 1.0, exporter.metrics.clusterStatus)
	requireMetric(t, 1.0, exporter.metrics.servicesTotal)
	requireMetric(t, 1.0, exporter.metrics.servicesOpen)
	requireMetric(t, 0.0, exporter.metrics.servicesClosed)
}

func TestCheckResultPublisher_PublishNoServicesNoop(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	err := publisher.Publish(ctx, nil)
	require.NoError(t, err)

	requireMetric(t, 0.0, exporter.metrics.clusterStatus)
	requireMetric(t, 0.0, exporter.metrics.servicesTotal)
	requireMetric(t, 0.0, exporter.metrics.servicesOpen)
	requireMetric(t, 0.0, exporter.metrics.servicesClosed)
}

func TestExporter_HandlerServesMetrics(t *testing.T) {
	exporter, publisher := newTestPublisher(t)

	err := publisher.Publish(context.Background(), []ports.ServiceStatus{
		{Service: "Etcd", Ports: []int{2379, 2380}, Open: true},
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	exporter.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	require.Contains(t, rec.Body.String(), `portcheck_service_status{service="Etcd"} 1`)
}

func newTestPublisher(t *testing.T) (*Exporter, *CheckResultPublisher) {
	t.Helper()

	exporter, err := NewExporter()
	require.NoError(t, err)

	publisher := NewCheckResultPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), exporter)

	return exporter, publisher
}

func requireMetric(t *testing.T, expected float64, metric prometheus.Collector) {
	t.Helper()

	require.InDelta(t, expected, testutil.ToFloat64(metric), 0.001)
}
