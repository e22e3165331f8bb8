package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	clusterStatus        prometheus.Gauge
	servicesTotal        prometheus.Gauge
	servicesOpen         prometheus.Gauge
	servicesClosed       prometheus.Gauge
	serviceStatus        *prometheus.GaugeVec
	serviceRequiredPorts *prometheus.GaugeVec
}

const (
	prefix = "portcheck_"
)

func newMetrics(reg *prometheus.Registry) (*metrics, error) {
	m := &metrics{
		clusterStatus: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prefix + "cluster_status",
			Help: "Status of the cluster (1: every service has its ports open, 0: otherwise)",
		}),
		servicesTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prefix + "services_total",
			Help: "Total number of checked services",
		}),
		servicesOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prefix + "services_open",
			Help: "Number of services with all required ports open",
		}),
		servicesClosed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prefix + "services_closed",
			Help: "Number of services with at least one required port closed",
		}),
		serviceStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "service_status",
			Help: "Status of a specific service (1: open, 0: closed)",
		}, []string{"service"}),
		serviceRequiredPorts: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "service_required_ports",
			Help: "Number of ports a specific service requires",
		}, []string{"service"}),
	}

	err := register(reg,
		m.clusterStatus,
		m.servicesTotal,
		m.servicesOpen,
		m.servicesClosed,
		m.serviceStatus,
		m.serviceRequiredPorts,
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func register(r *prometheus.Registry, cs ...prometheus.Collector) error {
	for i, c := range cs {
		if err := r.Register(c); err != nil {
			for _, c := range cs[:i] {
				r.Unregister(c)
			}

			return err
		}
	}

	return nil
}
