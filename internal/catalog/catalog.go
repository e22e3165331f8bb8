package catalog

import "slices"

// Well-known ports of cluster control plane, node and add-on services.
const (
	DNSPort               = 53
	HTTPPort              = 80
	HTTPSPort             = 443
	DockerPort            = 2375
	DockerTLSPort         = 2376
	EtcdClientPort        = 2379
	EtcdPeerPort          = 2380
	VXLANPort             = 4789
	APIServerPort         = 6443
	PrometheusPort        = 9090
	CoreDNSMetricsPort    = 9153
	KubeletPort           = 10250
	SchedulerPort         = 10251
	ControllerManagerPort = 10252
	KubeletReadOnlyPort   = 10255
	ProxyHealthzPort      = 10256
)

// Requirement lists the ports a service needs to communicate on.
type Requirement struct {
	Service string
	Ports   []int
}

var requirements = []Requirement{
	{Service: "Kubernetes API Server", Ports: []int{APIServerPort}},
	{Service: "Kubelet", Ports: []int{KubeletPort, KubeletReadOnlyPort}},
	{Service: "Kube Proxy", Ports: []int{ProxyHealthzPort}},
	{Service: "CoreDNS (kube-dns)", Ports: []int{DNSPort, CoreDNSMetricsPort}},
	{Service: "Etcd", Ports: []int{EtcdClientPort, EtcdPeerPort}},
	{Service: "Metrics Server", Ports: []int{HTTPSPort}},
	{Service: "Flannel VXLAN", Ports: []int{VXLANPort}},
	{Service: "Calico", Ports: []int{EtcdClientPort, EtcdPeerPort}},
	{Service: "Ingress Controller (HTTP/HTTPS)", Ports: []int{HTTPPort, HTTPSPort}},
	{Service: "Docker", Ports: []int{DockerPort, DockerTLSPort}},
	{Service: "Kube-Scheduler", Ports: []int{SchedulerPort}},
	{Service: "Kube Controller Manager", Ports: []int{ControllerManagerPort}},
	{Service: "Prometheus/Grafana (Monitoring)", Ports: []int{PrometheusPort}},
	{Service: "Service Discovery DNS", Ports: []int{DNSPort}},
}

// Simulated stand-in for the ports reachable in the cluster.
var simulatedOpenPorts = []int{
	APIServerPort,
	KubeletPort,
	KubeletReadOnlyPort,
	ProxyHealthzPort,
	DNSPort,
	CoreDNSMetricsPort,
	EtcdClientPort,
	EtcdPeerPort,
	HTTPSPort,
	VXLANPort,
	DockerPort,
	DockerTLSPort,
	PrometheusPort,
	HTTPPort,
}

// Requirements returns a copy of the requirement table in definition order.
func Requirements() []Requirement {
	out := make([]Requirement, len(requirements))
	for i, r := range requirements {
		out[i] = Requirement{
			Service: r.Service,
			Ports:   slices.Clone(r.Ports),
		}
	}

	return out
}

// SimulatedOpenPorts returns a copy of the simulated open port list.
func SimulatedOpenPorts() []int {
	return slices.Clone(simulatedOpenPorts)
}
