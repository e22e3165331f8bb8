package usecase

import (
	"github.com/khmm12/cluster-port-checker/internal/catalog"
	"github.com/khmm12/cluster-port-checker/internal/ports"
)

type PortSet map[int]struct{}

func NewPortSet(open []int) PortSet {
	set := make(PortSet, len(open))
	for _, port := range open {
		set[port] = struct{}{}
	}

	return set
}

func (s PortSet) Contains(port int) bool {
	_, ok := s[port]
	return ok
}

// CheckResult holds one verdict per service, in requirement table order.
type CheckResult struct {
	Statuses []ports.ServiceStatus
}

// IsOpen reports the verdict for service. The second value is false when the
// service is not part of the result.
func (r CheckResult) IsOpen(service string) (open, found bool) {
	for _, s := range r.Statuses {
		if s.Service == service {
			return s.Open, true
		}
	}

	return false, false
}

func (r CheckResult) Counts() (open, closed int) {
	for _, s := range r.Statuses {
		if s.Open {
			open++
		} else {
			closed++
		}
	}

	return open, closed
}

func (r CheckResult) AllOpen() bool {
	_, closed := r.Counts()
	return closed == 0
}

// Evaluate marks a service open when every one of its required ports is in
// the open set. A service without required ports is always open.
func Evaluate(reqs []catalog.Requirement, open PortSet) CheckResult {
	statuses := make([]ports.ServiceStatus, 0, len(reqs))

	for _, req := range reqs {
		statuses = append(statuses, ports.ServiceStatus{
			Service: req.Service,
			Ports:   req.Ports,
			Open:    allContained(req.Ports, open),
		})
	}

	return CheckResult{Statuses: statuses}
}

func allContained(required []int, open PortSet) bool {
	for _, port := range required {
		if !open.Contains(port) {
			return false
		}
	}

	return true
}
