package ports

import "context"

type ServiceStatus struct {
	Service string
	Ports   []int
	Open    bool
}

type CheckResultPublisher interface {
	Publish(ctx context.Context, statuses []ServiceStatus) error
}
