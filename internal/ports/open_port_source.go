package ports

import "context"

type OpenPortSource interface {
	OpenPorts(ctx context.Context) ([]int, error)
}
