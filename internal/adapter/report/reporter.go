package report

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/khmm12/cluster-port-checker/internal/ports"
)

const header = "Port check results:"

const (
	statusOpen   = "open"
	statusClosed = "closed"
)

// Reporter prints a plain text verdict line per service.
type Reporter struct {
	w io.Writer
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

func (r *Reporter) Publish(_ context.Context, statuses []ports.ServiceStatus) error {
	bw := bufio.NewWriter(r.w)

	if _, err := fmt.Fprintln(bw, header); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	for _, s := range statuses {
		if _, err := fmt.Fprintf(bw, "%s: %s\n", s.Service, status(s.Open)); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

func status(open bool) string {
	if open {
		return statusOpen
	}

	return statusClosed
}
