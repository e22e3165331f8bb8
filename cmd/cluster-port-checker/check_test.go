package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const expectedReport = `Port check results:
Kubernetes API Server: open
Kubelet: open
Kube Proxy: open
CoreDNS (kube-dns): open
Etcd: open
Metrics Server: open
Flannel VXLAN: open
Calico: open
Ingress Controller (HTTP/HTTPS): open
Docker: open
Kube-Scheduler: closed
Kube Controller Manager: closed
Prometheus/Grafana (Monitoring): open
Service Discovery DNS: open
`

func TestCheck_PrintsReportToStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := check(t.Context(), &Check{LogLevel: "warn"}, &stdout, &stderr)

	require.NoError(t, err)
	require.Equal(t, expectedReport, stdout.String())
	require.Empty(t, stderr.String())
}

func TestCheck_LogsGoToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := check(t.Context(), &Check{LogLevel: "debug"}, &stdout, &stderr)

	require.NoError(t, err)
	require.Equal(t, expectedReport, stdout.String())
	require.Contains(t, stderr.String(), `"msg":"Finished port check"`)
	require.Contains(t, stderr.String(), `"closed":2`)
}

func TestCheck_IdenticalOutputAcrossRuns(t *testing.T) {
	var first, second bytes.Buffer

	require.NoError(t, check(t.Context(), &Check{LogLevel: "error"}, &first, &bytes.Buffer{}))
	require.NoError(t, check(t.Context(), &Check{LogLevel: "error"}, &second, &bytes.Buffer{}))

	require.Equal(t, first.String(), second.String())
	require.Len(t, strings.Split(strings.TrimSuffix(first.String(), "\n"), "\n"), 15)
}

func TestCheck_Validate(t *testing.T) {
	require.NoError(t, (&Check{LogLevel: "info"}).Validate())
	require.ErrorContains(t, (&Check{LogLevel: "fatal"}).Validate(), "--log.level")
}
