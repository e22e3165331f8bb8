package httpsrv

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServer_Health(t *testing.T) {
	srv := NewServer("127.0.0.1:0", ServerOptions{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())
}

func TestServer_MetricsOnConfiguredPath(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("portcheck_services_total 14"))
	})

	srv := NewServer("127.0.0.1:0", ServerOptions{
		MetricsHandler: metrics,
		MetricsPath:    "/custom",
	})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/custom", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "portcheck_services_total 14", rec.Body.String())

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_RejectsWrongMethod(t *testing.T) {
	srv := NewServer("127.0.0.1:0", ServerOptions{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
