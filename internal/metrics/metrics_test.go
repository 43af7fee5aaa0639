package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Round(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := New(registry)
	require.NoError(t, err)

	m.Track("run-1", 3)
	m.Round("run-1", 3, 0.5)
	m.Round("run-1", 3, 0.25)
	m.Track("run-2", 1)

	p := m.prometheus
	assert.Equal(t, 3.0, testutil.ToFloat64(p.Predictions.WithLabelValues("run-1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.Predictions.WithLabelValues("run-2")))
	assert.Equal(t, 6.0, testutil.ToFloat64(p.Samples.WithLabelValues("run-1")))
	assert.Equal(t, 2.0, testutil.ToFloat64(p.Rounds.WithLabelValues("run-1")))
	assert.Equal(t, 0.25, testutil.ToFloat64(p.RMSE.WithLabelValues("run-1")))
}

func TestNew_Registered(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := New(registry)
	require.NoError(t, err)

	_, err = New(registry)
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := New(registry)
	require.NoError(t, err)
	m.Round("run", 10, 1.5)

	rec := httptest.NewRecorder()
	Handler(registry).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `predict_rmse{run="run"} 1.5`)
	assert.Contains(t, rec.Body.String(), `predict_samples_total{run="run"} 10`)
}

func TestServe_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Serve(ctx, "127.0.0.1:0", prometheus.NewRegistry())
	assert.NoError(t, err)
}
