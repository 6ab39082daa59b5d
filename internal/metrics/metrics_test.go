package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg, "medapp")

	m.RequestsTotal.WithLabelValues("GET", "/patients", "200").Inc()
	m.AuthFailures.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/patients", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthFailures))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 2, "histogram has no observations yet")
}
