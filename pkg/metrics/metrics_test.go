package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveBookingSubmission(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("detailing", reg)

	m.ObserveBookingSubmission("detailing", "created")
	m.ObserveBookingSubmission("detailing", "created")
	m.ObserveBookingSubmission("detailing", "failed")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingSubmissions.WithLabelValues("detailing", "created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingSubmissions.WithLabelValues("detailing", "failed")))
}

func TestMetrics_ObserveHTTPRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("detailing", reg)

	m.ObserveHTTPRequest("detailing", "GET", "/api/v1/services", 200, 0.01)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("detailing", "GET", "/api/v1/services", "200")))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("s", "GET", "/", 200, 0.1)
		m.ObserveDBQuery("s", "query", 0.1)
		m.SetDBPoolStats("s", 1, 1, 0)
		m.ObserveBookingSubmission("s", "created")
		m.ObserveBookingTotal("s", "sedan", 6500)
		m.ObserveChatReply("s", "model")
	})
}
