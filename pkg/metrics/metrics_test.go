package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("studio-booking", reg)

	m.IncBookingCreated("confirmed")
	m.IncBookingCreated("confirmed")
	m.IncBookingCreated("pending_payment")
	m.IncBookingFailed("submission")
	m.ObserveHTTPRequest("GET", "/api/v1/studios", "200", 15*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsCreated.WithLabelValues("confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsCreated.WithLabelValues("pending_payment")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingFailures.WithLabelValues("submission")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/studios", "200")))
}
