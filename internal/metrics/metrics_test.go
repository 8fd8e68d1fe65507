package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveCalculation(t *testing.T) {
	m := New()

	m.ObserveCalculation(OutcomeSuccess)
	m.ObserveCalculation(OutcomeSuccess)
	m.ObserveCalculation(OutcomeInvalidInput)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.calculations.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calculations.WithLabelValues(OutcomeInvalidInput)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.calculations.WithLabelValues(OutcomeBadRequest)))
}

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest("/api/tax/calculate", "GET", 200, 2*time.Millisecond)
	m.ObserveRequest("/api/tax/calculate", "GET", 400, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/tax/calculate", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/tax/calculate", "GET", "400")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}
