package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureRegisteredIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		EnsureRegistered()
		EnsureRegistered()
	})
}

func TestRecordToolCall(t *testing.T) {
	m := getMetrics()

	before := testutil.ToFloat64(m.toolCallTotal.WithLabelValues("job_market_analyzer", "success"))
	RecordToolCall("job_market_analyzer", 25*time.Millisecond, "")
	after := testutil.ToFloat64(m.toolCallTotal.WithLabelValues("job_market_analyzer", "success"))
	assert.Equal(t, before+1, after)

	errBefore := testutil.ToFloat64(m.toolErrorsTotal.WithLabelValues("job_market_analyzer", "INVALID_PARAMS"))
	RecordToolCall("job_market_analyzer", time.Millisecond, "INVALID_PARAMS")
	errAfter := testutil.ToFloat64(m.toolErrorsTotal.WithLabelValues("job_market_analyzer", "INVALID_PARAMS"))
	assert.Equal(t, errBefore+1, errAfter)
}

func TestRecordAuthFailure(t *testing.T) {
	m := getMetrics()

	before := testutil.ToFloat64(m.authFailuresTotal)
	RecordAuthFailure()
	assert.Equal(t, before+1, testutil.ToFloat64(m.authFailuresTotal))
}

func TestSetInFlight(t *testing.T) {
	m := getMetrics()

	SetInFlight(3)
	assert.Equal(t, float64(3), testutil.ToFloat64(m.inFlightCalls))
	SetInFlight(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.inFlightCalls))
}

func TestMetricsHandlerServesExposition(t *testing.T) {
	RecordToolCall("resume_optimizer", 10*time.Millisecond, "")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	MetricsHandler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tool_call_total")
}
