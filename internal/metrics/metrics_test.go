package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveBackendCall(t *testing.T) {
	successBefore := testutil.ToFloat64(BackendRequestsTotal.WithLabelValues(OutcomeSuccess))
	failureBefore := testutil.ToFloat64(BackendRequestsTotal.WithLabelValues(OutcomeFailure))

	ObserveBackendCall(200*time.Millisecond, nil)
	ObserveBackendCall(time.Second, errors.New("boom"))

	assert.Equal(t, successBefore+1, testutil.ToFloat64(BackendRequestsTotal.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, failureBefore+1, testutil.ToFloat64(BackendRequestsTotal.WithLabelValues(OutcomeFailure)))
}

func TestHandlerExposesCollectors(t *testing.T) {
	ObserveHTTPRequest(http.MethodGet, "/api/health", http.StatusOK, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
	assert.Contains(t, rec.Body.String(), `route="/api/health"`)
}
