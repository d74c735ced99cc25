package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveApply(t *testing.T) {
	before := testutil.ToFloat64(deltaApplyTotal.WithLabelValues("hierarchy_cycle"))

	ObserveApply("hierarchy_cycle", 12*time.Millisecond, 0)

	assert.Equal(t, before+1, testutil.ToFloat64(deltaApplyTotal.WithLabelValues("hierarchy_cycle")))
}

func TestObserveWarningsAndStaleBase(t *testing.T) {
	warnings := testutil.ToFloat64(overAllocationWarnings)
	stale := testutil.ToFloat64(staleBaseTotal.WithLabelValues("false"))

	ObserveWarnings(3)
	ObserveStaleBase(false)

	assert.Equal(t, warnings+3, testutil.ToFloat64(overAllocationWarnings))
	assert.Equal(t, stale+1, testutil.ToFloat64(staleBaseTotal.WithLabelValues("false")))
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	router.GET("/metrics", Handler())

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `planner_http_request_duration_seconds_count{method="GET",route="/ping",status="200"}`)
}
