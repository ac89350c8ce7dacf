package monitoring

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorders(t *testing.T) {
	RecordOperation("call_next", "shop-m", "ok")
	RecordOperation("call_next", "shop-m", "ok")
	assert.Equal(t, 2.0, testutil.ToFloat64(queueOperations.WithLabelValues("call_next", "shop-m", "ok")))

	SetQueueLength("shop-m", "waiting", 4)
	assert.Equal(t, 4.0, testutil.ToFloat64(queueLength.WithLabelValues("shop-m", "waiting")))

	RecordPublish("queue.called", errors.New("broker down"))
	assert.Equal(t, 1.0, testutil.ToFloat64(eventsPublished.WithLabelValues("queue.called", "error")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	SetQueueLength("shop-h", "called", 1)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "barberqueue_queue_length"))
}
