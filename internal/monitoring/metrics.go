package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	queueLength = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "barberqueue_queue_length",
			Help: "Current number of active entries per barbershop and status",
		},
		[]string{"barbershop_id", "status"},
	)

	queueOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barberqueue_operations_total",
			Help: "Total queue operations by outcome",
		},
		[]string{"operation", "barbershop_id", "result"},
	)

	lockWait = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "barberqueue_lock_wait_seconds",
			Help:    "Time spent waiting for a barbershop lock",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"barbershop_id"},
	)

	tokensPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "barberqueue_tokens_purged_total",
			Help: "Expired token records removed by the housekeeper",
		},
	)

	eventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barberqueue_events_published_total",
			Help: "Queue events handed to the broker",
		},
		[]string{"topic", "result"},
	)
)

func RecordOperation(op, shopID, result string) {
	queueOperations.WithLabelValues(op, shopID, result).Inc()
}

func ObserveLockWait(shopID string, d time.Duration) {
	lockWait.WithLabelValues(shopID).Observe(d.Seconds())
}

func SetQueueLength(shopID, status string, n int) {
	queueLength.WithLabelValues(shopID, status).Set(float64(n))
}

func AddTokensPurged(n int) {
	tokensPurged.Add(float64(n))
}

func RecordPublish(topic string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	eventsPublished.WithLabelValues(topic, result).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
