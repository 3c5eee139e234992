package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Assistant metrics
var (
	adviceDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assistant_advice_duration_seconds",
			Help:    "Time taken to serve one advice request",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
		[]string{"category"},
	)

	generationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "assistant_generation_failures_total",
			Help: "Completions that errored or returned empty content",
		},
	)

	recommendationsExtracted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_recommendations_extracted_total",
			Help: "Structured recommendations extracted from responses",
		},
		[]string{"category"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, path and status",
		},
		[]string{"method", "path", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		adviceDuration,
		generationFailures,
		recommendationsExtracted,
		httpRequests,
	)
}

// ObserveAdvice records one completed advice request.
func ObserveAdvice(category string, took time.Duration, recommendations int) {
	adviceDuration.WithLabelValues(category).Observe(took.Seconds())
	recommendationsExtracted.WithLabelValues(category).Add(float64(recommendations))
}

// ObserveGenerationFailure records one failed completion.
func ObserveGenerationFailure() {
	generationFailures.Inc()
}

// RequestCounter is a gin middleware counting requests per route.
func RequestCounter() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
