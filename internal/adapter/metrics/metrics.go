package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/MikeRez0/techxchange/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "techxchange"

type Metrics struct {
	Requests      *prometheus.CounterVec
	LatencyMS     *prometheus.HistogramVec
	OrderEvents   *prometheus.CounterVec
	Notifications *prometheus.CounterVec
	gatherer      prometheus.Gatherer
}

// New registers the collectors on reg. Pass prometheus.NewRegistry() in tests.
func New(reg *prometheus.Registry) *Metrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "method", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	orderEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "events_total",
		Help:      "Committed order changes by event type and resulting status.",
	}, []string{"type", "status"})
	notifications := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "notifications",
		Name:      "total",
		Help:      "Notifications handed to the dispatcher by outcome.",
	}, []string{"result"})

	reg.MustRegister(requests, latency, orderEvents, notifications)
	return &Metrics{
		Requests:      requests,
		LatencyMS:     latency,
		OrderEvents:   orderEvents,
		Notifications: notifications,
		gatherer:      reg,
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Requests.WithLabelValues(route, ctx.Request.Method, strconv.Itoa(ctx.Writer.Status())).Inc()
		m.LatencyMS.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
	}
}

// PublishOrderEvent counts the event. It lets Metrics sit in the order event fan-out.
func (m *Metrics) PublishOrderEvent(_ context.Context, event port.OrderEvent) error {
	m.OrderEvents.WithLabelValues(string(event.Type), string(event.CurrentStatus)).Inc()
	return nil
}

func (m *Metrics) NotificationResult(result string) {
	m.Notifications.WithLabelValues(result).Inc()
}
