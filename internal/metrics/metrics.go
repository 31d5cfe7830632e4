package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the order service.
type Metrics struct {
	ordersCreated       prometheus.Counter
	validationFailures  *prometheus.CounterVec
	statusUpdates       *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New creates metrics registered against the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates metrics registered against the given registerer.
// Tests pass a fresh prometheus.NewRegistry() to avoid cross-test collisions.
func NewWithRegisterer(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &Metrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "dinehub_orders_created_total",
			Help: "Total number of orders created successfully",
		}),
		validationFailures: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "dinehub_order_validation_failures_total",
			Help: "Total number of order creations rejected by validation",
		}, []string{"reason"}),
		statusUpdates: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "dinehub_order_status_updates_total",
			Help: "Total number of order status updates by dimension",
		}, []string{"dimension"}),
		httpRequestDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "dinehub_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "status"}),
	}
}

// OrderCreated increments the created-orders counter.
func (m *Metrics) OrderCreated() {
	m.ordersCreated.Inc()
}

// ValidationFailed records a rejected order creation with the rejection code.
func (m *Metrics) ValidationFailed(reason string) {
	m.validationFailures.WithLabelValues(reason).Inc()
}

// StatusUpdated records an update to one of the three status dimensions.
func (m *Metrics) StatusUpdated(dimension string) {
	m.statusUpdates.WithLabelValues(dimension).Inc()
}

// ObserveHTTPRequest records the duration of a handled HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, status string, duration time.Duration) {
	m.httpRequestDuration.WithLabelValues(method, status).Observe(duration.Seconds())
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if err := registerer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing
			}
		}
	}
	return c
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
	}
	return c
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	h := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(h); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing
			}
		}
	}
	return h
}
