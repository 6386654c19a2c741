package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics for the address book API.
type Metrics struct {
	CacheRequests    *prometheus.CounterVec
	GeocodeRequests  *prometheus.CounterVec
	GeocodeDuration  prometheus.Histogram
	PersonsMutations *prometheus.CounterVec
}

// New creates the metrics and registers them with reg. Tests pass a fresh
// prometheus.NewRegistry() so repeated construction does not panic.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "addressbook_cache_requests_total",
			Help: "Listing cache lookups by result (hit or miss)",
		}, []string{"result"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "addressbook_geocode_requests_total",
			Help: "Geocoding provider calls by provider and outcome",
		}, []string{"provider", "outcome"}),
		GeocodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "addressbook_geocode_duration_seconds",
			Help:    "Latency of geocoding provider calls",
			Buckets: prometheus.DefBuckets,
		}),
		PersonsMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "addressbook_persons_mutations_total",
			Help: "Create, update and delete operations by outcome",
		}, []string{"op", "outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.CacheRequests, m.GeocodeRequests, m.GeocodeDuration, m.PersonsMutations)
	}
	return m
}

// Nop returns metrics that are not registered anywhere.
func Nop() *Metrics {
	return New(nil)
}

func (m *Metrics) CacheHit()  { m.CacheRequests.WithLabelValues("hit").Inc() }
func (m *Metrics) CacheMiss() { m.CacheRequests.WithLabelValues("miss").Inc() }

// ObserveGeocode records one provider call.
func (m *Metrics) ObserveGeocode(provider, outcome string, seconds float64) {
	m.GeocodeRequests.WithLabelValues(provider, outcome).Inc()
	m.GeocodeDuration.Observe(seconds)
}

// ObserveMutation records one create, update or delete.
func (m *Metrics) ObserveMutation(op string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.PersonsMutations.WithLabelValues(op, outcome).Inc()
}
