package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every limbcalc metric.
const Namespace = "limbcalc"

// Metrics holds the Prometheus instruments of a limbcalc run on a private
// registry, so tests and concurrent runs never collide on the global one.
type Metrics struct {
	registry      *prometheus.Registry
	checksTotal   *prometheus.CounterVec
	samplesTotal  *prometheus.CounterVec
	failuresTotal *prometheus.CounterVec
	checkDuration *prometheus.HistogramVec
	evalsTotal    *prometheus.CounterVec
	evalDuration  *prometheus.HistogramVec
	activeChecks  prometheus.Gauge
	scrapesTotal  prometheus.Counter
	handler       http.Handler
}

// NewMetrics creates the instruments and registers them together with the
// Go runtime and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		checksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace, Name: "checks_total",
			Help: "Self-check properties run, by check and outcome.",
		}, []string{"check", "outcome"}),
		samplesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace, Name: "check_samples_total",
			Help: "Random samples evaluated, by check.",
		}, []string{"check"}),
		failuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace, Name: "check_failures_total",
			Help: "Samples that violated a property, by check.",
		}, []string{"check"}),
		checkDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace, Name: "check_duration_seconds",
			Help:    "Wall time of one self-check property.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"check"}),
		evalsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace, Name: "evals_total",
			Help: "Operations evaluated, by operation and outcome.",
		}, []string{"op", "outcome"}),
		evalDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace, Name: "eval_duration_seconds",
			Help:    "Latency of one operation evaluation.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"op"}),
		activeChecks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace, Name: "active_checks",
			Help: "Self-check properties currently running.",
		}),
		scrapesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace, Name: "scrapes_total",
			Help: "Requests served by the metrics endpoint.",
		}),
	}
	reg.MustRegister(
		m.checksTotal, m.samplesTotal, m.failuresTotal, m.checkDuration,
		m.evalsTotal, m.evalDuration, m.activeChecks, m.scrapesTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	return m
}

func outcome(failed bool) string {
	if failed {
		return "failure"
	}
	return "success"
}

// CheckStarted marks a property as running.
func (m *Metrics) CheckStarted() { m.activeChecks.Inc() }

// ObserveCheck records a finished property.
func (m *Metrics) ObserveCheck(check string, samples, failures int, d time.Duration) {
	m.activeChecks.Dec()
	m.checksTotal.WithLabelValues(check, outcome(failures > 0)).Inc()
	m.samplesTotal.WithLabelValues(check).Add(float64(samples))
	m.failuresTotal.WithLabelValues(check).Add(float64(failures))
	m.checkDuration.WithLabelValues(check).Observe(d.Seconds())
}

// ObserveEval records one operation evaluation.
func (m *Metrics) ObserveEval(op string, d time.Duration, err error) {
	m.evalsTotal.WithLabelValues(op, outcome(err != nil)).Inc()
	m.evalDuration.WithLabelValues(op).Observe(d.Seconds())
}

// IncScrapes counts a request to the metrics endpoint.
func (m *Metrics) IncScrapes() { m.scrapesTotal.Inc() }

// Registry exposes the private registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WritePrometheus serves the metrics in the Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
