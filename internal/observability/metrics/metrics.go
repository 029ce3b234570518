package metrics

import "github.com/prometheus/client_golang/prometheus"

// EngineMetrics exposes counters/histograms for the qualification engine.
type EngineMetrics struct {
	turnsTotal      *prometheus.CounterVec
	faqHitsTotal    prometheus.Counter
	leadsTotal      *prometheus.CounterVec
	learningDropped prometheus.Counter
	turnLatency     prometheus.Histogram
}

func NewEngineMetrics(reg prometheus.Registerer) *EngineMetrics {
	m := &EngineMetrics{
		turnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "loanflow",
			Subsystem: "engine",
			Name:      "turns_total",
			Help:      "Total processed conversation turns",
		}, []string{"intent", "sentiment"}),
		faqHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "loanflow",
			Subsystem: "engine",
			Name:      "faq_hits_total",
			Help:      "Turns answered from the FAQ table",
		}),
		leadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "loanflow",
			Subsystem: "engine",
			Name:      "leads_total",
			Help:      "Qualified leads emitted",
		}, []string{"priority"}),
		learningDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "loanflow",
			Subsystem: "engine",
			Name:      "learning_records_dropped_total",
			Help:      "Learning records dropped because the buffer was full",
		}),
		turnLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "loanflow",
			Subsystem: "engine",
			Name:      "turn_latency_seconds",
			Help:      "Latency of engine turn processing",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.turnsTotal, m.faqHitsTotal, m.leadsTotal, m.learningDropped, m.turnLatency)
	return m
}

func (m *EngineMetrics) ObserveTurn(intent, sentiment string, seconds float64) {
	if m == nil {
		return
	}
	m.turnsTotal.WithLabelValues(intent, sentiment).Inc()
	m.turnLatency.Observe(seconds)
}

func (m *EngineMetrics) ObserveFAQHit() {
	if m == nil {
		return
	}
	m.faqHitsTotal.Inc()
}

func (m *EngineMetrics) ObserveLead(priority string) {
	if m == nil {
		return
	}
	m.leadsTotal.WithLabelValues(priority).Inc()
}

func (m *EngineMetrics) ObserveLearningDrop() {
	if m == nil {
		return
	}
	m.learningDropped.Inc()
}
