package eventbus

import "github.com/prometheus/client_golang/prometheus"

// Collector exposes registry statistics as Prometheus metrics. Every scrape
// takes one Stats snapshot; nothing is tracked incrementally, so the exported
// values follow the same point-in-time semantics as Stats.
//
// Example:
//
//	bus := eventbus.New()
//	prometheus.MustRegister(eventbus.NewCollector(bus))
type Collector struct {
	bus *Bus

	events      *prometheus.Desc
	callbacks   *prometheus.Desc
	maxPerEvent *prometheus.Desc
}

// NewCollector creates a prometheus.Collector reporting on the given Bus.
func NewCollector(bus *Bus) *Collector {
	return &Collector{
		bus: bus,
		events: prometheus.NewDesc(
			"eventbus_events",
			"Distinct event names with at least one subscription.",
			nil, nil,
		),
		callbacks: prometheus.NewDesc(
			"eventbus_subscriptions",
			"Total subscriptions across all events.",
			nil, nil,
		),
		maxPerEvent: prometheus.NewDesc(
			"eventbus_max_subscriptions_per_event",
			"Largest subscription count held by a single event.",
			[]string{"event"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.events
	ch <- c.callbacks
	ch <- c.maxPerEvent
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.bus.Stats()

	ch <- prometheus.MustNewConstMetric(c.events, prometheus.GaugeValue, float64(st.TotalEvents))
	ch <- prometheus.MustNewConstMetric(c.callbacks, prometheus.GaugeValue, float64(st.TotalCallbacks))
	ch <- prometheus.MustNewConstMetric(c.maxPerEvent, prometheus.GaugeValue,
		float64(st.MaxCallbacksPerEvent), st.MostSubscribedEvent)
}
