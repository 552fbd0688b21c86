// Package metrics counts domain events with Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "shipping"

// Recorder owns the container counters. Each Recorder registers its
// collectors on its own registry so tests and multiple roots do not collide.
type Recorder struct {
	registry *prometheus.Registry

	containersCreated   *prometheus.CounterVec
	temperatureChanges  *prometheus.CounterVec
	temperatureRejected *prometheus.CounterVec
	cargoItemsLoaded    prometheus.Counter
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		containersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "containers",
			Name:      "created_total",
			Help:      "Total containers put into service",
		}, []string{"kind"}),
		temperatureChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "temperature",
			Name:      "changes_total",
			Help:      "Total accepted temperature writes",
		}, []string{"kind"}),
		temperatureRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "temperature",
			Name:      "rejections_total",
			Help:      "Total temperature writes rejected by a container policy",
		}, []string{"kind"}),
		cargoItemsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cargo",
			Name:      "items_loaded_total",
			Help:      "Total cargo items loaded into containers",
		}),
	}

	r.registry.MustRegister(
		r.containersCreated,
		r.temperatureChanges,
		r.temperatureRejected,
		r.cargoItemsLoaded,
	)

	return r
}

func (r *Recorder) ContainerCreated(kind string) {
	r.containersCreated.WithLabelValues(kind).Inc()
}

func (r *Recorder) TemperatureChanged(kind string) {
	r.temperatureChanges.WithLabelValues(kind).Inc()
}

func (r *Recorder) TemperatureRejected(kind string) {
	r.temperatureRejected.WithLabelValues(kind).Inc()
}

func (r *Recorder) CargoLoaded(items int) {
	r.cargoItemsLoaded.Add(float64(items))
}

// Gatherer exposes the registry, e.g. for prometheus.WriteToTextfile.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}
