// Package metrics exports engine measurements as Prometheus metrics.
package metrics

import (
	"strconv"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
)

const namespace = "seek"

// Recorder implements ports.Metrics using Prometheus collectors.
type Recorder struct {
	once              sync.Once
	discoveryDuration *prom.HistogramVec
	discoveries       *prom.CounterVec
	invalidations     *prom.CounterVec
	activeWorkers     prom.Gauge
	probeDuration     *prom.HistogramVec
}

var _ ports.Metrics = (*Recorder)(nil)

// NewRecorder constructs and registers the engine metrics on reg.
func NewRecorder(reg *prom.Registry) *Recorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	r := &Recorder{}
	r.once.Do(func() {
		r.discoveryDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "discovery_duration_seconds",
			Help:      "Duration of discoveries by terminal state",
			Buckets:   prom.DefBuckets,
		}, []string{"state"})
		r.discoveries = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "discoveries_total",
			Help:      "Discoveries by terminal state and cache use",
		}, []string{"state", "from_cache"})
		r.invalidations = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "cache_invalidations_total",
			Help:      "Cached discoveries rejected by reason",
		}, []string{"reason"})
		r.activeWorkers = prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "active_workers",
			Help:      "Live worker handles held by the supervisor",
		})
		r.probeDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "probe_duration_seconds",
			Help:      "Duration of version probes by outcome",
			Buckets:   prom.DefBuckets,
		}, []string{"result"})
		reg.MustRegister(r.discoveryDuration, r.discoveries, r.invalidations, r.activeWorkers, r.probeDuration)
	})
	return r
}

// ObserveDiscovery records the terminal state and duration of one discovery.
func (r *Recorder) ObserveDiscovery(state domain.WorkerState, fromCache bool, d time.Duration) {
	if r == nil || r.discoveries == nil {
		return
	}
	r.discoveryDuration.WithLabelValues(string(state)).Observe(d.Seconds())
	r.discoveries.WithLabelValues(string(state), strconv.FormatBool(fromCache)).Inc()
}

// IncInvalidation counts a cache invalidation by reason.
func (r *Recorder) IncInvalidation(reason string) {
	if r == nil || r.invalidations == nil {
		return
	}
	r.invalidations.WithLabelValues(reason).Inc()
}

// SetActiveWorkers records the number of live worker handles.
func (r *Recorder) SetActiveWorkers(n int) {
	if r == nil || r.activeWorkers == nil {
		return
	}
	r.activeWorkers.Set(float64(n))
}

// ObserveProbe records the duration of one version probe.
func (r *Recorder) ObserveProbe(known bool, d time.Duration) {
	if r == nil || r.probeDuration == nil {
		return
	}
	res := "unknown"
	if known {
		res = "known"
	}
	r.probeDuration.WithLabelValues(res).Observe(d.Seconds())
}
