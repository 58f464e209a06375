package metrics

import (
	prom "github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/seek/internal/core/domain"
)

// RegisterCacheStats exports the cache counters read through stats at scrape time.
func RegisterCacheStats(reg *prom.Registry, stats func() domain.CacheStats) {
	counter := func(name, help string, pick func(domain.CacheStats) uint64) prom.CounterFunc {
		return prom.NewCounterFunc(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      name,
			Help:      help,
		}, func() float64 {
			return float64(pick(stats()))
		})
	}
	reg.MustRegister(
		counter("hits_total", "Cache lookups that returned an entry", func(s domain.CacheStats) uint64 { return s.Hits }),
		counter("misses_total", "Cache lookups that found nothing usable", func(s domain.CacheStats) uint64 { return s.Misses }),
		counter("writes_total", "Successful cache writes", func(s domain.CacheStats) uint64 { return s.Writes }),
		counter("errors_total", "Cache read and write failures", func(s domain.CacheStats) uint64 { return s.Errors }),
	)
}
