package identicon

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "identicon",
		Name:      "cache_lookups_total",
	}, []string{"result"})
	cacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "identicon",
		Name:      "cache_evictions_total",
	})
	generations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "identicon",
		Name:      "generations_total",
	}, []string{"status"})
)
