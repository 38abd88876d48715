package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Hub metrics cover the realtime fan-out path: live channel count,
// broadcast calls, per-channel deliveries, failed deliveries that led to
// an eviction, and chat payloads rejected by the cooldown gate.
type Hub struct {
	ActiveConnections prometheus.Gauge
	BroadcastsTotal   prometheus.Counter
	DeliveriesTotal   prometheus.Counter
	EvictionsTotal    prometheus.Counter
	RateLimitedTotal  prometheus.Counter
}

func NewHub(reg prometheus.Registerer) *Hub {
	factory := promauto.With(reg)

	return &Hub{
		ActiveConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "watchparty_ws_active_connections",
			Help: "Number of websocket channels currently registered across all rooms.",
		}),
		BroadcastsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "watchparty_ws_broadcasts_total",
			Help: "Number of broadcast calls handled by the hub.",
		}),
		DeliveriesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "watchparty_ws_deliveries_total",
			Help: "Number of per-channel event deliveries attempted.",
		}),
		EvictionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "watchparty_ws_evictions_total",
			Help: "Number of channels evicted after a failed delivery.",
		}),
		RateLimitedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "watchparty_ws_rate_limited_total",
			Help: "Number of chat/emoji payloads rejected by the cooldown gate.",
		}),
	}
}

// NewDefaultHub registers against the default prometheus registry.
func NewDefaultHub() *Hub {
	return NewHub(prometheus.DefaultRegisterer)
}
