package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the bot's Prometheus counters.
type Metrics struct {
	SessionsStarted   prometheus.Counter
	SessionsCompleted prometheus.Counter
	SessionsCancelled prometheus.Counter
	SessionsExpired   prometheus.Counter
	EventsCreated     prometheus.Counter
	EventsApproved    prometheus.Counter
	EventsDeclined    prometheus.Counter
}

// New registers the counters on the default registry.
func New() *Metrics {
	return &Metrics{
		SessionsStarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "eventbot_sessions_started_total",
			Help: "Event submission sessions started.",
		}),
		SessionsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "eventbot_sessions_completed_total",
			Help: "Sessions that finished with a confirmed draft.",
		}),
		SessionsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "eventbot_sessions_cancelled_total",
			Help: "Sessions cancelled by the user or a superseding start.",
		}),
		SessionsExpired: promauto.NewCounter(prometheus.CounterOpts{
			Name: "eventbot_sessions_expired_total",
			Help: "Idle sessions removed by the sweeper.",
		}),
		EventsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "eventbot_events_created_total",
			Help: "Events submitted for moderation.",
		}),
		EventsApproved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "eventbot_events_approved_total",
			Help: "Events approved by a moderator.",
		}),
		EventsDeclined: promauto.NewCounter(prometheus.CounterOpts{
			Name: "eventbot_events_declined_total",
			Help: "Events declined by a moderator.",
		}),
	}
}

// Serve exposes /metrics on addr. It blocks, so run it in a goroutine.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
