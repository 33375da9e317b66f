// Package metrics exports battle counters to Prometheus.
package metrics

import (
	"errors"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/younwookim/defender/internal/application/system"
)

const namespace = "defender"

// Metrics holds the battle collectors
type Metrics struct {
	events   *prometheus.CounterVec
	damage   *prometheus.HistogramVec
	defeated *prometheus.CounterVec
	outcomes *prometheus.CounterVec
	round    prometheus.Gauge
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "battle_events_total",
			Help:      "Battle events by kind.",
		}, []string{"kind"}),
		damage: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "attack_damage",
			Help:      "Damage dealt per attack.",
			Buckets:   []float64{5, 10, 15, 20, 30, 40, 50},
		}, []string{"ability"}),
		defeated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fighters_defeated_total",
			Help:      "Fighters knocked out, by kind.",
		}, []string{"kind"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "battles_finished_total",
			Help:      "Finished battles by outcome.",
		}, []string{"outcome"}),
		round: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "battle_round",
			Help:      "Round of the running battle.",
		}),
	}

	for _, c := range []prometheus.Collector{m.events, m.damage, m.defeated, m.outcomes, m.round} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Listener returns a battle listener that updates the collectors
func (m *Metrics) Listener() system.Listener {
	return func(ev system.Event) {
		m.events.WithLabelValues(ev.Kind.String()).Inc()
		m.round.Set(float64(ev.Round))

		switch ev.Kind {
		case system.EventAttacked:
			m.damage.WithLabelValues(ev.Ability.String()).Observe(float64(ev.Damage))
		case system.EventDefeated:
			if ev.Target != nil {
				m.defeated.WithLabelValues(ev.Target.Kind.String()).Inc()
			}
		case system.EventVictory:
			m.outcomes.WithLabelValues("victory").Inc()
		case system.EventDefeat:
			m.outcomes.WithLabelValues("defeat").Inc()
		}
	}
}

// Handler serves the metrics gathered by g
func Handler(g prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return mux
}

// StartHTTP serves /metrics on addr in the background.
// Close the returned server to stop it.
func StartHTTP(addr string, g prometheus.Gatherer) *http.Server {
	srv := &http.Server{Addr: addr, Handler: Handler(g)}
	go func() {
		log.Printf("Prometheus /metrics listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Metrics server: %v", err)
		}
	}()
	return srv
}
