package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	playerJoinedCounter prometheus.Counter
	roundStartedCounter prometheus.Counter
	roundSettledCounter prometheus.Counter
	betPlacedCounter    prometheus.Counter
	playerFoldedCounter prometheus.Counter
	showdownCounter     prometheus.Counter
	potSizeGauge        prometheus.Gauge
	activePlayersGauge  prometheus.Gauge
}

func (m *metrics) PlayerJoined() {
	m.playerJoinedCounter.Inc()
}

func (m *metrics) RoundStarted() {
	m.roundStartedCounter.Inc()
}

func (m *metrics) RoundSettled() {
	m.roundSettledCounter.Inc()
}

func (m *metrics) BetPlaced() {
	m.betPlacedCounter.Inc()
}

func (m *metrics) PlayerFolded() {
	m.playerFoldedCounter.Inc()
}

func (m *metrics) ShowdownRun() {
	m.showdownCounter.Inc()
}

func (m *metrics) SetPotSize(pot float64) {
	m.potSizeGauge.Set(pot)
}

func (m *metrics) SetActivePlayers(count int) {
	m.activePlayersGauge.Set(float64(count))
}

var Metrics = &metrics{
	playerJoinedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "players_joined_total",
		Help: "Total number of players that joined the table",
	}),
	roundStartedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "rounds_started_total",
		Help: "Total number of rounds started",
	}),
	roundSettledCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "rounds_settled_total",
		Help: "Total number of rounds settled",
	}),
	betPlacedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "bets_placed_total",
		Help: "Total number of bets accepted",
	}),
	playerFoldedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "players_folded_total",
		Help: "Total number of fold actions accepted",
	}),
	showdownCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "showdowns_total",
		Help: "Total number of showdowns resolved",
	}),
	potSizeGauge: promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pot_size",
		Help: "Current pot size of the active round",
	}),
	activePlayersGauge: promauto.NewGauge(prometheus.GaugeOpts{
		Name: "active_players_count",
		Help: "Count of players that have not folded in the current round",
	}),
}
