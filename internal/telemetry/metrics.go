package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the engine's prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	roomsCreated       *prometheus.CounterVec
	roomsJoined        *prometheus.CounterVec
	joinRacesLost      prometheus.Counter
	matchesCreated     prometheus.Counter
	matchesFinalized   *prometheus.CounterVec
	submissions        *prometheus.CounterVec
	leaderboardRetries prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		roomsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quizduel",
			Name:      "rooms_created_total",
			Help:      "Rooms created, by match type.",
		}, []string{"match_type"}),
		roomsJoined: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quizduel",
			Name:      "rooms_joined_total",
			Help:      "Successful second-participant joins, by path.",
		}, []string{"path"}),
		joinRacesLost: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quizduel",
			Name:      "join_races_lost_total",
			Help:      "Conditional joins that lost to a concurrent joiner.",
		}),
		matchesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quizduel",
			Name:      "matches_created_total",
			Help:      "Matches promoted from full rooms.",
		}),
		matchesFinalized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quizduel",
			Name:      "matches_finalized_total",
			Help:      "Matches completed, by outcome.",
		}, []string{"outcome"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quizduel",
			Name:      "submissions_total",
			Help:      "submitAnswers calls, by result.",
		}, []string{"result"}),
		leaderboardRetries: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quizduel",
			Name:      "leaderboard_tx_attempts",
			Help:      "Optimistic transaction attempts per leaderboard credit.",
			Buckets:   []float64{1, 2, 3, 5, 8},
		}),
	}

	reg.MustRegister(
		m.roomsCreated,
		m.roomsJoined,
		m.joinRacesLost,
		m.matchesCreated,
		m.matchesFinalized,
		m.submissions,
		m.leaderboardRetries,
	)

	return m
}

func (m *Metrics) RoomCreated(matchType string) {
	if m != nil {
		m.roomsCreated.WithLabelValues(matchType).Inc()
	}
}

func (m *Metrics) RoomJoined(path string) {
	if m != nil {
		m.roomsJoined.WithLabelValues(path).Inc()
	}
}

func (m *Metrics) JoinRaceLost() {
	if m != nil {
		m.joinRacesLost.Inc()
	}
}

func (m *Metrics) MatchCreated() {
	if m != nil {
		m.matchesCreated.Inc()
	}
}

func (m *Metrics) MatchFinalized(outcome string) {
	if m != nil {
		m.matchesFinalized.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) Submission(result string) {
	if m != nil {
		m.submissions.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) LeaderboardAttempts(n int) {
	if m != nil {
		m.leaderboardRetries.Observe(float64(n))
	}
}
