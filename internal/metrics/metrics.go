package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Decisions counts review decisions by outcome (approve, reject, disapprove, resubmit).
	Decisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "studioflow",
		Name:      "review_decisions_total",
		Help:      "Review gateway decisions by outcome",
	}, []string{"decision"})

	// Dissolutions counts records permanently dissolved at the rejection limit.
	Dissolutions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "studioflow",
		Name:      "dissolutions_total",
		Help:      "Records permanently dissolved after repeated rejection",
	})

	// StageMoves counts stage transitions by target stage.
	StageMoves = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "studioflow",
		Name:      "stage_moves_total",
		Help:      "Stage transitions by target stage",
	}, []string{"stage"})

	// Allocations counts identifier allocations by namespace.
	Allocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "studioflow",
		Name:      "identifier_allocations_total",
		Help:      "Content identifier allocations by namespace",
	}, []string{"namespace"})

	// Assignments counts role assignments, split by balanced vs explicit.
	Assignments = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "studioflow",
		Name:      "role_assignments_total",
		Help:      "Role assignments by selection mode",
	}, []string{"mode"})
)
