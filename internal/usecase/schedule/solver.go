package schedule

import (
	"sort"

	"github.com/shopspring/decimal"
)

// selectWithinBudget applies the cash-flow ceiling: scores are ranked
// descending and accepted greedily while their full amount fits the
// remaining budget. A payable that does not fit is skipped for the run
// even if a later smaller one still fits. Single-pass greedy, not a
// knapsack solve.
func selectWithinBudget(scores []Score, budget decimal.Decimal) []Score {
	ranked := make([]Score, len(scores))
	copy(ranked, scores)
	// Stable keeps input order for equal scores, so a fixed ordering is
	// fully deterministic.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})

	remaining := budget
	feasible := make([]Score, 0, len(ranked))
	for _, s := range ranked {
		amount := s.Payable.AmountDue
		if remaining.GreaterThanOrEqual(amount) {
			feasible = append(feasible, s)
			remaining = remaining.Sub(amount)
		}
	}
	return feasible
}
