package workflow

import (
	"github.com/shopspring/decimal"

	"accounts-payable-service/internal/domain/approval"
	"accounts-payable-service/internal/domain/payable"
)

// ResolveLevel determines the approval level a payable needs. Pure: no
// persistence, no I/O.
//
// The raw amount is divided by the supplier risk multiplier (riskier
// suppliers amplify the effective amount), scaled by the category
// multiplier, then bumped for CRITICAL (x2.0) or HIGH (x1.5) priority.
// The first level whose CAD threshold covers the adjusted amount wins.
func ResolveLevel(amount decimal.Decimal, category payable.Category, risk payable.RiskLevel, priority payable.Priority) approval.Level {
	if amount.LessThanOrEqual(decimal.Zero) {
		return approval.LevelAutomatic
	}

	adjusted := amount.InexactFloat64() / risk.Multiplier()
	adjusted *= category.Multiplier()

	switch priority {
	case payable.PriorityCritical:
		adjusted *= 2.0
	case payable.PriorityHigh:
		adjusted *= 1.5
	}

	return approval.LevelForAmount(adjusted)
}
