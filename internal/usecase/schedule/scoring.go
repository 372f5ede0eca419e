package schedule

import (
	"time"

	"accounts-payable-service/internal/domain/payable"
)

// Factor weights. They sum to 1.0 so the aggregate stays in [0,1] for
// well-formed inputs.
const (
	weightDueDate     = 0.30
	weightReliability = 0.25
	weightDiscount    = 0.20
	weightCashFlow    = 0.15
	weightPriority    = 0.10
)

// cashFlowCeiling normalizes amount impact: payables at or above this eat
// the whole cash-flow factor.
const cashFlowCeiling = 100_000.0

// scorePayable computes the weighted desirability of scheduling a payable.
//
// The due-date factor rewards slack, not urgency: a far-future due date
// scores high because the payment can be moved freely. Urgency is handled
// by the date optimizer, not the score.
func scorePayable(p *payable.Payable, supplier SupplierService, today time.Time) Score {
	daysUntilDue := daysBetween(today, p.DueDate)
	dueDateScore := minF(float64(daysUntilDue)/30.0, 1.0)

	reliability := supplier.Reliability(p.SupplierID)
	discount := supplier.EarlyPaymentDiscount(p)

	amount := p.AmountDue.InexactFloat64()
	cashFlowImpact := minF(amount/cashFlowCeiling, 1.0)

	priorityScore := p.EffectivePriority().Score()

	total := dueDateScore*weightDueDate +
		reliability*weightReliability +
		discount*weightDiscount +
		(1.0-cashFlowImpact)*weightCashFlow +
		priorityScore*weightPriority

	return Score{
		Payable:              p,
		Total:                total,
		DueDateScore:         dueDateScore,
		SupplierReliability:  reliability,
		EarlyPaymentDiscount: discount,
		CashFlowImpact:       cashFlowImpact,
		PriorityScore:        priorityScore,
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// daysBetween counts whole calendar days from a to b (negative when b is
// in the past).
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
