package schedule

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"accounts-payable-service/internal/domain/payable"
	"accounts-payable-service/pkg/bankcal"
)

// Optimizer builds the cash-flow-respecting disbursement schedule for a
// batch of payables. One-shot, read-only computation over a snapshot: it
// never mutates payable state, so concurrent runs need no locking.
type Optimizer struct {
	payables payable.Repository
	supplier SupplierService
	cal      *bankcal.Calendar
	log      zerolog.Logger

	today func() time.Time
}

func NewOptimizer(payables payable.Repository, supplier SupplierService, cal *bankcal.Calendar, log zerolog.Logger) *Optimizer {
	return &Optimizer{
		payables: payables,
		supplier: supplier,
		cal:      cal,
		log:      log,
		today:    func() time.Time { return time.Now().UTC() },
	}
}

// OptimizeByIDs loads the referenced payables and optimizes them. Unknown
// ids simply count as excluded.
func (o *Optimizer) OptimizeByIDs(ctx context.Context, payableIDs []string, budget decimal.Decimal) (*Schedule, error) {
	pays, err := o.payables.ListByPayableIDs(ctx, payableIDs)
	if err != nil {
		return nil, err
	}
	sched := o.OptimizeSchedule(pays, budget)
	sched.Metrics.PaymentsExcluded += len(payableIDs) - len(pays)
	return sched, nil
}

// OptimizeSchedule scores the batch, greedily selects the feasible subset
// under the budget, assigns each survivor a payment date and method, and
// aggregates the batch metrics. Malformed payables are excluded per item,
// never fatal.
func (o *Optimizer) OptimizeSchedule(pays []*payable.Payable, budget decimal.Decimal) *Schedule {
	today := o.today()

	totalOriginal := decimal.Zero
	scores := make([]Score, 0, len(pays))
	for _, p := range pays {
		if p == nil || p.AmountDue.LessThanOrEqual(decimal.Zero) || p.DueDate.IsZero() {
			continue
		}
		totalOriginal = totalOriginal.Add(p.AmountDue)
		scores = append(scores, scorePayable(p, o.supplier, today))
	}

	feasible := selectWithinBudget(scores, budget)

	payments := make([]OptimizedPayment, 0, len(feasible))
	totalOptimized := decimal.Zero
	totalSavings := decimal.Zero
	shiftDays := 0
	for _, s := range feasible {
		op := assignPaymentDate(s, today, o.cal)
		payments = append(payments, op)
		totalOptimized = totalOptimized.Add(op.Amount)
		totalSavings = totalSavings.Add(op.EstimatedSavings)
		shiftDays += daysBetween(op.OriginalDueDate, op.PaymentDate)
	}

	m := Metrics{
		TotalSavings:         totalSavings,
		TotalOptimizedAmount: totalOptimized,
		TotalOriginalAmount:  totalOriginal,
		PaymentsOptimized:    len(payments),
		PaymentsExcluded:     len(pays) - len(payments),
	}
	if len(pays) > 0 {
		m.OptimizationRate = float64(len(payments)) / float64(len(pays))
	}
	if len(payments) > 0 {
		m.AverageDateShiftDays = float64(shiftDays) / float64(len(payments))
	}

	o.log.Info().
		Int("input", len(pays)).
		Int("optimized", m.PaymentsOptimized).
		Int("excluded", m.PaymentsExcluded).
		Str("total_savings", m.TotalSavings.StringFixed(2)).
		Msg("payment schedule optimized")

	return &Schedule{
		Payments:    payments,
		Metrics:     m,
		GeneratedAt: time.Now().UTC(),
	}
}
