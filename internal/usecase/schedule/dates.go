package schedule

import (
	"time"

	"github.com/shopspring/decimal"

	"accounts-payable-service/internal/domain/payable"
	"accounts-payable-service/pkg/bankcal"
)

var (
	wireThreshold = decimal.NewFromInt(100_000)
	achThreshold  = decimal.NewFromInt(10_000)

	wireFee    = decimal.NewFromFloat(25.00)
	interacFee = decimal.NewFromFloat(1.50)
	achFeeRate = decimal.NewFromFloat(0.001) // 0.1% of amount
)

// assignPaymentDate picks the concrete disbursement date for one selected
// payable: a priority-based offset from today, rolled forward to the next
// banking day.
func assignPaymentDate(s Score, today time.Time, cal *bankcal.Calendar) OptimizedPayment {
	p := s.Payable
	var target time.Time

	switch p.EffectivePriority() {
	case payable.PriorityCritical:
		target = today.AddDate(0, 0, 1)
	case payable.PriorityHigh:
		target = today.AddDate(0, 0, 2)
	case payable.PriorityMedium:
		if s.EarlyPaymentDiscount > 0.01 {
			// Worth paying early to capture the discount.
			target = today.AddDate(0, 0, 3)
		} else {
			target = p.DueDate.AddDate(0, 0, -5)
		}
	default:
		target = p.DueDate.AddDate(0, 0, -1)
	}

	paymentDate := cal.NextBusinessDay(target)
	method := methodForAmount(p.AmountDue)

	return OptimizedPayment{
		PayableID:        p.PayableID,
		Amount:           p.AmountDue,
		OriginalDueDate:  p.DueDate,
		PaymentDate:      paymentDate,
		Method:           method,
		EstimatedSavings: p.AmountDue.Mul(decimal.NewFromFloat(s.EarlyPaymentDiscount)).Round(2),
		ProcessingFee:    processingFee(method, p.AmountDue),
		SettlementDate:   settlementDate(method, paymentDate, cal),
		Score:            s,
	}
}

// methodForAmount tiers the disbursement channel by size.
func methodForAmount(amount decimal.Decimal) payable.PaymentMethod {
	switch {
	case amount.GreaterThan(wireThreshold):
		return payable.MethodWireTransfer
	case amount.GreaterThan(achThreshold):
		return payable.MethodACHTransfer
	default:
		return payable.MethodInteracETransfer
	}
}

func processingFee(method payable.PaymentMethod, amount decimal.Decimal) decimal.Decimal {
	switch method {
	case payable.MethodWireTransfer:
		return wireFee
	case payable.MethodACHTransfer:
		return amount.Mul(achFeeRate).Round(2)
	default:
		return interacFee
	}
}

// settlementDate estimates when funds land: wires and Interac settle same
// day, ACH settles the next banking day.
func settlementDate(method payable.PaymentMethod, paymentDate time.Time, cal *bankcal.Calendar) time.Time {
	if method == payable.MethodACHTransfer {
		return cal.NextBusinessDay(paymentDate.AddDate(0, 0, 1))
	}
	return paymentDate
}
