package schedule

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"accounts-payable-service/internal/domain/payable"
)

// supStub is a fixed-factor SupplierService for deterministic scoring.
type supStub struct {
	reliability float64
	discount    float64
}

func (s supStub) Reliability(int64) float64 { return s.reliability }

func (s supStub) EarlyPaymentDiscount(*payable.Payable) float64 { return s.discount }

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestScorePayable(t *testing.T) {
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	p := &payable.Payable{
		PayableID: "00000000000000000000000000000001",
		AmountDue: decimal.NewFromInt(25_000),
		DueDate:   today.AddDate(0, 0, 15),
		Priority:  payable.PriorityHigh,
	}

	got := scorePayable(p, supStub{reliability: 0.9, discount: 0.02}, today)

	// 15 of 30 days of slack.
	if !almostEqual(got.DueDateScore, 0.5) {
		t.Errorf("DueDateScore=%v want=0.5", got.DueDateScore)
	}
	if !almostEqual(got.CashFlowImpact, 0.25) {
		t.Errorf("CashFlowImpact=%v want=0.25", got.CashFlowImpact)
	}
	if !almostEqual(got.PriorityScore, 0.8) {
		t.Errorf("PriorityScore=%v want=0.8", got.PriorityScore)
	}

	// 0.5*0.30 + 0.9*0.25 + 0.02*0.20 + 0.75*0.15 + 0.8*0.10
	want := 0.5*weightDueDate + 0.9*weightReliability + 0.02*weightDiscount + 0.75*weightCashFlow + 0.8*weightPriority
	if !almostEqual(got.Total, want) {
		t.Errorf("Total=%v want=%v", got.Total, want)
	}
}

func TestScorePayable_Clamps(t *testing.T) {
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// Far-future due date and a huge amount both saturate their factors.
	p := &payable.Payable{
		AmountDue: decimal.NewFromInt(500_000),
		DueDate:   today.AddDate(0, 6, 0),
		Priority:  payable.PriorityLow,
	}
	got := scorePayable(p, supStub{}, today)

	if got.DueDateScore != 1.0 {
		t.Errorf("DueDateScore=%v want=1.0", got.DueDateScore)
	}
	if got.CashFlowImpact != 1.0 {
		t.Errorf("CashFlowImpact=%v want=1.0", got.CashFlowImpact)
	}
}

func TestScorePayable_OverdueGoesNegative(t *testing.T) {
	today := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	// 3 days overdue: the slack factor punishes the total.
	p := &payable.Payable{
		AmountDue: decimal.NewFromInt(1_000),
		DueDate:   today.AddDate(0, 0, -3),
		Priority:  payable.PriorityLow,
	}
	got := scorePayable(p, supStub{}, today)

	if !almostEqual(got.DueDateScore, -0.1) {
		t.Errorf("DueDateScore=%v want=-0.1", got.DueDateScore)
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC)
	b := time.Date(2026, 9, 4, 0, 1, 0, 0, time.UTC)

	// Clock times are ignored, only calendar dates count.
	if got := daysBetween(a, b); got != 3 {
		t.Errorf("daysBetween forward=%d want=3", got)
	}
	if got := daysBetween(b, a); got != -3 {
		t.Errorf("daysBetween backward=%d want=-3", got)
	}
	if got := daysBetween(a, a); got != 0 {
		t.Errorf("daysBetween same day=%d want=0", got)
	}
}
