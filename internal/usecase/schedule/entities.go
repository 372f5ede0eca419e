package schedule

import (
	"time"

	"github.com/shopspring/decimal"

	"accounts-payable-service/internal/domain/payable"
)

// SupplierService supplies the per-supplier factors the scoring engine
// cannot derive from the payable itself. External in a full deployment.
type SupplierService interface {
	// Reliability is a [0,1] payment-history grade.
	Reliability(supplierID int64) float64
	// EarlyPaymentDiscount is the fraction of face value saved by paying
	// early under the supplier's terms.
	EarlyPaymentDiscount(p *payable.Payable) float64
}

// Score is the ephemeral per-run desirability of paying one payable. All
// five sub-scores stay visible for observability.
type Score struct {
	Payable *payable.Payable `json:"-"`

	Total                float64 `json:"total"`
	DueDateScore         float64 `json:"due_date_score"`
	SupplierReliability  float64 `json:"supplier_reliability"`
	EarlyPaymentDiscount float64 `json:"early_payment_discount"`
	CashFlowImpact       float64 `json:"cash_flow_impact"`
	PriorityScore        float64 `json:"priority_score"`
}

type OptimizedPayment struct {
	PayableID        string                `json:"payable_id"`
	Amount           decimal.Decimal       `json:"amount"`
	OriginalDueDate  time.Time             `json:"original_due_date"`
	PaymentDate      time.Time             `json:"payment_date"`
	Method           payable.PaymentMethod `json:"payment_method"`
	EstimatedSavings decimal.Decimal       `json:"estimated_savings"`
	ProcessingFee    decimal.Decimal       `json:"processing_fee"`
	SettlementDate   time.Time             `json:"settlement_date"`
	Score            Score                 `json:"score"`
}

type Metrics struct {
	TotalSavings         decimal.Decimal `json:"total_savings"`
	TotalOptimizedAmount decimal.Decimal `json:"total_optimized_amount"`
	TotalOriginalAmount  decimal.Decimal `json:"total_original_amount"`
	OptimizationRate     float64         `json:"optimization_rate"`
	AverageDateShiftDays float64         `json:"average_date_shift_days"`
	PaymentsOptimized    int             `json:"payments_optimized"`
	PaymentsExcluded     int             `json:"payments_excluded"`
}

// Schedule is the batch result: derived output only, recomputed fresh on
// every run, never persisted.
type Schedule struct {
	Payments    []OptimizedPayment `json:"payments"`
	Metrics     Metrics            `json:"metrics"`
	GeneratedAt time.Time          `json:"generated_at"`
}
