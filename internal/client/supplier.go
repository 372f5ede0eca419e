package client

import (
	"github.com/shopspring/decimal"

	"accounts-payable-service/internal/domain/payable"
)

var discountFloor = decimal.NewFromInt(10_000)

// StaticSupplierService grades suppliers from local rules. Replace with
// the supplier risk service client once it is reachable from this
// deployment; risk overrides can be seeded per supplier in the meantime.
type StaticSupplierService struct {
	riskOverrides map[int64]payable.RiskLevel
}

func NewStaticSupplierService(riskOverrides map[int64]payable.RiskLevel) *StaticSupplierService {
	return &StaticSupplierService{riskOverrides: riskOverrides}
}

func (s *StaticSupplierService) RiskFor(supplierID int64) payable.RiskLevel {
	if r, ok := s.riskOverrides[supplierID]; ok {
		return r
	}
	return payable.RiskLow
}

// Reliability spreads suppliers across [0.80, 0.98] by id.
func (s *StaticSupplierService) Reliability(supplierID int64) float64 {
	if supplierID < 0 {
		supplierID = -supplierID
	}
	return 0.8 + float64(supplierID%10)*0.02
}

// EarlyPaymentDiscount: 2% on payables over 10,000 CAD, 1% otherwise.
func (s *StaticSupplierService) EarlyPaymentDiscount(p *payable.Payable) float64 {
	if p.AmountDue.GreaterThan(discountFloor) {
		return 0.02
	}
	return 0.01
}
