package payable

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending       Status = "pending"
	StatusInApproval    Status = "in_approval"
	StatusApproved      Status = "approved"
	StatusRejected      Status = "rejected"
	StatusPaid          Status = "paid"
	StatusPartiallyPaid Status = "partially_paid"
	StatusOverdue       Status = "overdue"
	StatusCanceled      Status = "canceled"
)

// Category classifies what a payable is for. Each category carries a
// multiplier used when adjusting amounts for approval routing.
type Category string

const (
	CategoryMaterials            Category = "MATERIALS"
	CategoryLabor                Category = "LABOR"
	CategoryEquipment            Category = "EQUIPMENT"
	CategorySubcontractor        Category = "SUBCONTRACTOR"
	CategoryProfessionalServices Category = "PROFESSIONAL_SERVICES"
	CategoryPermits              Category = "PERMITS"
	CategoryInsurance            Category = "INSURANCE"
	CategoryEmergency            Category = "EMERGENCY"
	CategoryUtilities            Category = "UTILITIES"
	CategoryOther                Category = "OTHER"
)

var categoryMultipliers = map[Category]float64{
	CategoryMaterials:            1.0,
	CategoryLabor:                1.2,
	CategoryEquipment:            0.8,
	CategorySubcontractor:        1.5,
	CategoryProfessionalServices: 1.1,
	CategoryPermits:              2.0,
	CategoryInsurance:            1.3,
	CategoryEmergency:            2.0,
	CategoryUtilities:            1.4,
	CategoryOther:                1.0,
}

// Multiplier returns the approval-threshold adjustment for the category.
// Unknown categories behave like OTHER.
func (c Category) Multiplier() float64 {
	if m, ok := categoryMultipliers[c]; ok {
		return m
	}
	return 1.0
}

func (c Category) Valid() bool {
	_, ok := categoryMultipliers[c]
	return ok
}

// RiskLevel is a supplier risk assessment. The multiplier is a divisor on
// the payable amount: riskier suppliers get a smaller divisor, so the same
// dollar amount needs a higher approval level.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

var riskMultipliers = map[RiskLevel]float64{
	RiskLow:      1.0,
	RiskMedium:   0.7,
	RiskHigh:     0.5,
	RiskCritical: 0.3,
}

func (r RiskLevel) Multiplier() float64 {
	if m, ok := riskMultipliers[r]; ok {
		return m
	}
	return 1.0
}

type Priority string

const (
	PriorityCritical Priority = "CRITICAL"
	PriorityHigh     Priority = "HIGH"
	PriorityMedium   Priority = "MEDIUM"
	PriorityLow      Priority = "LOW"
)

// Score returns the normalized [0,1] weight used by payment scoring.
func (p Priority) Score() float64 {
	switch p {
	case PriorityCritical:
		return 1.0
	case PriorityHigh:
		return 0.8
	case PriorityMedium:
		return 0.6
	default:
		return 0.4
	}
}

type PaymentMethod string

const (
	MethodWireTransfer     PaymentMethod = "WIRE_TRANSFER"
	MethodACHTransfer      PaymentMethod = "ACH_TRANSFER"
	MethodInteracETransfer PaymentMethod = "INTERAC_E_TRANSFER"
)

type Payable struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	PayableID   string          `gorm:"size:32;uniqueIndex:ux_payables_payable_id_active" json:"payable_id"`
	SupplierID  int64           `gorm:"column:supplier_id;index:idx_payables_supplier" json:"supplier_id"`
	Description string          `gorm:"type:text" json:"description"`
	Category    Category        `gorm:"size:32" json:"category"`
	Priority    Priority        `gorm:"size:16" json:"priority"`
	AmountDue   decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount_due"`
	DueDate     time.Time       `gorm:"type:date" json:"due_date"`
	Status      Status          `gorm:"size:24;default:'pending'" json:"status"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Payable) TableName() string { return "payables" }

// EffectivePriority returns the stored priority, falling back to a
// derivation from the description and amount when none was recorded.
func (p *Payable) EffectivePriority() Priority {
	if p.Priority != "" {
		return p.Priority
	}
	desc := strings.ToLower(p.Description)
	switch {
	case strings.Contains(desc, "emergency") || strings.Contains(desc, "critical"):
		return PriorityCritical
	case p.AmountDue.GreaterThan(decimal.NewFromInt(50_000)):
		return PriorityHigh
	case p.AmountDue.GreaterThan(decimal.NewFromInt(10_000)):
		return PriorityMedium
	default:
		return PriorityLow
	}
}
