package workflow

import (
	"testing"

	"github.com/shopspring/decimal"

	"accounts-payable-service/internal/domain/approval"
	"accounts-payable-service/internal/domain/payable"
)

func TestResolveLevel(t *testing.T) {
	cases := []struct {
		name     string
		amount   string
		category payable.Category
		risk     payable.RiskLevel
		priority payable.Priority
		want     approval.Level
	}{
		{
			// 800 / 1.0 * 1.0 = 800
			"small low-risk materials auto-approves",
			"800.00", payable.CategoryMaterials, payable.RiskLow, payable.PriorityLow,
			approval.LevelAutomatic,
		},
		{
			// exactly at the automatic ceiling
			"boundary stays automatic",
			"1000.00", payable.CategoryMaterials, payable.RiskLow, payable.PriorityMedium,
			approval.LevelAutomatic,
		},
		{
			"just over boundary needs a supervisor",
			"1000.01", payable.CategoryMaterials, payable.RiskLow, payable.PriorityMedium,
			approval.LevelSupervisor,
		},
		{
			// 15000 / 0.7 * 1.5 * 1.5 ~= 48214 -> manager band
			"risk and priority amplify the amount",
			"15000.00", payable.CategorySubcontractor, payable.RiskMedium, payable.PriorityHigh,
			approval.LevelManager,
		},
		{
			// 5000 / 0.3 * 2.0 * 2.0 = 66666 -> director band
			"critical risk on emergency work escalates hard",
			"5000.00", payable.CategoryEmergency, payable.RiskCritical, payable.PriorityCritical,
			approval.LevelDirector,
		},
		{
			// 30000 / 1.0 * 0.8 = 24000 -> manager band
			"equipment discount keeps it at manager",
			"30000.00", payable.CategoryEquipment, payable.RiskLow, payable.PriorityMedium,
			approval.LevelManager,
		},
		{
			// 400000 / 0.5 * 1.2 = 960000 -> beyond CFO
			"huge risky labor bill reaches the ceo",
			"400000.00", payable.CategoryLabor, payable.RiskHigh, payable.PriorityMedium,
			approval.LevelCEO,
		},
		{
			"non-positive amount needs no review",
			"0.00", payable.CategoryMaterials, payable.RiskLow, payable.PriorityLow,
			approval.LevelAutomatic,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			amt := decimal.RequireFromString(tc.amount)
			got := ResolveLevel(amt, tc.category, tc.risk, tc.priority)
			if got != tc.want {
				t.Fatalf("ResolveLevel(%s, %s, %s, %s)=%s want=%s",
					tc.amount, tc.category, tc.risk, tc.priority, got, tc.want)
			}
		})
	}
}
