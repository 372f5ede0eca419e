package schedule

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"accounts-payable-service/internal/domain/payable"
	"accounts-payable-service/pkg/bankcal"
)

func datePayable(priority payable.Priority, amount string, due time.Time) *payable.Payable {
	return &payable.Payable{
		PayableID: "00000000000000000000000000000001",
		AmountDue: decimal.RequireFromString(amount),
		DueDate:   due,
		Priority:  priority,
	}
}

func TestAssignPaymentDate_PriorityOffsets(t *testing.T) {
	// A Tuesday, so short offsets stay inside the work week.
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2026, 9, 22, 0, 0, 0, 0, time.UTC)
	cal := bankcal.New(nil)

	cases := []struct {
		name     string
		priority payable.Priority
		discount float64
		want     time.Time
	}{
		{"critical pays tomorrow", payable.PriorityCritical, 0.0, today.AddDate(0, 0, 1)},
		{"high pays in two days", payable.PriorityHigh, 0.0, today.AddDate(0, 0, 2)},
		{"medium with discount pays early", payable.PriorityMedium, 0.02, today.AddDate(0, 0, 3)},
		{"medium without discount waits", payable.PriorityMedium, 0.01, due.AddDate(0, 0, -5)},
		{"low pays the day before due", payable.PriorityLow, 0.0, due.AddDate(0, 0, -1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Score{Payable: datePayable(tc.priority, "5000.00", due), EarlyPaymentDiscount: tc.discount}
			got := assignPaymentDate(s, today, cal)
			if !got.PaymentDate.Equal(tc.want) {
				t.Fatalf("PaymentDate=%s want=%s", got.PaymentDate.Format("2006-01-02"), tc.want.Format("2006-01-02"))
			}
		})
	}
}

func TestAssignPaymentDate_RollsOverWeekend(t *testing.T) {
	// Friday: a critical next-day payment lands on Saturday and must roll
	// to Monday.
	friday := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	due := friday.AddDate(0, 0, 30)
	cal := bankcal.New(nil)

	s := Score{Payable: datePayable(payable.PriorityCritical, "5000.00", due)}
	got := assignPaymentDate(s, friday, cal)

	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	if !got.PaymentDate.Equal(monday) {
		t.Fatalf("PaymentDate=%s want=%s", got.PaymentDate.Format("2006-01-02"), monday.Format("2006-01-02"))
	}
}

func TestAssignPaymentDate_RollsOverHoliday(t *testing.T) {
	// Same Friday, but Monday is a holiday (Labour Day): land on Tuesday.
	friday := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	due := friday.AddDate(0, 0, 30)
	labourDay := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	cal := bankcal.New([]time.Time{labourDay})

	s := Score{Payable: datePayable(payable.PriorityCritical, "5000.00", due)}
	got := assignPaymentDate(s, friday, cal)

	tuesday := labourDay.AddDate(0, 0, 1)
	if !got.PaymentDate.Equal(tuesday) {
		t.Fatalf("PaymentDate=%s want=%s", got.PaymentDate.Format("2006-01-02"), tuesday.Format("2006-01-02"))
	}
}

func TestMethodForAmount(t *testing.T) {
	cases := []struct {
		amount string
		want   payable.PaymentMethod
	}{
		{"150000.00", payable.MethodWireTransfer},
		{"100000.01", payable.MethodWireTransfer},
		{"100000.00", payable.MethodACHTransfer}, // boundary stays ACH
		{"25000.00", payable.MethodACHTransfer},
		{"10000.00", payable.MethodInteracETransfer}, // boundary stays Interac
		{"500.00", payable.MethodInteracETransfer},
	}
	for _, tc := range cases {
		if got := methodForAmount(decimal.RequireFromString(tc.amount)); got != tc.want {
			t.Errorf("methodForAmount(%s)=%s want=%s", tc.amount, got, tc.want)
		}
	}
}

func TestProcessingFee(t *testing.T) {
	if got := processingFee(payable.MethodWireTransfer, decimal.NewFromInt(200_000)); !got.Equal(decimal.NewFromFloat(25.00)) {
		t.Errorf("wire fee=%s want=25", got)
	}
	// 0.1% of 25,000 = 25.00
	if got := processingFee(payable.MethodACHTransfer, decimal.NewFromInt(25_000)); !got.Equal(decimal.NewFromFloat(25.00)) {
		t.Errorf("ach fee=%s want=25", got)
	}
	// Rounded to cents: 0.1% of 12,345.67 = 12.35
	if got := processingFee(payable.MethodACHTransfer, decimal.RequireFromString("12345.67")); !got.Equal(decimal.RequireFromString("12.35")) {
		t.Errorf("ach fee=%s want=12.35", got)
	}
	if got := processingFee(payable.MethodInteracETransfer, decimal.NewFromInt(500)); !got.Equal(decimal.NewFromFloat(1.50)) {
		t.Errorf("interac fee=%s want=1.50", got)
	}
}

func TestSettlementDate(t *testing.T) {
	cal := bankcal.New(nil)
	friday := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	// Wires and Interac settle the same day.
	if got := settlementDate(payable.MethodWireTransfer, friday, cal); !got.Equal(friday) {
		t.Errorf("wire settlement=%s want same day", got.Format("2006-01-02"))
	}
	if got := settlementDate(payable.MethodInteracETransfer, friday, cal); !got.Equal(friday) {
		t.Errorf("interac settlement=%s want same day", got.Format("2006-01-02"))
	}

	// ACH on a Friday settles Monday.
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	if got := settlementDate(payable.MethodACHTransfer, friday, cal); !got.Equal(monday) {
		t.Errorf("ach settlement=%s want=%s", got.Format("2006-01-02"), monday.Format("2006-01-02"))
	}
}

func TestAssignPaymentDate_SavingsAndFees(t *testing.T) {
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	due := today.AddDate(0, 0, 20)
	cal := bankcal.New(nil)

	s := Score{
		Payable:              datePayable(payable.PriorityHigh, "50000.00", due),
		EarlyPaymentDiscount: 0.02,
	}
	got := assignPaymentDate(s, today, cal)

	if got.Method != payable.MethodACHTransfer {
		t.Fatalf("method=%s want=%s", got.Method, payable.MethodACHTransfer)
	}
	if !got.EstimatedSavings.Equal(decimal.RequireFromString("1000.00")) {
		t.Errorf("savings=%s want=1000.00", got.EstimatedSavings)
	}
	if !got.ProcessingFee.Equal(decimal.RequireFromString("50.00")) {
		t.Errorf("fee=%s want=50.00", got.ProcessingFee)
	}
	if !got.OriginalDueDate.Equal(due) {
		t.Errorf("original due date not carried through")
	}
}
