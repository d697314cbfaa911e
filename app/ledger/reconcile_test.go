package ledger

import (
	"testing"
	"time"

	"acacia-schools/app/models"
)

func TestReconcileDerivesPaidFromLedger(t *testing.T) {
	r := models.FeeRecord{
		PaidAmount: 999, // stale counter, ledger wins
		FeeHistory: []models.PaymentEntry{
			{Amount: 300, PaymentMethod: models.MethodCash},
			{Amount: 100, PaymentMethod: models.MethodUPI},
		},
	}
	r.TotalFee = 1000
	Reconcile(&r)

	if r.PaidAmount != 400 {
		t.Errorf("PaidAmount = %v, want 400 (sum of ledger)", r.PaidAmount)
	}
	if r.PendingAmount != 600 {
		t.Errorf("PendingAmount = %v, want 600", r.PendingAmount)
	}
}

func TestReconcileKeepsCounterWithoutLedger(t *testing.T) {
	r := models.FeeRecord{PaidAmount: 250}
	r.TotalFee = 1000
	Reconcile(&r)

	if r.PaidAmount != 250 {
		t.Errorf("PaidAmount = %v, want 250 (counter kept when no ledger)", r.PaidAmount)
	}
	if r.PendingAmount != 750 {
		t.Errorf("PendingAmount = %v, want 750", r.PendingAmount)
	}
}

func TestReconcileClampsPending(t *testing.T) {
	r := models.FeeRecord{PaidAmount: 1500}
	r.TotalFee = 1000
	Reconcile(&r)

	if r.PendingAmount != 0 {
		t.Errorf("PendingAmount = %v, want 0 (never negative)", r.PendingAmount)
	}
}

func TestApplyPayment(t *testing.T) {
	r := record(1000, 400)
	err := ApplyPayment(&r, models.PaymentEntry{
		Amount:        300,
		PaymentMethod: models.MethodCash,
	})
	if err != nil {
		t.Fatalf("ApplyPayment() error = %v", err)
	}
	if r.PaidAmount != 700 {
		t.Errorf("PaidAmount = %v, want 700", r.PaidAmount)
	}
	if r.PendingAmount != 300 {
		t.Errorf("PendingAmount = %v, want 300", r.PendingAmount)
	}
	if got := Classify(r); got != models.StatusPartial {
		t.Errorf("Classify() = %q, want %q", got, models.StatusPartial)
	}
	if len(r.FeeHistory) != 1 {
		t.Fatalf("len(FeeHistory) = %d, want 1", len(r.FeeHistory))
	}
	entry := r.FeeHistory[0]
	if entry.Amount != 300 {
		t.Errorf("appended amount = %v, want 300", entry.Amount)
	}
	if entry.ID == "" {
		t.Error("appended entry has no ID")
	}
	if entry.PaymentDate.IsZero() {
		t.Error("appended entry has zero payment date")
	}
}

func TestApplyPaymentReachesPaid(t *testing.T) {
	r := record(1000, 400)
	if err := ApplyPayment(&r, models.PaymentEntry{Amount: 600, PaymentMethod: models.MethodOnline}); err != nil {
		t.Fatalf("ApplyPayment() error = %v", err)
	}
	if got := Classify(r); got != models.StatusPaid {
		t.Errorf("Classify() = %q, want %q", got, models.StatusPaid)
	}
	if r.PendingAmount != 0 {
		t.Errorf("PendingAmount = %v, want 0", r.PendingAmount)
	}
}

// Records that predate itemized history arrive with a bare counter and an
// empty ledger; recording a payment must grow that counter, never replace
// it with the sum of the one new entry.
func TestApplyPaymentKeepsCounterBaseline(t *testing.T) {
	r := record(1000, 400) // no ledger, counter only
	if err := ApplyPayment(&r, models.PaymentEntry{Amount: 300, PaymentMethod: models.MethodCash}); err != nil {
		t.Fatalf("ApplyPayment() error = %v", err)
	}
	if r.PaidAmount != 700 || r.PendingAmount != 300 {
		t.Errorf("totals = (paid %v, pending %v), want (700, 300)", r.PaidAmount, r.PendingAmount)
	}
	if len(r.FeeHistory) != 1 {
		t.Fatalf("len(FeeHistory) = %d, want 1", len(r.FeeHistory))
	}

	// a second payment keeps growing from the same baseline
	if err := ApplyPayment(&r, models.PaymentEntry{Amount: 300, PaymentMethod: models.MethodUPI}); err != nil {
		t.Fatalf("ApplyPayment() error = %v", err)
	}
	if r.PaidAmount != 1000 || r.PendingAmount != 0 {
		t.Errorf("totals = (paid %v, pending %v), want (1000, 0)", r.PaidAmount, r.PendingAmount)
	}
	if got := Classify(r); got != models.StatusPaid {
		t.Errorf("Classify() = %q, want %q", got, models.StatusPaid)
	}
}

func TestApplyPaymentNeverDecreasesPaid(t *testing.T) {
	records := []models.FeeRecord{
		record(1000, 400),
		record(1000, 0),
		{FeeHistory: []models.PaymentEntry{{Amount: 250, PaymentMethod: models.MethodCash}}},
	}
	for i := range records {
		Reconcile(&records[i])
		before := records[i].PaidAmount
		if err := ApplyPayment(&records[i], models.PaymentEntry{Amount: 50, PaymentMethod: models.MethodCard}); err != nil {
			t.Fatalf("records[%d]: ApplyPayment() error = %v", i, err)
		}
		if got := records[i].PaidAmount; got != before+50 {
			t.Errorf("records[%d]: PaidAmount = %v, want %v", i, got, before+50)
		}
		if records[i].PendingAmount < 0 {
			t.Errorf("records[%d]: PendingAmount = %v, negative", i, records[i].PendingAmount)
		}
	}
}

func TestApplyPaymentRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		entry models.PaymentEntry
	}{
		{"zero amount", models.PaymentEntry{Amount: 0, PaymentMethod: models.MethodCash}},
		{"negative amount", models.PaymentEntry{Amount: -50, PaymentMethod: models.MethodCash}},
		{"unknown method", models.PaymentEntry{Amount: 100, PaymentMethod: "barter"}},
	}
	for _, tc := range cases {
		r := record(1000, 400)
		err := ApplyPayment(&r, tc.entry)
		if _, ok := err.(*ValidationError); !ok {
			t.Errorf("%s: ApplyPayment() error = %v, want *ValidationError", tc.name, err)
		}
		if r.PaidAmount != 400 || len(r.FeeHistory) != 0 {
			t.Errorf("%s: record changed after rejected payment: %+v", tc.name, r)
		}
	}
}

func TestApplyPaymentPreservesOrder(t *testing.T) {
	r := record(1000, 0)
	amounts := []float64{100, 200, 300}
	for _, amount := range amounts {
		if err := ApplyPayment(&r, models.PaymentEntry{Amount: amount, PaymentMethod: models.MethodCash}); err != nil {
			t.Fatalf("ApplyPayment(%v) error = %v", amount, err)
		}
	}
	for i, amount := range amounts {
		if r.FeeHistory[i].Amount != amount {
			t.Errorf("FeeHistory[%d].Amount = %v, want %v (append order)", i, r.FeeHistory[i].Amount, amount)
		}
	}
	if r.PaidAmount != 600 {
		t.Errorf("PaidAmount = %v, want 600", r.PaidAmount)
	}
}

func TestReplaceStructure(t *testing.T) {
	r := record(1000, 0)
	if err := ApplyPayment(&r, models.PaymentEntry{Amount: 400, PaymentMethod: models.MethodCash}); err != nil {
		t.Fatalf("ApplyPayment() error = %v", err)
	}

	due := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	err := ReplaceStructure(&r, models.FeeStructure{
		TotalFee:   1200,
		TuitionFee: 900,
		ExamFee:    100,
		DueDate:    &due,
	})
	if err != nil {
		t.Fatalf("ReplaceStructure() error = %v", err)
	}
	if r.TotalFee != 1200 {
		t.Errorf("TotalFee = %v, want 1200", r.TotalFee)
	}
	// reconciliation is applied as part of the replace, not deferred to the
	// next fetch
	if r.PaidAmount != 400 || r.PendingAmount != 800 {
		t.Errorf("totals = (paid %v, pending %v), want (400, 800)", r.PaidAmount, r.PendingAmount)
	}
}

func TestReplaceStructureRejectsBadInput(t *testing.T) {
	cases := []struct {
		name      string
		structure models.FeeStructure
	}{
		{"missing total", models.FeeStructure{}},
		{"non-positive total", models.FeeStructure{TotalFee: -10}},
		{"negative component", models.FeeStructure{TotalFee: 500, LibraryFee: -1}},
	}
	for _, tc := range cases {
		r := record(1000, 400)
		err := ReplaceStructure(&r, tc.structure)
		if _, ok := err.(*ValidationError); !ok {
			t.Errorf("%s: ReplaceStructure() error = %v, want *ValidationError", tc.name, err)
		}
		if r.TotalFee != 1000 {
			t.Errorf("%s: record changed after rejected structure: %+v", tc.name, r)
		}
	}
}
