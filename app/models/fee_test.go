package models

import (
	"encoding/json"
	"testing"
)

// Records arriving from the fees service may omit every fee field; missing
// numerics read as 0 and a missing history reads as an empty ledger.
func TestFeeRecordDefaults(t *testing.T) {
	var r FeeRecord
	if err := json.Unmarshal([]byte(`{}`), &r); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if r.TotalFee != 0 || r.PaidAmount != 0 || r.PendingAmount != 0 {
		t.Errorf("numeric defaults = (%v, %v, %v), want zeros", r.TotalFee, r.PaidAmount, r.PendingAmount)
	}
	if got := r.History(); got == nil || len(got) != 0 {
		t.Errorf("History() = %v, want empty non-nil ledger", got)
	}
	if r.DueDate != nil {
		t.Errorf("DueDate = %v, want nil", r.DueDate)
	}
}

func TestRecentPaymentsNewestFirst(t *testing.T) {
	r := FeeRecord{
		FeeHistory: []PaymentEntry{
			{Amount: 100},
			{Amount: 200},
			{Amount: 300},
		},
	}

	got := r.RecentPayments(2)
	if len(got) != 2 || got[0].Amount != 300 || got[1].Amount != 200 {
		t.Errorf("RecentPayments(2) = %+v, want [300 200] newest first", got)
	}

	all := r.RecentPayments(10)
	if len(all) != 3 || all[0].Amount != 300 || all[2].Amount != 100 {
		t.Errorf("RecentPayments(10) = %+v, want full ledger reversed", all)
	}

	if none := r.RecentPayments(0); len(none) != 0 {
		t.Errorf("RecentPayments(0) = %+v, want empty", none)
	}
}

func TestPaymentMethodValid(t *testing.T) {
	for _, m := range []PaymentMethod{MethodCash, MethodCheque, MethodOnline, MethodCard, MethodUPI} {
		if !m.Valid() {
			t.Errorf("%q.Valid() = false, want true", m)
		}
	}
	for _, m := range []PaymentMethod{"", "barter", "CASH"} {
		if m.Valid() {
			t.Errorf("%q.Valid() = true, want false", m)
		}
	}
}

func TestStudentFullName(t *testing.T) {
	cases := []struct {
		first, last, want string
	}{
		{"Alice", "Nankya", "Alice Nankya"},
		{"Alice", "", "Alice"},
		{"", "Nankya", "Nankya"},
		{"", "", ""},
	}
	for _, tc := range cases {
		s := Student{FirstName: tc.first, LastName: tc.last}
		if got := s.FullName(); got != tc.want {
			t.Errorf("FullName(%q, %q) = %q, want %q", tc.first, tc.last, got, tc.want)
		}
	}
}
