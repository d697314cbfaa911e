package models

import "time"

// PaymentMethod enumerates the accepted payment channels.
type PaymentMethod string

const (
	MethodCash   PaymentMethod = "cash"
	MethodCheque PaymentMethod = "cheque"
	MethodOnline PaymentMethod = "online"
	MethodCard   PaymentMethod = "card"
	MethodUPI    PaymentMethod = "upi"
)

// Valid reports whether m is one of the accepted payment channels.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodCheque, MethodOnline, MethodCard, MethodUPI:
		return true
	}
	return false
}

// PaymentStatus is the classification of a student's fee record.
type PaymentStatus string

const (
	StatusNoFeeSet PaymentStatus = "no_fee_set"
	StatusPaid     PaymentStatus = "paid"
	StatusPartial  PaymentStatus = "partial"
	StatusPending  PaymentStatus = "pending"

	// StatusOverdue is accepted as a filter value only. The fees service
	// implements no due-date comparison, so it resolves to the same
	// pending-balance check as StatusPending.
	StatusOverdue PaymentStatus = "overdue"
)

// FeeStructure is the configured total a student owes plus an informational
// itemized breakdown. TotalFee is authoritative; the components are not
// required to sum to it.
type FeeStructure struct {
	TotalFee     float64    `json:"totalFee" validate:"required,gt=0"`
	TuitionFee   float64    `json:"tuitionFee,omitempty" validate:"gte=0"`
	AdmissionFee float64    `json:"admissionFee,omitempty" validate:"gte=0"`
	ExamFee      float64    `json:"examFee,omitempty" validate:"gte=0"`
	LibraryFee   float64    `json:"libraryFee,omitempty" validate:"gte=0"`
	SportsFee    float64    `json:"sportsFee,omitempty" validate:"gte=0"`
	OtherFees    float64    `json:"otherFees,omitempty" validate:"gte=0"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
}

// PaymentEntry is one immutable record in a student's fee ledger. Entries
// are append-only; nothing in this service updates or deletes them.
type PaymentEntry struct {
	ID            string        `json:"id,omitempty"`
	Amount        float64       `json:"amount" validate:"required,gt=0"`
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"required"`
	ReceiptNumber string        `json:"receiptNumber,omitempty"`
	Description   string        `json:"description,omitempty"`
	PaymentDate   time.Time     `json:"paymentDate"`
}

// FeeRecord aggregates a student's fee structure, the running totals, and
// the payment ledger. Missing numeric fields unmarshal as 0 and a missing
// history reads as an empty ledger, so a freshly registered student is a
// valid record with no fee set.
type FeeRecord struct {
	FeeStructure
	PaidAmount    float64        `json:"paidAmount"`
	PendingAmount float64        `json:"pendingAmount"`
	FeeHistory    []PaymentEntry `json:"feeHistory,omitempty"`
}

// History returns the ledger, oldest first, never nil.
func (r FeeRecord) History() []PaymentEntry {
	if r.FeeHistory == nil {
		return []PaymentEntry{}
	}
	return r.FeeHistory
}

// RecentPayments returns up to n ledger entries, most recent first.
func (r FeeRecord) RecentPayments(n int) []PaymentEntry {
	history := r.FeeHistory
	if n > len(history) {
		n = len(history)
	}
	out := make([]PaymentEntry, 0, n)
	for i := len(history) - 1; i >= len(history)-n; i-- {
		out = append(out, history[i])
	}
	return out
}
