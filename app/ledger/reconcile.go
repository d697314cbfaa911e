package ledger

import (
	"time"

	"github.com/google/uuid"

	"acacia-schools/app/models"
)

// Reconcile restores the derived totals on a record. When the record carries
// an itemized ledger, paidAmount is the sum of its entries; a record that
// arrives with a bare counter and no ledger keeps the counter (the fees
// service owns records that predate itemized history). pendingAmount is the
// unpaid remainder, never negative.
func Reconcile(r *models.FeeRecord) {
	if len(r.FeeHistory) > 0 {
		var paid float64
		for _, entry := range r.FeeHistory {
			paid += entry.Amount
		}
		r.PaidAmount = paid
	}
	r.PendingAmount = r.TotalFee - r.PaidAmount
	if r.PendingAmount < 0 {
		r.PendingAmount = 0
	}
}

// ApplyPayment validates a payment, appends it to the record's ledger, and
// moves the derived totals with it: paidAmount grows by exactly the entry
// amount, so a record whose counter predates the itemized ledger keeps that
// counter as its baseline. On any error the record is left unchanged. A
// zero payment date defaults to the current time; a missing entry ID is
// assigned.
func ApplyPayment(r *models.FeeRecord, entry models.PaymentEntry) error {
	if entry.Amount <= 0 {
		return &ValidationError{Reason: "invalid amount"}
	}
	if !entry.PaymentMethod.Valid() {
		return &ValidationError{Reason: "invalid payment method"}
	}
	if entry.PaymentDate.IsZero() {
		entry.PaymentDate = time.Now()
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	r.FeeHistory = append(r.FeeHistory, entry)
	r.PaidAmount += entry.Amount
	r.PendingAmount = r.TotalFee - r.PaidAmount
	if r.PendingAmount < 0 {
		r.PendingAmount = 0
	}
	return nil
}

// ReplaceStructure swaps the structure fields on a record and reconciles
// against the existing ledger, so pendingAmount is correct immediately
// rather than on the next roster fetch. On any error the record is left
// unchanged.
func ReplaceStructure(r *models.FeeRecord, s models.FeeStructure) error {
	if s.TotalFee <= 0 {
		return &ValidationError{Reason: "total fee is required"}
	}
	for _, component := range []float64{
		s.TuitionFee, s.AdmissionFee, s.ExamFee, s.LibraryFee, s.SportsFee, s.OtherFees,
	} {
		if component < 0 {
			return &ValidationError{Reason: "fee components cannot be negative"}
		}
	}
	r.FeeStructure = s
	Reconcile(r)
	return nil
}
