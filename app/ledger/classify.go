// Package ledger is the fee ledger and reconciliation engine shared by every
// fee view: status classification, roster aggregation, filtering, and the
// mutation rules that keep a record's derived totals consistent.
package ledger

import "acacia-schools/app/models"

// Classify maps a fee record to exactly one payment status. The branches
// are ordered and mutually exclusive: a record with no configured total is
// "no fee set" regardless of any recorded payments.
func Classify(r models.FeeRecord) models.PaymentStatus {
	switch {
	case r.TotalFee <= 0:
		return models.StatusNoFeeSet
	case r.PendingAmount <= 0:
		return models.StatusPaid
	case r.PaidAmount > 0:
		return models.StatusPartial
	default:
		return models.StatusPending
	}
}
