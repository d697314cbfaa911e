package ledger

import (
	"math"

	"acacia-schools/app/models"
)

// Aggregate reduces an already-filtered roster into roll-up statistics in a
// single pass. It never fails: malformed records read as zero amounts.
func Aggregate(roster []models.StudentFeeRecord) models.Statistics {
	stats := models.Statistics{TotalStudents: len(roster)}
	for _, entry := range roster {
		rec := entry.Fees
		stats.TotalFeeAmount += rec.TotalFee
		stats.TotalPaidAmount += rec.PaidAmount
		if rec.TotalFee > 0 {
			if rec.PendingAmount <= 0 {
				stats.FullyPaidCount++
			} else {
				stats.PendingCount++
			}
		}
	}

	// Pending is derived from the totals rather than summed per record, so
	// clamped per-record balances cannot cancel out.
	stats.TotalPendingAmount = stats.TotalFeeAmount - stats.TotalPaidAmount

	if stats.TotalFeeAmount > 0 {
		stats.CollectionRate = int(math.Round(stats.TotalPaidAmount / stats.TotalFeeAmount * 100))
	}
	return stats
}
