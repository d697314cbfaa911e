package ledger

import (
	"testing"

	"acacia-schools/app/models"
)

func rosterEntry(totalFee, paidAmount float64) models.StudentFeeRecord {
	return models.StudentFeeRecord{Fees: record(totalFee, paidAmount)}
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil)
	want := models.Statistics{}
	if got != want {
		t.Errorf("Aggregate(nil) = %+v, want zero statistics", got)
	}
}

func TestAggregateScenario(t *testing.T) {
	roster := []models.StudentFeeRecord{
		rosterEntry(1000, 1000),
		rosterEntry(500, 0),
		rosterEntry(0, 0),
	}
	got := Aggregate(roster)
	want := models.Statistics{
		TotalStudents:      3,
		TotalFeeAmount:     1500,
		TotalPaidAmount:    1000,
		TotalPendingAmount: 500,
		FullyPaidCount:     1,
		PendingCount:       1,
		CollectionRate:     67,
	}
	if got != want {
		t.Errorf("Aggregate() = %+v, want %+v", got, want)
	}
}

// Pending is derived once from the totals, so per-record clamping of
// overpaid records does not cancel out other students' balances.
func TestAggregatePendingFromTotals(t *testing.T) {
	roster := []models.StudentFeeRecord{
		rosterEntry(1000, 1500),
		rosterEntry(1000, 500),
	}
	got := Aggregate(roster)
	if got.TotalPendingAmount != 0 {
		t.Errorf("TotalPendingAmount = %v, want 0 (2000 total - 2000 paid)", got.TotalPendingAmount)
	}
	if got.FullyPaidCount != 1 || got.PendingCount != 1 {
		t.Errorf("counts = (paid %d, pending %d), want (1, 1)", got.FullyPaidCount, got.PendingCount)
	}
}

func TestAggregateCollectionRateBounds(t *testing.T) {
	cases := []struct {
		name   string
		roster []models.StudentFeeRecord
		want   int
	}{
		{"nothing configured", []models.StudentFeeRecord{rosterEntry(0, 0)}, 0},
		{"nothing collected", []models.StudentFeeRecord{rosterEntry(1000, 0)}, 0},
		{"everything collected", []models.StudentFeeRecord{rosterEntry(1000, 1000)}, 100},
		{"two thirds", []models.StudentFeeRecord{rosterEntry(300, 200)}, 67},
		{"half up", []models.StudentFeeRecord{rosterEntry(200, 1)}, 1},
	}
	for _, tc := range cases {
		got := Aggregate(tc.roster)
		if got.CollectionRate != tc.want {
			t.Errorf("%s: CollectionRate = %d, want %d", tc.name, got.CollectionRate, tc.want)
		}
		if got.CollectionRate < 0 || got.CollectionRate > 100 {
			t.Errorf("%s: CollectionRate = %d, out of [0,100]", tc.name, got.CollectionRate)
		}
	}
}

// Aggregating a roster equals aggregating the same roster through the empty
// filter.
func TestAggregateFilterIdentity(t *testing.T) {
	roster := []models.StudentFeeRecord{
		rosterEntry(1000, 250),
		rosterEntry(800, 800),
		rosterEntry(0, 0),
	}
	direct := Aggregate(roster)
	filtered := Aggregate(Filter(roster, Criteria{}))
	if direct != filtered {
		t.Errorf("Aggregate(roster) = %+v, Aggregate(Filter(roster, {})) = %+v", direct, filtered)
	}
}
