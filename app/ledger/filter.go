package ledger

import (
	"strings"

	"acacia-schools/app/models"
)

// Criteria is a conjunction of independent roster predicates. Zero-valued
// fields mean "no constraint", so the zero Criteria matches everything.
type Criteria struct {
	Class         string
	Section       string
	AcademicYear  string
	PaymentStatus models.PaymentStatus
	MinAmount     *float64
	MaxAmount     *float64
	Search        string
}

// IsZero reports whether no constraint is set.
func (c Criteria) IsZero() bool {
	return c.Class == "" && c.Section == "" && c.AcademicYear == "" &&
		c.PaymentStatus == "" && c.MinAmount == nil && c.MaxAmount == nil &&
		c.Search == ""
}

// Filter returns a new slice holding the roster entries that match every
// present criterion, preserving input order. The input is never mutated and
// filtering never fails.
func Filter(roster []models.StudentFeeRecord, c Criteria) []models.StudentFeeRecord {
	out := make([]models.StudentFeeRecord, 0, len(roster))
	for _, entry := range roster {
		if Matches(entry, c) {
			out = append(out, entry)
		}
	}
	return out
}

// Matches reports whether a single roster entry satisfies every present
// criterion.
func Matches(entry models.StudentFeeRecord, c Criteria) bool {
	if c.Class != "" && entry.Class != c.Class {
		return false
	}
	if c.Section != "" && entry.Section != c.Section {
		return false
	}
	if c.AcademicYear != "" && entry.AcademicYear != c.AcademicYear {
		return false
	}
	if c.PaymentStatus != "" && !matchesStatus(entry.Fees, c.PaymentStatus) {
		return false
	}
	if c.MinAmount != nil && entry.Fees.TotalFee < *c.MinAmount {
		return false
	}
	if c.MaxAmount != nil && entry.Fees.TotalFee > *c.MaxAmount {
		return false
	}
	if c.Search != "" && !matchesSearch(entry.Student, c.Search) {
		return false
	}
	return true
}

func matchesStatus(rec models.FeeRecord, want models.PaymentStatus) bool {
	// "overdue" aliases "has any pending balance"; no due-date rule exists
	// in the fees service.
	if want == models.StatusOverdue {
		return rec.TotalFee > 0 && rec.PendingAmount > 0
	}
	return Classify(rec) == want
}

func matchesSearch(s models.Student, term string) bool {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return true
	}
	fields := []string{
		s.FirstName,
		s.LastName,
		s.FullName(),
		s.RollNumberString(),
		s.Email,
		s.GuardianName,
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
