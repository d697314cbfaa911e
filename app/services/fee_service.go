package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"acacia-schools/app/client"
	"acacia-schools/app/ledger"
	"acacia-schools/app/models"
)

// ErrStudentNotFound reports that the requested student is not on the
// roster returned by the fees service.
var ErrStudentNotFound = errors.New("student not found")

// FeeService runs the fetch, reconcile, filter, classify, aggregate
// pipeline behind the fee views, and the two mutation workflows against the
// external fees service. It holds no state of its own: every operation
// works on a fresh roster snapshot.
type FeeService struct {
	api *client.Client
	log *logrus.Logger
}

// NewFeeService initializes the fee service.
func NewFeeService(api *client.Client, log *logrus.Logger) *FeeService {
	return &FeeService{api: api, log: log}
}

// ClassifiedRecord tags a roster entry with its payment status.
type ClassifiedRecord struct {
	models.StudentFeeRecord
	PaymentStatus models.PaymentStatus `json:"paymentStatus"`
}

// Overview is the payload behind the fee dashboard: the filtered roster
// with each entry classified, plus the roll-up statistics over that same
// filtered set.
type Overview struct {
	Students   []ClassifiedRecord `json:"students"`
	Statistics models.Statistics  `json:"statistics"`
}

// Card is the per-student fee payload shared by the fee card and the
// profile fee panels.
type Card struct {
	Student        models.Student        `json:"student"`
	Fees           models.FeeRecord      `json:"fees"`
	PaymentStatus  models.PaymentStatus  `json:"paymentStatus"`
	RecentPayments []models.PaymentEntry `json:"recentPayments"`
}

// Overview fetches the roster, applies the filter criteria, classifies each
// remaining record, and aggregates the filtered set.
func (s *FeeService) Overview(ctx context.Context, token string, criteria ledger.Criteria) (*Overview, error) {
	roster, err := s.fetchRoster(ctx, token, criteria)
	if err != nil {
		return nil, err
	}
	filtered := ledger.Filter(roster, criteria)

	out := &Overview{Students: make([]ClassifiedRecord, 0, len(filtered))}
	for _, entry := range filtered {
		out.Students = append(out.Students, ClassifiedRecord{
			StudentFeeRecord: entry,
			PaymentStatus:    ledger.Classify(entry.Fees),
		})
	}
	out.Statistics = ledger.Aggregate(filtered)
	return out, nil
}

// StudentCard returns one student's fee card: record, status, and the five
// most recent payments, newest first.
func (s *FeeService) StudentCard(ctx context.Context, token, studentID string) (*Card, error) {
	entry, err := s.findStudent(ctx, token, studentID)
	if err != nil {
		return nil, err
	}
	return &Card{
		Student:        entry.Student,
		Fees:           entry.Fees,
		PaymentStatus:  ledger.Classify(entry.Fees),
		RecentPayments: entry.Fees.RecentPayments(5),
	}, nil
}

// PaymentHistory returns a student's full ledger, newest first.
func (s *FeeService) PaymentHistory(ctx context.Context, token, studentID string) ([]models.PaymentEntry, error) {
	entry, err := s.findStudent(ctx, token, studentID)
	if err != nil {
		return nil, err
	}
	return entry.Fees.RecentPayments(len(entry.Fees.FeeHistory)), nil
}

// RecordPayment validates a payment locally, submits it to the fees
// service, and returns the student's refreshed card. Validation failures
// are never submitted; submission failures leave the ledger unchanged. The
// refresh is an explicit refetch, not an in-place merge.
func (s *FeeService) RecordPayment(ctx context.Context, token string, req client.PaymentRequest) (*Card, error) {
	if req.StudentID == "" {
		return nil, &ledger.ValidationError{Reason: "no student selected"}
	}
	if req.PaymentDate.IsZero() {
		req.PaymentDate = time.Now()
	}

	entry, err := s.findStudent(ctx, token, req.StudentID)
	if err != nil {
		return nil, err
	}

	// Rehearse the append on a copy so invalid input is rejected before
	// anything is submitted, with the same rule the ledger enforces.
	rehearsal := entry.Fees
	if err := ledger.ApplyPayment(&rehearsal, models.PaymentEntry{
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		ReceiptNumber: req.ReceiptNumber,
		Description:   req.Description,
		PaymentDate:   req.PaymentDate,
	}); err != nil {
		return nil, err
	}

	if err := s.api.SubmitPayment(ctx, token, req); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"student": req.StudentID,
		"amount":  req.Amount,
		"method":  req.PaymentMethod,
	}).Info("payment recorded")

	return s.StudentCard(ctx, token, req.StudentID)
}

// UpdateStructure validates and replaces a student's fee structure upstream
// and returns the refreshed card. The derived totals on the returned record
// are reconciled against the existing ledger rather than left stale.
func (s *FeeService) UpdateStructure(ctx context.Context, token, studentID string, structure models.FeeStructure) (*Card, error) {
	if studentID == "" {
		return nil, &ledger.ValidationError{Reason: "no student selected"}
	}

	entry, err := s.findStudent(ctx, token, studentID)
	if err != nil {
		return nil, err
	}
	rehearsal := entry.Fees
	if err := ledger.ReplaceStructure(&rehearsal, structure); err != nil {
		return nil, err
	}

	if err := s.api.UpdateStructure(ctx, token, studentID, structure); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"student":  studentID,
		"totalFee": structure.TotalFee,
	}).Info("fee structure updated")

	return s.StudentCard(ctx, token, studentID)
}

// Analytics proxies the fees service's pre-aggregated roster-wide
// statistics, used as an alternative to client-side aggregation.
func (s *FeeService) Analytics(ctx context.Context, token string) (models.Statistics, error) {
	return s.api.FetchAnalytics(ctx, token)
}

// fetchRoster retrieves a fresh roster snapshot and reconciles each
// record's derived totals against its ledger before anything reads them.
func (s *FeeService) fetchRoster(ctx context.Context, token string, criteria ledger.Criteria) ([]models.StudentFeeRecord, error) {
	roster, err := s.api.FetchRoster(ctx, token, client.RosterQuery{
		Class:         criteria.Class,
		Section:       criteria.Section,
		AcademicYear:  criteria.AcademicYear,
		PaymentStatus: string(criteria.PaymentStatus),
	})
	if err != nil {
		return nil, err
	}
	for i := range roster {
		ledger.Reconcile(&roster[i].Fees)
	}
	return roster, nil
}

func (s *FeeService) findStudent(ctx context.Context, token, studentID string) (*models.StudentFeeRecord, error) {
	if studentID == "" {
		return nil, &ledger.ValidationError{Reason: "no student selected"}
	}
	roster, err := s.fetchRoster(ctx, token, ledger.Criteria{})
	if err != nil {
		return nil, err
	}
	for i := range roster {
		if roster[i].ID == studentID {
			return &roster[i], nil
		}
	}
	return nil, ErrStudentNotFound
}
