package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"acacia-schools/app/ledger"
)

// ExportCollectionSheet renders the filtered roster as an xlsx collection
// sheet: one row per student with their classified status, followed by a
// totals row matching the dashboard statistics.
func (s *FeeService) ExportCollectionSheet(ctx context.Context, token string, criteria ledger.Criteria) (*excelize.File, error) {
	overview, err := s.Overview(ctx, token, criteria)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Fee Collection"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{"Student", "Roll No", "Class", "Section", "Academic Year", "Total Fee", "Paid", "Pending", "Status"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	row := 2
	for _, entry := range overview.Students {
		values := []interface{}{
			entry.FullName(),
			entry.RollNumber,
			entry.Class,
			entry.Section,
			entry.AcademicYear,
			entry.Fees.TotalFee,
			entry.Fees.PaidAmount,
			entry.Fees.PendingAmount,
			string(entry.PaymentStatus),
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return nil, err
		}
		row++
	}

	stats := overview.Statistics
	totals := []interface{}{
		fmt.Sprintf("Total (%d students)", stats.TotalStudents),
		nil, nil, nil, nil,
		stats.TotalFeeAmount,
		stats.TotalPaidAmount,
		stats.TotalPendingAmount,
		fmt.Sprintf("%d%% collected", stats.CollectionRate),
	}
	if err := writeRow(f, sheet, row, totals); err != nil {
		return nil, err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}
	index, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to locate sheet: %w", err)
	}
	f.SetActiveSheet(index)
	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, value := range values {
		if value == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row, err)
		}
	}
	return nil
}
