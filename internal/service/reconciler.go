package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/entity"
)

// headerRowOffset maps an input index to its spreadsheet row number: rows are
// 1-based and the first sheet row is the header.
const headerRowOffset = 2

// BulkImport validates a batch of spreadsheet rows, allocates pass numbers
// per category, rejects rows that collide with persisted records or with
// earlier accepted rows, and writes the accepted subset in one transaction.
// Row failures never abort the batch; a failed commit does, but the per-row
// report is returned alongside the error so the caller still sees what would
// have been written.
func (s *Service) BulkImport(ctx context.Context, rows []entity.ImportRow) (entity.ImportReport, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.ImportReport{}, fmt.Errorf("get user from context: %w", err)
	}

	if len(rows) == 0 {
		return entity.ImportReport{}, fmt.Errorf("%w: no pass data provided", entity.ErrIncorrectRequestBody)
	}

	keys, err := s.loadBatchKeys(ctx)
	if err != nil {
		return entity.ImportReport{}, err
	}

	results := make([]entity.RowResult, len(rows))

	type indexedRow struct {
		index int
		data  importRowData
	}

	groups := make(map[entity.Category][]indexedRow)

	var order []entity.Category

	for i, row := range rows {
		data, err := validateImportRow(row)
		if err != nil {
			results[i] = rowError(i, err.Error())
			continue
		}

		if _, ok := groups[data.category]; !ok {
			order = append(order, data.category)
		}

		groups[data.category] = append(groups[data.category], indexedRow{index: i, data: data})
	}

	now := time.Now()
	staged := make([]entity.Pass, 0, len(rows))

	for _, category := range order {
		// One allocator call per category; accepted rows take sequential
		// numbers from a local counter instead of re-querying the store.
		nextID, err := s.NextPassID(ctx, category)
		if err != nil {
			return entity.ImportReport{}, err
		}

		for _, ir := range groups[category] {
			// Shape-check once more before staging.
			if _, err := validateImportRow(rows[ir.index]); err != nil {
				results[ir.index] = rowError(ir.index, err.Error())
				continue
			}

			data := ir.data

			if keys.hasCNIC(data.cnic) {
				results[ir.index] = rowError(ir.index, fmt.Sprintf("CNIC %s already exists.", data.cnic))
				continue
			}

			passID := strconv.Itoa(nextID)

			if keys.hasPassID(category, passID) {
				results[ir.index] = rowError(ir.index,
					fmt.Sprintf("Pass ID %d already exists for category '%s'.", nextID, category))
				continue
			}

			keys.add(category, passID, data.cnic)
			staged = append(staged, data.toPass(user.ID, passID, now))
			results[ir.index] = rowSuccess(ir.index, nextID)
			nextID++
		}
	}

	return s.commitStaged(ctx, results, staged)
}

// HistoricalImport ingests rows carrying their own pass numbers. The
// allocator is bypassed; the uniqueness sets are the only gate, applied to
// both (category, passId) and CNIC exactly as in the auto-numbered path.
func (s *Service) HistoricalImport(ctx context.Context, rows []entity.ImportRow) (entity.ImportReport, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.ImportReport{}, fmt.Errorf("get user from context: %w", err)
	}

	if len(rows) == 0 {
		return entity.ImportReport{}, fmt.Errorf("%w: no pass data provided", entity.ErrIncorrectRequestBody)
	}

	keys, err := s.loadBatchKeys(ctx)
	if err != nil {
		return entity.ImportReport{}, err
	}

	results := make([]entity.RowResult, len(rows))
	now := time.Now()
	staged := make([]entity.Pass, 0, len(rows))

	for i, row := range rows {
		data, err := validateHistoricalRow(row)
		if err != nil {
			results[i] = rowError(i, err.Error())
			continue
		}

		passID := strconv.Itoa(data.passID)

		if keys.hasPassID(data.category, passID) {
			results[i] = rowError(i,
				fmt.Sprintf("Pass ID %d already exists for category '%s'.", data.passID, data.category))
			continue
		}

		if keys.hasCNIC(data.cnic) {
			results[i] = rowError(i, fmt.Sprintf("CNIC %s already exists.", data.cnic))
			continue
		}

		keys.add(data.category, passID, data.cnic)
		staged = append(staged, data.toPass(user.ID, passID, now))
		results[i] = rowSuccess(i, data.passID)
	}

	return s.commitStaged(ctx, results, staged)
}

// commitStaged writes the accepted rows in a single transaction. No
// transaction is submitted when nothing was accepted.
func (s *Service) commitStaged(
	ctx context.Context, results []entity.RowResult, staged []entity.Pass) (entity.ImportReport, error) {
	report := entity.ImportReport{Results: results}

	for _, result := range results {
		s.metrics.IncImportRow(string(result.Status))

		if result.Status == entity.RowStatusSuccess {
			report.Succeeded++
		} else {
			report.Failed++
		}
	}

	if report.Succeeded == 0 {
		return report, nil
	}

	err := s.repo.CreatePasses(ctx, staged...)
	if err != nil {
		return report, fmt.Errorf("commit import: %w", err)
	}

	s.events.PassesImported(ctx, report.Succeeded, report.Failed)

	slog.InfoContext(ctx, "bulk import committed",
		"succeeded", report.Succeeded, "failed", report.Failed)

	return report, nil
}

func rowError(index int, msg string) entity.RowResult {
	return entity.RowResult{
		Row:     index + headerRowOffset,
		Status:  entity.RowStatusError,
		Message: msg,
	}
}

func rowSuccess(index, passID int) entity.RowResult {
	return entity.RowResult{
		Row:     index + headerRowOffset,
		Status:  entity.RowStatusSuccess,
		Message: "Prepared for creation.",
		PassID:  passID,
	}
}
