package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"metrologia_avc/internal/domain/entities"
	"metrologia_avc/internal/domain/spreadsheet"
	"metrologia_avc/internal/usecase/interfaces"
)

var ErrEmptyImport = errors.New("no rows to import")

// importBatchSize bounds peak concurrent writes against the store: batches
// are submitted one at a time, each awaited before the next.
const importBatchSize = 20

// ImportResult reports how far a bulk import got. On a batch failure,
// Processed counts the records already committed; those are not rolled back.
type ImportResult struct {
	Processed int `json:"processed"`
	Total     int `json:"total"`
}

// ProgressFunc is invoked after every committed batch.
type ProgressFunc func(processed, total int)

// IImportUseCase runs the spreadsheet import pipeline: reconcile rows into
// equipment records, then persist them in fixed-size sequential batches.

type IImportUseCase interface {
	ImportEquipment(ctx context.Context, rows []spreadsheet.Row, progress ProgressFunc) (ImportResult, error)
}

type ImportUseCase struct {
	equipmentRepo interfaces.IEquipmentRepository
}

var _ IImportUseCase = (*ImportUseCase)(nil)

func NewImportUseCase(equipmentRepo interfaces.IEquipmentRepository) *ImportUseCase {
	return &ImportUseCase{equipmentRepo: equipmentRepo}
}

// ImportEquipment aggregates the rows (fill-down, per-tag grouping) and
// upserts the resulting records in batches of 20. Writes inside a batch run
// concurrently; a batch failure aborts the remaining batches and surfaces a
// single aggregate error, while batches already committed stay committed.
func (u *ImportUseCase) ImportEquipment(ctx context.Context, rows []spreadsheet.Row, progress ProgressFunc) (ImportResult, error) {
	if len(rows) == 0 {
		return ImportResult{}, ErrEmptyImport
	}

	records := spreadsheet.ReconcileRows(rows, time.Now())
	result := ImportResult{Total: len(records)}
	log.Printf("[import][equipment] reconciled rows=%d records=%d", len(rows), result.Total)

	for start := 0; start < len(records); start += importBatchSize {
		end := start + importBatchSize
		if end > len(records) {
			end = len(records)
		}
		batch := records[start:end]

		if err := u.saveBatch(ctx, batch); err != nil {
			log.Printf("[import][equipment] batch failed processed=%d total=%d err=%v", result.Processed, result.Total, err)
			return result, fmt.Errorf("import aborted after %d of %d records: %w", result.Processed, result.Total, err)
		}

		result.Processed += len(batch)
		if progress != nil {
			progress(result.Processed, result.Total)
		}
	}

	log.Printf("[import][equipment] done processed=%d", result.Processed)
	return result, nil
}

// saveBatch issues the batch's writes concurrently and waits for all of
// them, returning the first error observed.
func (u *ImportUseCase) saveBatch(ctx context.Context, batch []entities.Equipment) error {
	var wg sync.WaitGroup
	errCh := make(chan error, len(batch))

	for _, eq := range batch {
		wg.Add(1)
		go func(eq entities.Equipment) {
			defer wg.Done()
			if _, err := u.equipmentRepo.Save(ctx, eq); err != nil {
				errCh <- fmt.Errorf("save %s: %w", eq.ID, err)
			}
		}(eq)
	}
	wg.Wait()
	close(errCh)

	return <-errCh
}
