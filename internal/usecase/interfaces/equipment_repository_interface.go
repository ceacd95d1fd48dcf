package interfaces

import (
	"context"
	"metrologia_avc/internal/domain/entities"
)

// IEquipmentRepository abstracts DynamoDB persistence for Equipment.
//
// Save is an upsert keyed by id: the spreadsheet importer and the editing
// flows both rely on last-write-wins semantics at the store boundary.
// ListIDs/DeleteBatch exist for the iterative clear-all loop, which deletes
// in small pages to bound load on the store.

type IEquipmentRepository interface {
	List(ctx context.Context) ([]entities.Equipment, error)
	GetByID(ctx context.Context, id string) (entities.Equipment, error)
	Save(ctx context.Context, e entities.Equipment) (entities.Equipment, error)
	Delete(ctx context.Context, id string) error
	ListIDs(ctx context.Context, limit int) ([]string, error)
	DeleteBatch(ctx context.Context, ids []string) error
	UpdateCalibrationDates(ctx context.Context, id, lastDate, nextDate string) error
}
