package interfaces

import (
	"context"
	"metrologia_avc/internal/domain/entities"
)

// ICalibrationRepository abstracts DynamoDB persistence for CalibrationRecord.
//
// ListByEquipmentID with an empty id lists the whole collection. Save is an
// upsert keyed by record id (saving the same record twice is idempotent).

type ICalibrationRepository interface {
	ListByEquipmentID(ctx context.Context, equipmentID string) ([]entities.CalibrationRecord, error)
	GetByID(ctx context.Context, id string) (entities.CalibrationRecord, error)
	Save(ctx context.Context, r entities.CalibrationRecord) (entities.CalibrationRecord, error)
}
