package interfaces

import (
	"context"
	"metrologia_avc/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for BudgetRecord.

type IBudgetRepository interface {
	List(ctx context.Context) ([]entities.BudgetRecord, error)
	GetByID(ctx context.Context, id string) (entities.BudgetRecord, error)
	Save(ctx context.Context, b entities.BudgetRecord) (entities.BudgetRecord, error)
	Delete(ctx context.Context, id string) error
}
