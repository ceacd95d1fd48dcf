package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"metrologia_avc/internal/domain/entities"
	"metrologia_avc/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound         = errors.New("budget not found")
	ErrInvalidBudgetID        = errors.New("invalid budget id")
	ErrBudgetWithoutEquipment = errors.New("budget requires at least one equipment link")
	ErrBudgetWithoutProvider  = errors.New("budget requires a provider")
	ErrInvalidBudgetCost      = errors.New("budget requires a positive cost")
)

// BudgetTotals summarizes spending by commitment: Aprovado/Concluído records
// count as committed, Pendente ones as pending.
type BudgetTotals struct {
	Committed float64 `json:"committed"`
	Pending   float64 `json:"pending"`
}

// IBudgetUseCase exposes maintenance/calibration budget operations.

type IBudgetUseCase interface {
	List(ctx context.Context) ([]entities.BudgetRecord, error)
	GetByID(ctx context.Context, id string) (entities.BudgetRecord, error)
	Save(ctx context.Context, b entities.BudgetRecord) (entities.BudgetRecord, error)
	Delete(ctx context.Context, id string) error
	Totals(ctx context.Context) (BudgetTotals, error)
}

type BudgetUseCase struct {
	repo interfaces.IBudgetRepository
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository) *BudgetUseCase {
	return &BudgetUseCase{repo: repo}
}

// List returns records newest-first, migrating legacy single-equipment
// documents to the equipment-link list on the way out.
func (u *BudgetUseCase) List(ctx context.Context) ([]entities.BudgetRecord, error) {
	records, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i] = records[i].WithLegacyEquipments()
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
	return records, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.BudgetRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BudgetRecord{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BudgetRecord{}, err
	}
	if b.ID == "" {
		return entities.BudgetRecord{}, ErrBudgetNotFound
	}
	return b.WithLegacyEquipments(), nil
}

// Save validates the record before any write: at least one equipment link, a
// provider and a positive cost. Validation failure applies no mutation.
func (u *BudgetUseCase) Save(ctx context.Context, b entities.BudgetRecord) (entities.BudgetRecord, error) {
	if len(b.Equipments) == 0 {
		return entities.BudgetRecord{}, ErrBudgetWithoutEquipment
	}
	if strings.TrimSpace(b.Provider) == "" {
		return entities.BudgetRecord{}, ErrBudgetWithoutProvider
	}
	if b.Cost <= 0 {
		return entities.BudgetRecord{}, ErrInvalidBudgetCost
	}

	if strings.TrimSpace(b.ID) == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = entities.BudgetStatusPendente
	}
	return u.repo.Save(ctx, b)
}

func (u *BudgetUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidBudgetID
	}
	return u.repo.Delete(ctx, id)
}

func (u *BudgetUseCase) Totals(ctx context.Context) (BudgetTotals, error) {
	records, err := u.repo.List(ctx)
	if err != nil {
		return BudgetTotals{}, err
	}

	var totals BudgetTotals
	for _, b := range records {
		switch {
		case b.CommittedStatus():
			totals.Committed += b.Cost
		case b.Status == entities.BudgetStatusPendente:
			totals.Pending += b.Cost
		}
	}
	return totals, nil
}
