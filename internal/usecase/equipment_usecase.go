package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"metrologia_avc/internal/domain/entities"
	"metrologia_avc/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEquipmentNotFound  = errors.New("equipment not found")
	ErrInvalidEquipmentID = errors.New("invalid equipment id")
)

// clearAllPageSize keeps the clear-all loop from overloading the store:
// documents are deleted in small pages, each awaited before the next.
const clearAllPageSize = 50

// IEquipmentUseCase exposes equipment catalog operations.

type IEquipmentUseCase interface {
	List(ctx context.Context) ([]entities.Equipment, error)
	GetByID(ctx context.Context, id string) (entities.Equipment, error)
	Save(ctx context.Context, e entities.Equipment) (entities.Equipment, error)
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) (int, error)
	CalibrationAlerts(ctx context.Context) (expired, warning []entities.Equipment, err error)
}

type EquipmentUseCase struct {
	repo interfaces.IEquipmentRepository
}

var _ IEquipmentUseCase = (*EquipmentUseCase)(nil)

func NewEquipmentUseCase(repo interfaces.IEquipmentRepository) *EquipmentUseCase {
	return &EquipmentUseCase{repo: repo}
}

func (u *EquipmentUseCase) List(ctx context.Context) ([]entities.Equipment, error) {
	return u.repo.List(ctx)
}

func (u *EquipmentUseCase) GetByID(ctx context.Context, id string) (entities.Equipment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Equipment{}, ErrInvalidEquipmentID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Equipment{}, err
	}
	if e.ID == "" {
		return entities.Equipment{}, ErrEquipmentNotFound
	}
	return e, nil
}

func (u *EquipmentUseCase) Save(ctx context.Context, e entities.Equipment) (entities.Equipment, error) {
	if strings.TrimSpace(e.ID) == "" {
		e.ID = uuid.NewString()
	}
	if e.Status == "" {
		e.Status = entities.EquipmentStatusAtivo
	}
	if e.CreatedAt == "" {
		e.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return u.repo.Save(ctx, e)
}

func (u *EquipmentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEquipmentID
	}
	return u.repo.Delete(ctx, id)
}

// ClearAll wipes the equipment collection in iterative pages and returns how
// many documents were removed. Pages already deleted stay deleted if a later
// page fails.
func (u *EquipmentUseCase) ClearAll(ctx context.Context) (int, error) {
	deleted := 0
	for {
		ids, err := u.repo.ListIDs(ctx, clearAllPageSize)
		if err != nil {
			return deleted, err
		}
		if len(ids) == 0 {
			return deleted, nil
		}
		if err := u.repo.DeleteBatch(ctx, ids); err != nil {
			return deleted, err
		}
		deleted += len(ids)
		log.Printf("[equipment][clear-all] page deleted count=%d total=%d", len(ids), deleted)
	}
}

// CalibrationAlerts splits active equipment into expired and
// expiring-within-30-days lists. Inactive and discarded equipment is ignored.
func (u *EquipmentUseCase) CalibrationAlerts(ctx context.Context) ([]entities.Equipment, []entities.Equipment, error) {
	list, err := u.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	today := time.Now().UTC()
	var expired, warning []entities.Equipment
	for _, e := range list {
		if e.Status != entities.EquipmentStatusAtivo {
			continue
		}
		switch e.ScheduleStatus(today) {
		case entities.ScheduleStatusVencido:
			expired = append(expired, e)
		case entities.ScheduleStatusAVencer:
			warning = append(warning, e)
		}
	}
	return expired, warning, nil
}
