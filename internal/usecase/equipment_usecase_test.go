package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"metrologia_avc/internal/domain/entities"
	mock_interfaces "metrologia_avc/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEquipmentUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEquipmentUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidEquipmentID) {
			t.Fatalf("expected ErrInvalidEquipmentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		uc := NewEquipmentUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Equipment{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrEquipmentNotFound) {
			t.Fatalf("expected ErrEquipmentNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		uc := NewEquipmentUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "eq-1").Return(entities.Equipment{ID: "eq-1", Tag: "MN-01"}, nil)

		e, err := uc.GetByID(context.Background(), "eq-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Tag != "MN-01" {
			t.Fatalf("unexpected equipment: %+v", e)
		}
	})
}

func TestEquipmentUseCase_Save(t *testing.T) {
	t.Run("defaults id, status and created timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		uc := NewEquipmentUseCase(repo)

		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Equipment) (entities.Equipment, error) {
				if e.ID == "" {
					t.Fatalf("expected generated id")
				}
				if e.Status != entities.EquipmentStatusAtivo {
					t.Fatalf("expected Ativo, got %q", e.Status)
				}
				if e.CreatedAt == "" {
					t.Fatalf("expected created timestamp")
				}
				return e, nil
			},
		)

		if _, err := uc.Save(context.Background(), entities.Equipment{Tag: "MN-01"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("existing fields preserved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		uc := NewEquipmentUseCase(repo)

		in := entities.Equipment{ID: "eq-1", Status: entities.EquipmentStatusInativo, CreatedAt: "2024-01-01T00:00:00Z"}
		repo.EXPECT().Save(gomock.Any(), in).Return(in, nil)

		out, err := uc.Save(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(out, in) {
			t.Fatalf("fields changed: %+v", out)
		}
	})
}

func TestEquipmentUseCase_ClearAll(t *testing.T) {
	t.Run("iterates pages until empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		uc := NewEquipmentUseCase(repo)

		page1 := []string{"a", "b", "c"}
		page2 := []string{"d"}
		gomock.InOrder(
			repo.EXPECT().ListIDs(gomock.Any(), clearAllPageSize).Return(page1, nil),
			repo.EXPECT().DeleteBatch(gomock.Any(), page1).Return(nil),
			repo.EXPECT().ListIDs(gomock.Any(), clearAllPageSize).Return(page2, nil),
			repo.EXPECT().DeleteBatch(gomock.Any(), page2).Return(nil),
			repo.EXPECT().ListIDs(gomock.Any(), clearAllPageSize).Return(nil, nil),
		)

		deleted, err := uc.ClearAll(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != 4 {
			t.Fatalf("expected 4 deleted, got %d", deleted)
		}
	})

	t.Run("batch failure keeps earlier pages counted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		uc := NewEquipmentUseCase(repo)

		gomock.InOrder(
			repo.EXPECT().ListIDs(gomock.Any(), clearAllPageSize).Return([]string{"a", "b"}, nil),
			repo.EXPECT().DeleteBatch(gomock.Any(), []string{"a", "b"}).Return(nil),
			repo.EXPECT().ListIDs(gomock.Any(), clearAllPageSize).Return([]string{"c"}, nil),
			repo.EXPECT().DeleteBatch(gomock.Any(), []string{"c"}).Return(errors.New("throttled")),
		)

		deleted, err := uc.ClearAll(context.Background())
		if err == nil {
			t.Fatalf("expected error")
		}
		if deleted != 2 {
			t.Fatalf("expected 2 deleted before failure, got %d", deleted)
		}
	})
}

func TestEquipmentUseCase_CalibrationAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEquipmentRepository(ctrl)
	uc := NewEquipmentUseCase(repo)

	today := time.Now().UTC()
	past := today.AddDate(0, 0, -5).Format("2006-01-02")
	soon := today.AddDate(0, 0, 10).Format("2006-01-02")
	far := today.AddDate(0, 6, 0).Format("2006-01-02")

	repo.EXPECT().List(gomock.Any()).Return([]entities.Equipment{
		{ID: "e1", Status: entities.EquipmentStatusAtivo, NextCalibrationDate: past},
		{ID: "e2", Status: entities.EquipmentStatusAtivo, NextCalibrationDate: soon},
		{ID: "e3", Status: entities.EquipmentStatusAtivo, NextCalibrationDate: far},
		{ID: "e4", Status: entities.EquipmentStatusInativo, NextCalibrationDate: past},
	}, nil)

	expired, warning, err := uc.CalibrationAlerts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expired) != 1 || expired[0].ID != "e1" {
		t.Fatalf("unexpected expired list: %+v", expired)
	}
	if len(warning) != 1 || warning[0].ID != "e2" {
		t.Fatalf("unexpected warning list: %+v", warning)
	}
}
