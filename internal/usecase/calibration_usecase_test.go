package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"metrologia_avc/internal/domain/entities"
	mock_interfaces "metrologia_avc/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func calibrationFixture() entities.CalibrationRecord {
	return entities.CalibrationRecord{
		ID:          "cal-1",
		EquipmentID: "eq-1",
		Date:        "2026-02-10",
		Technician:  "Ana",
		MeasurementGroups: []entities.MeasurementGroup{
			{
				ID:   "g1",
				Name: "Tração",
				Measurements: []entities.MeasurementPoint{
					{ID: "p1", ReferenceValue: 10, MeasuredValue: 10.02, Error: 0.02, Uncertainty: 0.01},
				},
			},
		},
		Result: entities.ResultAprovado,
	}
}

func TestCalibrationUseCase_NewDraft(t *testing.T) {
	t.Run("invalid equipment id", func(t *testing.T) {
		uc := NewCalibrationUseCase(nil, nil, nil)
		_, err := uc.NewDraft(context.Background(), "   ", "Ana")
		if !errors.Is(err, ErrInvalidEquipmentID) {
			t.Fatalf("expected ErrInvalidEquipmentID, got %v", err)
		}
	})

	t.Run("equipment not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		eqRepo := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		uc := NewCalibrationUseCase(nil, eqRepo, nil)

		eqRepo.EXPECT().GetByID(gomock.Any(), "eq-x").Return(entities.Equipment{}, nil)

		_, err := uc.NewDraft(context.Background(), "eq-x", "Ana")
		if !errors.Is(err, ErrEquipmentNotFound) {
			t.Fatalf("expected ErrEquipmentNotFound, got %v", err)
		}
	})

	t.Run("seeded from default test groups", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		eqRepo := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		uc := NewCalibrationUseCase(nil, eqRepo, nil)

		eqRepo.EXPECT().GetByID(gomock.Any(), "eq-1").Return(entities.Equipment{
			ID:                "eq-1",
			DefaultTestGroups: []string{"Tração", "Compressão"},
		}, nil)

		draft, err := uc.NewDraft(context.Background(), "eq-1", "Ana")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(draft.MeasurementGroups) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(draft.MeasurementGroups))
		}
		if draft.MeasurementGroups[0].Name != "Tração" || draft.MeasurementGroups[1].Name != "Compressão" {
			t.Fatalf("unexpected group names: %+v", draft.MeasurementGroups)
		}
		if draft.Technician != "Ana" || draft.Temperature != 20 || draft.Humidity != 50 {
			t.Fatalf("unexpected defaults: %+v", draft)
		}
		if draft.Result != entities.ResultAprovado {
			t.Fatalf("expected initial Aprovado, got %q", draft.Result)
		}
	})

	t.Run("falls back to Teste Padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		eqRepo := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		uc := NewCalibrationUseCase(nil, eqRepo, nil)

		eqRepo.EXPECT().GetByID(gomock.Any(), "eq-1").Return(entities.Equipment{ID: "eq-1"}, nil)

		draft, err := uc.NewDraft(context.Background(), "eq-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(draft.MeasurementGroups) != 1 || draft.MeasurementGroups[0].Name != entities.DefaultGroupName {
			t.Fatalf("expected single default group, got %+v", draft.MeasurementGroups)
		}
		if draft.Technician != "Técnico" {
			t.Fatalf("expected default technician, got %q", draft.Technician)
		}
	})
}

func TestCalibrationUseCase_GetByID(t *testing.T) {
	t.Run("legacy record gets one synthetic group", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICalibrationRepository(ctrl)
		uc := NewCalibrationUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "old").Return(entities.CalibrationRecord{
			ID: "old",
			Measurements: []entities.MeasurementPoint{
				{ID: "p1", Error: 0.1},
				{ID: "p2", Error: 0.2},
			},
		}, nil)

		r, err := uc.GetByID(context.Background(), "old")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(r.MeasurementGroups) != 1 {
			t.Fatalf("expected one synthetic group, got %d", len(r.MeasurementGroups))
		}
		g := r.MeasurementGroups[0]
		if g.ID != entities.LegacyGroupID || len(g.Measurements) != 2 {
			t.Fatalf("unexpected synthetic group: %+v", g)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICalibrationRepository(ctrl)
		uc := NewCalibrationUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.CalibrationRecord{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrCalibrationNotFound) {
			t.Fatalf("expected ErrCalibrationNotFound, got %v", err)
		}
	})
}

func TestCalibrationUseCase_Save(t *testing.T) {
	t.Run("flattens legacy field and updates schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICalibrationRepository(ctrl)
		eqRepo := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		uc := NewCalibrationUseCase(repo, eqRepo, nil)

		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.CalibrationRecord{})).DoAndReturn(
			func(_ context.Context, r entities.CalibrationRecord) (entities.CalibrationRecord, error) {
				if len(r.Measurements) != 1 || r.Measurements[0].ID != "p1" {
					t.Fatalf("legacy field not regenerated: %+v", r.Measurements)
				}
				return r, nil
			},
		)
		eqRepo.EXPECT().UpdateCalibrationDates(gomock.Any(), "eq-1", "2026-02-10", "2027-02-10").Return(nil)

		saved, err := uc.Save(context.Background(), calibrationFixture())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.ID != "cal-1" {
			t.Fatalf("unexpected record: %+v", saved)
		}
	})

	t.Run("save failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICalibrationRepository(ctrl)
		uc := NewCalibrationUseCase(repo, nil, nil)

		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.CalibrationRecord{}, errors.New("db"))

		_, err := uc.Save(context.Background(), calibrationFixture())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("round-trip keeps groups and errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICalibrationRepository(ctrl)
		eqRepo := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		uc := NewCalibrationUseCase(repo, eqRepo, nil)

		var stored entities.CalibrationRecord
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.CalibrationRecord) (entities.CalibrationRecord, error) {
				stored = r
				return r, nil
			},
		)
		eqRepo.EXPECT().UpdateCalibrationDates(gomock.Any(), "eq-1", gomock.Any(), gomock.Any()).Return(nil)

		original := calibrationFixture()
		if _, err := uc.Save(context.Background(), original); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		repo.EXPECT().GetByID(gomock.Any(), "cal-1").Return(stored, nil)
		reloaded, err := uc.GetByID(context.Background(), "cal-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reloaded.MeasurementGroups) != len(original.MeasurementGroups) {
			t.Fatalf("group count changed")
		}
		for i, g := range reloaded.MeasurementGroups {
			og := original.MeasurementGroups[i]
			if g.Name != og.Name || len(g.Measurements) != len(og.Measurements) {
				t.Fatalf("group %d changed: %+v vs %+v", i, g, og)
			}
			for j, p := range g.Measurements {
				if p != og.Measurements[j] {
					t.Fatalf("point %d/%d changed: %+v vs %+v", i, j, p, og.Measurements[j])
				}
			}
		}
	})
}

func TestCalibrationUseCase_ApplyUncertainty(t *testing.T) {
	uc := NewCalibrationUseCase(nil, nil, nil)

	t.Run("applies expanded value", func(t *testing.T) {
		r, expanded, err := uc.ApplyUncertainty(calibrationFixture(), "g1", 0.02, 0.01, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expanded != 0.0208 {
			t.Fatalf("expected 0.0208, got %v", expanded)
		}
		if got := r.MeasurementGroups[0].Measurements[0].Uncertainty; got != 0.0208 {
			t.Fatalf("not applied, got %v", got)
		}
	})

	t.Run("zero k rejected without mutation", func(t *testing.T) {
		original := calibrationFixture()
		r, _, err := uc.ApplyUncertainty(original, "g1", 0.02, 0.01, 0)
		if err == nil {
			t.Fatalf("expected error")
		}
		if r.MeasurementGroups[0].Measurements[0].Uncertainty != 0.01 {
			t.Fatalf("record mutated on error")
		}
	})
}

func TestCalibrationUseCase_Analyze(t *testing.T) {
	t.Run("appends analysis to notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		eqRepo := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		gateway := mock_interfaces.NewMockIAnalysisGateway(ctrl)
		uc := NewCalibrationUseCase(nil, eqRepo, gateway)

		eqRepo.EXPECT().GetByID(gomock.Any(), "eq-1").Return(entities.Equipment{ID: "eq-1", Tag: "MN-01", Name: "Manômetro"}, nil)
		gateway.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, prompt string) (string, error) {
				if !strings.Contains(prompt, "GRUPO DE TESTE: Tração") {
					t.Fatalf("prompt missing group section:\n%s", prompt)
				}
				if !strings.Contains(prompt, "MN-01") {
					t.Fatalf("prompt missing equipment tag")
				}
				return "PARECER GERADO POR IA: conforme.", nil
			},
		)

		r := calibrationFixture()
		r.Notes = "Medições realizadas."
		out, err := uc.Analyze(context.Background(), r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AIAnalysis != "PARECER GERADO POR IA: conforme." {
			t.Fatalf("unexpected analysis: %q", out.AIAnalysis)
		}
		if out.Notes != "Medições realizadas.\n\nPARECER GERADO POR IA: conforme." {
			t.Fatalf("unexpected notes: %q", out.Notes)
		}
	})

	t.Run("gateway failure maps to fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		eqRepo := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		gateway := mock_interfaces.NewMockIAnalysisGateway(ctrl)
		uc := NewCalibrationUseCase(nil, eqRepo, gateway)

		eqRepo.EXPECT().GetByID(gomock.Any(), "eq-1").Return(entities.Equipment{ID: "eq-1"}, nil)
		gateway.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("offline"))

		out, err := uc.Analyze(context.Background(), calibrationFixture())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AIAnalysis != AnalysisFallback {
			t.Fatalf("expected fallback, got %q", out.AIAnalysis)
		}
	})
}

func TestCalibrationUseCase_ListByEquipment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICalibrationRepository(ctrl)
	uc := NewCalibrationUseCase(repo, nil, nil)

	repo.EXPECT().ListByEquipmentID(gomock.Any(), "eq-1").Return([]entities.CalibrationRecord{
		{ID: "a", Date: "2025-01-01"},
		{ID: "b", Date: "2026-06-01"},
		{ID: "c", Date: "2025-12-31"},
	}, nil)

	records, err := uc.ListByEquipment(context.Background(), "eq-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records[0].ID != "b" || records[1].ID != "c" || records[2].ID != "a" {
		t.Fatalf("expected newest-first order, got %+v", records)
	}
}
