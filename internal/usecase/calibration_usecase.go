package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"metrologia_avc/internal/domain/entities"
	"metrologia_avc/internal/domain/metrology"
	"metrologia_avc/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCalibrationNotFound  = errors.New("calibration not found")
	ErrInvalidCalibrationID = errors.New("invalid calibration id")
)

// AnalysisFallback is returned when the narrative service cannot be reached.
const AnalysisFallback = "Erro ao conectar com serviço de IA."

// ICalibrationUseCase drives the calibration record lifecycle: draft
// creation, pure editing transforms, uncertainty application, AI analysis
// and persistence with the legacy-field regeneration.
//
// Editing operations take a record snapshot and return a new one without
// touching storage; only Save writes.
type ICalibrationUseCase interface {
	NewDraft(ctx context.Context, equipmentID, technician string) (entities.CalibrationRecord, error)
	GetByID(ctx context.Context, id string) (entities.CalibrationRecord, error)
	ListByEquipment(ctx context.Context, equipmentID string) ([]entities.CalibrationRecord, error)
	Save(ctx context.Context, r entities.CalibrationRecord) (entities.CalibrationRecord, error)

	AddGroup(r entities.CalibrationRecord) entities.CalibrationRecord
	RenameGroup(r entities.CalibrationRecord, groupID, name string) (entities.CalibrationRecord, error)
	RemoveGroup(r entities.CalibrationRecord, groupID string) (entities.CalibrationRecord, error)
	AddPoint(r entities.CalibrationRecord, groupID string) (entities.CalibrationRecord, error)
	RemovePoint(r entities.CalibrationRecord, groupID, pointID string) (entities.CalibrationRecord, error)
	SetPointValues(r entities.CalibrationRecord, groupID, pointID string, reference, measured float64) (entities.CalibrationRecord, error)
	SetPointUncertainty(r entities.CalibrationRecord, groupID, pointID string, uncertainty float64) (entities.CalibrationRecord, error)
	ApplyUncertainty(r entities.CalibrationRecord, groupID string, standardUncertainty, resolution, k float64) (entities.CalibrationRecord, float64, error)

	Analyze(ctx context.Context, r entities.CalibrationRecord) (entities.CalibrationRecord, error)
}

type CalibrationUseCase struct {
	repo          interfaces.ICalibrationRepository
	equipmentRepo interfaces.IEquipmentRepository
	analysis      interfaces.IAnalysisGateway
}

var _ ICalibrationUseCase = (*CalibrationUseCase)(nil)

func NewCalibrationUseCase(
	repo interfaces.ICalibrationRepository,
	equipmentRepo interfaces.IEquipmentRepository,
	analysis interfaces.IAnalysisGateway,
) *CalibrationUseCase {
	return &CalibrationUseCase{repo: repo, equipmentRepo: equipmentRepo, analysis: analysis}
}

// NewDraft seeds a fresh record for the equipment: one group per configured
// default test group, or a single "Teste Padrão" group when none exist.
func (u *CalibrationUseCase) NewDraft(ctx context.Context, equipmentID, technician string) (entities.CalibrationRecord, error) {
	equipmentID = strings.TrimSpace(equipmentID)
	if equipmentID == "" {
		return entities.CalibrationRecord{}, ErrInvalidEquipmentID
	}

	eq, err := u.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return entities.CalibrationRecord{}, err
	}
	if eq.ID == "" {
		return entities.CalibrationRecord{}, ErrEquipmentNotFound
	}

	var groups []entities.MeasurementGroup
	for _, name := range eq.DefaultTestGroups {
		groups = append(groups, entities.MeasurementGroup{
			ID:           uuid.NewString(),
			Name:         name,
			Measurements: []entities.MeasurementPoint{},
		})
	}
	if len(groups) == 0 {
		groups = []entities.MeasurementGroup{{
			ID:           uuid.NewString(),
			Name:         entities.DefaultGroupName,
			Measurements: []entities.MeasurementPoint{},
		}}
	}

	if strings.TrimSpace(technician) == "" {
		technician = "Técnico"
	}

	return entities.CalibrationRecord{
		ID:                uuid.NewString(),
		EquipmentID:       equipmentID,
		Date:              time.Now().UTC().Format("2006-01-02"),
		Technician:        technician,
		Temperature:       20,
		Humidity:          50,
		MeasurementGroups: groups,
		Result:            entities.ResultAprovado,
	}, nil
}

// GetByID loads a stored record, materializing the synthetic legacy group
// when the document predates multi-group support.
func (u *CalibrationUseCase) GetByID(ctx context.Context, id string) (entities.CalibrationRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CalibrationRecord{}, ErrInvalidCalibrationID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CalibrationRecord{}, err
	}
	if r.ID == "" {
		return entities.CalibrationRecord{}, ErrCalibrationNotFound
	}
	return r.WithLegacyGroups(), nil
}

// ListByEquipment returns records newest-first. Sorting happens here because
// the store collaborator gives no ordering guarantee.
func (u *CalibrationUseCase) ListByEquipment(ctx context.Context, equipmentID string) ([]entities.CalibrationRecord, error) {
	records, err := u.repo.ListByEquipmentID(ctx, strings.TrimSpace(equipmentID))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
	return records, nil
}

// Save regenerates the flattened legacy field, upserts the record and then
// pushes the equipment's last/next calibration dates forward. A failed save
// surfaces to the caller; the in-memory snapshot is untouched either way.
func (u *CalibrationUseCase) Save(ctx context.Context, r entities.CalibrationRecord) (entities.CalibrationRecord, error) {
	if strings.TrimSpace(r.ID) == "" {
		return entities.CalibrationRecord{}, ErrInvalidCalibrationID
	}
	if strings.TrimSpace(r.EquipmentID) == "" {
		return entities.CalibrationRecord{}, ErrInvalidEquipmentID
	}

	r = r.WithLegacyGroups().WithFlattenedMeasurements()

	saved, err := u.repo.Save(ctx, r)
	if err != nil {
		log.Printf("[calibration][save] persist failed id=%s err=%v", r.ID, err)
		return entities.CalibrationRecord{}, err
	}

	next, err := nextCalibrationDate(saved.Date)
	if err != nil {
		log.Printf("[calibration][save] invalid date %q, equipment schedule not updated: %v", saved.Date, err)
		return saved, nil
	}
	if err := u.equipmentRepo.UpdateCalibrationDates(ctx, saved.EquipmentID, saved.Date, next); err != nil {
		log.Printf("[calibration][save] schedule update failed equipment=%s err=%v", saved.EquipmentID, err)
		return entities.CalibrationRecord{}, err
	}
	return saved, nil
}

func nextCalibrationDate(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", err
	}
	return t.AddDate(1, 0, 0).Format("2006-01-02"), nil
}

func (u *CalibrationUseCase) AddGroup(r entities.CalibrationRecord) entities.CalibrationRecord {
	return r.WithGroupAdded(uuid.NewString())
}

func (u *CalibrationUseCase) RenameGroup(r entities.CalibrationRecord, groupID, name string) (entities.CalibrationRecord, error) {
	return r.WithGroupRenamed(groupID, name)
}

func (u *CalibrationUseCase) RemoveGroup(r entities.CalibrationRecord, groupID string) (entities.CalibrationRecord, error) {
	return r.WithGroupRemoved(groupID)
}

func (u *CalibrationUseCase) AddPoint(r entities.CalibrationRecord, groupID string) (entities.CalibrationRecord, error) {
	return r.WithPointAdded(groupID, uuid.NewString())
}

func (u *CalibrationUseCase) RemovePoint(r entities.CalibrationRecord, groupID, pointID string) (entities.CalibrationRecord, error) {
	return r.WithPointRemoved(groupID, pointID)
}

func (u *CalibrationUseCase) SetPointValues(r entities.CalibrationRecord, groupID, pointID string, reference, measured float64) (entities.CalibrationRecord, error) {
	return r.WithPointValues(groupID, pointID, reference, measured)
}

func (u *CalibrationUseCase) SetPointUncertainty(r entities.CalibrationRecord, groupID, pointID string, uncertainty float64) (entities.CalibrationRecord, error) {
	return r.WithPointUncertainty(groupID, pointID, uncertainty)
}

// ApplyUncertainty runs the type-B calculator and overwrites the uncertainty
// of the target group (or all groups) with the expanded result, which is also
// returned for display.
func (u *CalibrationUseCase) ApplyUncertainty(r entities.CalibrationRecord, groupID string, standardUncertainty, resolution, k float64) (entities.CalibrationRecord, float64, error) {
	expanded, err := metrology.ExpandedUncertainty(standardUncertainty, resolution, k)
	if err != nil {
		return r, 0, err
	}
	updated, err := r.WithUncertaintyApplied(groupID, expanded)
	if err != nil {
		return r, 0, err
	}
	return updated, expanded, nil
}

// Analyze asks the narrative service for a technical opinion on the record
// and appends it to the notes. A gateway failure is logged and mapped to the
// fixed fallback text instead of failing the whole edit session.
func (u *CalibrationUseCase) Analyze(ctx context.Context, r entities.CalibrationRecord) (entities.CalibrationRecord, error) {
	eq, err := u.equipmentRepo.GetByID(ctx, r.EquipmentID)
	if err != nil {
		return entities.CalibrationRecord{}, err
	}
	if eq.ID == "" {
		return entities.CalibrationRecord{}, ErrEquipmentNotFound
	}

	var text string
	if u.analysis == nil {
		log.Printf("[calibration][analyze] no gateway configured record=%s", r.ID)
		text = AnalysisFallback
	} else if text, err = u.analysis.Generate(ctx, buildAnalysisPrompt(eq, r)); err != nil {
		log.Printf("[calibration][analyze] gateway failed record=%s err=%v", r.ID, err)
		text = AnalysisFallback
	}

	r.AIAnalysis = text
	if r.Notes == "" {
		r.Notes = text
	} else {
		r.Notes = r.Notes + "\n\n" + text
	}
	return r, nil
}

// buildAnalysisPrompt embeds the equipment spec and every measurement group
// (with per-point combined error) into the instruction block sent to the
// narrative service.
func buildAnalysisPrompt(eq entities.Equipment, r entities.CalibrationRecord) string {
	var measurements strings.Builder
	for i, g := range r.MeasurementGroups {
		if i > 0 {
			measurements.WriteString("\n\n")
		}
		fmt.Fprintf(&measurements, "GRUPO DE TESTE: %s\n", g.Name)
		for _, m := range g.Measurements {
			fmt.Fprintf(&measurements,
				"- Padrão: %v, Medido: %v, Erro: %v, Incerteza: %v, Erro Combinado (√(E²+U²)): %.4f\n",
				m.ReferenceValue, m.MeasuredValue, m.Error, m.Uncertainty, m.Combined())
		}
	}

	return fmt.Sprintf(`VOCÊ É UMA INTELIGÊNCIA ARTIFICIAL (IA) DO SISTEMA METROLOGIA AVC.
NÃO atue como engenheiro, técnico ou humano. NÃO use primeira pessoa.

Analise os dados de calibração abaixo de forma técnica e impessoal:

Equipamento: %s (%s %s)
Tag: %s
Exatidão/Critério: %s
Resolução: %s

Dados da Calibração:
Data: %s
Temperatura: %v°C
Umidade: %v%%

Medições (Padrão vs Medido):
%s

INSTRUÇÕES OBRIGATÓRIAS:
1. Analise se o 'Erro Combinado' ultrapassa os critérios de exatidão (se informados) EM CADA GRUPO DE TESTE.
2. Forneça um parecer técnico objetivo indicando conformidade ou não.
3. O TEXTO DEVE INICIAR EXATAMENTE COM: "PARECER GERADO POR IA:".
4. Use frases impessoais como "A análise indica...", "Observa-se que...".
5. Se houver múltiplos grupos (ex: Tração e Compressão), cite especificamente qual passou ou falhou.

Responda em Português do Brasil.`,
		eq.Name, eq.Manufacturer, eq.Model,
		eq.Tag, eq.Accuracy, eq.Resolution,
		r.Date, r.Temperature, r.Humidity,
		measurements.String())
}
