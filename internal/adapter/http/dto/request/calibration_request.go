package request

import (
	"strings"

	"metrologia_avc/internal/domain/entities"
	"metrologia_avc/internal/domain/metrology"
)

type MeasurementPointRequest struct {
	ID             string  `json:"id"`
	ReferenceValue float64 `json:"referenceValue"`
	MeasuredValue  float64 `json:"measuredValue"`
	Error          float64 `json:"error"`
	Uncertainty    float64 `json:"uncertainty"`
}

type MeasurementGroupRequest struct {
	ID           string                    `json:"id"`
	Name         string                    `json:"name"`
	Measurements []MeasurementPointRequest `json:"measurements"`
}

// CalibrationRequest mirrors the calibration record edited by the web client.
type CalibrationRequest struct {
	ID                string                    `json:"id"`
	EquipmentID       string                    `json:"equipmentId" binding:"required"`
	Date              string                    `json:"date"`
	Technician        string                    `json:"technician"`
	Temperature       float64                   `json:"temperature"`
	Humidity          float64                   `json:"humidity"`
	StandardUsed      string                    `json:"standardUsed"`
	MeasurementGroups []MeasurementGroupRequest `json:"measurementGroups"`
	Result            string                    `json:"result"`
	Notes             string                    `json:"notes"`
	AIAnalysis        string                    `json:"aiAnalysis"`
}

// ToEntity converts the payload, validating the result enum. An empty result
// defaults to Aprovado.
func (r CalibrationRequest) ToEntity() (entities.CalibrationRecord, error) {
	result := entities.ResultAprovado
	if s := strings.TrimSpace(r.Result); s != "" {
		parsed, err := entities.ParseCalibrationResult(s)
		if err != nil {
			return entities.CalibrationRecord{}, err
		}
		result = parsed
	}

	groups := make([]entities.MeasurementGroup, len(r.MeasurementGroups))
	for i, g := range r.MeasurementGroups {
		points := make([]entities.MeasurementPoint, len(g.Measurements))
		for j, p := range g.Measurements {
			points[j] = entities.MeasurementPoint{
				ID:             p.ID,
				ReferenceValue: p.ReferenceValue,
				MeasuredValue:  p.MeasuredValue,
				Error:          p.Error,
				Uncertainty:    p.Uncertainty,
			}
		}
		groups[i] = entities.MeasurementGroup{ID: g.ID, Name: g.Name, Measurements: points}
	}

	return entities.CalibrationRecord{
		ID:                strings.TrimSpace(r.ID),
		EquipmentID:       strings.TrimSpace(r.EquipmentID),
		Date:              r.Date,
		Technician:        r.Technician,
		Temperature:       r.Temperature,
		Humidity:          r.Humidity,
		StandardUsed:      r.StandardUsed,
		MeasurementGroups: groups,
		Result:            result,
		Notes:             r.Notes,
		AIAnalysis:        r.AIAnalysis,
	}, nil
}

// CalibrationDraftRequest starts a record for one equipment.
type CalibrationDraftRequest struct {
	EquipmentID string `json:"equipmentId" binding:"required"`
	Technician  string `json:"technician"`
}

// UncertaintyRequest carries the type-B calculator inputs plus the record the
// expanded result should be applied to. GroupID may be a group id or "all".
type UncertaintyRequest struct {
	Record              CalibrationRequest `json:"record" binding:"required"`
	GroupID             string             `json:"groupId" binding:"required"`
	StandardUncertainty float64            `json:"standardUncertainty"`
	Resolution          float64            `json:"resolution"`

	// ResolutionText is the equipment's free-text resolution ("0.01 mm"); it
	// is parsed only when the numeric Resolution is absent.
	ResolutionText string `json:"resolutionText"`

	// KFactor distinguishes "omitted" from an explicit zero: omitted means
	// the default coverage factor, zero is rejected downstream.
	KFactor *float64 `json:"kFactor"`
}

func (r UncertaintyRequest) ResolveKFactor() float64 {
	if r.KFactor == nil {
		return metrology.DefaultCoverageFactor
	}
	return *r.KFactor
}

// ResolveResolution prefers the numeric field, falling back to the first
// numeric token of the free-text resolution.
func (r UncertaintyRequest) ResolveResolution() float64 {
	if r.Resolution != 0 {
		return r.Resolution
	}
	return metrology.ParseResolution(r.ResolutionText)
}
