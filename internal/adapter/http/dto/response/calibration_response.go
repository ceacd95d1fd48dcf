package response

import "metrologia_avc/internal/domain/entities"

type MeasurementPointResponse struct {
	ID             string  `json:"id"`
	ReferenceValue float64 `json:"referenceValue"`
	MeasuredValue  float64 `json:"measuredValue"`
	Error          float64 `json:"error"`
	Uncertainty    float64 `json:"uncertainty"`
	CombinedError  float64 `json:"combinedError"`
}

type MeasurementGroupResponse struct {
	ID           string                     `json:"id"`
	Name         string                     `json:"name"`
	Measurements []MeasurementPointResponse `json:"measurements"`
}

type CalibrationResponse struct {
	ID                string                     `json:"id"`
	EquipmentID       string                     `json:"equipmentId"`
	Date              string                     `json:"date"`
	Technician        string                     `json:"technician"`
	Temperature       float64                    `json:"temperature"`
	Humidity          float64                    `json:"humidity"`
	StandardUsed      string                     `json:"standardUsed,omitempty"`
	MeasurementGroups []MeasurementGroupResponse `json:"measurementGroups"`
	Result            string                     `json:"result"`
	Notes             string                     `json:"notes"`
	AIAnalysis        string                     `json:"aiAnalysis,omitempty"`

	// Aggregates over every group, precomputed for list views.
	MaxError       float64 `json:"maxError"`
	MaxUncertainty float64 `json:"maxUncertainty"`
	SummaryValue   float64 `json:"summaryValue"`
}

func FromCalibration(r entities.CalibrationRecord) CalibrationResponse {
	groups := make([]MeasurementGroupResponse, len(r.MeasurementGroups))
	for i, g := range r.MeasurementGroups {
		points := make([]MeasurementPointResponse, len(g.Measurements))
		for j, p := range g.Measurements {
			points[j] = MeasurementPointResponse{
				ID:             p.ID,
				ReferenceValue: p.ReferenceValue,
				MeasuredValue:  p.MeasuredValue,
				Error:          p.Error,
				Uncertainty:    p.Uncertainty,
				CombinedError:  p.Combined(),
			}
		}
		groups[i] = MeasurementGroupResponse{ID: g.ID, Name: g.Name, Measurements: points}
	}

	return CalibrationResponse{
		ID:                r.ID,
		EquipmentID:       r.EquipmentID,
		Date:              r.Date,
		Technician:        r.Technician,
		Temperature:       r.Temperature,
		Humidity:          r.Humidity,
		StandardUsed:      r.StandardUsed,
		MeasurementGroups: groups,
		Result:            string(r.Result),
		Notes:             r.Notes,
		AIAnalysis:        r.AIAnalysis,
		MaxError:          r.MaxAbsError(),
		MaxUncertainty:    r.MaxUncertainty(),
		SummaryValue:      r.SummaryValue(),
	}
}

func FromCalibrations(list []entities.CalibrationRecord) []CalibrationResponse {
	out := make([]CalibrationResponse, len(list))
	for i, r := range list {
		out[i] = FromCalibration(r)
	}
	return out
}

// UncertaintyResponse returns the updated record together with the expanded
// uncertainty that was applied to it.
type UncertaintyResponse struct {
	Record              CalibrationResponse `json:"record"`
	ExpandedUncertainty float64             `json:"expandedUncertainty"`
}
