package entities

import (
	"errors"
	"fmt"

	"metrologia_avc/internal/domain/metrology"
)

// CalibrationResult is the final verdict of a calibration record.
//
// The verdict is always set by the operator (possibly suggested by the AI
// analysis); it is never derived automatically from the computed values.

type CalibrationResult string

const (
	ResultAprovado     CalibrationResult = "Aprovado"
	ResultAprovadoRest CalibrationResult = "Aprovado com Restrições"
	ResultReprovado    CalibrationResult = "Reprovado"
)

var ErrUnknownCalibrationResult = errors.New("unknown calibration result")

func ParseCalibrationResult(s string) (CalibrationResult, error) {
	switch CalibrationResult(s) {
	case ResultAprovado, ResultAprovadoRest, ResultReprovado:
		return CalibrationResult(s), nil
	}
	return "", ErrUnknownCalibrationResult
}

var (
	ErrLastMeasurementGroup     = errors.New("at least one measurement group is required")
	ErrMeasurementGroupNotFound = errors.New("measurement group not found")
	ErrMeasurementPointNotFound = errors.New("measurement point not found")
)

// LegacyGroupID marks the single group synthesized from a record stored
// before multi-group support existed.
const LegacyGroupID = "default"

// LegacyGroupName names that synthesized group.
const LegacyGroupName = "Dados de Medição"

// DefaultGroupName is used when the equipment configures no test groups.
const DefaultGroupName = "Teste Padrão"

// MeasurementPoint is one reference/measured pair of a test group.
//
// Error is always derived (measured - reference, 4 decimals); it is never
// edited independently. Uncertainty defaults to 0 when absent.
type MeasurementPoint struct {
	ID             string  `json:"id"`
	ReferenceValue float64 `json:"referenceValue"`
	MeasuredValue  float64 `json:"measuredValue"`
	Error          float64 `json:"error"`
	Uncertainty    float64 `json:"uncertainty"`
}

// Combined is √(error² + uncertainty²) for this point.
func (p MeasurementPoint) Combined() float64 {
	return metrology.Combined(p.Error, p.Uncertainty)
}

// MeasurementGroup is a named test set ("Tração", "Compressão", ...).
// IDs exist only so a UI can diff rows; they carry no other semantics.
type MeasurementGroup struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Measurements []MeasurementPoint `json:"measurements"`
}

// CalibrationRecord is a calibration session persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (equipmentId-index): equipmentId
//
// MeasurementGroups is the current model. Measurements is the flattened
// legacy field, regenerated from the groups on every save so that older
// consumers keep working.
type CalibrationRecord struct {
	ID                string             `json:"id"`
	EquipmentID       string             `json:"equipmentId"`
	Date              string             `json:"date"`
	Technician        string             `json:"technician"`
	Temperature       float64            `json:"temperature"`
	Humidity          float64            `json:"humidity"`
	StandardUsed      string             `json:"standardUsed"`
	Measurements      []MeasurementPoint `json:"measurements"`
	MeasurementGroups []MeasurementGroup `json:"measurementGroups"`
	Result            CalibrationResult  `json:"result"`
	Notes             string             `json:"notes"`
	AIAnalysis        string             `json:"aiAnalysis,omitempty"`
}

// All transforms below are pure: they deep-copy the group list and return a
// new record snapshot, leaving the receiver untouched.

func (r CalibrationRecord) cloneGroups() []MeasurementGroup {
	groups := make([]MeasurementGroup, len(r.MeasurementGroups))
	for i, g := range r.MeasurementGroups {
		points := make([]MeasurementPoint, len(g.Measurements))
		copy(points, g.Measurements)
		g.Measurements = points
		groups[i] = g
	}
	return groups
}

// WithGroupAdded appends an empty group named "Teste N".
func (r CalibrationRecord) WithGroupAdded(groupID string) CalibrationRecord {
	groups := r.cloneGroups()
	groups = append(groups, MeasurementGroup{
		ID:           groupID,
		Name:         fmt.Sprintf("Teste %d", len(groups)+1),
		Measurements: []MeasurementPoint{},
	})
	r.MeasurementGroups = groups
	return r
}

// WithGroupRenamed sets a new display name on the group.
func (r CalibrationRecord) WithGroupRenamed(groupID, name string) (CalibrationRecord, error) {
	groups := r.cloneGroups()
	for i := range groups {
		if groups[i].ID == groupID {
			groups[i].Name = name
			r.MeasurementGroups = groups
			return r, nil
		}
	}
	return r, ErrMeasurementGroupNotFound
}

// WithGroupRemoved drops the group and its points. Removing the last
// remaining group is rejected: a record must always hold at least one.
func (r CalibrationRecord) WithGroupRemoved(groupID string) (CalibrationRecord, error) {
	if len(r.MeasurementGroups) <= 1 {
		return r, ErrLastMeasurementGroup
	}
	groups := make([]MeasurementGroup, 0, len(r.MeasurementGroups)-1)
	found := false
	for _, g := range r.cloneGroups() {
		if g.ID == groupID {
			found = true
			continue
		}
		groups = append(groups, g)
	}
	if !found {
		return r, ErrMeasurementGroupNotFound
	}
	r.MeasurementGroups = groups
	return r, nil
}

// WithPointAdded appends a zero-valued point to the group.
func (r CalibrationRecord) WithPointAdded(groupID, pointID string) (CalibrationRecord, error) {
	groups := r.cloneGroups()
	for i := range groups {
		if groups[i].ID == groupID {
			groups[i].Measurements = append(groups[i].Measurements, MeasurementPoint{ID: pointID})
			r.MeasurementGroups = groups
			return r, nil
		}
	}
	return r, ErrMeasurementGroupNotFound
}

// WithPointRemoved drops one point from the group.
func (r CalibrationRecord) WithPointRemoved(groupID, pointID string) (CalibrationRecord, error) {
	groups := r.cloneGroups()
	for i := range groups {
		if groups[i].ID != groupID {
			continue
		}
		points := make([]MeasurementPoint, 0, len(groups[i].Measurements))
		found := false
		for _, p := range groups[i].Measurements {
			if p.ID == pointID {
				found = true
				continue
			}
			points = append(points, p)
		}
		if !found {
			return r, ErrMeasurementPointNotFound
		}
		groups[i].Measurements = points
		r.MeasurementGroups = groups
		return r, nil
	}
	return r, ErrMeasurementGroupNotFound
}

// WithPointValues sets reference and measured values and recomputes the
// derived error. The point's uncertainty is preserved.
func (r CalibrationRecord) WithPointValues(groupID, pointID string, reference, measured float64) (CalibrationRecord, error) {
	return r.withPoint(groupID, pointID, func(p MeasurementPoint) MeasurementPoint {
		p.ReferenceValue = reference
		p.MeasuredValue = measured
		p.Error = metrology.PointError(reference, measured)
		return p
	})
}

// WithPointUncertainty sets the uncertainty of one point. The error is not
// recomputed: uncertainty alone never changes it.
func (r CalibrationRecord) WithPointUncertainty(groupID, pointID string, uncertainty float64) (CalibrationRecord, error) {
	return r.withPoint(groupID, pointID, func(p MeasurementPoint) MeasurementPoint {
		p.Uncertainty = uncertainty
		return p
	})
}

func (r CalibrationRecord) withPoint(groupID, pointID string, apply func(MeasurementPoint) MeasurementPoint) (CalibrationRecord, error) {
	groups := r.cloneGroups()
	for i := range groups {
		if groups[i].ID != groupID {
			continue
		}
		for j, p := range groups[i].Measurements {
			if p.ID == pointID {
				groups[i].Measurements[j] = apply(p)
				r.MeasurementGroups = groups
				return r, nil
			}
		}
		return r, ErrMeasurementPointNotFound
	}
	return r, ErrMeasurementGroupNotFound
}

// ApplyToAllGroups selects every group for WithUncertaintyApplied.
const ApplyToAllGroups = "all"

// WithUncertaintyApplied overwrites the uncertainty of every point of the
// target group (or of all groups) with the given value. Prior values are
// replaced unconditionally; there is no per-point override once applied.
func (r CalibrationRecord) WithUncertaintyApplied(groupID string, uncertainty float64) (CalibrationRecord, error) {
	groups := r.cloneGroups()
	found := groupID == ApplyToAllGroups
	for i := range groups {
		if groupID != ApplyToAllGroups && groups[i].ID != groupID {
			continue
		}
		found = true
		for j := range groups[i].Measurements {
			groups[i].Measurements[j].Uncertainty = uncertainty
		}
	}
	if !found {
		return r, ErrMeasurementGroupNotFound
	}
	r.MeasurementGroups = groups
	return r, nil
}

// AllPoints flattens every point across all groups, in group order.
func (r CalibrationRecord) AllPoints() []MeasurementPoint {
	var points []MeasurementPoint
	for _, g := range r.MeasurementGroups {
		points = append(points, g.Measurements...)
	}
	return points
}

// MaxAbsError is max(|error|) over all points, 0 when the record is empty.
func (r CalibrationRecord) MaxAbsError() float64 {
	max := 0.0
	for _, p := range r.AllPoints() {
		e := p.Error
		if e < 0 {
			e = -e
		}
		if e > max {
			max = e
		}
	}
	return max
}

// MaxUncertainty is max(uncertainty) over all points, 0 when empty.
func (r CalibrationRecord) MaxUncertainty() float64 {
	max := 0.0
	for _, p := range r.AllPoints() {
		if p.Uncertainty > max {
			max = p.Uncertainty
		}
	}
	return max
}

// SummaryValue is the record-level worst case √(maxError² + maxUncertainty²).
// It feeds the reviewer's verdict; it never assigns Result by itself.
func (r CalibrationRecord) SummaryValue() float64 {
	return metrology.Combined(r.MaxAbsError(), r.MaxUncertainty())
}

// WithLegacyGroups materializes exactly one synthetic group from the flat
// legacy point list when the stored record predates multi-group support.
// Records that already carry groups are returned unchanged.
func (r CalibrationRecord) WithLegacyGroups() CalibrationRecord {
	if len(r.MeasurementGroups) > 0 {
		return r
	}
	points := make([]MeasurementPoint, len(r.Measurements))
	copy(points, r.Measurements)
	r.MeasurementGroups = []MeasurementGroup{{
		ID:           LegacyGroupID,
		Name:         LegacyGroupName,
		Measurements: points,
	}}
	return r
}

// WithFlattenedMeasurements regenerates the legacy flat field from the
// groups. Called on every save for backward compatibility.
func (r CalibrationRecord) WithFlattenedMeasurements() CalibrationRecord {
	r.Measurements = r.AllPoints()
	return r
}
