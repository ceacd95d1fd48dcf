package entities

import (
	"errors"
	"time"
)

// EquipmentStatus represents the lifecycle of a piece of measurement equipment.
//
// Domain notes:
//   - Only active equipment participates in calibration-due alerts.
//   - Unknown status strings are rejected at the ingestion boundary instead of
//     being propagated as free text.

type EquipmentStatus string

const (
	EquipmentStatusAtivo      EquipmentStatus = "Ativo"
	EquipmentStatusInativo    EquipmentStatus = "Inativo"
	EquipmentStatusDescartado EquipmentStatus = "Descartado"
)

var ErrUnknownEquipmentStatus = errors.New("unknown equipment status")

// ParseEquipmentStatus validates a status string coming from an external
// source (HTTP payload, spreadsheet, stored document).
func ParseEquipmentStatus(s string) (EquipmentStatus, error) {
	switch EquipmentStatus(s) {
	case EquipmentStatusAtivo, EquipmentStatusInativo, EquipmentStatusDescartado:
		return EquipmentStatus(s), nil
	}
	return "", ErrUnknownEquipmentStatus
}

// ScheduleStatus classifies how close an equipment is to its next calibration.

type ScheduleStatus string

const (
	ScheduleStatusVencido ScheduleStatus = "Vencido"
	ScheduleStatusAVencer ScheduleStatus = "A Vencer"
	ScheduleStatusEmDia   ScheduleStatus = "Em Dia"
)

// scheduleWarningDays is the window before the due date that triggers an alert.
const scheduleWarningDays = 30

// Equipment is the measurement instrument record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// ID is the stable persistence key. Tag is a human label; uniqueness is only
// enforced when reconciling spreadsheet imports, where the sanitized tag
// becomes the document id.
//
// Range, Resolution and Accuracy are free-form strings as written on the
// instrument datasheet; only the leading numeric token of Resolution is ever
// machine-parsed (uncertainty calculator).
type Equipment struct {
	ID                  string          `json:"id"`
	Tag                 string          `json:"tag"`
	Name                string          `json:"name"`
	Manufacturer        string          `json:"manufacturer"`
	Model               string          `json:"model"`
	SerialNumber        string          `json:"serialNumber"`
	Range               string          `json:"range"`
	Resolution          string          `json:"resolution"`
	Accuracy            string          `json:"accuracy"`
	Location            string          `json:"location"`
	Supplier            string          `json:"supplier,omitempty"`
	Status              EquipmentStatus `json:"status"`
	LastCalibrationDate string          `json:"lastCalibrationDate,omitempty"`
	NextCalibrationDate string          `json:"nextCalibrationDate"`
	OpeningPressure     string          `json:"openingPressure,omitempty"`
	ClosingPressure     string          `json:"closingPressure,omitempty"`
	CreatedAt           string          `json:"createdAt"`

	// DefaultTestGroups seeds the measurement groups of a new calibration
	// record (e.g. ["Tração", "Compressão"]). Empty means a single default
	// group is created instead.
	DefaultTestGroups []string `json:"defaultTestGroups,omitempty"`
}

// ScheduleStatus classifies the next calibration date against the given day.
// Dates are ISO (YYYY-MM-DD); an unparseable date counts as expired so it
// never disappears from the alert list.
func (e Equipment) ScheduleStatus(today time.Time) ScheduleStatus {
	next, err := time.Parse("2006-01-02", e.NextCalibrationDate)
	if err != nil {
		return ScheduleStatusVencido
	}
	today = today.Truncate(24 * time.Hour)
	days := int(next.Sub(today).Hours() / 24)
	switch {
	case days < 0:
		return ScheduleStatusVencido
	case days <= scheduleWarningDays:
		return ScheduleStatusAVencer
	default:
		return ScheduleStatusEmDia
	}
}
