package response

import (
	"time"

	"metrologia_avc/internal/domain/entities"
)

type EquipmentResponse struct {
	ID                  string   `json:"id"`
	Tag                 string   `json:"tag"`
	Name                string   `json:"name"`
	Manufacturer        string   `json:"manufacturer"`
	Model               string   `json:"model"`
	SerialNumber        string   `json:"serialNumber"`
	Range               string   `json:"range"`
	Resolution          string   `json:"resolution"`
	Accuracy            string   `json:"accuracy"`
	Location            string   `json:"location"`
	Supplier            string   `json:"supplier,omitempty"`
	Status              string   `json:"status"`
	ScheduleStatus      string   `json:"scheduleStatus"`
	LastCalibrationDate string   `json:"lastCalibrationDate,omitempty"`
	NextCalibrationDate string   `json:"nextCalibrationDate"`
	OpeningPressure     string   `json:"openingPressure,omitempty"`
	ClosingPressure     string   `json:"closingPressure,omitempty"`
	CreatedAt           string   `json:"createdAt"`
	DefaultTestGroups   []string `json:"defaultTestGroups,omitempty"`
}

func FromEquipment(e entities.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:                  e.ID,
		Tag:                 e.Tag,
		Name:                e.Name,
		Manufacturer:        e.Manufacturer,
		Model:               e.Model,
		SerialNumber:        e.SerialNumber,
		Range:               e.Range,
		Resolution:          e.Resolution,
		Accuracy:            e.Accuracy,
		Location:            e.Location,
		Supplier:            e.Supplier,
		Status:              string(e.Status),
		ScheduleStatus:      string(e.ScheduleStatus(time.Now().UTC())),
		LastCalibrationDate: e.LastCalibrationDate,
		NextCalibrationDate: e.NextCalibrationDate,
		OpeningPressure:     e.OpeningPressure,
		ClosingPressure:     e.ClosingPressure,
		CreatedAt:           e.CreatedAt,
		DefaultTestGroups:   e.DefaultTestGroups,
	}
}

func FromEquipments(list []entities.Equipment) []EquipmentResponse {
	out := make([]EquipmentResponse, len(list))
	for i, e := range list {
		out[i] = FromEquipment(e)
	}
	return out
}

// CalibrationAlertsResponse groups active equipment by schedule urgency.
type CalibrationAlertsResponse struct {
	Expired []EquipmentResponse `json:"expired"`
	Warning []EquipmentResponse `json:"warning"`
}

// ClearAllResponse reports how many documents a clear-all removed.
type ClearAllResponse struct {
	Deleted int `json:"deleted"`
}
