package request

import (
	"strings"

	"metrologia_avc/internal/domain/entities"
)

// EquipmentRequest mirrors the equipment document edited by the web client.
type EquipmentRequest struct {
	ID                  string   `json:"id"`
	Tag                 string   `json:"tag" binding:"required"`
	Name                string   `json:"name" binding:"required"`
	Manufacturer        string   `json:"manufacturer"`
	Model               string   `json:"model"`
	SerialNumber        string   `json:"serialNumber"`
	Range               string   `json:"range"`
	Resolution          string   `json:"resolution"`
	Accuracy            string   `json:"accuracy"`
	Location            string   `json:"location"`
	Supplier            string   `json:"supplier"`
	Status              string   `json:"status"`
	LastCalibrationDate string   `json:"lastCalibrationDate"`
	NextCalibrationDate string   `json:"nextCalibrationDate"`
	OpeningPressure     string   `json:"openingPressure"`
	ClosingPressure     string   `json:"closingPressure"`
	DefaultTestGroups   []string `json:"defaultTestGroups"`
}

// ToEntity converts the payload, validating the status enum. An empty status
// is allowed; the use case defaults it to Ativo.
func (r EquipmentRequest) ToEntity() (entities.Equipment, error) {
	status := entities.EquipmentStatus("")
	if s := strings.TrimSpace(r.Status); s != "" {
		parsed, err := entities.ParseEquipmentStatus(s)
		if err != nil {
			return entities.Equipment{}, err
		}
		status = parsed
	}

	return entities.Equipment{
		ID:                  strings.TrimSpace(r.ID),
		Tag:                 strings.TrimSpace(r.Tag),
		Name:                strings.TrimSpace(r.Name),
		Manufacturer:        r.Manufacturer,
		Model:               r.Model,
		SerialNumber:        r.SerialNumber,
		Range:               r.Range,
		Resolution:          r.Resolution,
		Accuracy:            r.Accuracy,
		Location:            r.Location,
		Supplier:            r.Supplier,
		Status:              status,
		LastCalibrationDate: r.LastCalibrationDate,
		NextCalibrationDate: r.NextCalibrationDate,
		OpeningPressure:     r.OpeningPressure,
		ClosingPressure:     r.ClosingPressure,
		DefaultTestGroups:   r.DefaultTestGroups,
	}, nil
}
