package request

import (
	"strings"

	"metrologia_avc/internal/domain/entities"
)

type EquipmentLinkRequest struct {
	ID   string `json:"id" binding:"required"`
	Tag  string `json:"tag"`
	Name string `json:"name"`
}

// BudgetRequest mirrors the budget document edited by the web client.
type BudgetRequest struct {
	ID          string                 `json:"id"`
	Equipments  []EquipmentLinkRequest `json:"equipments"`
	Provider    string                 `json:"provider"`
	Date        string                 `json:"date"`
	ServiceType string                 `json:"serviceType"`
	Cost        float64                `json:"cost"`
	Status      string                 `json:"status"`
	Notes       string                 `json:"notes"`
}

// ToEntity converts the payload, validating the status enum. An empty status
// is allowed; the use case defaults it to Pendente.
func (r BudgetRequest) ToEntity() (entities.BudgetRecord, error) {
	status := entities.BudgetStatus("")
	if s := strings.TrimSpace(r.Status); s != "" {
		parsed, err := entities.ParseBudgetStatus(s)
		if err != nil {
			return entities.BudgetRecord{}, err
		}
		status = parsed
	}

	links := make([]entities.EquipmentLink, len(r.Equipments))
	for i, l := range r.Equipments {
		links[i] = entities.EquipmentLink{ID: l.ID, Tag: l.Tag, Name: l.Name}
	}

	return entities.BudgetRecord{
		ID:          strings.TrimSpace(r.ID),
		Equipments:  links,
		Provider:    strings.TrimSpace(r.Provider),
		Date:        r.Date,
		ServiceType: r.ServiceType,
		Cost:        r.Cost,
		Status:      status,
		Notes:       r.Notes,
	}, nil
}
