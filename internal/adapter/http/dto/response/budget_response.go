package response

import (
	"metrologia_avc/internal/domain/entities"
	"metrologia_avc/internal/usecase"
)

type EquipmentLinkResponse struct {
	ID   string `json:"id"`
	Tag  string `json:"tag"`
	Name string `json:"name"`
}

type BudgetResponse struct {
	ID          string                  `json:"id"`
	Equipments  []EquipmentLinkResponse `json:"equipments"`
	Provider    string                  `json:"provider"`
	Date        string                  `json:"date"`
	ServiceType string                  `json:"serviceType,omitempty"`
	Cost        float64                 `json:"cost"`
	Status      string                  `json:"status"`
	Notes       string                  `json:"notes,omitempty"`
}

func FromBudget(b entities.BudgetRecord) BudgetResponse {
	links := make([]EquipmentLinkResponse, len(b.Equipments))
	for i, l := range b.Equipments {
		links[i] = EquipmentLinkResponse{ID: l.ID, Tag: l.Tag, Name: l.Name}
	}
	return BudgetResponse{
		ID:          b.ID,
		Equipments:  links,
		Provider:    b.Provider,
		Date:        b.Date,
		ServiceType: b.ServiceType,
		Cost:        b.Cost,
		Status:      string(b.Status),
		Notes:       b.Notes,
	}
}

func FromBudgets(list []entities.BudgetRecord) []BudgetResponse {
	out := make([]BudgetResponse, len(list))
	for i, b := range list {
		out[i] = FromBudget(b)
	}
	return out
}

type BudgetTotalsResponse struct {
	Committed float64 `json:"committed"`
	Pending   float64 `json:"pending"`
}

func FromBudgetTotals(t usecase.BudgetTotals) BudgetTotalsResponse {
	return BudgetTotalsResponse{Committed: t.Committed, Pending: t.Pending}
}
