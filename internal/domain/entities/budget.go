package entities

import "errors"

// BudgetStatus represents the lifecycle of a maintenance/calibration budget.

type BudgetStatus string

const (
	BudgetStatusPendente  BudgetStatus = "Pendente"
	BudgetStatusAprovado  BudgetStatus = "Aprovado"
	BudgetStatusConcluido BudgetStatus = "Concluído"
	BudgetStatusCancelado BudgetStatus = "Cancelado"
)

var ErrUnknownBudgetStatus = errors.New("unknown budget status")

func ParseBudgetStatus(s string) (BudgetStatus, error) {
	switch BudgetStatus(s) {
	case BudgetStatusPendente, BudgetStatusAprovado, BudgetStatusConcluido, BudgetStatusCancelado:
		return BudgetStatus(s), nil
	}
	return "", ErrUnknownBudgetStatus
}

// EquipmentLink is a denormalized snapshot of a linked equipment, not a live
// reference: tag and name are frozen at link time.
type EquipmentLink struct {
	ID   string `json:"id"`
	Tag  string `json:"tag"`
	Name string `json:"name"`
}

// BudgetRecord is a maintenance/calibration cost record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Older documents carried a single equipmentId/equipmentTag/equipmentName
// triple instead of the Equipments list; WithLegacyEquipments migrates them
// on load.
type BudgetRecord struct {
	ID          string          `json:"id"`
	Equipments  []EquipmentLink `json:"equipments"`
	Provider    string          `json:"provider"`
	Date        string          `json:"date"`
	ServiceType string          `json:"serviceType"`
	Cost        float64         `json:"cost"`
	Status      BudgetStatus    `json:"status"`
	Notes       string          `json:"notes"`

	// Legacy single-equipment fields, kept only for migration.
	EquipmentID   string `json:"equipmentId,omitempty"`
	EquipmentTag  string `json:"equipmentTag,omitempty"`
	EquipmentName string `json:"equipmentName,omitempty"`
}

// WithLegacyEquipments folds the legacy single-equipment fields into the
// Equipments list when the list is absent.
func (b BudgetRecord) WithLegacyEquipments() BudgetRecord {
	if len(b.Equipments) > 0 || b.EquipmentID == "" {
		return b
	}
	b.Equipments = []EquipmentLink{{
		ID:   b.EquipmentID,
		Tag:  b.EquipmentTag,
		Name: b.EquipmentName,
	}}
	return b
}

// CommittedStatus reports whether this record's cost counts as committed
// (approved or concluded) in the cost totals.
func (b BudgetRecord) CommittedStatus() bool {
	return b.Status == BudgetStatusConcluido || b.Status == BudgetStatusAprovado
}
