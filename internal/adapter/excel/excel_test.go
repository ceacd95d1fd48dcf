package excel

import (
	"bytes"
	"testing"

	"metrologia_avc/internal/domain/entities"
	"metrologia_avc/internal/domain/spreadsheet"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestReadRows(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"Código", "Descrição", "Tipo"},
		{"EQ-001", "Manômetro", "Pressão"},
		{"", "", ""},
		{"EQ-002", "Paquímetro", "Dimensional"},
	})

	rows, err := ReadRows(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows (blank skipped), got %d", len(rows))
	}
	if got := spreadsheet.FindColumnValue(rows[0], []string{"codigo"}); got != "EQ-001" {
		t.Fatalf("expected EQ-001, got %q", got)
	}
	if got := spreadsheet.FindColumnValue(rows[1], []string{"descricao"}); got != "Paquímetro" {
		t.Fatalf("expected Paquímetro, got %q", got)
	}
}

func TestReadRows_InvalidInput(t *testing.T) {
	if _, err := ReadRows(bytes.NewReader([]byte("not a workbook"))); err == nil {
		t.Fatalf("expected error on invalid input")
	}
}

func TestExportEquipments(t *testing.T) {
	data, err := ExportEquipments([]entities.Equipment{
		{
			Tag:                 "EQ-001",
			Name:                "Manômetro",
			Status:              entities.EquipmentStatusAtivo,
			NextCalibrationDate: "2027-01-01",
			DefaultTestGroups:   []string{"Tração", "Compressão"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("exported workbook unreadable: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); len(got) != 1 || got[0] != "Equipamentos" {
		t.Fatalf("unexpected sheets: %v", got)
	}
	rows, err := f.GetRows("Equipamentos")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 data row, got %d", len(rows))
	}
	if rows[0][0] != "Tag" || rows[1][0] != "EQ-001" {
		t.Fatalf("unexpected content: %v", rows)
	}
	if rows[1][13] != "Tração, Compressão" {
		t.Fatalf("unexpected test groups cell: %q", rows[1][13])
	}
}

func TestExportBudgets(t *testing.T) {
	data, err := ExportBudgets([]entities.BudgetRecord{
		{
			Equipments: []entities.EquipmentLink{{Tag: "EQ-001"}, {Tag: "EQ-002"}},
			Provider:   "LabCal",
			Date:       "2026-08-01",
			Cost:       350,
			Status:     entities.BudgetStatusPendente,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("exported workbook unreadable: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Orçamentos")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 data row, got %d", len(rows))
	}
	if rows[1][0] != "EQ-001, EQ-002" || rows[1][1] != "LabCal" {
		t.Fatalf("unexpected content: %v", rows[1])
	}
}
