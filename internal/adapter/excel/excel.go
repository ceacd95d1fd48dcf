// Package excel reads uploaded workbooks into spreadsheet rows and renders
// the equipment and budget collections back out as styled workbooks.
package excel

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"metrologia_avc/internal/domain/entities"
	"metrologia_avc/internal/domain/spreadsheet"
)

// ReadRows parses the first sheet of a workbook. The first non-empty row is
// the header row; every following row becomes a spreadsheet.Row keyed by those
// headers. Cell values are the displayed text, so formatted dates and "±0,5"
// style tolerances come through as the user sees them.
func ReadRows(r io.Reader) ([]spreadsheet.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	var headers []string
	var rows []spreadsheet.Row
	for _, cells := range raw {
		if isBlankRow(cells) {
			continue
		}
		if headers == nil {
			headers = cells
			continue
		}

		var row spreadsheet.Row
		for i, header := range headers {
			header = strings.TrimSpace(header)
			if header == "" {
				continue
			}
			value := ""
			if i < len(cells) {
				value = strings.TrimSpace(cells[i])
			}
			row.Set(header, value)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

var equipmentExportHeader = []string{
	"Tag",
	"Nome",
	"Fabricante",
	"Modelo",
	"Nº de Série",
	"Faixa",
	"Resolução",
	"Critério de Aceitação",
	"Localização",
	"Fornecedor",
	"Status",
	"Última Calibração",
	"Próxima Calibração",
	"Grupos de Teste",
}

// ExportEquipments renders the equipment catalog as a workbook.
func ExportEquipments(equipments []entities.Equipment) ([]byte, error) {
	rows := make([][]any, len(equipments))
	for i, e := range equipments {
		rows[i] = []any{
			e.Tag,
			e.Name,
			e.Manufacturer,
			e.Model,
			e.SerialNumber,
			e.Range,
			e.Resolution,
			e.Accuracy,
			e.Location,
			e.Supplier,
			string(e.Status),
			e.LastCalibrationDate,
			e.NextCalibrationDate,
			strings.Join(e.DefaultTestGroups, ", "),
		}
	}
	widths := []float64{15, 30, 20, 15, 18, 15, 12, 20, 20, 20, 12, 18, 18, 25}
	return writeWorkbook("Equipamentos", equipmentExportHeader, widths, rows)
}

var budgetExportHeader = []string{
	"Equipamentos",
	"Fornecedor",
	"Data",
	"Tipo de Serviço",
	"Custo (R$)",
	"Status",
	"Observações",
}

// ExportBudgets renders the budget collection as a workbook.
func ExportBudgets(budgets []entities.BudgetRecord) ([]byte, error) {
	rows := make([][]any, len(budgets))
	for i, b := range budgets {
		tags := make([]string, len(b.Equipments))
		for j, l := range b.Equipments {
			tags[j] = l.Tag
		}
		rows[i] = []any{
			strings.Join(tags, ", "),
			b.Provider,
			b.Date,
			b.ServiceType,
			b.Cost,
			string(b.Status),
			b.Notes,
		}
	}
	widths := []float64{30, 25, 14, 20, 14, 14, 40}
	return writeWorkbook("Orçamentos", budgetExportHeader, widths, rows)
}

// writeWorkbook builds a single-sheet workbook with a styled, frozen header
// row and returns its bytes.
func writeWorkbook(sheetName string, headers []string, widths []float64, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo needs the file open; Close only on the way out.

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for i, width := range widths {
		if i >= len(headers) {
			break
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for rowIdx, values := range rows {
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}
	return buf.Bytes(), nil
}
