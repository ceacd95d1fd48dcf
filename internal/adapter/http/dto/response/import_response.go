package response

import "metrologia_avc/internal/usecase"

// ImportResponse reports how far a spreadsheet import got.
type ImportResponse struct {
	Processed int `json:"processed"`
	Total     int `json:"total"`
}

func FromImportResult(r usecase.ImportResult) ImportResponse {
	return ImportResponse{Processed: r.Processed, Total: r.Total}
}

// ImportErrorResponse is returned when an import aborts mid-way: committed
// batches are not rolled back, so the counts tell the caller what survived.
type ImportErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Processed int    `json:"processed"`
	Total     int    `json:"total"`
}
