package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"metrologia_avc/internal/adapter/http/handlers/mocks"
	"metrologia_avc/internal/domain/spreadsheet"
	"metrologia_avc/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func importUpload(t *testing.T, rows [][]any) (*bytes.Buffer, string) {
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
	var workbook bytes.Buffer
	if _, err := f.WriteTo(&workbook); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", "planilha.xlsx")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(workbook.Bytes()); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return body, mw.FormDataContentType()
}

func TestImportHandler_ImportEquipments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIImportUseCase(ctrl)
		h := NewImportHandler(uc)

		r := gin.New()
		r.POST("/v1/import/equipments", h.ImportEquipments)

		req := httptest.NewRequest(http.MethodPost, "/v1/import/equipments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIImportUseCase(ctrl)
		h := NewImportHandler(uc)

		uc.EXPECT().ImportEquipment(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, rows []spreadsheet.Row, _ usecase.ProgressFunc) (usecase.ImportResult, error) {
				if len(rows) != 2 {
					t.Fatalf("expected 2 data rows, got %d", len(rows))
				}
				if got := spreadsheet.FindColumnValue(rows[0], []string{"codigo"}); got != "EQ-001" {
					t.Fatalf("unexpected first row tag: %q", got)
				}
				return usecase.ImportResult{Processed: 2, Total: 2}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/import/equipments", h.ImportEquipments)

		body, contentType := importUpload(t, [][]any{
			{"Código", "Descrição"},
			{"EQ-001", "Manômetro"},
			{"EQ-002", "Paquímetro"},
		})
		req := httptest.NewRequest(http.MethodPost, "/v1/import/equipments", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]int
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["processed"] != 2 || resp["total"] != 2 {
			t.Fatalf("unexpected body: %v", resp)
		}
	})

	t.Run("partial failure reports committed count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIImportUseCase(ctrl)
		h := NewImportHandler(uc)

		uc.EXPECT().ImportEquipment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.ImportResult{Processed: 1, Total: 2}, errors.New("save EQ-002: boom"))

		r := gin.New()
		r.POST("/v1/import/equipments", h.ImportEquipments)

		body, contentType := importUpload(t, [][]any{
			{"Código", "Descrição"},
			{"EQ-001", "Manômetro"},
			{"EQ-002", "Paquímetro"},
		})
		req := httptest.NewRequest(http.MethodPost, "/v1/import/equipments", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var resp struct {
			Code      string `json:"code"`
			Processed int    `json:"processed"`
			Total     int    `json:"total"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Code != "IMPORT_FAILED" || resp.Processed != 1 || resp.Total != 2 {
			t.Fatalf("unexpected body: %+v", resp)
		}
	})

	t.Run("empty spreadsheet maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIImportUseCase(ctrl)
		h := NewImportHandler(uc)

		uc.EXPECT().ImportEquipment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.ImportResult{}, usecase.ErrEmptyImport)

		r := gin.New()
		r.POST("/v1/import/equipments", h.ImportEquipments)

		body, contentType := importUpload(t, [][]any{{"Código", "Descrição"}})
		req := httptest.NewRequest(http.MethodPost, "/v1/import/equipments", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
