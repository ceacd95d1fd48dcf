package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"metrologia_avc/internal/adapter/http/handlers/mocks"
	"metrologia_avc/internal/domain/entities"
	"metrologia_avc/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEquipmentHandler_SaveEquipment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEquipmentUseCase(ctrl)
		h := NewEquipmentHandler(uc)

		r := gin.New()
		r.POST("/v1/equipments", h.SaveEquipment)

		req := httptest.NewRequest(http.MethodPost, "/v1/equipments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEquipmentUseCase(ctrl)
		h := NewEquipmentHandler(uc)

		r := gin.New()
		r.POST("/v1/equipments", h.SaveEquipment)

		req := httptest.NewRequest(http.MethodPost, "/v1/equipments",
			bytes.NewBufferString(`{"tag":"MN-01","name":"Manômetro","status":"Quebrado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEquipmentUseCase(ctrl)
		h := NewEquipmentHandler(uc)

		uc.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, e entities.Equipment) (entities.Equipment, error) {
				if e.Tag != "MN-01" || e.Status != entities.EquipmentStatusAtivo {
					t.Fatalf("unexpected entity: %+v", e)
				}
				e.ID = "eq-1"
				return e, nil
			},
		)

		r := gin.New()
		r.POST("/v1/equipments", h.SaveEquipment)

		req := httptest.NewRequest(http.MethodPost, "/v1/equipments",
			bytes.NewBufferString(`{"tag":"MN-01","name":"Manômetro","status":"Ativo"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "eq-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestEquipmentHandler_GetEquipment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEquipmentUseCase(ctrl)
		h := NewEquipmentHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Equipment{}, usecase.ErrEquipmentNotFound)

		r := gin.New()
		r.GET("/v1/equipments/:id", h.GetEquipment)

		req := httptest.NewRequest(http.MethodGet, "/v1/equipments/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("repository failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEquipmentUseCase(ctrl)
		h := NewEquipmentHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "eq-1").Return(entities.Equipment{}, errors.New("db down"))

		r := gin.New()
		r.GET("/v1/equipments/:id", h.GetEquipment)

		req := httptest.NewRequest(http.MethodGet, "/v1/equipments/eq-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestEquipmentHandler_ClearAllEquipments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEquipmentUseCase(ctrl)
	h := NewEquipmentHandler(uc)

	uc.EXPECT().ClearAll(gomock.Any()).Return(7, nil)

	r := gin.New()
	r.DELETE("/v1/equipments", h.ClearAllEquipments)

	req := httptest.NewRequest(http.MethodDelete, "/v1/equipments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]int
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["deleted"] != 7 {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestEquipmentHandler_CalibrationAlerts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEquipmentUseCase(ctrl)
	h := NewEquipmentHandler(uc)

	uc.EXPECT().CalibrationAlerts(gomock.Any()).Return(
		[]entities.Equipment{{ID: "e1", NextCalibrationDate: "2020-01-01"}},
		[]entities.Equipment{{ID: "e2", NextCalibrationDate: "2099-01-01"}},
		nil,
	)

	r := gin.New()
	r.GET("/v1/equipments/alerts", h.CalibrationAlerts)

	req := httptest.NewRequest(http.MethodGet, "/v1/equipments/alerts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Expired []map[string]any `json:"expired"`
		Warning []map[string]any `json:"warning"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Expired) != 1 || len(body.Warning) != 1 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestEquipmentHandler_ExportEquipments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEquipmentUseCase(ctrl)
	h := NewEquipmentHandler(uc)

	uc.EXPECT().List(gomock.Any()).Return([]entities.Equipment{{ID: "e1", Tag: "MN-01", Name: "Manômetro"}}, nil)

	r := gin.New()
	r.GET("/v1/equipments/export", h.ExportEquipments)

	req := httptest.NewRequest(http.MethodGet, "/v1/equipments/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="equipamentos.xlsx"` {
		t.Fatalf("unexpected disposition: %q", got)
	}
	if w.Body.Len() == 0 {
		t.Fatalf("expected workbook bytes")
	}
}
