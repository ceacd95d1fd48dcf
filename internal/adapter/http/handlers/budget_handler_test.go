package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"metrologia_avc/internal/adapter/http/handlers/mocks"
	"metrologia_avc/internal/domain/entities"
	"metrologia_avc/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBudgetHandler_SaveBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing equipment maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().Save(gomock.Any(), gomock.Any()).
			Return(entities.BudgetRecord{}, usecase.ErrBudgetWithoutEquipment)

		r := gin.New()
		r.POST("/v1/budgets", h.SaveBudget)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets",
			bytes.NewBufferString(`{"provider":"LabCal","cost":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "BUDGET_WITHOUT_EQUIPMENT" {
			t.Fatalf("unexpected error code: %v", body)
		}
	})

	t.Run("unknown status rejected before usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/budgets", h.SaveBudget)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets",
			bytes.NewBufferString(`{"equipments":[{"id":"eq-1"}],"provider":"LabCal","cost":100,"status":"Esperando"}`))
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
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, b entities.BudgetRecord) (entities.BudgetRecord, error) {
				if len(b.Equipments) != 1 || b.Provider != "LabCal" {
					t.Fatalf("unexpected entity: %+v", b)
				}
				b.ID = "b-1"
				b.Status = entities.BudgetStatusPendente
				return b, nil
			},
		)

		r := gin.New()
		r.POST("/v1/budgets", h.SaveBudget)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets",
			bytes.NewBufferString(`{"equipments":[{"id":"eq-1","tag":"MN-01"}],"provider":"LabCal","cost":350,"date":"2026-08-01"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestBudgetHandler_BudgetTotals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBudgetUseCase(ctrl)
	h := NewBudgetHandler(uc)

	uc.EXPECT().Totals(gomock.Any()).Return(usecase.BudgetTotals{Committed: 350, Pending: 80}, nil)

	r := gin.New()
	r.GET("/v1/budgets/totals", h.BudgetTotals)

	req := httptest.NewRequest(http.MethodGet, "/v1/budgets/totals", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]float64
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["committed"] != 350 || body["pending"] != 80 {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestBudgetHandler_DeleteBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBudgetUseCase(ctrl)
	h := NewBudgetHandler(uc)

	uc.EXPECT().Delete(gomock.Any(), "b-1").Return(nil)

	r := gin.New()
	r.DELETE("/v1/budgets/:id", h.DeleteBudget)

	req := httptest.NewRequest(http.MethodDelete, "/v1/budgets/b-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
