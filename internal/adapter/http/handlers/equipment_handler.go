package handlers

import (
	"errors"
	"log"
	"net/http"

	"metrologia_avc/internal/adapter/excel"
	request "metrologia_avc/internal/adapter/http/dto/request"
	response "metrologia_avc/internal/adapter/http/dto/response"
	"metrologia_avc/internal/domain/entities"
	"metrologia_avc/internal/usecase"
	"metrologia_avc/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEquipmentPayload = pkg.NewDomainErrorSimple("INVALID_EQUIPMENT_INPUT", "Invalid equipment payload", http.StatusBadRequest)
)

// EquipmentHandler handles HTTP requests for the equipment catalog.

type EquipmentHandler struct {
	usecase usecase.IEquipmentUseCase
}

func NewEquipmentHandler(uc usecase.IEquipmentUseCase) *EquipmentHandler {
	return &EquipmentHandler{usecase: uc}
}

func (h *EquipmentHandler) ListEquipments(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEquipments(list))
}

func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEquipment(e))
}

// SaveEquipment upserts an equipment document. A payload without an id
// creates a new document.
func (h *EquipmentHandler) SaveEquipment(c *gin.Context) {
	var payload request.EquipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEquipmentPayload.HTTPStatus, errInvalidEquipmentPayload.ToHTTPError())
		return
	}

	e, err := payload.ToEntity()
	if err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), e)
	if err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEquipment(saved))
}

func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearAllEquipments wipes the catalog and reports how many documents went.
func (h *EquipmentHandler) ClearAllEquipments(c *gin.Context) {
	deleted, err := h.usecase.ClearAll(c.Request.Context())
	if err != nil {
		log.Printf("[equipment][handler] clear-all failed deleted=%d err=%v", deleted, err)
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ClearAllResponse{Deleted: deleted})
}

// CalibrationAlerts lists active equipment that is overdue or due soon.
func (h *EquipmentHandler) CalibrationAlerts(c *gin.Context) {
	expired, warning, err := h.usecase.CalibrationAlerts(c.Request.Context())
	if err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.CalibrationAlertsResponse{
		Expired: response.FromEquipments(expired),
		Warning: response.FromEquipments(warning),
	})
}

// ExportEquipments streams the catalog as an xlsx download.
func (h *EquipmentHandler) ExportEquipments(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	data, err := excel.ExportEquipments(list)
	if err != nil {
		log.Printf("[equipment][handler] export failed err=%v", err)
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="equipamentos.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func mapEquipmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEquipmentID), errors.Is(err, entities.ErrUnknownEquipmentStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEquipmentNotFound):
		return pkg.NewDomainErrorSimple("EQUIPMENT_NOT_FOUND", "Equipment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
