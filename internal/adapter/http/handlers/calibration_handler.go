package handlers

import (
	"errors"
	"log"
	"net/http"

	request "metrologia_avc/internal/adapter/http/dto/request"
	response "metrologia_avc/internal/adapter/http/dto/response"
	"metrologia_avc/internal/domain/entities"
	"metrologia_avc/internal/domain/metrology"
	"metrologia_avc/internal/usecase"
	"metrologia_avc/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCalibrationPayload = pkg.NewDomainErrorSimple("INVALID_CALIBRATION_INPUT", "Invalid calibration payload", http.StatusBadRequest)
)

// CalibrationHandler handles HTTP requests for calibration records.
//
// Editing endpoints (groups, points, uncertainty) are stateless: they take
// the record in the request body, apply one transform and return the new
// snapshot. Only SaveCalibration writes to the store.
type CalibrationHandler struct {
	usecase usecase.ICalibrationUseCase
}

func NewCalibrationHandler(uc usecase.ICalibrationUseCase) *CalibrationHandler {
	return &CalibrationHandler{usecase: uc}
}

// CreateDraft starts a fresh record seeded from the equipment's default test
// groups.
func (h *CalibrationHandler) CreateDraft(c *gin.Context) {
	var payload request.CalibrationDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCalibrationPayload.HTTPStatus, errInvalidCalibrationPayload.ToHTTPError())
		return
	}

	technician := payload.Technician
	if technician == "" {
		technician = c.GetHeader("X-Technician")
	}

	draft, err := h.usecase.NewDraft(c.Request.Context(), payload.EquipmentID, technician)
	if err != nil {
		appErr := mapCalibrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCalibration(draft))
}

func (h *CalibrationHandler) GetCalibration(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCalibrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCalibration(r))
}

// ListCalibrations lists records, optionally filtered by ?equipmentId=,
// newest first.
func (h *CalibrationHandler) ListCalibrations(c *gin.Context) {
	records, err := h.usecase.ListByEquipment(c.Request.Context(), c.Query("equipmentId"))
	if err != nil {
		appErr := mapCalibrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCalibrations(records))
}

func (h *CalibrationHandler) SaveCalibration(c *gin.Context) {
	r, ok := h.bindRecord(c)
	if !ok {
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), r)
	if err != nil {
		log.Printf("[calibration][handler] save failed id=%s err=%v", r.ID, err)
		appErr := mapCalibrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCalibration(saved))
}

func (h *CalibrationHandler) AddGroup(c *gin.Context) {
	r, ok := h.bindRecord(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromCalibration(h.usecase.AddGroup(r)))
}

func (h *CalibrationHandler) RenameGroup(c *gin.Context) {
	h.transformRecord(c, func(r entities.CalibrationRecord) (entities.CalibrationRecord, error) {
		return h.usecase.RenameGroup(r, c.Param("groupId"), c.Query("name"))
	})
}

func (h *CalibrationHandler) RemoveGroup(c *gin.Context) {
	h.transformRecord(c, func(r entities.CalibrationRecord) (entities.CalibrationRecord, error) {
		return h.usecase.RemoveGroup(r, c.Param("groupId"))
	})
}

func (h *CalibrationHandler) AddPoint(c *gin.Context) {
	h.transformRecord(c, func(r entities.CalibrationRecord) (entities.CalibrationRecord, error) {
		return h.usecase.AddPoint(r, c.Param("groupId"))
	})
}

func (h *CalibrationHandler) RemovePoint(c *gin.Context) {
	h.transformRecord(c, func(r entities.CalibrationRecord) (entities.CalibrationRecord, error) {
		return h.usecase.RemovePoint(r, c.Param("groupId"), c.Param("pointId"))
	})
}

// SetPointValues updates a point's reference/measured pair; the error is
// recomputed server-side.
func (h *CalibrationHandler) SetPointValues(c *gin.Context) {
	var payload struct {
		Record         request.CalibrationRequest `json:"record" binding:"required"`
		ReferenceValue float64                    `json:"referenceValue"`
		MeasuredValue  float64                    `json:"measuredValue"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCalibrationPayload.HTTPStatus, errInvalidCalibrationPayload.ToHTTPError())
		return
	}

	r, err := payload.Record.ToEntity()
	if err != nil {
		appErr := mapCalibrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.SetPointValues(r, c.Param("groupId"), c.Param("pointId"), payload.ReferenceValue, payload.MeasuredValue)
	if err != nil {
		appErr := mapCalibrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCalibration(updated))
}

func (h *CalibrationHandler) SetPointUncertainty(c *gin.Context) {
	var payload struct {
		Record      request.CalibrationRequest `json:"record" binding:"required"`
		Uncertainty float64                    `json:"uncertainty"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCalibrationPayload.HTTPStatus, errInvalidCalibrationPayload.ToHTTPError())
		return
	}

	r, err := payload.Record.ToEntity()
	if err != nil {
		appErr := mapCalibrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.SetPointUncertainty(r, c.Param("groupId"), c.Param("pointId"), payload.Uncertainty)
	if err != nil {
		appErr := mapCalibrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCalibration(updated))
}

// ApplyUncertainty runs the type-B calculator and applies the expanded
// result to the target group (or "all").
func (h *CalibrationHandler) ApplyUncertainty(c *gin.Context) {
	var payload request.UncertaintyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCalibrationPayload.HTTPStatus, errInvalidCalibrationPayload.ToHTTPError())
		return
	}

	r, err := payload.Record.ToEntity()
	if err != nil {
		appErr := mapCalibrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, expanded, err := h.usecase.ApplyUncertainty(r, payload.GroupID, payload.StandardUncertainty, payload.ResolveResolution(), payload.ResolveKFactor())
	if err != nil {
		appErr := mapCalibrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.UncertaintyResponse{
		Record:              response.FromCalibration(updated),
		ExpandedUncertainty: expanded,
	})
}

// Analyze asks the narrative service for an opinion on the posted record.
func (h *CalibrationHandler) Analyze(c *gin.Context) {
	r, ok := h.bindRecord(c)
	if !ok {
		return
	}

	analyzed, err := h.usecase.Analyze(c.Request.Context(), r)
	if err != nil {
		appErr := mapCalibrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCalibration(analyzed))
}

func (h *CalibrationHandler) bindRecord(c *gin.Context) (entities.CalibrationRecord, bool) {
	var payload request.CalibrationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCalibrationPayload.HTTPStatus, errInvalidCalibrationPayload.ToHTTPError())
		return entities.CalibrationRecord{}, false
	}

	r, err := payload.ToEntity()
	if err != nil {
		appErr := mapCalibrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return entities.CalibrationRecord{}, false
	}
	return r, true
}

func (h *CalibrationHandler) transformRecord(
	c *gin.Context,
	apply func(entities.CalibrationRecord) (entities.CalibrationRecord, error),
) {
	r, ok := h.bindRecord(c)
	if !ok {
		return
	}

	updated, err := apply(r)
	if err != nil {
		appErr := mapCalibrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCalibration(updated))
}

func mapCalibrationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCalibrationID),
		errors.Is(err, usecase.ErrInvalidEquipmentID),
		errors.Is(err, entities.ErrUnknownCalibrationResult),
		errors.Is(err, metrology.ErrInvalidCoverageFactor):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrLastMeasurementGroup):
		return pkg.NewDomainErrorSimple("LAST_MEASUREMENT_GROUP", "A calibration needs at least one measurement group", http.StatusConflict)
	case errors.Is(err, entities.ErrMeasurementGroupNotFound):
		return pkg.NewDomainErrorSimple("MEASUREMENT_GROUP_NOT_FOUND", "Measurement group not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrMeasurementPointNotFound):
		return pkg.NewDomainErrorSimple("MEASUREMENT_POINT_NOT_FOUND", "Measurement point not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCalibrationNotFound):
		return pkg.NewDomainErrorSimple("CALIBRATION_NOT_FOUND", "Calibration not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEquipmentNotFound):
		return pkg.NewDomainErrorSimple("EQUIPMENT_NOT_FOUND", "Equipment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
