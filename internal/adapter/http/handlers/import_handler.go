package handlers

import (
	"errors"
	"log"
	"net/http"

	"metrologia_avc/internal/adapter/excel"
	response "metrologia_avc/internal/adapter/http/dto/response"
	"metrologia_avc/internal/usecase"
	"metrologia_avc/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidImportFile = pkg.NewDomainErrorSimple("INVALID_IMPORT_FILE", "Invalid or missing spreadsheet file", http.StatusBadRequest)
)

// ImportHandler handles spreadsheet uploads into the equipment catalog.

type ImportHandler struct {
	usecase usecase.IImportUseCase
}

func NewImportHandler(uc usecase.IImportUseCase) *ImportHandler {
	return &ImportHandler{usecase: uc}
}

// ImportEquipments accepts a multipart upload (field "file"), reconciles the
// rows and bulk-upserts the resulting equipment records.
func (h *ImportHandler) ImportEquipments(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(errInvalidImportFile.HTTPStatus, errInvalidImportFile.ToHTTPError())
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		log.Printf("[import][handler] open upload failed name=%s err=%v", fileHeader.Filename, err)
		c.JSON(errInvalidImportFile.HTTPStatus, errInvalidImportFile.ToHTTPError())
		return
	}
	defer f.Close()

	rows, err := excel.ReadRows(f)
	if err != nil {
		log.Printf("[import][handler] parse failed name=%s err=%v", fileHeader.Filename, err)
		c.JSON(errInvalidImportFile.HTTPStatus, errInvalidImportFile.ToHTTPError())
		return
	}

	result, err := h.usecase.ImportEquipment(c.Request.Context(), rows, func(processed, total int) {
		log.Printf("[import][handler] progress %d/%d", processed, total)
	})
	if err != nil {
		appErr := mapImportError(err)
		c.JSON(appErr.HTTPStatus, response.ImportErrorResponse{
			Code:      appErr.Code,
			Message:   appErr.Message,
			Processed: result.Processed,
			Total:     result.Total,
		})
		return
	}
	c.JSON(http.StatusOK, response.FromImportResult(result))
}

func mapImportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyImport):
		return pkg.NewDomainErrorSimple("EMPTY_IMPORT", "Spreadsheet has no data rows", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("IMPORT_FAILED", "Import did not complete", err, http.StatusInternalServerError)
	}
}
