package routes

import (
	"metrologia_avc/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEquipments   = "/equipments"
	PathCalibrations = "/calibrations"
	PathBudgets      = "/budgets"
	PathImport       = "/import"
)

func addMetrologyRoutes(
	rg *gin.RouterGroup,
	equipmentHandler *handlers.EquipmentHandler,
	calibrationHandler *handlers.CalibrationHandler,
	budgetHandler *handlers.BudgetHandler,
	importHandler *handlers.ImportHandler,
) {
	equipments := rg.Group(PathEquipments)
	{
		equipments.GET("", equipmentHandler.ListEquipments)
		equipments.POST("", equipmentHandler.SaveEquipment)
		equipments.DELETE("", equipmentHandler.ClearAllEquipments)
		equipments.GET("/alerts", equipmentHandler.CalibrationAlerts)
		equipments.GET("/export", equipmentHandler.ExportEquipments)
		equipments.GET("/:id", equipmentHandler.GetEquipment)
		equipments.DELETE("/:id", equipmentHandler.DeleteEquipment)
	}

	calibrations := rg.Group(PathCalibrations)
	{
		calibrations.GET("", calibrationHandler.ListCalibrations)
		calibrations.PUT("", calibrationHandler.SaveCalibration)
		calibrations.POST("/draft", calibrationHandler.CreateDraft)
		calibrations.POST("/analyze", calibrationHandler.Analyze)
		calibrations.POST("/uncertainty", calibrationHandler.ApplyUncertainty)
		calibrations.GET("/:id", calibrationHandler.GetCalibration)

		// Edição pura: recebem o registro no corpo e devolvem o novo snapshot.
		calibrations.POST("/groups", calibrationHandler.AddGroup)
		calibrations.POST("/groups/:groupId/rename", calibrationHandler.RenameGroup)
		calibrations.POST("/groups/:groupId/remove", calibrationHandler.RemoveGroup)
		calibrations.POST("/groups/:groupId/points", calibrationHandler.AddPoint)
		calibrations.POST("/groups/:groupId/points/:pointId/remove", calibrationHandler.RemovePoint)
		calibrations.POST("/groups/:groupId/points/:pointId/values", calibrationHandler.SetPointValues)
		calibrations.POST("/groups/:groupId/points/:pointId/uncertainty", calibrationHandler.SetPointUncertainty)
	}

	budgets := rg.Group(PathBudgets)
	{
		budgets.GET("", budgetHandler.ListBudgets)
		budgets.POST("", budgetHandler.SaveBudget)
		budgets.GET("/totals", budgetHandler.BudgetTotals)
		budgets.GET("/export", budgetHandler.ExportBudgets)
		budgets.GET("/:id", budgetHandler.GetBudget)
		budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	}

	importGroup := rg.Group(PathImport)
	{
		importGroup.POST("/equipments", importHandler.ImportEquipments)
	}
}
