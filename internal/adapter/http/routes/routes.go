package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "metrologia_avc/docs" // This will be auto-generated
	"metrologia_avc/internal/adapter/http/handlers"
	repository2 "metrologia_avc/internal/adapter/persistence/repository"
	"metrologia_avc/internal/infrastructure/analysis"
	"metrologia_avc/internal/infrastructure/database"
	"metrologia_avc/internal/usecase"
	"metrologia_avc/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	equipmentRepo := repository2.NewEquipmentDynamoRepository(ddb)
	calibrationRepo := repository2.NewCalibrationDynamoRepository(ddb)
	budgetRepo := repository2.NewBudgetDynamoRepository(ddb)

	// A missing Gemini key must not block the API: the calibration use case
	// maps a nil/failing gateway to its fallback text.
	var analysisGateway interfaces.IAnalysisGateway
	gemini, err := analysis.NewGeminiGateway(context.Background(), os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		log.Printf("Gemini gateway not configured: %v", err)
	} else {
		analysisGateway = gemini
	}

	equipmentUseCase := usecase.NewEquipmentUseCase(equipmentRepo)
	calibrationUseCase := usecase.NewCalibrationUseCase(calibrationRepo, equipmentRepo, analysisGateway)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo)
	importUseCase := usecase.NewImportUseCase(equipmentRepo)

	equipmentHandler := handlers.NewEquipmentHandler(equipmentUseCase)
	calibrationHandler := handlers.NewCalibrationHandler(calibrationUseCase)
	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	importHandler := handlers.NewImportHandler(importUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1, ddb)
	addMetrologyRoutes(v1, equipmentHandler, calibrationHandler, budgetHandler, importHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
