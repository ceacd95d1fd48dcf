package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
)

// addPingRoutes exposes liveness and readiness probes. Readiness touches the
// store with a short deadline so the balancer stops routing when DynamoDB is
// unreachable.
func addPingRoutes(rg *gin.RouterGroup, ddb *dynamodb.Client) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	rg.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if _, err := ddb.ListTables(ctx, &dynamodb.ListTablesInput{}); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
