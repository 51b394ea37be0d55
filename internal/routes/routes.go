package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/middlewares"
	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/services/dashboardService"
	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/services/referenceService"
	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/services/snapshotService"
	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/utils"
)

func RegisterRoutes(router *gin.Engine, store *referenceService.Store, cache *snapshotService.Cache, refresher *snapshotService.Refresher) {
	router.Use(middlewares.CorsMiddleware())

	dashboard := &dashboardService.Service{Cache: cache, Store: store}
	reference := &referenceService.Service{Store: store}
	snapshot := &snapshotService.Service{Cache: cache, Refresher: refresher}

	router.POST("/Plan/GetProductionPlan", func(c *gin.Context) {
		utils.ProcessRequestPayload(c, dashboard.GetProductionPlan)
	})

	router.POST("/Plan/GetDashboardSummary", func(c *gin.Context) {
		utils.ProcessRequestPayload(c, dashboard.GetDashboardSummary)
	})

	router.POST("/Plan/GetDashboardOverall", func(c *gin.Context) {
		utils.ProcessRequestPayload(c, dashboard.GetDashboardOverall)
	})

	router.POST("/Reference/GetAll", func(c *gin.Context) {
		utils.ProcessRequestPayload(c, reference.GetAll)
	})

	router.POST("/Reference/UpsertPart", func(c *gin.Context) {
		utils.ProcessRequestPayload(c, reference.UpsertPart)
	})

	router.POST("/Reference/DeletePart", func(c *gin.Context) {
		utils.ProcessRequestPayload(c, reference.DeletePart)
	})

	router.POST("/Reference/ImportReference", func(c *gin.Context) {
		utils.ProcessRequestMultiPart(c, reference.ImportReference)
	})

	router.POST("/Snapshot/RefreshNow", func(c *gin.Context) {
		utils.ProcessRequestPayload(c, snapshot.RefreshNow)
	})

	router.GET("/Snapshot/Status", func(c *gin.Context) {
		utils.ProcessRequestPayload(c, snapshot.Status)
	})
}
